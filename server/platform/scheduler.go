package platform

import "time"

// Job is a reducer bound to a schedule. The platform invokes Run with a
// fresh Tx whose Sender is always System; the reducer does not need to
// check this itself if it only ever calls RequireSystem once at the top,
// but Run already receives a Tx built that way.
type Job struct {
	// Name identifies the job in logs and in the scheduler's internal
	// bookkeeping. Names are unique within a Scheduler.
	Name string

	// Interval is the period between invocations for a recurring job. Zero
	// means the job is one-shot, scheduled via At instead.
	Interval time.Duration

	// Suspendable jobs are skipped by the scheduler whenever OnlinePlayers
	// is zero; this avoids needless respawn/decay churn on an empty server.
	Suspendable bool

	// Run performs the job's work for one invocation.
	Run func(tx *Tx) error
}

// Scheduler is the platform collaborator that invokes registered Jobs on
// their configured cadence. A Scheduler implementation guarantees at-most-
// one concurrent invocation per job name but does not guarantee
// jobs run in any particular relative order.
type Scheduler interface {
	// Interval registers a recurring job. Re-registering a name already
	// held by a recurring job is idempotent: the existing registration's
	// interval is left untouched and j is otherwise ignored, matching
	// "idempotent init".
	Interval(j Job) error

	// At registers a one-shot job to run at the given instant.
	At(name string, when time.Time, run func(tx *Tx) error) error

	// Cancel removes a previously registered job by name. Cancelling a name
	// that isn't registered is a no-op.
	Cancel(name string)
}
