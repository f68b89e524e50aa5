// Package sched implements the registered-periodic-job scheduler: a
// Registry of named jobs fired in deterministic order, each enforcing
// scheduler-only authorship and scarcity-aware suspension. The
// budget/backoff watchdog is adapted from the reference
// world/redstone.Scheduler/ChunkWorker pattern, repurposed from
// per-chunk circuit-simulation budgets to per-subsystem cadence
// backoff, since a subsystem that consistently overruns its interval
// should fire less often rather than starve its neighbours.
package sched

import (
	"log/slog"
	"sort"
	"time"

	"github.com/driftlands/survivalcore/server/platform"
	"github.com/dustin/go-humanize"
)

// TxFactory builds the per-invocation Tx a job's Run receives. The
// simulation world supplies one backed by its real store/clock/RNG;
// tests supply a fixed one.
type TxFactory func(sender platform.Identity, now time.Time) *platform.Tx

// RegistryConfig configures a Registry.
type RegistryConfig struct {
	Log   *slog.Logger
	NewTx TxFactory
	// MaxBackoffShift caps how many times an overrunning job's interval
	// is doubled before the watchdog stops compounding it.
	MaxBackoffShift int
}

type registeredJob struct {
	job          platform.Job
	nextFire     time.Time
	oneShot      bool
	saturation   int
	backoffShift int
}

// Registry is the platform.Scheduler implementation for the simulation
// core.
type Registry struct {
	log             *slog.Logger
	newTx           TxFactory
	maxBackoffShift int

	jobs  map[string]*registeredJob
	order []string
	dirty bool
}

// NewRegistry builds an empty Registry.
func NewRegistry(cfg RegistryConfig) *Registry {
	if cfg.Log == nil {
		cfg.Log = slog.Default()
	}
	if cfg.MaxBackoffShift <= 0 {
		cfg.MaxBackoffShift = 3
	}
	return &Registry{
		log:             cfg.Log,
		newTx:           cfg.NewTx,
		maxBackoffShift: cfg.MaxBackoffShift,
		jobs:            make(map[string]*registeredJob),
	}
}

// Interval implements platform.Scheduler. Re-registering a name already
// held by a recurring job is a no-op (idempotent init).
func (r *Registry) Interval(j platform.Job) error {
	if existing, ok := r.jobs[j.Name]; ok && !existing.oneShot {
		return nil
	}
	r.jobs[j.Name] = &registeredJob{job: j, nextFire: time.Time{}}
	r.order = append(r.order, j.Name)
	r.dirty = true
	return nil
}

// At implements platform.Scheduler's one-shot registration.
func (r *Registry) At(name string, when time.Time, run func(tx *platform.Tx) error) error {
	r.jobs[name] = &registeredJob{
		job:      platform.Job{Name: name, Run: run},
		nextFire: when,
		oneShot:  true,
	}
	r.order = append(r.order, name)
	r.dirty = true
	return nil
}

// Cancel implements platform.Scheduler.
func (r *Registry) Cancel(name string) {
	delete(r.jobs, name)
	r.dirty = true
}

func (r *Registry) rebuildOrder() {
	r.order = r.order[:0]
	for name := range r.jobs {
		r.order = append(r.order, name)
	}
	sort.Strings(r.order)
	r.dirty = false
}

// Step fires every job whose schedule is due at now, in deterministic
// (name-sorted) order. onlinePlayers implements scarcity-aware
// suspension: a Job.Suspendable job is skipped entirely
// when no players are online, without advancing its schedule, so it
// fires promptly once someone reconnects.
func (r *Registry) Step(now time.Time, onlinePlayers int) {
	if len(r.jobs) == 0 {
		return
	}
	if r.dirty {
		r.rebuildOrder()
	}
	for _, name := range r.order {
		rj, ok := r.jobs[name]
		if !ok {
			continue
		}
		if rj.job.Suspendable && onlinePlayers == 0 {
			continue
		}
		if rj.nextFire.After(now) {
			continue
		}
		r.fire(rj, now)
		if rj.oneShot {
			delete(r.jobs, name)
			r.dirty = true
		}
	}
}

func (r *Registry) fire(rj *registeredJob, now time.Time) {
	tx := r.newTx(platform.System, now)
	start := time.Now()
	err := rj.job.Run(tx)
	if err != nil {
		r.log.Error("scheduled job failed", "job", rj.job.Name, "error", err)
		if commitErr := tx.Rollback(); commitErr != nil {
			r.log.Error("scheduled job rollback failed", "job", rj.job.Name, "error", commitErr)
		}
	} else if commitErr := tx.Commit(); commitErr != nil {
		r.log.Error("scheduled job commit failed", "job", rj.job.Name, "error", commitErr)
	}

	if rj.oneShot {
		return
	}

	interval := rj.job.Interval << rj.backoffShift
	elapsed := time.Since(start)
	r.updateWatchdog(rj, elapsed)
	rj.nextFire = now.Add(interval)
}

// updateWatchdog grows a job's effective interval (by doubling, capped at
// maxBackoffShift) after three consecutive invocations that overran their
// own interval, and relaxes it by one step on a clean invocation —
// directly adapted from the reference saturation/penalty counters, which
// apply the same three-strikes escalation / one-step relaxation shape to
// per-chunk op budgets.
func (r *Registry) updateWatchdog(rj *registeredJob, elapsed time.Duration) {
	if rj.job.Interval <= 0 {
		return
	}
	if elapsed > rj.job.Interval {
		rj.saturation++
		if rj.saturation >= 3 {
			if rj.backoffShift < r.maxBackoffShift {
				rj.backoffShift++
				newInterval := rj.job.Interval << rj.backoffShift
				r.log.Warn("scheduled job falling behind, backing off",
					"job", rj.job.Name,
					"run_time", humanize.RelTime(time.Time{}, time.Time{}.Add(elapsed), "", "over budget"),
					"new_interval", humanize.RelTime(time.Time{}, time.Time{}.Add(newInterval), "", "backoff"))
			}
			rj.saturation = 0
		}
		return
	}
	rj.saturation = 0
	if rj.backoffShift > 0 {
		rj.backoffShift--
	}
}

var _ platform.Scheduler = (*Registry)(nil)
