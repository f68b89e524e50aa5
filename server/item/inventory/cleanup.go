package inventory

import "time"

// RespawnableContainer is a system-placed loot container (military
// ration, mine cart, wild beehive) that self-deletes when emptied and
// schedules a respawn.
type RespawnableContainer interface {
	Container
	// ScheduleRespawn schedules this container's contents to be
	// regenerated at the given instant. The entity package's concrete
	// rows implement this by writing their own respawn_at-style field.
	ScheduleRespawn(at time.Time)
}

// RespawnDelayMin and RespawnDelayMax bound the random delay applied to
// a loot container's respawn.
const (
	RespawnDelayMin = 5 * time.Minute
	RespawnDelayMax = 15 * time.Minute
)

// CleanupIfEmpty checks c after a mutation and, if every slot is now
// empty, schedules its respawn. now and jitter are supplied by the caller
// so this stays deterministic in tests.
func CleanupIfEmpty(c RespawnableContainer, now time.Time, jitter time.Duration) {
	if !AllEmpty(c) {
		return
	}
	if jitter < RespawnDelayMin {
		jitter = RespawnDelayMin
	}
	if jitter > RespawnDelayMax {
		jitter = RespawnDelayMax
	}
	c.ScheduleRespawn(now.Add(jitter))
}
