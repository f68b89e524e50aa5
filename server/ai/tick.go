package ai

import (
	"log/slog"
	"time"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/platform"
)

// NearestPlayer finds the closest candidate to an animal's position, or
// nil if candidates is empty. The world package is responsible for
// pre-filtering candidates to those within a generous outer radius via
// the spatial index before calling Tick, so this is a plain linear scan
// over a short list rather than another spatial query.
func NearestPlayer(pos entity.Position, candidates []PlayerContext) (*PlayerContext, float32) {
	var best *PlayerContext
	bestDist := float32(0)
	for i := range candidates {
		d := distance(pos, candidates[i].Pos)
		if best == nil || d < bestDist {
			best = &candidates[i]
			bestDist = d
		}
	}
	return best, bestDist
}

// Tick advances one animal by dt seconds: it resolves the nearest
// candidate player, runs the species' state-machine transition, then
// executes the movement routine for whatever state the animal ended up
// in. It returns true if the animal's AI state changed (a bee burning to
// death included); position and facing updates from movement alone do
// not make it return true.
func Tick(a *entity.WildAnimal, candidates []PlayerContext, fireSources []entity.Position, now time.Time, dt float64, rng *platform.RNG, log *slog.Logger) bool {
	species := speciesFromString(a.Species)
	if species == SpeciesBee && a.Health > 0 && nearFireSource(a.Pos, fireSources) {
		a.Health = 0
		a.State = entity.StateDespawning
		a.StateChangeTime = now
		if log != nil {
			log.Info("bee burned to death near a fire source", "animal_id", a.ID)
		}
		return true
	}

	behavior := Dispatch(species)
	nearest, dist := NearestPlayer(a.Pos, candidates)

	prevState := a.State
	next, reason := behavior.UpdateAIStateLogic(a, nearest, dist, dt, now, rng)
	if next != prevState {
		a.State = next
		a.StateChangeTime = now
		if log != nil {
			log.Debug("animal state transition",
				"animal_id", a.ID, "species", a.Species,
				"from", prevState.String(), "to", next.String(), "reason", reason)
		}
	}

	switch a.State {
	case entity.StateFleeing:
		if nearest != nil {
			behavior.ExecuteFleeLogic(a, nearest.Pos, dt)
		}
	case entity.StateChasing, entity.StateStalking, entity.StateSwimmingChase:
		if nearest != nil {
			chase(a, nearest.Pos, behavior.GetStats(), dt)
		}
	case entity.StateAttacking:
		// Held in place; ExecuteAttackEffects is invoked by the caller
		// once per AttackCooldown via the combat package, not here,
		// since Tick has no access to the combat damage pipeline.
	case entity.StateIdle, entity.StatePatrolling, entity.StateFlying,
		entity.StateGrounded, entity.StateSwimming, entity.StateAlert:
		behavior.ExecutePatrolLogic(a, dt, rng)
	}

	return next != prevState
}

// chase advances the animal directly toward target at its sprint speed,
// the common closing-distance routine every chasing state shares.
func chase(a *entity.WildAnimal, target entity.Position, stats AnimalStats, dt float64) {
	dx := target.X - a.Pos.X
	dy := target.Y - a.Pos.Y
	d := distance(a.Pos, target)
	if d == 0 {
		return
	}
	step := float64(stats.SprintSpeed) * dt
	a.Pos.X += dx / float64(d) * step
	a.Pos.Y += dy / float64(d) * step
}

// nearFireSource reports whether pos is within FireSourceRadius of any
// active campfire, torch, or fire patch position, matching the original
// implementation's per-tick ambient fire-proximity check (independent of
// combat) rather than a sting-triggered one.
func nearFireSource(pos entity.Position, sources []entity.Position) bool {
	for _, s := range sources {
		if distance(pos, s) <= FireSourceRadius {
			return true
		}
	}
	return false
}

// speciesFromString resolves the WildAnimal.Species string column back to
// the closed enum; an unrecognised value falls back to the generic
// behavior under SpeciesCrab's stats rather than panicking, since a
// corrupt or future-versioned row should degrade, not crash the tick loop.
func speciesFromString(s string) Species {
	for sp := SpeciesBee; sp <= SpeciesNightStalker; sp++ {
		if sp.String() == s {
			return sp
		}
	}
	return SpeciesCrab
}
