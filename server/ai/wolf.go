package ai

import (
	"time"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/item"
	"github.com/driftlands/survivalcore/server/platform"
)

// wolfBehavior implements pack-coordinated chasing and fur intimidation,
// grounded on original_source/server/src/wild_animal_npc/wolf.rs.
type wolfBehavior struct{}

func (wolfBehavior) GetStats() AnimalStats               { return statsTable[SpeciesWolf] }
func (wolfBehavior) GetMovementPattern() MovementPattern { return statsTable[SpeciesWolf].Pattern }

func (w wolfBehavior) UpdateAIStateLogic(a *entity.WildAnimal, nearest *PlayerContext, dist float32, dt float64, now time.Time, rng *platform.RNG) (entity.AIState, string) {
	stats := w.GetStats()
	if a.Health <= 0 {
		return entity.StateDespawning, "health depleted"
	}
	if float32(a.Health) <= stats.FleeHealthThreshold*float32(stats.MaxHealth) {
		return entity.StateFleeing, "pack member wounded below flee threshold"
	}
	switch a.State {
	case entity.StateFleeing:
		if nearest == nil || dist > stats.ChaseAbandonRange {
			return entity.StateIdle, "threat receded"
		}
		return entity.StateFleeing, ""
	case entity.StateChasing:
		if nearest == nil {
			return entity.StatePatrolling, "target lost"
		}
		if abandonChase(dist, stats.ChaseAbandonRange, w.GetChaseAbandonmentMultiplier(a, now)) {
			return entity.StatePatrolling, "target outran the pack"
		}
		if dist <= stats.AttackRange {
			return entity.StateAttacking, "in bite range"
		}
		return entity.StateChasing, ""
	case entity.StateAttacking:
		if nearest == nil || dist > stats.AttackRange*1.5 {
			return entity.StateChasing, "target moved out of bite range"
		}
		return entity.StateAttacking, ""
	}
	if nearest != nil && withinPerceptionCone(a.Pos, a.Facing, stats.PerceptionAngle, nearest.Pos, stats.PerceptionRange) {
		if w.ShouldChasePlayer(a, nearest, dist) {
			return entity.StateChasing, "pack spotted target"
		}
		return entity.StateAlert, "target perceived, chase not triggered"
	}
	if a.State == entity.StateIdle || a.State == entity.StateAlert {
		return entity.StatePatrolling, ""
	}
	return a.State, ""
}

func (w wolfBehavior) ExecutePatrolLogic(a *entity.WildAnimal, dt float64, rng *platform.RNG) {
	stats := w.GetStats()
	step := float64(stats.MoveSpeed) * dt
	a.Direction += rng.Float32Range(-0.25, 0.25)
	a.Pos.X += step * cosf(a.Direction)
	a.Pos.Y += step * sinf(a.Direction)
	a.Facing = a.Direction
}

func (w wolfBehavior) ExecuteFleeLogic(a *entity.WildAnimal, threat entity.Position, dt float64) {
	stats := w.GetStats()
	a.Pos = fleeDestination(a.Pos, threat, stats.SprintSpeed*float32(dt))
}

func (w wolfBehavior) ExecuteAttackEffects(a *entity.WildAnimal, target *PlayerContext) []Effect {
	return []Effect{{Kind: EffectBleed, Target: target.Identity}}
}

// ShouldChasePlayer applies the wolf-fur intimidation rule: a player
// wearing a heavy fur/pelt set reads as a rival predator and is left
// alone outright, on top of the common fire-fear gate.
func (w wolfBehavior) ShouldChasePlayer(a *entity.WildAnimal, target *PlayerContext, dist float32) bool {
	stats := w.GetStats()
	if furIntimidationTriggered(target.WearsFur) {
		return false
	}
	if fireFearTriggered(target.HoldsFireSource) {
		return false
	}
	return dist <= stats.ChaseTriggerRange
}

func (w wolfBehavior) HandleDamageResponse(a *entity.WildAnimal, attacker platform.Identity) entity.AIState {
	return entity.StateChasing
}

// GetChaseAbandonmentMultiplier always returns 1 for a wolf: unlike the
// polar bear, wolves hunt in packs and don't tire out of a chase early.
func (w wolfBehavior) GetChaseAbandonmentMultiplier(a *entity.WildAnimal, now time.Time) float32 {
	return 1
}

func (w wolfBehavior) CanBeTamed() bool { return true }

func (w wolfBehavior) GetTamingFoods() []item.DefID {
	return []item.DefID{itemDefRawMeat}
}

// itemDefRawMeat is the canonical raw-meat definition ID used across
// taming checks; the world package's item registry assigns the concrete
// value, this is the ID both sides agree on.
const itemDefRawMeat item.DefID = 100
