package ai

import (
	"time"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/item"
	"github.com/driftlands/survivalcore/server/platform"
)

// genericBehavior implements the common state machine for every species
// that doesn't need bespoke mechanics: perception-gated chase, health-
// threshold flee, and a wander patrol. Most of the roster (Crow,
// PolarBear's non-fatigue path aside, Fox, Hare, Shorebound, SnowyOwl,
// Tern, Vole, Crab, and both night-hostile NPCs) runs on this.
type genericBehavior struct {
	species Species
}

func (g genericBehavior) GetStats() AnimalStats               { return statsTable[g.species] }
func (g genericBehavior) GetMovementPattern() MovementPattern { return statsTable[g.species].Pattern }

func (g genericBehavior) UpdateAIStateLogic(a *entity.WildAnimal, nearest *PlayerContext, dist float32, dt float64, now time.Time, rng *platform.RNG) (entity.AIState, string) {
	stats := g.GetStats()

	if a.Health <= 0 {
		return entity.StateDespawning, "health depleted"
	}

	if float32(a.Health) <= stats.FleeHealthThreshold*float32(stats.MaxHealth) && stats.FleeHealthThreshold > 0 {
		return entity.StateFleeing, "health below flee threshold"
	}

	switch a.State {
	case entity.StateFleeing:
		if nearest == nil || dist > stats.ChaseAbandonRange {
			return entity.StateIdle, "threat no longer in range"
		}
		return entity.StateFleeing, ""
	case entity.StateChasing:
		if nearest == nil {
			return entity.StatePatrolling, "target lost"
		}
		if abandonChase(dist, stats.ChaseAbandonRange, 1) {
			return entity.StatePatrolling, "target out of chase range"
		}
		if dist <= stats.AttackRange {
			return entity.StateAttacking, "in attack range"
		}
		return entity.StateChasing, ""
	case entity.StateAttacking:
		if nearest == nil || dist > stats.AttackRange*1.5 {
			return entity.StateChasing, "target moved out of attack range"
		}
		return entity.StateAttacking, ""
	}

	if nearest != nil && withinPerceptionCone(a.Pos, a.Facing, stats.PerceptionAngle, nearest.Pos, stats.PerceptionRange) {
		if stats.ChaseTriggerRange > 0 && dist <= stats.ChaseTriggerRange {
			if fireFearTriggered(nearest.HoldsFireSource) || furIntimidationTriggered(nearest.WearsFur) {
				return entity.StateAlert, "perceived target but fire/fur suppressed chase"
			}
			return entity.StateChasing, "target within chase trigger range"
		}
		return entity.StateAlert, "target perceived"
	}

	if a.State == entity.StateIdle || a.State == entity.StateAlert {
		return entity.StatePatrolling, ""
	}
	return a.State, ""
}

func (g genericBehavior) ExecutePatrolLogic(a *entity.WildAnimal, dt float64, rng *platform.RNG) {
	stats := g.GetStats()
	switch stats.Pattern {
	case MovementStationary:
		return
	default:
		step := float64(stats.MoveSpeed) * dt
		a.Direction += rng.Float32Range(-0.3, 0.3)
		a.Pos.X += step * cosf(a.Direction)
		a.Pos.Y += step * sinf(a.Direction)
		a.Facing = a.Direction
	}
}

func (g genericBehavior) ExecuteFleeLogic(a *entity.WildAnimal, threat entity.Position, dt float64) {
	stats := g.GetStats()
	dest := fleeDestination(a.Pos, threat, stats.SprintSpeed*float32(dt))
	a.Pos = dest
}

func (g genericBehavior) ExecuteAttackEffects(a *entity.WildAnimal, target *PlayerContext) []Effect {
	if g.GetStats().Damage <= 0 {
		return nil
	}
	return []Effect{{Kind: EffectNone, Target: target.Identity}}
}

func (g genericBehavior) ShouldChasePlayer(a *entity.WildAnimal, target *PlayerContext, dist float32) bool {
	stats := g.GetStats()
	if stats.ChaseTriggerRange <= 0 {
		return false
	}
	if fireFearTriggered(target.HoldsFireSource) || furIntimidationTriggered(target.WearsFur) {
		return false
	}
	return dist <= stats.ChaseTriggerRange
}

func (g genericBehavior) HandleDamageResponse(a *entity.WildAnimal, attacker platform.Identity) entity.AIState {
	stats := g.GetStats()
	if stats.Damage == 0 {
		return entity.StateFleeing
	}
	return entity.StateAlert
}

func (g genericBehavior) GetChaseAbandonmentMultiplier(a *entity.WildAnimal, now time.Time) float32 {
	return 1
}

func (g genericBehavior) CanBeTamed() bool             { return false }
func (g genericBehavior) GetTamingFoods() []item.DefID { return nil }
