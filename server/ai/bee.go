package ai

import (
	"time"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/item"
	"github.com/driftlands/survivalcore/server/platform"
)

// FireSourceRadius is the distance from a lit campfire, torch, or fire
// patch within which Tick kills a bee outright on its next AI tick,
// regardless of whether it has stung anyone.
const FireSourceRadius = 3.0

// beeBehavior implements the fire-fear instant-death mechanic: a bee
// that stings a player standing near an open flame dies on the spot,
// grounded on original_source/server/src/wild_animal_npc/bee.rs.
type beeBehavior struct{}

func (beeBehavior) GetStats() AnimalStats               { return statsTable[SpeciesBee] }
func (beeBehavior) GetMovementPattern() MovementPattern { return statsTable[SpeciesBee].Pattern }

func (b beeBehavior) UpdateAIStateLogic(a *entity.WildAnimal, nearest *PlayerContext, dist float32, dt float64, now time.Time, rng *platform.RNG) (entity.AIState, string) {
	stats := b.GetStats()
	if a.Health <= 0 {
		return entity.StateDespawning, "health depleted"
	}
	switch a.State {
	case entity.StateChasing:
		if nearest == nil || dist > stats.ChaseAbandonRange {
			return entity.StatePatrolling, "target out of range"
		}
		if dist <= stats.AttackRange {
			return entity.StateAttacking, "in sting range"
		}
		return entity.StateChasing, ""
	case entity.StateAttacking:
		if nearest == nil || dist > stats.AttackRange*1.5 {
			return entity.StateChasing, "target moved"
		}
		return entity.StateAttacking, ""
	}
	if nearest != nil && dist <= stats.PerceptionRange {
		if dist <= stats.ChaseTriggerRange {
			return entity.StateChasing, "target within sting range"
		}
		return entity.StateAlert, "target perceived"
	}
	return entity.StatePatrolling, ""
}

func (b beeBehavior) ExecutePatrolLogic(a *entity.WildAnimal, dt float64, rng *platform.RNG) {
	stats := b.GetStats()
	step := float64(stats.MoveSpeed) * dt
	a.Direction += rng.Float32Range(-0.6, 0.6)
	a.Pos.X += step * cosf(a.Direction)
	a.Pos.Y += step * sinf(a.Direction)
	a.Facing = a.Direction
}

func (b beeBehavior) ExecuteFleeLogic(a *entity.WildAnimal, threat entity.Position, dt float64) {
	// Bees never flee: they sting and, away from fire, survive.
}

// ExecuteAttackEffects returns EffectInstantDeath when the target is
// holding a fire source, killing the bee on its own sting; otherwise a
// bare sting with no side effect.
func (b beeBehavior) ExecuteAttackEffects(a *entity.WildAnimal, target *PlayerContext) []Effect {
	if target.HoldsFireSource {
		a.Health = 0
		return []Effect{{Kind: EffectInstantDeath, Target: target.Identity}}
	}
	return []Effect{{Kind: EffectNone, Target: target.Identity}}
}

func (b beeBehavior) ShouldChasePlayer(a *entity.WildAnimal, target *PlayerContext, dist float32) bool {
	stats := b.GetStats()
	return dist <= stats.ChaseTriggerRange
}

func (b beeBehavior) HandleDamageResponse(a *entity.WildAnimal, attacker platform.Identity) entity.AIState {
	return entity.StateChasing
}

func (b beeBehavior) GetChaseAbandonmentMultiplier(a *entity.WildAnimal, now time.Time) float32 {
	return 1
}

func (b beeBehavior) CanBeTamed() bool             { return false }
func (b beeBehavior) GetTamingFoods() []item.DefID { return nil }
