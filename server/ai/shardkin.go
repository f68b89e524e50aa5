package ai

import (
	"time"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/item"
	"github.com/driftlands/survivalcore/server/platform"
)

// FlashlightHesitationChance is the per-tick probability a Shardkin
// re-rolls its hesitation instead of closing distance on a player holding
// a lit flashlight.
const FlashlightHesitationChance = 0.4

// shardkinBehavior implements the flashlight-hesitation mechanic,
// grounded on original_source/server/src/wild_animal_npc/shardkin.rs.
type shardkinBehavior struct{}

func (shardkinBehavior) GetStats() AnimalStats { return statsTable[SpeciesShardkin] }
func (shardkinBehavior) GetMovementPattern() MovementPattern {
	return statsTable[SpeciesShardkin].Pattern
}

func (sk shardkinBehavior) UpdateAIStateLogic(a *entity.WildAnimal, nearest *PlayerContext, dist float32, dt float64, now time.Time, rng *platform.RNG) (entity.AIState, string) {
	stats := sk.GetStats()
	if a.Health <= 0 {
		return entity.StateDespawning, "health depleted"
	}
	if float32(a.Health) <= stats.FleeHealthThreshold*float32(stats.MaxHealth) {
		return entity.StateFleeing, "health below flee threshold"
	}
	switch a.State {
	case entity.StateFleeing:
		if nearest == nil || dist > stats.ChaseAbandonRange {
			return entity.StateIdle, "threat receded"
		}
		return entity.StateFleeing, ""
	case entity.StateStalking:
		if nearest == nil {
			return entity.StatePatrolling, "target lost"
		}
		if nearest.HoldsFlashlight && flashlightHesitationTriggered(true, rng.Float32(), FlashlightHesitationChance) {
			return entity.StateStalking, "hesitating at the flashlight beam"
		}
		if dist <= stats.AttackRange {
			return entity.StateAttacking, "closed to attack range"
		}
		return entity.StateStalking, ""
	case entity.StateAttacking:
		if nearest == nil || dist > stats.AttackRange*1.5 {
			return entity.StateStalking, "target moved out of attack range"
		}
		return entity.StateAttacking, ""
	}
	if nearest != nil && withinPerceptionCone(a.Pos, a.Facing, stats.PerceptionAngle, nearest.Pos, stats.PerceptionRange) {
		if dist <= stats.ChaseTriggerRange {
			return entity.StateStalking, "target spotted, beginning stalk"
		}
		return entity.StateAlert, "target perceived"
	}
	if a.State == entity.StateIdle || a.State == entity.StateAlert {
		return entity.StatePatrolling, ""
	}
	return a.State, ""
}

func (sk shardkinBehavior) ExecutePatrolLogic(a *entity.WildAnimal, dt float64, rng *platform.RNG) {
	stats := sk.GetStats()
	step := float64(stats.MoveSpeed) * dt
	a.Direction += rng.Float32Range(-0.3, 0.3)
	a.Pos.X += step * cosf(a.Direction)
	a.Pos.Y += step * sinf(a.Direction)
	a.Facing = a.Direction
}

func (sk shardkinBehavior) ExecuteFleeLogic(a *entity.WildAnimal, threat entity.Position, dt float64) {
	stats := sk.GetStats()
	a.Pos = fleeDestination(a.Pos, threat, stats.SprintSpeed*float32(dt))
}

func (sk shardkinBehavior) ExecuteAttackEffects(a *entity.WildAnimal, target *PlayerContext) []Effect {
	return []Effect{{Kind: EffectBleed, Target: target.Identity}}
}

// ShouldChasePlayer gates on ChaseTriggerRange only; flashlight
// hesitation is applied by UpdateAIStateLogic instead, since it alone has
// access to rng.
func (sk shardkinBehavior) ShouldChasePlayer(a *entity.WildAnimal, target *PlayerContext, dist float32) bool {
	return dist <= sk.GetStats().ChaseTriggerRange
}

func (sk shardkinBehavior) HandleDamageResponse(a *entity.WildAnimal, attacker platform.Identity) entity.AIState {
	return entity.StateStalking
}

func (sk shardkinBehavior) GetChaseAbandonmentMultiplier(a *entity.WildAnimal, now time.Time) float32 {
	return 1
}

func (sk shardkinBehavior) CanBeTamed() bool             { return false }
func (sk shardkinBehavior) GetTamingFoods() []item.DefID { return nil }
