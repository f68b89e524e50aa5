package ai

import (
	"time"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/item"
	"github.com/driftlands/survivalcore/server/platform"
)

// salmonSharkBehavior implements the shark's Swimming/SwimmingChase state
// machine. Neither it nor Tick consults tile data: the shark's patrol and
// chase movement is not confined to sea tiles, and a shark off a sea tile
// is not routed back to one.
// Grounded on original_source/server/src/wild_animal_npc/salmon_shark.rs.
type salmonSharkBehavior struct{}

func (salmonSharkBehavior) GetStats() AnimalStats { return statsTable[SpeciesSalmonShark] }
func (salmonSharkBehavior) GetMovementPattern() MovementPattern {
	return statsTable[SpeciesSalmonShark].Pattern
}

func (s salmonSharkBehavior) UpdateAIStateLogic(a *entity.WildAnimal, nearest *PlayerContext, dist float32, dt float64, now time.Time, rng *platform.RNG) (entity.AIState, string) {
	stats := s.GetStats()
	if a.Health <= 0 {
		return entity.StateDespawning, "health depleted"
	}
	switch a.State {
	case entity.StateSwimmingChase:
		if nearest == nil || dist > stats.ChaseAbandonRange {
			return entity.StateSwimming, "target left the water"
		}
		if dist <= stats.AttackRange {
			return entity.StateAttacking, "in bite range"
		}
		return entity.StateSwimmingChase, ""
	case entity.StateAttacking:
		if nearest == nil || dist > stats.AttackRange*1.5 {
			return entity.StateSwimmingChase, "target moved out of bite range"
		}
		return entity.StateAttacking, ""
	}
	if nearest != nil && withinPerceptionCone(a.Pos, a.Facing, stats.PerceptionAngle, nearest.Pos, stats.PerceptionRange) {
		if dist <= stats.ChaseTriggerRange {
			return entity.StateSwimmingChase, "prey entered the water"
		}
		return entity.StateAlert, "prey perceived"
	}
	return entity.StateSwimming, ""
}

func (s salmonSharkBehavior) ExecutePatrolLogic(a *entity.WildAnimal, dt float64, rng *platform.RNG) {
	stats := s.GetStats()
	step := float64(stats.MoveSpeed) * dt
	a.Direction += rng.Float32Range(-0.3, 0.3)
	a.Pos.X += step * cosf(a.Direction)
	a.Pos.Y += step * sinf(a.Direction)
	a.Facing = a.Direction
}

func (s salmonSharkBehavior) ExecuteFleeLogic(a *entity.WildAnimal, threat entity.Position, dt float64) {
	// Apex aquatic predator: never flees.
}

func (s salmonSharkBehavior) ExecuteAttackEffects(a *entity.WildAnimal, target *PlayerContext) []Effect {
	return []Effect{{Kind: EffectKnockback, Target: target.Identity}}
}

// ShouldChasePlayer gates on ChaseTriggerRange only; whether the target
// is in the water is not checked here or in Tick.
func (s salmonSharkBehavior) ShouldChasePlayer(a *entity.WildAnimal, target *PlayerContext, dist float32) bool {
	return dist <= s.GetStats().ChaseTriggerRange
}

func (s salmonSharkBehavior) HandleDamageResponse(a *entity.WildAnimal, attacker platform.Identity) entity.AIState {
	return entity.StateSwimmingChase
}

func (s salmonSharkBehavior) GetChaseAbandonmentMultiplier(a *entity.WildAnimal, now time.Time) float32 {
	return 1
}

func (s salmonSharkBehavior) CanBeTamed() bool             { return false }
func (s salmonSharkBehavior) GetTamingFoods() []item.DefID { return nil }
