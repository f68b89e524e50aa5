package ai

import (
	"time"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/item"
	"github.com/driftlands/survivalcore/server/platform"
)

// FatigueChaseDuration is how long a polar bear chases continuously
// before GetChaseAbandonmentMultiplier starts applying the fatigue
// reduction.
const FatigueChaseDuration = 8 * time.Second

// FatigueAbandonMultiplier is the hard-coded 60% reduction in effective
// chase-abandon range a fatigued polar bear applies, making it give up a
// prolonged chase far sooner than its raw ChaseAbandonRange would suggest.
const FatigueAbandonMultiplier = 0.4

// polarBearBehavior implements the fatigue-based chase-abandonment
// reduction, grounded on original_source/server/src/wild_animal_npc/polar_bear.rs.
type polarBearBehavior struct{}

func (polarBearBehavior) GetStats() AnimalStats { return statsTable[SpeciesPolarBear] }
func (polarBearBehavior) GetMovementPattern() MovementPattern {
	return statsTable[SpeciesPolarBear].Pattern
}

func (p polarBearBehavior) UpdateAIStateLogic(a *entity.WildAnimal, nearest *PlayerContext, dist float32, dt float64, now time.Time, rng *platform.RNG) (entity.AIState, string) {
	stats := p.GetStats()
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
		if abandonChase(dist, stats.ChaseAbandonRange, p.GetChaseAbandonmentMultiplier(a, now)) {
			return entity.StatePatrolling, "fatigued, abandoning chase"
		}
		if dist <= stats.AttackRange {
			return entity.StateAttacking, "in swipe range"
		}
		return entity.StateChasing, ""
	case entity.StateAttacking:
		if nearest == nil || dist > stats.AttackRange*1.5 {
			return entity.StateChasing, "target moved out of swipe range"
		}
		return entity.StateAttacking, ""
	}
	if nearest != nil && withinPerceptionCone(a.Pos, a.Facing, stats.PerceptionAngle, nearest.Pos, stats.PerceptionRange) {
		if dist <= stats.ChaseTriggerRange {
			return entity.StateChasing, "target within chase trigger range"
		}
		return entity.StateAlert, "target perceived"
	}
	if a.State == entity.StateIdle || a.State == entity.StateAlert {
		return entity.StatePatrolling, ""
	}
	return a.State, ""
}

func (p polarBearBehavior) ExecutePatrolLogic(a *entity.WildAnimal, dt float64, rng *platform.RNG) {
	stats := p.GetStats()
	step := float64(stats.MoveSpeed) * dt
	a.Direction += rng.Float32Range(-0.2, 0.2)
	a.Pos.X += step * cosf(a.Direction)
	a.Pos.Y += step * sinf(a.Direction)
	a.Facing = a.Direction
}

func (p polarBearBehavior) ExecuteFleeLogic(a *entity.WildAnimal, threat entity.Position, dt float64) {
	stats := p.GetStats()
	a.Pos = fleeDestination(a.Pos, threat, stats.SprintSpeed*float32(dt))
}

func (p polarBearBehavior) ExecuteAttackEffects(a *entity.WildAnimal, target *PlayerContext) []Effect {
	return []Effect{{Kind: EffectKnockback, Target: target.Identity}}
}

func (p polarBearBehavior) ShouldChasePlayer(a *entity.WildAnimal, target *PlayerContext, dist float32) bool {
	if fireFearTriggered(target.HoldsFireSource) {
		return false
	}
	return dist <= p.GetStats().ChaseTriggerRange
}

func (p polarBearBehavior) HandleDamageResponse(a *entity.WildAnimal, attacker platform.Identity) entity.AIState {
	return entity.StateChasing
}

// GetChaseAbandonmentMultiplier returns FatigueAbandonMultiplier once the
// bear has held StateChasing continuously for FatigueChaseDuration, else
// 1 (full range).
func (p polarBearBehavior) GetChaseAbandonmentMultiplier(a *entity.WildAnimal, now time.Time) float32 {
	if a.State != entity.StateChasing {
		return 1
	}
	if now.Sub(a.StateChangeTime) >= FatigueChaseDuration {
		return FatigueAbandonMultiplier
	}
	return 1
}

func (p polarBearBehavior) CanBeTamed() bool             { return false }
func (p polarBearBehavior) GetTamingFoods() []item.DefID { return nil }
