package ai

import (
	"time"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/item"
	"github.com/driftlands/survivalcore/server/platform"
)

// PlayerContext is the minimal read-only view of a candidate target a
// Behavior needs; the world package supplies the real one from its player
// table, tests supply a literal.
type PlayerContext struct {
	Identity platform.Identity
	Pos      entity.Position
	// HoldsFireSource/HoldsFlashlight/WearsFur back the fire-fear, wolf-
	// fur-intimidation, and Shardkin flashlight-hesitation rules: each is
	// evaluated once by the caller per tick and passed in, rather than
	// having Behavior reach back into the world itself.
	HoldsFireSource bool
	HoldsFlashlight bool
	WearsFur        bool
}

// Behavior is the per-species strategy Dispatch resolves. A Go interface
// stands in for the original's virtual-method table; Dispatch below is a
// closed switch over a registry, since the species roster is fixed and
// known in advance.
type Behavior interface {
	GetStats() AnimalStats
	GetMovementPattern() MovementPattern

	// UpdateAIStateLogic computes the next AIState given the animal's
	// current state and its nearest-player/perception inputs. It returns
	// the new state and, when non-empty, a reason string for the state
	// transition log line.
	UpdateAIStateLogic(a *entity.WildAnimal, nearest *PlayerContext, distance float32, dt float64, now time.Time, rng *platform.RNG) (next entity.AIState, reason string)

	// ExecutePatrolLogic advances position/facing for a non-combat tick
	// (Idle/Patrolling/Flying/Grounded/Swimming states).
	ExecutePatrolLogic(a *entity.WildAnimal, dt float64, rng *platform.RNG)

	// ExecuteFleeLogic advances position away from the fleeing target.
	ExecuteFleeLogic(a *entity.WildAnimal, threat entity.Position, dt float64)

	// ExecuteAttackEffects applies the species' on-hit effects beyond raw
	// damage (e.g. bee stinger instant death near fire, below).
	ExecuteAttackEffects(a *entity.WildAnimal, target *PlayerContext) []Effect

	// ShouldChasePlayer applies species-specific chase gating on top of
	// the common perception check (fire fear, fur intimidation).
	ShouldChasePlayer(a *entity.WildAnimal, target *PlayerContext, distance float32) bool

	// HandleDamageResponse decides the reaction to being hit: most
	// species transition to Fleeing or Alert; this lets a species
	// override (e.g. a cornered wolf pack holding ground).
	HandleDamageResponse(a *entity.WildAnimal, attacker platform.Identity) entity.AIState

	// GetChaseAbandonmentMultiplier scales ChaseAbandonRange; the polar
	// bear's hard-coded 60% reduction when it wears itself out is the
	// motivating case. now is the caller's tick time, not
	// wall-clock time, so chase fatigue stays deterministic and testable.
	GetChaseAbandonmentMultiplier(a *entity.WildAnimal, now time.Time) float32

	CanBeTamed() bool
	GetTamingFoods() []item.DefID
}

// Effect is one on-hit side effect ExecuteAttackEffects may return.
type Effect struct {
	Kind   EffectKind
	Target platform.Identity
}

type EffectKind uint8

const (
	EffectNone EffectKind = iota
	EffectKnockback
	EffectBleed
	EffectPoison
	// EffectInstantDeath models a bee stinging while within a fire
	// source's radius: it dies immediately rather than simply expending
	// its one sting.
	EffectInstantDeath
)

// Dispatch returns the Behavior for a species. A known ~15-entry roster
// doesn't need registry-style extensibility, so this is a plain switch.
func Dispatch(s Species) Behavior {
	switch s {
	case SpeciesBee:
		return beeBehavior{}
	case SpeciesWolf:
		return wolfBehavior{}
	case SpeciesSalmonShark:
		return salmonSharkBehavior{}
	case SpeciesShardkin:
		return shardkinBehavior{}
	case SpeciesPolarBear:
		return polarBearBehavior{}
	default:
		return genericBehavior{species: s}
	}
}
