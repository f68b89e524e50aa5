package entity

import (
	"time"

	"github.com/driftlands/survivalcore/server/platform"
)

// AIState is one state in the universal animal state machine.
type AIState uint8

// Animal AI states.
const (
	StateIdle AIState = iota
	StatePatrolling
	StateAlert
	StateChasing
	StateAttacking
	StateStalking
	StateFleeing
	StateBurrowed
	StateHiding
	StateFlying
	StateGrounded
	StateSwimming
	StateSwimmingChase
	StateScavenging
	StateStealing
	StateDespawning
)

// String names an AIState for logging, since every transition is logged
// with a reason.
func (s AIState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePatrolling:
		return "patrolling"
	case StateAlert:
		return "alert"
	case StateChasing:
		return "chasing"
	case StateAttacking:
		return "attacking"
	case StateStalking:
		return "stalking"
	case StateFleeing:
		return "fleeing"
	case StateBurrowed:
		return "burrowed"
	case StateHiding:
		return "hiding"
	case StateFlying:
		return "flying"
	case StateGrounded:
		return "grounded"
	case StateSwimming:
		return "swimming"
	case StateSwimmingChase:
		return "swimming_chase"
	case StateScavenging:
		return "scavenging"
	case StateStealing:
		return "stealing"
	case StateDespawning:
		return "despawning"
	default:
		return "unknown"
	}
}

// WildAnimal is a wild-animal row.
type WildAnimal struct {
	ID         uint64
	Species    string
	Pos        Position
	ChunkIndex uint32
	Direction  float32
	Facing     float32

	State           AIState
	StateChangeTime time.Time
	HideUntil       time.Time

	Health       int
	MaxHealth    int
	SpawnPos     Position
	TargetPlayer platform.Identity
	HasTarget    bool
	PackID       uint64
	HasPack      bool
	TamedBy      platform.Identity
	IsTamed      bool

	// HeldItemDefID is set for thief/scavenger birds carrying a stolen
	// item.
	HeldItemDefID uint32
	HasHeldItem   bool

	DespawnAt    time.Time
	HasDespawnAt bool
	IsHostileNPC bool
}

// AnimalCorpse is an animal-corpse row.
type AnimalCorpse struct {
	ID         uint64
	Species    string
	Pos        Position
	ChunkIndex uint32
	Health     int
	MaxHealth  int
	DeathTime  time.Time
	DespawnAt  time.Time
	SpawnedAt  time.Time
}

// PlayerCorpse is a player-corpse row.
type PlayerCorpse struct {
	ID         uint64
	Owner      platform.Identity
	Pos        Position
	ChunkIndex uint32
	DeathTime  time.Time
	DespawnAt  time.Time
}
