package ai

import "time"

// MovementPattern selects how ExecutePatrolLogic advances an idle animal
// (wander vs fixed-path patrol vs stationary ambush).
type MovementPattern uint8

const (
	MovementWander MovementPattern = iota
	MovementPatrolPath
	MovementStationary
	MovementFlock
)

// AnimalStats is the per-species constant sheet Behavior.GetStats returns.
// Grounded on original_source/server/src/wild_animal_npc/stats.rs: the
// original keeps one struct-literal table per species rather than a
// database table, which this mirrors.
type AnimalStats struct {
	MaxHealth int
	Damage    int

	AttackRange    float32
	AttackCooldown time.Duration

	MoveSpeed   float32
	SprintSpeed float32

	PerceptionRange float32
	// PerceptionAngle is the half-angle, in radians, of the species'
	// forward vision cone; 0 means omnidirectional (used for Hare/Vole,
	// who rely on proximity rather than sight).
	PerceptionAngle float32

	PatrolRadius float32

	ChaseTriggerRange   float32
	ChaseAbandonRange   float32
	FleeHealthThreshold float32
	HideDuration        time.Duration

	Pattern MovementPattern
}

// statsTable holds one AnimalStats per Species, grounded on the original's
// per-species constant blocks.
var statsTable = map[Species]AnimalStats{
	SpeciesBee: {
		MaxHealth: 5, Damage: 2,
		AttackRange: 1.0, AttackCooldown: 500 * time.Millisecond,
		MoveSpeed: 4.5, SprintSpeed: 6.0,
		PerceptionRange: 8, PerceptionAngle: 0,
		PatrolRadius: 6, ChaseTriggerRange: 8, ChaseAbandonRange: 14,
		FleeHealthThreshold: 0, HideDuration: 0,
		Pattern: MovementFlock,
	},
	SpeciesWolf: {
		MaxHealth: 40, Damage: 8,
		AttackRange: 1.5, AttackCooldown: 1200 * time.Millisecond,
		MoveSpeed: 5.0, SprintSpeed: 9.0,
		PerceptionRange: 22, PerceptionAngle: 1.4,
		PatrolRadius: 16, ChaseTriggerRange: 18, ChaseAbandonRange: 30,
		FleeHealthThreshold: 0.15, HideDuration: 10 * time.Second,
		Pattern: MovementWander,
	},
	SpeciesCrow: {
		MaxHealth: 6, Damage: 0,
		AttackRange: 0, AttackCooldown: 0,
		MoveSpeed: 5.0, SprintSpeed: 8.0,
		PerceptionRange: 14, PerceptionAngle: 0,
		PatrolRadius: 20, ChaseTriggerRange: 0, ChaseAbandonRange: 0,
		FleeHealthThreshold: 1.0, HideDuration: 0,
		Pattern: MovementWander,
	},
	SpeciesSalmonShark: {
		MaxHealth: 30, Damage: 10,
		AttackRange: 2.0, AttackCooldown: 1500 * time.Millisecond,
		MoveSpeed: 6.0, SprintSpeed: 11.0,
		PerceptionRange: 18, PerceptionAngle: 1.2,
		PatrolRadius: 14, ChaseTriggerRange: 16, ChaseAbandonRange: 26,
		FleeHealthThreshold: 0, HideDuration: 0,
		Pattern: MovementWander,
	},
	SpeciesPolarBear: {
		MaxHealth: 60, Damage: 14,
		AttackRange: 2.0, AttackCooldown: 1500 * time.Millisecond,
		MoveSpeed: 4.0, SprintSpeed: 7.5,
		PerceptionRange: 20, PerceptionAngle: 1.4,
		PatrolRadius: 18, ChaseTriggerRange: 20, ChaseAbandonRange: 32,
		FleeHealthThreshold: 0.1, HideDuration: 0,
		Pattern: MovementWander,
	},
	SpeciesFox: {
		MaxHealth: 12, Damage: 3,
		AttackRange: 1.0, AttackCooldown: 800 * time.Millisecond,
		MoveSpeed: 5.5, SprintSpeed: 9.5,
		PerceptionRange: 12, PerceptionAngle: 1.2,
		PatrolRadius: 10, ChaseTriggerRange: 0, ChaseAbandonRange: 0,
		FleeHealthThreshold: 0.4, HideDuration: 6 * time.Second,
		Pattern: MovementWander,
	},
	SpeciesHare: {
		MaxHealth: 4, Damage: 0,
		AttackRange: 0, AttackCooldown: 0,
		MoveSpeed: 6.5, SprintSpeed: 11.0,
		PerceptionRange: 9, PerceptionAngle: 0,
		PatrolRadius: 6, ChaseTriggerRange: 0, ChaseAbandonRange: 0,
		FleeHealthThreshold: 1.0, HideDuration: 8 * time.Second,
		Pattern: MovementWander,
	},
	SpeciesShardkin: {
		MaxHealth: 35, Damage: 9,
		AttackRange: 1.5, AttackCooldown: 1000 * time.Millisecond,
		MoveSpeed: 5.0, SprintSpeed: 8.5,
		PerceptionRange: 16, PerceptionAngle: 1.0,
		PatrolRadius: 14, ChaseTriggerRange: 16, ChaseAbandonRange: 24,
		FleeHealthThreshold: 0.2, HideDuration: 5 * time.Second,
		Pattern: MovementWander,
	},
	SpeciesShorebound: {
		MaxHealth: 18, Damage: 5,
		AttackRange: 1.2, AttackCooldown: 900 * time.Millisecond,
		MoveSpeed: 4.5, SprintSpeed: 7.0,
		PerceptionRange: 11, PerceptionAngle: 1.0,
		PatrolRadius: 9, ChaseTriggerRange: 10, ChaseAbandonRange: 16,
		FleeHealthThreshold: 0.3, HideDuration: 4 * time.Second,
		Pattern: MovementWander,
	},
	SpeciesSnowyOwl: {
		MaxHealth: 10, Damage: 4,
		AttackRange: 1.2, AttackCooldown: 1000 * time.Millisecond,
		MoveSpeed: 5.0, SprintSpeed: 9.0,
		PerceptionRange: 24, PerceptionAngle: 1.5,
		PatrolRadius: 22, ChaseTriggerRange: 18, ChaseAbandonRange: 28,
		FleeHealthThreshold: 0.3, HideDuration: 0,
		Pattern: MovementWander,
	},
	SpeciesTern: {
		MaxHealth: 5, Damage: 0,
		AttackRange: 0, AttackCooldown: 0,
		MoveSpeed: 6.0, SprintSpeed: 10.0,
		PerceptionRange: 10, PerceptionAngle: 0,
		PatrolRadius: 18, ChaseTriggerRange: 0, ChaseAbandonRange: 0,
		FleeHealthThreshold: 1.0, HideDuration: 0,
		Pattern: MovementFlock,
	},
	SpeciesVole: {
		MaxHealth: 3, Damage: 0,
		AttackRange: 0, AttackCooldown: 0,
		MoveSpeed: 4.0, SprintSpeed: 6.5,
		PerceptionRange: 6, PerceptionAngle: 0,
		PatrolRadius: 4, ChaseTriggerRange: 0, ChaseAbandonRange: 0,
		FleeHealthThreshold: 1.0, HideDuration: 10 * time.Second,
		Pattern: MovementStationary,
	},
	SpeciesCrab: {
		MaxHealth: 8, Damage: 2,
		AttackRange: 1.0, AttackCooldown: 1000 * time.Millisecond,
		MoveSpeed: 2.5, SprintSpeed: 3.5,
		PerceptionRange: 7, PerceptionAngle: 0,
		PatrolRadius: 5, ChaseTriggerRange: 0, ChaseAbandonRange: 0,
		FleeHealthThreshold: 0.5, HideDuration: 6 * time.Second,
		Pattern: MovementStationary,
	},
	SpeciesNightRaider: {
		MaxHealth: 45, Damage: 12,
		AttackRange: 1.8, AttackCooldown: 900 * time.Millisecond,
		MoveSpeed: 5.5, SprintSpeed: 9.5,
		PerceptionRange: 20, PerceptionAngle: 1.6,
		PatrolRadius: 20, ChaseTriggerRange: 22, ChaseAbandonRange: 34,
		FleeHealthThreshold: 0, HideDuration: 0,
		Pattern: MovementWander,
	},
	SpeciesNightStalker: {
		MaxHealth: 50, Damage: 15,
		AttackRange: 1.5, AttackCooldown: 1100 * time.Millisecond,
		MoveSpeed: 4.5, SprintSpeed: 10.0,
		PerceptionRange: 24, PerceptionAngle: 1.0,
		PatrolRadius: 24, ChaseTriggerRange: 26, ChaseAbandonRange: 38,
		FleeHealthThreshold: 0, HideDuration: 0,
		Pattern: MovementWander,
	},
}
