package combat

import (
	"math"
	"time"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/item"
	"github.com/driftlands/survivalcore/server/platform"
)

// HealthState is the minimal mutable health view Strike operates on. It
// is satisfied directly by copying from entity.WildAnimal's Health/
// MaxHealth fields for PvE, and by the world package's own player row
// for PvP — combat stays decoupled from a concrete Player type, which
// this module does not own.
type HealthState struct {
	Health    int
	MaxHealth int
}

// RollRawDamage implements step 2: a uniform roll in [min, max] from the
// weapon's damage profile for targetTypeKey ("pvp" for a player target,
// otherwise the victim's species/resource tag).
func RollRawDamage(weapon *item.ItemDefinition, targetTypeKey string, rng *platform.RNG) (float64, error) {
	profile, ok := weapon.Damage[targetTypeKey]
	if !ok {
		return 0, ErrNoDamageRow
	}
	return rng.Float64Range(profile.Min, profile.Max), nil
}

// DamageEffects records which secondary effects a strike applied (step 4).
type DamageEffects struct {
	Bleed               bool
	Poison              bool
	Knockback           bool
	KnockbackDistancePx float64
}

// StrikeInput bundles everything Strike needs to run steps 3-6 of the
// damage pipeline for one hit.
type StrikeInput struct {
	DamageType          string
	Raw                 float64
	DefenderArmour      []*item.ItemDefinition
	MeleeStrike         bool
	Bleeds              bool
	Poisons             bool
	Knockbacks          bool
	KnockbackDistancePx float64
}

// StrikeResult is the outcome of one Strike call.
type StrikeResult struct {
	RawDamage         float64
	EffectiveDamage   float64
	ReflectedDamage   float64
	Effects           DamageEffects
	VictimHealthAfter int
	VictimDied        bool
}

// knockbackImmunityTag is the Immunities map key armour uses to grant
// knockback immunity, distinct from the per-damage-type keys since
// knockback is not itself a damage type.
const knockbackImmunityTag = "knockback"

// Strike implements steps 3-6 of the damage pipeline: armour resistance
// (capped at MaxResistance), immunity gating on secondary effects,
// melee-reflect (capped at MaxMeleeReflect), and the health subtraction
// that determines death.
func Strike(victim *HealthState, in StrikeInput) StrikeResult {
	immune := AggregateImmunities(in.DefenderArmour)
	resist := AggregateResistance(in.DefenderArmour, in.DamageType)
	effective := in.Raw * float64(1-resist)

	if in.DamageType == DamageFire {
		effective *= float64(AggregateFireAmplify(in.DefenderArmour))
	}

	effects := DamageEffects{}
	if in.Bleeds && !immune[DamageBleed] {
		effects.Bleed = true
	}
	if in.Poisons && !immune[DamagePoison] {
		effects.Poison = true
	}
	if in.Knockbacks && !immune[knockbackImmunityTag] {
		effects.Knockback = true
		effects.KnockbackDistancePx = in.KnockbackDistancePx
	}

	var reflected float64
	if in.MeleeStrike {
		reflect := AggregateMeleeReflect(in.DefenderArmour)
		reflected = effective * float64(reflect)
	}

	victim.Health -= int(math.Round(effective))
	died := victim.Health <= 0
	if died {
		victim.Health = 0
	}

	return StrikeResult{
		RawDamage:         in.Raw,
		EffectiveDamage:   effective,
		ReflectedDamage:   reflected,
		Effects:           effects,
		VictimHealthAfter: victim.Health,
		VictimDied:        died,
	}
}

// AnimalCorpseDespawn is how long after death an unharvested animal
// corpse remains before the corpse-cleanup job removes it.
const AnimalCorpseDespawn = 30 * time.Minute

// PlayerCorpseDespawn is the analogous window for a player's loot corpse.
const PlayerCorpseDespawn = time.Hour

// CreateAnimalCorpse implements step 6's "mark dead and create a corpse"
// for a wild animal.
func CreateAnimalCorpse(a *entity.WildAnimal, now time.Time) *entity.AnimalCorpse {
	return &entity.AnimalCorpse{
		ID:         a.ID,
		Species:    a.Species,
		Pos:        a.Pos,
		ChunkIndex: a.ChunkIndex,
		Health:     a.MaxHealth,
		MaxHealth:  a.MaxHealth,
		DeathTime:  now,
		DespawnAt:  now.Add(AnimalCorpseDespawn),
		SpawnedAt:  now,
	}
}

// CreatePlayerCorpse implements step 6 for a player death.
func CreatePlayerCorpse(owner platform.Identity, pos entity.Position, chunk uint32, now time.Time) *entity.PlayerCorpse {
	return &entity.PlayerCorpse{
		Owner:      owner,
		Pos:        pos,
		ChunkIndex: chunk,
		DeathTime:  now,
		DespawnAt:  now.Add(PlayerCorpseDespawn),
	}
}
