package combat

import (
	"time"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/platform"
)

// SeawaterPoisonDuration and SeawaterPoisonTick implement "drinking sea
// water poisons you": a player who drinks from the sea instead of
// restoring thirst takes periodic damage for a fixed window, grounded on
// drinking.rs.
const (
	SeawaterPoisonDuration = 10 * time.Second
	SeawaterPoisonTick     = 2 * time.Second
	SeawaterPoisonDamage   = 2
)

// InlandDrinkThirstRestore is how much thirst one drink from an inland
// water source restores.
const InlandDrinkThirstRestore = 40

// DrinkResult reports the outcome of a drink attempt, letting the caller
// apply it to whatever thirst/poison-status representation it owns.
type DrinkResult struct {
	ThirstRestored     int
	PoisonedForSeconds time.Duration
}

// Drink implements the drinking reducer: inland water restores thirst
// directly, sea water instead starts the seawater-poisoning window.
func Drink(fromSeaWater bool) DrinkResult {
	if fromSeaWater {
		return DrinkResult{PoisonedForSeconds: SeawaterPoisonDuration}
	}
	return DrinkResult{ThirstRestored: InlandDrinkThirstRestore}
}

// WaterPatchRadius and WaterPatchLifetime are the defaults for a patch
// created by throwing a water container at the ground.
const (
	WaterPatchRadius   = 64.0
	WaterPatchLifetime = 10 * time.Minute
)

// CreateWaterPatch implements the "throw water at the ground" reducer:
// salt water creates a patch that penalises nearby crop growth instead
// of the fresh-water growth buff.
func CreateWaterPatch(id uint64, pos entity.Position, chunk uint32, isSaltWater bool, now time.Time) *entity.WaterPatch {
	return &entity.WaterPatch{
		ID:          id,
		Pos:         pos,
		ChunkIndex:  chunk,
		Radius:      WaterPatchRadius,
		IsSaltWater: isSaltWater,
		ExpiresAt:   now.Add(WaterPatchLifetime),
	}
}

// Fresh-water growth rolls buff, salt-water growth rolls penalise, per
// the (500, 500) sapling round-trip check against a sea-filled jug.
const (
	FreshWaterGrowthMin = 1.15
	FreshWaterGrowthMax = 2.0
	SaltWaterGrowthMin  = 0.5
	SaltWaterGrowthMax  = 0.9
)

// WaterPatchGrowthMultiplier is the crop-growth-rate factor a
// HarvestableResource inside a patch's radius receives: salt water
// penalises, fresh water buffs.
func WaterPatchGrowthMultiplier(p *entity.WaterPatch, rng *platform.RNG) float32 {
	if p.IsSaltWater {
		return rng.Float32Range(SaltWaterGrowthMin, SaltWaterGrowthMax)
	}
	return rng.Float32Range(FreshWaterGrowthMin, FreshWaterGrowthMax)
}

// InPatchRadius reports whether pos falls within patch p's radius.
func InPatchRadius(p *entity.WaterPatch, pos entity.Position) bool {
	dx := pos.X - p.Pos.X
	dy := pos.Y - p.Pos.Y
	return dx*dx+dy*dy <= p.Radius*p.Radius
}

// ExtinguishCampfire implements "throw water at a lit campfire": it is
// extinguished immediately regardless of remaining fuel.
func ExtinguishCampfire(c *entity.Campfire) {
	c.Lit = false
}

// FillBrothPot implements "throw water at a broth pot": adds waterMl up
// to the pot's fixed 1000ml capacity, returning the amount actually
// absorbed.
const BrothPotCapacityMl = 1000

func FillBrothPot(p *entity.BrothPot, waterMl int) (absorbed int) {
	space := BrothPotCapacityMl - p.WaterMl
	if space <= 0 {
		return 0
	}
	if waterMl > space {
		waterMl = space
	}
	p.WaterMl += waterMl
	return waterMl
}
