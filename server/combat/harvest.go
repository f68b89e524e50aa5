package combat

import (
	"time"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/item"
	"github.com/driftlands/survivalcore/server/platform"
)

// PrimaryToolFraction and FallbackToolFraction implement the "right tool
// vs. making do" yield scaling: a hit with the yield's intended primary
// tool rolls at the table's own chance; any other tool rolls at 40% of
// it, floored at 10%, grounded on collectible_resources.rs/
// harvestable_resource.rs.
const (
	FallbackToolFraction    = 0.4
	FallbackToolFractionMin = 0.1
)

// HarvestTarget is the minimal mutable health view HarvestHit operates
// on — satisfied by copying from Tree/Stone/HarvestableResource/
// LivingCoral's Health/MaxHealth fields.
type HarvestTarget struct {
	Health    int
	MaxHealth int
}

// ToolYieldChance scales a yield table entry's base chance by the tool
// actually used: HarvestMultiplier for the right tool, the fallback
// fraction (floored) otherwise.
func ToolYieldChance(baseChance float32, tool *item.ItemDefinition, isPrimaryTool bool) float32 {
	mult := float32(1)
	if tool != nil && tool.HarvestMultiplier > 0 {
		mult = tool.HarvestMultiplier
	}
	if !isPrimaryTool {
		mult *= FallbackToolFraction
		if mult < FallbackToolFractionMin {
			mult = FallbackToolFractionMin
		}
	}
	chance := baseChance * mult
	if chance > 1 {
		chance = 1
	}
	return chance
}

// HarvestHit implements one hit of resource harvesting (trees, stones,
// harvestables, corals): reduce health by hitDamage, independently roll
// each yield table entry against the tool-scaled chance, and report
// whether the target depleted.
func HarvestHit(target *HarvestTarget, hitDamage int, yields []item.Yield, tool *item.ItemDefinition, isPrimaryTool bool, rng *platform.RNG) (granted []item.Yield, depleted bool) {
	target.Health -= hitDamage
	for _, y := range yields {
		chance := ToolYieldChance(y.Chance, tool, isPrimaryTool)
		if rng.Chance(chance) {
			qty := rng.IntRange(y.MinQty, y.MaxQty)
			granted = append(granted, item.Yield{ItemDefID: y.ItemDefID, MinQty: qty, MaxQty: qty, Chance: y.Chance})
		}
	}
	if target.Health <= 0 {
		target.Health = 0
		depleted = true
	}
	return granted, depleted
}

// The respawn-delay bounds per resource kind; player-planted crops reuse
// the wild-plant bounds, and tree/stone/coral respawn windows are uniform
// regardless of season.
var (
	WildPlantRespawnMin = 20 * time.Minute
	WildPlantRespawnMax = 45 * time.Minute
	TreeRespawnMin      = 30 * time.Minute
	TreeRespawnMax      = time.Hour
	StoneRespawnMin     = 45 * time.Minute
	StoneRespawnMax     = 90 * time.Minute
	CoralRespawnMin     = time.Hour
	CoralRespawnMax     = 2 * time.Hour
)

// SeasonalScarcity is the multiplier wild (not player-planted) plants
// apply to their respawn delay: scarce in winter, abundant in summer.
func SeasonalScarcity(s entity.Season) float32 {
	switch s {
	case entity.SeasonWinter:
		return 1.8
	case entity.SeasonAutumn:
		return 1.3
	case entity.SeasonSpring:
		return 0.9
	case entity.SeasonSummer:
		return 0.7
	default:
		return 1.0
	}
}

// ScheduleWildPlantRespawn implements the depletion step for a wild
// (not player-planted) HarvestableResource: rolls a respawn delay in
// [min, max] and scales it by the current season's scarcity multiplier.
func ScheduleWildPlantRespawn(now time.Time, season entity.Season, rng *platform.RNG) time.Time {
	base := rng.DurationRange(WildPlantRespawnMin, WildPlantRespawnMax)
	scaled := time.Duration(float64(base) * float64(SeasonalScarcity(season)))
	return now.Add(scaled)
}

// ScheduleCropRespawn implements the depletion step for a player-planted
// crop: the seasonal-scarcity multiplier does not apply.
func ScheduleCropRespawn(now time.Time, rng *platform.RNG) time.Time {
	return now.Add(rng.DurationRange(WildPlantRespawnMin, WildPlantRespawnMax))
}

// ScheduleTreeRespawn and ScheduleStoneRespawn/ScheduleCoralRespawn
// implement depletion scheduling for the remaining harvestable kinds,
// none of which carry a seasonal scarcity penalty.
func ScheduleTreeRespawn(now time.Time, rng *platform.RNG) time.Time {
	return now.Add(rng.DurationRange(TreeRespawnMin, TreeRespawnMax))
}

func ScheduleStoneRespawn(now time.Time, rng *platform.RNG) time.Time {
	return now.Add(rng.DurationRange(StoneRespawnMin, StoneRespawnMax))
}

func ScheduleCoralRespawn(now time.Time, rng *platform.RNG) time.Time {
	return now.Add(rng.DurationRange(CoralRespawnMin, CoralRespawnMax))
}

// CorpseLootTable maps a species name (ai.Species.String()) to its
// harvest yield table, content data supplied by the caller the same way
// item.Registry supplies ItemDefinitions.
type CorpseLootTable map[string][]item.Yield

// HarvestCorpse implements one harvesting hit against an animal or
// player corpse, reusing the same tool-scaling and health-reduction
// rules as living-resource harvesting.
func HarvestCorpse(corpse *HarvestTarget, species string, table CorpseLootTable, tool *item.ItemDefinition, isPrimaryTool bool, rng *platform.RNG) (granted []item.Yield, depleted bool) {
	return HarvestHit(corpse, 1, table[species], tool, isPrimaryTool, rng)
}

// CanHarvestLivingCoral gates coral harvesting on being underwater on a
// sea tile while equipped with a snorkel, grounded on coral.rs.
func CanHarvestLivingCoral(onSeaTile bool, wearingSnorkel bool) bool {
	return onSeaTile && wearingSnorkel
}
