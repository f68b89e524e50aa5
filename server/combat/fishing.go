package combat

import (
	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/platform"
)

// baseBonusFishChance and baseJunkChance are the unmodified per-cast odds,
// before time-of-day and weather multipliers apply.
const (
	baseBonusFishChance = 0.3
	baseJunkChance      = 0.5
)

// TimeOfDayFishingMultiplier implements the dawn/dusk fishing bonus:
// best at the twilight boundaries, worst around midnight, grounded on
// fishing.rs's get_fishing_effectiveness_multiplier.
func TimeOfDayFishingMultiplier(timeOfDay float32) float32 {
	switch {
	case timeOfDay >= 0.24 && timeOfDay < 0.28, timeOfDay >= 0.76 && timeOfDay < 0.80:
		return 1.8 // dawn / dusk
	case timeOfDay >= 0.20 && timeOfDay < 0.24, timeOfDay >= 0.80 && timeOfDay < 0.84:
		return 1.4 // twilight shoulders
	case timeOfDay >= 0.95 || timeOfDay < 0.05:
		return 0.6 // midnight
	case timeOfDay >= 0.84 || timeOfDay < 0.20:
		return 0.8 // night
	default:
		return 1.1 // day
	}
}

// RainFishingMultiplier stacks with the time-of-day bonus: light rain and
// overcast skies fish better, a heavy storm fishes worse.
func RainFishingMultiplier(w entity.WeatherKind) float32 {
	switch w {
	case entity.WeatherLightRain:
		return 1.3
	case entity.WeatherHeavyStorm:
		return 0.7 // too rough to fish safely in a storm
	case entity.WeatherOvercast:
		return 1.1
	default:
		return 1.0
	}
}

// FishingCatch is the outcome of one completed cast.
type FishingCatch struct {
	FishCount int
	GotJunk   bool
}

// ResolveFishingCatch implements the catch roll once a cast's bite timer
// has elapsed: always at least one fish, a time/weather-boosted chance
// of a bonus fish and of junk, plus a rare third fish under combined
// optimal conditions.
func ResolveFishingCatch(timeOfDay float32, weather entity.WeatherKind, rng *platform.RNG) FishingCatch {
	effectiveness := TimeOfDayFishingMultiplier(timeOfDay) * RainFishingMultiplier(weather)

	catch := FishingCatch{FishCount: 1}
	if rng.Chance(baseBonusFishChance * effectiveness) {
		catch.FishCount++
	}
	if rng.Chance(baseJunkChance * (2 - effectiveness)) {
		catch.GotJunk = true
	}
	if effectiveness > 2.0 && rng.Chance(0.25) {
		catch.FishCount++
	}
	return catch
}
