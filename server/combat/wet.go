package combat

import "github.com/driftlands/survivalcore/server/item"

// WetImmunityTag is the Immunities map key armour uses to grant
// immunity to the Wet status, keyed through AggregateImmunities' usual
// piece-count-threshold rule (I8: "≥5 qualifying pieces").
const WetImmunityTag = "wet"

// WetImmunityThreshold is the piece count the original content data
// uses for every wet-immune set; AggregateImmunities still reads each
// piece's own declared threshold; this constant documents the value
// the in-pack armour sets actually use.
const WetImmunityThreshold = 5

// ShouldBecomeWet implements I8: a player exposed to rain or sea water
// without sufficient cover acquires the Wet status unless their
// equipped armour's aggregate immunities grant Wet immunity.
func ShouldBecomeWet(exposedToWater bool, armour []*item.ItemDefinition) bool {
	if !exposedToWater {
		return false
	}
	return !AggregateImmunities(armour)[WetImmunityTag]
}
