package combat

import "github.com/driftlands/survivalcore/server/item"

// MaxResistance is the aggregate armour-resistance cap (step 3): no
// combination of pieces can reduce a damage type's effective hit below
// 10% of the roll.
const MaxResistance = 0.9

// MaxMeleeReflect is the aggregate melee-reflect cap (step 5).
const MaxMeleeReflect = 0.5

// AggregateResistance sums the equipped pieces' ArmourResist entries for
// damageType, capped at MaxResistance.
func AggregateResistance(pieces []*item.ItemDefinition, damageType string) float32 {
	var sum float32
	for _, p := range pieces {
		if p == nil {
			continue
		}
		sum += p.ArmourResist[damageType]
	}
	if sum > MaxResistance {
		return MaxResistance
	}
	return sum
}

// AggregateImmunities reports which damage types the equipped set grants
// immunity to: a piece contributes one count toward every damage type key
// present in its Immunities map, and immunity activates once the count of
// contributing pieces reaches the lowest threshold any one of them
// declares for that type (the "5 bone pieces -> burn immunity" rule).
func AggregateImmunities(pieces []*item.ItemDefinition) map[string]bool {
	counts := make(map[string]int)
	thresholds := make(map[string]int)
	for _, p := range pieces {
		if p == nil {
			continue
		}
		for dtype, threshold := range p.Immunities {
			counts[dtype]++
			t := int(threshold)
			if t <= 0 {
				t = 1
			}
			if existing, ok := thresholds[dtype]; !ok || t < existing {
				thresholds[dtype] = t
			}
		}
	}
	result := make(map[string]bool, len(counts))
	for dtype, c := range counts {
		if c >= thresholds[dtype] {
			result[dtype] = true
		}
	}
	return result
}

// AggregateMeleeReflect sums the equipped pieces' MeleeReflect fractions,
// capped at MaxMeleeReflect (step 5).
func AggregateMeleeReflect(pieces []*item.ItemDefinition) float32 {
	var sum float32
	for _, p := range pieces {
		if p == nil {
			continue
		}
		sum += p.MeleeReflect
	}
	if sum > MaxMeleeReflect {
		return MaxMeleeReflect
	}
	return sum
}

// AggregateFireAmplify sums the equipped pieces' FireAmplify fractions
// (wooden armour amplifying fire received) into a multiplier, e.g. two
// pieces each contributing 0.25 yields a 1.5x fire multiplier.
func AggregateFireAmplify(pieces []*item.ItemDefinition) float32 {
	var sum float32
	for _, p := range pieces {
		if p == nil {
			continue
		}
		sum += p.FireAmplify
	}
	return 1 + sum
}

// WearsIntimidatingArmour reports whether any equipped piece grants the
// "intimidates animals" property the ai package's furIntimidationTriggered
// rule keys on.
func WearsIntimidatingArmour(pieces []*item.ItemDefinition) bool {
	for _, p := range pieces {
		if p != nil && p.IntimidatesAnimals {
			return true
		}
	}
	return false
}
