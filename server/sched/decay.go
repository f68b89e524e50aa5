package sched

import (
	"time"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/platform"
)

// Decay damage per interval, tier-dependent, grounded on
// building_decay.rs's per-interval constants (wood ~20/hour, stone
// ~6/hour, metal ~2/hour against a 900-second check interval).
const (
	DecayDamageWoodPerInterval  = 25.0
	DecayDamageStonePerInterval = 7.5
	DecayDamageMetalPerInterval = 2.5
)

// DecayDamagePerInterval returns the tier-dependent damage one decay
// check applies; twig-tier buildings (the zero value outside TierWood/
// Stone/Metal) take none.
func DecayDamagePerInterval(tier entity.FoundationTier) float32 {
	switch tier {
	case entity.TierWood:
		return DecayDamageWoodPerInterval
	case entity.TierStone:
		return DecayDamageStonePerInterval
	case entity.TierMetal:
		return DecayDamageMetalPerInterval
	default:
		return 0
	}
}

// UpkeepCost is the per-interval stockpile draw a hearth must be able
// to afford to keep a cluster protected.
type UpkeepCost struct {
	Wood  int
	Stone int
}

// HearthCanAfford reports whether h's stockpile covers cost for this
// interval, grounded on building_decay.rs's is_building_protected
// sufficient-resources check.
func HearthCanAfford(h *entity.HomesteadHearth, cost UpkeepCost) bool {
	return !h.Destroyed && h.StockpileWood >= cost.Wood && h.StockpileStone >= cost.Stone
}

// ConsumeUpkeep deducts cost from h's stockpile; call only after
// HearthCanAfford reported true for the same cost.
func ConsumeUpkeep(h *entity.HomesteadHearth, cost UpkeepCost) {
	h.StockpileWood -= cost.Wood
	h.StockpileStone -= cost.Stone
}

// UpkeepCostFor returns the per-interval upkeep draw for one foundation
// or wall of the given tier; wood and stone tiers draw their own
// resource, metal draws against the stone stockpile since the hearth
// row carries no separate metal reserve.
func UpkeepCostFor(tier entity.FoundationTier) UpkeepCost {
	switch tier {
	case entity.TierWood:
		return UpkeepCost{Wood: 5}
	case entity.TierStone:
		return UpkeepCost{Stone: 10}
	case entity.TierMetal:
		return UpkeepCost{Stone: 20}
	default:
		return UpkeepCost{}
	}
}

// ApplyFoundationDecay applies one interval of decay to f unless it is
// still within its grace period or protected, marking it Destroyed on
// reaching zero health.
func ApplyFoundationDecay(f *entity.Foundation, now time.Time, protected bool) {
	if f.Destroyed || protected || now.Sub(f.PlacedAt) < entity.DecayGracePeriod {
		return
	}
	dmg := DecayDamagePerInterval(f.Tier)
	if dmg <= 0 {
		return
	}
	f.Health -= int(dmg)
	if f.Health <= 0 {
		f.Health = 0
		f.Destroyed = true
	}
}

// ApplyWallDecay mirrors ApplyFoundationDecay for a wall cell; a wall
// whose owning foundation is destroyed cascades to destroyed too,
// grounded on "Walls cascade-destroy when their foundation dies".
func ApplyWallDecay(w *entity.Wall, now time.Time, protected bool, foundationDestroyed bool) {
	if w.Destroyed {
		return
	}
	if foundationDestroyed {
		w.Health = 0
		w.Destroyed = true
		return
	}
	if protected || now.Sub(w.PlacedAt) < entity.DecayGracePeriod {
		return
	}
	dmg := DecayDamagePerInterval(w.Tier)
	if dmg <= 0 {
		return
	}
	w.Health -= int(dmg)
	if w.Health <= 0 {
		w.Health = 0
		w.Destroyed = true
	}
}

// ProcessBuildingDecay implements the process_building_decay scheduled
// reducer: runs one decay interval across every foundation and its
// walls. protectedFoundations reports, per foundation ID, whether a
// nearby hearth currently affords its upkeep — the caller computes this
// once per sweep since it requires walking the hearth/connectivity
// graph the spatial index owns.
func ProcessBuildingDecay(tx *platform.Tx, foundations []*entity.Foundation, walls []*entity.Wall, protectedFoundations map[uint64]bool) error {
	if err := tx.RequireSystem(); err != nil {
		return err
	}
	now := tx.Now()
	destroyedFoundations := make(map[uint64]bool, len(foundations))
	for _, f := range foundations {
		ApplyFoundationDecay(f, now, protectedFoundations[f.ID])
		if f.Destroyed {
			destroyedFoundations[f.ID] = true
		}
	}
	for _, w := range walls {
		ApplyWallDecay(w, now, protectedFoundations[w.FoundationID], destroyedFoundations[w.FoundationID])
	}
	return nil
}
