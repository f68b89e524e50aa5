package combat

import (
	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/env"
	"github.com/driftlands/survivalcore/server/platform"
)

// StormDebrisMin and StormDebrisMax bound how many items spawn per shore
// chunk when debris spawning fires.
const (
	StormDebrisMin = 2
	StormDebrisMax = 4
)

// DebrisKind enumerates the storm-debris weighted table's item kinds.
type DebrisKind uint8

// Debris kinds, in the weighted-table order from original_source's
// storm-debris table (driftwood/seaweed/coral fragments/shells/memory
// shards).
const (
	DebrisDriftwood DebrisKind = iota
	DebrisSeaweed
	DebrisCoralFragment
	DebrisShell
	DebrisMemoryShard
)

// debrisWeight is the cumulative-weight table backing RollDebrisKind:
// 20% driftwood, 30% seaweed, 35% coral fragments, 10% shells, 5% memory
// shards.
var debrisWeight = []struct {
	kind DebrisKind
	cum  float32
}{
	{DebrisDriftwood, 0.20},
	{DebrisSeaweed, 0.50},
	{DebrisCoralFragment, 0.85},
	{DebrisShell, 0.95},
	{DebrisMemoryShard, 1.00},
}

// RollDebrisKind samples one entry from the storm-debris weighted table.
func RollDebrisKind(rng *platform.RNG) DebrisKind {
	roll := rng.Float32()
	for _, e := range debrisWeight {
		if roll < e.cum {
			return e.kind
		}
	}
	return DebrisMemoryShard
}

// DebrisSpawn is one item the storm-debris sweep should place.
type DebrisSpawn struct {
	Kind DebrisKind
	Pos  entity.Position
}

// PlanShoreDebris implements the storm-debris spawn rule: for a shore
// chunk with no existing debris present, place 2-4 items on beach tiles
// adjacent to water, drawn from the weighted table. hasExistingDebris is
// the caller's own "any DroppedItem already in this chunk matching a
// debris kind" check; this function only decides what (if anything) to
// place.
func PlanShoreDebris(hooks env.Hooks, tileSizePx float64, chunkIndex uint32, beachTiles []env.TileCoord, hasExistingDebris bool, rng *platform.RNG) []DebrisSpawn {
	if hasExistingDebris || len(beachTiles) == 0 {
		return nil
	}
	count := rng.IntRange(StormDebrisMin, StormDebrisMax)
	spawns := make([]DebrisSpawn, 0, count)
	for i := 0; i < count; i++ {
		tile := beachTiles[rng.IntRange(0, len(beachTiles)-1)]
		pos := entity.Position{
			X: (float64(tile.X) + 0.5) * tileSizePx,
			Y: (float64(tile.Y) + 0.5) * tileSizePx,
		}
		spawns = append(spawns, DebrisSpawn{Kind: RollDebrisKind(rng), Pos: pos})
	}
	return spawns
}
