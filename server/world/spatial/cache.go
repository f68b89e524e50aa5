package spatial

import "time"

// DynamicRefreshInterval bounds how often the dynamic grid is rebuilt:
// at most every 500ms of reducer-visible time.
const DynamicRefreshInterval = 500 * time.Millisecond

// Source supplies the raw entity positions the grid rebuilds from. The
// simulation world implements this against its live tables; tests supply
// a fixed slice.
type Source interface {
	// StaticEntities yields every entity belonging in the static grid:
	// trees and stones that are alive and not respawning,
	// shelters (rasterised across every overlapping cell by the caller),
	// rune stones, cairns, sea stacks, basalt columns, ALK stations.
	StaticEntities(yield func(x, y float64, ref Ref))
	// DynamicEntities yields every entity belonging in the dynamic grid:
	// players not dead, campfires, boxes, harvestables not respawning,
	// dropped items, corpses, rain collectors/furnaces not destroyed,
	// wild animals not hidden, hearths/lanterns/turrets not destroyed.
	DynamicEntities(yield func(x, y float64, ref Ref))
	// Shelters yields every shelter's AABB for rasterisation.
	Shelters(yield func(id uint64, minX, minY, maxX, maxY float64))
}

// Cache owns the three grid representations: a static grid rebuilt
// only on explicit invalidation, a dynamic grid refreshed at most every
// DynamicRefreshInterval, and a merged grid rebuilt whenever either
// source changes. This is an explicitly owned object held by the
// simulation world and injected into reducers, in place of the
// original's mutable static storage.
type Cache struct {
	src Source

	static        *Grid
	staticVersion uint64
	staticBuilt   uint64

	dynamic      *Grid
	lastRefresh  time.Time
	refreshValid bool

	merged        *Grid
	mergedStatic  uint64
	mergedDynamic time.Time
}

// NewCache builds an empty Cache over src for a world of the given pixel
// dimensions.
func NewCache(src Source, worldWidthPx, worldHeightPx int) *Cache {
	return &Cache{
		src:     src,
		static:  NewGrid(worldWidthPx, worldHeightPx),
		dynamic: NewGrid(worldWidthPx, worldHeightPx),
		merged:  NewGrid(worldWidthPx, worldHeightPx),
		// staticBuilt starts at 0, so version 1 makes the first query
		// build the static grid.
		staticVersion: 1,
	}
}

// InvalidateStatic bumps the static version, forcing a rebuild on the
// next query. Callers invoke this whenever a static entity is placed,
// destroyed, or changes respawn state: any mutation to an indexed
// static entity must call InvalidateStatic.
func (c *Cache) InvalidateStatic() {
	c.staticVersion++
}

func (c *Cache) rebuildStatic() {
	if c.staticBuilt == c.staticVersion {
		return
	}
	c.static.Clear()
	c.src.StaticEntities(func(x, y float64, ref Ref) {
		c.static.Add(x, y, ref)
	})
	c.rasteriseShelters()
	c.staticBuilt = c.staticVersion
}

// rasteriseShelters re-adds every shelter's AABB to the static grid. This
// runs after static.Clear(), so every shelter is re-rasterised on each
// call regardless of whether its bounds changed since the last build.
func (c *Cache) rasteriseShelters() {
	c.src.Shelters(func(id uint64, minX, minY, maxX, maxY float64) {
		rasteriseAABB(c.static, minX, minY, maxX, maxY, Ref{Kind: KindShelter, ID: id})
	})
}

// rasteriseAABB adds ref to every cell the box overlaps, so a shelter
// spanning several cells is found by a query against any of them.
func rasteriseAABB(g *Grid, minX, minY, maxX, maxY float64, ref Ref) {
	minCX, minCY := cellCoord(minX, minY)
	maxCX, maxCY := cellCoord(maxX, maxY)
	for cx := minCX; cx <= maxCX; cx++ {
		for cy := minCY; cy <= maxCY; cy++ {
			g.addAtCell(cx, cy, ref)
		}
	}
}

func (c *Cache) rebuildDynamic(now time.Time) {
	if c.refreshValid && now.Sub(c.lastRefresh) < DynamicRefreshInterval {
		return
	}
	c.dynamic.Clear()
	c.src.DynamicEntities(func(x, y float64, ref Ref) {
		c.dynamic.Add(x, y, ref)
	})
	c.lastRefresh = now
	c.refreshValid = true
}

func (c *Cache) rebuildMerged() {
	if c.mergedStatic == c.staticVersion && c.mergedDynamic.Equal(c.lastRefresh) {
		return
	}
	c.merged.Clear()
	mergeInto(c.merged, c.static)
	mergeInto(c.merged, c.dynamic)
	c.mergedStatic = c.staticVersion
	c.mergedDynamic = c.lastRefresh
}

func mergeInto(dst, src *Grid) {
	for cx := 0; cx < src.width; cx++ {
		for cy := 0; cy < src.height; cy++ {
			bucket, ok := src.index.Get(cellKey(int32(cx), int32(cy)))
			if !ok {
				continue
			}
			for _, ref := range src.cells[bucket] {
				dst.addAtCell(int32(cx), int32(cy), ref)
			}
		}
	}
}

// At queries the merged grid for the entities in the single cell
// containing (x, y), refreshing the static/dynamic/merged caches as
// needed first.
func (c *Cache) At(now time.Time, x, y float64) []Ref {
	c.rebuildStatic()
	c.rebuildDynamic(now)
	c.rebuildMerged()
	return c.merged.At(x, y)
}

// InRange queries the merged grid for the entities in the 3x3
// neighbourhood centred on the cell containing (x, y).
func (c *Cache) InRange(now time.Time, x, y float64) []Ref {
	c.rebuildStatic()
	c.rebuildDynamic(now)
	c.rebuildMerged()
	return c.merged.InRange(x, y)
}
