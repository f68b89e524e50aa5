// Package env defines the environment hooks the simulation core queries
// but does not own: tile-type lookups, water/forest/monument position
// tests, shelter and building enclosure checks, and a coastal-spawn-point
// index. The core depends only on the Hooks interface; TileGrid in this
// package is a reference implementation so server/cmd has something to
// query against.
package env

import (
	"github.com/driftlands/survivalcore/server/entity"
)

// TileType is the terrain kind at one tile coordinate.
type TileType uint8

// Recognised tile types.
const (
	TileUnknown TileType = iota
	TileSea
	TileBeach
	TileSand
	TileGrass
	TileDirt
	TileTilled
	TileHotSpringWater
	TileInlandWater
	TileForest
	TileMonument
)

// Hooks is the thin query surface the simulation core relies on without
// owning world-generation or the building grid itself.
type Hooks interface {
	// TileTypeAt returns the terrain at the given tile coordinate, or
	// ok=false if the coordinate falls outside the generated world.
	TileTypeAt(tileX, tileY int) (t TileType, ok bool)

	// IsPlayerOnWater reports whether the pixel position sits over any
	// water tile (sea, inland, or hot spring).
	IsPlayerOnWater(x, y float64) bool

	// IsPositionOnInlandWater reports whether the position is over fresh
	// (non-sea) water, the kind drinking restores thirst from directly.
	IsPositionOnInlandWater(x, y float64) bool

	// IsPositionOnForestTile reports whether the position falls on a
	// forest tile, used by shelter/cover checks.
	IsPositionOnForestTile(x, y float64) bool

	// IsPositionOnMonument reports whether the position falls within a
	// monument's footprint.
	IsPositionOnMonument(x, y float64) bool

	// ChunkIndex derives the chunk index for a world position. Delegates
	// to entity.ChunkIndex so every subsystem keying off chunk agrees.
	ChunkIndex(x, y float64) uint32

	// IsPlayerInsideShelter is an axis-aligned box test against s.
	IsPlayerInsideShelter(px, py float64, s entity.Shelter) bool

	// IsPlayerInsideBuilding reports whether (px, py) falls inside a
	// foundation cell that is enclosed by walls on all four cardinal
	// sides, the perimeter check the original implements against the
	// foundation+wall grid.
	IsPlayerInsideBuilding(px, py float64, foundations []entity.Foundation, walls []entity.Wall) bool

	// CoastalSpawnPoints returns the precomputed beach tiles adjacent to
	// sea within the given chunk, used to pick storm-debris and
	// wildlife spawn points along the shore.
	CoastalSpawnPoints(chunk uint32) []TileCoord
}

// TileCoord is a tile-grid coordinate, distinct from entity.Position's
// pixel-space coordinates.
type TileCoord struct {
	X, Y int
}

// IsSeaTile reports whether the tile under pixel position (x, y) is sea,
// the question server/ai's TileQuery interface asks. No type in this
// module wraps it to implement that interface.
func IsSeaTile(h Hooks, tileSizePx float64, x, y float64) bool {
	t, ok := h.TileTypeAt(int(x/tileSizePx), int(y/tileSizePx))
	return ok && t == TileSea
}
