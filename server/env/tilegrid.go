package env

import (
	"github.com/ojrac/opensimplex-go"

	"github.com/driftlands/survivalcore/server/entity"
)

// DefaultTileSizePx is the pixel footprint of one tile in the reference
// world generator.
const DefaultTileSizePx = 64.0

// noiseScale controls terrain feature size; smaller values produce
// larger, smoother landmasses.
const noiseScale = 0.015

// Elevation bands, expressed as opensimplex output in [-1, 1].
const (
	seaLevel         = -0.35
	beachBand        = -0.28
	sandBand         = -0.18
	grassForestSplit = 0.35
)

// monumentFootprint is an axis-aligned region of TileMonument tiles,
// carved out of the generated terrain regardless of its noise value.
type monumentFootprint struct {
	minX, minY, maxX, maxY float64
}

// TileGrid is the reference Hooks implementation: terrain is derived
// from a single opensimplex noise field rather than persisted per tile,
// since the simulation core only ever asks it questions (it never
// mutates terrain, only TilledTileMetadata rows tracked separately by
// server/combat). It exists to give server/cmd's demo world something
// to query.
type TileGrid struct {
	dims       entity.WorldDimensions
	tileSizePx float64
	noise      *opensimplex.Noise
	monuments  []monumentFootprint
	coastal    map[uint32][]TileCoord
}

// NewTileGrid builds a reference terrain generator over dims, seeded for
// reproducibility, and precomputes the coastal-spawn-point index.
func NewTileGrid(dims entity.WorldDimensions, seed int64, tileSizePx float64, monuments []entity.Position, monumentRadiusPx float64) *TileGrid {
	if tileSizePx <= 0 {
		tileSizePx = DefaultTileSizePx
	}
	g := &TileGrid{
		dims:       dims,
		tileSizePx: tileSizePx,
		noise:      opensimplex.New(seed),
	}
	for _, m := range monuments {
		g.monuments = append(g.monuments, monumentFootprint{
			minX: m.X - monumentRadiusPx, minY: m.Y - monumentRadiusPx,
			maxX: m.X + monumentRadiusPx, maxY: m.Y + monumentRadiusPx,
		})
	}
	g.coastal = buildCoastalIndex(g)
	return g
}

func (g *TileGrid) tilesPerRow() int {
	return (g.dims.WidthPx + int(g.tileSizePx) - 1) / int(g.tileSizePx)
}
func (g *TileGrid) tilesPerCol() int {
	return (g.dims.HeightPx + int(g.tileSizePx) - 1) / int(g.tileSizePx)
}

func (g *TileGrid) inBounds(tileX, tileY int) bool {
	return tileX >= 0 && tileY >= 0 && tileX < g.tilesPerRow() && tileY < g.tilesPerCol()
}

func (g *TileGrid) elevation(tileX, tileY int) float64 {
	return g.noise.Eval2(float64(tileX)*noiseScale, float64(tileY)*noiseScale)
}

// TileTypeAt implements Hooks.
func (g *TileGrid) TileTypeAt(tileX, tileY int) (TileType, bool) {
	if !g.inBounds(tileX, tileY) {
		return TileUnknown, false
	}
	cx := (float64(tileX) + 0.5) * g.tileSizePx
	cy := (float64(tileY) + 0.5) * g.tileSizePx
	for _, m := range g.monuments {
		if cx >= m.minX && cx <= m.maxX && cy >= m.minY && cy <= m.maxY {
			return TileMonument, true
		}
	}

	e := g.elevation(tileX, tileY)
	switch {
	case e < seaLevel:
		return TileSea, true
	case e < beachBand:
		return TileBeach, true
	case e < sandBand:
		return TileSand, true
	case e < grassForestSplit:
		return TileGrass, true
	default:
		return TileForest, true
	}
}

func (g *TileGrid) tileAtPos(x, y float64) (int, int) {
	return int(x / g.tileSizePx), int(y / g.tileSizePx)
}

// IsPlayerOnWater implements Hooks.
func (g *TileGrid) IsPlayerOnWater(x, y float64) bool {
	tx, ty := g.tileAtPos(x, y)
	t, ok := g.TileTypeAt(tx, ty)
	return ok && (t == TileSea || t == TileInlandWater || t == TileHotSpringWater)
}

// IsPositionOnInlandWater implements Hooks. The reference generator
// never produces TileInlandWater and TileGrid has no way to place one,
// so on a TileGrid this always reports false.
func (g *TileGrid) IsPositionOnInlandWater(x, y float64) bool {
	tx, ty := g.tileAtPos(x, y)
	t, ok := g.TileTypeAt(tx, ty)
	return ok && t == TileInlandWater
}

// IsPositionOnForestTile implements Hooks.
func (g *TileGrid) IsPositionOnForestTile(x, y float64) bool {
	tx, ty := g.tileAtPos(x, y)
	t, ok := g.TileTypeAt(tx, ty)
	return ok && t == TileForest
}

// IsPositionOnMonument implements Hooks.
func (g *TileGrid) IsPositionOnMonument(x, y float64) bool {
	tx, ty := g.tileAtPos(x, y)
	t, ok := g.TileTypeAt(tx, ty)
	return ok && t == TileMonument
}

// ChunkIndex implements Hooks by delegating to entity.ChunkIndex, so the
// spatial index and the environment hooks never disagree about which
// chunk a position belongs to.
func (g *TileGrid) ChunkIndex(x, y float64) uint32 {
	return entity.ChunkIndex(g.dims, x, y)
}

// IsPlayerInsideShelter implements Hooks.
func (g *TileGrid) IsPlayerInsideShelter(px, py float64, s entity.Shelter) bool {
	return s.Contains(px, py)
}

// buildingCellSize is the footprint of one foundation/wall grid cell in
// the reference building-enclosure check.
const buildingCellSize = 128.0

// IsPlayerInsideBuilding implements Hooks: (px, py) counts as "inside" a
// building when it falls within a non-destroyed foundation's cell and
// that cell has a non-destroyed wall attached on all four cardinal
// sides — the perimeter test the original runs against the
// foundation+wall grid.
func (g *TileGrid) IsPlayerInsideBuilding(px, py float64, foundations []entity.Foundation, walls []entity.Wall) bool {
	for _, f := range foundations {
		if f.Destroyed {
			continue
		}
		if px < f.Pos.X-buildingCellSize/2 || px > f.Pos.X+buildingCellSize/2 {
			continue
		}
		if py < f.Pos.Y-buildingCellSize/2 || py > f.Pos.Y+buildingCellSize/2 {
			continue
		}
		if enclosedByWalls(f, walls) {
			return true
		}
	}
	return false
}

func enclosedByWalls(f entity.Foundation, walls []entity.Wall) bool {
	offsets := [4][2]float64{{buildingCellSize, 0}, {-buildingCellSize, 0}, {0, buildingCellSize}, {0, -buildingCellSize}}
	for _, off := range offsets {
		wantX, wantY := f.Pos.X+off[0], f.Pos.Y+off[1]
		found := false
		for _, w := range walls {
			if w.Destroyed || w.FoundationID != f.ID {
				continue
			}
			if near(w.Pos.X, wantX) && near(w.Pos.Y, wantY) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func near(a, b float64) bool {
	d := a - b
	return d > -1 && d < 1
}

// CoastalSpawnPoints implements Hooks.
func (g *TileGrid) CoastalSpawnPoints(chunk uint32) []TileCoord {
	return g.coastal[chunk]
}

// buildCoastalIndex scans every tile once at construction time and
// records beach tiles with at least one adjacent sea tile, indexed by
// chunk — the precomputed set storm debris and coastal spawns draw from.
func buildCoastalIndex(g *TileGrid) map[uint32][]TileCoord {
	idx := make(map[uint32][]TileCoord)
	rows, cols := g.tilesPerRow(), g.tilesPerCol()
	for ty := 0; ty < cols; ty++ {
		for tx := 0; tx < rows; tx++ {
			t, ok := g.TileTypeAt(tx, ty)
			if !ok || t != TileBeach {
				continue
			}
			if !adjacentToWater(g, tx, ty) {
				continue
			}
			cx := (float64(tx) + 0.5) * g.tileSizePx
			cy := (float64(ty) + 0.5) * g.tileSizePx
			chunk := g.ChunkIndex(cx, cy)
			idx[chunk] = append(idx[chunk], TileCoord{X: tx, Y: ty})
		}
	}
	return idx
}

func adjacentToWater(g *TileGrid, tx, ty int) bool {
	neighbours := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for _, n := range neighbours {
		t, ok := g.TileTypeAt(tx+n[0], ty+n[1])
		if ok && t == TileSea {
			return true
		}
	}
	return false
}

var _ Hooks = (*TileGrid)(nil)
