package env

import (
	"testing"

	"github.com/driftlands/survivalcore/server/entity"
)

func testDims() entity.WorldDimensions {
	return entity.WorldDimensions{WidthPx: 4096, HeightPx: 4096, ChunkSizePx: 256}
}

func TestTileTypeAtOutOfBounds(t *testing.T) {
	g := NewTileGrid(testDims(), 1, DefaultTileSizePx, nil, 0)
	if _, ok := g.TileTypeAt(-1, 0); ok {
		t.Fatalf("negative tile coordinate should be out of bounds")
	}
	rows := g.tilesPerRow()
	if _, ok := g.TileTypeAt(rows, 0); ok {
		t.Fatalf("tile coordinate past the last row should be out of bounds")
	}
}

func TestMonumentOverridesTerrain(t *testing.T) {
	monument := entity.Position{X: 1000, Y: 1000}
	g := NewTileGrid(testDims(), 7, DefaultTileSizePx, []entity.Position{monument}, 200)
	tx, ty := g.tileAtPos(monument.X, monument.Y)
	got, ok := g.TileTypeAt(tx, ty)
	if !ok || got != TileMonument {
		t.Fatalf("TileTypeAt(monument center) = %v, %v, want TileMonument, true", got, ok)
	}
}

func TestIsPlayerOnWaterMatchesTileType(t *testing.T) {
	g := NewTileGrid(testDims(), 42, DefaultTileSizePx, nil, 0)
	rows, cols := g.tilesPerRow(), g.tilesPerCol()
	for ty := 0; ty < cols; ty++ {
		for tx := 0; tx < rows; tx++ {
			tt, ok := g.TileTypeAt(tx, ty)
			if !ok {
				continue
			}
			x := (float64(tx) + 0.5) * g.tileSizePx
			y := (float64(ty) + 0.5) * g.tileSizePx
			want := tt == TileSea
			if got := g.IsPlayerOnWater(x, y); got != want {
				t.Fatalf("IsPlayerOnWater(%v,%v) = %v, want %v (tile=%v)", x, y, got, want, tt)
			}
		}
	}
}

func TestIsPlayerInsideBuildingRequiresFullEnclosure(t *testing.T) {
	f := entity.Foundation{ID: 1, Pos: entity.Position{X: 500, Y: 500}}
	complete := []entity.Wall{
		{FoundationID: 1, Pos: entity.Position{X: 628, Y: 500}},
		{FoundationID: 1, Pos: entity.Position{X: 372, Y: 500}},
		{FoundationID: 1, Pos: entity.Position{X: 500, Y: 628}},
		{FoundationID: 1, Pos: entity.Position{X: 500, Y: 372}},
	}
	g := NewTileGrid(testDims(), 1, DefaultTileSizePx, nil, 0)

	if !g.IsPlayerInsideBuilding(500, 500, []entity.Foundation{f}, complete) {
		t.Fatalf("fully walled foundation should enclose its center")
	}
	if g.IsPlayerInsideBuilding(500, 500, []entity.Foundation{f}, complete[:3]) {
		t.Fatalf("foundation missing one wall should not enclose")
	}
}

func TestCoastalSpawnPointsOnlyBeachAdjacentToSea(t *testing.T) {
	g := NewTileGrid(testDims(), 99, DefaultTileSizePx, nil, 0)
	for chunk, coords := range g.coastal {
		for _, c := range coords {
			tt, ok := g.TileTypeAt(c.X, c.Y)
			if !ok || tt != TileBeach {
				t.Fatalf("chunk %d: coastal spawn point %v is not a beach tile", chunk, c)
			}
			if !adjacentToWater(g, c.X, c.Y) {
				t.Fatalf("chunk %d: coastal spawn point %v is not adjacent to sea", chunk, c)
			}
		}
	}
}
