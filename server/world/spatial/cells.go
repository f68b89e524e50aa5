package spatial

import "github.com/brentp/intintmap"

// Grid is a uniform grid over entity Refs. The packed cell coordinate
// (cellKey) indexes into intintmap; the value it stores is a
// bucket index into cells, not the entities themselves, since a cell
// commonly holds more than one entity.
type Grid struct {
	index  *intintmap.Map
	cells  [][]Ref
	width  int
	height int
}

// NewGrid allocates an empty Grid sized for a world of the given pixel
// dimensions.
func NewGrid(worldWidthPx, worldHeightPx int) *Grid {
	width := int(float64(worldWidthPx)/CellSize) + 1
	height := int(float64(worldHeightPx)/CellSize) + 1
	return &Grid{
		index:  intintmap.New(width*height, 0.75),
		cells:  make([][]Ref, 0, width*height/4),
		width:  width,
		height: height,
	}
}

// Clear empties the grid for a full rebuild. intintmap has no reset
// operation, so the index itself is reallocated; cells keeps its backing
// array via the [:0] slice so the common case (similar entity count
// between rebuilds) doesn't reallocate there.
func (g *Grid) Clear() {
	g.index = intintmap.New(g.width*g.height, 0.75)
	g.cells = g.cells[:0]
}

// Add places ref into the cell containing (x, y).
func (g *Grid) Add(x, y float64, ref Ref) {
	cx, cy := cellCoord(x, y)
	g.addAtCell(cx, cy, ref)
}

func (g *Grid) addAtCell(cx, cy int32, ref Ref) {
	key := cellKey(cx, cy)
	if bucket, ok := g.index.Get(key); ok {
		g.cells[bucket] = append(g.cells[bucket], ref)
		return
	}
	bucket := int64(len(g.cells))
	g.cells = append(g.cells, []Ref{ref})
	g.index.Put(key, bucket)
}

// At returns the entities indexed in the single cell containing (x, y),
// implementing entities_at.
func (g *Grid) At(x, y float64) []Ref {
	cx, cy := cellCoord(x, y)
	bucket, ok := g.index.Get(cellKey(cx, cy))
	if !ok {
		return nil
	}
	return g.cells[bucket]
}

// InRange returns the entities in the 3x3 neighbourhood centred on the
// cell containing (x, y), implementing entities_in_range.
func (g *Grid) InRange(x, y float64) []Ref {
	cx, cy := cellCoord(x, y)
	var out []Ref
	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			bucket, ok := g.index.Get(cellKey(cx+dx, cy+dy))
			if !ok {
				continue
			}
			out = append(out, g.cells[bucket]...)
		}
	}
	return out
}
