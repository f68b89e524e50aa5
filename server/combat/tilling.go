package combat

import (
	"time"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/env"
)

// TillableTile reports whether a tile kind can be converted to Tilled
// by a tiller tool; dirt counts as already prepared and needs no
// tilling.
func TillableTile(t env.TileType) bool {
	return t == env.TileGrass || t == env.TileDirt
}

// IsPrepared reports whether a tile is ready to plant on: either already
// Tilled, or natural dirt (which starts "prepared"), grounded on
// tilled_tiles.rs.
func IsPrepared(t env.TileType) bool {
	return t == env.TileTilled || t == env.TileDirt
}

// Till implements the tilling reducer: records a tilled-tile row with a
// 48-hour reversion window.
func Till(tileX, tileY int, now time.Time) *entity.TilledTileMetadata {
	return &entity.TilledTileMetadata{
		TileX:    tileX,
		TileY:    tileY,
		TilledAt: now,
		RevertAt: now.Add(entity.TillReversionWindow),
	}
}

// ShouldRevert reports whether a tilled tile's reversion window has
// elapsed; the tilled-tile sweep job deletes the row and lets the
// underlying grass tile show through again once true.
func ShouldRevert(m *entity.TilledTileMetadata, now time.Time) bool {
	return !now.Before(m.RevertAt)
}
