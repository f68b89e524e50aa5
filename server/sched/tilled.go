package sched

import (
	"github.com/driftlands/survivalcore/server/combat"
	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/platform"
)

// ReadyTilledTileReversions implements the process_tilled_tile_reversions
// scheduled reducer: reports which tilled tiles have reached their
// 48-hour reversion window and should be deleted (letting the
// underlying grass tile show through again).
func ReadyTilledTileReversions(tx *platform.Tx, tilled []*entity.TilledTileMetadata) ([]*entity.TilledTileMetadata, error) {
	if err := tx.RequireSystem(); err != nil {
		return nil, err
	}
	now := tx.Now()
	var ready []*entity.TilledTileMetadata
	for _, m := range tilled {
		if combat.ShouldRevert(m, now) {
			ready = append(ready, m)
		}
	}
	return ready, nil
}
