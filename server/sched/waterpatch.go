package sched

import (
	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/platform"
)

// ExpiredWaterPatches implements the cleanup_expired_water_patches
// scheduled reducer: reports which patches have outlived ExpiresAt and
// should be deleted.
func ExpiredWaterPatches(tx *platform.Tx, patches []*entity.WaterPatch) ([]*entity.WaterPatch, error) {
	if err := tx.RequireSystem(); err != nil {
		return nil, err
	}
	now := tx.Now()
	var expired []*entity.WaterPatch
	for _, p := range patches {
		if !now.Before(p.ExpiresAt) {
			expired = append(expired, p)
		}
	}
	return expired, nil
}
