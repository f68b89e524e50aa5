package ai

import (
	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/platform"
)

// AssignPack marks every member of a wolf spawn group with a shared
// PackID derived from the group's spawn seed, so a wolf pack acts in
// concert (sharing a chase target, alerting together) without a separate
// pack-membership table to keep in sync.
func AssignPack(members []*entity.WildAnimal, spawnGroupSeed string) {
	id := packHash(spawnGroupSeed)
	for _, m := range members {
		m.PackID = id
		m.HasPack = true
	}
}

// PackAlert propagates a pack member's detected target to its packmates:
// any wolf sharing packID with the alerting animal, that has no target of
// its own yet, adopts the same one and switches straight to chasing
// rather than re-running its own perception check.
func PackAlert(packID uint64, target platform.Identity, members []*entity.WildAnimal) {
	for _, m := range members {
		if !m.HasPack || m.PackID != packID || m.HasTarget {
			continue
		}
		m.TargetPlayer = target
		m.HasTarget = true
		m.State = entity.StateChasing
	}
}
