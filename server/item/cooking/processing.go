package cooking

import (
	"errors"
	"time"

	"github.com/driftlands/survivalcore/server/item"
)

// ErrNotDurable is returned when RepairTick is given an item carrying no
// DurableData.
var ErrNotDurable = errors.New("item has no durability to repair")

// RepairTick advances a durability-repair bench's quantised progress bar
// (supplemented feature, grounded on repair_bench.rs): reuses the same
// 5%-threshold dirty-marking rule as appliance cooking, since both are
// "apply dt, commit only on a quantisation-bucket change" processes.
func RepairTick(it *item.InventoryItem, progress *ProgressState, dt, targetSecs float64, repairAmount int) (dirty, complete bool, err error) {
	durable, ok := it.Data.(item.DurableData)
	if !ok {
		return false, false, ErrNotDurable
	}
	if progress.TargetSecs == 0 {
		progress.TargetSecs = targetSecs
	}
	progress.CurrentSecs += dt

	if progress.CurrentSecs >= progress.TargetSecs {
		durable.Current = min(durable.Max, durable.Current+repairAmount)
		durable.RepairCount++
		it.Data = durable
		*progress = ProgressState{}
		return true, true, nil
	}

	step := quantizedStep(progress.CurrentSecs, progress.TargetSecs)
	if step != progress.LastQuantizedStep {
		progress.LastQuantizedStep = step
		return true, false, nil
	}
	return false, false, nil
}

// ProgressState is a standalone quantised-progress tracker for processing
// reducers (repair, bone carving) that aren't backed by an Appliance's
// per-slot CookingSlot array.
type ProgressState struct {
	CurrentSecs       float64
	TargetSecs        float64
	LastQuantizedStep int
}

// BoneCarvingResult is the fixed yield a completed bone-carving pass
// produces (supplemented feature, grounded on bone_carving.rs).
type BoneCarvingResult struct {
	YieldDefID item.DefID
	Quantity   int
	FinishedAt time.Time
}

// BoneCarvingTick advances a bone-carving job's progress and returns the
// fixed yield once complete (bone carving, unlike appliance cooking,
// produces one fixed result rather than consuming a variable source
// stack).
func BoneCarvingTick(progress *ProgressState, dt, targetSecs float64, yieldDefID item.DefID, yieldQty int, now time.Time) (dirty bool, result *BoneCarvingResult) {
	if progress.TargetSecs == 0 {
		progress.TargetSecs = targetSecs
	}
	progress.CurrentSecs += dt

	if progress.CurrentSecs >= progress.TargetSecs {
		*progress = ProgressState{}
		return true, &BoneCarvingResult{YieldDefID: yieldDefID, Quantity: yieldQty, FinishedAt: now}
	}

	step := quantizedStep(progress.CurrentSecs, progress.TargetSecs)
	if step != progress.LastQuantizedStep {
		progress.LastQuantizedStep = step
		return true, nil
	}
	return false, nil
}
