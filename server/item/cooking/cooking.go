// Package cooking implements the threshold-quantised processing engine:
// campfires, furnaces, and broth pots advance per-slot cooking progress
// on a fixed tick and transform items on completion.
package cooking

import (
	"log/slog"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/item"
	"github.com/driftlands/survivalcore/server/item/inventory"
)

// QuantizationStep is the 5%-step quantisation bucket width used to
// throttle how often a cooking slot's progress needs to be written back.
const QuantizationStep = 0.05

// Appliance is a placeable that cooks: it exposes the container slot
// array plus per-slot cooking progress and its active fuel slot.
type Appliance interface {
	inventory.Container
	FuelSlotIndex() int
	CookingProgress(i int) *entity.CookingSlot
}

// Dropper places an item as a world entity when no container slot is
// free, the fallback taken when transform-and-place finds every
// compatible slot full.
type Dropper func(it *item.InventoryItem, pos entity.Position) error

// SoundEmitter emits the fire-and-forget completion sound event,
// distinguishing desirable outputs from "burnt" ones by name prefix.
type SoundEmitter func(outputName string, pos entity.Position)

const burntPrefix = "burnt_"

func isBurnt(outputName string) bool {
	return len(outputName) >= len(burntPrefix) && outputName[:len(burntPrefix)] == burntPrefix
}

// quantizedStep maps a fraction-complete value to its 5% bucket.
func quantizedStep(current, target float64) int {
	if target <= 0 {
		return 0
	}
	return int(current / target / QuantizationStep)
}

// Tick advances every slot of app by dt seconds, performing
// transform-and-place on any slot that completes. It returns true if any
// slot's committable quantisation bucket changed this tick, which is the
// signal callers use to decide whether the appliance row needs writing
// back.
func Tick(st inventory.Store, reg *item.Registry, app Appliance, pos entity.Position, dt float64, dropper Dropper, sound SoundEmitter, log *slog.Logger) bool {
	if log == nil {
		log = slog.Default()
	}
	dirty := false
	for i := 0; i < app.Slots(); i++ {
		if i == app.FuelSlotIndex() {
			continue
		}
		if tickSlot(st, reg, app, pos, i, dt, dropper, sound, log) {
			dirty = true
		}
	}
	return dirty
}

func tickSlot(st inventory.Store, reg *item.Registry, app Appliance, pos entity.Position, i int, dt float64, dropper Dropper, sound SoundEmitter, log *slog.Logger) bool {
	defID, hasDef := app.SlotDefID(i)
	if !hasDef {
		return false
	}
	def, ok := reg.ByID(defID)
	if !ok || def.CookTime <= 0 || def.CookedItemDefName == "" {
		return false
	}

	progress := app.CookingProgress(i)
	if progress.TargetSecs == 0 {
		progress.TargetSecs = def.CookTime.Seconds()
		progress.TargetItemDefName = def.CookedItemDefName
	}
	progress.CurrentSecs += dt

	if progress.CurrentSecs >= progress.TargetSecs {
		outputDef, ok := reg.ByName(progress.TargetItemDefName)
		if !ok {
			log.Error("cooking: unknown output item definition", "name", progress.TargetItemDefName)
			*progress = entity.CookingSlot{}
			return true
		}
		if err := transformAndPlace(st, reg, app, pos, i, outputDef, dropper); err != nil {
			log.Error("cooking: transform-and-place failed", "error", err)
		}
		if sound != nil {
			name := outputDef.Name
			if isBurnt(name) {
				sound("burnt", pos)
			} else {
				sound("cooking_complete", pos)
			}
		}
		*progress = entity.CookingSlot{}
		return true
	}

	step := quantizedStep(progress.CurrentSecs, progress.TargetSecs)
	if step != progress.LastQuantizedStep {
		progress.LastQuantizedStep = step
		return true
	}
	return false
}

// transformAndPlace implements the completed-cook transform: a fast
// path absorbs output into an existing stack across all slots; one
// source unit is then consumed, and any remainder takes the slow path
// of creating a fresh instance and placing or dropping it.
func transformAndPlace(st inventory.Store, reg *item.Registry, app Appliance, pos entity.Position, sourceSlot int, outputDef *item.ItemDefinition, dropper Dropper) error {
	outputQty := outputDef.CookedOutputQty
	if outputQty <= 0 {
		outputQty = 1
	}

	remaining := outputQty
	ss := inventory.AsSlotSet(app)
	for i := 0; i < app.Slots() && remaining > 0; i++ {
		got, ok := app.SlotDefID(i)
		if !ok || got != outputDef.ID {
			continue
		}
		iid, _ := app.SlotInstanceID(i)
		existing, ok := st.Item(iid)
		if !ok {
			continue
		}
		spare := item.SpareCapacity(outputDef, existing.Quantity)
		if spare <= 0 {
			continue
		}
		moved := min(spare, remaining)
		existing.Quantity += moved
		remaining -= moved
		if err := st.PutItem(existing); err != nil {
			return err
		}
	}

	if err := consumeSourceUnit(st, app, sourceSlot); err != nil {
		return err
	}

	if remaining <= 0 {
		return nil
	}

	newItem := &item.InventoryItem{
		InstanceID: st.NextInstanceID(),
		ItemDefID:  outputDef.ID,
		Quantity:   remaining,
	}
	for i := 0; i < ss.Slots(); i++ {
		if inventory.Empty(ss, i) {
			ss.SetSlot(i, newItem.InstanceID, true, newItem.ItemDefID, true)
			newItem.Location = ss.LocationFor(i)
			return st.PutItem(newItem)
		}
	}

	newItem.Location = item.Dropped{}
	if err := st.PutItem(newItem); err != nil {
		return err
	}
	if dropper != nil {
		return dropper(newItem, pos)
	}
	return nil
}

func consumeSourceUnit(st inventory.Store, app Appliance, slot int) error {
	iid, ok := app.SlotInstanceID(slot)
	if !ok {
		return nil
	}
	it, ok := st.Item(iid)
	if !ok {
		return nil
	}
	it.Quantity--
	if it.Quantity <= 0 {
		app.SetSlot(slot, 0, false, 0, false)
		return st.DeleteItem(it.InstanceID)
	}
	return st.PutItem(it)
}
