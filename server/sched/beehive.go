package sched

import (
	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/item"
	"github.com/driftlands/survivalcore/server/item/inventory"
	"github.com/driftlands/survivalcore/server/platform"
)

// BeehiveProductionSecs is how long a queened beehive takes to produce
// one unit of honeycomb, grounded on beehive.rs's
// BEEHIVE_PRODUCTION_TIME_SECS.
const BeehiveProductionSecs = 300.0

// HoneycombPerProduction is how much honeycomb one completed production
// cycle yields.
const HoneycombPerProduction = 1

// QueenBeeItemName and HoneycombItemName name the content-data
// definitions the production check and output resolve by name, the
// same late-binding-by-name convention item.ItemDefinition.
// CookedItemDefName uses for cooking output.
const (
	QueenBeeItemName  = "queen_bee"
	HoneycombItemName = "honeycomb"
)

// hasQueenBee reports whether a queen bee currently occupies the
// beehive's input slot.
func hasQueenBee(b *entity.Beehive, reg *item.Registry) bool {
	defID, ok := b.SlotDefID(entity.BeehiveQueenSlot)
	if !ok {
		return false
	}
	def, ok := reg.ByID(defID)
	return ok && def.Name == QueenBeeItemName
}

// ProcessBeehiveProduction implements the process_beehive_production
// scheduled reducer: a queened beehive accumulates production time and,
// on completing a cycle, grants one honeycomb into the first available
// output slot (stacking with an existing partial stack first), dropping
// it nearby if every output slot is full.
func ProcessBeehiveProduction(tx *platform.Tx, st inventory.Store, reg *item.Registry, beehives []*entity.Beehive, dt float64, dropper cookingDropper) error {
	if err := tx.RequireSystem(); err != nil {
		return err
	}
	honeycombDef, ok := reg.ByName(HoneycombItemName)
	if !ok {
		return nil
	}
	for _, b := range beehives {
		if b.Destroyed || !hasQueenBee(b, reg) {
			b.ProductionSecs = 0
			continue
		}
		b.ProductionSecs += dt
		if b.ProductionSecs < BeehiveProductionSecs {
			continue
		}
		b.ProductionSecs -= BeehiveProductionSecs
		if err := grantBeehiveOutput(st, reg, b, honeycombDef, dropper); err != nil {
			return err
		}
	}
	return nil
}

// cookingDropper mirrors cooking.Dropper's shape without importing the
// cooking package, since beehive production drops overflow the same way
// a cooking appliance does but isn't itself a cooking appliance.
type cookingDropper func(it *item.InventoryItem, pos entity.Position) error

func grantBeehiveOutput(st inventory.Store, reg *item.Registry, b *entity.Beehive, honeycombDef *item.ItemDefinition, dropper cookingDropper) error {
	for i := entity.BeehiveOutputSlotStart; i <= entity.BeehiveOutputSlotEnd; i++ {
		defID, hasDef := b.SlotDefID(i)
		if !hasDef {
			continue
		}
		def, ok := reg.ByID(defID)
		if !ok || def.Name != HoneycombItemName {
			continue
		}
		iid, _ := b.SlotInstanceID(i)
		it, ok := st.Item(iid)
		if !ok {
			continue
		}
		if it.Quantity+HoneycombPerProduction <= honeycombDef.StackSize {
			it.Quantity += HoneycombPerProduction
			return st.PutItem(it)
		}
	}
	for i := entity.BeehiveOutputSlotStart; i <= entity.BeehiveOutputSlotEnd; i++ {
		if _, hasDef := b.SlotDefID(i); hasDef {
			continue
		}
		iid := st.NextInstanceID()
		it := &item.InventoryItem{
			InstanceID: iid,
			ItemDefID:  honeycombDef.ID,
			Quantity:   HoneycombPerProduction,
			Location:   item.Container{Kind: item.ContainerBeehive, ContainerID: b.ID, SlotIndex: uint8(i)},
		}
		if err := st.PutItem(it); err != nil {
			return err
		}
		b.SetSlot(i, iid, true, honeycombDef.ID, true)
		return nil
	}
	if dropper != nil {
		it := &item.InventoryItem{ItemDefID: honeycombDef.ID, Quantity: HoneycombPerProduction, Location: item.Dropped{}}
		return dropper(it, b.Pos)
	}
	return nil
}
