package cooking

import (
	"testing"
	"time"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/item"
)

type memStore struct {
	items map[item.InstanceID]*item.InventoryItem
	next  item.InstanceID
}

func newMemStore() *memStore { return &memStore{items: make(map[item.InstanceID]*item.InventoryItem)} }

func (m *memStore) Item(iid item.InstanceID) (*item.InventoryItem, bool) {
	it, ok := m.items[iid]
	return it, ok
}
func (m *memStore) PutItem(it *item.InventoryItem) error { m.items[it.InstanceID] = it; return nil }
func (m *memStore) DeleteItem(iid item.InstanceID) error { delete(m.items, iid); return nil }
func (m *memStore) NextInstanceID() item.InstanceID      { m.next++; return m.next }

func registryForPotato() *item.Registry {
	return item.NewRegistry([]*item.ItemDefinition{
		{ID: 1, Name: "raw_potato", StackSize: 64, CookTime: 30 * time.Second, CookedItemDefName: "cooked_potato", CookedOutputQty: 1},
		{ID: 2, Name: "cooked_potato", StackSize: 64},
	})
}

// TestCampfireCookingScenario covers one raw potato cooking to
// completion over 30 one-second ticks, transforming exactly once, with
// fewer than 30 dirty writes.
func TestCampfireCookingScenario(t *testing.T) {
	st := newMemStore()
	reg := registryForPotato()

	cf := &entity.Campfire{SlotArray: entity.NewSlotArray(2), ID: 1, Lit: true, FuelSlot: 0}
	fuelIID := st.NextInstanceID()
	st.PutItem(&item.InventoryItem{InstanceID: fuelIID, ItemDefID: 99, Quantity: 1})
	cf.SetSlot(0, fuelIID, true, 99, true)

	potatoIID := st.NextInstanceID()
	st.PutItem(&item.InventoryItem{InstanceID: potatoIID, ItemDefID: 1, Quantity: 1})
	cf.SetSlot(1, potatoIID, true, 1, true)

	pos := entity.Position{X: 1000, Y: 1000}
	dirtyTicks := 0
	for tick := 0; tick < 30; tick++ {
		if Tick(st, reg, cf, pos, 1.0, nil, nil, nil) {
			dirtyTicks++
		}
	}

	gotDef, ok := cf.SlotDefID(1)
	if !ok || gotDef != 2 {
		t.Fatalf("slot 1 def = %v (ok=%v), want cooked_potato", gotDef, ok)
	}
	gotIID, _ := cf.SlotInstanceID(1)
	gotItem, _ := st.Item(gotIID)
	if gotItem.Quantity != 1 {
		t.Fatalf("output quantity = %d, want 1", gotItem.Quantity)
	}

	// A 5% bucket is 1.5 s of the 30 s cook: 19 bucket changes over ticks
	// 1-29 plus the completion write on tick 30, 20 writes in all.
	if dirtyTicks >= 30 {
		t.Fatalf("dirtyTicks = %d, want well under 30 (quantisation should throttle writes)", dirtyTicks)
	}
	if dirtyTicks < 2 {
		t.Fatalf("dirtyTicks = %d, want at least a few quantisation steps plus completion", dirtyTicks)
	}
}

func TestCookingCompletesExactlyOnceAtBoundary(t *testing.T) {
	st := newMemStore()
	reg := registryForPotato()

	cf := &entity.Campfire{SlotArray: entity.NewSlotArray(1), ID: 1, FuelSlot: -1}
	potatoIID := st.NextInstanceID()
	st.PutItem(&item.InventoryItem{InstanceID: potatoIID, ItemDefID: 1, Quantity: 1})
	cf.SetSlot(0, potatoIID, true, 1, true)

	pos := entity.Position{}
	for i := 0; i < 29; i++ {
		Tick(st, reg, cf, pos, 1.0, nil, nil, nil)
	}
	if got, _ := cf.SlotDefID(0); got != 1 {
		t.Fatalf("should not have transformed before target_secs reached")
	}

	Tick(st, reg, cf, pos, 1.0, nil, nil, nil)
	if got, _ := cf.SlotDefID(0); got != 2 {
		t.Fatalf("should have transformed exactly at target_secs")
	}

	// One more tick must not transform again (slot is empty of a
	// cookable source now).
	Tick(st, reg, cf, pos, 1.0, nil, nil, nil)
	if got, _ := cf.SlotDefID(0); got != 2 {
		t.Fatalf("should not transform twice")
	}
}

func TestFuelSlotSkipped(t *testing.T) {
	st := newMemStore()
	reg := registryForPotato()

	cf := &entity.Campfire{SlotArray: entity.NewSlotArray(1), ID: 1, FuelSlot: 0}
	potatoIID := st.NextInstanceID()
	st.PutItem(&item.InventoryItem{InstanceID: potatoIID, ItemDefID: 1, Quantity: 1})
	cf.SetSlot(0, potatoIID, true, 1, true)

	for i := 0; i < 40; i++ {
		Tick(st, reg, cf, entity.Position{}, 1.0, nil, nil, nil)
	}
	if got, _ := cf.SlotDefID(0); got != 1 {
		t.Fatalf("fuel slot should never be cooked")
	}
}

func TestRepairTick(t *testing.T) {
	it := &item.InventoryItem{Data: item.DurableData{Current: 10, Max: 100}}
	var progress ProgressState
	for i := 0; i < 9; i++ {
		dirty, complete, err := RepairTick(it, &progress, 1.0, 10.0, 20)
		if err != nil {
			t.Fatalf("RepairTick: %v", err)
		}
		if complete {
			t.Fatalf("should not complete before target reached (tick %d)", i)
		}
		_ = dirty
	}
	_, complete, err := RepairTick(it, &progress, 1.0, 10.0, 20)
	if err != nil {
		t.Fatalf("RepairTick: %v", err)
	}
	if !complete {
		t.Fatalf("should complete at target_secs")
	}
	durable := it.Data.(item.DurableData)
	if durable.Current != 30 {
		t.Fatalf("Current = %d, want 30", durable.Current)
	}
	if durable.RepairCount != 1 {
		t.Fatalf("RepairCount = %d, want 1", durable.RepairCount)
	}
}
