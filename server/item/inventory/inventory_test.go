package inventory

import (
	"testing"

	"github.com/driftlands/survivalcore/server/item"
)

// memStore is a minimal in-memory Store for testing.
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

// memSlots is a fixed-size slot array used for both player slot sets and
// test placeables.
type memSlots struct {
	iid  []item.InstanceID
	hasI []bool
	def  []item.DefID
	hasD []bool
	loc  func(i int) item.Location
}

func newMemSlots(n int, loc func(i int) item.Location) *memSlots {
	return &memSlots{iid: make([]item.InstanceID, n), hasI: make([]bool, n), def: make([]item.DefID, n), hasD: make([]bool, n), loc: loc}
}

func (s *memSlots) Slots() int                                   { return len(s.iid) }
func (s *memSlots) SlotInstanceID(i int) (item.InstanceID, bool) { return s.iid[i], s.hasI[i] }
func (s *memSlots) SlotDefID(i int) (item.DefID, bool)           { return s.def[i], s.hasD[i] }
func (s *memSlots) SetSlot(i int, iid item.InstanceID, hasIID bool, def item.DefID, hasDef bool) {
	s.iid[i], s.hasI[i], s.def[i], s.hasD[i] = iid, hasIID, def, hasDef
}
func (s *memSlots) LocationFor(i int) item.Location { return s.loc(i) }

func woodRegistry() *item.Registry {
	return item.NewRegistry([]*item.ItemDefinition{
		{ID: 1, Name: "wood", StackSize: 1000},
	})
}

func putStack(st *memStore, slots *memSlots, i int, defID item.DefID, qty int) item.InstanceID {
	iid := st.NextInstanceID()
	it := &item.InventoryItem{InstanceID: iid, ItemDefID: defID, Quantity: qty, Location: slots.LocationFor(i)}
	slots.SetSlot(i, iid, true, defID, true)
	st.PutItem(it)
	return iid
}

// TestQuickMoveStacking covers two "wood" stacks in a hotbar:
// quick-moving one into a storage box slot that already holds wood
// merges the quantities.
func TestQuickMoveStacking(t *testing.T) {
	st := newMemStore()
	reg := woodRegistry()

	hotbar := newMemSlots(2, func(i int) item.Location { return item.Hotbar{SlotIndex: uint8(i)} })
	box := newMemSlots(4, func(i int) item.Location {
		return item.Container{Kind: item.ContainerStorageBox, ContainerID: 1, SlotIndex: uint8(i)}
	})

	putStack(st, hotbar, 0, 1, 50)
	slot1 := putStack(st, hotbar, 1, 1, 10)
	putStack(st, box, 3, 1, 900)

	if err := QuickMoveIn(st, reg, hotbar, 1, box); err != nil {
		t.Fatalf("QuickMoveIn: %v", err)
	}

	boxIID, ok := box.SlotInstanceID(3)
	if !ok {
		t.Fatalf("box slot 3 is empty after merge")
	}
	boxItem, _ := st.Item(boxIID)
	if boxItem.Quantity != 910 {
		t.Fatalf("box slot 3 quantity = %d, want 910", boxItem.Quantity)
	}
	if !Empty(hotbar, 1) {
		t.Fatalf("hotbar slot 1 should be empty after full merge")
	}
	if _, ok := st.Item(slot1); ok {
		t.Fatalf("source item %d should have been deleted at quantity 0", slot1)
	}

	hotbar0IID, _ := hotbar.SlotInstanceID(0)
	hotbar0, _ := st.Item(hotbar0IID)
	if hotbar0.Quantity != 50 {
		t.Fatalf("hotbar slot 0 quantity changed: got %d, want 50", hotbar0.Quantity)
	}
}

func TestQuickMoveInNoSpace(t *testing.T) {
	st := newMemStore()
	reg := woodRegistry()

	hotbar := newMemSlots(1, func(i int) item.Location { return item.Hotbar{SlotIndex: uint8(i)} })
	box := newMemSlots(1, func(i int) item.Location {
		return item.Container{Kind: item.ContainerStorageBox, ContainerID: 1, SlotIndex: uint8(i)}
	})

	putStack(st, hotbar, 0, 1, 5)
	// Box slot 0 holds a different item, so neither stacking nor an empty
	// slot is available.
	otherReg := item.NewRegistry([]*item.ItemDefinition{{ID: 2, Name: "stone", StackSize: 100}})
	_ = otherReg
	putStack(st, box, 0, 2, 1)

	if err := QuickMoveIn(st, reg, hotbar, 0, box); err != ErrNoSpace {
		t.Fatalf("QuickMoveIn = %v, want ErrNoSpace", err)
	}
}

func TestMoveSwap(t *testing.T) {
	st := newMemStore()
	reg := item.NewRegistry([]*item.ItemDefinition{
		{ID: 1, Name: "wood", StackSize: 1000},
		{ID: 2, Name: "stone", StackSize: 1000},
	})

	hotbar := newMemSlots(2, func(i int) item.Location { return item.Hotbar{SlotIndex: uint8(i)} })
	woodID := putStack(st, hotbar, 0, 1, 10)
	stoneID := putStack(st, hotbar, 1, 2, 20)

	if err := Move(st, reg, hotbar, 0, hotbar, 1); err != nil {
		t.Fatalf("Move: %v", err)
	}

	gotSlot0, _ := hotbar.SlotInstanceID(0)
	gotSlot1, _ := hotbar.SlotInstanceID(1)
	if gotSlot0 != stoneID || gotSlot1 != woodID {
		t.Fatalf("swap did not exchange instances: slot0=%v slot1=%v", gotSlot0, gotSlot1)
	}
}

func TestSplit(t *testing.T) {
	st := newMemStore()
	hotbar := newMemSlots(2, func(i int) item.Location { return item.Hotbar{SlotIndex: uint8(i)} })
	woodID := putStack(st, hotbar, 0, 1, 100)

	if err := Split(st, hotbar, 0, 30, hotbar, 1); err != nil {
		t.Fatalf("Split: %v", err)
	}

	src, _ := st.Item(woodID)
	if src.Quantity != 70 {
		t.Fatalf("source quantity after split = %d, want 70", src.Quantity)
	}
	dstIID, ok := hotbar.SlotInstanceID(1)
	if !ok {
		t.Fatalf("destination slot empty after split")
	}
	dst, _ := st.Item(dstIID)
	if dst.Quantity != 30 {
		t.Fatalf("new stack quantity = %d, want 30", dst.Quantity)
	}
}

func TestAddToPlayerInventoryRemainder(t *testing.T) {
	st := newMemStore()
	reg := item.NewRegistry([]*item.ItemDefinition{{ID: 1, Name: "wood", StackSize: 10}})

	hotbar := newMemSlots(1, func(i int) item.Location { return item.Hotbar{SlotIndex: uint8(i)} })
	inv := newMemSlots(1, func(i int) item.Location { return item.Inventory{SlotIndex: uint16(i)} })

	remainder, err := AddToPlayerInventory(st, reg, hotbar, inv, 1, 25, nil)
	if err != nil {
		t.Fatalf("AddToPlayerInventory: %v", err)
	}
	if remainder != 5 {
		t.Fatalf("remainder = %d, want 5 (two full stacks of 10 placed)", remainder)
	}
}

func TestAllEmptyFreshSlotSet(t *testing.T) {
	box := newMemSlots(2, func(i int) item.Location {
		return item.Container{Kind: item.ContainerMilitaryRation, ContainerID: 1, SlotIndex: uint8(i)}
	})
	if !AllEmpty(box) {
		t.Fatalf("fresh slot set should be AllEmpty")
	}
}
