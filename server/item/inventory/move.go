package inventory

import (
	"github.com/driftlands/survivalcore/server/item"
)

func clearSlot(s SlotSet, i int) {
	s.SetSlot(i, 0, false, 0, false)
}

func place(s SlotSet, i int, it *item.InventoryItem) {
	s.SetSlot(i, it.InstanceID, true, it.ItemDefID, true)
	it.Location = s.LocationFor(i)
}

// firstEmpty returns the index of the first empty slot in s, or -1.
func firstEmpty(s SlotSet) int {
	for i := 0; i < s.Slots(); i++ {
		if Empty(s, i) {
			return i
		}
	}
	return -1
}

// stackableSlot returns the index of the first slot holding defID with
// spare capacity, or -1.
func stackableSlot(st Store, reg *item.Registry, s SlotSet, defID item.DefID) int {
	for i := 0; i < s.Slots(); i++ {
		got, ok := s.SlotDefID(i)
		if !ok || got != defID {
			continue
		}
		iid, _ := s.SlotInstanceID(i)
		existing, ok := st.Item(iid)
		if !ok {
			continue
		}
		def, ok := reg.ByID(defID)
		if !ok {
			continue
		}
		if item.SpareCapacity(def, existing.Quantity) > 0 {
			return i
		}
	}
	return -1
}

// Move implements "move to container slot": resolve source,
// and if the target slot is empty relocate, if occupied by the same
// item_def_id with spare capacity merge (carrying overflow back to
// source), otherwise swap. Equipped target slots are validated by the
// caller before invoking Move (the slot-type check needs the item's
// equip metadata, which this package does not own).
func Move(st Store, reg *item.Registry, src SlotSet, srcIdx int, dst SlotSet, dstIdx int) error {
	if srcIdx < 0 || srcIdx >= src.Slots() || dstIdx < 0 || dstIdx >= dst.Slots() {
		return ErrInvalidSlot
	}
	srcIID, ok := src.SlotInstanceID(srcIdx)
	if !ok {
		return ErrInvalidSlot
	}
	srcItem, ok := st.Item(srcIID)
	if !ok {
		return ErrInvalidSlot
	}

	if Empty(dst, dstIdx) {
		clearSlot(src, srcIdx)
		place(dst, dstIdx, srcItem)
		return st.PutItem(srcItem)
	}

	dstIID, _ := dst.SlotInstanceID(dstIdx)
	dstDefID, _ := dst.SlotDefID(dstIdx)
	dstItem, ok := st.Item(dstIID)
	if !ok {
		return ErrInvalidSlot
	}

	if dstDefID == srcItem.ItemDefID {
		def, ok := reg.ByID(dstDefID)
		if ok {
			spare := item.SpareCapacity(def, dstItem.Quantity)
			if spare > 0 {
				moved := min(spare, srcItem.Quantity)
				dstItem.Quantity += moved
				srcItem.Quantity -= moved
				if err := st.PutItem(dstItem); err != nil {
					return err
				}
				if srcItem.Quantity <= 0 {
					clearSlot(src, srcIdx)
					return st.DeleteItem(srcItem.InstanceID)
				}
				return st.PutItem(srcItem)
			}
		}
	}

	// Swap.
	clearSlot(src, srcIdx)
	clearSlot(dst, dstIdx)
	place(dst, dstIdx, srcItem)
	place(src, srcIdx, dstItem)
	if err := st.PutItem(srcItem); err != nil {
		return err
	}
	return st.PutItem(dstItem)
}

// QuickMoveIn implements "quick-move into container": try
// stack-with-existing first across all compatible partially filled slots
// in index order, then the first empty slot; "no space" otherwise.
func QuickMoveIn(st Store, reg *item.Registry, src SlotSet, srcIdx int, dst SlotSet) error {
	if srcIdx < 0 || srcIdx >= src.Slots() {
		return ErrInvalidSlot
	}
	srcIID, ok := src.SlotInstanceID(srcIdx)
	if !ok {
		return ErrInvalidSlot
	}
	srcItem, ok := st.Item(srcIID)
	if !ok {
		return ErrInvalidSlot
	}

	merged := false
	for i := stackableSlot(st, reg, dst, srcItem.ItemDefID); i >= 0; i = stackableSlot(st, reg, dst, srcItem.ItemDefID) {
		dstIID, _ := dst.SlotInstanceID(i)
		if dstIID == srcIID {
			break
		}
		dstItem, _ := st.Item(dstIID)
		def, _ := reg.ByID(srcItem.ItemDefID)
		spare := item.SpareCapacity(def, dstItem.Quantity)
		moved := min(spare, srcItem.Quantity)
		dstItem.Quantity += moved
		srcItem.Quantity -= moved
		merged = true
		if err := st.PutItem(dstItem); err != nil {
			return err
		}
		if srcItem.Quantity <= 0 {
			clearSlot(src, srcIdx)
			return st.DeleteItem(srcItem.InstanceID)
		}
	}

	if i := firstEmpty(dst); i >= 0 {
		clearSlot(src, srcIdx)
		place(dst, i, srcItem)
		return st.PutItem(srcItem)
	}
	if merged {
		return st.PutItem(srcItem)
	}

	return ErrNoSpace
}

// QuickMoveOut implements "quick-move out of container":
// hotbar first, then first empty inventory slot, else drop. hotbar and
// inv may be nil if unavailable (e.g. moving from another player's loot
// view); dropAt is invoked only when neither accepts the item.
func QuickMoveOut(st Store, reg *item.Registry, src SlotSet, srcIdx int, hotbar, inv SlotSet, dropAt func(*item.InventoryItem) error) error {
	if srcIdx < 0 || srcIdx >= src.Slots() {
		return ErrInvalidSlot
	}
	srcIID, ok := src.SlotInstanceID(srcIdx)
	if !ok {
		return ErrInvalidSlot
	}
	srcItem, ok := st.Item(srcIID)
	if !ok {
		return ErrInvalidSlot
	}

	for _, dst := range []SlotSet{hotbar, inv} {
		if dst == nil {
			continue
		}
		if i := stackableSlot(st, reg, dst, srcItem.ItemDefID); i >= 0 {
			dstIID, _ := dst.SlotInstanceID(i)
			dstItem, _ := st.Item(dstIID)
			def, _ := reg.ByID(srcItem.ItemDefID)
			spare := item.SpareCapacity(def, dstItem.Quantity)
			moved := min(spare, srcItem.Quantity)
			dstItem.Quantity += moved
			srcItem.Quantity -= moved
			if err := st.PutItem(dstItem); err != nil {
				return err
			}
			if srcItem.Quantity <= 0 {
				clearSlot(src, srcIdx)
				return st.DeleteItem(srcItem.InstanceID)
			}
			return st.PutItem(srcItem)
		}
	}
	for _, dst := range []SlotSet{hotbar, inv} {
		if dst == nil {
			continue
		}
		if i := firstEmpty(dst); i >= 0 {
			clearSlot(src, srcIdx)
			place(dst, i, srcItem)
			return st.PutItem(srcItem)
		}
	}

	clearSlot(src, srcIdx)
	srcItem.Location = item.Dropped{}
	if err := dropAt(srcItem); err != nil {
		return err
	}
	return st.PutItem(srcItem)
}

// Split implements "split stack": create a new item instance
// with qty in dst slot dstIdx, decrementing the source.
func Split(st Store, src SlotSet, srcIdx int, qty int, dst SlotSet, dstIdx int) error {
	if srcIdx < 0 || srcIdx >= src.Slots() || dstIdx < 0 || dstIdx >= dst.Slots() {
		return ErrInvalidSlot
	}
	if !Empty(dst, dstIdx) {
		return ErrInvalidSlot
	}
	srcIID, ok := src.SlotInstanceID(srcIdx)
	if !ok {
		return ErrInvalidSlot
	}
	srcItem, ok := st.Item(srcIID)
	if !ok {
		return ErrInvalidSlot
	}
	if qty <= 0 || qty >= srcItem.Quantity {
		return ErrInsufficient
	}

	srcItem.Quantity -= qty
	newItem := &item.InventoryItem{
		InstanceID: st.NextInstanceID(),
		ItemDefID:  srcItem.ItemDefID,
		Quantity:   qty,
		Data:       srcItem.Data,
	}
	place(dst, dstIdx, newItem)
	if err := st.PutItem(newItem); err != nil {
		return err
	}
	return st.PutItem(srcItem)
}

// AddToPlayerInventory implements "add to player inventory":
// walk hotbar slots first, then inventory slots, stacking where possible,
// else occupying the first empty slot. The returned remainder is the
// quantity that could not be placed, for the caller to drop as a world
// entity.
func AddToPlayerInventory(st Store, reg *item.Registry, hotbar, inv SlotSet, defID item.DefID, quantity int, data item.InstanceData) (remainder int, err error) {
	def, ok := reg.ByID(defID)
	if !ok {
		return quantity, ErrInvalidSlot
	}
	remaining := quantity

	for _, dst := range []SlotSet{hotbar, inv} {
		for remaining > 0 {
			i := stackableSlot(st, reg, dst, defID)
			if i < 0 {
				break
			}
			iid, _ := dst.SlotInstanceID(i)
			existing, _ := st.Item(iid)
			spare := item.SpareCapacity(def, existing.Quantity)
			moved := min(spare, remaining)
			existing.Quantity += moved
			remaining -= moved
			if err := st.PutItem(existing); err != nil {
				return remaining, err
			}
		}
	}

	for _, dst := range []SlotSet{hotbar, inv} {
		for remaining > 0 {
			i := firstEmpty(dst)
			if i < 0 {
				break
			}
			placed := min(def.StackSize, remaining)
			newItem := &item.InventoryItem{
				InstanceID: st.NextInstanceID(),
				ItemDefID:  defID,
				Quantity:   placed,
				Data:       data,
			}
			place(dst, i, newItem)
			if err := st.PutItem(newItem); err != nil {
				return remaining, err
			}
			remaining -= placed
		}
	}

	return remaining, nil
}
