// Package inventory implements the container capability and the
// cross-container move operations: a slot-indexed substrate shared by
// every placeable (campfire, storage box, fridge, beehive, repair
// bench, loot crates) and by a player's backpack/hotbar/equipment.
package inventory

import (
	"errors"

	"github.com/driftlands/survivalcore/server/item"
)

// SlotSet is the capability a container's slot array provides: a fixed
// number of slots, slot accessors, and the Location each slot maps to.
// Concrete placeable rows (defined in server/entity) implement this
// directly against their own slot arrays via Container below; a player's
// backpack/hotbar/equipment implement it directly since their Location
// variants carry an owner rather than a container id.
type SlotSet interface {
	// Slots returns the number of slots this set exposes.
	Slots() int

	// SlotInstanceID and SlotDefID read slot i. The two are either both
	// present or both absent.
	SlotInstanceID(i int) (item.InstanceID, bool)
	SlotDefID(i int) (item.DefID, bool)

	// SetSlot writes slot i. Passing (0, false, 0, false) empties it.
	SetSlot(i int, iid item.InstanceID, hasIID bool, def item.DefID, hasDef bool)

	// LocationFor returns the Location value that slot i's occupant
	// should carry.
	LocationFor(i int) item.Location
}

// Container is a placeable's slot array: a storage box, campfire, furnace,
// and so on. Concrete rows (defined in server/entity) implement this
// directly; AsSlotSet below adapts it to SlotSet by deriving LocationFor
// from Kind/ContainerID, so entity rows never implement LocationFor
// themselves.
type Container interface {
	// Kind and ContainerID identify this container for Location.Container.
	Kind() item.ContainerKind
	ContainerID() uint64

	// Slots returns the number of slots this container exposes.
	Slots() int

	// SlotInstanceID and SlotDefID read slot i. The two are either both
	// present or both absent.
	SlotInstanceID(i int) (item.InstanceID, bool)
	SlotDefID(i int) (item.DefID, bool)

	// SetSlot writes slot i. Passing (0, false, 0, false) empties it.
	SetSlot(i int, iid item.InstanceID, hasIID bool, def item.DefID, hasDef bool)
}

// containerSlotSet adapts a Container to SlotSet by supplying LocationFor.
type containerSlotSet struct{ Container }

func (c containerSlotSet) LocationFor(i int) item.Location {
	return item.Container{Kind: c.Kind(), ContainerID: c.ContainerID(), SlotIndex: uint8(i)}
}

// AsSlotSet adapts a Container for use with the generic move operations.
func AsSlotSet(c Container) SlotSet { return containerSlotSet{c} }

// Errors returned by the move operations in this package.
var (
	ErrNoSpace      = errors.New("no space")
	ErrInvalidSlot  = errors.New("invalid slot")
	ErrWrongSlot    = errors.New("item does not fit this slot type")
	ErrInsufficient = errors.New("insufficient quantity")
)

// Empty reports whether slot i holds nothing.
func Empty(s SlotSet, i int) bool {
	_, hasIID := s.SlotInstanceID(i)
	return !hasIID
}

// AllEmpty reports whether every slot of s is empty — the condition that
// triggers empty-container cleanup for system-placed loot containers.
func AllEmpty(s SlotSet) bool {
	for i := 0; i < s.Slots(); i++ {
		if !Empty(s, i) {
			return false
		}
	}
	return true
}

// Store is the minimal item-row access the move operations need: look up
// an instance by id, and write one back (or delete it at quantity zero).
// It is satisfied by in-memory maps: cmd/driftlandsd's itemStore and the
// test stores.
type Store interface {
	Item(iid item.InstanceID) (*item.InventoryItem, bool)
	PutItem(it *item.InventoryItem) error
	DeleteItem(iid item.InstanceID) error
	NextInstanceID() item.InstanceID
}
