// Package item defines the canonical item type: static ItemDefinition
// reference data, the per-instance InventoryItem row, the tagged-union
// Location that says where an instance currently lives, and the typed
// InstanceData variants that replace a flat string-keyed data bag.
package item

import "github.com/driftlands/survivalcore/server/platform"

// SlotType identifies an equipment slot kind.
type SlotType uint8

// Equipment slot kinds, per Equipped variant.
const (
	SlotHead SlotType = iota
	SlotChest
	SlotLegs
	SlotFeet
	SlotHands
	SlotBack
)

// ContainerKind discriminates the placeable table a Container location
// refers to. The simulation core treats this as an opaque tag; the
// entity package defines the concrete container row types.
type ContainerKind uint8

// Known container kinds. New placeables append here rather than reusing a
// value, since the tag is persisted.
const (
	ContainerUnknownKind ContainerKind = iota
	ContainerStorageBox
	ContainerCampfire
	ContainerFurnace
	ContainerBrothPot
	ContainerFridge
	ContainerBeehive
	ContainerRepairBench
	ContainerMilitaryRation
	ContainerMineCart
)

// Location is the tagged union of every place an item can live: exactly
// one variant holds for any InventoryItem at any instant. It is modelled
// as a closed interface with an unexported marker method so only the
// variants in this package implement it.
type Location interface {
	location()
}

// Inventory is a slot in a player's backpack.
type Inventory struct {
	Owner     platform.Identity
	SlotIndex uint16
}

func (Inventory) location() {}

// Hotbar is a hotbar slot, distinct from Inventory because it carries a
// narrower slot-index width and different move priority.
type Hotbar struct {
	Owner     platform.Identity
	SlotIndex uint8
}

func (Hotbar) location() {}

// Equipped is an armour/tool slot of a specific SlotType.
type Equipped struct {
	Owner platform.Identity
	Slot  SlotType
}

func (Equipped) location() {}

// Container is a slot inside a placeable.
type Container struct {
	Kind        ContainerKind
	ContainerID uint64
	SlotIndex   uint8
}

func (Container) location() {}

// Dropped is a loose item lying in the world, not referenced by any
// container.
type Dropped struct{}

func (Dropped) location() {}

// Unknown is the transient location an item passes through mid-move,
// between being removed from its old home and placed in its new one.
type Unknown struct{}

func (Unknown) location() {}

// SameVariant reports whether a and b are the same Location variant,
// ignoring field values. Used by move/merge logic that needs to tell
// "still in a container" apart from "which container, which slot".
func SameVariant(a, b Location) bool {
	switch a.(type) {
	case Inventory:
		_, ok := b.(Inventory)
		return ok
	case Hotbar:
		_, ok := b.(Hotbar)
		return ok
	case Equipped:
		_, ok := b.(Equipped)
		return ok
	case Container:
		_, ok := b.(Container)
		return ok
	case Dropped:
		_, ok := b.(Dropped)
		return ok
	case Unknown:
		_, ok := b.(Unknown)
		return ok
	default:
		return false
	}
}
