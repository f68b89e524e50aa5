package entity

import (
	"time"

	"github.com/driftlands/survivalcore/server/item"
	"github.com/driftlands/survivalcore/server/item/inventory"
)

// SlotArray is the slot-array storage shared by every placeable container
// row. It implements the slot-accessor half of inventory.Container;
// embedding types add Kind/ContainerID/placement/health fields and their
// own Slots method on top (the embedded field can't be named Slots
// itself, since that would collide with the interface method of the same
// name).
type SlotArray struct {
	InstanceIDs []item.InstanceID
	HasInstance []bool
	DefIDs      []item.DefID
	HasDef      []bool
}

// NewSlotArray allocates an n-slot array, all empty.
func NewSlotArray(n int) SlotArray {
	return SlotArray{
		InstanceIDs: make([]item.InstanceID, n),
		HasInstance: make([]bool, n),
		DefIDs:      make([]item.DefID, n),
		HasDef:      make([]bool, n),
	}
}

// SlotCount reports how many slots are in the array.
func (s *SlotArray) SlotCount() int { return len(s.InstanceIDs) }

// SlotInstanceID implements part of inventory.Container.
func (s *SlotArray) SlotInstanceID(i int) (item.InstanceID, bool) {
	return s.InstanceIDs[i], s.HasInstance[i]
}

// SlotDefID implements part of inventory.Container.
func (s *SlotArray) SlotDefID(i int) (item.DefID, bool) { return s.DefIDs[i], s.HasDef[i] }

// SetSlot implements part of inventory.Container.
func (s *SlotArray) SetSlot(i int, iid item.InstanceID, hasIID bool, def item.DefID, hasDef bool) {
	s.InstanceIDs[i], s.HasInstance[i] = iid, hasIID
	s.DefIDs[i], s.HasDef[i] = def, hasDef
}

// StorageBox is a player-placed container; it persists even when empty,
// unlike the system-placed loot containers below.
type StorageBox struct {
	SlotArray
	ID         uint64
	Pos        Position
	ChunkIndex uint32
	Health     int
	Destroyed  bool
}

func (b *StorageBox) Kind() item.ContainerKind { return item.ContainerStorageBox }
func (b *StorageBox) ContainerID() uint64      { return b.ID }
func (b *StorageBox) Slots() int               { return b.SlotCount() }

var _ inventory.Container = (*StorageBox)(nil)

// CookingSlot tracks per-slot cooking progress for an appliance.
type CookingSlot struct {
	Active            bool
	CurrentSecs       float64
	TargetSecs        float64
	TargetItemDefName string
	// LastQuantizedStep is the most recently committed 5%-quantisation
	// bucket; re-derived, not persisted state that matters on its own,
	// but kept here so Tick can tell whether this tick's progress
	// crossed a bucket boundary.
	LastQuantizedStep int
}

// Campfire is a placeable campfire row, also a cooking appliance.
type Campfire struct {
	SlotArray
	ID         uint64
	Pos        Position
	ChunkIndex uint32
	Lit        bool
	FuelSlot   int
	Cooking    []CookingSlot
	Destroyed  bool
}

func (c *Campfire) Kind() item.ContainerKind { return item.ContainerCampfire }
func (c *Campfire) ContainerID() uint64      { return c.ID }
func (c *Campfire) Slots() int               { return c.SlotCount() }

var _ inventory.Container = (*Campfire)(nil)

// Furnace is a placeable furnace row.
type Furnace struct {
	SlotArray
	ID         uint64
	Pos        Position
	ChunkIndex uint32
	Lit        bool
	FuelSlot   int
	Cooking    []CookingSlot
	Destroyed  bool
}

func (f *Furnace) Kind() item.ContainerKind { return item.ContainerFurnace }
func (f *Furnace) ContainerID() uint64      { return f.ID }
func (f *Furnace) Slots() int               { return f.SlotCount() }

var _ inventory.Container = (*Furnace)(nil)

// BrothPot is a placeable broth-pot row — a campfire-like appliance
// that can also be filled with water by throwing a water container at
// it.
type BrothPot struct {
	SlotArray
	ID         uint64
	Pos        Position
	ChunkIndex uint32
	Lit        bool
	FuelSlot   int
	Cooking    []CookingSlot
	WaterMl    int
	Destroyed  bool
}

func (p *BrothPot) Kind() item.ContainerKind { return item.ContainerBrothPot }
func (p *BrothPot) ContainerID() uint64      { return p.ID }
func (p *BrothPot) Slots() int               { return p.SlotCount() }

var _ inventory.Container = (*BrothPot)(nil)

// MilitaryRation is a system-placed loot container (supplemented feature,
// grounded on military_ration.rs): fixed loot, respawns when emptied.
type MilitaryRation struct {
	SlotArray
	ID         uint64
	Pos        Position
	ChunkIndex uint32
	RespawnAt  time.Time
}

func (m *MilitaryRation) Kind() item.ContainerKind     { return item.ContainerMilitaryRation }
func (m *MilitaryRation) ContainerID() uint64          { return m.ID }
func (m *MilitaryRation) Slots() int                   { return m.SlotCount() }
func (m *MilitaryRation) ScheduleRespawn(at time.Time) { m.RespawnAt = at }

var (
	_ inventory.Container            = (*MilitaryRation)(nil)
	_ inventory.RespawnableContainer = (*MilitaryRation)(nil)
)

// BeehiveSlotCount, BeehiveQueenSlot and BeehiveOutputSlots describe a
// Beehive's fixed slot layout: one input slot for the queen bee, six
// honeycomb output slots, grounded on beehive.rs.
const (
	BeehiveSlotCount       = 7
	BeehiveQueenSlot       = 0
	BeehiveOutputSlotStart = 1
	BeehiveOutputSlotEnd   = 6
)

// Beehive is a player-placed production appliance (supplemented
// feature, grounded on beehive.rs/wild_beehive.rs): a queen bee in the
// input slot produces honeycomb into the output slots over time.
type Beehive struct {
	SlotArray
	ID             uint64
	Pos            Position
	ChunkIndex     uint32
	ProductionSecs float64
	Destroyed      bool
}

func (b *Beehive) Kind() item.ContainerKind { return item.ContainerBeehive }
func (b *Beehive) ContainerID() uint64      { return b.ID }
func (b *Beehive) Slots() int               { return b.SlotCount() }

var _ inventory.Container = (*Beehive)(nil)

// MineCart is a system-placed loot container (supplemented feature,
// grounded on mine_cart.rs).
type MineCart struct {
	SlotArray
	ID         uint64
	Pos        Position
	ChunkIndex uint32
	RespawnAt  time.Time
}

func (m *MineCart) Kind() item.ContainerKind     { return item.ContainerMineCart }
func (m *MineCart) ContainerID() uint64          { return m.ID }
func (m *MineCart) Slots() int                   { return m.SlotCount() }
func (m *MineCart) ScheduleRespawn(at time.Time) { m.RespawnAt = at }

var (
	_ inventory.Container            = (*MineCart)(nil)
	_ inventory.RespawnableContainer = (*MineCart)(nil)
)
