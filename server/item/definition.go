package item

import "time"

// DefID identifies an ItemDefinition. Definitions are static reference
// data; the core never mutates one at runtime.
type DefID uint32

// Category groups item definitions for UI and stacking-compatibility
// purposes.
type Category uint8

// Known item categories.
const (
	CategoryMisc Category = iota
	CategoryResource
	CategoryTool
	CategoryWeapon
	CategoryArmour
	CategoryFood
	CategoryAmmo
	CategoryPlaceable
)

// DamageRange is a raw-damage roll bound, used both for a weapon's
// PvP profile and its per-target-type profile.
type DamageRange struct {
	Min float64
	Max float64
}

// DamageProfile is a weapon's damage against each recognised target kind,
// keyed by a caller-defined target-type tag (e.g. "player", "wolf",
// "tree"). "pvp" is the conventional key for the player-vs-player roll.
type DamageProfile map[string]DamageRange

// Yield is one entry in a harvest/loot table: the item produced, the
// quantity range, and the base chance of it dropping per hit.
type Yield struct {
	ItemDefID DefID
	MinQty    int
	MaxQty    int
	Chance    float32
}

// ItemDefinition is the static description of an item kind. Populated
// once at boot from content data; the simulation core treats it as
// read-only.
type ItemDefinition struct {
	ID         DefID
	Name       string
	Category   Category
	Icon       string
	StackSize  int
	Equippable bool
	EquipSlot  SlotType

	// FuelBurnTime is how long one unit of this item burns as fuel in an
	// appliance, zero if it cannot be used as fuel.
	FuelBurnTime time.Duration

	// CookTime and CookedItemDefName drive the cooking engine: a slot's
	// item only cooks when both a cook time and a cooked output name are
	// defined. CookedItemDefName is a name rather than a
	// DefID because content data may reference items not yet registered
	// at content-load time; it is resolved lazily by the cooking engine.
	CookTime          time.Duration
	CookedItemDefName string
	CookedOutputQty   int

	Damage       DamageProfile
	Yields       []Yield
	ArmourResist map[string]float32
	// Immunities maps a damage type to the minimum number of equipped
	// pieces sharing that entry that must be worn together before the
	// immunity activates (the "5 bone pieces -> burn immunity" rule).
	Immunities map[string]float32
	// MeleeReflect is the fraction of incoming melee damage this armour
	// piece reflects back onto the attacker, before the aggregate 50% cap.
	MeleeReflect float32
	// FireAmplify is an additive fraction applied to fire damage this
	// piece's wearer receives (wooden armour amplifies fire).
	FireAmplify float32
	// IntimidatesAnimals marks armour that reads as a rival predator to
	// most wild animals, suppressing their chase trigger outright.
	IntimidatesAnimals bool

	AmmoType string

	// AttackRangePx and AttackArcDegrees describe a melee weapon's reach;
	// zero AttackArcDegrees means the 90-degree default applies.
	AttackRangePx    float64
	AttackArcDegrees float64
	// IsRangedWeapon gates the ammo-consumption path instead of the
	// melee range/arc check.
	IsRangedWeapon bool
	// HarvestMultiplier scales this tool's yield against a harvest
	// target's base chance (bone knife 5x, AK-74 bayonet 7x, a
	// non-primary tool 0.4x with a 10% floor).
	HarvestMultiplier float32
}

// Registry is the static content-data lookup the simulation core queries
// by DefID or by name (the cooking engine resolves cooked-output names
// lazily, per CookedItemDefName above).
type Registry struct {
	byID   map[DefID]*ItemDefinition
	byName map[string]*ItemDefinition
}

// NewRegistry builds a Registry from a set of definitions.
func NewRegistry(defs []*ItemDefinition) *Registry {
	r := &Registry{byID: make(map[DefID]*ItemDefinition, len(defs)), byName: make(map[string]*ItemDefinition, len(defs))}
	for _, d := range defs {
		r.byID[d.ID] = d
		r.byName[d.Name] = d
	}
	return r
}

// ByID looks up a definition by its id.
func (r *Registry) ByID(id DefID) (*ItemDefinition, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// ByName looks up a definition by its content-data name.
func (r *Registry) ByName(name string) (*ItemDefinition, bool) {
	d, ok := r.byName[name]
	return d, ok
}
