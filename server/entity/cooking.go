package entity

// ensureCookingSlots grows s to at least n entries so index i is always
// addressable, lazily matching each container's slot count rather than
// requiring every placeable to pre-size its Cooking slice at construction.
func ensureCookingSlots(s *[]CookingSlot, n int) {
	if len(*s) >= n {
		return
	}
	grown := make([]CookingSlot, n)
	copy(grown, *s)
	*s = grown
}

// FuelSlotIndex reports the slot index holding this campfire's active
// fuel, which Tick skips over when advancing cooking progress.
func (c *Campfire) FuelSlotIndex() int { return c.FuelSlot }

// CookingProgress returns the mutable per-slot cooking state for slot i,
// growing the backing slice if needed.
func (c *Campfire) CookingProgress(i int) *CookingSlot {
	ensureCookingSlots(&c.Cooking, c.SlotCount())
	return &c.Cooking[i]
}

// FuelSlotIndex reports the slot index holding this furnace's active fuel.
func (f *Furnace) FuelSlotIndex() int { return f.FuelSlot }

// CookingProgress returns the mutable per-slot cooking state for slot i.
func (f *Furnace) CookingProgress(i int) *CookingSlot {
	ensureCookingSlots(&f.Cooking, f.SlotCount())
	return &f.Cooking[i]
}

// FuelSlotIndex reports the slot index holding this broth pot's active
// fuel.
func (p *BrothPot) FuelSlotIndex() int { return p.FuelSlot }

// CookingProgress returns the mutable per-slot cooking state for slot i.
func (p *BrothPot) CookingProgress(i int) *CookingSlot {
	ensureCookingSlots(&p.Cooking, p.SlotCount())
	return &p.Cooking[i]
}
