package inventory

import "github.com/driftlands/survivalcore/server/item"

// Loadout is one entry in a starting-items grant.
type Loadout struct {
	ItemDefID item.DefID
	Quantity  int
}

// GrantStartingItems grants a fixed loadout if the player's hotbar and
// inventory are both empty. The emptiness check is what makes repeated
// calls idempotent: a player who already has items is left untouched
// rather than topped up a second time.
func GrantStartingItems(st Store, reg *item.Registry, hotbar, inv SlotSet, loadout []Loadout) error {
	if !AllEmpty(hotbar) || !AllEmpty(inv) {
		return nil
	}
	for _, l := range loadout {
		if _, err := AddToPlayerInventory(st, reg, hotbar, inv, l.ItemDefID, l.Quantity, nil); err != nil {
			return err
		}
	}
	return nil
}
