package sched

import (
	"time"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/item"
	"github.com/driftlands/survivalcore/server/item/inventory"
	"github.com/driftlands/survivalcore/server/platform"
)

// RespawnTrees/Stones/Harvestables/LivingCorals implement the
// resource-respawn scheduled reducer for each harvestable kind: once a
// depleted resource's respawn_at is ripe, its health and (for trees and
// stones) resource_remaining restore and respawn_at resets to the
// EpochZero "alive" sentinel.

// RespawnTrees implements the sweep for Tree rows.
func RespawnTrees(tx *platform.Tx, trees []*entity.Tree) error {
	if err := tx.RequireSystem(); err != nil {
		return err
	}
	now := tx.Now()
	for _, t := range trees {
		if platform.Ripe(t.RespawnAt, now) {
			t.Health = t.MaxHealth
			t.ResourceRemaining = t.MaxHealth
			t.RespawnAt = platform.EpochZero
		}
	}
	return nil
}

// RespawnStones implements the sweep for Stone rows.
func RespawnStones(tx *platform.Tx, stones []*entity.Stone) error {
	if err := tx.RequireSystem(); err != nil {
		return err
	}
	now := tx.Now()
	for _, s := range stones {
		if platform.Ripe(s.RespawnAt, now) {
			s.Health = s.MaxHealth
			s.ResourceRemaining = s.MaxHealth
			s.RespawnAt = platform.EpochZero
		}
	}
	return nil
}

// RespawnHarvestables implements the sweep for HarvestableResource rows;
// a player-planted crop's GrowthStage resets alongside its health so it
// must grow again from scratch.
func RespawnHarvestables(tx *platform.Tx, res []*entity.HarvestableResource) error {
	if err := tx.RequireSystem(); err != nil {
		return err
	}
	now := tx.Now()
	for _, r := range res {
		if platform.Ripe(r.RespawnAt, now) {
			r.Health = r.MaxHealth
			r.RespawnAt = platform.EpochZero
			if r.IsPlayerPlanted {
				r.GrowthStage = 0
			}
		}
	}
	return nil
}

// RespawnLivingCorals implements the sweep for LivingCoral rows.
func RespawnLivingCorals(tx *platform.Tx, corals []*entity.LivingCoral) error {
	if err := tx.RequireSystem(); err != nil {
		return err
	}
	now := tx.Now()
	for _, c := range corals {
		if platform.Ripe(c.RespawnAt, now) {
			c.Health = c.MaxHealth
			c.RespawnAt = platform.EpochZero
		}
	}
	return nil
}

// restockContainer fills c's empty slots (in order) from loadout,
// creating a fresh InventoryItem per entry (quantity clamped to the
// definition's stack size), mirroring the direct-slot placement the
// beehive production reducer uses.
func restockContainer(st inventory.Store, reg *item.Registry, c inventory.Container, loadout []inventory.Loadout) error {
	slotIdx := 0
	for _, l := range loadout {
		def, ok := reg.ByID(l.ItemDefID)
		if !ok {
			continue
		}
		for slotIdx < c.Slots() {
			if _, hasDef := c.SlotDefID(slotIdx); !hasDef {
				break
			}
			slotIdx++
		}
		if slotIdx >= c.Slots() {
			return nil
		}
		qty := l.Quantity
		if qty > def.StackSize {
			qty = def.StackSize
		}
		iid := st.NextInstanceID()
		it := &item.InventoryItem{
			InstanceID: iid,
			ItemDefID:  l.ItemDefID,
			Quantity:   qty,
			Location:   item.Container{Kind: c.Kind(), ContainerID: c.ContainerID(), SlotIndex: uint8(slotIdx)},
		}
		if err := st.PutItem(it); err != nil {
			return err
		}
		c.SetSlot(slotIdx, iid, true, l.ItemDefID, true)
		slotIdx++
	}
	return nil
}

// RespawnMilitaryRations implements the respawn_military_rations
// scheduled reducer: once ripe, restocks a military ration's fixed
// loadout and resets its respawn sentinel.
func RespawnMilitaryRations(tx *platform.Tx, st inventory.Store, reg *item.Registry, rations []*entity.MilitaryRation, loadout []inventory.Loadout) error {
	if err := tx.RequireSystem(); err != nil {
		return err
	}
	now := tx.Now()
	for _, m := range rations {
		if !platform.Ripe(m.RespawnAt, now) {
			continue
		}
		if err := restockContainer(st, reg, m, loadout); err != nil {
			return err
		}
		m.RespawnAt = platform.EpochZero
	}
	return nil
}

// RespawnMineCarts implements the respawn_mine_carts scheduled reducer,
// mirroring RespawnMilitaryRations for the mine-cart loot table.
func RespawnMineCarts(tx *platform.Tx, st inventory.Store, reg *item.Registry, carts []*entity.MineCart, loadout []inventory.Loadout) error {
	if err := tx.RequireSystem(); err != nil {
		return err
	}
	now := tx.Now()
	for _, m := range carts {
		if !platform.Ripe(m.RespawnAt, now) {
			continue
		}
		if err := restockContainer(st, reg, m, loadout); err != nil {
			return err
		}
		m.RespawnAt = platform.EpochZero
	}
	return nil
}

// RespawnWildBeehives implements the respawn_wild_beehives scheduled
// reducer: a wild beehive (modelled as a Beehive row with no owner)
// respawns a fresh queen bee once ripe.
func RespawnWildBeehives(tx *platform.Tx, st inventory.Store, reg *item.Registry, beehives []*entity.Beehive, respawnAt map[uint64]time.Time) error {
	if err := tx.RequireSystem(); err != nil {
		return err
	}
	now := tx.Now()
	queenDef, ok := reg.ByName(QueenBeeItemName)
	if !ok {
		return nil
	}
	for _, b := range beehives {
		at, scheduled := respawnAt[b.ID]
		if !scheduled || now.Before(at) {
			continue
		}
		if _, hasDef := b.SlotDefID(entity.BeehiveQueenSlot); hasDef {
			delete(respawnAt, b.ID)
			continue
		}
		iid := st.NextInstanceID()
		it := &item.InventoryItem{
			InstanceID: iid,
			ItemDefID:  queenDef.ID,
			Quantity:   1,
			Location:   item.Container{Kind: item.ContainerBeehive, ContainerID: b.ID, SlotIndex: entity.BeehiveQueenSlot},
		}
		if err := st.PutItem(it); err != nil {
			return err
		}
		b.SetSlot(entity.BeehiveQueenSlot, iid, true, queenDef.ID, true)
		delete(respawnAt, b.ID)
	}
	return nil
}
