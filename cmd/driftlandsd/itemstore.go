package main

import "github.com/driftlands/survivalcore/server/item"

// itemStore is a minimal in-memory inventory.Store, backing the scheduled
// reducers that need to create or look up item instances (beehive
// production, container restocking) outside of a real connected game
// session.
type itemStore struct {
	items map[item.InstanceID]*item.InventoryItem
	next  item.InstanceID
}

func newItemStore(seed []*item.InventoryItem) *itemStore {
	st := &itemStore{items: make(map[item.InstanceID]*item.InventoryItem, len(seed))}
	for _, it := range seed {
		st.items[it.InstanceID] = it
		if it.InstanceID > st.next {
			st.next = it.InstanceID
		}
	}
	return st
}

func (s *itemStore) Item(iid item.InstanceID) (*item.InventoryItem, bool) {
	it, ok := s.items[iid]
	return it, ok
}

func (s *itemStore) PutItem(it *item.InventoryItem) error {
	s.items[it.InstanceID] = it
	return nil
}

func (s *itemStore) DeleteItem(iid item.InstanceID) error {
	delete(s.items, iid)
	return nil
}

func (s *itemStore) NextInstanceID() item.InstanceID {
	s.next++
	return s.next
}

// snapshot returns every item currently held, for persistence.
func (s *itemStore) snapshot() []*item.InventoryItem {
	out := make([]*item.InventoryItem, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	return out
}
