package sqlitestore

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/driftlands/survivalcore/server/item"
	"github.com/driftlands/survivalcore/server/platform"
)

// Location kind tags, persisted in the location_kind column.
const (
	locationInventory = "inventory"
	locationHotbar    = "hotbar"
	locationEquipped  = "equipped"
	locationContainer = "container"
	locationDropped   = "dropped"
)

// Instance-data kind tags, persisted in the data_kind column. dataKindNone
// marks an item with no InstanceData payload.
const (
	dataKindNone           = ""
	dataKindWaterContainer = "water_container"
	dataKindDurable        = "durable"
	dataKindBeehiveQueen   = "beehive_queen"
	dataKindCookingHeld    = "cooking_held"
)

func encodeLocation(loc item.Location) (kind, payload string, err error) {
	switch l := loc.(type) {
	case item.Inventory:
		b, err := json.Marshal(struct {
			Owner     string `json:"owner"`
			SlotIndex uint16 `json:"slot_index"`
		}{uuid.UUID(l.Owner).String(), l.SlotIndex})
		return locationInventory, string(b), err
	case item.Hotbar:
		b, err := json.Marshal(struct {
			Owner     string `json:"owner"`
			SlotIndex uint8  `json:"slot_index"`
		}{uuid.UUID(l.Owner).String(), l.SlotIndex})
		return locationHotbar, string(b), err
	case item.Equipped:
		b, err := json.Marshal(struct {
			Owner string        `json:"owner"`
			Slot  item.SlotType `json:"slot"`
		}{uuid.UUID(l.Owner).String(), l.Slot})
		return locationEquipped, string(b), err
	case item.Container:
		b, err := json.Marshal(struct {
			Kind        item.ContainerKind `json:"kind"`
			ContainerID uint64             `json:"container_id"`
			SlotIndex   uint8              `json:"slot_index"`
		}{l.Kind, l.ContainerID, l.SlotIndex})
		return locationContainer, string(b), err
	case item.Dropped:
		return locationDropped, "{}", nil
	default:
		return "", "", fmt.Errorf("sqlitestore: item location variant %T is not persistable", loc)
	}
}

func decodeLocation(kind, payload string) (item.Location, error) {
	switch kind {
	case locationInventory:
		var v struct {
			Owner     string `json:"owner"`
			SlotIndex uint16 `json:"slot_index"`
		}
		if err := json.Unmarshal([]byte(payload), &v); err != nil {
			return nil, err
		}
		owner, err := uuid.Parse(v.Owner)
		if err != nil {
			return nil, err
		}
		return item.Inventory{Owner: platform.Identity(owner), SlotIndex: v.SlotIndex}, nil
	case locationHotbar:
		var v struct {
			Owner     string `json:"owner"`
			SlotIndex uint8  `json:"slot_index"`
		}
		if err := json.Unmarshal([]byte(payload), &v); err != nil {
			return nil, err
		}
		owner, err := uuid.Parse(v.Owner)
		if err != nil {
			return nil, err
		}
		return item.Hotbar{Owner: platform.Identity(owner), SlotIndex: v.SlotIndex}, nil
	case locationEquipped:
		var v struct {
			Owner string        `json:"owner"`
			Slot  item.SlotType `json:"slot"`
		}
		if err := json.Unmarshal([]byte(payload), &v); err != nil {
			return nil, err
		}
		owner, err := uuid.Parse(v.Owner)
		if err != nil {
			return nil, err
		}
		return item.Equipped{Owner: platform.Identity(owner), Slot: v.Slot}, nil
	case locationContainer:
		var v struct {
			Kind        item.ContainerKind `json:"kind"`
			ContainerID uint64             `json:"container_id"`
			SlotIndex   uint8              `json:"slot_index"`
		}
		if err := json.Unmarshal([]byte(payload), &v); err != nil {
			return nil, err
		}
		return item.Container{Kind: v.Kind, ContainerID: v.ContainerID, SlotIndex: v.SlotIndex}, nil
	case locationDropped:
		return item.Dropped{}, nil
	default:
		return nil, fmt.Errorf("sqlitestore: unknown location_kind %q", kind)
	}
}

func encodeInstanceData(data item.InstanceData) (kind, payload string, err error) {
	switch d := data.(type) {
	case nil:
		return dataKindNone, "", nil
	case item.WaterContainerData:
		b, err := json.Marshal(d)
		return dataKindWaterContainer, string(b), err
	case item.DurableData:
		b, err := json.Marshal(d)
		return dataKindDurable, string(b), err
	case item.BeehiveQueenData:
		b, err := json.Marshal(d)
		return dataKindBeehiveQueen, string(b), err
	case item.CookingHeldData:
		b, err := json.Marshal(d)
		return dataKindCookingHeld, string(b), err
	default:
		return "", "", fmt.Errorf("sqlitestore: item instance data variant %T is not persistable", data)
	}
}

func decodeInstanceData(kind, payload string) (item.InstanceData, error) {
	switch kind {
	case dataKindNone:
		return nil, nil
	case dataKindWaterContainer:
		var d item.WaterContainerData
		if err := json.Unmarshal([]byte(payload), &d); err != nil {
			return nil, err
		}
		return d, nil
	case dataKindDurable:
		var d item.DurableData
		if err := json.Unmarshal([]byte(payload), &d); err != nil {
			return nil, err
		}
		return d, nil
	case dataKindBeehiveQueen:
		var d item.BeehiveQueenData
		if err := json.Unmarshal([]byte(payload), &d); err != nil {
			return nil, err
		}
		return d, nil
	case dataKindCookingHeld:
		var d item.CookingHeldData
		if err := json.Unmarshal([]byte(payload), &d); err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("sqlitestore: unknown data_kind %q", kind)
	}
}

// SaveItems replaces the saved item-instance set with items. Dropped items
// are persisted with an empty location payload since a dropped item's
// position lives on the DroppedItem row, not the InventoryItem.
func (db *DB) SaveItems(items []*item.InventoryItem) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM items"); err != nil {
		return err
	}

	stmt, err := tx.Preparex(
		`INSERT INTO items (instance_id, item_def_id, quantity, location_kind, location_json, data_kind, data_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, it := range items {
		locKind, locJSON, err := encodeLocation(it.Location)
		if err != nil {
			return fmt.Errorf("encode location for item %d: %w", it.InstanceID, err)
		}
		dataKind, dataJSON, err := encodeInstanceData(it.Data)
		if err != nil {
			return fmt.Errorf("encode instance data for item %d: %w", it.InstanceID, err)
		}
		_, err = stmt.Exec(it.InstanceID, it.ItemDefID, it.Quantity, locKind, locJSON, dataKind, dataJSON)
		if err != nil {
			return fmt.Errorf("insert item %d: %w", it.InstanceID, err)
		}
	}

	return tx.Commit()
}

// LoadItems reads every saved item instance.
func (db *DB) LoadItems() ([]*item.InventoryItem, error) {
	type row struct {
		InstanceID   item.InstanceID `db:"instance_id"`
		ItemDefID    item.DefID      `db:"item_def_id"`
		Quantity     int             `db:"quantity"`
		LocationKind string          `db:"location_kind"`
		LocationJSON string          `db:"location_json"`
		DataKind     string          `db:"data_kind"`
		DataJSON     string          `db:"data_json"`
	}
	var rows []row
	if err := db.conn.Select(&rows, "SELECT instance_id, item_def_id, quantity, location_kind, location_json, data_kind, data_json FROM items"); err != nil {
		return nil, err
	}

	out := make([]*item.InventoryItem, 0, len(rows))
	for _, r := range rows {
		loc, err := decodeLocation(r.LocationKind, r.LocationJSON)
		if err != nil {
			return nil, fmt.Errorf("decode location for item %d: %w", r.InstanceID, err)
		}
		data, err := decodeInstanceData(r.DataKind, r.DataJSON)
		if err != nil {
			return nil, fmt.Errorf("decode instance data for item %d: %w", r.InstanceID, err)
		}
		out = append(out, &item.InventoryItem{
			InstanceID: r.InstanceID,
			ItemDefID:  r.ItemDefID,
			Quantity:   r.Quantity,
			Location:   loc,
			Data:       data,
		})
	}
	return out, nil
}
