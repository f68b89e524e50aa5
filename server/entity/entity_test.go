package entity

import (
	"testing"
	"time"

	"github.com/driftlands/survivalcore/server/item/inventory"
)

func TestChunkIndex(t *testing.T) {
	dims := WorldDimensions{WidthPx: 4096, HeightPx: 4096, ChunkSizePx: 256}
	tests := []struct {
		x, y float64
		want uint32
	}{
		{0, 0, 0},
		{255, 0, 0},
		{256, 0, 1},
		{0, 256, 16},
		{4095, 4095, 15*16 + 15},
	}
	for _, tt := range tests {
		if got := ChunkIndex(dims, tt.x, tt.y); got != tt.want {
			t.Fatalf("ChunkIndex(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestShelterContains(t *testing.T) {
	s := Shelter{MinX: 100, MinY: 100, MaxX: 200, MaxY: 150}
	if !s.Contains(150, 120) {
		t.Fatalf("interior point should be contained")
	}
	if !s.Contains(100, 100) {
		t.Fatalf("boundary point should be contained")
	}
	if s.Contains(250, 120) {
		t.Fatalf("exterior point should not be contained")
	}
}

func TestStorageBoxImplementsContainer(t *testing.T) {
	box := &StorageBox{SlotArray: NewSlotArray(4), ID: 7}
	var c inventory.Container = box
	if c.Slots() != 4 {
		t.Fatalf("Slots() = %d, want 4", c.Slots())
	}
	if c.ContainerID() != 7 {
		t.Fatalf("ContainerID() = %d, want 7", c.ContainerID())
	}
	if _, ok := c.SlotInstanceID(0); ok {
		t.Fatalf("fresh slot should be empty")
	}
}

func TestRespawnableContainerSchedulesWithinWindow(t *testing.T) {
	m := &MilitaryRation{SlotArray: NewSlotArray(2), ID: 1}
	now := time.Unix(0, 0).UTC()
	inventory.CleanupIfEmpty(m, now, 30*time.Second)
	if m.RespawnAt.Before(now.Add(inventory.RespawnDelayMin)) {
		t.Fatalf("jitter below minimum should be clamped up to RespawnDelayMin")
	}

	m2 := &MilitaryRation{SlotArray: NewSlotArray(2), ID: 2}
	inventory.CleanupIfEmpty(m2, now, time.Hour)
	if m2.RespawnAt.After(now.Add(inventory.RespawnDelayMax)) {
		t.Fatalf("jitter above maximum should be clamped down to RespawnDelayMax")
	}
}

func TestTillReversionWindow(t *testing.T) {
	placed := time.Unix(0, 0).UTC()
	meta := TilledTileMetadata{TileX: 3, TileY: 4, TilledAt: placed, RevertAt: placed.Add(TillReversionWindow)}
	if meta.RevertAt.Sub(meta.TilledAt) != 48*time.Hour {
		t.Fatalf("till reversion window = %v, want 48h", meta.RevertAt.Sub(meta.TilledAt))
	}
}
