package survival

import (
	"testing"
	"time"
)

func TestTickNoopWhenDisabled(t *testing.T) {
	cfg := DefaultConfig()
	m := Full()
	damage := Tick(cfg, &m, time.Hour)
	if m.Hunger != 100 || m.Thirst != 100 {
		t.Fatalf("meters drained while disabled: %+v", m)
	}
	if damage != 0 {
		t.Fatalf("damage = %d, want 0 while disabled", damage)
	}
}

func TestTickDrainsAndStarves(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.HungerDrainPerHour = 100
	cfg.ThirstDrainPerHour = 0
	cfg.StarvationDamagePerTick = 3

	m := Full()
	damage := Tick(cfg, &m, time.Hour)
	if m.Hunger != 0 {
		t.Fatalf("Hunger = %v, want 0", m.Hunger)
	}
	if damage != 3 {
		t.Fatalf("damage = %d, want 3 once hunger hits zero", damage)
	}
}

func TestConsumeCapsAt100(t *testing.T) {
	m := Meters{Hunger: 90, Thirst: 95}
	Consume(&m, 50, 50)
	if m.Hunger != 100 || m.Thirst != 100 {
		t.Fatalf("Consume should cap at 100, got %+v", m)
	}
}
