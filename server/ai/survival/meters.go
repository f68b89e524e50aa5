// Package survival implements hunger/thirst meters as a disabled-by-
// default supplement, grounded on original_source/server/src/
// survival_meters.rs. It ships wired to nothing by default rather than
// discarded outright, so a future mode can enable it without rebuilding
// the mechanic from scratch.
package survival

import "time"

// Config gates whether meters drain at all: Tick does nothing unless
// Enabled is set. No code in this module copies
// platform.Config.SurvivalMetersEnabled into it.
type Config struct {
	Enabled bool

	HungerDrainPerHour float64
	ThirstDrainPerHour float64

	// StarvationDamagePerTick applies once a meter reaches zero.
	StarvationDamagePerTick int
}

// DefaultConfig returns the baseline drain rates, shipped disabled.
func DefaultConfig() Config {
	return Config{
		Enabled:                 false,
		HungerDrainPerHour:      4.0,
		ThirstDrainPerHour:      6.0,
		StarvationDamagePerTick: 1,
	}
}

// Meters is the per-player hunger/thirst pair.
type Meters struct {
	Hunger float64
	Thirst float64
}

// Full returns a Meters at maximum (100) on both axes, the state a new
// player spawns with.
func Full() Meters { return Meters{Hunger: 100, Thirst: 100} }

// Tick drains both meters by dt and returns the starvation damage to
// apply this tick, if any. Calling Tick when cfg.Enabled is false is a
// no-op so callers don't need to branch on the config at every call site.
func Tick(cfg Config, m *Meters, dt time.Duration) (damage int) {
	if !cfg.Enabled {
		return 0
	}
	hours := dt.Hours()
	m.Hunger -= cfg.HungerDrainPerHour * hours
	m.Thirst -= cfg.ThirstDrainPerHour * hours
	if m.Hunger < 0 {
		m.Hunger = 0
	}
	if m.Thirst < 0 {
		m.Thirst = 0
	}
	if m.Hunger == 0 || m.Thirst == 0 {
		return cfg.StarvationDamagePerTick
	}
	return 0
}

// Consume applies a food/drink item's restoration amounts, capping at
// 100.
func Consume(m *Meters, hungerRestore, thirstRestore float64) {
	m.Hunger = min100(m.Hunger + hungerRestore)
	m.Thirst = min100(m.Thirst + thirstRestore)
}

func min100(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}
