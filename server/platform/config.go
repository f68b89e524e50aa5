package platform

import (
	"log/slog"
	"time"
)

// Cadences holds the tunable interval for every scheduled subsystem. Each
// field defaults to the value DefaultCadences returns; callers may override
// individual cadences (typically loaded from a TOML config file via
// pelletier/go-toml) without touching the rest.
type Cadences struct {
	Decay             time.Duration `toml:"decay"`
	BeehiveProduction time.Duration `toml:"beehive_production"`
	CloudPosition     time.Duration `toml:"cloud_position"`
	CloudIntensity    time.Duration `toml:"cloud_intensity"`
	WaterPatchCleanup time.Duration `toml:"water_patch_cleanup"`
	TilledReversion   time.Duration `toml:"tilled_reversion"`
	AITick            time.Duration `toml:"ai_tick"`
	CookingTick       time.Duration `toml:"cooking_tick"`
	CorpseCleanup     time.Duration `toml:"corpse_cleanup"`
	ResourceRespawn   time.Duration `toml:"resource_respawn"`
	StormDebris       time.Duration `toml:"storm_debris"`
}

// DefaultCadences returns the simulation core's baseline scheduled-job
// interval table.
func DefaultCadences() Cadences {
	return Cadences{
		Decay:             15 * time.Minute,
		BeehiveProduction: 60 * time.Second,
		CloudPosition:     5 * time.Second,
		CloudIntensity:    120 * time.Second,
		WaterPatchCleanup: 30 * time.Second,
		TilledReversion:   5 * time.Minute,
		AITick:            125 * time.Millisecond,
		CookingTick:       1 * time.Second,
		CorpseCleanup:     60 * time.Second,
		ResourceRespawn:   30 * time.Second,
		StormDebris:       10 * time.Second,
	}
}

// Config is the top-level configuration for the simulation core, following
// the reference flat-struct-with-defaulting-constructor convention for its
// own server.Config.
type Config struct {
	// Log receives structured log output from every subsystem. If nil, Log
	// is set to slog.Default() by New.
	Log *slog.Logger

	// Seed initialises the world-level RNG stream that per-reducer RNGs are
	// derived from. Two Configs with the same Seed produce the same sequence
	// of per-reducer seeds, though not necessarily the same simulation
	// outcome, since reducer invocation order depends on wall-clock
	// scheduling.
	Seed uint64

	// Cadences overrides the default scheduled-job intervals.
	Cadences Cadences

	// SurvivalMetersEnabled is the configuration flag for the hunger/thirst
	// meters in server/ai/survival. Off by default, matching the original's
	// force-disabled-at-entry behaviour. No package in this module reads it;
	// survival.Tick gates on survival.Config.Enabled.
	SurvivalMetersEnabled bool
}

// New fills unset fields of c with their defaults and returns the result.
func (c Config) New() Config {
	if c.Log == nil {
		c.Log = slog.Default()
	}
	if c.Cadences == (Cadences{}) {
		c.Cadences = DefaultCadences()
	}
	return c
}
