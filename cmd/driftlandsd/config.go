package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml"

	"github.com/driftlands/survivalcore/server/platform"
)

// fileCadences mirrors platform.Cadences with plain-string durations, since
// go-toml decodes TOML duration strings ("15m", "500ms") into this shape
// more naturally than into time.Duration fields directly.
type fileCadences struct {
	Decay             string `toml:"decay"`
	BeehiveProduction string `toml:"beehive_production"`
	CloudPosition     string `toml:"cloud_position"`
	CloudIntensity    string `toml:"cloud_intensity"`
	WaterPatchCleanup string `toml:"water_patch_cleanup"`
	TilledReversion   string `toml:"tilled_reversion"`
	AITick            string `toml:"ai_tick"`
	CookingTick       string `toml:"cooking_tick"`
	CorpseCleanup     string `toml:"corpse_cleanup"`
	ResourceRespawn   string `toml:"resource_respawn"`
	StormDebris       string `toml:"storm_debris"`
}

// fileConfig is the on-disk shape of driftlandsd.toml.
type fileConfig struct {
	Seed                  uint64       `toml:"seed"`
	SurvivalMetersEnabled bool         `toml:"survival_meters_enabled"`
	Cadences              fileCadences `toml:"cadences"`
}

// loadConfig reads a driftlandsd.toml at path and overlays it onto the
// simulation core's default Config. A missing file is not an error: the
// daemon runs on defaults.
func loadConfig(path string) (platform.Config, error) {
	cfg := platform.Config{}.New()

	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(contents, &fc); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}

	if fc.Seed != 0 {
		cfg.Seed = fc.Seed
	}
	cfg.SurvivalMetersEnabled = fc.SurvivalMetersEnabled
	if err := overlayCadences(&cfg.Cadences, fc.Cadences); err != nil {
		return cfg, fmt.Errorf("parse cadences: %w", err)
	}
	return cfg, nil
}

func overlayCadences(c *platform.Cadences, fc fileCadences) error {
	fields := []struct {
		raw string
		dst *time.Duration
	}{
		{fc.Decay, &c.Decay},
		{fc.BeehiveProduction, &c.BeehiveProduction},
		{fc.CloudPosition, &c.CloudPosition},
		{fc.CloudIntensity, &c.CloudIntensity},
		{fc.WaterPatchCleanup, &c.WaterPatchCleanup},
		{fc.TilledReversion, &c.TilledReversion},
		{fc.AITick, &c.AITick},
		{fc.CookingTick, &c.CookingTick},
		{fc.CorpseCleanup, &c.CorpseCleanup},
		{fc.ResourceRespawn, &c.ResourceRespawn},
		{fc.StormDebris, &c.StormDebris},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		d, err := time.ParseDuration(f.raw)
		if err != nil {
			return err
		}
		*f.dst = d
	}
	return nil
}
