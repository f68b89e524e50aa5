package sched

import (
	"math"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/platform"
)

// baseOpacityByType is each cloud type's natural density, grounded on
// cloud.rs's per-CloudType base opacity bands (Cirrus thinnest, Nimbus
// densest).
func baseOpacityByType(t entity.CloudType) float32 {
	switch t {
	case entity.CloudWispy:
		return 0.25
	case entity.CloudCumulus:
		return 0.45
	case entity.CloudStratus:
		return 0.6
	case entity.CloudNimbus:
		return 0.85
	case entity.CloudCirrus:
		return 0.12
	default:
		return 0.3
	}
}

// evolutionSpeedByType scales how fast a cloud's evolution phase
// advances; Nimbus evolves dramatically fast, Cirrus barely moves.
func evolutionSpeedByType(t entity.CloudType) float32 {
	switch t {
	case entity.CloudNimbus:
		return 0.08
	case entity.CloudStratus:
		return 0.015
	case entity.CloudCirrus:
		return 0.01
	case entity.CloudCumulus:
		return 0.03
	default:
		return 0.05 // Wispy
	}
}

// WorldWidthPx/WorldHeightPx-based wrap: UpdateCloudPositions advances
// every cloud by its drift velocity and wraps it back onto the opposite
// edge when it drifts fully off-world on either axis.
func UpdateCloudPositions(tx *platform.Tx, clouds []*entity.Cloud, dims entity.WorldDimensions, dt float64) error {
	if err := tx.RequireSystem(); err != nil {
		return err
	}
	w, h := float64(dims.WidthPx), float64(dims.HeightPx)
	for _, c := range clouds {
		c.Pos.X += float64(c.DriftVX) * dt
		c.Pos.Y += float64(c.DriftVY) * dt
		c.Pos.X = wrapCoord(c.Pos.X, w)
		c.Pos.Y = wrapCoord(c.Pos.Y, h)
	}
	return nil
}

func wrapCoord(v, span float64) float64 {
	if span <= 0 {
		return v
	}
	for v < 0 {
		v += span
	}
	for v >= span {
		v -= span
	}
	return v
}

// UpdateCloudIntensities implements the update_cloud_intensities
// scheduled reducer: advances each cloud's evolution phase and
// recomputes its effective opacity from base-by-type, sinusoidal
// evolution, and a multiplier for the current weather kind.
func UpdateCloudIntensities(tx *platform.Tx, clouds []*entity.Cloud, weather entity.WeatherKind, dt float64) error {
	if err := tx.RequireSystem(); err != nil {
		return err
	}
	weatherMultiplier := float32(1.0)
	switch weather {
	case entity.WeatherHeavyStorm:
		weatherMultiplier = 1.4
	case entity.WeatherLightRain:
		weatherMultiplier = 1.15
	case entity.WeatherOvercast:
		weatherMultiplier = 1.05
	}
	for _, c := range clouds {
		speed := evolutionSpeedByType(c.Type)
		c.EvolutionPhase += speed * float32(dt)
		for c.EvolutionPhase >= 1 {
			c.EvolutionPhase -= 1
		}
		evolution := float32(0.75 + 0.25*math.Sin(2*math.Pi*float64(c.EvolutionPhase)))
		opacity := baseOpacityByType(c.Type) * evolution * weatherMultiplier
		if opacity < 0 {
			opacity = 0
		}
		if opacity > 1 {
			opacity = 1
		}
		c.Opacity = opacity
	}
	return nil
}

// StormNimbusSpawnCount is how many extra Nimbus clouds spawn when a
// chunk enters HeavyStorm.
const StormNimbusSpawnCount = 3

// SpawnStormNimbusClouds implements the extra-Nimbus-spawn-during-storm
// rule: returns the new cloud rows to insert, letting the caller assign
// IDs.
func SpawnStormNimbusClouds(center entity.Position, spreadPx float64, rng *platform.RNG) []*entity.Cloud {
	out := make([]*entity.Cloud, 0, StormNimbusSpawnCount)
	for i := 0; i < StormNimbusSpawnCount; i++ {
		out = append(out, &entity.Cloud{
			Pos: entity.Position{
				X: center.X + rng.Float64Range(-spreadPx, spreadPx),
				Y: center.Y + rng.Float64Range(-spreadPx, spreadPx),
			},
			Type:               entity.CloudNimbus,
			Size:               rng.Float32Range(1.2, 2.0),
			Opacity:            baseOpacityByType(entity.CloudNimbus),
			DriftVX:            rng.Float32Range(-8, 8),
			DriftVY:            rng.Float32Range(4, 14),
			SpawnedDuringStorm: true,
		})
	}
	return out
}

// CleanupStormNimbusClouds implements the storm-end auto-cleanup:
// reports which of clouds were spawned during the now-ended storm and
// should be removed.
func CleanupStormNimbusClouds(clouds []*entity.Cloud) []*entity.Cloud {
	var dead []*entity.Cloud
	for _, c := range clouds {
		if c.SpawnedDuringStorm {
			dead = append(dead, c)
		}
	}
	return dead
}
