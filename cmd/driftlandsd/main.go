// Command driftlandsd is a runnable example wiring the simulation core's
// scheduled subsystems against the reference sqlitestore persistence
// layer. It is not a network-facing game server — no transport is wired
// here — only a minimal host loop that proves the pieces fit together:
// it loads (or seeds) a world snapshot, steps the scheduler for a fixed
// number of ticks, and saves the result back out on exit.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/item"
	"github.com/driftlands/survivalcore/server/platform"
	"github.com/driftlands/survivalcore/server/platform/sqlitestore"
	"github.com/driftlands/survivalcore/server/sched"
)

func main() {
	dbPath := flag.String("db", "driftlands.db", "path to the world snapshot database")
	configPath := flag.String("config", "driftlandsd.toml", "path to the daemon config file")
	ticks := flag.Int("ticks", 50, "number of scheduler ticks to run before exiting")
	flag.Parse()

	log := slog.Default()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}
	cfg.Log = log

	db, err := sqlitestore.Open(*dbPath)
	if err != nil {
		log.Error("open world database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	w, err := loadOrSeedWorld(db)
	if err != nil {
		log.Error("load world", "error", err)
		os.Exit(1)
	}

	reg := item.NewRegistry(sampleItemDefinitions())
	store := newItemStore(w.items)

	var tickSeed uint64
	txFactory := func(sender platform.Identity, now time.Time) *platform.Tx {
		storeTx, err := db.BeginTx()
		if err != nil {
			log.Error("begin tx", "error", err)
		}
		tickSeed++
		return platform.NewTx(storeTx, sender, now, platform.NewRNG(cfg.Seed, tickSeed), log, 1)
	}

	scheduler := sched.NewRegistry(sched.RegistryConfig{Log: log, NewTx: txFactory})
	registerJobs(scheduler, cfg.Cadences, w, store, reg)

	now := time.Now().UTC()
	for i := 0; i < *ticks; i++ {
		scheduler.Step(now, 1)
		now = now.Add(time.Second)
	}

	if err := saveWorld(db, w, store); err != nil {
		log.Error("save world", "error", err)
		os.Exit(1)
	}
	log.Info("driftlandsd exiting", "ticks", *ticks)
}

// registerJobs wires the C6 subsystem reducers that act on the sample
// world (decay, beehive production, clouds, water patches, tilled tiles,
// corpses, tree/stone/harvestable respawn) into scheduler at their
// configured cadences, closing over the in-memory world the reducers
// mutate directly. The AI tick, cooking tick, storm debris and loot
// container restocking are not registered.
func registerJobs(scheduler *sched.Registry, cadences platform.Cadences, w *world, store *itemStore, reg *item.Registry) {
	scheduler.Interval(platform.Job{
		Name:     "building_decay",
		Interval: cadences.Decay,
		Run: func(tx *platform.Tx) error {
			return sched.ProcessBuildingDecay(tx, w.foundations, w.walls, nil)
		},
	})
	scheduler.Interval(platform.Job{
		Name:        "beehive_production",
		Interval:    cadences.BeehiveProduction,
		Suspendable: true,
		Run: func(tx *platform.Tx) error {
			return sched.ProcessBeehiveProduction(tx, store, reg, w.beehives, cadences.BeehiveProduction.Seconds(), nil)
		},
	})
	scheduler.Interval(platform.Job{
		Name:     "cloud_position",
		Interval: cadences.CloudPosition,
		Run: func(tx *platform.Tx) error {
			return sched.UpdateCloudPositions(tx, w.clouds, w.dims, cadences.CloudPosition.Seconds())
		},
	})
	scheduler.Interval(platform.Job{
		Name:     "cloud_intensity",
		Interval: cadences.CloudIntensity,
		Run: func(tx *platform.Tx) error {
			return sched.UpdateCloudIntensities(tx, w.clouds, w.worldState.currentWeather(), cadences.CloudIntensity.Seconds())
		},
	})
	scheduler.Interval(platform.Job{
		Name:        "water_patch_cleanup",
		Interval:    cadences.WaterPatchCleanup,
		Suspendable: true,
		Run: func(tx *platform.Tx) error {
			expired, err := sched.ExpiredWaterPatches(tx, w.waterPatches)
			if err != nil {
				return err
			}
			w.waterPatches = removeWaterPatches(w.waterPatches, expired)
			return nil
		},
	})
	scheduler.Interval(platform.Job{
		Name:        "tilled_reversion",
		Interval:    cadences.TilledReversion,
		Suspendable: true,
		Run: func(tx *platform.Tx) error {
			ready, err := sched.ReadyTilledTileReversions(tx, w.tilledTiles)
			if err != nil {
				return err
			}
			w.tilledTiles = removeTilledTiles(w.tilledTiles, ready)
			return nil
		},
	})
	scheduler.Interval(platform.Job{
		Name:        "corpse_cleanup",
		Interval:    cadences.CorpseCleanup,
		Suspendable: true,
		Run: func(tx *platform.Tx) error {
			expired, err := sched.ExpiredAnimalCorpses(tx, w.animalCorpses)
			if err != nil {
				return err
			}
			w.animalCorpses = removeAnimalCorpses(w.animalCorpses, expired)
			return nil
		},
	})
	scheduler.Interval(platform.Job{
		Name:        "resource_respawn",
		Interval:    cadences.ResourceRespawn,
		Suspendable: true,
		Run: func(tx *platform.Tx) error {
			if err := sched.RespawnTrees(tx, w.trees); err != nil {
				return err
			}
			if err := sched.RespawnStones(tx, w.stones); err != nil {
				return err
			}
			return sched.RespawnHarvestables(tx, w.harvestables)
		},
	})
}

func removeWaterPatches(all, gone []*entity.WaterPatch) []*entity.WaterPatch {
	if len(gone) == 0 {
		return all
	}
	dead := make(map[*entity.WaterPatch]bool, len(gone))
	for _, p := range gone {
		dead[p] = true
	}
	kept := all[:0]
	for _, p := range all {
		if !dead[p] {
			kept = append(kept, p)
		}
	}
	return kept
}

func removeTilledTiles(all, gone []*entity.TilledTileMetadata) []*entity.TilledTileMetadata {
	if len(gone) == 0 {
		return all
	}
	dead := make(map[*entity.TilledTileMetadata]bool, len(gone))
	for _, m := range gone {
		dead[m] = true
	}
	kept := all[:0]
	for _, m := range all {
		if !dead[m] {
			kept = append(kept, m)
		}
	}
	return kept
}

func removeAnimalCorpses(all, gone []*entity.AnimalCorpse) []*entity.AnimalCorpse {
	if len(gone) == 0 {
		return all
	}
	dead := make(map[*entity.AnimalCorpse]bool, len(gone))
	for _, c := range gone {
		dead[c] = true
	}
	kept := all[:0]
	for _, c := range all {
		if !dead[c] {
			kept = append(kept, c)
		}
	}
	return kept
}
