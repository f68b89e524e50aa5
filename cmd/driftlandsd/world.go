package main

import (
	"time"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/item"
	"github.com/driftlands/survivalcore/server/platform/sqlitestore"
)

// demoWorldState bundles the persisted WorldState row with the single
// "current weather" value this demo daemon tracks for its one sample
// region (a real deployment keys weather per chunk via ChunkWeather).
type demoWorldState struct {
	entity.WorldState
	Weather entity.WeatherKind
}

func (s demoWorldState) currentWeather() entity.WeatherKind { return s.Weather }

// world is the in-memory row set the scheduled reducers in main.go
// mutate directly; it is loaded from sqlitestore at startup and saved
// back at shutdown.
type world struct {
	dims entity.WorldDimensions

	worldState    demoWorldState
	foundations   []*entity.Foundation
	walls         []*entity.Wall
	trees         []*entity.Tree
	stones        []*entity.Stone
	harvestables  []*entity.HarvestableResource
	clouds        []*entity.Cloud
	waterPatches  []*entity.WaterPatch
	tilledTiles   []*entity.TilledTileMetadata
	animalCorpses []*entity.AnimalCorpse
	beehives      []*entity.Beehive
	items         []*item.InventoryItem
}

// loadOrSeedWorld reads a saved snapshot from db, or — on a fresh
// database — seeds a small sample world so the daemon has something to
// simulate on a first run.
func loadOrSeedWorld(db *sqlitestore.DB) (*world, error) {
	w := &world{dims: entity.WorldDimensions{WidthPx: 4000, HeightPx: 4000, ChunkSizePx: 200}}

	if !db.HasWorldState() {
		seedSampleWorld(w)
		return w, nil
	}

	ws, err := db.LoadWorldState()
	if err != nil {
		return nil, err
	}
	w.worldState = demoWorldState{WorldState: ws}

	if w.foundations, err = db.LoadFoundations(); err != nil {
		return nil, err
	}
	if w.walls, err = db.LoadWalls(); err != nil {
		return nil, err
	}
	if w.trees, err = db.LoadTrees(); err != nil {
		return nil, err
	}
	if w.stones, err = db.LoadStones(); err != nil {
		return nil, err
	}
	if w.harvestables, err = db.LoadHarvestables(); err != nil {
		return nil, err
	}
	if w.items, err = db.LoadItems(); err != nil {
		return nil, err
	}
	return w, nil
}

// seedSampleWorld populates w with a handful of rows of each kind so a
// fresh database has something to decay, respawn, and drift.
func seedSampleWorld(w *world) {
	now := time.Now().UTC()
	w.worldState = demoWorldState{
		WorldState: entity.WorldState{Season: entity.SeasonAutumn, TimeOfDay: 0.5, DayCount: 1, LastUpdated: now},
		Weather:    entity.WeatherOvercast,
	}
	w.foundations = []*entity.Foundation{
		{ID: 1, Pos: entity.Position{X: 100, Y: 100}, ChunkIndex: 0, Tier: entity.TierWood, Health: 500, MaxHealth: 500, PlacedAt: now.Add(-2 * time.Hour)},
	}
	w.walls = []*entity.Wall{
		{ID: 1, FoundationID: 1, Pos: entity.Position{X: 100, Y: 120}, ChunkIndex: 0, Tier: entity.TierWood, Health: 200, MaxHealth: 200, PlacedAt: now.Add(-2 * time.Hour)},
	}
	w.trees = []*entity.Tree{
		{ID: 1, Pos: entity.Position{X: 300, Y: 300}, TreeType: "oak", Health: 100, MaxHealth: 100, ResourceRemaining: 100},
	}
	w.stones = []*entity.Stone{
		{ID: 1, Pos: entity.Position{X: 320, Y: 300}, StoneType: "granite", Health: 80, MaxHealth: 80, ResourceRemaining: 80},
	}
	w.harvestables = []*entity.HarvestableResource{
		{ID: 1, Pos: entity.Position{X: 340, Y: 300}, PlantType: "berry_bush", Health: 20, MaxHealth: 20},
	}
	w.clouds = []*entity.Cloud{
		{ID: 1, Pos: entity.Position{X: 500, Y: 500}, Type: entity.CloudCumulus, DriftVX: 5, DriftVY: 2},
	}
	w.beehives = []*entity.Beehive{
		{SlotArray: entity.NewSlotArray(entity.BeehiveSlotCount), ID: 1, Pos: entity.Position{X: 600, Y: 600}},
	}
}

// saveWorld writes w's current state back to db, replacing whatever
// snapshot was previously stored.
func saveWorld(db *sqlitestore.DB, w *world, store *itemStore) error {
	if err := db.SaveWorldState(w.worldState.WorldState); err != nil {
		return err
	}
	if err := db.SaveFoundations(w.foundations); err != nil {
		return err
	}
	if err := db.SaveWalls(w.walls); err != nil {
		return err
	}
	if err := db.SaveTrees(w.trees); err != nil {
		return err
	}
	if err := db.SaveStones(w.stones); err != nil {
		return err
	}
	if err := db.SaveHarvestables(w.harvestables); err != nil {
		return err
	}
	return db.SaveItems(store.snapshot())
}

// sampleItemDefinitions returns the small item registry driftlandsd
// exercises against the beehive production reducer.
func sampleItemDefinitions() []*item.ItemDefinition {
	return []*item.ItemDefinition{
		{ID: 1, Name: "queen_bee", StackSize: 1},
		{ID: 2, Name: "honeycomb", StackSize: 10},
	}
}
