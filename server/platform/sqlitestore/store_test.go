package sqlitestore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/item"
	"github.com/driftlands/survivalcore/server/platform"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "world.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestWorldStateRoundTrip(t *testing.T) {
	db := openTestDB(t)

	if db.HasWorldState() {
		t.Fatal("expected no world state in a fresh database")
	}

	want := entity.WorldState{
		Season:      entity.SeasonAutumn,
		TimeOfDay:   0.42,
		DayCount:    17,
		LastUpdated: time.Unix(1000, 0).UTC(),
	}
	if err := db.SaveWorldState(want); err != nil {
		t.Fatalf("SaveWorldState: %v", err)
	}
	if !db.HasWorldState() {
		t.Fatal("expected world state to be present after save")
	}

	got, err := db.LoadWorldState()
	if err != nil {
		t.Fatalf("LoadWorldState: %v", err)
	}
	if got != want {
		t.Fatalf("LoadWorldState() = %+v, want %+v", got, want)
	}

	want.DayCount = 18
	if err := db.SaveWorldState(want); err != nil {
		t.Fatalf("SaveWorldState (update): %v", err)
	}
	got, err = db.LoadWorldState()
	if err != nil {
		t.Fatalf("LoadWorldState (update): %v", err)
	}
	if got.DayCount != 18 {
		t.Fatalf("expected upsert to overwrite day_count, got %d", got.DayCount)
	}
}

func TestChunkWeatherRoundTrip(t *testing.T) {
	db := openTestDB(t)

	weather := []*entity.ChunkWeather{
		{ChunkIndex: 3, CurrentWeather: entity.WeatherHeavyStorm, RainIntensity: 0.9, StormEndedAt: time.Unix(500, 0).UTC()},
		{ChunkIndex: 7, CurrentWeather: entity.WeatherClear, RainIntensity: 0, StormEndedAt: time.Unix(0, 0).UTC()},
	}
	if err := db.SaveChunkWeather(weather); err != nil {
		t.Fatalf("SaveChunkWeather: %v", err)
	}

	loaded, err := db.LoadChunkWeather()
	if err != nil {
		t.Fatalf("LoadChunkWeather: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 chunk weather rows, got %d", len(loaded))
	}
}

func TestFoundationsAndWallsRoundTrip(t *testing.T) {
	db := openTestDB(t)

	foundations := []*entity.Foundation{
		{ID: 1, Pos: entity.Position{X: 10, Y: 20}, ChunkIndex: 2, Tier: entity.TierStone, Health: 400, MaxHealth: 500, PlacedAt: time.Unix(100, 0).UTC()},
	}
	if err := db.SaveFoundations(foundations); err != nil {
		t.Fatalf("SaveFoundations: %v", err)
	}
	loadedF, err := db.LoadFoundations()
	if err != nil {
		t.Fatalf("LoadFoundations: %v", err)
	}
	if len(loadedF) != 1 || loadedF[0].Tier != entity.TierStone || loadedF[0].Health != 400 {
		t.Fatalf("unexpected foundations after round trip: %+v", loadedF)
	}

	walls := []*entity.Wall{
		{ID: 9, FoundationID: 1, Tier: entity.TierWood, Health: 150, MaxHealth: 200, PlacedAt: time.Unix(200, 0).UTC(), Destroyed: true},
	}
	if err := db.SaveWalls(walls); err != nil {
		t.Fatalf("SaveWalls: %v", err)
	}
	loadedW, err := db.LoadWalls()
	if err != nil {
		t.Fatalf("LoadWalls: %v", err)
	}
	if len(loadedW) != 1 || !loadedW[0].Destroyed || loadedW[0].FoundationID != 1 {
		t.Fatalf("unexpected walls after round trip: %+v", loadedW)
	}
}

func TestResourceRowsRoundTrip(t *testing.T) {
	db := openTestDB(t)

	trees := []*entity.Tree{{ID: 1, TreeType: "oak", Health: 0, MaxHealth: 100, RespawnAt: time.Unix(900, 0).UTC()}}
	if err := db.SaveTrees(trees); err != nil {
		t.Fatalf("SaveTrees: %v", err)
	}
	loadedTrees, err := db.LoadTrees()
	if err != nil || len(loadedTrees) != 1 || loadedTrees[0].TreeType != "oak" {
		t.Fatalf("LoadTrees() = %+v, err=%v", loadedTrees, err)
	}

	stones := []*entity.Stone{{ID: 2, StoneType: "granite", Health: 50, MaxHealth: 50}}
	if err := db.SaveStones(stones); err != nil {
		t.Fatalf("SaveStones: %v", err)
	}
	loadedStones, err := db.LoadStones()
	if err != nil || len(loadedStones) != 1 || loadedStones[0].StoneType != "granite" {
		t.Fatalf("LoadStones() = %+v, err=%v", loadedStones, err)
	}

	crop := &entity.HarvestableResource{ID: 3, PlantType: "wheat", IsPlayerPlanted: true, GrowthStage: 0.6}
	if err := db.SaveHarvestables([]*entity.HarvestableResource{crop}); err != nil {
		t.Fatalf("SaveHarvestables: %v", err)
	}
	loadedCrops, err := db.LoadHarvestables()
	if err != nil || len(loadedCrops) != 1 || loadedCrops[0].GrowthStage != 0.6 {
		t.Fatalf("LoadHarvestables() = %+v, err=%v", loadedCrops, err)
	}
}

func TestItemsRoundTripEachLocationAndDataVariant(t *testing.T) {
	db := openTestDB(t)
	owner := platform.Identity(uuid.New())

	items := []*item.InventoryItem{
		{InstanceID: 1, ItemDefID: 10, Quantity: 1, Location: item.Inventory{Owner: owner, SlotIndex: 4}},
		{InstanceID: 2, ItemDefID: 11, Quantity: 1, Location: item.Hotbar{Owner: owner, SlotIndex: 0}},
		{InstanceID: 3, ItemDefID: 12, Quantity: 1, Location: item.Equipped{Owner: owner, Slot: item.SlotChest},
			Data: item.DurableData{Current: 80, Max: 100, RepairCount: 2}},
		{InstanceID: 4, ItemDefID: 13, Quantity: 3, Location: item.Container{Kind: item.ContainerStorageBox, ContainerID: 99, SlotIndex: 2},
			Data: item.WaterContainerData{VolumeML: 500, IsSalt: true}},
		{InstanceID: 5, ItemDefID: 14, Quantity: 1, Location: item.Dropped{}},
	}
	if err := db.SaveItems(items); err != nil {
		t.Fatalf("SaveItems: %v", err)
	}

	loaded, err := db.LoadItems()
	if err != nil {
		t.Fatalf("LoadItems: %v", err)
	}
	if len(loaded) != len(items) {
		t.Fatalf("expected %d items, got %d", len(items), len(loaded))
	}

	byID := make(map[item.InstanceID]*item.InventoryItem, len(loaded))
	for _, it := range loaded {
		byID[it.InstanceID] = it
	}

	inv, ok := byID[1].Location.(item.Inventory)
	if !ok || inv.Owner != owner || inv.SlotIndex != 4 {
		t.Fatalf("unexpected inventory location for item 1: %+v", byID[1].Location)
	}

	equipped, ok := byID[3].Location.(item.Equipped)
	if !ok || equipped.Slot != item.SlotChest {
		t.Fatalf("unexpected equipped location for item 3: %+v", byID[3].Location)
	}
	durable, ok := byID[3].Data.(item.DurableData)
	if !ok || durable.Current != 80 || durable.RepairCount != 2 {
		t.Fatalf("unexpected durable data for item 3: %+v", byID[3].Data)
	}

	container, ok := byID[4].Location.(item.Container)
	if !ok || container.ContainerID != 99 || container.SlotIndex != 2 {
		t.Fatalf("unexpected container location for item 4: %+v", byID[4].Location)
	}
	water, ok := byID[4].Data.(item.WaterContainerData)
	if !ok || !water.IsSalt || water.VolumeML != 500 {
		t.Fatalf("unexpected water container data for item 4: %+v", byID[4].Data)
	}

	if _, ok := byID[5].Location.(item.Dropped); !ok {
		t.Fatalf("unexpected dropped location for item 5: %+v", byID[5].Location)
	}
	if byID[5].Data != nil {
		t.Fatalf("expected item 5 to round-trip with no instance data, got %+v", byID[5].Data)
	}
}

func TestMetaRoundTrip(t *testing.T) {
	db := openTestDB(t)
	if err := db.SaveMeta("schema_version", "1"); err != nil {
		t.Fatalf("SaveMeta: %v", err)
	}
	got, err := db.GetMeta("schema_version")
	if err != nil {
		t.Fatalf("GetMeta: %v", err)
	}
	if got != "1" {
		t.Fatalf("GetMeta() = %q, want %q", got, "1")
	}
}
