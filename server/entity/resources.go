package entity

import "time"

// Tree is a harvestable tree row.
type Tree struct {
	ID                uint64
	Pos               Position
	ChunkIndex        uint32
	TreeType          string
	Health            int
	MaxHealth         int
	ResourceRemaining int
	RespawnAt         time.Time
}

// Stone is a harvestable stone/ore deposit row.
type Stone struct {
	ID                uint64
	Pos               Position
	ChunkIndex        uint32
	StoneType         string
	Health            int
	MaxHealth         int
	ResourceRemaining int
	RespawnAt         time.Time
}

// HarvestableResource is the unified plant/pile row: a single row shape
// for plants and piles, discriminated by PlantType, with an
// IsPlayerPlanted flag and a RespawnAt sentinel.
type HarvestableResource struct {
	ID              uint64
	Pos             Position
	ChunkIndex      uint32
	PlantType       string
	IsPlayerPlanted bool
	Health          int
	MaxHealth       int
	RespawnAt       time.Time
	// GrowthStage tracks a player-planted crop's progress toward harvest;
	// wild plants ignore it (always harvestable when RespawnAt is the
	// sentinel).
	GrowthStage float32
}

// LivingCoral is an aquatic harvestable, spawned only on sea tiles and
// harvestable only while the player is snorkeling underwater.
type LivingCoral struct {
	ID         uint64
	Pos        Position
	ChunkIndex uint32
	Health     int
	MaxHealth  int
	RespawnAt  time.Time
}

// DroppedItem is a loose item lying in the world.
type DroppedItem struct {
	ID         uint64
	ItemDefID  uint32
	Quantity   int
	Pos        Position
	ChunkIndex uint32
}
