package sqlitestore

import (
	"time"

	"github.com/driftlands/survivalcore/server/entity"
)

// SaveTrees replaces the saved tree set with trees.
func (db *DB) SaveTrees(trees []*entity.Tree) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM trees"); err != nil {
		return err
	}

	stmt, err := tx.Preparex(
		`INSERT INTO trees (id, pos_x, pos_y, chunk_index, tree_type, health, max_health, resource_remaining, respawn_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range trees {
		_, err := stmt.Exec(t.ID, t.Pos.X, t.Pos.Y, t.ChunkIndex, t.TreeType, t.Health, t.MaxHealth,
			t.ResourceRemaining, t.RespawnAt.Format(time.RFC3339Nano))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadTrees reads every saved tree row.
func (db *DB) LoadTrees() ([]*entity.Tree, error) {
	type row struct {
		ID                uint64  `db:"id"`
		PosX              float64 `db:"pos_x"`
		PosY              float64 `db:"pos_y"`
		ChunkIndex        uint32  `db:"chunk_index"`
		TreeType          string  `db:"tree_type"`
		Health            int     `db:"health"`
		MaxHealth         int     `db:"max_health"`
		ResourceRemaining int     `db:"resource_remaining"`
		RespawnAt         string  `db:"respawn_at"`
	}
	var rows []row
	if err := db.conn.Select(&rows, "SELECT id, pos_x, pos_y, chunk_index, tree_type, health, max_health, resource_remaining, respawn_at FROM trees"); err != nil {
		return nil, err
	}

	out := make([]*entity.Tree, 0, len(rows))
	for _, r := range rows {
		respawnAt, err := time.Parse(time.RFC3339Nano, r.RespawnAt)
		if err != nil {
			return nil, err
		}
		out = append(out, &entity.Tree{
			ID:                r.ID,
			Pos:               entity.Position{X: r.PosX, Y: r.PosY},
			ChunkIndex:        r.ChunkIndex,
			TreeType:          r.TreeType,
			Health:            r.Health,
			MaxHealth:         r.MaxHealth,
			ResourceRemaining: r.ResourceRemaining,
			RespawnAt:         respawnAt,
		})
	}
	return out, nil
}

// SaveStones replaces the saved stone set with stones.
func (db *DB) SaveStones(stones []*entity.Stone) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM stones"); err != nil {
		return err
	}

	stmt, err := tx.Preparex(
		`INSERT INTO stones (id, pos_x, pos_y, chunk_index, stone_type, health, max_health, resource_remaining, respawn_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range stones {
		_, err := stmt.Exec(s.ID, s.Pos.X, s.Pos.Y, s.ChunkIndex, s.StoneType, s.Health, s.MaxHealth,
			s.ResourceRemaining, s.RespawnAt.Format(time.RFC3339Nano))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadStones reads every saved stone row.
func (db *DB) LoadStones() ([]*entity.Stone, error) {
	type row struct {
		ID                uint64  `db:"id"`
		PosX              float64 `db:"pos_x"`
		PosY              float64 `db:"pos_y"`
		ChunkIndex        uint32  `db:"chunk_index"`
		StoneType         string  `db:"stone_type"`
		Health            int     `db:"health"`
		MaxHealth         int     `db:"max_health"`
		ResourceRemaining int     `db:"resource_remaining"`
		RespawnAt         string  `db:"respawn_at"`
	}
	var rows []row
	if err := db.conn.Select(&rows, "SELECT id, pos_x, pos_y, chunk_index, stone_type, health, max_health, resource_remaining, respawn_at FROM stones"); err != nil {
		return nil, err
	}

	out := make([]*entity.Stone, 0, len(rows))
	for _, r := range rows {
		respawnAt, err := time.Parse(time.RFC3339Nano, r.RespawnAt)
		if err != nil {
			return nil, err
		}
		out = append(out, &entity.Stone{
			ID:                r.ID,
			Pos:               entity.Position{X: r.PosX, Y: r.PosY},
			ChunkIndex:        r.ChunkIndex,
			StoneType:         r.StoneType,
			Health:            r.Health,
			MaxHealth:         r.MaxHealth,
			ResourceRemaining: r.ResourceRemaining,
			RespawnAt:         respawnAt,
		})
	}
	return out, nil
}

// SaveHarvestables replaces the saved harvestable-resource set with res.
func (db *DB) SaveHarvestables(res []*entity.HarvestableResource) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM harvestables"); err != nil {
		return err
	}

	stmt, err := tx.Preparex(
		`INSERT INTO harvestables
		 (id, pos_x, pos_y, chunk_index, plant_type, is_player_planted, health, max_health, respawn_at, growth_stage)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range res {
		_, err := stmt.Exec(r.ID, r.Pos.X, r.Pos.Y, r.ChunkIndex, r.PlantType, boolToInt(r.IsPlayerPlanted),
			r.Health, r.MaxHealth, r.RespawnAt.Format(time.RFC3339Nano), r.GrowthStage)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadHarvestables reads every saved harvestable-resource row.
func (db *DB) LoadHarvestables() ([]*entity.HarvestableResource, error) {
	type row struct {
		ID              uint64  `db:"id"`
		PosX            float64 `db:"pos_x"`
		PosY            float64 `db:"pos_y"`
		ChunkIndex      uint32  `db:"chunk_index"`
		PlantType       string  `db:"plant_type"`
		IsPlayerPlanted int     `db:"is_player_planted"`
		Health          int     `db:"health"`
		MaxHealth       int     `db:"max_health"`
		RespawnAt       string  `db:"respawn_at"`
		GrowthStage     float32 `db:"growth_stage"`
	}
	var rows []row
	if err := db.conn.Select(&rows, "SELECT id, pos_x, pos_y, chunk_index, plant_type, is_player_planted, health, max_health, respawn_at, growth_stage FROM harvestables"); err != nil {
		return nil, err
	}

	out := make([]*entity.HarvestableResource, 0, len(rows))
	for _, r := range rows {
		respawnAt, err := time.Parse(time.RFC3339Nano, r.RespawnAt)
		if err != nil {
			return nil, err
		}
		out = append(out, &entity.HarvestableResource{
			ID:              r.ID,
			Pos:             entity.Position{X: r.PosX, Y: r.PosY},
			ChunkIndex:      r.ChunkIndex,
			PlantType:       r.PlantType,
			IsPlayerPlanted: r.IsPlayerPlanted != 0,
			Health:          r.Health,
			MaxHealth:       r.MaxHealth,
			RespawnAt:       respawnAt,
			GrowthStage:     r.GrowthStage,
		})
	}
	return out, nil
}
