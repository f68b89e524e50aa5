package sqlitestore

import (
	"time"

	"github.com/driftlands/survivalcore/server/entity"
)

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SaveFoundations replaces the saved foundation set with foundations.
func (db *DB) SaveFoundations(foundations []*entity.Foundation) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM foundations"); err != nil {
		return err
	}

	stmt, err := tx.Preparex(
		`INSERT INTO foundations
		 (id, pos_x, pos_y, chunk_index, tier, health, max_health, placed_at, destroyed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, f := range foundations {
		_, err := stmt.Exec(f.ID, f.Pos.X, f.Pos.Y, f.ChunkIndex, f.Tier, f.Health, f.MaxHealth,
			f.PlacedAt.Format(time.RFC3339Nano), boolToInt(f.Destroyed))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadFoundations reads every saved foundation row.
func (db *DB) LoadFoundations() ([]*entity.Foundation, error) {
	type row struct {
		ID         uint64  `db:"id"`
		PosX       float64 `db:"pos_x"`
		PosY       float64 `db:"pos_y"`
		ChunkIndex uint32  `db:"chunk_index"`
		Tier       uint8   `db:"tier"`
		Health     int     `db:"health"`
		MaxHealth  int     `db:"max_health"`
		PlacedAt   string  `db:"placed_at"`
		Destroyed  int     `db:"destroyed"`
	}
	var rows []row
	if err := db.conn.Select(&rows, "SELECT id, pos_x, pos_y, chunk_index, tier, health, max_health, placed_at, destroyed FROM foundations"); err != nil {
		return nil, err
	}

	out := make([]*entity.Foundation, 0, len(rows))
	for _, r := range rows {
		placedAt, err := time.Parse(time.RFC3339Nano, r.PlacedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, &entity.Foundation{
			ID:         r.ID,
			Pos:        entity.Position{X: r.PosX, Y: r.PosY},
			ChunkIndex: r.ChunkIndex,
			Tier:       entity.FoundationTier(r.Tier),
			Health:     r.Health,
			MaxHealth:  r.MaxHealth,
			PlacedAt:   placedAt,
			Destroyed:  r.Destroyed != 0,
		})
	}
	return out, nil
}

// SaveWalls replaces the saved wall set with walls.
func (db *DB) SaveWalls(walls []*entity.Wall) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM walls"); err != nil {
		return err
	}

	stmt, err := tx.Preparex(
		`INSERT INTO walls
		 (id, foundation_id, pos_x, pos_y, chunk_index, tier, health, max_health, placed_at, destroyed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, w := range walls {
		_, err := stmt.Exec(w.ID, w.FoundationID, w.Pos.X, w.Pos.Y, w.ChunkIndex, w.Tier, w.Health, w.MaxHealth,
			w.PlacedAt.Format(time.RFC3339Nano), boolToInt(w.Destroyed))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadWalls reads every saved wall row.
func (db *DB) LoadWalls() ([]*entity.Wall, error) {
	type row struct {
		ID           uint64  `db:"id"`
		FoundationID uint64  `db:"foundation_id"`
		PosX         float64 `db:"pos_x"`
		PosY         float64 `db:"pos_y"`
		ChunkIndex   uint32  `db:"chunk_index"`
		Tier         uint8   `db:"tier"`
		Health       int     `db:"health"`
		MaxHealth    int     `db:"max_health"`
		PlacedAt     string  `db:"placed_at"`
		Destroyed    int     `db:"destroyed"`
	}
	var rows []row
	if err := db.conn.Select(&rows, "SELECT id, foundation_id, pos_x, pos_y, chunk_index, tier, health, max_health, placed_at, destroyed FROM walls"); err != nil {
		return nil, err
	}

	out := make([]*entity.Wall, 0, len(rows))
	for _, r := range rows {
		placedAt, err := time.Parse(time.RFC3339Nano, r.PlacedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, &entity.Wall{
			ID:           r.ID,
			FoundationID: r.FoundationID,
			Pos:          entity.Position{X: r.PosX, Y: r.PosY},
			ChunkIndex:   r.ChunkIndex,
			Tier:         entity.FoundationTier(r.Tier),
			Health:       r.Health,
			MaxHealth:    r.MaxHealth,
			PlacedAt:     placedAt,
			Destroyed:    r.Destroyed != 0,
		})
	}
	return out, nil
}
