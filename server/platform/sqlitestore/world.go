package sqlitestore

import (
	"time"

	"github.com/driftlands/survivalcore/server/entity"
)

// SaveWorldState performs a full upsert of the single world-state row.
func (db *DB) SaveWorldState(w entity.WorldState) error {
	_, err := db.conn.Exec(
		`INSERT INTO world_state (id, season, time_of_day, day_count, last_updated)
		 VALUES (1, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   season = excluded.season,
		   time_of_day = excluded.time_of_day,
		   day_count = excluded.day_count,
		   last_updated = excluded.last_updated`,
		w.Season, w.TimeOfDay, w.DayCount, w.LastUpdated.Format(time.RFC3339Nano),
	)
	return err
}

// HasWorldState reports whether a world-state row has ever been saved.
func (db *DB) HasWorldState() bool {
	var count int
	err := db.conn.Get(&count, "SELECT COUNT(*) FROM world_state")
	return err == nil && count > 0
}

// LoadWorldState reads the single world-state row.
func (db *DB) LoadWorldState() (entity.WorldState, error) {
	type row struct {
		Season      uint8   `db:"season"`
		TimeOfDay   float32 `db:"time_of_day"`
		DayCount    uint32  `db:"day_count"`
		LastUpdated string  `db:"last_updated"`
	}
	var r row
	if err := db.conn.Get(&r, "SELECT season, time_of_day, day_count, last_updated FROM world_state WHERE id = 1"); err != nil {
		return entity.WorldState{}, err
	}
	updated, err := time.Parse(time.RFC3339Nano, r.LastUpdated)
	if err != nil {
		return entity.WorldState{}, err
	}
	return entity.WorldState{
		Season:      entity.Season(r.Season),
		TimeOfDay:   r.TimeOfDay,
		DayCount:    r.DayCount,
		LastUpdated: updated,
	}, nil
}

// SaveChunkWeather writes the full set of per-chunk weather rows,
// replacing whatever was previously stored.
func (db *DB) SaveChunkWeather(weather []*entity.ChunkWeather) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM chunk_weather"); err != nil {
		return err
	}

	stmt, err := tx.Preparex(
		`INSERT INTO chunk_weather (chunk_index, current_weather, rain_intensity, storm_ended_at)
		 VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, w := range weather {
		_, err := stmt.Exec(w.ChunkIndex, w.CurrentWeather, w.RainIntensity, w.StormEndedAt.Format(time.RFC3339Nano))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadChunkWeather reads every saved per-chunk weather row.
func (db *DB) LoadChunkWeather() ([]*entity.ChunkWeather, error) {
	type row struct {
		ChunkIndex     uint32  `db:"chunk_index"`
		CurrentWeather uint8   `db:"current_weather"`
		RainIntensity  float32 `db:"rain_intensity"`
		StormEndedAt   string  `db:"storm_ended_at"`
	}
	var rows []row
	if err := db.conn.Select(&rows, "SELECT chunk_index, current_weather, rain_intensity, storm_ended_at FROM chunk_weather"); err != nil {
		return nil, err
	}

	out := make([]*entity.ChunkWeather, 0, len(rows))
	for _, r := range rows {
		ended, err := time.Parse(time.RFC3339Nano, r.StormEndedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, &entity.ChunkWeather{
			ChunkIndex:     r.ChunkIndex,
			CurrentWeather: entity.WeatherKind(r.CurrentWeather),
			RainIntensity:  r.RainIntensity,
			StormEndedAt:   ended,
		})
	}
	return out, nil
}
