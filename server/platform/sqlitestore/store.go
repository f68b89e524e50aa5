// Package sqlitestore is the reference persistence layer for the
// simulation core: a SQLite-backed store that can save and reload a
// world snapshot across process restarts. It is a reference
// implementation, not the only possible one — any store satisfying the
// narrower per-row interfaces the simulation core depends on will do.
package sqlitestore

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/driftlands/survivalcore/server/platform"
)

// DB wraps a SQLite connection used for world-state persistence. DB
// satisfies platform.Store: BeginTx hands a reducer a real SQL
// transaction, so a reducer written against the platform.Tx
// abstraction runs unmodified against this store.
type DB struct {
	conn *sqlx.DB
}

// sqliteTx adapts *sqlx.Tx to platform.StoreTx.
type sqliteTx struct {
	tx *sqlx.Tx
}

func (t sqliteTx) Commit() error   { return t.tx.Commit() }
func (t sqliteTx) Rollback() error { return t.tx.Rollback() }

// BeginTx implements platform.Store.
func (db *DB) BeginTx() (platform.StoreTx, error) {
	tx, err := db.conn.Beginx()
	if err != nil {
		return nil, err
	}
	return sqliteTx{tx: tx}, nil
}

var _ platform.Store = (*DB)(nil)

// Open opens or creates a SQLite database at path, running WAL mode and a
// 5-second busy timeout so a scheduler tick writing a snapshot doesn't
// collide with a concurrent read.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS world_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS world_state (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		season INTEGER NOT NULL,
		time_of_day REAL NOT NULL,
		day_count INTEGER NOT NULL,
		last_updated TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS chunk_weather (
		chunk_index INTEGER PRIMARY KEY,
		current_weather INTEGER NOT NULL,
		rain_intensity REAL NOT NULL,
		storm_ended_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS foundations (
		id INTEGER PRIMARY KEY,
		pos_x REAL NOT NULL,
		pos_y REAL NOT NULL,
		chunk_index INTEGER NOT NULL,
		tier INTEGER NOT NULL,
		health INTEGER NOT NULL,
		max_health INTEGER NOT NULL,
		placed_at TEXT NOT NULL,
		destroyed INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS walls (
		id INTEGER PRIMARY KEY,
		foundation_id INTEGER NOT NULL,
		pos_x REAL NOT NULL,
		pos_y REAL NOT NULL,
		chunk_index INTEGER NOT NULL,
		tier INTEGER NOT NULL,
		health INTEGER NOT NULL,
		max_health INTEGER NOT NULL,
		placed_at TEXT NOT NULL,
		destroyed INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS trees (
		id INTEGER PRIMARY KEY,
		pos_x REAL NOT NULL,
		pos_y REAL NOT NULL,
		chunk_index INTEGER NOT NULL,
		tree_type TEXT NOT NULL,
		health INTEGER NOT NULL,
		max_health INTEGER NOT NULL,
		resource_remaining INTEGER NOT NULL,
		respawn_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS stones (
		id INTEGER PRIMARY KEY,
		pos_x REAL NOT NULL,
		pos_y REAL NOT NULL,
		chunk_index INTEGER NOT NULL,
		stone_type TEXT NOT NULL,
		health INTEGER NOT NULL,
		max_health INTEGER NOT NULL,
		resource_remaining INTEGER NOT NULL,
		respawn_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS harvestables (
		id INTEGER PRIMARY KEY,
		pos_x REAL NOT NULL,
		pos_y REAL NOT NULL,
		chunk_index INTEGER NOT NULL,
		plant_type TEXT NOT NULL,
		is_player_planted INTEGER NOT NULL,
		health INTEGER NOT NULL,
		max_health INTEGER NOT NULL,
		respawn_at TEXT NOT NULL,
		growth_stage REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS items (
		instance_id INTEGER PRIMARY KEY,
		item_def_id INTEGER NOT NULL,
		quantity INTEGER NOT NULL,
		location_kind TEXT NOT NULL,
		location_json TEXT NOT NULL,
		data_kind TEXT NOT NULL,
		data_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_walls_foundation ON walls(foundation_id);
	CREATE INDEX IF NOT EXISTS idx_items_location_kind ON items(location_kind);
	`
	_, err := db.conn.Exec(schema)
	if err != nil {
		return err
	}

	// Columns that may not exist in older databases.
	migrations := []string{
		"ALTER TABLE trees ADD COLUMN tree_type TEXT NOT NULL DEFAULT ''",
		"ALTER TABLE stones ADD COLUMN stone_type TEXT NOT NULL DEFAULT ''",
	}
	for _, m := range migrations {
		db.conn.Exec(m) // ignore errors: column may already exist
	}

	return nil
}

// SaveMeta stores a single key-value pair in world metadata, overwriting
// any existing value for key.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO world_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value previously stored with SaveMeta.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM world_meta WHERE key = ?", key)
	return value, err
}
