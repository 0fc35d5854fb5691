package persistence

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"grass-map/generator/logger"
	"grass-map/generator/models"
)

// SQLiteStore mirrors maps into a local SQLite file
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens (or creates) the SQLite file and ensures the schema exists
func NewSQLiteStore(filename string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (ss *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS maps (
		name TEXT PRIMARY KEY,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		tile_count INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS map_tiles (
		map_name TEXT NOT NULL REFERENCES maps(name) ON DELETE CASCADE,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		type TEXT NOT NULL,
		UNIQUE(map_name, x, y)
	);
	`

	_, err := ss.db.Exec(schema)
	return err
}

// SaveMap replaces the stored map inside one transaction
func (ss *SQLiteStore) SaveMap(name string, m *models.MapData) error {
	return saveMapTx(ss.db, name, m, func(tx *sqlx.Tx) error {
		stmt, err := tx.Preparex("INSERT INTO map_tiles (map_name, x, y, type) VALUES (?, ?, ?, ?)")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, t := range m.Tiles {
			if _, err := stmt.Exec(name, t.X, t.Y, string(t.Type)); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadMap loads a map by name, tiles in row-major order
func (ss *SQLiteStore) LoadMap(name string) (*models.MapData, error) {
	return loadMap(ss.db, name)
}

// Close closes the database file
func (ss *SQLiteStore) Close() error {
	logger.Log.Debug("Closing SQLite database")
	return ss.db.Close()
}
