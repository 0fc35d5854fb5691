package persistence

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"grass-map/generator/logger"
	"grass-map/generator/models"
)

// PostgresStore mirrors maps into PostgreSQL
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore connects to PostgreSQL and ensures the schema exists
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sqlx.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS maps (
		name TEXT PRIMARY KEY,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		tile_count INTEGER NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS map_tiles (
		map_name TEXT NOT NULL REFERENCES maps(name) ON DELETE CASCADE,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		type TEXT NOT NULL,
		UNIQUE(map_name, x, y)
	);
	`

	_, err := ps.db.Exec(schema)
	return err
}

// SaveMap replaces the stored map, bulk loading tiles with COPY
func (ps *PostgresStore) SaveMap(name string, m *models.MapData) error {
	return saveMapTx(ps.db, name, m, func(tx *sqlx.Tx) error {
		stmt, err := tx.Prepare(pq.CopyIn("map_tiles", "map_name", "x", "y", "type"))
		if err != nil {
			return err
		}

		for _, t := range m.Tiles {
			if _, err := stmt.Exec(name, t.X, t.Y, string(t.Type)); err != nil {
				stmt.Close()
				return err
			}
		}
		if _, err := stmt.Exec(); err != nil {
			stmt.Close()
			return err
		}

		return stmt.Close()
	})
}

// LoadMap loads a map by name, tiles in row-major order
func (ps *PostgresStore) LoadMap(name string) (*models.MapData, error) {
	return loadMap(ps.db, name)
}

// Close closes the database connection
func (ps *PostgresStore) Close() error {
	logger.Log.Debug("Closing PostgreSQL connection")
	return ps.db.Close()
}
