package persistence

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"grass-map/generator/models"
)

// Queries shared by the SQL stores, written with ? placeholders and rebound
// per driver.
const (
	upsertMapQuery = `
	INSERT INTO maps (name, width, height, tile_count)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (name)
	DO UPDATE SET
		width = excluded.width, height = excluded.height,
		tile_count = excluded.tile_count,
		updated_at = CURRENT_TIMESTAMP
	`
	deleteTilesQuery = `DELETE FROM map_tiles WHERE map_name = ?`
	selectMapQuery   = `SELECT width, height FROM maps WHERE name = ?`
	selectTilesQuery = `SELECT x, y, type FROM map_tiles WHERE map_name = ? ORDER BY y, x`
)

type mapRow struct {
	Width  int `db:"width"`
	Height int `db:"height"`
}

type tileRow struct {
	X    int    `db:"x"`
	Y    int    `db:"y"`
	Type string `db:"type"`
}

// saveMapTx replaces the stored map in a single transaction. insertTiles
// writes the tile rows using whatever bulk path the driver offers.
func saveMapTx(db *sqlx.DB, name string, m *models.MapData, insertTiles func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec(db.Rebind(upsertMapQuery), name, m.Width, m.Height, m.TileCount()); err != nil {
		return fmt.Errorf("failed to save map: %w", err)
	}
	if _, err = tx.Exec(db.Rebind(deleteTilesQuery), name); err != nil {
		return fmt.Errorf("failed to clear map tiles: %w", err)
	}
	if err = insertTiles(tx); err != nil {
		return fmt.Errorf("failed to save map tiles: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit map: %w", err)
	}
	return nil
}

func loadMap(db *sqlx.DB, name string) (*models.MapData, error) {
	var row mapRow
	if err := db.Get(&row, db.Rebind(selectMapQuery), name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("map with name %s not found", name)
		}
		return nil, fmt.Errorf("failed to load map: %w", err)
	}

	var rows []tileRow
	if err := db.Select(&rows, db.Rebind(selectTilesQuery), name); err != nil {
		return nil, fmt.Errorf("failed to load map tiles: %w", err)
	}

	tiles := make([]models.Tile, 0, len(rows))
	for _, r := range rows {
		tiles = append(tiles, models.Tile{X: r.X, Y: r.Y, Type: models.TileType(r.Type)})
	}

	return &models.MapData{
		Width:  row.Width,
		Height: row.Height,
		Tiles:  tiles,
	}, nil
}
