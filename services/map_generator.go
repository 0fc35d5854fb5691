package services

import (
	"fmt"

	"grass-map/generator/logger"
	"grass-map/generator/models"
)

const (
	DefaultWidth  = 100
	DefaultHeight = 100

	// MapName is the stored name of the generated map, also the JSON file stem
	MapName = "grass_map"
	// MapDir is where the JSON map is written, relative to the working directory
	MapDir = "assets/maps"
)

// MapGenerator builds uniform grass maps
type MapGenerator struct {
	tileType models.TileType
}

// NewMapGenerator creates a new map generator
func NewMapGenerator() *MapGenerator {
	return &MapGenerator{tileType: models.TileGrass}
}

// Generate enumerates every (x, y) pair row by row. Non-positive dimensions
// give an empty tile list.
func (g *MapGenerator) Generate(width, height int) *models.MapData {
	capacity := 0
	if width > 0 && height > 0 {
		capacity = width * height
	}

	tiles := make([]models.Tile, 0, capacity)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tiles = append(tiles, models.Tile{
				X:    x,
				Y:    y,
				Type: g.tileType,
			})
		}
	}

	logger.Log.Debugf("Generated %d tiles for %dx%d map", len(tiles), width, height)

	return &models.MapData{
		Width:  width,
		Height: height,
		Tiles:  tiles,
	}
}

// Summary returns the console line reported after the map is written
func Summary(m *models.MapData) string {
	return fmt.Sprintf("Generated %dx%d grass map with %d tiles", m.Width, m.Height, m.TileCount())
}
