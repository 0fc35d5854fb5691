package models

// TileType names the terrain of a single tile
type TileType string

// TileGrass is the only terrain the generator emits
const TileGrass TileType = "grass"

// Tile represents a single grid cell
type Tile struct {
	X    int      `json:"x"`
	Y    int      `json:"y"`
	Type TileType `json:"type"`
}

// MapData represents a generated map, tiles in row-major order
type MapData struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Tiles  []Tile `json:"tiles"`
}

// TileCount returns the number of tiles in the map
func (m *MapData) TileCount() int {
	return len(m.Tiles)
}
