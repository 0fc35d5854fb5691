package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"grass-map/generator/models"
)

// JSONStore persists each map as an indented JSON file under dir
type JSONStore struct {
	dir   string
	mutex sync.RWMutex
}

// NewJSONStore creates a JSON store rooted at dir. The directory is not
// created; writing into a missing directory fails.
func NewJSONStore(dir string) *JSONStore {
	return &JSONStore{dir: dir}
}

// Path returns the file a map with the given name is stored in
func (js *JSONStore) Path(name string) string {
	return filepath.Join(js.dir, name+".json")
}

// SaveMap writes the map, replacing any existing file. File system errors
// are returned as is.
func (js *JSONStore) SaveMap(name string, m *models.MapData) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal map %s: %w", name, err)
	}

	js.mutex.Lock()
	defer js.mutex.Unlock()

	return os.WriteFile(js.Path(name), data, 0644)
}

// LoadMap reads a map back from its file
func (js *JSONStore) LoadMap(name string) (*models.MapData, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	file, err := os.ReadFile(js.Path(name))
	if err != nil {
		return nil, err
	}

	var m models.MapData
	if err := json.Unmarshal(file, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal map %s: %w", name, err)
	}
	if m.Tiles == nil {
		m.Tiles = []models.Tile{}
	}

	return &m, nil
}

// Close closes the store (no-op for JSON store)
func (js *JSONStore) Close() error {
	return nil
}
