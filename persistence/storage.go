package persistence

import "grass-map/generator/models"

// Storage defines the interface for map persistence
type Storage interface {
	SaveMap(name string, m *models.MapData) error
	LoadMap(name string) (*models.MapData, error)
	Close() error
}
