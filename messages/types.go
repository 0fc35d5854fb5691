package messages

import "grass-map/generator/models"

// MessageType defines the type of message being sent
type MessageType string

const (
	MessageTypeMapGenerated MessageType = "map_generated"
)

// BaseMessage is the base structure for all messages
type BaseMessage struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// MapGeneratedMessage announces a freshly written map
type MapGeneratedMessage struct {
	Name      string          `json:"name"`
	Path      string          `json:"path"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	TileCount int             `json:"tile_count"`
	Map       *models.MapData `json:"map"`
}

// NewMapGenerated wraps a generated map in its envelope
func NewMapGenerated(name, path string, m *models.MapData) BaseMessage {
	return BaseMessage{
		Type: MessageTypeMapGenerated,
		Payload: MapGeneratedMessage{
			Name:      name,
			Path:      path,
			Width:     m.Width,
			Height:    m.Height,
			TileCount: m.TileCount(),
			Map:       m,
		},
	}
}
