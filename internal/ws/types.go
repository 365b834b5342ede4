package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeClick     MessageType = "click"     // client -> server: clicked square
	MessageTypeGameState MessageType = "gameState" // server -> client: full snapshot
	MessageTypeEvent     MessageType = "event"     // server -> client: what the click changed
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}
