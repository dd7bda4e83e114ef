package websockets

import (
	"context"
)

// Sender writes a JSON message to one connected client. *websocket.Conn satisfies it.
type Sender interface {
	WriteJSON(v interface{}) error
}

// ConnectionManager defines the interface for managing WebSocket connections.
type ConnectionManager interface {
	AddConnection(ctx context.Context, connectionID, userID string, sender Sender) error
	RemoveConnection(ctx context.Context, connectionID string) error
}

// Publisher defines the interface for publishing messages to WebSocket clients.
type Publisher interface {
	Publish(ctx context.Context, userID string, message Message) error
}
