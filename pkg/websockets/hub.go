package websockets

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// sendBuffer is how many messages may queue for one connection before it is
// treated as stuck and dropped.
const sendBuffer = 16

type connection struct {
	userID string
	send   chan Message
}

// Hub tracks the WebSocket connections of this process and fans messages out to them.
// It is both the ConnectionManager and the Publisher of the local server.
//
// Each connection has its own writer goroutine, so a slow peer only ever
// delays its own messages.
type Hub struct {
	mu          sync.Mutex
	connections map[string]*connection
	logger      *slog.Logger
}

// NewHub creates an empty Hub.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{connections: make(map[string]*connection), logger: logger}
}

var (
	_ ConnectionManager = (*Hub)(nil)
	_ Publisher         = (*Hub)(nil)
)

// AddConnection registers a client connection for userID and starts its writer.
// The hub is the only writer of sender's data frames from then on.
func (h *Hub) AddConnection(ctx context.Context, connectionID, userID string, sender Sender) error {
	if connectionID == "" || userID == "" {
		return fmt.Errorf("connection ID and user ID are required")
	}
	conn := &connection{userID: userID, send: make(chan Message, sendBuffer)}

	h.mu.Lock()
	if old, ok := h.connections[connectionID]; ok {
		close(old.send)
	}
	h.connections[connectionID] = conn
	h.mu.Unlock()

	go h.writeLoop(connectionID, conn, sender)
	return nil
}

// RemoveConnection forgets a client connection. Unknown IDs are ignored.
func (h *Hub) RemoveConnection(ctx context.Context, connectionID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(connectionID, nil)
	return nil
}

// Publish queues message for every connection of userID and returns without
// waiting for the writes. A connection whose queue is full is dropped; the
// client reconnects and reloads the ledger.
func (h *Hub) Publish(ctx context.Context, userID string, message Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range h.connections {
		if conn.userID != userID {
			continue
		}
		select {
		case conn.send <- message:
		default:
			h.logger.Warn("connection is not keeping up, deleting", "connectionId", id, "userId", userID)
			h.dropLocked(id, conn)
		}
	}
	return nil
}

// Len returns the number of open connections.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.connections)
}

func (h *Hub) writeLoop(id string, conn *connection, sender Sender) {
	for message := range conn.send {
		if err := sender.WriteJSON(message); err != nil {
			h.logger.Info("stale connection found, deleting", "connectionId", id, "error", err)
			h.mu.Lock()
			h.dropLocked(id, conn)
			h.mu.Unlock()
			return
		}
	}
}

// dropLocked removes id if it still refers to conn (any connection when conn
// is nil) and stops its writer.
func (h *Hub) dropLocked(id string, conn *connection) {
	current, ok := h.connections[id]
	if !ok || (conn != nil && current != conn) {
		return
	}
	delete(h.connections, id)
	close(current.send)
}
