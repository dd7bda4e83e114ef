// Package websockets serves the ledger-refresh channel. Clients only listen:
// after a resolve changes one of their expenses they get an expenseResolved
// message and reload the ledger.
package websockets

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/chris/upi-expense-tracker/pkg/middleware"
	"github.com/chris/upi-expense-tracker/pkg/websockets"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	writeWait  = 10 * time.Second
)

// Handler upgrades authenticated requests and registers them with the hub.
type Handler struct {
	connManager websockets.ConnectionManager
	logger      *slog.Logger
	upgrader    websocket.Upgrader
}

// NewHandler creates a new Handler.
func NewHandler(connManager websockets.ConnectionManager, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		connManager: connManager,
		logger:      logger,
		upgrader: websocket.Upgrader{
			// The bearer token already gates the handshake.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP keeps the connection registered until the client leaves or stops
// answering pings.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	connectionID := uuid.New().String()
	logger := h.logger.With("connectionId", connectionID, "userId", userID)

	ctx := r.Context()
	if err := h.connManager.AddConnection(ctx, connectionID, userID, deadlineSender{conn}); err != nil {
		logger.Error("failed to register connection", "error", err)
		return
	}
	logger.Info("ledger listener connected")

	defer func() {
		if err := h.connManager.RemoveConnection(ctx, connectionID); err != nil {
			logger.Error("failed to remove connection", "error", err)
		}
		logger.Info("ledger listener disconnected")
	}()

	done := make(chan struct{})
	defer close(done)
	go keepAlive(conn, done)

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reading is how a close or a dead peer is noticed.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("connection closed unexpectedly", "error", err)
			}
			return
		}
	}
}

// deadlineSender bounds every write so a peer that stops reading fails the
// write instead of holding its writer forever.
type deadlineSender struct {
	conn *websocket.Conn
}

func (s deadlineSender) WriteJSON(v interface{}) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteJSON(v)
}

// keepAlive pings until done is closed. WriteControl may run alongside the
// hub's writes.
func keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
