package websockets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chris/upi-expense-tracker/pkg/middleware"
	"github.com/chris/upi-expense-tracker/pkg/websockets"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeHTTP(t *testing.T) {
	hub := websockets.NewHub(nil)
	auth := middleware.BearerAuth(middleware.StaticTokens{"good": "user-1"})
	server := httptest.NewServer(auth(NewHandler(hub, nil)))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?access_token=good"

	t.Run("Receives Published Messages", func(t *testing.T) {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		require.NoError(t, err)
		defer conn.Close()

		require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)

		msg := websockets.Message{
			Type:    websockets.MessageTypeExpenseResolved,
			Payload: websockets.ExpenseResolvedPayload{UserID: "user-1", ExpenseID: "e1", Status: "CONFIRMED", Amount: "250.50"},
		}
		require.NoError(t, hub.Publish(context.Background(), "user-1", msg))

		var got struct {
			Type    string                            `json:"type"`
			Payload websockets.ExpenseResolvedPayload `json:"payload"`
		}
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, "expenseResolved", got.Type)
		assert.Equal(t, "e1", got.Payload.ExpenseID)

		conn.Close()
		assert.Eventually(t, func() bool { return hub.Len() == 0 }, time.Second, 10*time.Millisecond)
	})

	t.Run("Rejects Missing Token", func(t *testing.T) {
		_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/ws", nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
