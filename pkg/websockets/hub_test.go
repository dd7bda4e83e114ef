package websockets

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu       sync.Mutex
	messages []interface{}
	err      error
}

func (s *recordingSender) WriteJSON(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, v)
	return nil
}

func (s *recordingSender) received() []interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]interface{}(nil), s.messages...)
}

// blockingSender never finishes a write until released.
type blockingSender struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func newBlockingSender() *blockingSender {
	return &blockingSender{started: make(chan struct{}), release: make(chan struct{})}
}

func (s *blockingSender) WriteJSON(v interface{}) error {
	s.once.Do(func() { close(s.started) })
	<-s.release
	return errors.New("write deadline exceeded")
}

func resolvedMessage(expenseID string) Message {
	return Message{Type: MessageTypeExpenseResolved, Payload: ExpenseResolvedPayload{UserID: "user-1", ExpenseID: expenseID, Status: "CONFIRMED"}}
}

func TestHubPublish(t *testing.T) {
	ctx := context.Background()

	t.Run("Delivers To The User's Connections", func(t *testing.T) {
		hub := NewHub(nil)
		mine := &recordingSender{}
		other := &recordingSender{}
		require.NoError(t, hub.AddConnection(ctx, "c1", "user-1", mine))
		require.NoError(t, hub.AddConnection(ctx, "c2", "user-2", other))

		msg := resolvedMessage("e1")
		require.NoError(t, hub.Publish(ctx, "user-1", msg))

		assert.Eventually(t, func() bool { return len(mine.received()) == 1 }, time.Second, 5*time.Millisecond)
		assert.Equal(t, []interface{}{msg}, mine.received())
		assert.Empty(t, other.received())

		require.NoError(t, hub.RemoveConnection(ctx, "c1"))
		assert.Equal(t, 1, hub.Len())
	})

	t.Run("Drops Broken Connection", func(t *testing.T) {
		hub := NewHub(nil)
		broken := &recordingSender{err: errors.New("connection reset")}
		require.NoError(t, hub.AddConnection(ctx, "c1", "user-1", broken))
		require.NoError(t, hub.AddConnection(ctx, "c2", "user-1", &recordingSender{}))

		require.NoError(t, hub.Publish(ctx, "user-1", resolvedMessage("e1")))

		assert.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 5*time.Millisecond)
	})

	t.Run("Stuck Peer Does Not Block Others", func(t *testing.T) {
		hub := NewHub(nil)
		stuck := newBlockingSender()
		defer close(stuck.release)
		bob := &recordingSender{}
		require.NoError(t, hub.AddConnection(ctx, "alice-1", "alice", stuck))
		require.NoError(t, hub.AddConnection(ctx, "bob-1", "bob", bob))

		require.NoError(t, hub.Publish(ctx, "alice", resolvedMessage("e1")))
		<-stuck.started

		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = hub.Publish(ctx, "bob", resolvedMessage("e2"))
			_ = hub.AddConnection(ctx, "bob-2", "bob", &recordingSender{})
			_ = hub.RemoveConnection(ctx, "bob-2")
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("hub calls blocked behind a stuck connection")
		}
		assert.Eventually(t, func() bool { return len(bob.received()) == 1 }, time.Second, 5*time.Millisecond)
	})

	t.Run("Drops Connection That Falls Behind", func(t *testing.T) {
		hub := NewHub(nil)
		stuck := newBlockingSender()
		defer close(stuck.release)
		require.NoError(t, hub.AddConnection(ctx, "c1", "user-1", stuck))

		require.NoError(t, hub.Publish(ctx, "user-1", resolvedMessage("e0")))
		<-stuck.started
		for i := 0; i <= sendBuffer; i++ {
			require.NoError(t, hub.Publish(ctx, "user-1", resolvedMessage("e1")))
		}

		assert.Equal(t, 0, hub.Len())
	})
}

func TestHubAddConnection_Invalid(t *testing.T) {
	hub := NewHub(nil)
	assert.Error(t, hub.AddConnection(context.Background(), "", "user-1", &recordingSender{}))
	assert.Error(t, hub.AddConnection(context.Background(), "c1", "", &recordingSender{}))
}
