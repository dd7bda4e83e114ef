package websockets

import "context"

// NoOpPublisher is a publisher that does nothing. The router and the expenses
// handler fall back to it when no hub is configured.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, userID string, message Message) error {
	return nil
}
