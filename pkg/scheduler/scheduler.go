package scheduler

import (
	"context"
	"time"
)

// ExpiryRequest asks the expiry worker to expire one pending expense if it is still
// PENDING and was created before Cutoff.
type ExpiryRequest struct {
	ExpenseId string    `json:"expenseId"`
	Cutoff    time.Time `json:"cutoff"`
}

// ExpiryScheduler defines the interface for a component that queues stale pending expenses for expiry.
type ExpiryScheduler interface {
	// ScheduleExpiry enqueues an expiry request for asynchronous processing.
	ScheduleExpiry(ctx context.Context, req ExpiryRequest) error
}
