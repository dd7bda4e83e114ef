// Package expiry reclaims pending expenses whose payment outcome was never
// reported. A scheduled sweep finds stale PENDING records and queues them; a
// queue worker expires each one with a conditional update, so a record that
// was confirmed or cancelled in the meantime is left alone.
package expiry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/chris/upi-expense-tracker/pkg/metrics"
	"github.com/chris/upi-expense-tracker/pkg/scheduler"
	"github.com/chris/upi-expense-tracker/pkg/storage"
)

// Sweeper finds stale pending expenses.
type Sweeper struct {
	Store     storage.ExpenseReaper
	Scheduler scheduler.ExpiryScheduler
	OlderThan time.Duration
	Logger    *slog.Logger
	Now       func() time.Time
}

// Run queues every stale pending expense for expiry and returns how many were
// queued. Without a Scheduler the records are expired in place instead.
func (s *Sweeper) Run(ctx context.Context) (int, error) {
	logger := s.logger()

	if s.Scheduler == nil {
		expired, err := s.Store.ExpirePending(ctx, s.OlderThan)
		metrics.ExpensesExpired.Add(float64(expired))
		if err != nil {
			return expired, fmt.Errorf("failed to expire pending expenses: %w", err)
		}
		logger.Info("expired stale pending expenses", "count", expired)
		return expired, nil
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	cutoff := now().UTC().Add(-s.OlderThan)

	stale, err := s.Store.ListStalePendingExpenses(ctx, s.OlderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale pending expenses: %w", err)
	}
	if len(stale) == 0 {
		logger.Info("no stale pending expenses found")
		return 0, nil
	}

	logger.Info("queueing stale pending expenses for expiry", "count", len(stale))
	queued := 0
	for _, e := range stale {
		if err := s.Scheduler.ScheduleExpiry(ctx, scheduler.ExpiryRequest{ExpenseId: e.Id, Cutoff: cutoff}); err != nil {
			// one failure must not stop the batch; the next sweep picks it up again
			logger.Error("failed to queue pending expense for expiry", "expenseId", e.Id, "error", err)
			continue
		}
		queued++
	}
	return queued, nil
}

func (s *Sweeper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// Worker expires the pending expenses named by queued expiry requests.
type Worker struct {
	Store  storage.ExpenseReaper
	Logger *slog.Logger
}

// HandleSQSEvent processes one batch. Messages whose expiry failed are
// reported back so that only they are retried. Malformed messages are
// dropped because a retry cannot fix them.
func (w *Worker) HandleSQSEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var resp events.SQSEventResponse
	for _, message := range event.Records {
		req, err := scheduler.DecodeExpiryRequest(message.Body)
		if err != nil {
			logger.Error("dropping malformed expiry request", "messageId", message.MessageId, "error", err)
			continue
		}

		expired, err := w.Store.ExpirePendingExpense(ctx, req.ExpenseId, req.Cutoff)
		if err != nil {
			logger.Error("failed to expire pending expense", "messageId", message.MessageId, "expenseId", req.ExpenseId, "error", err)
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
			continue
		}
		if !expired {
			logger.Info("pending expense already resolved, skipping", "expenseId", req.ExpenseId)
			continue
		}
		metrics.ExpensesExpired.Inc()
		logger.Info("pending expense expired", "expenseId", req.ExpenseId)
	}
	return resp, nil
}
