package storage

import (
	"context"
	"time"

	"github.com/chris/upi-expense-tracker/pkg/models"
)

// ExpenseReader defines the interface for reading pending expense data.
type ExpenseReader interface {
	// GetPendingExpense retrieves a pending expense by its ID.
	GetPendingExpense(ctx context.Context, id string) (*models.PendingExpense, error)

	// ListConfirmedExpenses returns the ledger view for a user: CONFIRMED expenses only.
	ListConfirmedExpenses(ctx context.Context, ownerID string) ([]models.PendingExpense, error)
}

// ExpenseManager defines the interface for creating and resolving pending expenses.
// This is suitable for components like the main API service.
type ExpenseManager interface {
	// CreatePendingExpense validates the category and amount and persists a new PENDING record.
	CreatePendingExpense(ctx context.Context, expense *models.PendingExpense) (*models.PendingExpense, error)

	// ResolvePendingExpense moves a PENDING expense to CONFIRMED or CANCELLED.
	// If the expense has already left PENDING, the current record is returned
	// unchanged and changed is false.
	ResolvePendingExpense(ctx context.Context, id, ownerID string, outcome models.ExpenseStatus) (expense *models.PendingExpense, changed bool, err error)
}

// ExpenseReaper defines the interface used by the expiry jobs.
type ExpenseReaper interface {
	// ListStalePendingExpenses retrieves PENDING expenses created more than olderThan ago.
	ListStalePendingExpenses(ctx context.Context, olderThan time.Duration) ([]models.PendingExpense, error)

	// ExpirePendingExpense moves one expense to EXPIRED if it is still PENDING and was created before cutoff.
	ExpirePendingExpense(ctx context.Context, id string, cutoff time.Time) (bool, error)

	// ExpirePending expires every PENDING expense older than olderThan and returns how many were expired.
	ExpirePending(ctx context.Context, olderThan time.Duration) (int, error)
}

// ExpenseStore combines the reader and manager interfaces.
type ExpenseStore interface {
	ExpenseReader
	ExpenseManager
}
