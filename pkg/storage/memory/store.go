// Package memory provides an in-memory implementation of storage.Storage.
// It is safe for concurrent use. Data is lost on restart; use the DynamoDB store
// for anything that must survive a process.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/chris/upi-expense-tracker/pkg/models"
	"github.com/chris/upi-expense-tracker/pkg/storage"
	"github.com/google/uuid"
)

type categoryKey struct {
	owner string
	name  string
}

// Store keeps expenses and categories in maps guarded by a single lock.
type Store struct {
	mu         sync.RWMutex
	expenses   map[string]*models.PendingExpense
	categories map[categoryKey]models.Category

	now func() time.Time
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		expenses:   make(map[string]*models.PendingExpense),
		categories: make(map[categoryKey]models.Category),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

var _ storage.Storage = (*Store)(nil)

// PutCategory implements storage.CategoryWriter.
func (s *Store) PutCategory(ctx context.Context, category *models.Category) error {
	if category.OwnerId == "" || category.Name == "" {
		return fmt.Errorf("%w: category owner and name are required", models.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := *category
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	s.categories[categoryKey{c.OwnerId, c.Name}] = c
	return nil
}

// CreatePendingExpense implements storage.ExpenseManager.
func (s *Store) CreatePendingExpense(ctx context.Context, expense *models.PendingExpense) (*models.PendingExpense, error) {
	if !expense.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", models.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[categoryKey{expense.OwnerId, expense.Category}]; !ok {
		return nil, storage.ErrUnknownCategory
	}

	expense.Id = uuid.New().String()
	expense.Status = models.PENDING
	expense.CreatedAt = s.now().Truncate(time.Second)
	expense.ResolvedAt = nil

	stored := *expense
	s.expenses[stored.Id] = &stored
	return expense, nil
}

// ResolvePendingExpense implements storage.ExpenseManager.
func (s *Store) ResolvePendingExpense(ctx context.Context, id, ownerID string, outcome models.ExpenseStatus) (*models.PendingExpense, bool, error) {
	if !outcome.IsResolution() {
		return nil, false, storage.ErrInvalidOutcome
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expense, ok := s.expenses[id]
	if !ok || expense.OwnerId != ownerID {
		return nil, false, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	if expense.Status != models.PENDING {
		return copyOf(expense), false, nil
	}

	resolvedAt := s.now()
	expense.Status = outcome
	expense.ResolvedAt = &resolvedAt
	return copyOf(expense), true, nil
}

// GetPendingExpense implements storage.ExpenseReader.
func (s *Store) GetPendingExpense(ctx context.Context, id string) (*models.PendingExpense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expense, ok := s.expenses[id]
	if !ok {
		return nil, fmt.Errorf("%w: expense with ID %s not found", models.ErrNotFound, id)
	}
	return copyOf(expense), nil
}

// ListConfirmedExpenses implements storage.ExpenseReader. Results are ordered by creation time.
func (s *Store) ListConfirmedExpenses(ctx context.Context, ownerID string) ([]models.PendingExpense, error) {
	return s.list(func(e *models.PendingExpense) bool {
		return e.OwnerId == ownerID && e.Status == models.CONFIRMED
	}), nil
}

// ListStalePendingExpenses implements storage.ExpenseReaper.
func (s *Store) ListStalePendingExpenses(ctx context.Context, olderThan time.Duration) ([]models.PendingExpense, error) {
	cutoff := s.cutoffFor(olderThan)
	return s.list(func(e *models.PendingExpense) bool {
		return e.Status == models.PENDING && e.CreatedAt.Before(cutoff)
	}), nil
}

// ExpirePendingExpense implements storage.ExpenseReaper.
func (s *Store) ExpirePendingExpense(ctx context.Context, id string, cutoff time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expense, ok := s.expenses[id]
	if !ok || expense.Status != models.PENDING || !expense.CreatedAt.Before(cutoff) {
		return false, nil
	}
	now := s.now()
	expense.Status = models.EXPIRED
	expense.ResolvedAt = &now
	return true, nil
}

// ExpirePending implements storage.ExpenseReaper.
func (s *Store) ExpirePending(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := s.cutoffFor(olderThan)
	stale, _ := s.ListStalePendingExpenses(ctx, olderThan)

	count := 0
	for _, expense := range stale {
		if ok, _ := s.ExpirePendingExpense(ctx, expense.Id, cutoff); ok {
			count++
		}
	}
	return count, nil
}

func (s *Store) list(keep func(*models.PendingExpense) bool) []models.PendingExpense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.PendingExpense
	for _, e := range s.expenses {
		if keep(e) {
			result = append(result, *copyOf(e))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

func (s *Store) cutoffFor(olderThan time.Duration) time.Time {
	return s.now().Add(-olderThan).Truncate(time.Second)
}

func copyOf(e *models.PendingExpense) *models.PendingExpense {
	c := *e
	if e.ResolvedAt != nil {
		t := *e.ResolvedAt
		c.ResolvedAt = &t
	}
	return &c
}
