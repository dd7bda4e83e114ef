package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/chris/upi-expense-tracker/pkg/models"
	"github.com/chris/upi-expense-tracker/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.PutCategory(context.Background(), &models.Category{OwnerId: "user1", Name: "Food"}))
	return s
}

func pending(t *testing.T, s *Store) *models.PendingExpense {
	t.Helper()
	created, err := s.CreatePendingExpense(context.Background(), &models.PendingExpense{
		OwnerId:     "user1",
		Amount:      models.MustParseAmount("250.5"),
		Category:    "Food",
		Description: "UPI to shop@okaxis",
	})
	require.NoError(t, err)
	return created
}

func TestCreatePendingExpense(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s := seededStore(t)
		created := pending(t, s)

		assert.NotEmpty(t, created.Id)
		assert.Equal(t, models.PENDING, created.Status)
		assert.Equal(t, "250.50", created.Amount.String())

		stored, err := s.GetPendingExpense(context.Background(), created.Id)
		require.NoError(t, err)
		assert.Equal(t, models.PENDING, stored.Status)
	})

	t.Run("Unknown Category", func(t *testing.T) {
		s := seededStore(t)
		_, err := s.CreatePendingExpense(context.Background(), &models.PendingExpense{
			OwnerId: "user1", Amount: models.MustParseAmount("1"), Category: "Travel",
		})
		assert.ErrorIs(t, err, storage.ErrUnknownCategory)
		assert.ErrorIs(t, err, models.ErrValidation)
		assert.Empty(t, s.expenses)
	})

	t.Run("Category Of Another User", func(t *testing.T) {
		s := seededStore(t)
		_, err := s.CreatePendingExpense(context.Background(), &models.PendingExpense{
			OwnerId: "user2", Amount: models.MustParseAmount("1"), Category: "Food",
		})
		assert.ErrorIs(t, err, storage.ErrUnknownCategory)
	})

	t.Run("Zero Amount", func(t *testing.T) {
		s := seededStore(t)
		_, err := s.CreatePendingExpense(context.Background(), &models.PendingExpense{OwnerId: "user1", Category: "Food"})
		assert.ErrorIs(t, err, models.ErrValidation)
	})
}

func TestResolvePendingExpense(t *testing.T) {
	t.Run("Confirm Then Cancel Keeps First Outcome", func(t *testing.T) {
		s := seededStore(t)
		created := pending(t, s)

		confirmed, changed, err := s.ResolvePendingExpense(context.Background(), created.Id, "user1", models.CONFIRMED)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, models.CONFIRMED, confirmed.Status)
		require.NotNil(t, confirmed.ResolvedAt)

		again, changed, err := s.ResolvePendingExpense(context.Background(), created.Id, "user1", models.CANCELLED)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, models.CONFIRMED, again.Status)
		assert.Equal(t, *confirmed.ResolvedAt, *again.ResolvedAt)
	})

	t.Run("Concurrent Confirms Transition Once", func(t *testing.T) {
		s := seededStore(t)
		created := pending(t, s)

		var wg sync.WaitGroup
		var transitions atomic.Int32
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				result, changed, err := s.ResolvePendingExpense(context.Background(), created.Id, "user1", models.CONFIRMED)
				assert.NoError(t, err)
				assert.Equal(t, models.CONFIRMED, result.Status)
				if changed {
					transitions.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), transitions.Load())
	})

	t.Run("Unknown Id Creates Nothing", func(t *testing.T) {
		s := seededStore(t)

		_, _, err := s.ResolvePendingExpense(context.Background(), "missing", "user1", models.CONFIRMED)

		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Empty(t, s.expenses)
	})

	t.Run("Other Owner", func(t *testing.T) {
		s := seededStore(t)
		created := pending(t, s)

		_, _, err := s.ResolvePendingExpense(context.Background(), created.Id, "user2", models.CONFIRMED)

		assert.ErrorIs(t, err, models.ErrNotFound)
		stored, _ := s.GetPendingExpense(context.Background(), created.Id)
		assert.Equal(t, models.PENDING, stored.Status)
	})

	t.Run("Invalid Outcome", func(t *testing.T) {
		s := seededStore(t)
		created := pending(t, s)

		_, _, err := s.ResolvePendingExpense(context.Background(), created.Id, "user1", models.PENDING)

		assert.ErrorIs(t, err, storage.ErrInvalidOutcome)
	})
}

func TestListConfirmedExpenses(t *testing.T) {
	s := seededStore(t)
	kept := pending(t, s)
	cancelled := pending(t, s)
	pending(t, s)

	_, _, err := s.ResolvePendingExpense(context.Background(), kept.Id, "user1", models.CONFIRMED)
	require.NoError(t, err)
	_, _, err = s.ResolvePendingExpense(context.Background(), cancelled.Id, "user1", models.CANCELLED)
	require.NoError(t, err)

	ledger, err := s.ListConfirmedExpenses(context.Background(), "user1")
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, kept.Id, ledger[0].Id)

	other, err := s.ListConfirmedExpenses(context.Background(), "user2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestExpirePending(t *testing.T) {
	s := seededStore(t)
	clock := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	old := pending(t, s)
	resolved := pending(t, s)
	_, _, err := s.ResolvePendingExpense(context.Background(), resolved.Id, "user1", models.CONFIRMED)
	require.NoError(t, err)

	clock = clock.Add(23 * time.Hour)
	fresh := pending(t, s)

	clock = clock.Add(2 * time.Hour)
	count, err := s.ExpirePending(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, _ := s.GetPendingExpense(context.Background(), old.Id)
	assert.Equal(t, models.EXPIRED, got.Status)
	got, _ = s.GetPendingExpense(context.Background(), resolved.Id)
	assert.Equal(t, models.CONFIRMED, got.Status)
	got, _ = s.GetPendingExpense(context.Background(), fresh.Id)
	assert.Equal(t, models.PENDING, got.Status)

	// An expired record can no longer be confirmed.
	result, changed, err := s.ResolvePendingExpense(context.Background(), old.Id, "user1", models.CONFIRMED)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, models.EXPIRED, result.Status)
}
