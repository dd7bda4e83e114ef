package session

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/chris/upi-expense-tracker/pkg/api"
	"github.com/chris/upi-expense-tracker/pkg/client"
	"github.com/chris/upi-expense-tracker/pkg/models"
	"github.com/chris/upi-expense-tracker/pkg/session/mocks"
	"github.com/chris/upi-expense-tracker/pkg/upi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const pendingID = "3f1c2f0e-8a59-4f5e-9d1b-2f6f5b0c9a11"

var testRequest = InitiateRequest{
	Amount:      models.MustParseAmount("250.50"),
	Category:    "Food",
	Description: "UPI to shop@okaxis",
}

// awaitingConfirmation returns a controller whose session is showing the prompt.
func awaitingConfirmation(t *testing.T, mockAPI *mocks.ExpenseAPI, opts ...Option) *Controller {
	t.Helper()
	mockAPI.On("InitiateExpense", mock.Anything, mock.Anything).Return(pendingID, nil).Once()

	c := NewController(mockAPI, opts...)
	_, err := c.Initiate(context.Background(), testRequest)
	require.NoError(t, err)
	require.True(t, c.OnPossibleReturn())
	return c
}

func confirmedExpense(status api.ExpenseStatus) *api.Expense {
	return &api.Expense{Amount: "250.50", Category: "Food", Status: status}
}

func TestInitiate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockAPI := mocks.NewExpenseAPI(t)
		mockAPI.On("InitiateExpense", mock.Anything, mock.MatchedBy(func(req api.NewUpiExpense) bool {
			return req.Amount == "250.50" && req.Category == "Food" &&
				req.Description != nil && *req.Description == "UPI to shop@okaxis"
		})).Return(pendingID, nil).Once()

		c := NewController(mockAPI)
		id, err := c.Initiate(context.Background(), testRequest)

		require.NoError(t, err)
		assert.Equal(t, pendingID, id)
		assert.Equal(t, Snapshot{State: AwaitingReturn, PendingExpenseID: pendingID}, c.Snapshot())
	})

	t.Run("No ID Before Server Ack", func(t *testing.T) {
		mockAPI := mocks.NewExpenseAPI(t)
		called := make(chan struct{})
		release := make(chan struct{})
		mockAPI.On("InitiateExpense", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				close(called)
				<-release
			}).
			Return(pendingID, nil).Once()

		c := NewController(mockAPI)
		done := make(chan error, 1)
		go func() {
			_, err := c.Initiate(context.Background(), testRequest)
			done <- err
		}()

		<-called
		assert.Equal(t, Snapshot{State: AwaitingServerAck}, c.Snapshot())
		assert.False(t, c.OnPossibleReturn(), "a return before the ack must not show the prompt")

		_, err := c.Initiate(context.Background(), testRequest)
		assert.ErrorIs(t, err, ErrSessionBusy)

		close(release)
		require.NoError(t, <-done)
		assert.Equal(t, Snapshot{State: AwaitingReturn, PendingExpenseID: pendingID}, c.Snapshot())
	})

	t.Run("Network Failure Returns To Idle", func(t *testing.T) {
		mockAPI := mocks.NewExpenseAPI(t)
		netErr := &client.NetworkError{Op: "initiate expense", StatusCode: 500, Message: "Failed to initiate UPI expense"}
		mockAPI.On("InitiateExpense", mock.Anything, mock.Anything).Return("", netErr).Once()

		c := NewController(mockAPI)
		id, err := c.Initiate(context.Background(), testRequest)

		assert.Empty(t, id)
		var target *client.NetworkError
		assert.ErrorAs(t, err, &target)
		assert.Equal(t, Snapshot{State: Idle}, c.Snapshot())
	})
}

func TestPay(t *testing.T) {
	payment := upi.PaymentRequest{PayeeVPA: "shop@okaxis", PayeeName: "Ravi's Café", Amount: "250.5"}

	t.Run("Redirects Only After Ack", func(t *testing.T) {
		mockAPI := mocks.NewExpenseAPI(t)
		mockRedirector := mocks.NewRedirector(t)
		c := NewController(mockAPI)

		mockAPI.On("InitiateExpense", mock.Anything, mock.MatchedBy(func(req api.NewUpiExpense) bool {
			return req.Amount == "250.50" && req.Category == "Food" &&
				req.Description != nil && *req.Description == "UPI to shop@okaxis"
		})).Return(pendingID, nil).Once()
		mockRedirector.On("Redirect", mock.Anything, mock.MatchedBy(func(link upi.PayLink) bool {
			return strings.HasPrefix(link.URI, "upi://pay?pa=shop%40okaxis&pn=") &&
				strings.HasSuffix(link.URI, "&am=250.50&cu=INR")
		})).
			Run(func(args mock.Arguments) {
				assert.Equal(t, Snapshot{State: AwaitingReturn, PendingExpenseID: pendingID}, c.Snapshot())
			}).
			Return(nil).Once()

		id, err := c.Pay(context.Background(), payment, "Food", "", mockRedirector)

		require.NoError(t, err)
		assert.Equal(t, pendingID, id)
	})

	t.Run("Invalid VPA Never Reaches Server", func(t *testing.T) {
		mockAPI := mocks.NewExpenseAPI(t)
		mockRedirector := mocks.NewRedirector(t)
		c := NewController(mockAPI)

		bad := payment
		bad.PayeeVPA = "shop"
		_, err := c.Pay(context.Background(), bad, "Food", "", mockRedirector)

		assert.True(t, upi.IsValidationError(err))
		assert.ErrorIs(t, err, models.ErrValidation)
		mockAPI.AssertNotCalled(t, "InitiateExpense", mock.Anything, mock.Anything)
		mockRedirector.AssertNotCalled(t, "Redirect", mock.Anything, mock.Anything)
		assert.Equal(t, Snapshot{State: Idle}, c.Snapshot())
	})

	t.Run("Missing Category", func(t *testing.T) {
		mockAPI := mocks.NewExpenseAPI(t)
		mockRedirector := mocks.NewRedirector(t)
		c := NewController(mockAPI)

		_, err := c.Pay(context.Background(), payment, "  ", "", mockRedirector)

		var ve *upi.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "category", ve.Field)
		mockAPI.AssertNotCalled(t, "InitiateExpense", mock.Anything, mock.Anything)
	})

	t.Run("Initiate Fails", func(t *testing.T) {
		mockAPI := mocks.NewExpenseAPI(t)
		mockRedirector := mocks.NewRedirector(t)
		c := NewController(mockAPI)
		mockAPI.On("InitiateExpense", mock.Anything, mock.Anything).
			Return("", &client.NetworkError{Op: "initiate expense", Err: errors.New("connection refused")}).Once()

		_, err := c.Pay(context.Background(), payment, "Food", "coffee", mockRedirector)

		assert.Error(t, err)
		mockRedirector.AssertNotCalled(t, "Redirect", mock.Anything, mock.Anything)
		assert.Equal(t, Snapshot{State: Idle}, c.Snapshot())
	})

	t.Run("Redirect Fails Keeps Session", func(t *testing.T) {
		mockAPI := mocks.NewExpenseAPI(t)
		mockRedirector := mocks.NewRedirector(t)
		c := NewController(mockAPI)
		mockAPI.On("InitiateExpense", mock.Anything, mock.Anything).Return(pendingID, nil).Once()
		mockRedirector.On("Redirect", mock.Anything, mock.Anything).Return(errors.New("no UPI app")).Once()

		id, err := c.Pay(context.Background(), payment, "Food", "coffee", mockRedirector)

		assert.Error(t, err)
		assert.Equal(t, pendingID, id)
		assert.Equal(t, AwaitingReturn, c.Snapshot().State)
	})
}

func TestOnPossibleReturn(t *testing.T) {
	t.Run("Idle Is No-Op", func(t *testing.T) {
		c := NewController(mocks.NewExpenseAPI(t))
		assert.False(t, c.OnPossibleReturn())
		assert.Equal(t, Snapshot{State: Idle}, c.Snapshot())
	})

	t.Run("Double Return Shows Prompt Once", func(t *testing.T) {
		mockAPI := mocks.NewExpenseAPI(t)
		mockAPI.On("InitiateExpense", mock.Anything, mock.Anything).Return(pendingID, nil).Once()
		c := NewController(mockAPI)
		_, err := c.Initiate(context.Background(), testRequest)
		require.NoError(t, err)

		var mu sync.Mutex
		shown := 0
		c.OnChange(func(s Snapshot) {
			if s.State == AwaitingUserConfirmation {
				mu.Lock()
				shown++
				mu.Unlock()
			}
		})

		// focus and visibility fire together on most platforms
		assert.True(t, c.OnPossibleReturn())
		assert.False(t, c.OnPossibleReturn())

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 1, shown)
		assert.Equal(t, Snapshot{State: AwaitingUserConfirmation, PendingExpenseID: pendingID}, c.Snapshot())
	})
}

func TestConfirm(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockAPI := mocks.NewExpenseAPI(t)
		c := awaitingConfirmation(t, mockAPI)
		mockAPI.On("ResolveExpense", mock.Anything, pendingID, models.CONFIRMED).
			Return(confirmedExpense(api.ExpenseStatusCONFIRMED), nil).Once()

		var resolved *api.Expense
		c.OnResolved(func(e *api.Expense) { resolved = e })

		snap, err := c.Confirm(context.Background(), models.CONFIRMED)

		require.NoError(t, err)
		assert.Equal(t, Snapshot{State: Idle}, snap)
		assert.Equal(t, Snapshot{State: Idle}, c.Snapshot())
		require.NotNil(t, resolved)
		assert.Equal(t, api.ExpenseStatusCONFIRMED, resolved.Status)
	})

	t.Run("Cancel", func(t *testing.T) {
		mockAPI := mocks.NewExpenseAPI(t)
		c := awaitingConfirmation(t, mockAPI)
		mockAPI.On("ResolveExpense", mock.Anything, pendingID, models.CANCELLED).
			Return(confirmedExpense(api.ExpenseStatusCANCELLED), nil).Once()

		snap, err := c.Confirm(context.Background(), models.CANCELLED)

		require.NoError(t, err)
		assert.Equal(t, Idle, snap.State)
	})

	t.Run("Concurrent Taps Send One Request", func(t *testing.T) {
		mockAPI := mocks.NewExpenseAPI(t)
		c := awaitingConfirmation(t, mockAPI)
		called := make(chan struct{})
		release := make(chan struct{})
		mockAPI.On("ResolveExpense", mock.Anything, pendingID, models.CONFIRMED).
			Run(func(args mock.Arguments) {
				close(called)
				<-release
			}).
			Return(confirmedExpense(api.ExpenseStatusCONFIRMED), nil).Once()

		type result struct {
			snap Snapshot
			err  error
		}
		first := make(chan result, 1)
		go func() {
			snap, err := c.Confirm(context.Background(), models.CONFIRMED)
			first <- result{snap, err}
		}()
		<-called

		assert.Equal(t, Snapshot{State: Resolving, PendingExpenseID: pendingID, Confirming: true}, c.Snapshot())

		second := make(chan result, 1)
		go func() {
			snap, err := c.Confirm(context.Background(), models.CONFIRMED)
			second <- result{snap, err}
		}()
		time.Sleep(20 * time.Millisecond)
		close(release)

		r1, r2 := <-first, <-second
		require.NoError(t, r1.err)
		assert.Equal(t, Snapshot{State: Idle}, r1.snap)
		assert.Equal(t, r1.snap, r2.snap)
		mockAPI.AssertNumberOfCalls(t, "ResolveExpense", 1)
	})

	t.Run("Failure Keeps Prompt Open", func(t *testing.T) {
		mockAPI := mocks.NewExpenseAPI(t)
		c := awaitingConfirmation(t, mockAPI)
		mockAPI.On("ResolveExpense", mock.Anything, pendingID, models.CONFIRMED).
			Return(nil, &client.NetworkError{Op: "resolve expense", StatusCode: 500}).Once()

		snap, err := c.Confirm(context.Background(), models.CONFIRMED)

		var target *client.NetworkError
		assert.ErrorAs(t, err, &target)
		assert.Equal(t, Snapshot{State: AwaitingUserConfirmation, PendingExpenseID: pendingID}, snap)
		assert.True(t, PromptFor(snap).ActionsEnabled)

		// retry succeeds
		mockAPI.On("ResolveExpense", mock.Anything, pendingID, models.CONFIRMED).
			Return(confirmedExpense(api.ExpenseStatusCONFIRMED), nil).Once()
		snap, err = c.Confirm(context.Background(), models.CONFIRMED)
		require.NoError(t, err)
		assert.Equal(t, Idle, snap.State)
	})

	t.Run("Not Found Clears Session", func(t *testing.T) {
		mockAPI := mocks.NewExpenseAPI(t)
		c := awaitingConfirmation(t, mockAPI)
		mockAPI.On("ResolveExpense", mock.Anything, pendingID, models.CONFIRMED).
			Return(nil, models.ErrNotFound).Once()

		snap, err := c.Confirm(context.Background(), models.CONFIRMED)

		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Equal(t, Snapshot{State: Idle}, snap)
	})

	t.Run("Nothing To Confirm", func(t *testing.T) {
		mockAPI := mocks.NewExpenseAPI(t)
		c := NewController(mockAPI)

		snap, err := c.Confirm(context.Background(), models.CONFIRMED)

		assert.ErrorIs(t, err, ErrNoPendingPayment)
		assert.Equal(t, Snapshot{State: Idle}, snap)
		mockAPI.AssertNotCalled(t, "ResolveExpense", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid Outcome", func(t *testing.T) {
		mockAPI := mocks.NewExpenseAPI(t)
		c := awaitingConfirmation(t, mockAPI)

		snap, err := c.Confirm(context.Background(), models.EXPIRED)

		assert.ErrorIs(t, err, models.ErrValidation)
		assert.Equal(t, AwaitingUserConfirmation, snap.State)
		mockAPI.AssertNotCalled(t, "ResolveExpense", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDismiss(t *testing.T) {
	t.Run("Clears Without Cancelling", func(t *testing.T) {
		mockAPI := mocks.NewExpenseAPI(t)
		c := awaitingConfirmation(t, mockAPI)

		assert.True(t, c.Dismiss())

		assert.Equal(t, Snapshot{State: Idle}, c.Snapshot())
		mockAPI.AssertNotCalled(t, "ResolveExpense", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Ignored While Confirming", func(t *testing.T) {
		mockAPI := mocks.NewExpenseAPI(t)
		c := awaitingConfirmation(t, mockAPI)
		called := make(chan struct{})
		release := make(chan struct{})
		mockAPI.On("ResolveExpense", mock.Anything, pendingID, models.CONFIRMED).
			Run(func(args mock.Arguments) {
				close(called)
				<-release
			}).
			Return(confirmedExpense(api.ExpenseStatusCONFIRMED), nil).Once()

		done := make(chan error, 1)
		go func() {
			_, err := c.Confirm(context.Background(), models.CONFIRMED)
			done <- err
		}()
		<-called

		before := c.Snapshot()
		assert.False(t, c.Dismiss())
		assert.Equal(t, before, c.Snapshot())

		close(release)
		require.NoError(t, <-done)
		assert.Equal(t, Snapshot{State: Idle}, c.Snapshot())
	})

	t.Run("Idle Is No-Op", func(t *testing.T) {
		c := NewController(mocks.NewExpenseAPI(t))
		assert.False(t, c.Dismiss())
	})
}

func TestResume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	t.Run("Restores Pending Expense After Restart", func(t *testing.T) {
		store, err := OpenSQLite(path)
		require.NoError(t, err)

		mockAPI := mocks.NewExpenseAPI(t)
		mockAPI.On("InitiateExpense", mock.Anything, mock.Anything).Return(pendingID, nil).Once()
		first := NewController(mockAPI, WithPersister(store))
		_, err = first.Initiate(context.Background(), testRequest)
		require.NoError(t, err)
		require.NoError(t, store.Close())

		reopened, err := OpenSQLite(path)
		require.NoError(t, err)
		defer reopened.Close()

		second := NewController(mockAPI, WithPersister(reopened))
		snap, err := second.Resume(context.Background())

		require.NoError(t, err)
		assert.Equal(t, Snapshot{State: AwaitingReturn, PendingExpenseID: pendingID}, snap)

		assert.True(t, second.OnPossibleReturn())
		mockAPI.On("ResolveExpense", mock.Anything, pendingID, models.CONFIRMED).
			Return(confirmedExpense(api.ExpenseStatusCONFIRMED), nil).Once()
		_, err = second.Confirm(context.Background(), models.CONFIRMED)
		require.NoError(t, err)

		stored, err := reopened.Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("Nothing Stored", func(t *testing.T) {
		c := NewController(mocks.NewExpenseAPI(t))
		snap, err := c.Resume(context.Background())
		require.NoError(t, err)
		assert.Equal(t, Snapshot{State: Idle}, snap)
	})
}

func TestOnChange(t *testing.T) {
	mockAPI := mocks.NewExpenseAPI(t)
	mockAPI.On("InitiateExpense", mock.Anything, mock.Anything).Return(pendingID, nil).Once()
	c := NewController(mockAPI)

	var states []State
	unsubscribe := c.OnChange(func(s Snapshot) { states = append(states, s.State) })

	_, err := c.Initiate(context.Background(), testRequest)
	require.NoError(t, err)
	unsubscribe()
	c.OnPossibleReturn()

	assert.Equal(t, []State{AwaitingServerAck, AwaitingReturn}, states)
}
