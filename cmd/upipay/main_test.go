package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chris/upi-expense-tracker/pkg/handlers"
	"github.com/chris/upi-expense-tracker/pkg/middleware"
	"github.com/chris/upi-expense-tracker/pkg/storage"
	"github.com/chris/upi-expense-tracker/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setup starts an API server over the in-memory store and points the CLI at it.
func setup(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, storage.SeedCategories(context.Background(), store, []string{"user-1"}, []string{"Food"}))

	server := httptest.NewServer(handlers.NewRouter(handlers.RouterConfig{
		Store:    store,
		Verifier: middleware.StaticTokens{"tok-1": "user-1"},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}))
	t.Cleanup(server.Close)

	t.Setenv("UPIPAY_API_URL", server.URL)
	t.Setenv("UPIPAY_TOKEN", "tok-1")
	t.Setenv("UPIPAY_SESSION_DB", filepath.Join(t.TempDir(), "session.db"))
	t.Setenv("LOG_LEVEL", "error")
	return store
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

var payArgs = []string{"pay", "--to", "shop.owner@okaxis", "--name", "Ravi's Café", "--amount", "250.5", "--category", "Food", "--no-open"}

func TestPayInteractive(t *testing.T) {
	t.Run("Confirm Logs Expense", func(t *testing.T) {
		setup(t)

		out, err := run(t, "\ny\n", append(payArgs, "--interactive")...)

		require.NoError(t, err)
		assert.Contains(t, out, "upi://pay?pa=shop.owner%40okaxis&pn=Ravis%20Caf&am=250.50&cu=INR")
		assert.Contains(t, out, "Did the payment go through?")
		assert.Contains(t, out, "Expense logged.")

		out, err = run(t, "", "ledger")
		require.NoError(t, err)
		assert.Contains(t, out, "UPI to shop.owner@okaxis")
		assert.Contains(t, out, "250.50")
	})

	t.Run("Dismiss Logs Nothing", func(t *testing.T) {
		setup(t)

		out, err := run(t, "\nd\n", append(payArgs, "--interactive")...)

		require.NoError(t, err)
		assert.Contains(t, out, "Dismissed.")

		out, err = run(t, "", "ledger")
		require.NoError(t, err)
		assert.NotContains(t, out, "shop.owner@okaxis")
		assert.Contains(t, out, "0.00")

		_, err = run(t, "", "resume")
		assert.ErrorIs(t, err, errNoOpenPayment)
	})

	t.Run("Closed Stdin Leaves Payment Open", func(t *testing.T) {
		setup(t)

		out, err := run(t, "", append(payArgs, "--interactive")...)
		require.NoError(t, err)
		assert.Contains(t, out, "upipay resume")

		out, err = run(t, "n\n", "resume")
		require.NoError(t, err)
		assert.Contains(t, out, "Nothing was logged.")
	})

	t.Run("Unknown Answer Asks Again", func(t *testing.T) {
		setup(t)

		out, err := run(t, "\nmaybe\nyes\n", append(payArgs, "--interactive")...)

		require.NoError(t, err)
		assert.Contains(t, out, "Please answer y, n or d.")
		assert.Contains(t, out, "Expense logged.")
	})
}

func TestPayThenConfirm(t *testing.T) {
	setup(t)

	out, err := run(t, "", payArgs...)
	require.NoError(t, err)
	assert.Contains(t, out, "Pending expense")

	_, err = run(t, "", payArgs...)
	assert.ErrorContains(t, err, "is still open")

	out, err = run(t, "", "confirm")
	require.NoError(t, err)
	assert.Contains(t, out, "Expense logged.")

	_, err = run(t, "", "cancel")
	assert.ErrorIs(t, err, errNoOpenPayment)

	out, err = run(t, "", "ledger")
	require.NoError(t, err)
	assert.Contains(t, out, "250.50")
}

func TestPayFromQR(t *testing.T) {
	setup(t)

	out, err := run(t, "", "pay", "--qr", "upi://pay?pa=tea.stall@ybl&pn=Chai%20Point&cu=INR", "--amount", "80", "--category", "Food", "--no-open")

	require.NoError(t, err)
	assert.Contains(t, out, "upi://pay?pa=tea.stall%40ybl&pn=Chai%20Point&am=80.00&cu=INR")
}

func TestPayValidation(t *testing.T) {
	setup(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"Invalid UPI ID", []string{"pay", "--to", "shop", "--amount", "10", "--category", "Food", "--no-open"}, "Please enter a valid UPI ID"},
		{"Missing Amount", []string{"pay", "--to", "shop@okaxis", "--category", "Food", "--no-open"}, "Amount is required."},
		{"Missing Category", []string{"pay", "--to", "shop@okaxis", "--amount", "10", "--no-open"}, "Category is required."},
		{"Unknown Category", []string{"pay", "--to", "shop@okaxis", "--amount", "10", "--category", "Rent", "--no-open"}, "category"},
		{"Not A UPI QR", []string{"pay", "--qr", "https://example.com", "--amount", "10", "--category", "Food"}, "not a UPI payment code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	_, err := run(t, "", tests[0].args...)
	assert.Equal(t, 2, exitCode(err))

	// nothing was left open by the failed attempts
	_, err = run(t, "", "confirm")
	assert.ErrorIs(t, err, errNoOpenPayment)
}

func TestMissingToken(t *testing.T) {
	setup(t)
	t.Setenv("UPIPAY_TOKEN", "")

	_, err := run(t, "", "ledger")

	assert.ErrorContains(t, err, "no API token")
	assert.Equal(t, 1, exitCode(err))
}

func TestResumeShowsOpenPayment(t *testing.T) {
	t.Run("Pending", func(t *testing.T) {
		setup(t)
		_, err := run(t, "", payArgs...)
		require.NoError(t, err)

		out, err := run(t, "y\n", "resume")

		require.NoError(t, err)
		assert.Contains(t, out, "Open payment: 250.50 INR for Food (UPI to shop.owner@okaxis)")
		assert.Contains(t, out, "Expense logged.")
	})

	t.Run("Expired On The Server", func(t *testing.T) {
		store := setup(t)
		_, err := run(t, "", payArgs...)
		require.NoError(t, err)

		ctx := context.Background()
		pending, err := store.ListStalePendingExpenses(ctx, -time.Hour)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		expired, err := store.ExpirePendingExpense(ctx, pending[0].Id, time.Now().Add(time.Hour))
		require.NoError(t, err)
		require.True(t, expired)

		out, err := run(t, "", "resume")

		require.NoError(t, err)
		assert.Contains(t, out, "is already expired. Nothing to confirm.")
		assert.NotContains(t, out, "Did the payment go through?")

		_, err = run(t, "", "confirm")
		assert.ErrorIs(t, err, errNoOpenPayment)
	})
}
