package expenses

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/upi-expense-tracker/pkg/api"
	"github.com/chris/upi-expense-tracker/pkg/mapping"
	"github.com/chris/upi-expense-tracker/pkg/metrics"
	"github.com/chris/upi-expense-tracker/pkg/middleware"
	"github.com/chris/upi-expense-tracker/pkg/models"
	"github.com/chris/upi-expense-tracker/pkg/storage"
	"github.com/chris/upi-expense-tracker/pkg/websockets"
)

// ExpensesHandler holds the dependencies for the UPI expense handlers.
type ExpensesHandler struct {
	Store     storage.ApiStore
	Publisher websockets.Publisher
	Logger    *slog.Logger
}

// NewExpensesHandler creates a new ExpensesHandler.
func NewExpensesHandler(store storage.ApiStore, publisher websockets.Publisher, logger *slog.Logger) *ExpensesHandler {
	if publisher == nil {
		publisher = &websockets.NoOpPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpensesHandler{Store: store, Publisher: publisher, Logger: logger}
}

// InitiateUpiExpense creates the PENDING record the client must know before it redirects to the UPI app.
func (h *ExpensesHandler) InitiateUpiExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var newExpense api.NewUpiExpense
	if err := json.NewDecoder(r.Body).Decode(&newExpense); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	domainExpense, err := mapping.ToDomainPendingExpense(&newExpense, userID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.Store.CreatePendingExpense(r.Context(), domainExpense)
	if err != nil {
		h.Logger.ErrorContext(r.Context(), "failed to create pending expense", "owner_id", userID, "error", err)
		writeStoreError(w, err, "Failed to initiate payment")
		return
	}
	metrics.ExpensesInitiated.Inc()

	var resp api.InitiatedExpense
	resp.Data.ExpenseId = mapping.ToApiExpense(created).Id
	writeJSON(w, http.StatusCreated, resp)
}

// ResolveUpiExpense records the payer's reported outcome. Repeated calls return the stored record.
func (h *ExpensesHandler) ResolveUpiExpense(w http.ResponseWriter, r *http.Request, id api.ExpenseId) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var resolution api.ExpenseResolution
	if err := json.NewDecoder(r.Body).Decode(&resolution); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	outcome, err := mapping.ToDomainOutcome(&resolution)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	expense, changed, err := h.Store.ResolvePendingExpense(r.Context(), id.String(), userID, outcome)
	if err != nil {
		h.Logger.ErrorContext(r.Context(), "failed to resolve pending expense", "expense_id", id, "error", err)
		writeStoreError(w, err, "Failed to confirm payment")
		return
	}
	metrics.ObserveResolve(string(outcome), changed)

	if changed {
		h.publishResolved(r, userID, expense)
	}

	writeJSON(w, http.StatusOK, mapping.ToApiExpense(expense))
}

// GetUpiExpense returns one of the caller's expenses. Other users' expenses are reported as not found.
func (h *ExpensesHandler) GetUpiExpense(w http.ResponseWriter, r *http.Request, id api.ExpenseId) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	expense, err := h.Store.GetPendingExpense(r.Context(), id.String())
	if err == nil && expense.OwnerId != userID {
		err = fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	if err != nil {
		writeStoreError(w, err, "Failed to retrieve expense")
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiExpense(expense))
}

// ListExpenses returns the caller's ledger: confirmed expenses and their total.
func (h *ExpensesHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	expenses, err := h.Store.ListConfirmedExpenses(r.Context(), userID)
	if err != nil {
		h.Logger.ErrorContext(r.Context(), "failed to list expenses", "owner_id", userID, "error", err)
		writeStoreError(w, err, "Failed to retrieve expenses")
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiLedger(expenses))
}

func (h *ExpensesHandler) publishResolved(r *http.Request, userID string, expense *models.PendingExpense) {
	msg := websockets.Message{
		Type: websockets.MessageTypeExpenseResolved,
		Payload: websockets.ExpenseResolvedPayload{
			UserID:    userID,
			ExpenseID: expense.Id,
			Status:    string(expense.Status),
			Amount:    expense.Amount.String(),
		},
	}
	// Do not fail the request if the websocket message fails.
	if err := h.Publisher.Publish(r.Context(), userID, msg); err != nil {
		h.Logger.ErrorContext(r.Context(), "failed to publish websocket message", "expense_id", expense.Id, "error", err)
	}
}
