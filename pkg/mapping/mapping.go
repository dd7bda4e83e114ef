package mapping

import (
	"fmt"
	"strings"

	"github.com/chris/upi-expense-tracker/pkg/api"
	"github.com/chris/upi-expense-tracker/pkg/models"
	"github.com/google/uuid"
)

// ToApiExpense converts a domain PendingExpense model to an API Expense model.
func ToApiExpense(expense *models.PendingExpense) *api.Expense {
	id, _ := uuid.Parse(expense.Id)
	return &api.Expense{
		Id:          id,
		Amount:      expense.Amount.String(),
		Category:    expense.Category,
		Description: expense.Description,
		Status:      api.ExpenseStatus(expense.Status),
		CreatedAt:   expense.CreatedAt,
		ResolvedAt:  expense.ResolvedAt,
	}
}

// ToDomainPendingExpense converts an API NewUpiExpense request into a domain PendingExpense.
// Server-side fields (id, status, timestamps) are filled in by the store.
func ToDomainPendingExpense(newExpense *api.NewUpiExpense, ownerID string) (*models.PendingExpense, error) {
	amount, err := models.ParseAmount(strings.TrimSpace(newExpense.Amount))
	if err != nil {
		return nil, err
	}
	category := strings.TrimSpace(newExpense.Category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", models.ErrValidation)
	}

	description := ""
	if newExpense.Description != nil {
		description = strings.TrimSpace(*newExpense.Description)
	}

	return &models.PendingExpense{
		OwnerId:     ownerID,
		Amount:      amount,
		Category:    category,
		Description: description,
	}, nil
}

// ToDomainOutcome converts the reported payment outcome to a domain status.
func ToDomainOutcome(resolution *api.ExpenseResolution) (models.ExpenseStatus, error) {
	status := models.ExpenseStatus(resolution.Status)
	if !status.IsResolution() {
		return "", fmt.Errorf("%w: status must be CONFIRMED or CANCELLED", models.ErrValidation)
	}
	return status, nil
}

// ToApiLedger converts a list of confirmed expenses to the API ledger view with its total.
func ToApiLedger(expenses []models.PendingExpense) *api.ExpenseLedger {
	ledger := &api.ExpenseLedger{}
	ledger.Data.Expenses = make([]api.Expense, len(expenses))
	amounts := make([]models.Amount, len(expenses))
	for i := range expenses {
		ledger.Data.Expenses[i] = *ToApiExpense(&expenses[i])
		amounts[i] = expenses[i].Amount
	}
	ledger.Data.Total = models.Sum(amounts...).String()
	return ledger
}

// ToDomainExpense converts an API Expense back to the domain model.
func ToDomainExpense(expense *api.Expense) (*models.PendingExpense, error) {
	amount, err := models.ParseAmount(expense.Amount)
	if err != nil {
		return nil, err
	}
	return &models.PendingExpense{
		Id:          expense.Id.String(),
		Amount:      amount,
		Category:    expense.Category,
		Description: expense.Description,
		Status:      models.ExpenseStatus(expense.Status),
		CreatedAt:   expense.CreatedAt,
		ResolvedAt:  expense.ResolvedAt,
	}, nil
}
