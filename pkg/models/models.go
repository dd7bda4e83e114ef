package models

import (
	"time"
)

// ExpenseStatus defines the possible states of a pending expense.
type ExpenseStatus string

const (
	PENDING   ExpenseStatus = "PENDING"
	CONFIRMED ExpenseStatus = "CONFIRMED"
	CANCELLED ExpenseStatus = "CANCELLED"
	EXPIRED   ExpenseStatus = "EXPIRED"
)

// IsResolution reports whether s is an outcome a user may report for a payment.
func (s ExpenseStatus) IsResolution() bool {
	return s == CONFIRMED || s == CANCELLED
}

// PendingExpense represents the internal domain model for an expense created
// before the UPI payment outcome is known.
// It includes dynamodbav tags for marshalling.
type PendingExpense struct {
	Id          string        `dynamodbav:"id"`
	OwnerId     string        `dynamodbav:"owner_id"`
	Amount      Amount        `dynamodbav:"amount"`
	Category    string        `dynamodbav:"category"`
	Description string        `dynamodbav:"description"`
	Status      ExpenseStatus `dynamodbav:"status"`
	CreatedAt   time.Time     `dynamodbav:"created_at"`
	ResolvedAt  *time.Time    `dynamodbav:"resolved_at,omitempty"`
}

// Category is an expense category owned by a user.
type Category struct {
	OwnerId   string    `dynamodbav:"owner_id"`
	Name      string    `dynamodbav:"name"`
	CreatedAt time.Time `dynamodbav:"created_at"`
}
