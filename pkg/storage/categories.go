package storage

import (
	"context"

	"github.com/chris/upi-expense-tracker/pkg/models"
)

// CategoryWriter seeds the categories a pending expense may reference.
// Category management itself lives outside this service.
type CategoryWriter interface {
	PutCategory(ctx context.Context, category *models.Category) error
}
