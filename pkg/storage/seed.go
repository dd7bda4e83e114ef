package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/chris/upi-expense-tracker/pkg/models"
)

// SeedCategories writes each named category for each owner. Existing
// categories are overwritten, so seeding is safe to repeat on start-up.
func SeedCategories(ctx context.Context, w CategoryWriter, owners, names []string) error {
	now := time.Now().UTC()
	for _, owner := range owners {
		for _, name := range names {
			if err := w.PutCategory(ctx, &models.Category{OwnerId: owner, Name: name, CreatedAt: now}); err != nil {
				return fmt.Errorf("failed to seed category %q for %s: %w", name, owner, err)
			}
		}
	}
	return nil
}
