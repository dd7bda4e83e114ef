package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/upi-expense-tracker/pkg/models"
)

// PutCategory creates or overwrites a category record.
func (s *Store) PutCategory(ctx context.Context, category *models.Category) error {
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}
	item, err := attributevalue.MarshalMap(category)
	if err != nil {
		return fmt.Errorf("failed to marshal category: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.CategoriesTableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put category: %w", err)
	}
	return nil
}
