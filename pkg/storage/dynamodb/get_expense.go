package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/upi-expense-tracker/pkg/models"
)

// GetPendingExpense retrieves an expense from DynamoDB by its ID.
func (s *Store) GetPendingExpense(ctx context.Context, id string) (*models.PendingExpense, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal expense ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName:      &s.ExpensesTableName,
		Key:            key,
		ConsistentRead: aws.Bool(true),
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("%w: expense with ID %s not found", models.ErrNotFound, id)
	}

	var expense models.PendingExpense
	if err := attributevalue.UnmarshalMap(result.Item, &expense); err != nil {
		return nil, fmt.Errorf("failed to unmarshal expense: %w", err)
	}

	return &expense, nil
}
