package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/upi-expense-tracker/pkg/models"
	"github.com/chris/upi-expense-tracker/pkg/storage"
	"github.com/google/uuid"
)

// CreatePendingExpense atomically checks that the category exists and creates a new PENDING expense record.
func (s *Store) CreatePendingExpense(ctx context.Context, expense *models.PendingExpense) (*models.PendingExpense, error) {
	if !expense.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", models.ErrValidation)
	}
	if expense.Category == "" {
		return nil, storage.ErrUnknownCategory
	}

	// 1. Complete the expense object with server-side details.
	expense.Id = uuid.New().String()
	expense.Status = models.PENDING
	expense.CreatedAt = time.Now().UTC().Truncate(time.Second)
	expense.ResolvedAt = nil

	s.logger().Log(ctx, slog.LevelDebug, "creating pending expense", "expense_id", expense.Id, "owner_id", expense.OwnerId)

	// Marshal the expense for the Put operation.
	expenseAV, err := attributevalue.MarshalMap(expense)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal expense: %w", models.ErrPersistence, err)
	}

	// 2. Construct the TransactWriteItems input.
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: The referenced category must exist for this owner.
				ConditionCheck: &types.ConditionCheck{
					TableName: aws.String(s.CategoriesTableName),
					Key: map[string]types.AttributeValue{
						"owner_id": &types.AttributeValueMemberS{Value: expense.OwnerId},
						"name":     &types.AttributeValueMemberS{Value: expense.Category},
					},
					ConditionExpression: aws.String("attribute_exists(#name)"),
					ExpressionAttributeNames: map[string]string{
						"#name": "name",
					},
				},
			},
			{
				// Operation 2: Create the new expense record.
				Put: &types.Put{
					TableName:           aws.String(s.ExpensesTableName),
					Item:                expenseAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	// 3. Execute the transaction.
	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			// The first operation is the category check.
			if len(tce.CancellationReasons) > 0 && aws.ToString(tce.CancellationReasons[0].Code) == "ConditionalCheckFailed" {
				return nil, storage.ErrUnknownCategory
			}
		}
		return nil, fmt.Errorf("%w: failed to execute transaction: %w", models.ErrPersistence, err)
	}

	return expense, nil
}
