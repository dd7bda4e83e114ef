package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/upi-expense-tracker/pkg/models"
	"github.com/chris/upi-expense-tracker/pkg/storage"
)

// ResolvePendingExpense moves a PENDING expense to the reported outcome with a single
// conditional update. Only one writer can win; every later call gets the stored record back.
func (s *Store) ResolvePendingExpense(ctx context.Context, id, ownerID string, outcome models.ExpenseStatus) (*models.PendingExpense, bool, error) {
	if !outcome.IsResolution() {
		return nil, false, storage.ErrInvalidOutcome
	}

	now := time.Now().UTC()
	outcomeAV, err := attributevalue.Marshal(outcome)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal outcome: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal timestamp for resolution: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.ExpensesTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :outcome, resolved_at = :now"),
		ConditionExpression: aws.String("#status = :pending_status AND owner_id = :owner"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":outcome":        outcomeAV,
			":now":            nowAV,
			":pending_status": &types.AttributeValueMemberS{Value: string(models.PENDING)},
			":owner":          &types.AttributeValueMemberS{Value: ownerID},
		},
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return s.alreadyResolved(ctx, id, ownerID, condCheckFailed.Item)
		}
		return nil, false, fmt.Errorf("%w: failed to resolve pending expense: %w", models.ErrPersistence, err)
	}

	var expense models.PendingExpense
	if err := attributevalue.UnmarshalMap(result.Attributes, &expense); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal resolved expense: %w", err)
	}

	s.logger().InfoContext(ctx, "pending expense resolved", "expense_id", id, "status", expense.Status)
	return &expense, true, nil
}

// alreadyResolved interprets the item returned with a failed condition check.
// No item, or an item owned by someone else, means there is nothing the caller can resolve.
func (s *Store) alreadyResolved(ctx context.Context, id, ownerID string, item map[string]types.AttributeValue) (*models.PendingExpense, bool, error) {
	if len(item) == 0 {
		return nil, false, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}

	var existing models.PendingExpense
	if err := attributevalue.UnmarshalMap(item, &existing); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal existing expense: %w", err)
	}
	if existing.OwnerId != ownerID {
		return nil, false, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}

	s.logger().InfoContext(ctx, "pending expense already resolved", "expense_id", id, "status", existing.Status)
	return &existing, false, nil
}
