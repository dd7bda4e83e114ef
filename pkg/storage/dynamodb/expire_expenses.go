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
)

// ExpirePendingExpense atomically moves an expense from PENDING to EXPIRED when it was created before cutoff.
// It returns false when the expense was resolved in the meantime.
func (s *Store) ExpirePendingExpense(ctx context.Context, id string, cutoff time.Time) (bool, error) {
	nowAV, err := attributevalue.Marshal(time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to marshal timestamp for expiry: %w", err)
	}
	cutoffAV, err := attributevalue.Marshal(cutoff.UTC().Truncate(time.Second))
	if err != nil {
		return false, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.ExpensesTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :expired_status, resolved_at = :now"),
		ConditionExpression: aws.String("#status = :pending_status AND created_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expired_status": &types.AttributeValueMemberS{Value: string(models.EXPIRED)},
			":pending_status": &types.AttributeValueMemberS{Value: string(models.PENDING)},
			":now":            nowAV,
			":cutoff":         cutoffAV,
		},
	}

	_, err = s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return false, nil
		}
		return false, fmt.Errorf("%w: failed to expire pending expense: %w", models.ErrPersistence, err)
	}
	return true, nil
}

// ExpirePending expires every PENDING expense older than olderThan. A failure on one
// expense does not stop the batch; the first error is returned alongside the count.
func (s *Store) ExpirePending(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := cutoffFor(olderThan)
	stale, err := s.ListStalePendingExpenses(ctx, olderThan)
	if err != nil {
		return 0, err
	}

	var firstErr error
	count := 0
	for _, expense := range stale {
		expired, err := s.ExpirePendingExpense(ctx, expense.Id, cutoff)
		if err != nil {
			s.logger().ErrorContext(ctx, "failed to expire pending expense", "expense_id", expense.Id, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if expired {
			count++
		}
	}
	return count, firstErr
}
