package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/upi-expense-tracker/pkg/models"
)

const (
	statusCreatedAtIndex = "status-created_at-index"
	ownerIDIndex         = "owner_id-index"
)

// ListStalePendingExpenses retrieves expenses that have been PENDING for longer than olderThan.
func (s *Store) ListStalePendingExpenses(ctx context.Context, olderThan time.Duration) ([]models.PendingExpense, error) {
	// Calculate the cutoff time.
	cutoffAV, err := attributevalue.Marshal(cutoffFor(olderThan))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.ExpensesTableName),
		IndexName:              aws.String(statusCreatedAtIndex),
		KeyConditionExpression: aws.String("#status = :status AND created_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.PENDING)},
			":cutoff": cutoffAV,
		},
	}

	expenses, err := s.queryAll(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for stale pending expenses: %w", err)
	}
	return expenses, nil
}

// ListConfirmedExpenses retrieves the CONFIRMED expenses of a user. Pending,
// cancelled and expired expenses never appear in the ledger.
func (s *Store) ListConfirmedExpenses(ctx context.Context, ownerID string) ([]models.PendingExpense, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.ExpensesTableName),
		IndexName:              aws.String(ownerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :owner"),
		FilterExpression:       aws.String("#status = :confirmed"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner":     &types.AttributeValueMemberS{Value: ownerID},
			":confirmed": &types.AttributeValueMemberS{Value: string(models.CONFIRMED)},
		},
	}

	expenses, err := s.queryAll(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for expenses by owner ID: %w", err)
	}
	return expenses, nil
}

// queryAll follows LastEvaluatedKey until every page of the query has been read.
func (s *Store) queryAll(ctx context.Context, input *dynamodb.QueryInput) ([]models.PendingExpense, error) {
	var expenses []models.PendingExpense
	for {
		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []models.PendingExpense
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal expenses: %w", err)
		}
		expenses = append(expenses, page...)

		if len(result.LastEvaluatedKey) == 0 {
			return expenses, nil
		}
		next := *input
		next.ExclusiveStartKey = result.LastEvaluatedKey
		input = &next
	}
}

// cutoffFor returns the creation time before which a PENDING expense counts as stale.
// Timestamps are stored at second precision so that their string form sorts chronologically.
func cutoffFor(olderThan time.Duration) time.Time {
	return time.Now().UTC().Add(-olderThan).Truncate(time.Second)
}
