package scheduler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SQSAPI is the subset of the SQS client used by SQSScheduler.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSScheduler queues expiry requests on SQS for the expiry lambda.
type SQSScheduler struct {
	Client   SQSAPI
	QueueURL string
}

// NewSQSScheduler creates a new SQSScheduler.
func NewSQSScheduler(client SQSAPI, queueURL string) *SQSScheduler {
	return &SQSScheduler{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ ExpiryScheduler = (*SQSScheduler)(nil)

// ScheduleExpiry enqueues req. The expense ID also travels as a message
// attribute so stuck messages can be traced without decoding the body.
func (s *SQSScheduler) ScheduleExpiry(ctx context.Context, req ExpiryRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal expiry request for SQS: %w", err)
	}

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.QueueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"expenseId": {DataType: aws.String("String"), StringValue: aws.String(req.ExpenseId)},
		},
	}
	if _, err := s.Client.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("failed to send message to SQS for expense %s: %w", req.ExpenseId, err)
	}
	return nil
}

// DecodeExpiryRequest parses the body of a queued expiry request.
func DecodeExpiryRequest(body string) (ExpiryRequest, error) {
	var req ExpiryRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return ExpiryRequest{}, fmt.Errorf("failed to unmarshal expiry request: %w", err)
	}
	if req.ExpenseId == "" || req.Cutoff.IsZero() {
		return ExpiryRequest{}, fmt.Errorf("expiry request is missing expenseId or cutoff")
	}
	return req, nil
}
