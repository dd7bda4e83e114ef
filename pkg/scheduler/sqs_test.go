package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/upi-expense-tracker/pkg/scheduler"
	"github.com/chris/upi-expense-tracker/pkg/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduleExpiry(t *testing.T) {
	cutoff := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	req := scheduler.ExpiryRequest{ExpenseId: "e1", Cutoff: cutoff}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		s := scheduler.NewSQSScheduler(mockClient, "https://sqs.local/expiry")

		var sentBody string
		mockClient.On("SendMessage", mock.Anything, mock.MatchedBy(func(in *sqs.SendMessageInput) bool {
			sentBody = aws.ToString(in.MessageBody)
			return aws.ToString(in.QueueUrl) == "https://sqs.local/expiry" &&
				aws.ToString(in.MessageAttributes["expenseId"].StringValue) == "e1"
		})).Return(&sqs.SendMessageOutput{}, nil)

		require.NoError(t, s.ScheduleExpiry(context.Background(), req))

		decoded, err := scheduler.DecodeExpiryRequest(sentBody)
		require.NoError(t, err)
		assert.Equal(t, req, decoded)
		mockClient.AssertExpectations(t)
	})

	t.Run("Send Fails", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		s := scheduler.NewSQSScheduler(mockClient, "https://sqs.local/expiry")
		mockClient.On("SendMessage", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

		err := s.ScheduleExpiry(context.Background(), req)

		assert.ErrorContains(t, err, "failed to send message to SQS")
	})
}

func TestDecodeExpiryRequest(t *testing.T) {
	_, err := scheduler.DecodeExpiryRequest(`{"expenseId":"e1"}`)
	assert.Error(t, err)

	_, err = scheduler.DecodeExpiryRequest(`not-json`)
	assert.Error(t, err)
}
