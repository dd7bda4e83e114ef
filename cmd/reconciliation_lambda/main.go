package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/upi-expense-tracker/pkg/config"
	"github.com/chris/upi-expense-tracker/pkg/expiry"
	"github.com/chris/upi-expense-tracker/pkg/scheduler"
	dydbstore "github.com/chris/upi-expense-tracker/pkg/storage/dynamodb"
)

var sweeper *expiry.Sweeper

func init() {
	// Load environment variables for local testing.
	config.LoadDotEnv()

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	store := dydbstore.New(dynamodb.NewFromConfig(awsCfg), cfg.ExpensesTableName, cfg.CategoriesTableName)
	store.Logger = logger

	sweeper = &expiry.Sweeper{Store: store, OlderThan: cfg.PendingExpiryAfter, Logger: logger}

	// Without a queue the sweep expires records itself.
	if cfg.SQSQueueURL != "" {
		sweeper.Scheduler = scheduler.NewSQSScheduler(sqs.NewFromConfig(awsCfg), cfg.SQSQueueURL)
	}
}

// HandleRequest is triggered by an EventBridge Schedule.
func HandleRequest(ctx context.Context) error {
	n, err := sweeper.Run(ctx)
	if err != nil {
		return err
	}
	sweeper.Logger.Info("Reconciliation process finished", "count", n)
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
