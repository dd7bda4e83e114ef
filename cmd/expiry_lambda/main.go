package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/upi-expense-tracker/pkg/config"
	"github.com/chris/upi-expense-tracker/pkg/expiry"
	dydbstore "github.com/chris/upi-expense-tracker/pkg/storage/dynamodb"
)

var worker *expiry.Worker

func init() {
	// Load environment variables from .env file (useful for local testing).
	config.LoadDotEnv()

	// Initialize dependencies once.
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

	worker = &expiry.Worker{Store: store, Logger: logger}
}

func main() {
	// The function must be configured with ReportBatchItemFailures.
	lambda.Start(worker.HandleSQSEvent)
}
