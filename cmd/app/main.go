package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/upi-expense-tracker/pkg/config"
	"github.com/chris/upi-expense-tracker/pkg/handlers"
	"github.com/chris/upi-expense-tracker/pkg/middleware"
	"github.com/chris/upi-expense-tracker/pkg/storage"
	dydbstore "github.com/chris/upi-expense-tracker/pkg/storage/dynamodb"
	"github.com/chris/upi-expense-tracker/pkg/storage/memory"
	"github.com/chris/upi-expense-tracker/pkg/websockets"
)

func main() {
	// Load environment variables from .env file
	config.LoadDotEnv()

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	tokens, err := middleware.ParseStaticTokens(cfg.AuthTokens)
	if err != nil {
		log.Fatalf("invalid AUTH_TOKENS: %v", err)
	}
	if len(tokens) == 0 {
		log.Fatal("AUTH_TOKENS environment variable not set")
	}

	// Create our storage implementation
	var store storage.ApiStore
	switch cfg.StorageBackend {
	case config.BackendMemory:
		store = memory.NewStore()
	default:
		awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
		if err != nil {
			log.Fatalf("unable to load SDK config, %v", err)
		}
		dynamoStore := dydbstore.New(dynamodb.NewFromConfig(awsCfg), cfg.ExpensesTableName, cfg.CategoriesTableName)
		dynamoStore.Logger = logger
		store = dynamoStore
	}

	if err := storage.SeedCategories(context.TODO(), store, tokens.Users(), cfg.SeedCategories); err != nil {
		log.Fatalf("failed to seed categories: %v", err)
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Store:    store,
		Hub:      websockets.NewHub(logger),
		Verifier: tokens,
		Logger:   logger,
	})

	logger.Info("Starting server", "port", cfg.HTTPPort, "storageBackend", cfg.StorageBackend)

	// Start the server
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
