// Package config reads service and client settings from the environment.
// A .env file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends.
const (
	BackendDynamoDB = "dynamodb"
	BackendMemory   = "memory"
)

const defaultPendingExpiry = 24 * time.Hour

// Server configures the HTTP API and the expiry lambdas.
type Server struct {
	HTTPPort            string
	StorageBackend      string
	ExpensesTableName   string
	CategoriesTableName string
	SQSQueueURL         string
	PendingExpiryAfter  time.Duration
	AuthTokens          string
	SeedCategories      []string
	LogLevel            slog.Level
}

// Client configures the upipay terminal client.
type Client struct {
	APIURL    string
	Token     string
	SessionDB string
	LogLevel  slog.Level
}

// LoadDotEnv loads .env if it exists. A missing file is not an error.
func LoadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}
}

// LoadServer reads the server configuration.
func LoadServer() (*Server, error) {
	cfg := &Server{
		HTTPPort:            getenv("HTTP_PORT", "8080"),
		StorageBackend:      strings.ToLower(getenv("STORAGE_BACKEND", BackendDynamoDB)),
		ExpensesTableName:   os.Getenv("DYNAMODB_EXPENSES_TABLE_NAME"),
		CategoriesTableName: os.Getenv("DYNAMODB_CATEGORIES_TABLE_NAME"),
		SQSQueueURL:         os.Getenv("SQS_QUEUE_URL"),
		AuthTokens:          os.Getenv("AUTH_TOKENS"),
		SeedCategories:      splitList(os.Getenv("SEED_CATEGORIES")),
	}

	var err error
	if cfg.PendingExpiryAfter, err = parseDuration("PENDING_EXPIRY_AFTER", defaultPendingExpiry); err != nil {
		return nil, err
	}
	if cfg.LogLevel, err = parseLevel(os.Getenv("LOG_LEVEL")); err != nil {
		return nil, err
	}

	switch cfg.StorageBackend {
	case BackendDynamoDB:
		if cfg.ExpensesTableName == "" || cfg.CategoriesTableName == "" {
			return nil, fmt.Errorf("one or more DynamoDB table name environment variables are not set")
		}
	case BackendMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}
	return cfg, nil
}

// LoadClient reads the terminal client configuration.
func LoadClient() (*Client, error) {
	cfg := &Client{
		APIURL:    strings.TrimRight(getenv("UPIPAY_API_URL", "http://localhost:8080"), "/"),
		Token:     os.Getenv("UPIPAY_TOKEN"),
		SessionDB: os.Getenv("UPIPAY_SESSION_DB"),
	}
	var err error
	if cfg.LogLevel, err = parseLevel(os.Getenv("LOG_LEVEL")); err != nil {
		return nil, err
	}
	if cfg.SessionDB == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate config directory: %w", err)
		}
		cfg.SessionDB = dir + string(os.PathSeparator) + "upipay" + string(os.PathSeparator) + "session.db"
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive duration", key, raw)
	}
	return d, nil
}

func parseLevel(raw string) (slog.Level, error) {
	if strings.TrimSpace(raw) == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
	}
	return level, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
