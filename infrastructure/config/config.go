package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/JuanSebastianGarcia23/calzado/pkg/utils"
)

// Storage backends
const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

// Config holds all application configuration. It is read once at process
// start.
type Config struct {
	// Server configuration
	ServerAddress string `validate:"required"`
	Environment   string `validate:"oneof=development staging production"`

	// Origins allowed by the local server's CORS policy
	AllowedOrigins []string

	// AWS configuration
	AWSRegion        string `validate:"required"`
	DynamoDBTable    string `validate:"required"`
	DynamoDBEndpoint string `validate:"omitempty,url"`
	StorageBackend   string `validate:"oneof=dynamodb memory"`
	EventBusName     string

	// Logging
	LogLevel string `validate:"oneof=debug info warn error"`

	// Feature flags
	EnableMetrics    bool
	MetricsNamespace string
	EnableTracing    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	environment := getEnv("ENVIRONMENT", "development")

	cfg := &Config{
		ServerAddress:    getEnv("SERVER_ADDRESS", ":8080"),
		Environment:      environment,
		AllowedOrigins:   getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		AWSRegion:        getEnv("AWS_REGION", getEnv("AWS_DEFAULT_REGION", "us-east-2")),
		DynamoDBTable:    getEnv("TABLE_NAME", "calzado"),
		DynamoDBEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),
		StorageBackend:   getEnv("STORAGE_BACKEND", StorageDynamoDB),
		EventBusName:     getEnv("EVENT_BUS_NAME", ""),

		LogLevel:         getEnv("LOG_LEVEL", "info"),
		EnableMetrics:    getEnvBool("ENABLE_METRICS", false),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", fmt.Sprintf("Calzado/%s", environment)),
		EnableTracing:    getEnvBool("ENABLE_TRACING", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UsesMemoryStorage reports whether items are kept in process memory
func (c *Config) UsesMemoryStorage() bool {
	return c.StorageBackend == StorageMemory
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvList splits a comma separated environment variable
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
