// internal/infrastructure/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Airport directory sources
const (
	AirportSourcePostgres = "postgres"
	AirportSourceFile     = "file"
)

// DefaultHubAirports is the hub list used by route statistics
var DefaultHubAirports = []string{"DFW", "CLT", "MIA", "ORD", "PHX", "LAX", "JFK", "PHL", "DCA"}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion       string `validate:"required"`
	MetricsNamespace string `validate:"required"`
	LogLevel         string `validate:"oneof=debug info warn error"`

	// Server
	Port         string        `validate:"required,numeric"`
	ReadTimeout  time.Duration `validate:"gt=0"`
	WriteTimeout time.Duration `validate:"gt=0"`

	// MongoDB
	MongoURI          string `validate:"required"`
	MongoDB           string `validate:"required"`
	MongoUser         string
	MongoPassword     string
	HistoryCollection string `validate:"required"`

	// Airport directory
	AirportSource string `validate:"oneof=postgres file"`
	PostgresURI   string `validate:"required_if=AirportSource postgres"`
	AirportFile   string `validate:"required_if=AirportSource file"`

	// Analytics
	PatternWorkers int      `validate:"min=1,max=8"`
	HubAirports    []string `validate:"dive,len=3,alpha"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:       getEnv("APP_VERSION", "1.0.0"),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "travel_ledger"),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", "info")),

		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI:          getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:           getEnv("MONGO_DB", "travel_ledger"),
		MongoUser:         getEnv("MONGO_USER", ""),
		MongoPassword:     getEnv("MONGO_PASSWORD", ""),
		HistoryCollection: getEnv("HISTORY_COLLECTION", "travel_histories"),

		AirportSource: strings.ToLower(getEnv("AIRPORT_SOURCE", AirportSourcePostgres)),
		PostgresURI:   getEnv("POSTGRES_DSN", ""),
		AirportFile:   getEnv("AIRPORT_FILE", ""),

		PatternWorkers: getEnvAsInt("PATTERN_WORKERS", 4),
		HubAirports:    getEnvAsList("HUB_AIRPORTS", DefaultHubAirports),
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.ToUpper(strings.TrimSpace(v)); v != "" {
			values = append(values, v)
		}
	}
	return values
}
