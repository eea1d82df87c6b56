package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"costengine/internal/costbasis"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Cost basis policy applied to every batch.
	CostBasisMethod costbasis.Method

	// Optional shared key for pipeline callers. Empty disables the check.
	PipelineAPIKey string

	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string
}

var appConfig *Config

// Load loads configuration from environment variables. An unrecognized
// COST_BASIS_METHOD is a fatal configuration error, never downgraded to
// a per-transaction failure.
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	method, err := costbasis.ParseMethod(getEnv("COST_BASIS_METHOD", costbasis.MethodFIFO.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid COST_BASIS_METHOD: %w", err)
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		CostBasisMethod: method,
		PipelineAPIKey:  getEnv("PIPELINE_API_KEY", ""),

		// Database
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "costengine"),
		DBPassword: getEnv("DB_PASSWORD", "costengine"),
		DBName:     getEnv("DB_NAME", "costengine"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "costengine.db"),
	}

	switch config.DBDriver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q (use sqlite or postgres)", config.DBDriver)
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
