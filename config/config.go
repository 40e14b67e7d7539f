package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, statement input, and the market-quote endpoint.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	STATEMENT_PATH=./data/activity.csv
//	SECTION_LABEL=Trades
//	QUOTE_BASE_URL=http://localhost:9090
//	QUOTE_TIMEOUT_MS=5000
//	QUOTE_MAX_RETRIES=3
//	AS_OF=2026-08-31
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Statement StatementConfig // Activity statement input settings
	Quote     QuoteConfig     // Market quote endpoint settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// StatementConfig defines where the brokerage activity statement is read from
// and which labeled section of it holds the trade rows.
//
// Fields:
//   - Path: path to the statement CSV file.
//   - SectionLabel: value in column 0 that marks trade rows (default "Trades").
//   - AsOf: optional fixed as-of date (YYYY-MM-DD). Empty means "today".
type StatementConfig struct {
	Path         string
	SectionLabel string
	AsOf         string
}

// QuoteConfig defines connection details for the market quote endpoint.
//
// Fields:
//   - BaseURL: base URL of the quote service.
//   - Timeout: per-request timeout.
//   - MaxRetries: bounded retry count for transient lookup failures.
type QuoteConfig struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("STATEMENT_PATH", "./data/activity.csv")
	viper.SetDefault("SECTION_LABEL", "Trades")
	viper.SetDefault("AS_OF", "")

	viper.SetDefault("QUOTE_BASE_URL", "http://localhost:9090")
	viper.SetDefault("QUOTE_TIMEOUT_MS", 5000)
	viper.SetDefault("QUOTE_MAX_RETRIES", 3)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Statement: StatementConfig{
			Path:         viper.GetString("STATEMENT_PATH"),
			SectionLabel: viper.GetString("SECTION_LABEL"),
			AsOf:         viper.GetString("AS_OF"),
		},
		Quote: QuoteConfig{
			BaseURL:    viper.GetString("QUOTE_BASE_URL"),
			Timeout:    time.Duration(viper.GetInt("QUOTE_TIMEOUT_MS")) * time.Millisecond,
			MaxRetries: viper.GetInt("QUOTE_MAX_RETRIES"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing ones in a slice.
//   - If any are missing, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Statement.Path == "" {
		missing = append(missing, "STATEMENT_PATH")
	}
	if AppConfig.Statement.SectionLabel == "" {
		missing = append(missing, "SECTION_LABEL")
	}
	if AppConfig.Quote.BaseURL == "" {
		missing = append(missing, "QUOTE_BASE_URL")
	}
	if AppConfig.Quote.Timeout <= 0 {
		missing = append(missing, "QUOTE_TIMEOUT_MS")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
