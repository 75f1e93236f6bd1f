package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string

	// Remote ledger API
	LedgerAPIBaseURL string
	LedgerAPIToken   string
	LedgerAPITimeout time.Duration
	LedgerQueryLimit int

	// BusinessLocation decides which calendar day "today" is for aging.
	BusinessLocation *time.Location
	FrontendBaseURL  string
	RateLimit        string // ulule/limiter formatted rate, e.g. "20-M"
}

const (
	defaultJWTSecret        = "a-very-secret-key-should-be-longer-and-random"
	defaultBusinessTimezone = "Asia/Ho_Chi_Minh"
	defaultLedgerTimeout    = 30 * time.Second
	defaultQueryLimit       = 500
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("LEDGER_API_BASE_URL", "http://localhost:8090/api")
	v.SetDefault("LEDGER_API_TOKEN", "")
	v.SetDefault("LEDGER_API_TIMEOUT", defaultLedgerTimeout.String())
	v.SetDefault("LEDGER_QUERY_LIMIT", defaultQueryLimit)
	v.SetDefault("BUSINESS_TIMEZONE", defaultBusinessTimezone)
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "20-M")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:      v.GetString("PGSQL_URL"),
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		LedgerAPIBaseURL: strings.TrimRight(v.GetString("LEDGER_API_BASE_URL"), "/"),
		LedgerAPIToken:   v.GetString("LEDGER_API_TOKEN"),
		LedgerQueryLimit: v.GetInt("LEDGER_QUERY_LIMIT"),
		FrontendBaseURL:  v.GetString("FRONTEND_BASE_URL"),
		RateLimit:        v.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL not set. Posting attempts will not be persisted.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	if cfg.LedgerAPIBaseURL == "" {
		return nil, fmt.Errorf("LEDGER_API_BASE_URL must be set")
	}

	timeoutStr := v.GetString("LEDGER_API_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		log.Printf("Warning: Invalid value for LEDGER_API_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, defaultLedgerTimeout)
		timeout = defaultLedgerTimeout
	}
	cfg.LedgerAPITimeout = timeout

	if cfg.LedgerQueryLimit <= 0 {
		log.Printf("Warning: Invalid value for LEDGER_QUERY_LIMIT (%d). Defaulting to %d.\n", cfg.LedgerQueryLimit, defaultQueryLimit)
		cfg.LedgerQueryLimit = defaultQueryLimit
	}

	tz := v.GetString("BUSINESS_TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid BUSINESS_TIMEZONE %q: %w", tz, err)
	}
	cfg.BusinessLocation = loc

	return cfg, nil
}
