package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Exchange rate provider
	RateAPIBaseURL string
	RateAPIKey     string
	RateAPITimeout time.Duration

	// Reference market calendar
	ExchangeTimezone  *time.Location
	ExchangeCloseHour int

	// HTTP rate limiting (requests per period, limiter format e.g. "100-M")
	RequestRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_API_BASE_URL", "https://openexchangerates.org/api")
	viper.SetDefault("RATE_API_KEY", "")
	viper.SetDefault("RATE_API_TIMEOUT", "10s")
	viper.SetDefault("EXCHANGE_TIMEZONE", "America/New_York")
	viper.SetDefault("EXCHANGE_CLOSE_HOUR", 17)
	viper.SetDefault("REQUEST_RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.RateAPIBaseURL = viper.GetString("RATE_API_BASE_URL")
	cfg.RateAPIKey = viper.GetString("RATE_API_KEY")
	if cfg.RateAPIKey == "" {
		log.Println("Warning: RATE_API_KEY not set. Rate fetching will fail against the live API.")
	}

	timeoutStr := viper.GetString("RATE_API_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 10 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for RATE_API_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.RateAPITimeout = timeout

	tzName := viper.GetString("EXCHANGE_TIMEZONE")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid EXCHANGE_TIMEZONE %q: %w", tzName, err)
	}
	cfg.ExchangeTimezone = loc

	cfg.ExchangeCloseHour = viper.GetInt("EXCHANGE_CLOSE_HOUR")
	if cfg.ExchangeCloseHour < 0 || cfg.ExchangeCloseHour > 23 {
		return nil, fmt.Errorf("EXCHANGE_CLOSE_HOUR must be within 0..23, got %d", cfg.ExchangeCloseHour)
	}

	cfg.RequestRateLimit = viper.GetString("REQUEST_RATE_LIMIT")

	return cfg, nil
}
