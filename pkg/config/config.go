package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret string
	JWTIssuer string

	// Historical exchange rate service
	OXRAppID        string
	OXRBaseURL      string
	OXRFetchTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "ledger-posting-app")
	viper.SetDefault("OXR_APP_ID", "")
	viper.SetDefault("OXR_BASE_URL", "")
	viper.SetDefault("OXR_FETCH_TIMEOUT", "10s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.OXRAppID = viper.GetString("OXR_APP_ID")
	if cfg.OXRAppID == "" {
		log.Println("Warning: OXR_APP_ID not set. Historical rate fetches will be rejected by the rate service.")
	}
	cfg.OXRBaseURL = viper.GetString("OXR_BASE_URL")

	timeoutStr := viper.GetString("OXR_FETCH_TIMEOUT")
	fetchTimeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		fetchTimeout = 10 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for OXR_FETCH_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, fetchTimeout)
		}
	}
	cfg.OXRFetchTimeout = fetchTimeout

	return cfg, nil
}
