package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App     AppConfig
	Mongo   MongoConfig
	Logger  LoggerConfig
	Auth    AuthConfig
	Payment PaymentConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Host                  string
	Port                  string
	RequestTimeoutSeconds int
}

// MongoConfig holds database connection values.
type MongoConfig struct {
	URI      string
	Database string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines token issuance parameters.
type AuthConfig struct {
	JWTSecret       string
	TokenTTLMinutes int
}

// PaymentConfig points at the external payment gateway.
type PaymentConfig struct {
	APIURL    string
	SecretKey string
}

// Load reads configuration from the environment, applying defaults.
// A .env file is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			Host:                  GetEnv("APP_HOST", "0.0.0.0"),
			Port:                  GetEnv("PORT", "5000"),
			RequestTimeoutSeconds: GetEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Mongo: MongoConfig{
			URI:      GetEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: GetEnv("MONGO_DB", "tech_discovery"),
		},
		Logger: LoggerConfig{
			Level: GetEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:       GetEnv("JWT_SECRET", "dev-secret"),
			TokenTTLMinutes: GetEnvAsInt("JWT_TTL_MINUTES", 60),
		},
		Payment: PaymentConfig{
			APIURL:    GetEnv("PAYMENT_API_URL", "https://api.stripe.com/v1"),
			SecretKey: os.Getenv("PAYMENT_SECRET_KEY"),
		},
	}
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured per-request timeout.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// GetEnv returns the value of key or fallback when unset.
func GetEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// GetEnvAsInt returns the integer value of key or fallback when unset
// or unparsable.
func GetEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
