package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port            string
	Environment     string
	LoggingConfig   LoggingConfig
	PostgresConfig  PostgresConfig
	RedisConfig     RedisConfig
	AmadeusConfig   AmadeusConfig
	NTFYConfig      NTFYConfig
	ReminderConfig  ReminderConfig
	InitSchema      bool
	ReminderEnabled bool
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// PostgresConfig holds PostgreSQL connection configuration
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	CacheTTL time.Duration
}

// AmadeusConfig holds the schedule API credentials and endpoints.
// ClientID and ClientSecret are the two required credential values; the
// lookup endpoint answers 500 with an explicit message when they are unset.
type AmadeusConfig struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	BaseURL      string
	Timeout      time.Duration
}

// NTFYConfig holds push notification configuration
type NTFYConfig struct {
	ServerURL string
	Topic     string
	Username  string
	Password  string
	Enabled   bool
}

// ReminderConfig holds trip reminder scheduling configuration
type ReminderConfig struct {
	CronExpression string
	DaysAhead      int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	loggingConfig := LoggingConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "json"),
	}

	postgresConfig := PostgresConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "trips"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "trips"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	redisConfig := RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
		CacheTTL: cacheTTL,
	}

	lookupTimeout, err := time.ParseDuration(getEnv("AMADEUS_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid AMADEUS_TIMEOUT: %w", err)
	}

	amadeusConfig := AmadeusConfig{
		ClientID:     getEnv("AMADEUS_API_KEY", ""),
		ClientSecret: getEnv("AMADEUS_API_SECRET", ""),
		TokenURL:     getEnv("AMADEUS_TOKEN_URL", "https://test.api.amadeus.com/v1/security/oauth2/token"),
		BaseURL:      getEnv("AMADEUS_BASE_URL", "https://test.api.amadeus.com/v2"),
		Timeout:      lookupTimeout,
	}

	ntfyConfig := NTFYConfig{
		ServerURL: getEnv("NTFY_SERVER_URL", "https://ntfy.sh"),
		Topic:     getEnv("NTFY_TOPIC", ""),
		Username:  getEnv("NTFY_USERNAME", ""),
		Password:  getEnv("NTFY_PASSWORD", ""),
		Enabled:   getEnvBool("NTFY_ENABLED", false),
	}

	daysAhead, err := strconv.Atoi(getEnv("REMINDER_DAYS_AHEAD", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid REMINDER_DAYS_AHEAD: %w", err)
	}

	reminderConfig := ReminderConfig{
		CronExpression: getEnv("REMINDER_CRON", "0 9 * * *"),
		DaysAhead:      daysAhead,
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LoggingConfig:   loggingConfig,
		PostgresConfig:  postgresConfig,
		RedisConfig:     redisConfig,
		AmadeusConfig:   amadeusConfig,
		NTFYConfig:      ntfyConfig,
		ReminderConfig:  reminderConfig,
		InitSchema:      getEnvBool("INIT_SCHEMA", true),
		ReminderEnabled: getEnvBool("REMINDER_ENABLED", false),
	}, nil
}

// LoadTestConfig loads test configuration
func LoadTestConfig() *Config {
	return &Config{
		PostgresConfig: PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "trips"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME_TEST", "trips_test"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisConfig: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			CacheTTL: time.Minute,
		},
		Environment: "test",
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if len(strings.TrimSpace(value)) == 0 {
		return defaultValue
	}
	return strings.TrimSpace(value)
}

// getEnvBool gets a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
