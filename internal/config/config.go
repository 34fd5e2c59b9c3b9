package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port      int
	LogLevel  string
	LogFormat string
	LogDir    string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	APIKey string // API key for authentication

	ClassWeightsPath string // weighted class draw config, hot-reloaded

	GrowthTickInterval time.Duration // cadence of the plot growth pass
	PushInterval       time.Duration // cadence of live player-view pushes

	QueueLookahead int // minimum queue entries kept beyond the current step
	QueuePreview   int // upcoming requirements returned by the state query
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv("LOG_LEVEL", "INFO"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		LogDir:           getEnv("LOG_DIR", "logs"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBName:           getEnv("DB_NAME", "gardenbredn"),
		APIKey:           getEnv("API_KEY", ""),
		ClassWeightsPath: getEnv("CLASS_WEIGHTS_PATH", "configs/class_weights.json"),
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	growthTick, err := getEnvInt("GROWTH_TICK_SECONDS", 2)
	if err != nil {
		return nil, err
	}
	if growthTick < 1 {
		return nil, fmt.Errorf("GROWTH_TICK_SECONDS must be at least 1, got %d", growthTick)
	}
	cfg.GrowthTickInterval = time.Duration(growthTick) * time.Second

	pushInterval, err := getEnvInt("PUSH_INTERVAL_SECONDS", 3)
	if err != nil {
		return nil, err
	}
	if pushInterval < 1 {
		return nil, fmt.Errorf("PUSH_INTERVAL_SECONDS must be at least 1, got %d", pushInterval)
	}
	cfg.PushInterval = time.Duration(pushInterval) * time.Second

	lookahead, err := getEnvInt("GACHA_QUEUE_LOOKAHEAD", 16)
	if err != nil {
		return nil, err
	}
	if lookahead < 1 {
		return nil, fmt.Errorf("GACHA_QUEUE_LOOKAHEAD must be at least 1, got %d", lookahead)
	}
	cfg.QueueLookahead = lookahead

	preview, err := getEnvInt("GACHA_QUEUE_PREVIEW", 5)
	if err != nil {
		return nil, err
	}
	cfg.QueuePreview = preview

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
