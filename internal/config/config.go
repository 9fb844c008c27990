package config

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv                string
	DBPath                string
	DBDriver              string
	RedisAddr             string
	CacheTTL              time.Duration
	GRPCPort              int
	GRPCReflectionEnabled bool

	JudgeBaseURL     string
	JudgeAPIKey      string
	JudgeModel       string
	JudgeTemperature float64
	JudgeMaxTokens   int
	JudgeTimeout     time.Duration

	BatchConcurrency int
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	return &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		DBPath:                getEnv("DB_PATH", "./data/evaluations.db"),
		DBDriver:              getEnv("DB_DRIVER", "sqlite3"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		CacheTTL:              getDurationEnv("CACHE_TTL", 10*time.Minute),
		GRPCPort:              getIntEnv("GRPC_PORT", 50051),
		GRPCReflectionEnabled: getBoolEnv("GRPC_REFLECTION_ENABLED", false),

		JudgeBaseURL:     getEnv("JUDGE_BASE_URL", "https://api.openai.com/v1"),
		JudgeAPIKey:      getEnv("JUDGE_API_KEY", ""),
		JudgeModel:       getEnv("JUDGE_MODEL", "gpt-4o"),
		JudgeTemperature: getFloatEnv("JUDGE_TEMPERATURE", 0.1),
		JudgeMaxTokens:   getIntEnv("JUDGE_MAX_TOKENS", 1024),
		JudgeTimeout:     getDurationEnv("JUDGE_TIMEOUT", 60*time.Second),

		BatchConcurrency: getIntEnv("BATCH_CONCURRENCY", 4),
	}
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getFloatEnv(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getBoolEnv(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
