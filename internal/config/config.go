package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Port            int
	MinPrincipal    float64
	MaxPrincipal    float64
	MinRate         float64
	MaxRate         float64
	MinTermYears    int
	MaxTermYears    int
	OutputFormat    string
	OTELEndpoint    string
	OTELServiceName string
	LogLevel        string
	LogFormat       string
	RedisAddr       string
	CacheTTL        time.Duration
}

// LoadConfig reads configuration from the environment and an optional .env file.
func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvInt("PORT", 8000),
		MinPrincipal:    getEnvFloat("MIN_PRINCIPAL", 0.01),
		MaxPrincipal:    getEnvFloat("MAX_PRINCIPAL", 1e9),
		MinRate:         getEnvFloat("MIN_RATE", 0),
		MaxRate:         getEnvFloat("MAX_RATE", 100),
		MinTermYears:    getEnvInt("MIN_TERM_YEARS", 1),
		MaxTermYears:    getEnvInt("MAX_TERM_YEARS", 100),
		OutputFormat:    getEnvString("OUTPUT_FORMAT", "text"),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "amortization"),
		LogLevel:        getEnvString("LOG_LEVEL", "INFO"),
		LogFormat:       getEnvString("LOG_FORMAT", "text"),
		RedisAddr:       getEnvString("REDIS_ADDR", ""),
		CacheTTL:        getEnvDuration("CACHE_TTL", time.Hour),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
