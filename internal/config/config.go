package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Server struct {
		Port         string        `validate:"required,numeric"`
		ReadTimeout  time.Duration `validate:"required"`
		WriteTimeout time.Duration `validate:"required"`
		LogLevel     string        `validate:"oneof=debug info warn error"`
	}

	Weather struct {
		UseMock      bool
		OpenMeteoURL string `validate:"required,url"`
	}

	Upstream struct {
		Timeout         time.Duration `validate:"required"`
		MaxRetries      int           `validate:"min=0,max=10"`
		RetryDelay      time.Duration `validate:"required"`
		RetryMultiplier float64       `validate:"gte=1"`
		BreakerTimeout  time.Duration `validate:"required"`
	}

	Probe struct {
		Interval time.Duration `validate:"required"`
	}
}

// LoadConfig reads configuration from the environment, with .env as a
// fallback, and validates the result so a bad value fails startup instead
// of surfacing mid-request.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		zap.L().Info("no .env file found, using environment variables")
	}

	cfg := &Config{}

	cfg.Server.Port = getEnv("FIBER_PORT", "8080")
	cfg.Server.ReadTimeout = parseDuration(getEnv("FIBER_READ_TIMEOUT", "10s"), 10*time.Second)
	cfg.Server.WriteTimeout = parseDuration(getEnv("FIBER_WRITE_TIMEOUT", "10s"), 10*time.Second)
	cfg.Server.LogLevel = getEnv("LOG_LEVEL", "info")

	cfg.Weather.UseMock = parseBool(getEnv("WEATHER_USE_MOCK", "true"), true)
	cfg.Weather.OpenMeteoURL = getEnv("OPENMETEO_URL", "https://api.open-meteo.com/v1")

	cfg.Upstream.Timeout = parseDuration(getEnv("UPSTREAM_TIMEOUT", "10s"), 10*time.Second)
	cfg.Upstream.MaxRetries = parseInt(getEnv("MAX_RETRIES", "3"), 3)
	cfg.Upstream.RetryDelay = parseDuration(getEnv("RETRY_DELAY", "1s"), time.Second)
	cfg.Upstream.RetryMultiplier = parseFloat(getEnv("RETRY_MULTIPLIER", "2"), 2)
	cfg.Upstream.BreakerTimeout = parseDuration(getEnv("CIRCUIT_BREAKER_TIMEOUT", "30s"), 30*time.Second)

	cfg.Probe.Interval = parseDuration(getEnv("PROBE_INTERVAL", "5m"), 5*time.Minute)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		zap.L().Warn("failed to parse duration", zap.String("value", value), zap.Error(err))
		return fallback
	}
	return duration
}

func parseInt(value string, fallback int) int {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		zap.L().Warn("failed to parse int", zap.String("value", value), zap.Error(err))
		return fallback
	}
	return intValue
}

func parseFloat(value string, fallback float64) float64 {
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		zap.L().Warn("failed to parse float", zap.String("value", value), zap.Error(err))
		return fallback
	}
	return floatValue
}

func parseBool(value string, fallback bool) bool {
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		zap.L().Warn("failed to parse bool", zap.String("value", value), zap.Error(err))
		return fallback
	}
	return boolValue
}
