package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/mypass/mypass-go/internal/crypto"
)

const devJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port                 string
	Env                  string
	DatabaseDSN          string
	JWTSecret            string
	JWTExpiry            time.Duration
	RateLimitRPS         float64
	RateLimitBurst       int
	GeneratorMaxAttempts int
	MetricsEnabled       bool
}

func Load() Config {
	cfg := Config{
		Port:                 getEnv("PORT", "8080"),
		Env:                  getEnv("ENV", "development"),
		DatabaseDSN:          getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/mypass"),
		JWTSecret:            getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry:            getDuration("JWT_EXPIRY", 24*time.Hour),
		RateLimitRPS:         getFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:       getInt("RATE_LIMIT_BURST", 20),
		GeneratorMaxAttempts: getInt("GENERATOR_MAX_ATTEMPTS", crypto.DefaultMaxAttempts),
		MetricsEnabled:       getBool("METRICS_ENABLED", true),
	}

	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("invalid number in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
