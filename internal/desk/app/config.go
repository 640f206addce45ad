package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	AuthModeEphemeral = "ephemeral"
	AuthModeJWKS      = "jwks"
)

type Config struct {
	DatabaseURL string // Optional: sqlite://path or postgres://... (default: sqlite://desk.db)

	AuthMode    string        // Optional: ephemeral (dev tokens) or jwks (external identity provider) (default: ephemeral)
	JWKSURL     string        // Required in jwks mode: identity provider key set
	JWKSRefresh time.Duration // Optional: key set refresh interval (default: 15m)
	Issuer      string        // Optional: expected iss claim; stamped on dev tokens (default in ephemeral mode: clientdesk-dev)
	Audience    []string      // Optional: expected aud claim values

	RedisURL string // Optional: shares rate limit counters across replicas

	Timezone            string        // Calendar used for expiration day counts (default: UTC)
	ExpiryScanInterval  time.Duration // Expiry monitor interval (default: 1h)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		DatabaseURL:         getEnvOrDefault("DATABASE_URL", "sqlite://desk.db"),
		AuthMode:            strings.ToLower(getEnvOrDefault("AUTH_MODE", AuthModeEphemeral)),
		JWKSURL:             os.Getenv("AUTH_JWKS_URL"),
		JWKSRefresh:         getEnvDurationOrDefault("AUTH_JWKS_REFRESH", 15*time.Minute),
		Issuer:              os.Getenv("AUTH_ISSUER"),
		Audience:            splitList(os.Getenv("AUTH_AUDIENCE")),
		RedisURL:            os.Getenv("REDIS_URL"),
		Timezone:            getEnvOrDefault("TIMEZONE", "UTC"),
		ExpiryScanInterval:  getEnvDurationOrDefault("EXPIRY_SCAN_INTERVAL", 1*time.Hour),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.Issuer == "" && cfg.AuthMode == AuthModeEphemeral {
		cfg.Issuer = "clientdesk-dev"
	}

	return cfg
}

// Validate reports settings the service cannot start with.
func (c Config) Validate() error {
	switch c.AuthMode {
	case AuthModeEphemeral:
	case AuthModeJWKS:
		if c.JWKSURL == "" {
			return fmt.Errorf("AUTH_JWKS_URL is required when AUTH_MODE=%s", AuthModeJWKS)
		}
	default:
		return fmt.Errorf("unknown AUTH_MODE %q (want %s or %s)", c.AuthMode, AuthModeEphemeral, AuthModeJWKS)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

// splitList parses a comma-separated list, dropping empty entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
