package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer string // Issuer claim for session cookies (default: ecohub)

	DatabaseFile   string        // Path to SQLite database file (default: ./ecohub.db)
	SessionKeyFile string        // Path to session signing key file (default: ./session.key)
	PepperFile     string        // Path to password pepper file (default: ./pepper)
	SessionTTL     time.Duration // Session lifetime (default: 168h)

	AdminEmail       string // Optional: seed the first admin account on an empty database
	AdminPassword    string
	AdminDisplayName string

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

// SecureCookies reports whether session cookies should carry the Secure
// flag. Local development runs over plain HTTP, everything else over TLS.
func (c Config) SecureCookies() bool {
	return c.Env != "dev"
}

func LoadConfig() Config {
	return Config{
		Issuer:               getEnvOrDefault("HUB_ISSUER", "ecohub"),
		DatabaseFile:         getEnvOrDefault("HUB_DATABASE_FILE", "ecohub.db"),
		SessionKeyFile:       getEnvOrDefault("HUB_SESSION_KEY_FILE", "session.key"),
		PepperFile:           getEnvOrDefault("HUB_PEPPER_FILE", "pepper"),
		SessionTTL:           getEnvDurationOrDefault("HUB_SESSION_TTL", 7*24*time.Hour),
		AdminEmail:           os.Getenv("HUB_ADMIN_EMAIL"),
		AdminPassword:        os.Getenv("HUB_ADMIN_PASSWORD"),
		AdminDisplayName:     os.Getenv("HUB_ADMIN_DISPLAY_NAME"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
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

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Integer values are read as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
