package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Issuer         string        // Issuer claim for tokens (default: taskboard)
	Algorithm      string        // JWT signing algorithm, HS256 or EdDSA (default: HS256)
	JWTSecret      string        // HS256 secret, at least 32 bytes; generated per process when empty
	SigningKeyFile string        // EdDSA PKCS8 PEM key; generated per process when empty
	TokenTTL       time.Duration // Access token lifetime (default: 24h)
	PepperFile     string        // Path to file containing pepper for password hashing (default: ./pepper)

	DatabaseDriver string // sqlite or postgres (default: sqlite)
	DatabaseFile   string // SQLite database file (default: ./tasks.db)
	DatabaseURL    string // Postgres DSN, required for the postgres driver

	AdminName     string // Seeded admin display name (default: Administrator)
	AdminEmail    string // Seeded admin email; seeding is skipped when empty
	AdminPassword string // Seeded admin password; seeding is skipped when empty

	CORSOrigins       []string // Browser origins allowed to call the API; empty disables CORS
	TrustProxyHeaders bool     // Key rate limits on X-Forwarded-For/X-Real-IP (default: false)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:         getEnvOrDefault("AUTH_ISSUER", "taskboard"),
		Algorithm:      getEnvOrDefault("AUTH_ALGORITHM", AlgHS256),
		JWTSecret:      os.Getenv("AUTH_JWT_SECRET"),
		SigningKeyFile: os.Getenv("AUTH_SIGNING_KEY_FILE"),
		TokenTTL:       getEnvDurationOrDefault("AUTH_TOKEN_TTL", 24*time.Hour),
		PepperFile:     getEnvOrDefault("AUTH_PEPPER_FILE", "pepper"),

		DatabaseDriver: strings.ToLower(getEnvOrDefault("DATABASE_DRIVER", "sqlite")),
		DatabaseFile:   getEnvOrDefault("DATABASE_FILE", "tasks.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),

		AdminName:     os.Getenv("ADMIN_NAME"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		CORSOrigins:       getEnvList("CORS_ALLOWED_ORIGINS"),
		TrustProxyHeaders: getEnvBoolOrDefault("TRUST_PROXY_HEADERS", false),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
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

// getEnvList splits a comma separated variable, dropping blank entries.
func getEnvList(key string) []string {
	var out []string
	for part := range strings.SplitSeq(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
