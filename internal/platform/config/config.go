package config

import (
	"os"
	"strconv"
	"time"
)

// SMTP captures mail transport configuration.
type SMTP struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
	// ImplicitTLS dials TLS directly instead of upgrading with STARTTLS.
	ImplicitTLS bool
}

// Notifier captures configuration for the notification daemon.
type Notifier struct {
	Addr        string
	DatabaseURL string
	RedisURL    string

	// WebAppBaseURL is the public base URL of the workspace web app,
	// used to build deep links inside digest emails.
	WebAppBaseURL string

	// EventWindow bounds how far back a run looks for workspace events.
	EventWindow time.Duration
	// RunInterval is how often the serve loop triggers a run.
	RunInterval time.Duration
	// UserConcurrency bounds the per-user aggregation fan-out.
	UserConcurrency int

	// SafeServiceURL is the base URL of the multisig transaction service.
	SafeServiceURL string
	// SafeCacheTTL bounds how long pending safe tasks are served from cache.
	SafeCacheTTL time.Duration

	// AdminKeyHash is the bcrypt hash of the bearer key accepted on admin routes.
	AdminKeyHash string
	// JWTSigningKey verifies service-issued bearer tokens on admin routes.
	JWTSigningKey string

	SMTP SMTP
}

// FromEnv builds a Notifier config from environment variables so main stays lean.
func FromEnv() Notifier {
	return Notifier{
		Addr:          envOr("NOTIFIER_ADDR", ":8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		WebAppBaseURL: envOr("WEB_APP_BASE_URL", "https://app.charmverse.io"),

		EventWindow:     envDuration("NOTIFIER_EVENT_WINDOW", 24*time.Hour),
		RunInterval:     envDuration("NOTIFIER_RUN_INTERVAL", time.Hour),
		UserConcurrency: envInt("NOTIFIER_USER_CONCURRENCY", 8),

		SafeServiceURL: os.Getenv("SAFE_SERVICE_URL"),
		SafeCacheTTL:   envDuration("SAFE_CACHE_TTL", 5*time.Minute),

		AdminKeyHash:  os.Getenv("ADMIN_KEY_HASH"),
		JWTSigningKey: os.Getenv("JWT_SIGNING_KEY"),

		SMTP: SMTP{
			Host:        os.Getenv("SMTP_HOST"),
			Port:        envOr("SMTP_PORT", "587"),
			Username:    os.Getenv("SMTP_USERNAME"),
			Password:    os.Getenv("SMTP_PASSWORD"),
			From:        os.Getenv("SMTP_FROM"),
			FromName:    envOr("SMTP_FROM_NAME", "CharmVerse"),
			ImplicitTLS: os.Getenv("SMTP_IMPLICIT_TLS") == "true",
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
