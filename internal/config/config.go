package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port  string
	Debug bool

	// Schedule configuration
	RefreshSchedule string // "daily" or "weekly"
	TimeZone        string

	// Acquisition configuration
	FetchLimit      int           // max posts/comments per feed
	RequestsPerSec  float64       // reddit API rate limit
	FetchCacheTTL   time.Duration // reuse window for fetched timelines
	Watchlist       []string      // usernames re-profiled on schedule
	WatchlistSource string        // "reddit" or "hackernews"

	// Archive configuration
	StorageAccount   string // Azure storage account; empty selects local disk
	StorageContainer string
	ArchiveDir       string // local archive root

	// Notification configuration
	WebhookURL        string
	NotificationEmail string
	SMTPHost          string
	SMTPPort          int
	SMTPUsername      string
	SMTPPassword      string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		Debug: getBoolEnv("DEBUG", false),

		RefreshSchedule: getEnv("REFRESH_SCHEDULE", "weekly"),
		TimeZone:        getEnv("TIMEZONE", "UTC"),

		FetchLimit:      getIntEnv("FETCH_LIMIT", 100),
		RequestsPerSec:  getFloatEnv("REDDIT_REQUESTS_PER_SEC", 0.5),
		FetchCacheTTL:   time.Duration(getIntEnv("FETCH_CACHE_TTL_MINUTES", 15)) * time.Minute,
		Watchlist:       getSliceEnv("WATCHLIST", nil),
		WatchlistSource: getEnv("WATCHLIST_SOURCE", "reddit"),

		StorageAccount:   getEnv("AZURE_STORAGE_ACCOUNT", ""),
		StorageContainer: getEnv("AZURE_STORAGE_CONTAINER", "personas"),
		ArchiveDir:       getEnv("ARCHIVE_DIR", "output"),

		WebhookURL:        getEnv("WEBHOOK_URL", ""),
		NotificationEmail: getEnv("NOTIFICATION_EMAIL", ""),
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          getIntEnv("SMTP_PORT", 587),
		SMTPUsername:      getEnv("SMTP_USERNAME", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),
	}

	// Validate required configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.RefreshSchedule != "daily" && c.RefreshSchedule != "weekly" {
		return fmt.Errorf("REFRESH_SCHEDULE must be 'daily' or 'weekly'")
	}

	if c.WatchlistSource != "reddit" && c.WatchlistSource != "hackernews" {
		return fmt.Errorf("WATCHLIST_SOURCE must be 'reddit' or 'hackernews'")
	}

	if c.FetchLimit <= 0 {
		return fmt.Errorf("FETCH_LIMIT must be positive")
	}

	if c.NotificationEmail != "" {
		if c.SMTPHost == "" || c.SMTPUsername == "" || c.SMTPPassword == "" {
			return fmt.Errorf("SMTP configuration is required when NOTIFICATION_EMAIL is set")
		}
	}

	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
