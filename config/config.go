// Package config holds version constants and the environment driven
// settings shared by the web server and the directory watcher.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config holds application configuration
type Config struct {
	Port              int
	LogLevel          string
	LogPretty         bool
	DevMode           bool
	WatchDir          string   // always absolute
	WatchInterval     string   // cron spec, e.g. "@every 1s"
	WatchExtensions   []string // lower case, with leading dot
	HistorySize       int      // entries kept in memory
	HistoryView       int      // default page size for history listings
	MaxSequenceLength int      // 0 disables the cap
	MaxUploadBytes    int64
}

// Load reads configuration from environment variables, after loading a
// .env file if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	watchDir, err := filepath.Abs(getEnv("DNA_WATCH_DIR", "./lab_exports"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve watch directory path: %w", err)
	}

	cfg := &Config{
		Port:              getEnvAsInt("DNA_PORT", 8080),
		LogLevel:          getEnv("DNA_LOG_LEVEL", "info"),
		LogPretty:         getEnvAsBool("DNA_LOG_PRETTY", true),
		DevMode:           getEnvAsBool("DNA_DEV_MODE", false),
		WatchDir:          watchDir,
		WatchInterval:     getEnv("DNA_WATCH_INTERVAL", "@every 1s"),
		WatchExtensions:   ParseExtensions(getEnv("DNA_WATCH_EXTENSIONS", ".txt,.csv")),
		HistorySize:       getEnvAsInt("DNA_HISTORY_SIZE", 100),
		HistoryView:       getEnvAsInt("DNA_HISTORY_VIEW", 10),
		MaxSequenceLength: getEnvAsInt("DNA_MAX_SEQUENCE_LENGTH", 1_000_000),
		MaxUploadBytes:    int64(getEnvAsInt("DNA_MAX_UPLOAD_BYTES", 10<<20)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.HistorySize <= 0 {
		return fmt.Errorf("history size must be positive, got %d", c.HistorySize)
	}
	if c.HistoryView <= 0 {
		return fmt.Errorf("history view must be positive, got %d", c.HistoryView)
	}
	if c.MaxSequenceLength < 0 {
		return fmt.Errorf("max sequence length must not be negative, got %d", c.MaxSequenceLength)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload bytes must be positive, got %d", c.MaxUploadBytes)
	}
	if len(c.WatchExtensions) == 0 {
		return fmt.Errorf("at least one watch extension is required")
	}
	if _, err := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor).Parse(c.WatchInterval); err != nil {
		return fmt.Errorf("invalid watch interval %q: %w", c.WatchInterval, err)
	}
	return nil
}

// ParseExtensions turns "txt, .CSV" into [".txt" ".csv"].
func ParseExtensions(s string) []string {
	var out []string
	for _, ext := range strings.Split(s, ",") {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
