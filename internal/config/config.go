package config

import (
	"fmt"
	"net/url"
	"os"
)

type Config struct {
	// Media processing service
	MediaServiceURL string

	// Database (optional: when empty the in-memory store is used)
	DatabaseURL string

	// Uploads
	UploadDir    string
	UploadPrefix string

	// Supabase (optional: enables remote upload storage and realtime events)
	SupabaseURL           string
	SupabaseKey           string
	SupabaseStorageBucket string

	// Server
	Port        string
	Environment string
}

func Load() (*Config, error) {
	cfg := &Config{
		MediaServiceURL: getEnv("MEDIA_SERVICE_URL", "http://localhost:8000"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
		UploadPrefix: getEnv("UPLOAD_PREFIX", "/uploads"),

		SupabaseURL:           getEnv("SUPABASE_URL", ""),
		SupabaseKey:           getEnv("SUPABASE_KEY", ""),
		SupabaseStorageBucket: getEnv("SUPABASE_STORAGE_BUCKET", "editor-uploads"),

		Port:        getEnv("PORT", "5000"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MediaServiceURL == "" {
		return fmt.Errorf("MEDIA_SERVICE_URL is required")
	}
	if _, err := url.Parse(c.MediaServiceURL); err != nil {
		return fmt.Errorf("MEDIA_SERVICE_URL is not a valid URL: %w", err)
	}
	if c.SupabaseURL != "" && c.SupabaseKey == "" {
		return fmt.Errorf("SUPABASE_KEY is required when SUPABASE_URL is set")
	}
	return nil
}

// SupabaseEnabled reports whether remote upload storage and realtime events
// are configured.
func (c *Config) SupabaseEnabled() bool {
	return c.SupabaseURL != "" && c.SupabaseKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
