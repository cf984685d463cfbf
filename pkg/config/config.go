package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds application configuration
type Config struct {
	DatabasePath string
	Port         string
	Environment  string
	// Security configuration
	AllowedOrigins string
	TrustedProxies string
}

// New creates a new configuration instance from environment variables
func New() *Config {
	return &Config{
		DatabasePath: getEnv("DATABASE_PATH", defaultDatabasePath()),
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("ENV", "development"),
		// Security configuration
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", ""),
		TrustedProxies: getEnv("TRUSTED_PROXIES", ""),
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// defaultDatabasePath resolves the SQLite file next to the running binary,
// falling back to the working directory when the executable path is unknown.
func defaultDatabasePath() string {
	exe, err := os.Executable()
	if err != nil {
		return "data.db"
	}
	return filepath.Join(filepath.Dir(exe), "data.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetAllowedOrigins returns a slice of allowed CORS origins
func (c *Config) GetAllowedOrigins() []string {
	if c.AllowedOrigins == "" {
		return []string{}
	}
	return strings.Split(c.AllowedOrigins, ",")
}

// GetTrustedProxies returns a slice of trusted proxy IPs
func (c *Config) GetTrustedProxies() []string {
	if c.TrustedProxies == "" {
		return []string{} // No trusted proxies by default
	}
	return strings.Split(c.TrustedProxies, ",")
}
