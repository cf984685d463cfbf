package config

import (
	"testing"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if !cfg.IsDevelopment() {
		t.Error("Expected development environment by default")
	}
	if cfg.DatabasePath == "" {
		t.Error("Expected a default database path")
	}
}

func TestNewFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_PATH", "/var/lib/campus/data.db")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg := New()

	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Error("Expected production environment")
	}
	if cfg.DatabasePath != "/var/lib/campus/data.db" {
		t.Errorf("Unexpected database path %s", cfg.DatabasePath)
	}

	origins := cfg.GetAllowedOrigins()
	if len(origins) != 2 || origins[0] != "https://a.example.com" {
		t.Errorf("Unexpected allowed origins %v", origins)
	}
}

func TestGetAllowedOriginsEmpty(t *testing.T) {
	cfg := &Config{}
	if origins := cfg.GetAllowedOrigins(); len(origins) != 0 {
		t.Errorf("Expected no origins, got %v", origins)
	}
}
