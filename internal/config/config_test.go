package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SKETCHBOOK_COOKIE_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.SessionTTL != 8*time.Hour {
		t.Errorf("Expected default session TTL 8h, got %v", cfg.SessionTTL)
	}
	if cfg.CookieSecret != "test-secret" {
		t.Errorf("Expected secret from environment, got %q", cfg.CookieSecret)
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("SKETCHBOOK_COOKIE_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("Expected an error without a cookie secret")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SKETCHBOOK_COOKIE_SECRET", "s")
	t.Setenv("SKETCHBOOK_ADDR", ":9999")
	t.Setenv("SKETCHBOOK_DB_PATH", "/tmp/test.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.DBPath != "/tmp/test.db" {
		t.Errorf("Environment overrides not applied: %+v", cfg)
	}
}
