package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}

	if cfg.WSS.BaseURL != "https://api.webselfstorage.com/v3" {
		t.Fatalf("expected default WSS base URL, got %q", cfg.WSS.BaseURL)
	}

	if cfg.WSS.Timeout != 15*time.Second {
		t.Fatalf("expected 15s default timeout, got %v", cfg.WSS.Timeout)
	}

	if cfg.Redis.Enabled() {
		t.Fatal("expected redis to be disabled without URL or address")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestRedisEnabled(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if !cfg.Redis.Enabled() {
		t.Fatal("expected redis to be enabled with URL set")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvWSSAPIKey, "wss-key")
	t.Setenv(EnvWSSLocationID, "1032354")
	os.Unsetenv(EnvRedisURL)
}
