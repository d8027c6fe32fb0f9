package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	if config.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", config.Server.Port)
	}
	if config.Clients.Yahoo.BaseURL != "https://query1.finance.yahoo.com" {
		t.Errorf("unexpected yahoo base URL: %s", config.Clients.Yahoo.BaseURL)
	}
	if config.Clients.Yahoo.GetTimeout() != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", config.Clients.Yahoo.GetTimeout())
	}
	if config.Auth.GetTokenExpiry() != 24*time.Hour {
		t.Errorf("expected 24h token expiry, got %v", config.Auth.GetTokenExpiry())
	}
	if config.IsProduction() {
		t.Error("default config should not be production")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "finpulse.toml")
	content := `
environment = "production"

[server]
port = 9090

[clients.yahoo]
rate_limit = 5
timeout = "10s"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if !config.IsProduction() {
		t.Error("expected production environment")
	}
	if config.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", config.Server.Port)
	}
	if config.Clients.Yahoo.RateLimit != 5 {
		t.Errorf("expected rate limit 5, got %d", config.Clients.Yahoo.RateLimit)
	}
	if config.Clients.Yahoo.GetTimeout() != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", config.Clients.Yahoo.GetTimeout())
	}
	// Unset keys keep defaults
	if config.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host, got %s", config.Server.Host)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig("/nonexistent/finpulse.toml")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", config.Server.Port)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FINPULSE_PORT", "3000")
	t.Setenv("FINPULSE_LOG_LEVEL", "debug")
	t.Setenv("GEMINI_API_KEY", "test-key")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Server.Port != 3000 {
		t.Errorf("expected port 3000, got %d", config.Server.Port)
	}
	if config.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", config.Logging.Level)
	}
	if config.Clients.Gemini.APIKey != "test-key" {
		t.Errorf("expected gemini key override, got %s", config.Clients.Gemini.APIKey)
	}
}
