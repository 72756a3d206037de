package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "session:\n  secret: \"s3cret\"\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Server.Port)
	}
	if cfg.Upstream.BaseURL != "http://localhost:4000" {
		t.Fatalf("expected default upstream, got %s", cfg.Upstream.BaseURL)
	}
	if cfg.Session.CookieName != "memberdesk_session" {
		t.Fatalf("expected default cookie name, got %s", cfg.Session.CookieName)
	}
	if cfg.UpstreamTimeout() != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", cfg.UpstreamTimeout())
	}
	if cfg.SessionTTL() != 12*time.Hour {
		t.Fatalf("expected 12h ttl, got %s", cfg.SessionTTL())
	}
	if cfg.IsProduction() {
		t.Fatal("development mode must not report production")
	}
}

func TestLoadConfigFileValues(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  mode: "production"
upstream:
  base_url: "https://api.example.org"
  timeout: "5s"
session:
  secret: "s3cret"
  ttl: "1h"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port from file, got %s", cfg.Server.Port)
	}
	if cfg.Upstream.BaseURL != "https://api.example.org" {
		t.Fatalf("expected upstream from file, got %s", cfg.Upstream.BaseURL)
	}
	if cfg.UpstreamTimeout() != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %s", cfg.UpstreamTimeout())
	}
	if !cfg.IsProduction() {
		t.Fatal("expected production mode")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "session:\n  secret: \"from-file\"\n")

	t.Setenv("SERVER_PORT", "18080")
	t.Setenv("UPSTREAM_BASE_URL", "http://api.test:4000")
	t.Setenv("SESSION_SECRET", "from-env")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Server.Port != "18080" {
		t.Fatalf("expected SERVER_PORT override, got %s", cfg.Server.Port)
	}
	if cfg.Upstream.BaseURL != "http://api.test:4000" {
		t.Fatalf("expected UPSTREAM_BASE_URL override, got %s", cfg.Upstream.BaseURL)
	}
	if cfg.Session.Secret != "from-env" {
		t.Fatalf("expected SESSION_SECRET override, got %s", cfg.Session.Secret)
	}
}

func TestLoadConfigRejectsMissingSecret(t *testing.T) {
	path := writeConfig(t, "server:\n  port: \"8080\"\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an empty session secret to be rejected")
	}
}

func TestLoadConfigRejectsBadUpstreamURL(t *testing.T) {
	path := writeConfig(t, `
upstream:
  base_url: "localhost:4000"
session:
  secret: "s3cret"
`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected a non-http upstream URL to be rejected")
	}
}
