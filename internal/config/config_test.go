package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadUsesDefaultsAndYAMLOverrides(t *testing.T) {
	clearConfigEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	yaml := `
http:
  addr: ":9090"
backend:
  base_url: https://api.example.com/api/v1
  timeout: 20s
auth:
  jwt_access_ttl: 30m
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("unexpected http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Backend.BaseURL != "https://api.example.com/api/v1" {
		t.Fatalf("unexpected backend base url: %s", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout != 20*time.Second {
		t.Fatalf("unexpected backend timeout: %s", cfg.Backend.Timeout)
	}
	if cfg.Auth.JWTAccessTTL != 30*time.Minute {
		t.Fatalf("unexpected jwt access ttl: %s", cfg.Auth.JWTAccessTTL)
	}

	if cfg.HTTP.ReadTimeout != 5*time.Second {
		t.Fatalf("http read timeout default should stay 5s, got %s", cfg.HTTP.ReadTimeout)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("redis addr default should stay localhost:6379, got %s", cfg.Redis.Addr)
	}
	if cfg.Auth.SessionTTL != 24*time.Hour {
		t.Fatalf("session ttl default should stay 24h, got %s", cfg.Auth.SessionTTL)
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config with missing file: %v", err)
	}

	if cfg.HTTP.Addr != ":8081" {
		t.Fatalf("unexpected default http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Backend.BaseURL != "http://localhost:8080/api/v1" {
		t.Fatalf("unexpected default backend base url: %s", cfg.Backend.BaseURL)
	}
	if cfg.Backend.ServiceToken != "" {
		t.Fatalf("service token default should be empty, got %q", cfg.Backend.ServiceToken)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("unexpected default log level: %s", cfg.Log.Level)
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("BACKEND_BASE_URL", "http://backend:8080/api/v1")
	t.Setenv("BACKEND_SERVICE_TOKEN", "svc-token")
	t.Setenv("SESSION_TTL", "48h")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Backend.BaseURL != "http://backend:8080/api/v1" {
		t.Fatalf("unexpected backend base url: %s", cfg.Backend.BaseURL)
	}
	if cfg.Backend.ServiceToken != "svc-token" {
		t.Fatalf("unexpected service token: %s", cfg.Backend.ServiceToken)
	}
	if cfg.Auth.SessionTTL != 48*time.Hour {
		t.Fatalf("unexpected session ttl: %s", cfg.Auth.SessionTTL)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("BACKEND_TIMEOUT", "not-a-duration")

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for malformed BACKEND_TIMEOUT")
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV",
		"HTTP_ADDR",
		"HTTP_READ_TIMEOUT",
		"HTTP_WRITE_TIMEOUT",
		"HTTP_IDLE_TIMEOUT",
		"LOG_LEVEL",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"BACKEND_BASE_URL",
		"BACKEND_TIMEOUT",
		"BACKEND_SERVICE_TOKEN",
		"JWT_SECRET",
		"JWT_ACCESS_TTL",
		"SESSION_TTL",
	} {
		t.Setenv(key, "")
	}
}
