package config

import (
	"os"
	"testing"
	"time"
)

// unsetenv clears a variable for the test while keeping t.Setenv's cleanup.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	_ = os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q, want gpt-4o-mini", cfg.OpenAIModel)
	}
	if cfg.SessionTTL != 60*time.Minute {
		t.Errorf("SessionTTL = %v, want 60m", cfg.SessionTTL)
	}
	if cfg.CompletionTimeout != 30*time.Second {
		t.Errorf("CompletionTimeout = %v, want 30s", cfg.CompletionTimeout)
	}
	if !cfg.IsDevelopment() {
		t.Error("empty FRONTEND_URL should mean development")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "9999")
	t.Setenv("SESSION_TTL", "15m")
	t.Setenv("RATE_LIMIT_REQUESTS", "5")
	t.Setenv("FRONTEND_URL", "https://diva.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "9999" {
		t.Errorf("Port = %q, want 9999", cfg.Port)
	}
	if cfg.SessionTTL != 15*time.Minute {
		t.Errorf("SessionTTL = %v, want 15m", cfg.SessionTTL)
	}
	if cfg.RateLimit.RequestsPerWindow != 5 {
		t.Errorf("RequestsPerWindow = %d, want 5", cfg.RateLimit.RequestsPerWindow)
	}
	if cfg.IsDevelopment() {
		t.Error("production FRONTEND_URL should not mean development")
	}
}

func TestLoadLegacyKeyName(t *testing.T) {
	unsetenv(t, "OPENAI_API_KEY")
	t.Setenv("MINIGAME_API_KEY", "sk-legacy")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OpenAIAPIKey != "sk-legacy" {
		t.Errorf("OpenAIAPIKey = %q, want legacy value", cfg.OpenAIAPIKey)
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	unsetenv(t, "OPENAI_API_KEY")
	unsetenv(t, "MINIGAME_API_KEY")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error without an API key")
	}
}

func TestGetEnvDurationRejectsGarbage(t *testing.T) {
	t.Setenv("SOME_DURATION", "not-a-duration")

	if got := getEnvDuration("SOME_DURATION", time.Minute); got != time.Minute {
		t.Errorf("getEnvDuration = %v, want fallback", got)
	}
}
