package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "MONGO_DB", "GEMINI_MODEL", "RATE_LIMIT", "LOG_DEV"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.MongoDB != "ayush-ai" {
		t.Errorf("MongoDB = %q", cfg.MongoDB)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("GeminiModel = %q", cfg.GeminiModel)
	}
	if cfg.RateLimit != "30-M" {
		t.Errorf("RateLimit = %q", cfg.RateLimit)
	}
	if cfg.LogDev {
		t.Error("LogDev should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_DEV", "true")
	t.Setenv("RATE_LIMIT", "5-S")

	cfg := Load()
	if cfg.Port != "9090" || !cfg.LogDev || cfg.RateLimit != "5-S" {
		t.Errorf("cfg = %+v", cfg)
	}
}
