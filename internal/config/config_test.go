package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Port:            "8080",
		DBPath:          "./data/expenses.db",
		JWTSecret:       "test-secret",
		AccessTokenTTL:  5 * time.Minute,
		RefreshTokenTTL: time.Hour,
		RateLimitRPS:    20,
	}
}

func TestLoadDefaults(t *testing.T) {
	// Neutralize any ambient environment so defaults apply.
	for _, key := range []string{"PORT", "DB_PATH", "JWT_SECRET", "ACCESS_TOKEN_TTL", "REFRESH_TOKEN_TTL", "RATE_LIMIT_RPS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.AccessTokenTTL != 5*time.Minute {
		t.Errorf("AccessTokenTTL = %v, want 5m", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != time.Hour {
		t.Errorf("RefreshTokenTTL = %v, want 1h", cfg.RefreshTokenTTL)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("ACCESS_TOKEN_TTL", "10m")
	t.Setenv("RATE_LIMIT_RPS", "5")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.JWTSecret != "from-env" {
		t.Errorf("JWTSecret = %q, want from-env", cfg.JWTSecret)
	}
	if cfg.AccessTokenTTL != 10*time.Minute {
		t.Errorf("AccessTokenTTL = %v, want 10m", cfg.AccessTokenTTL)
	}
	if cfg.RateLimitRPS != 5 {
		t.Errorf("RateLimitRPS = %v, want 5", cfg.RateLimitRPS)
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		if err := validConfig().Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"non-numeric port", func(c *Config) { c.Port = "abc" }},
		{"port out of range", func(c *Config) { c.Port = "70000" }},
		{"missing secret", func(c *Config) { c.JWTSecret = "" }},
		{"empty db path", func(c *Config) { c.DBPath = "" }},
		{"zero access ttl", func(c *Config) { c.AccessTokenTTL = 0 }},
		{"negative refresh ttl", func(c *Config) { c.RefreshTokenTTL = -time.Minute }},
		{"negative rate limit", func(c *Config) { c.RateLimitRPS = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
