package config

import (
	"testing"
	"time"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for _, k := range []string{
		"DATABASE_URL", "HTTP_ADDR", "CORS_ORIGINS", "APP_TIMEZONE", "DEFAULT_LOCALE",
		"LOG_LEVEL", "SESSION_TTL", "REDIS_URL", "DASHBOARD_CACHE_TTL", "AMQP_URL",
		"DISCORD_TOKEN", "DISCORD_CHANNEL_ID", "DISCORD_GUILD_ID",
	} {
		t.Setenv(k, kv[k])
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, nil)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" || cfg.Timezone != "UTC" || cfg.Locale != "en" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.SessionTTL != 24*time.Hour || cfg.DashboardCacheTTL != 30*time.Second {
		t.Fatalf("unexpected durations: %s, %s", cfg.SessionTTL, cfg.DashboardCacheTTL)
	}
	if cfg.DatabaseURL == "" {
		t.Fatalf("expected a default database url")
	}
	if cfg.DiscordEnabled() {
		t.Fatalf("discord must be disabled without a token")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"DATABASE_URL":       "postgres://db:5432/events",
		"CORS_ORIGINS":       "http://localhost:3000, https://app.example.com",
		"APP_TIMEZONE":       "Europe/Paris",
		"SESSION_TTL":        "2h",
		"DISCORD_TOKEN":      "abc",
		"DISCORD_CHANNEL_ID": "123456789",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://app.example.com" {
		t.Fatalf("unexpected origins: %v", cfg.CORSOrigins)
	}
	if cfg.SessionTTL != 2*time.Hour || !cfg.DiscordEnabled() {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "database url", env: map[string]string{"DATABASE_URL": "not a url"}},
		{name: "session ttl", env: map[string]string{"SESSION_TTL": "soon"}},
		{name: "negative ttl", env: map[string]string{"SESSION_TTL": "-1h"}},
		{name: "timezone", env: map[string]string{"APP_TIMEZONE": "Mars/Olympus"}},
		{name: "log level", env: map[string]string{"LOG_LEVEL": "loud"}},
		{name: "discord channel missing", env: map[string]string{"DISCORD_TOKEN": "abc"}},
		{name: "discord channel not numeric", env: map[string]string{"DISCORD_TOKEN": "abc", "DISCORD_CHANNEL_ID": "general"}},
		{name: "redis url", env: map[string]string{"REDIS_URL": "localhost"}},
	}

	for _, tt := range tests {
		setEnv(t, tt.env)
		if _, err := Load(); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
	}
}
