package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	HTTPAddr    string
	CORSOrigins []string
	Timezone    string
	Locale      string
	LogLevel    string
	SessionTTL  time.Duration

	RedisURL          string
	DashboardCacheTTL time.Duration
	AMQPURL           string

	DiscordToken     string
	DiscordChannelID string
	DiscordGuildID   string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI).
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		CORSOrigins:      splitList(os.Getenv("CORS_ORIGINS")),
		Timezone:         getenv("APP_TIMEZONE", "UTC"),
		Locale:           getenv("DEFAULT_LOCALE", "en"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		RedisURL:         os.Getenv("REDIS_URL"),
		AMQPURL:          os.Getenv("AMQP_URL"),
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
		DiscordGuildID:   os.Getenv("DISCORD_GUILD_ID"),
	}

	var err error
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.DashboardCacheTTL, err = durationEnv("DASHBOARD_CACHE_TTL", 30*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		c.DatabaseURL = "postgres://localhost:5432/eventplanner?sslmode=disable"
	}
	if err := checkURL("DATABASE_URL", c.DatabaseURL); err != nil {
		return err
	}
	if c.RedisURL != "" {
		if err := checkURL("REDIS_URL", c.RedisURL); err != nil {
			return err
		}
	}
	if c.AMQPURL != "" {
		if err := checkURL("AMQP_URL", c.AMQPURL); err != nil {
			return err
		}
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("config: SESSION_TTL must be positive")
	}
	if c.DashboardCacheTTL < 0 {
		return fmt.Errorf("config: DASHBOARD_CACHE_TTL must not be negative")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("config: APP_TIMEZONE %q: %w", c.Timezone, err)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: LOG_LEVEL must be one of debug, info, warn, error")
	}

	// Discord is optional; once a token is given the channel becomes required.
	if c.DiscordToken != "" {
		if strings.TrimSpace(c.DiscordChannelID) == "" {
			return fmt.Errorf("config: DISCORD_CHANNEL_ID is required when DISCORD_TOKEN is set")
		}
		if !isSnowflake(c.DiscordChannelID) {
			return fmt.Errorf("config: DISCORD_CHANNEL_ID must be a Discord channel ID (digits only)")
		}
		if c.DiscordGuildID != "" && !isSnowflake(c.DiscordGuildID) {
			return fmt.Errorf("config: DISCORD_GUILD_ID must be a Discord guild ID (digits only)")
		}
	}
	return nil
}

// DiscordEnabled reports whether the Discord bot should be started.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}

func checkURL(name, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("config: invalid %s (%q): %w", name, raw, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid %s (%q): missing scheme or host", name, raw)
	}
	return nil
}

func isSnowflake(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s (%q): %w", key, raw, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
