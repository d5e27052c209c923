package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Session store kinds.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

const insecureSessionSecret = "insecure-panel-session-secret-change-me"

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Business backend
	APIBaseURL string
	APITimeout time.Duration

	// Sessions
	SessionStore         string
	SessionSecret        string
	SessionTTL           time.Duration
	SessionCookieName    string
	SessionPurgeInterval time.Duration

	// Session store backends
	DatabaseURL    string
	EnableDBCheck  bool
	MigrationsPath string
	RedisURL       string

	LoginRateLimit     string // ulule/limiter format, e.g. "10-M"
	CORSAllowedOrigins []string
	PosthogAPIKey      string
	Location           string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("API_BASE_URL", "http://localhost:5000")
	viper.SetDefault("API_TIMEOUT", "15s")
	viper.SetDefault("SESSION_STORE", StoreMemory)
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("SESSION_TTL", "12h")
	viper.SetDefault("SESSION_COOKIE_NAME", "panel_sid")
	viper.SetDefault("SESSION_PURGE_INTERVAL", "15m")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("MIGRATIONS_PATH", "migrations")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("LOCATION", "Europe/Warsaw")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:              viper.GetString("PORT"),
		IsProduction:      viper.GetBool("IS_PRODUCTION"),
		APIBaseURL:        viper.GetString("API_BASE_URL"),
		SessionStore:      strings.ToLower(viper.GetString("SESSION_STORE")),
		SessionSecret:     viper.GetString("SESSION_SECRET"),
		SessionCookieName: viper.GetString("SESSION_COOKIE_NAME"),
		DatabaseURL:       viper.GetString("PGSQL_URL"),
		EnableDBCheck:     viper.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:    viper.GetString("MIGRATIONS_PATH"),
		RedisURL:          viper.GetString("REDIS_URL"),
		LoginRateLimit:    viper.GetString("LOGIN_RATE_LIMIT"),
		PosthogAPIKey:     viper.GetString("POSTHOG_API_KEY"),
		Location:          viper.GetString("LOCATION"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.APITimeout = durationOrDefault("API_TIMEOUT", 15*time.Second)
	cfg.SessionTTL = durationOrDefault("SESSION_TTL", 12*time.Hour)
	cfg.SessionPurgeInterval = durationOrDefault("SESSION_PURGE_INTERVAL", 15*time.Minute)

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.SessionSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("SESSION_SECRET must be set in production")
		}
		log.Println("Warning: SESSION_SECRET not set, using default insecure secret. THIS IS NOT FOR PRODUCTION.")
		cfg.SessionSecret = insecureSessionSecret
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL must be set")
	}
	switch c.SessionStore {
	case StoreMemory:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL must be set when SESSION_STORE=%s", StorePostgres)
		}
	case StoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL must be set when SESSION_STORE=%s", StoreRedis)
		}
	default:
		return fmt.Errorf("unknown SESSION_STORE %q (want %s, %s or %s)", c.SessionStore, StoreMemory, StorePostgres, StoreRedis)
	}
	return nil
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
