package config_test

import (
	"testing"
	"time"

	"github.com/SscSPs/business_panel/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SESSION_STORE", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("IS_PRODUCTION", "false")
	t.Setenv("SESSION_SECRET", "")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, config.StoreMemory, cfg.SessionStore)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.NotEmpty(t, cfg.SessionSecret)
	assert.Equal(t, "Europe/Warsaw", cfg.Location)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SESSION_STORE", "Redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("API_TIMEOUT", "nonsense")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, config.StoreRedis, cfg.SessionStore)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 15*time.Second, cfg.APITimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_Rejects(t *testing.T) {
	t.Run("postgres without url", func(t *testing.T) {
		t.Setenv("SESSION_STORE", "postgres")
		t.Setenv("PGSQL_URL", "")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
	t.Run("unknown store", func(t *testing.T) {
		t.Setenv("SESSION_STORE", "files")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
	t.Run("production without secret", func(t *testing.T) {
		t.Setenv("SESSION_STORE", "memory")
		t.Setenv("IS_PRODUCTION", "true")
		t.Setenv("SESSION_SECRET", "")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}
