package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund-service/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("Fail: DB_DSN missing", func(t *testing.T) {
		t.Setenv("DB_DSN", "")
		t.Setenv("JWT_SECRET", "secret")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("Fail: JWT_SECRET missing", func(t *testing.T) {
		t.Setenv("DB_DSN", "postgres://localhost/crowdfund")
		t.Setenv("JWT_SECRET", "")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("Success: defaults and overrides", func(t *testing.T) {
		t.Setenv("DB_DSN", "postgres://localhost/crowdfund")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PRIZE_POOL", "2000")
		t.Setenv("COMPLETION_LOCK_TTL", "10s")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.HTTPAddr)
		assert.Equal(t, int64(2000), cfg.PrizePool)
		assert.Equal(t, 10*time.Second, cfg.CompletionLockTTL)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
		assert.True(t, cfg.MigrateOnStart)
	})
}

func TestGetInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	assert.Equal(t, 7, config.GetInt("SOME_INT", 7))
}
