package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/Elias-Manica/My-wallet-back/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(slog.Default())
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.NotEmpty(t, cfg.DB.Url)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://wallet:secret@db:5432/wallet")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg, err := config.Load(slog.Default())
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres://wallet:secret@db:5432/wallet", cfg.DB.Url)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
}
