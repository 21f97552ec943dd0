package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(3001), cfg.HTTP.Port)
	assert.Equal(t, "ad_campaigns", cfg.Psql.Addr.Path[1:])
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 20, cfg.Chat.HistoryLimit)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Auth.InsecureSecret())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("CHAT_RATE_PER_SECOND", "0")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/ads?sslmode=disable")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Zero(t, cfg.Chat.RatePerSecond)
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
	assert.False(t, cfg.Auth.InsecureSecret())
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}
