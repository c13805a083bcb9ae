package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("JWT_EXPIRES_IN", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("MASTER_TOKEN", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.HTTPPort)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.Empty(t, cfg.MasterToken)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("JWT_EXPIRES_IN", "2h")
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("MASTER_TOKEN", "m")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9999", cfg.HTTPPort)
	require.Equal(t, 2*time.Hour, cfg.TokenTTL)
	require.Equal(t, "m", cfg.MasterToken)

	// a junk duration falls back to the fixed 24h lifetime
	t.Setenv("JWT_EXPIRES_IN", "soon")
	cfg, err = Load()
	require.NoError(t, err)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
}
