package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elpepe-gamestop/storefront/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Equal(t, "http://localhost:8080/api", cfg.Backend.BaseURL)
	assert.Equal(t, "15s", cfg.Backend.Timeout().String())
	assert.Equal(t, "sf_session", cfg.Session.CookieName)
	assert.Equal(t, "2h0m0s", cfg.Session.TTL().String())
}

func TestLoad_EnvSobreescribeDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "8090")
	t.Setenv("BACKEND_BASE_URL", "https://api.elpepegames.cl/api")
	t.Setenv("SESSION_TTL_MINUTES", "30")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.HTTP.Port)
	assert.Equal(t, "https://api.elpepegames.cl/api", cfg.Backend.BaseURL)
	assert.Equal(t, 30, cfg.Session.TTLMinutes)
}
