package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://cida.usgs.gov/ngwmn_cache/sos", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("NGWMN_BASE_URL", "http://localhost:8080/sos")
	t.Setenv("NGWMN_HTTP_TIMEOUT", "90s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/sos", cfg.BaseURL)
	assert.Equal(t, 90*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("NGWMN_HTTP_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("NGWMN_HTTP_TIMEOUT", "-5s")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	t.Setenv("NGWMN_BASE_URL", "not a url")
	_, err := Load()
	assert.Error(t, err)
}
