package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"
)

// Default production endpoint of the NGWMN Data Portal SOS.
const defaultBaseURL = "https://cida.usgs.gov/ngwmn_cache/sos"

// Config holds all client settings, populated from environment variables.
type Config struct {
	BaseURL     string
	HTTPTimeout time.Duration
	LogLevel    string
	LogFormat   string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	timeoutStr := envOrDefault("NGWMN_HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, errors.New("invalid NGWMN_HTTP_TIMEOUT")
	}

	cfg := &Config{
		BaseURL:     envOrDefault("NGWMN_BASE_URL", defaultBaseURL),
		HTTPTimeout: timeout,
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		LogFormat:   envOrDefault("LOG_FORMAT", "text"),
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid NGWMN_BASE_URL %q", cfg.BaseURL)
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
