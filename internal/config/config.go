// Package config handles application configuration from environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration.
type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	BaseURL       string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	SessionSecret string `env:"SESSION_SECRET"`
	Strava        StravaConfig
}

// StravaConfig holds the registered Strava application credentials. The
// client secret never leaves the server.
type StravaConfig struct {
	ClientID     string `env:"STRAVA_CLIENT_ID"`
	ClientSecret string `env:"STRAVA_CLIENT_SECRET"`
	RedirectURL  string `env:"STRAVA_REDIRECT_URL"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Strava.RedirectURL == "" {
		cfg.Strava.RedirectURL = cfg.BaseURL + "/auth/callback"
	}
	return cfg, nil
}

// Validate ensures the Strava application credentials are present.
func (c Config) Validate() error {
	if c.Strava.ClientID == "" || c.Strava.ClientSecret == "" {
		return fmt.Errorf("STRAVA_CLIENT_ID and STRAVA_CLIENT_SECRET are required")
	}
	return nil
}
