package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "http://localhost:8080", cfg.BaseURL)
	require.Equal(t, "http://localhost:8080/auth/callback", cfg.Strava.RedirectURL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BASE_URL", "https://app.example.com")
	t.Setenv("STRAVA_CLIENT_ID", "id-123")
	t.Setenv("STRAVA_CLIENT_SECRET", "secret-456")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "https://app.example.com", cfg.BaseURL)
	require.Equal(t, "id-123", cfg.Strava.ClientID)
	require.Equal(t, "https://app.example.com/auth/callback", cfg.Strava.RedirectURL)
}

func TestLoadExplicitRedirectWins(t *testing.T) {
	t.Setenv("STRAVA_REDIRECT_URL", "https://other.example.com/cb")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://other.example.com/cb", cfg.Strava.RedirectURL)
}

func TestValidate(t *testing.T) {
	var cfg Config
	require.Error(t, cfg.Validate())

	cfg.Strava.ClientID = "id"
	require.Error(t, cfg.Validate())

	cfg.Strava.ClientSecret = "secret"
	require.NoError(t, cfg.Validate())
}
