package main

import (
	"net/http"
	"os"
	"time"

	scs "github.com/alexedwards/scs/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/stravalyze/stravalyze/internal/config"
	"github.com/stravalyze/stravalyze/internal/http/routes"
	"github.com/stravalyze/stravalyze/internal/strava"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Sessions hold the Strava token lifecycle; nothing is persisted
	// beyond them.
	sess := scs.New()
	sess.Lifetime = 12 * time.Hour
	sess.Cookie.HttpOnly = true
	sess.Cookie.SameSite = http.SameSiteLaxMode

	client := strava.New(cfg.Strava.ClientID, cfg.Strava.ClientSecret, cfg.Strava.RedirectURL)

	s := routes.New(routes.ServerOptions{
		Sess:   sess,
		Strava: client,
	})
	h := hlog.NewHandler(logger)(s.Router)

	logger.Info().Str("port", cfg.Port).Msg("starting server")
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: sess.LoadAndSave(h)}
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
