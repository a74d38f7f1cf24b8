// Package routes wires the HTTP surface: the thin Strava proxy (token
// exchange and authenticated data reads) and the export/prompt endpoints.
package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	scs "github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"

	appmw "github.com/stravalyze/stravalyze/internal/http/middleware"
	"github.com/stravalyze/stravalyze/internal/strava"
)

type Server struct {
	Router *chi.Mux
	Sess   *scs.SessionManager
	Strava *strava.Client
}

type ServerOptions struct {
	Sess   *scs.SessionManager
	Strava *strava.Client
}

func New(opts ServerOptions) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	s := &Server{Router: r, Sess: opts.Sess, Strava: opts.Strava}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/api/strava/auth/url", s.handleAuthURL)
	r.Post("/api/strava/auth/token", s.handleTokenExchange)
	r.Post("/api/strava/auth/logout", s.handleLogout)

	r.Group(func(pr chi.Router) {
		pr.Use(s.sessionToContext)
		pr.Use(appmw.RequireAuth)
		pr.Get("/api/strava/athlete", s.handleAthlete)
		pr.Get("/api/strava/activities", s.handleActivities)
		pr.Post("/api/export", s.handleExport)
		pr.Post("/api/prompt", s.handlePrompt)
	})

	return s
}

// sessionToContext flags requests whose session carries Strava tokens, so
// RequireAuth can gate the data endpoints.
func (s *Server) sessionToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Sess.GetString(r.Context(), sessAccessToken) != "" {
			r = r.WithContext(context.WithValue(r.Context(), appmw.ConnectedKey, true))
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// writeUpstream surfaces a provider failure with the upstream status code
// and raw body for diagnostics; it is not retried here beyond the
// documented refresh-then-retry-once on a 401.
func (s *Server) writeUpstream(w http.ResponseWriter, r *http.Request, err error) {
	var ue *strava.UpstreamError
	if errors.As(err, &ue) {
		hlog.FromRequest(r).Error().Int("status", ue.StatusCode).Str("body", ue.Body).Msg("strava upstream error")
		s.writeJSON(w, ue.StatusCode, map[string]any{
			"error":  "strava error",
			"status": ue.StatusCode,
			"body":   ue.Body,
		})
		return
	}
	if errors.Is(err, strava.ErrAuthRequired) {
		s.writeError(w, http.StatusUnauthorized, "strava authentication required")
		return
	}
	hlog.FromRequest(r).Error().Err(err).Msg("strava request failed")
	s.writeError(w, http.StatusBadGateway, "strava request failed")
}

func (s *Server) handleAuthURL(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	s.Sess.Put(r.Context(), sessOAuthState, state)
	s.writeJSON(w, http.StatusOK, map[string]string{
		"url": s.Strava.AuthCodeURL(state),
	})
}

func (s *Server) handleTokenExchange(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code  string `json:"code"`
		State string `json:"state"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		s.writeError(w, http.StatusBadRequest, "code required")
		return
	}
	if want := s.Sess.GetString(r.Context(), sessOAuthState); want != "" && req.State != want {
		s.writeError(w, http.StatusBadRequest, "invalid state")
		return
	}
	s.Sess.Remove(r.Context(), sessOAuthState)

	ex, err := s.Strava.Exchange(r.Context(), req.Code)
	if err != nil {
		s.writeUpstream(w, r, err)
		return
	}

	s.saveToken(r.Context(), ex.Token)
	s.saveAthlete(r.Context(), ex.Athlete)
	hlog.FromRequest(r).Info().Int64("athlete_id", ex.Athlete.ID).Msg("strava connected")

	s.writeJSON(w, http.StatusOK, map[string]any{
		"athlete":    ex.Athlete,
		"expires_at": ex.ExpiresAt,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearSession(r.Context())
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "disconnected"})
}
