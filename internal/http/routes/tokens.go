package routes

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/stravalyze/stravalyze/internal/model"
	"github.com/stravalyze/stravalyze/internal/strava"
)

// Session keys for the token lifecycle. The session store is the only
// place token material lives; nothing is persisted beyond it.
const (
	sessAccessToken  = "strava_access_token"
	sessRefreshToken = "strava_refresh_token"
	sessExpiresAt    = "strava_expires_at"
	sessAthlete      = "strava_athlete"
	sessOAuthState   = "strava_auth_state"
)

func (s *Server) saveToken(ctx context.Context, t strava.Token) {
	s.Sess.Put(ctx, sessAccessToken, t.AccessToken)
	s.Sess.Put(ctx, sessRefreshToken, t.RefreshToken)
	s.Sess.Put(ctx, sessExpiresAt, t.ExpiresAt)
}

func (s *Server) sessionToken(ctx context.Context) (strava.Token, error) {
	t := strava.Token{
		AccessToken:  s.Sess.GetString(ctx, sessAccessToken),
		RefreshToken: s.Sess.GetString(ctx, sessRefreshToken),
		ExpiresAt:    s.Sess.GetInt64(ctx, sessExpiresAt),
	}
	if t.AccessToken == "" {
		return strava.Token{}, strava.ErrAuthRequired
	}
	return t, nil
}

func (s *Server) saveAthlete(ctx context.Context, athlete model.Athlete) {
	b, err := json.Marshal(athlete)
	if err != nil {
		return
	}
	s.Sess.Put(ctx, sessAthlete, string(b))
}

func (s *Server) sessionAthlete(ctx context.Context) (model.Athlete, bool) {
	raw := s.Sess.GetString(ctx, sessAthlete)
	if raw == "" {
		return model.Athlete{}, false
	}
	var athlete model.Athlete
	if err := json.Unmarshal([]byte(raw), &athlete); err != nil {
		return model.Athlete{}, false
	}
	return athlete, true
}

func (s *Server) clearSession(ctx context.Context) {
	s.Sess.Remove(ctx, sessAccessToken)
	s.Sess.Remove(ctx, sessRefreshToken)
	s.Sess.Remove(ctx, sessExpiresAt)
	s.Sess.Remove(ctx, sessAthlete)
	s.Sess.Remove(ctx, sessOAuthState)
}

// accessToken returns a usable access token, refreshing first when the
// stored one is expired or expiring within the two-minute window.
func (s *Server) accessToken(ctx context.Context) (string, error) {
	t, err := s.sessionToken(ctx)
	if err != nil {
		return "", err
	}
	if t.ExpiringSoon() && t.RefreshToken != "" {
		fresh, err := s.Strava.Refresh(ctx, t.RefreshToken)
		if err != nil {
			return "", err
		}
		s.saveToken(ctx, *fresh)
		return fresh.AccessToken, nil
	}
	return t.AccessToken, nil
}

// withToken runs fn with a valid access token and, on a 401, refreshes
// and retries exactly once. Any other failure is returned as-is.
func (s *Server) withToken(ctx context.Context, fn func(accessToken string) error) error {
	access, err := s.accessToken(ctx)
	if err != nil {
		return err
	}
	err = fn(access)
	if !isUnauthorized(err) {
		return err
	}

	t, terr := s.sessionToken(ctx)
	if terr != nil || t.RefreshToken == "" {
		return err
	}
	fresh, rerr := s.Strava.Refresh(ctx, t.RefreshToken)
	if rerr != nil {
		return rerr
	}
	s.saveToken(ctx, *fresh)
	return fn(fresh.AccessToken)
}

func isUnauthorized(err error) bool {
	var ue *strava.UpstreamError
	return errors.As(err, &ue) && ue.StatusCode == 401
}
