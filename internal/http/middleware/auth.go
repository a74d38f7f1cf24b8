package middleware

import (
	"encoding/json"
	"net/http"
)

type contextKey string

// ConnectedKey marks a request whose session holds Strava credentials.
const ConnectedKey contextKey = "strava_connected"

// RequireAuth rejects data requests made without a connected Strava
// session. The 401 body tells the UI to prompt for a reconnect.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		connected, _ := r.Context().Value(ConnectedKey).(bool)
		if !connected {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "strava authentication required",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
