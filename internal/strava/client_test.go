package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newMockStrava stands in for the Strava OAuth and API endpoints.
func newMockStrava(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		switch r.Form.Get("grant_type") {
		case "authorization_code":
			if r.Form.Get("code") != "good-code" {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(w, `{"message":"Bad Request"}`)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"access_token":  "access-1",
				"refresh_token": "refresh-1",
				"expires_at":    time.Now().Add(6 * time.Hour).Unix(),
				"athlete": map[string]any{
					"id":         42,
					"firstname":  "Ana",
					"lastname":   "Ruiz",
					"sex":        "F",
					"premium":    true,
					"created_at": "2020-05-01T00:00:00Z",
				},
			})
		case "refresh_token":
			if r.Form.Get("refresh_token") != "refresh-1" {
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprint(w, `{"message":"invalid refresh token"}`)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"access_token":  "access-2",
				"refresh_token": "refresh-2",
				"expires_at":    time.Now().Add(6 * time.Hour).Unix(),
			})
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	})

	mux.HandleFunc("/api/v3/athlete", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-1" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"message":"Authorization Error"}`)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 42, "firstname": "Ana", "lastname": "Ruiz",
		})
	})

	mux.HandleFunc("/api/v3/athlete/activities", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-1" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"message":"Authorization Error"}`)
			return
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

		// two full pages, then a short one
		count := perPage
		if page == 3 {
			count = 1
		} else if page > 3 {
			count = 0
		}
		activities := make([]map[string]any, 0, count)
		for i := 0; i < count; i++ {
			id := (page-1)*perPage + i + 1
			activities = append(activities, map[string]any{
				"id":          id,
				"name":        fmt.Sprintf("Run %d", id),
				"type":        "Run",
				"distance":    5000.0,
				"moving_time": 1800,
				"start_date":  "2024-01-01T08:00:00Z",
			})
		}
		_ = json.NewEncoder(w).Encode(activities)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := New("client-id", "client-secret", "http://localhost/auth/callback", WithBaseURL(srv.URL))
	return srv, client
}

func TestExchange(t *testing.T) {
	_, client := newMockStrava(t)

	ex, err := client.Exchange(context.Background(), "good-code")
	require.NoError(t, err)
	require.Equal(t, "access-1", ex.AccessToken)
	require.Equal(t, "refresh-1", ex.RefreshToken)
	require.Equal(t, int64(42), ex.Athlete.ID)
	require.Equal(t, "Ana", ex.Athlete.Firstname)
}

func TestExchangeBadCode(t *testing.T) {
	_, client := newMockStrava(t)

	_, err := client.Exchange(context.Background(), "bad-code")
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, http.StatusBadRequest, ue.StatusCode)
	require.Contains(t, ue.Body, "Bad Request")
}

func TestRefresh(t *testing.T) {
	_, client := newMockStrava(t)

	tok, err := client.Refresh(context.Background(), "refresh-1")
	require.NoError(t, err)
	require.Equal(t, "access-2", tok.AccessToken)
	require.Equal(t, "refresh-2", tok.RefreshToken)
}

func TestGetAthlete(t *testing.T) {
	_, client := newMockStrava(t)

	athlete, err := client.GetAthlete(context.Background(), "access-1")
	require.NoError(t, err)
	require.Equal(t, int64(42), athlete.ID)
	require.Equal(t, "Ana Ruiz", athlete.Name())
}

func TestGetAthleteUnauthorized(t *testing.T) {
	_, client := newMockStrava(t)

	_, err := client.GetAthlete(context.Background(), "stale-token")
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, http.StatusUnauthorized, ue.StatusCode)
}

func TestGetAthleteNoToken(t *testing.T) {
	_, client := newMockStrava(t)

	_, err := client.GetAthlete(context.Background(), "")
	require.ErrorIs(t, err, ErrAuthRequired)
}

func TestGetActivitiesSinglePage(t *testing.T) {
	_, client := newMockStrava(t)

	activities, err := client.GetActivities(context.Background(), "access-1", 1, 10)
	require.NoError(t, err)
	require.Len(t, activities, 10)
	require.Equal(t, "Run 1", activities[0].Name)
}

func TestFetchAllActivitiesPaginates(t *testing.T) {
	_, client := newMockStrava(t)

	// pages 1 and 2 are full, page 3 is short: 2*10 + 1
	activities, err := client.FetchAllActivities(context.Background(), "access-1", 10)
	require.NoError(t, err)
	require.Len(t, activities, 21)
	require.Equal(t, int64(1), activities[0].ID)
	require.Equal(t, int64(21), activities[20].ID)
}

func TestTokenExpiringSoon(t *testing.T) {
	tok := Token{ExpiresAt: time.Now().Add(time.Hour).Unix()}
	require.False(t, tok.ExpiringSoon())

	tok.ExpiresAt = time.Now().Add(time.Minute).Unix()
	require.True(t, tok.ExpiringSoon())

	tok.ExpiresAt = time.Now().Add(-time.Hour).Unix()
	require.True(t, tok.ExpiringSoon())
}

func TestAuthCodeURL(t *testing.T) {
	client := New("client-id", "client-secret", "http://localhost/auth/callback")

	u := client.AuthCodeURL("state-nonce")
	require.Contains(t, u, "https://www.strava.com/oauth/authorize")
	require.Contains(t, u, "client_id=client-id")
	require.Contains(t, u, "state=state-nonce")
	require.Contains(t, u, "approval_prompt=auto")
	require.NotContains(t, u, "client-secret")
}
