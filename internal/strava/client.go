// Package strava is the authenticated client for the Strava v3 API: the
// authorization-code exchange, token refresh, and the two data reads the
// app needs. Client-secret material stays here, server-side.
package strava

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/stravalyze/stravalyze/internal/model"
)

const (
	defaultAPIBase = "https://www.strava.com/api/v3"
	authURL        = "https://www.strava.com/oauth/authorize"
	tokenURL       = "https://www.strava.com/oauth/token"
)

// ErrAuthRequired means no usable access token was presented; the UI
// should prompt the user to reconnect.
var ErrAuthRequired = errors.New("strava authentication required")

// UpstreamError is a non-success response from Strava, kept with the raw
// body for diagnostics.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("strava status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the Strava API.
type Client struct {
	conf       *oauth2.Config
	httpClient *http.Client
	apiBase    string
	tokenURL   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL points the client at a different API host. Used by tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.apiBase = base + "/api/v3"
		c.tokenURL = base + "/oauth/token"
		c.conf.Endpoint.TokenURL = c.tokenURL
		c.conf.Endpoint.AuthURL = base + "/oauth/authorize"
	}
}

// New builds a client for one registered Strava application.
func New(clientID, clientSecret, redirectURL string, opts ...Option) *Client {
	c := &Client{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"read", "activity:read_all"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
			},
		},
		httpClient: &http.Client{Timeout: 20 * time.Second},
		apiBase:    defaultAPIBase,
		tokenURL:   tokenURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AuthCodeURL returns the Strava authorize URL for the given state nonce.
func (c *Client) AuthCodeURL(state string) string {
	return c.conf.AuthCodeURL(state,
		oauth2.SetAuthURLParam("approval_prompt", "auto"),
	)
}

// Token is the credential triple stored per session.
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"` // epoch seconds
}

// ExpiringSoon reports whether the access token is within the refresh
// window (expired or expiring in under two minutes).
func (t Token) ExpiringSoon() bool {
	return time.Until(time.Unix(t.ExpiresAt, 0)) < 2*time.Minute
}

// TokenExchange is the full token-endpoint response; the initial code
// exchange also carries the athlete profile.
type TokenExchange struct {
	Token
	Athlete model.Athlete `json:"athlete"`
}

// Exchange trades an authorization code for tokens plus the athlete
// record.
func (c *Client) Exchange(ctx context.Context, code string) (*TokenExchange, error) {
	return c.postToken(ctx, url.Values{
		"client_id":     {c.conf.ClientID},
		"client_secret": {c.conf.ClientSecret},
		"code":          {code},
		"grant_type":    {"authorization_code"},
	})
}

// Refresh trades a refresh token for a fresh credential triple.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	ex, err := c.postToken(ctx, url.Values{
		"client_id":     {c.conf.ClientID},
		"client_secret": {c.conf.ClientSecret},
		"refresh_token": {refreshToken},
		"grant_type":    {"refresh_token"},
	})
	if err != nil {
		return nil, err
	}
	return &ex.Token, nil
}

func (c *Client) postToken(ctx context.Context, form url.Values) (*TokenExchange, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("strava token request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	var ex TokenExchange
	if err := json.Unmarshal(body, &ex); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	return &ex, nil
}

// GetAthlete fetches the authenticated athlete's profile.
func (c *Client) GetAthlete(ctx context.Context, accessToken string) (model.Athlete, error) {
	var athlete model.Athlete
	err := c.apiGET(ctx, accessToken, "/athlete", nil, &athlete)
	return athlete, err
}

// GetActivities fetches one page of the athlete's activities, newest
// first. A full page signals more pages may exist; the caller decides
// whether to fetch further.
func (c *Client) GetActivities(ctx context.Context, accessToken string, page, perPage int) ([]model.Activity, error) {
	var activities []model.Activity
	params := url.Values{
		"page":     {strconv.Itoa(page)},
		"per_page": {strconv.Itoa(perPage)},
	}
	err := c.apiGET(ctx, accessToken, "/athlete/activities", params, &activities)
	return activities, err
}

// FetchAllActivities walks pages until a short page ends the listing.
func (c *Client) FetchAllActivities(ctx context.Context, accessToken string, perPage int) ([]model.Activity, error) {
	var all []model.Activity
	for page := 1; ; page++ {
		batch, err := c.GetActivities(ctx, accessToken, page, perPage)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < perPage {
			return all, nil
		}
	}
}

func (c *Client) apiGET(ctx context.Context, accessToken, path string, params url.Values, out any) error {
	if accessToken == "" {
		return ErrAuthRequired
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+path, nil)
	if err != nil {
		return err
	}
	if params != nil {
		req.URL.RawQuery = params.Encode()
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.StatusCode >= 300 {
		return &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
