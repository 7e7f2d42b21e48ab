// Package kite implements a minimal Kite Connect style brokerage client:
// request-token exchange plus equity and mutual fund holdings retrieval.
// Market data endpoints are deliberately absent; prices only ever arrive as
// fields of the holdings the brokerage reports.
package kite

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// Client defines the brokerage operations the application depends on.
// This interface enables dependency injection and testing with mock implementations.
type Client interface {
	GenerateSession(ctx context.Context, requestToken string) (Session, error)
	Holdings(ctx context.Context, accessToken string) ([]Holding, error)
	MFHoldings(ctx context.Context, accessToken string) ([]MFHolding, error)
	InvalidateSession(ctx context.Context, accessToken string) error
}

// Holdings responses change slowly intraday, so they are cached briefly to
// keep repeated checkup runs from hammering the brokerage API.
const (
	holdingsCacheTTL     = 5 * time.Minute
	cacheCleanupInterval = 10 * time.Minute

	cacheKeyHoldings   = "holdings"
	cacheKeyMFHoldings = "mf_holdings"
)

// ConnectClient talks to the Kite Connect HTTP API.
type ConnectClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiSecret  string
	cache      *cache.Cache
}

// NewConnectClient creates a brokerage client for the given credentials.
// baseURL normally points at the public API; tests point it at a local
// httptest server.
func NewConnectClient(baseURL, apiKey, apiSecret string) *ConnectClient {
	return &ConnectClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		cache:      cache.New(holdingsCacheTTL, cacheCleanupInterval),
	}
}

// GenerateSession exchanges the request token handed back by the login
// redirect for an access token. The exchange is authenticated with a SHA-256
// checksum over api_key + request_token + api_secret, per the Kite Connect
// protocol.
func (c *ConnectClient) GenerateSession(ctx context.Context, requestToken string) (Session, error) {
	if requestToken == "" {
		return Session{}, fmt.Errorf("request token is empty")
	}

	form := url.Values{}
	form.Set("api_key", c.apiKey)
	form.Set("request_token", requestToken)
	form.Set("checksum", c.checksum(requestToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/session/token", strings.NewReader(form.Encode()))
	if err != nil {
		return Session{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Kite-Version", "3")

	var parsed sessionResponse
	if err := c.do(req, &parsed); err != nil {
		return Session{}, err
	}

	// A fresh session invalidates whatever the cache held for the old one.
	c.cache.Flush()

	return parsed.Data, nil
}

// Holdings fetches the equity holdings for the session, serving repeated
// calls from a short-lived cache.
func (c *ConnectClient) Holdings(ctx context.Context, accessToken string) ([]Holding, error) {
	if cached, found := c.cache.Get(cacheKeyHoldings); found {
		return cached.([]Holding), nil
	}

	req, err := c.newAuthorizedRequest(ctx, "/portfolio/holdings", accessToken)
	if err != nil {
		return nil, err
	}

	var parsed holdingsResponse
	if err := c.do(req, &parsed); err != nil {
		return nil, err
	}

	c.cache.Set(cacheKeyHoldings, parsed.Data, cache.DefaultExpiration)
	return parsed.Data, nil
}

// MFHoldings fetches the mutual fund holdings for the session, serving
// repeated calls from a short-lived cache.
func (c *ConnectClient) MFHoldings(ctx context.Context, accessToken string) ([]MFHolding, error) {
	if cached, found := c.cache.Get(cacheKeyMFHoldings); found {
		return cached.([]MFHolding), nil
	}

	req, err := c.newAuthorizedRequest(ctx, "/mf/holdings", accessToken)
	if err != nil {
		return nil, err
	}

	var parsed mfHoldingsResponse
	if err := c.do(req, &parsed); err != nil {
		return nil, err
	}

	c.cache.Set(cacheKeyMFHoldings, parsed.Data, cache.DefaultExpiration)
	return parsed.Data, nil
}

// InvalidateSession logs the access token out at the brokerage and drops any
// cached holdings.
func (c *ConnectClient) InvalidateSession(ctx context.Context, accessToken string) error {
	endpoint := fmt.Sprintf("%s/session/token?api_key=%s&access_token=%s",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Kite-Version", "3")

	var parsed envelope
	if err := c.do(req, &parsed); err != nil {
		return err
	}

	c.cache.Flush()
	return nil
}

// checksum computes the session exchange checksum.
func (c *ConnectClient) checksum(requestToken string) string {
	sum := sha256.Sum256([]byte(c.apiKey + requestToken + c.apiSecret))
	return hex.EncodeToString(sum[:])
}

// newAuthorizedRequest builds a GET request carrying the Kite authorization
// header for the given path.
func (c *ConnectClient) newAuthorizedRequest(ctx context.Context, path, accessToken string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Kite-Version", "3")
	req.Header.Set("Authorization", fmt.Sprintf("token %s:%s", c.apiKey, accessToken))
	return req, nil
}

// do executes a request and decodes the enveloped JSON response into out,
// converting API-level error envelopes into errors.
func (c *ConnectClient) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode brokerage response: %w", err)
	}

	if env := extractEnvelope(data); env.Status == "error" {
		return fmt.Errorf("brokerage error %s: %s", env.ErrorType, env.Message)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("brokerage request failed with status %d", resp.StatusCode)
	}

	return nil
}

// extractEnvelope re-parses just the envelope fields of a response body.
func extractEnvelope(data []byte) envelope {
	var env envelope
	_ = json.Unmarshal(data, &env)
	return env
}
