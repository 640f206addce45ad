package desksdk

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"
)

// SDKClient talks to a clientdesk service. It performs unauthenticated
// calls and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the service at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSession returns a Session that sends accessToken as a bearer token.
func (c *SDKClient) NewSession(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service is ready to serve traffic.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// MintDevToken asks a development server for an access token. Servers that
// verify tokens from an external identity provider answer 404.
func (c *SDKClient) MintDevToken(ctx context.Context, req DevTokenRequest) (*DevTokenResponse, error) {
	body, err := encodeJSON(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/dev/token", body, jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out DevTokenResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Session is an authenticated handle on the service. The token can be
// replaced at any time, e.g. after the identity provider refreshed it.
type Session struct {
	client *SDKClient

	mu          sync.RWMutex
	accessToken string
}

// SetToken replaces the bearer token used by subsequent requests.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()
}

// AccessToken returns the current bearer token.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}
