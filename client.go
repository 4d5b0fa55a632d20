// Package spotitab provides a Go client for the playlist endpoints of the
// Spotify Web API, returning responses as flat tabular records.
//
// Each operation performs a single HTTP request and reshapes the JSON payload
// into a row (or list of rows) suitable for CSV export or columnar processing.
// There is no pagination handling, no retrying, and no token management: the
// caller supplies ready-to-use tokens and receives errors as the service
// produced them.
//
// Quick Start:
//
//	auth := spotitab.NewAuth("app_bearer_token", "user_oauth_token")
//	client, err := spotitab.NewClient(auth)
//	if err != nil {
//		panic(err)
//	}
//
//	rows, err := client.UserPlaylists(context.Background(), "spotify", nil)
//
// For more information, see:
//   - Spotify Web API: https://developer.spotify.com/documentation/web-api
package spotitab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultAPIPrefix is the default Spotify Web API base URL
	DefaultAPIPrefix = "https://api.spotify.com/v1/"
	// DefaultTimeout is the default request timeout
	DefaultTimeout = 10 * time.Second
)

// Client is the playlist API client.
//
// It provides methods for the playlist endpoints of the Spotify Web API.
// All methods accept context.Context for cancellation and timeouts.
//
// Example:
//
//	auth := spotitab.NewAuth(appToken, userToken)
//	client, err := spotitab.NewClient(auth)
//	if err != nil {
//		panic(err)
//	}
//
//	detail, err := client.UserPlaylist(ctx, "spotify", "37i9dQZF1DXcBWIGoYBM5M")
type Client struct {
	HTTPClient     *http.Client  // Custom HTTP client (optional)
	Auth           *Auth         // Token configuration (required)
	APIPrefix      string        // API base URL (default: https://api.spotify.com/v1/)
	Language       string        // Language for localized responses
	RequestTimeout time.Duration // Request timeout
	Logger         *zap.Logger   // Logger for debugging
}

// ClientOption is a functional option for client configuration.
// Use With* functions to configure the client.
type ClientOption func(*Client)

// NewClient creates a new playlist API client.
//
// The auth parameter is required and carries the tokens attached to API
// requests. Use ClientOption functions to customize the client behavior.
//
// Example:
//
//	auth := spotitab.NewAuth(appToken, userToken)
//	client, err := spotitab.NewClient(auth,
//		spotitab.WithLanguage("en"),
//		spotitab.WithRequestTimeout(5*time.Second),
//	)
func NewClient(auth *Auth, opts ...ClientOption) (*Client, error) {
	if auth == nil {
		return nil, fmt.Errorf("auth configuration is required")
	}
	if auth.App == nil {
		return nil, fmt.Errorf("app token source is required")
	}

	client := &Client{
		Auth:           auth,
		APIPrefix:      DefaultAPIPrefix,
		RequestTimeout: DefaultTimeout,
		Logger:         zap.NewNop(),
	}

	// Apply options
	for _, opt := range opts {
		opt(client)
	}

	// Initialize HTTP client if not provided
	if client.HTTPClient == nil {
		client.HTTPClient = &http.Client{
			Timeout: client.RequestTimeout,
		}
	}

	return client, nil
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.HTTPClient = httpClient
	}
}

// WithLanguage sets the Accept-Language header
func WithLanguage(lang string) ClientOption {
	return func(c *Client) {
		c.Language = lang
	}
}

// WithRequestTimeout sets the request timeout
func WithRequestTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.RequestTimeout = timeout
		if c.HTTPClient != nil {
			c.HTTPClient.Timeout = timeout
		}
	}
}

// WithLogger sets a custom logger
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.Logger = logger
	}
}

// WithAPIPrefix sets a custom API prefix
func WithAPIPrefix(prefix string) ClientOption {
	return func(c *Client) {
		c.APIPrefix = prefix
	}
}

// _internal_call performs the core HTTP request: build URL, issue the call,
// surface non-success responses as *APIError, decode JSON into result.
// Errors propagate as-is; there is no retry loop.
func (c *Client) _internal_call(
	ctx context.Context,
	method string,
	urlStr string,
	params url.Values,
	body interface{},
	result interface{},
	token TokenSource,
) error {
	fullURL := c.buildURL(urlStr, params)

	tok, err := token.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to get access token: %w", err)
	}

	req, err := c.createRequest(ctx, method, fullURL, body, tok)
	if err != nil {
		return err
	}

	c.logRequest(req, body)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return WrapHTTPError(resp.StatusCode, method, fullURL, respBody, resp.Header)
	}

	c.logResponse(resp.StatusCode, respBody)

	if result != nil {
		if len(respBody) == 0 {
			// Empty response - valid for 204 No Content
			return nil
		}
		if err := json.Unmarshal(respBody, result); err != nil {
			return WrapJSONError(err)
		}
	}

	return nil
}

// _get issues a read request with the app bearer token
func (c *Client) _get(ctx context.Context, urlStr string, params url.Values, result interface{}) error {
	return c._internal_call(ctx, "GET", urlStr, params, nil, result, c.Auth.App)
}

// _post issues a mutating request with the user OAuth token
func (c *Client) _post(ctx context.Context, urlStr string, body interface{}, result interface{}) error {
	user, err := c.Auth.user()
	if err != nil {
		return err
	}
	return c._internal_call(ctx, "POST", urlStr, nil, body, result, user)
}

// _delete issues a DELETE with a JSON body using the user OAuth token
func (c *Client) _delete(ctx context.Context, urlStr string, body interface{}, result interface{}) error {
	user, err := c.Auth.user()
	if err != nil {
		return err
	}
	return c._internal_call(ctx, "DELETE", urlStr, nil, body, result, user)
}

// buildURL constructs the full URL from base URL and parameters.
// Query parameters pass through verbatim.
func (c *Client) buildURL(urlStr string, params url.Values) string {
	// If URL is absolute, use as-is
	fullURL := urlStr
	if !strings.HasPrefix(urlStr, "http://") && !strings.HasPrefix(urlStr, "https://") {
		fullURL = c.APIPrefix + strings.TrimPrefix(urlStr, "/")
	}

	if len(params) > 0 {
		if strings.Contains(fullURL, "?") {
			fullURL += "&" + params.Encode()
		} else {
			fullURL += "?" + params.Encode()
		}
	}

	return fullURL
}

// createRequest creates an HTTP request with proper headers and body
func (c *Client) createRequest(ctx context.Context, method, urlStr string, body interface{}, token string) (*http.Request, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, urlStr, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Language != "" {
		req.Header.Set("Accept-Language", c.Language)
	}

	return req, nil
}

// logRequest logs the request details
func (c *Client) logRequest(req *http.Request, body interface{}) {
	if c.Logger == nil {
		return
	}
	c.Logger.Debug("request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Any("body", body),
	)
}

// logResponse logs the response details
func (c *Client) logResponse(statusCode int, body []byte) {
	if c.Logger == nil {
		return
	}
	c.Logger.Debug("response",
		zap.Int("status", statusCode),
		zap.Int("bytes", len(body)),
	)
}
