// Package tests holds shared helpers for the unit and integration suites.
package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/spotitab/spotitab"
)

// TestCredentials holds tokens for integration tests
type TestCredentials struct {
	AppToken  string
	UserToken string
	UserID    string
}

// GetTestCredentials retrieves test credentials from the environment,
// loading a .env file first when present. Returns nil when no app token is
// available.
func GetTestCredentials() *TestCredentials {
	// .env is optional; real env vars take precedence
	_ = godotenv.Load("../../.env", "../.env", ".env")

	appToken := os.Getenv("SPOTITAB_APP_TOKEN")
	if appToken == "" {
		return nil
	}

	return &TestCredentials{
		AppToken:  appToken,
		UserToken: os.Getenv("SPOTITAB_USER_TOKEN"),
		UserID:    os.Getenv("SPOTITAB_USER_ID"),
	}
}

// SkipIfNoCredentials skips the test if credentials are not available
func SkipIfNoCredentials(t *testing.T) {
	if GetTestCredentials() == nil {
		t.Skip("Skipping test: SPOTITAB_APP_TOKEN environment variable not set")
	}
}

// NewTestClient creates a client against the real API from env credentials
func NewTestClient(t *testing.T) (*spotitab.Client, error) {
	creds := GetTestCredentials()
	if creds == nil {
		return nil, fmt.Errorf("test credentials not available")
	}
	return spotitab.NewClient(spotitab.NewAuth(creds.AppToken, creds.UserToken))
}

// NewMockClient creates a client pointed at a mock server, with fixed
// app and user tokens ("app-token" / "user-token")
func NewMockClient(t *testing.T, server *httptest.Server) *spotitab.Client {
	t.Helper()
	client, err := spotitab.NewClient(
		spotitab.NewAuth("app-token", "user-token"),
		spotitab.WithAPIPrefix(server.URL+"/"),
	)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

// NewMockHTTPServer creates a mock HTTP server for testing
func NewMockHTTPServer(handler http.HandlerFunc) *httptest.Server {
	return httptest.NewServer(handler)
}

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// CreateErrorResponse creates a mock error envelope
func CreateErrorResponse(status int, message string, reason string) map[string]interface{} {
	return map[string]interface{}{
		"error": map[string]interface{}{
			"status":  status,
			"message": message,
			"reason":  reason,
		},
	}
}

// SimplePlaylistJSON builds one item of a playlist listing response
func SimplePlaylistJSON(id, name, ownerID string, total int, public bool) map[string]interface{} {
	return map[string]interface{}{
		"id":            id,
		"name":          name,
		"owner":         map[string]interface{}{"id": ownerID},
		"tracks":        map[string]interface{}{"href": "https://api.spotify.com/v1/playlists/" + id + "/tracks", "total": total},
		"public":        public,
		"collaborative": false,
		"uri":           "spotify:playlist:" + id,
		"href":          "https://api.spotify.com/v1/playlists/" + id,
	}
}

// PagingJSON wraps items in an offset paging envelope
func PagingJSON(items []map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"href":   "https://api.spotify.com/v1/",
		"items":  items,
		"limit":  len(items),
		"offset": 0,
		"total":  len(items),
	}
}

// TrackItemJSON builds one playlist track item with the given artists
func TrackItemJSON(id, name string, trackNumber, durationMs int, artists ...map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"added_at": "2024-01-01T00:00:00Z",
		"is_local": false,
		"track": map[string]interface{}{
			"id":           id,
			"name":         name,
			"track_number": trackNumber,
			"disc_number":  1,
			"duration_ms":  durationMs,
			"popularity":   50,
			"explicit":     false,
			"album":        map[string]interface{}{"id": "album" + id, "name": "Album of " + name},
			"artists":      artists,
			"uri":          "spotify:track:" + id,
		},
	}
}

// ArtistJSON builds one artist reference for TrackItemJSON
func ArtistJSON(id, name string) map[string]interface{} {
	return map[string]interface{}{"id": id, "name": name}
}

// StaticTokenFunc adapts a function to spotitab.TokenSource for failure cases
type StaticTokenFunc func(ctx context.Context) (string, error)

// Token implements spotitab.TokenSource
func (f StaticTokenFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// Known test data
var (
	TestTrackURI   = "spotify:track:6b2oQwSGFkzsMtQruIWm2p" // Creep
	TestTrackID    = "6b2oQwSGFkzsMtQruIWm2p"
	TestTrackURL   = "http://open.spotify.com/track/6b2oQwSGFkzsMtQruIWm2p"
	TestPlaylistID = "2oCEWyyAPbZp9xhVSxZavx"
)
