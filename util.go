package spotitab

import (
	"fmt"
	"regexp"
	"strings"
)

// Valid entity types for Spotify URIs/URLs
var validEntityTypes = map[string]bool{
	"track":    true,
	"artist":   true,
	"album":    true,
	"playlist": true,
	"user":     true,
}

// Spotify URI pattern: spotify:track:ID or spotify:user:username:playlist:ID
var spotifyURIPattern = regexp.MustCompile(`^spotify:(?:(?P<type>track|artist|album|playlist):(?P<id>[0-9A-Za-z]+)|user:(?P<username>[0-9A-Za-z]+):playlist:(?P<playlistid>[0-9A-Za-z]+))$`)

// Spotify URL pattern: https://open.spotify.com/track/ID (with optional intl-XX/ or intl-XX-YY/)
// Handles query parameters, fragments, and trailing slashes
var spotifyURLPattern = regexp.MustCompile(`^https?://(?:(?:www|open)\.)?spotify\.com/(?:(?:intl-[a-z]{2}(?:-[A-Z]{2})?/)?)?(?P<type>track|artist|album|playlist|user)/(?P<id>[0-9A-Za-z]+)(?:[/?#].*)?$`)

// Base62 pattern for raw IDs
var base62Pattern = regexp.MustCompile(`^[0-9A-Za-z]+$`)

// GetID extracts a Spotify ID from URI, URL, or raw ID
// entityType is optional and used for validation
func GetID(uri string, entityType ...string) (string, error) {
	var expectedType string
	if len(entityType) > 0 {
		expectedType = entityType[0]
	}

	// Check if URI format
	if strings.HasPrefix(uri, "spotify:") {
		return parseURI(uri, expectedType)
	}

	// Check if URL format
	if strings.Contains(uri, "spotify.com") {
		return parseURL(uri, expectedType)
	}

	// Assume raw ID
	if expectedType != "" && !validEntityTypes[expectedType] {
		return "", fmt.Errorf("unsupported entity type: %s", expectedType)
	}

	if !isValidBase62(uri) {
		return "", fmt.Errorf("invalid base62 ID: %s", uri)
	}

	return uri, nil
}

// GetURI converts an ID to Spotify URI format
func GetURI(id, entityType string) (string, error) {
	if !validEntityTypes[entityType] {
		return "", fmt.Errorf("unsupported entity type: %s", entityType)
	}

	if !isValidBase62(id) {
		return "", fmt.Errorf("invalid base62 ID: %s", id)
	}

	return fmt.Sprintf("spotify:%s:%s", entityType, id), nil
}

// IsURI checks if a string is a valid Spotify URI
func IsURI(uri string) bool {
	return spotifyURIPattern.MatchString(uri)
}

// parseURI parses a Spotify URI and extracts the ID
func parseURI(uri string, expectedType string) (string, error) {
	matches := spotifyURIPattern.FindStringSubmatch(uri)
	if matches == nil {
		return "", fmt.Errorf("invalid Spotify URI format: %s", uri)
	}

	typeIdx := spotifyURIPattern.SubexpIndex("type")
	idIdx := spotifyURIPattern.SubexpIndex("id")
	playlistIDIdx := spotifyURIPattern.SubexpIndex("playlistid")

	var entityType, id string
	if matches[typeIdx] != "" && matches[idIdx] != "" {
		entityType = matches[typeIdx]
		id = matches[idIdx]
	} else if matches[playlistIDIdx] != "" {
		// User playlist format: spotify:user:username:playlist:ID
		entityType = "playlist"
		id = matches[playlistIDIdx]
	} else {
		return "", fmt.Errorf("invalid Spotify URI format: %s", uri)
	}

	if expectedType != "" && entityType != expectedType {
		return "", fmt.Errorf("entity type mismatch: expected %s, got %s", expectedType, entityType)
	}

	return id, nil
}

// parseURL parses a Spotify URL and extracts the ID
func parseURL(urlStr string, expectedType string) (string, error) {
	matches := spotifyURLPattern.FindStringSubmatch(urlStr)
	if matches == nil {
		return "", fmt.Errorf("invalid Spotify URL format: %s", urlStr)
	}

	entityType := matches[spotifyURLPattern.SubexpIndex("type")]
	id := matches[spotifyURLPattern.SubexpIndex("id")]

	if expectedType != "" && entityType != expectedType {
		return "", fmt.Errorf("entity type mismatch: expected %s, got %s", expectedType, entityType)
	}

	return id, nil
}

// isValidBase62 checks if a string is a valid base62 ID
func isValidBase62(id string) bool {
	if len(id) == 0 {
		return false
	}
	// Spotify IDs are typically 22 characters, but can vary
	return base62Pattern.MatchString(id)
}
