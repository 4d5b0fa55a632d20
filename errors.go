package spotitab

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError represents an error returned by the Spotify Web API.
//
// It carries the HTTP status code, the service's error code, the request
// method and URL, and the message parsed from the error envelope. The error
// is surfaced exactly once, as-is: the client never retries or reclassifies.
//
// Example:
//
//	rows, err := client.UserPlaylists(ctx, userID, nil)
//	if err != nil {
//		var apiErr *spotitab.APIError
//		if errors.As(err, &apiErr) && apiErr.HTTPStatus == 404 {
//			// Unknown user
//		}
//	}
type APIError struct {
	HTTPStatus int
	Code       int
	URL        string // Request URL (separate from message)
	Method     string // HTTP method
	Message    string // Error message (without URL prefix)
	Reason     string
	Headers    map[string][]string
}

// Error implements the error interface with structured format
func (e *APIError) Error() string {
	var parts []string
	if e.Method != "" {
		parts = append(parts, fmt.Sprintf("HTTP %s", e.Method))
	}
	if e.URL != "" {
		parts = append(parts, e.URL)
	}
	if len(parts) > 0 {
		parts = append(parts, ":")
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if e.Reason != "" {
		parts = append(parts, fmt.Sprintf("(reason: %s)", e.Reason))
	}
	message := strings.Join(parts, " ")
	if message == "" {
		return fmt.Sprintf("http status: %d, code: %d", e.HTTPStatus, e.Code)
	}
	return fmt.Sprintf("http status: %d, code: %d - %s", e.HTTPStatus, e.Code, message)
}

// ErrorResponse represents the JSON structure of API error responses
type ErrorResponse struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
		Reason  string `json:"reason"`
	} `json:"error"`
}

// WrapHTTPError builds an *APIError for an HTTP error status code (>= 400).
// The body is parsed as the service's {"error": {...}} envelope when possible,
// otherwise kept raw as the message.
func WrapHTTPError(statusCode int, method string, url string, body []byte, headers map[string][]string) error {
	if statusCode < 400 {
		return nil
	}

	apiErr := &APIError{
		HTTPStatus: statusCode,
		Code:       -1,
		URL:        url,
		Method:     method,
		Message:    string(body),
		Headers:    headers,
	}

	var errorResp ErrorResponse
	if jsonErr := json.Unmarshal(body, &errorResp); jsonErr == nil {
		if errorResp.Error.Status != 0 {
			apiErr.Code = errorResp.Error.Status
		}
		if errorResp.Error.Message != "" {
			apiErr.Message = errorResp.Error.Message
		}
		if errorResp.Error.Reason != "" {
			apiErr.Reason = errorResp.Error.Reason
		}
	}

	return apiErr
}

// WrapJSONError wraps JSON decode errors with context
func WrapJSONError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to parse JSON response: %w", err)
}
