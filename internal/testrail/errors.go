package testrail

import (
	"encoding/json"
	"fmt"
)

// APIError is returned when TestRail responds with a non-success HTTP
// status. The raw body is preserved so callers can distinguish "not found"
// from "validation failed" from "unauthorized".
type APIError struct {
	// StatusCode is the HTTP status TestRail returned.
	StatusCode int
	// Body is the raw response body.
	Body []byte
	// Message is the decoded TestRail error text, when the body carried one.
	Message string
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: body}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		apiErr.Message = payload.Error
	}
	return apiErr
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("TestRail API returned HTTP %d: %s", e.StatusCode, e.Message)
	}
	if len(e.Body) > 0 {
		return fmt.Sprintf("TestRail API returned HTTP %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("TestRail API returned HTTP %d", e.StatusCode)
}

// DecodeError is returned when a JSON endpoint responds with a body that is
// not valid JSON.
type DecodeError struct {
	// Endpoint is the API operation that produced the body.
	Endpoint string
	// Body is the undecodable response.
	Body []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("TestRail returned a non-JSON response for %s (%d bytes)", e.Endpoint, len(e.Body))
}
