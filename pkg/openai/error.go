// Package openai provides the wire representation of the chat completions
// API this service relays conversations to, and a minimal client for calling
// it.
package openai

import "fmt"

// ErrorResponse represents an error returned by our own API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// APIError is a non-2xx reply from the completions API. The provider's
// message is carried unmodified; callers report it rather than interpret it.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("openai: upstream returned %d", e.StatusCode)
	}
	return fmt.Sprintf("openai: upstream returned %d: %s", e.StatusCode, e.Message)
}
