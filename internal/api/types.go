// Package api defines the shared JSON response envelopes used by all handlers.
package api

// ErrorResponse is the uniform error body returned on request failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple informational response body.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a bearer token issued on successful authentication.
type TokenResponse struct {
	Token string `json:"token"`
}
