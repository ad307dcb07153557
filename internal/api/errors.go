// Package api is the single integration point with the remote VRChat web API.
// This file centralizes the error values and types the gateway returns so
// callers can tell a precondition failure from a transport failure from an
// error the API itself reported.
package api

import (
	"errors"
	"fmt"
)

var (
	// ErrClientTokenMissing is returned when an operation needs the anonymous
	// API key but AcquireClientToken has not run yet.
	ErrClientTokenMissing = errors.New("client token not set")

	// ErrAuthTokenMissing is returned when an authenticated operation runs
	// before a successful login.
	ErrAuthTokenMissing = errors.New("auth token not set")

	// ErrWritesDisabled is returned by write operations while the
	// allow-write-access setting is off.
	ErrWritesDisabled = errors.New("write access disabled in settings")
)

// NetworkError wraps a transport-level failure (DNS, TLS, connection reset).
// The call definitively failed; nothing was parsed and nothing was cached.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a structured error body returned by the remote API. It is
// passed through untouched; the gateway never retries or reinterprets it.
type APIError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return "api error: " + e.Message
}

type apiErrorBody struct {
	Error *APIError `json:"error"`
}
