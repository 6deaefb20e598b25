package transport

import (
	"fmt"

	"staykit/internal/pkg/errs"
)

// Fetch error taxonomy. Every error leaving this package is marked with
// exactly one of these sentinels; screens branch on the mark, never on
// status codes.
var (
	// ErrNetwork: the request produced no response at all.
	ErrNetwork = errs.New("network failure")
	// ErrServer: a non-2xx response with a structured message.
	ErrServer = errs.New("server error")
	// ErrAuthExpired: a 401-class response during a protected fetch.
	ErrAuthExpired = errs.New("authorization expired")
	// ErrValidation: client-side input rejection, no request issued.
	ErrValidation = errs.New("validation failure")
)

// APIError carries the structured body of a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// The predicates use errs.Is because the sentinels ride on errors as
// marks, which the standard library's errors.Is cannot see.

func IsNetwork(err error) bool {
	return errs.Is(err, ErrNetwork)
}

func IsServer(err error) bool {
	return errs.Is(err, ErrServer)
}

func IsAuthExpired(err error) bool {
	return errs.Is(err, ErrAuthExpired)
}

func IsValidation(err error) bool {
	return errs.Is(err, ErrValidation)
}
