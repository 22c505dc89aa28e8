package api

import "errors"

var (
	// ErrUnauthorized means the token is missing, malformed, or expired.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound means the server has no record with that id.
	ErrNotFound = errors.New("not found")
)

// RequestError carries the server's {error} body for 4xx/5xx answers that
// are not covered by a sentinel.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string { return e.Message }
