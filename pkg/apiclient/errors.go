package apiclient

import (
	"errors"
	"fmt"
)

// Sentinel errors for API calls. Callers classify failures with errors.Is;
// the wrapped cause carries the detail for logs.
var (
	ErrRequestFailed        = errors.New("api request failed")
	ErrInvalidConfiguration = errors.New("invalid api client configuration")
	ErrPermanentFailure     = errors.New("permanent api failure")
	ErrTemporaryFailure     = errors.New("temporary api failure")
	ErrCircuitOpen          = errors.New("api circuit breaker is open")
	ErrInvalidPayload       = errors.New("invalid api request payload")
	ErrInvalidResponse      = errors.New("invalid api response")
	ErrInvalidURL           = errors.New("invalid api URL")
	ErrTimeout              = errors.New("api request timeout")
	ErrUnexpectedStatus     = errors.New("unexpected api response status")
)

// StatusError is returned when the server answers with a non-2xx status.
// It matches ErrUnexpectedStatus with errors.Is.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api returned status %d", e.Code)
	}
	return fmt.Sprintf("api returned status %d: %s", e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// IsCircuitOpen checks if an error indicates the circuit breaker is open
func IsCircuitOpen(err error) bool {
	return errors.Is(err, ErrCircuitOpen)
}

// StatusCode returns the HTTP status carried by err, or 0 when the request
// never produced a response.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}
