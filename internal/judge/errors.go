package judge

import (
	"errors"
	"fmt"
)

// Failure taxonomy for judge calls. Rate-limit, connection/5xx and timeout
// errors are retryable; invalid requests are surfaced immediately; invalid
// responses go through lenient reconstruction before giving up.
var (
	ErrRateLimited     = errors.New("judge rate limited")
	ErrConnection      = errors.New("judge connection failure")
	ErrTimeout         = errors.New("judge request timed out")
	ErrInvalidRequest  = errors.New("judge rejected request")
	ErrInvalidResponse = errors.New("judge response invalid")
)

// ExhaustedError is returned when the retry budget is spent. It carries the
// last underlying cause so callers can still classify the failure.
type ExhaustedError struct {
	Attempts int
	Cause    error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("judge call failed after %d attempts: %v", e.Attempts, e.Cause)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Cause
}

// retryable reports whether a classified error is worth another attempt.
func retryable(err error) bool {
	return errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrConnection) ||
		errors.Is(err, ErrTimeout)
}
