// Package surety
package surety

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("not found")
	ErrDuplicate         = errors.New("duplicate")
	ErrInsufficientValue = errors.New("insufficient value")
	ErrValueTooHigh      = errors.New("value too high")
	ErrNotOperational    = errors.New("not operational")
	ErrAlreadyClaimed    = errors.New("already claimed")
	ErrNothingToClaim    = errors.New("nothing to claim")

	// ErrInvalidArgument rejects malformed input such as empty identities or unknown status codes
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFlightClosed rejects purchases on a flight whose status is already final
	ErrFlightClosed = fmt.Errorf("%w: flight status already finalized", ErrUnauthorized)
)

// Errorf wraps a taxonomy sentinel with context while keeping it matchable by errors.Is
func Errorf(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
