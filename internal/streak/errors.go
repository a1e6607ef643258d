package streak

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPeriodicity is returned for a periodicity other than daily or weekly.
	ErrInvalidPeriodicity = errors.New("invalid periodicity")
	// ErrParse matches every *ParseError via errors.Is.
	ErrParse = errors.New("malformed timestamp")
)

// ParseError reports a completion timestamp that could not be parsed.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", ErrParse, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }
