package seating

import (
	"errors"
	"fmt"
)

var (
	ErrTooShort          = errors.New("seat token too short")
	ErrNonNumericRow     = errors.New("row must be numeric")
	ErrUnknownClass      = errors.New("unknown seat class")
	ErrRowOutOfBounds    = errors.New("row out of bounds")
	ErrColumnOutOfBounds = errors.New("column out of bounds")
	ErrRowNotInClass     = errors.New("row not in class")
	ErrSeatOccupied      = errors.New("seat occupied")
)

// ParseError is returned when a seat token cannot be split into row and column.
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "invalid seat token"
	}
	return fmt.Sprintf("invalid seat token %q: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FailureReason tags why a booking attempt did not succeed.
type FailureReason int

const (
	ReasonNone FailureReason = iota
	ReasonRowOutOfBounds
	ReasonColumnOutOfBounds
	ReasonRowNotInClass
	ReasonSeatOccupied
)

func (r FailureReason) String() string {
	switch r {
	case ReasonRowOutOfBounds:
		return "RowOutOfBounds"
	case ReasonColumnOutOfBounds:
		return "ColumnOutOfBounds"
	case ReasonRowNotInClass:
		return "RowNotInClass"
	case ReasonSeatOccupied:
		return "SeatOccupied"
	default:
		return "None"
	}
}

// Reason maps a validation or booking error to its FailureReason.
func Reason(err error) FailureReason {
	switch {
	case err == nil:
		return ReasonNone
	case errors.Is(err, ErrRowOutOfBounds):
		return ReasonRowOutOfBounds
	case errors.Is(err, ErrColumnOutOfBounds):
		return ReasonColumnOutOfBounds
	case errors.Is(err, ErrRowNotInClass):
		return ReasonRowNotInClass
	case errors.Is(err, ErrSeatOccupied):
		return ReasonSeatOccupied
	default:
		return ReasonNone
	}
}
