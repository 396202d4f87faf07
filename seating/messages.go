package seating

import (
	"errors"
	"fmt"

	"airplane-seating/model"
)

// Message turns a parse, lookup, validation or booking error into the text
// shown to the passenger.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTooShort):
		return "Please enter a row number followed by a seat letter (e.g., 1A)."
	case errors.Is(err, ErrNonNumericRow):
		return "Row must be numeric (example: 10F)."
	case errors.Is(err, ErrUnknownClass):
		return "Invalid ticket type. Please enter F, B, or E."
	case errors.Is(err, ErrRowOutOfBounds):
		return fmt.Sprintf("Row must be between 1 and %d.", model.Rows)
	case errors.Is(err, ErrColumnOutOfBounds):
		return fmt.Sprintf("Seat letter must be between %c and %c.", model.FirstColumn, model.LastColumn)
	case errors.Is(err, ErrRowNotInClass):
		return "The row is not in the class you entered."
	case errors.Is(err, ErrSeatOccupied):
		return "That seat is already taken."
	default:
		return err.Error()
	}
}

// Confirmation is the success line for a booking.
func Confirmation(b Booking) string {
	return fmt.Sprintf("Seat %s booked in %s.", b.Seat, b.ClassName)
}
