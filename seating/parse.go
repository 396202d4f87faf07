package seating

import (
	"errors"
	"math"
	"strconv"

	"airplane-seating/model"
)

// ParseSeat splits a token such as "10F" into a row and an upper-cased column
// letter. Range checks are left to Validate. The token is not trimmed.
func ParseSeat(token string) (model.SeatReference, error) {
	if len(token) < 2 {
		return model.SeatReference{}, &ParseError{Token: token, Err: ErrTooShort}
	}

	rowPart := token[:len(token)-1]
	for i := 0; i < len(rowPart); i++ {
		if rowPart[i] < '0' || rowPart[i] > '9' {
			return model.SeatReference{}, &ParseError{Token: token, Err: ErrNonNumericRow}
		}
	}

	row, err := strconv.Atoi(rowPart)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return model.SeatReference{}, &ParseError{Token: token, Err: ErrNonNumericRow}
		}
		// too many digits for an int; still a row, just off the grid
		row = math.MaxInt
	}

	return model.SeatReference{Row: row, Column: toUpper(token[len(token)-1])}, nil
}
