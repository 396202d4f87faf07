package seating

import "airplane-seating/model"

// Validate checks a seat choice against the cabin bounds and the chosen
// class. Checks run in a fixed order and stop at the first failure: row
// bounds, column bounds, then class range. Availability is not checked here.
func Validate(row int, column byte, class model.SeatClass) error {
	if row < 1 || row > model.Rows {
		return ErrRowOutOfBounds
	}
	if !isValidColumn(column) {
		return ErrColumnOutOfBounds
	}
	if !class.Contains(row) {
		return ErrRowNotInClass
	}
	return nil
}

func isValidColumn(column byte) bool {
	return column >= model.FirstColumn && column <= model.LastColumn
}
