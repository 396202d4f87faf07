package model

import "fmt"

const (
	Rows        = 13
	Columns     = 6
	FirstColumn = 'A'
	LastColumn  = FirstColumn + Columns - 1
)

// SeatState is the occupancy of a single seat.
type SeatState int

const (
	Available SeatState = iota
	Occupied
)

func (s SeatState) String() string {
	switch s {
	case Available:
		return "available"
	case Occupied:
		return "occupied"
	default:
		return "unknown"
	}
}

// Symbol is the single-character marker used on the seating plan.
func (s SeatState) Symbol() string {
	if s == Occupied {
		return "X"
	}
	return "*"
}

type SeatClass struct {
	Code     byte   `json:"code"`
	RowStart int    `json:"rowStart"`
	RowEnd   int    `json:"rowEnd"`
	Name     string `json:"name"`
}

// Contains reports whether row falls inside the class's row range.
func (c SeatClass) Contains(row int) bool {
	return row >= c.RowStart && row <= c.RowEnd
}

func (c SeatClass) RangeLabel() string {
	return fmt.Sprintf("rows %d-%d", c.RowStart, c.RowEnd)
}

// SeatReference is a candidate seat parsed from user input. It is not
// guaranteed to be on the grid.
type SeatReference struct {
	Row    int  `json:"row"`
	Column byte `json:"column"`
}

func (s SeatReference) String() string {
	return fmt.Sprintf("%d%c", s.Row, s.Column)
}
