package seating

import "airplane-seating/model"

// Grid is the cabin's seat occupancy, indexed internally from zero.
type Grid struct {
	seats [model.Rows][model.Columns]model.SeatState
}

// NewGrid returns a grid with every seat available.
func NewGrid() *Grid {
	return &Grid{}
}

// Initialize sets each seat independently from src: a true draw leaves the
// seat available, a false draw marks it occupied.
func (g *Grid) Initialize(src RandomSource) {
	for r := range g.seats {
		for c := range g.seats[r] {
			if src.Bool() {
				g.seats[r][c] = model.Available
			} else {
				g.seats[r][c] = model.Occupied
			}
		}
	}
}

// State returns the state of the seat at a 1-based row and column letter.
func (g *Grid) State(row int, column byte) (model.SeatState, error) {
	r, c, err := index(row, column)
	if err != nil {
		return model.Available, err
	}
	return g.seats[r][c], nil
}

// IsAvailable reports whether the seat is free. Off-grid seats are never
// available.
func (g *Grid) IsAvailable(row int, column byte) bool {
	state, err := g.State(row, column)
	return err == nil && state == model.Available
}

// Book marks the seat occupied, whatever its current state.
func (g *Grid) Book(row int, column byte) error {
	r, c, err := index(row, column)
	if err != nil {
		return err
	}
	g.seats[r][c] = model.Occupied
	return nil
}

// Counts returns the number of available and occupied seats.
func (g *Grid) Counts() (available int, occupied int) {
	for r := range g.seats {
		for c := range g.seats[r] {
			if g.seats[r][c] == model.Available {
				available++
			} else {
				occupied++
			}
		}
	}
	return available, occupied
}

// Snapshot copies the current states, row-major, rows first.
func (g *Grid) Snapshot() [model.Rows][model.Columns]model.SeatState {
	return g.seats
}

func index(row int, column byte) (int, int, error) {
	if row < 1 || row > model.Rows {
		return 0, 0, ErrRowOutOfBounds
	}
	if !isValidColumn(column) {
		return 0, 0, ErrColumnOutOfBounds
	}
	return row - 1, int(column - model.FirstColumn), nil
}
