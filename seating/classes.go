package seating

import "airplane-seating/model"

var (
	First    = model.SeatClass{Code: 'F', RowStart: 1, RowEnd: 2, Name: "First"}
	Business = model.SeatClass{Code: 'B', RowStart: 3, RowEnd: 7, Name: "Business"}
	Economy  = model.SeatClass{Code: 'E', RowStart: 8, RowEnd: model.Rows, Name: "Economy"}
)

// Registry is an immutable table of fare classes ordered by row.
type Registry struct {
	classes []model.SeatClass
}

// DefaultRegistry returns the First/Business/Economy table covering the cabin.
func DefaultRegistry() *Registry {
	return &Registry{classes: []model.SeatClass{First, Business, Economy}}
}

// Lookup matches code case-insensitively against the class codes.
func (r *Registry) Lookup(code byte) (model.SeatClass, bool) {
	code = toUpper(code)
	for _, class := range r.classes {
		if class.Code == code {
			return class, true
		}
	}
	return model.SeatClass{}, false
}

// LookupString is Lookup for raw input; anything other than a single
// character is rejected.
func (r *Registry) LookupString(input string) (model.SeatClass, error) {
	if len(input) != 1 {
		return model.SeatClass{}, ErrUnknownClass
	}
	class, ok := r.Lookup(input[0])
	if !ok {
		return model.SeatClass{}, ErrUnknownClass
	}
	return class, nil
}

// ForRow returns the class whose range contains row.
func (r *Registry) ForRow(row int) (model.SeatClass, bool) {
	for _, class := range r.classes {
		if class.Contains(row) {
			return class, true
		}
	}
	return model.SeatClass{}, false
}

func (r *Registry) All() []model.SeatClass {
	out := make([]model.SeatClass, len(r.classes))
	copy(out, r.classes)
	return out
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
