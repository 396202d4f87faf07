package seating

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"airplane-seating/model"
)

// Booking is a successful booking attempt.
type Booking struct {
	Seat      model.SeatReference
	ClassName string
	Reference string
	BookedAt  time.Time
}

// Service runs the validate-then-book sequence against a single grid.
type Service struct {
	mu       sync.Mutex
	grid     *Grid
	logger   *slog.Logger
	now      func() time.Time
	newRef   func() string
	bookings []Booking
}

type ServiceOption func(*Service)

// WithLogger sets the logger used for booking attempts.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source stamped on bookings.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(grid *Grid, opts ...ServiceOption) *Service {
	svc := &Service{
		grid:   grid,
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
		newRef: uuid.NewString,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *Service) Grid() *Grid {
	return s.grid
}

// AttemptBooking validates the seat for class and, if it is free, marks it
// occupied. Failed attempts never touch the grid.
func (s *Service) AttemptBooking(class model.SeatClass, row int, column byte) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seat := model.SeatReference{Row: row, Column: column}
	log := s.logger.With("seat", seat.String(), "class", class.Name)

	if err := Validate(row, column, class); err != nil {
		log.Info("booking rejected", "reason", Reason(err).String())
		return Booking{}, err
	}
	if !s.grid.IsAvailable(row, column) {
		log.Info("booking rejected", "reason", ReasonSeatOccupied.String())
		return Booking{}, ErrSeatOccupied
	}
	if err := s.grid.Book(row, column); err != nil {
		return Booking{}, err
	}

	booking := Booking{
		Seat:      seat,
		ClassName: class.Name,
		Reference: s.newRef(),
		BookedAt:  s.now(),
	}
	s.bookings = append(s.bookings, booking)
	log.Info("seat booked", "reference", booking.Reference)
	return booking, nil
}

// Bookings returns the successful bookings made so far, oldest first.
func (s *Service) Bookings() []Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}
