package prompt

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/manifoldco/promptui"

	"airplane-seating/model"
	"airplane-seating/seating"
)

// Input supplies raw answers for the menu, class and seat prompts.
type Input interface {
	Menu() (string, error)
	Class() (string, error)
	Seat() (string, error)
}

// Session is the line-oriented booking loop.
type Session struct {
	svc      *seating.Service
	registry *seating.Registry
	in       Input
	out      io.Writer
	logger   *slog.Logger
}

func NewSession(svc *seating.Service, registry *seating.Registry, in Input, out io.Writer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{svc: svc, registry: registry, in: in, out: out, logger: logger}
}

// Run loops over the menu until the passenger exits. An interrupted or
// closed input ends the session without error.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, "Airplane Seating Assignment")
	for {
		choice, err := s.in.Menu()
		if err != nil {
			return endOfInput(err)
		}
		fmt.Fprintln(s.out)

		switch strings.TrimSpace(choice) {
		case "0":
			fmt.Fprintln(s.out, "Bye!")
			return nil
		case "1":
			s.printPlan()
		case "2":
			if err := s.book(); err != nil {
				return endOfInput(err)
			}
		default:
			fmt.Fprintln(s.out, "Invalid menu choice. Try again.")
			fmt.Fprintln(s.out)
		}
	}
}

func (s *Session) book() error {
	s.printPlan()

	class, err := s.askClass()
	if err != nil {
		return err
	}

	for {
		ref, err := s.askSeat()
		if err != nil {
			return err
		}

		booking, err := s.svc.AttemptBooking(class, ref.Row, ref.Column)
		if err != nil {
			fmt.Fprintln(s.out, seating.Message(err))
			fmt.Fprintln(s.out, "Please choose again.")
			s.printPlan()
			continue
		}

		fmt.Fprintf(s.out, "\n%s\nReference: %s\n\n", seating.Confirmation(booking), booking.Reference)
		return nil
	}
}

func (s *Session) askClass() (model.SeatClass, error) {
	for {
		raw, err := s.in.Class()
		if err != nil {
			return model.SeatClass{}, err
		}
		class, err := s.registry.LookupString(firstField(raw))
		if err != nil {
			s.logger.Debug("unknown class code", "input", raw)
			fmt.Fprintf(s.out, "%s\n\n", seating.Message(err))
			continue
		}
		return class, nil
	}
}

func (s *Session) askSeat() (model.SeatReference, error) {
	for {
		raw, err := s.in.Seat()
		if err != nil {
			return model.SeatReference{}, err
		}
		ref, err := seating.ParseSeat(firstField(raw))
		if err != nil {
			s.logger.Debug("seat token rejected", "input", raw, "err", err)
			fmt.Fprintf(s.out, "%s\n\n", seating.Message(err))
			continue
		}
		return ref, nil
	}
}

func (s *Session) printPlan() {
	fmt.Fprintln(s.out, RenderPlan(s.svc.Grid(), s.registry))
	fmt.Fprintln(s.out)
}

func endOfInput(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func firstField(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
