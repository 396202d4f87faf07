package seating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airplane-seating/model"
)

func TestParseSeat_Valid(t *testing.T) {
	cases := []struct {
		token string
		want  model.SeatReference
	}{
		{token: "1A", want: model.SeatReference{Row: 1, Column: 'A'}},
		{token: "10F", want: model.SeatReference{Row: 10, Column: 'F'}},
		{token: "3b", want: model.SeatReference{Row: 3, Column: 'B'}},
		{token: "007C", want: model.SeatReference{Row: 7, Column: 'C'}},
		// range checks happen later
		{token: "99Z", want: model.SeatReference{Row: 99, Column: 'Z'}},
		{token: "0A", want: model.SeatReference{Row: 0, Column: 'A'}},
	}

	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			got, err := ParseSeat(tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseSeat_Errors(t *testing.T) {
	cases := []struct {
		token string
		want  error
	}{
		{token: "", want: ErrTooShort},
		{token: "A", want: ErrTooShort},
		{token: "7", want: ErrTooShort},
		{token: "1X2", want: ErrNonNumericRow},
		{token: "AB", want: ErrNonNumericRow},
		{token: "+1A", want: ErrNonNumericRow},
		{token: "-1A", want: ErrNonNumericRow},
		{token: " 1A", want: ErrNonNumericRow},
	}

	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			_, err := ParseSeat(tc.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tc.token, parseErr.Token)
		})
	}
}

func TestParseSeat_OverflowingRowIsOutOfBounds(t *testing.T) {
	ref, err := ParseSeat("99999999999999999999999A")
	require.NoError(t, err)
	assert.Greater(t, ref.Row, model.Rows)
	assert.Equal(t, byte('A'), ref.Column)

	grid := NewGrid()
	grid.Initialize(NewFixedSource(true))
	svc := NewService(grid)
	_, err = svc.AttemptBooking(First, ref.Row, ref.Column)
	assert.ErrorIs(t, err, ErrRowOutOfBounds)
	assert.Equal(t, "Row must be between 1 and 13.", Message(err))
}

func TestSeatReference_String(t *testing.T) {
	ref, err := ParseSeat("10f")
	require.NoError(t, err)
	assert.Equal(t, "10F", ref.String())
}
