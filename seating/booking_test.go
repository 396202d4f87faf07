package seating

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airplane-seating/model"
)

func newTestService(t *testing.T, available bool) *Service {
	t.Helper()
	grid := NewGrid()
	grid.Initialize(NewFixedSource(available))
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return NewService(grid, WithClock(func() time.Time { return fixed }))
}

func TestAttemptBooking_EndToEnd(t *testing.T) {
	svc := newTestService(t, true)

	class, ok := DefaultRegistry().Lookup('B')
	require.True(t, ok)
	assert.Equal(t, 3, class.RowStart)
	assert.Equal(t, 7, class.RowEnd)

	booking, err := svc.AttemptBooking(class, 3, 'B')
	require.NoError(t, err)
	assert.Equal(t, model.SeatReference{Row: 3, Column: 'B'}, booking.Seat)
	assert.Equal(t, "Business", booking.ClassName)
	assert.NotEmpty(t, booking.Reference)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), booking.BookedAt)
	assert.False(t, svc.Grid().IsAvailable(3, 'B'))

	_, err = svc.AttemptBooking(class, 3, 'B')
	assert.ErrorIs(t, err, ErrSeatOccupied)
	assert.Equal(t, ReasonSeatOccupied, Reason(err))

	bookings := svc.Bookings()
	require.Len(t, bookings, 1)
	assert.Equal(t, booking, bookings[0])
}

func TestAttemptBooking_OccupiedLeavesGridUnchanged(t *testing.T) {
	svc := newTestService(t, false)
	before := svc.Grid().Snapshot()

	_, err := svc.AttemptBooking(Economy, 10, 'F')
	assert.ErrorIs(t, err, ErrSeatOccupied)
	assert.Equal(t, before, svc.Grid().Snapshot())
	assert.Empty(t, svc.Bookings())
}

func TestAttemptBooking_ValidationFailuresDoNotMutate(t *testing.T) {
	svc := newTestService(t, true)
	before := svc.Grid().Snapshot()

	cases := []struct {
		class  model.SeatClass
		row    int
		column byte
		want   error
	}{
		{class: First, row: 0, column: 'A', want: ErrRowOutOfBounds},
		{class: First, row: 14, column: 'Z', want: ErrRowOutOfBounds},
		{class: First, row: 1, column: 'G', want: ErrColumnOutOfBounds},
		{class: First, row: 5, column: 'A', want: ErrRowNotInClass},
		{class: Economy, row: 7, column: 'C', want: ErrRowNotInClass},
	}
	for _, tc := range cases {
		_, err := svc.AttemptBooking(tc.class, tc.row, tc.column)
		assert.ErrorIs(t, err, tc.want, "%s %d%c", tc.class.Name, tc.row, tc.column)
	}

	assert.Equal(t, before, svc.Grid().Snapshot())
	assert.Empty(t, svc.Bookings())
}

func TestAttemptBooking_StructuralErrorBeatsOccupied(t *testing.T) {
	svc := newTestService(t, false)

	_, err := svc.AttemptBooking(First, 5, 'A')
	assert.ErrorIs(t, err, ErrRowNotInClass)
}

func TestAttemptBooking_ConcurrentSingleWinner(t *testing.T) {
	svc := newTestService(t, true)

	const workers = 16
	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AttemptBooking(Economy, 12, 'E')
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, ErrSeatOccupied)
	}
	assert.Equal(t, 1, successes)
	assert.Len(t, svc.Bookings(), 1)
}
