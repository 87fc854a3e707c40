package booking_test

import (
	"testing"
	"time"

	bk "github.com/courtside/facility-booking-backend/booking"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2030, 5, 4, 0, 0, 0, 0, time.UTC)

func mustSpan(t *testing.T, start, end time.Time) bk.TimeSpan {
	t.Helper()
	span, err := bk.NewTimeSpan(start, end)
	require.Nil(t, err)

	return span
}

func TestNewTimeSpan(t *testing.T) {
	start := testDay.Add(10 * time.Hour)

	t.Run("exactly 30 minutes is valid", func(t *testing.T) {
		span, err := bk.NewTimeSpan(start, start.Add(30*time.Minute))

		require.Nil(t, err)
		require.Equal(t, 30*time.Minute, span.Duration())
	})

	t.Run("exactly 4 hours is valid", func(t *testing.T) {
		span, err := bk.NewTimeSpan(start, start.Add(4*time.Hour))

		require.Nil(t, err)
		require.Equal(t, 4*time.Hour, span.Duration())
	})

	t.Run("29 minutes is too short", func(t *testing.T) {
		_, err := bk.NewTimeSpan(start, start.Add(29*time.Minute))

		require.ErrorIs(t, err, bk.ErrInvalidTimeSpan)
	})

	t.Run("4 hours 1 minute is too long", func(t *testing.T) {
		_, err := bk.NewTimeSpan(start, start.Add(4*time.Hour+time.Minute))

		require.ErrorIs(t, err, bk.ErrInvalidTimeSpan)
	})

	t.Run("end equal to start", func(t *testing.T) {
		_, err := bk.NewTimeSpan(start, start)

		require.ErrorIs(t, err, bk.ErrInvalidTimeSpan)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := bk.NewTimeSpan(start, start.Add(-time.Hour))

		require.ErrorIs(t, err, bk.ErrInvalidTimeSpan)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var span bk.TimeSpan

		require.ErrorIs(t, span.Validate(), bk.ErrInvalidTimeSpan)
	})
}

func TestTimeSpanOverlaps(t *testing.T) {
	at := func(startHour, endHour int) bk.TimeSpan {
		return mustSpan(t, testDay.Add(time.Duration(startHour)*time.Hour), testDay.Add(time.Duration(endHour)*time.Hour))
	}

	cases := []struct {
		name     string
		a, b     bk.TimeSpan
		overlaps bool
	}{
		{"identical spans", at(10, 11), at(10, 11), true},
		{"partial overlap", at(10, 12), at(11, 13), true},
		{"containment", at(10, 14), at(11, 12), true},
		{"boundary touch is not a collision", at(8, 10), at(10, 11), false},
		{"disjoint", at(8, 9), at(12, 13), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b))

			// overlap is symmetric
			require.Equal(t, tc.a.Overlaps(tc.b), tc.b.Overlaps(tc.a))
		})
	}
}

func TestTimeSpanShift(t *testing.T) {
	span := mustSpan(t, testDay.Add(10*time.Hour), testDay.Add(11*time.Hour))
	shifted := span.Shift(30 * time.Minute)

	require.True(t, shifted.Start().Equal(testDay.Add(10*time.Hour+30*time.Minute)))
	require.Equal(t, span.Duration(), shifted.Duration())
}
