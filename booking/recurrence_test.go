package booking_test

import (
	"testing"
	"time"

	bk "github.com/courtside/facility-booking-backend/booking"
	"github.com/stretchr/testify/require"
)

func weeklyFixture(t *testing.T) (bk.RecurrenceRequest, time.Time) {
	t.Helper()

	return bk.RecurrenceRequest{
		Start:     time.Date(2021, 5, 4, 11, 0, 0, 0, time.UTC),
		End:       time.Date(2021, 5, 4, 12, 0, 0, 0, time.UTC),
		Cadence:   bk.CadenceWeekly,
		Horizon:   bk.HorizonCurrentYear,
		Resources: mustResources(t, true, false),
	}, time.Date(2021, 5, 3, 0, 0, 0, 0, time.UTC)
}

func TestExpandRecurrenceWeeklyCurrentYear(t *testing.T) {
	req, now := weeklyFixture(t)

	proposals, err := bk.ExpandRecurrence(req, now)

	require.Nil(t, err)
	require.Equal(t, 35, len(proposals))

	for i, p := range proposals {
		expected := req.Start.AddDate(0, 0, 7*i)

		require.True(t, p.Time.Start().Equal(expected), "occurrence %d: expected %v, got %v", i, expected, p.Time.Start())
		require.Equal(t, time.Hour, p.Time.Duration())
		require.Equal(t, req.Resources, p.Resources)
	}

	last := proposals[len(proposals)-1].Time.Start()
	require.True(t, last.Equal(time.Date(2021, 12, 28, 11, 0, 0, 0, time.UTC)))
}

func TestExpandRecurrenceWeeklyHalfYear(t *testing.T) {
	req, now := weeklyFixture(t)
	req.Horizon = bk.HorizonHalfYear

	proposals, err := bk.ExpandRecurrence(req, now)

	require.Nil(t, err)
	require.Equal(t, 27, len(proposals))

	last := proposals[len(proposals)-1].Time.Start()
	require.True(t, last.Equal(time.Date(2021, 11, 2, 11, 0, 0, 0, time.UTC)))
}

func TestExpandRecurrenceMonthlyClampsDayOfMonth(t *testing.T) {
	req := bk.RecurrenceRequest{
		Start:     time.Date(2021, 1, 31, 10, 0, 0, 0, time.UTC),
		End:       time.Date(2021, 1, 31, 11, 0, 0, 0, time.UTC),
		Cadence:   bk.CadenceMonthly,
		Horizon:   bk.HorizonCurrentYear,
		Resources: mustResources(t, false, true),
	}
	now := time.Date(2021, 1, 30, 0, 0, 0, 0, time.UTC)

	proposals, err := bk.ExpandRecurrence(req, now)

	require.Nil(t, err)
	require.Equal(t, 12, len(proposals))

	expectedDays := []time.Time{
		time.Date(2021, 1, 31, 10, 0, 0, 0, time.UTC),
		time.Date(2021, 2, 28, 10, 0, 0, 0, time.UTC),
		time.Date(2021, 3, 31, 10, 0, 0, 0, time.UTC),
		time.Date(2021, 4, 30, 10, 0, 0, 0, time.UTC),
		time.Date(2021, 5, 31, 10, 0, 0, 0, time.UTC),
		time.Date(2021, 6, 30, 10, 0, 0, 0, time.UTC),
		time.Date(2021, 7, 31, 10, 0, 0, 0, time.UTC),
		time.Date(2021, 8, 31, 10, 0, 0, 0, time.UTC),
		time.Date(2021, 9, 30, 10, 0, 0, 0, time.UTC),
		time.Date(2021, 10, 31, 10, 0, 0, 0, time.UTC),
		time.Date(2021, 11, 30, 10, 0, 0, 0, time.UTC),
		time.Date(2021, 12, 31, 10, 0, 0, 0, time.UTC),
	}

	for i, expected := range expectedDays {
		require.True(t, proposals[i].Time.Start().Equal(expected), "occurrence %d: expected %v, got %v", i, expected, proposals[i].Time.Start())
	}
}

func TestExpandRecurrenceIncludedAndExcludedDates(t *testing.T) {
	req, now := weeklyFixture(t)
	req.IncludedDates = []time.Time{time.Date(2021, 5, 5, 0, 0, 0, 0, time.UTC)}
	req.ExcludedDates = []time.Time{time.Date(2021, 5, 11, 0, 0, 0, 0, time.UTC)}

	proposals, err := bk.ExpandRecurrence(req, now)

	require.Nil(t, err)
	require.Equal(t, 35, len(proposals))

	starts := make(map[time.Time]bool, len(proposals))

	for _, p := range proposals {
		starts[p.Time.Start()] = true
	}

	// The included one-off keeps the template's time of day.
	require.True(t, starts[time.Date(2021, 5, 5, 11, 0, 0, 0, time.UTC)])
	require.False(t, starts[time.Date(2021, 5, 11, 11, 0, 0, 0, time.UTC)])
}

func TestExpandRecurrenceDeduplicatesIncludedCadenceDates(t *testing.T) {
	req, now := weeklyFixture(t)

	// Already on the cadence; must not produce a second occurrence.
	req.IncludedDates = []time.Time{time.Date(2021, 5, 4, 0, 0, 0, 0, time.UTC)}

	proposals, err := bk.ExpandRecurrence(req, now)

	require.Nil(t, err)
	require.Equal(t, 35, len(proposals))
}

func TestExpandRecurrenceRejectsBadTemplates(t *testing.T) {
	req, now := weeklyFixture(t)

	t.Run("past template", func(t *testing.T) {
		_, err := bk.ExpandRecurrence(req, time.Date(2021, 5, 4, 11, 30, 0, 0, time.UTC))

		require.ErrorIs(t, err, bk.ErrPastTime)
	})

	t.Run("invalid duration", func(t *testing.T) {
		bad := req
		bad.End = bad.Start.Add(5 * time.Hour)

		_, err := bk.ExpandRecurrence(bad, now)

		require.ErrorIs(t, err, bk.ErrInvalidTimeSpan)
	})

	t.Run("no resource selected", func(t *testing.T) {
		bad := req
		bad.Resources = bk.ResourceSet{}

		_, err := bk.ExpandRecurrence(bad, now)

		require.ErrorIs(t, err, bk.ErrNoResourceSelected)
	})

	t.Run("unknown cadence", func(t *testing.T) {
		bad := req
		bad.Cadence = "daily"

		_, err := bk.ExpandRecurrence(bad, now)

		require.ErrorIs(t, err, bk.ErrInvalidCadence)
	})

	t.Run("unknown horizon", func(t *testing.T) {
		bad := req
		bad.Horizon = "decade"

		_, err := bk.ExpandRecurrence(bad, now)

		require.ErrorIs(t, err, bk.ErrInvalidHorizon)
	})
}
