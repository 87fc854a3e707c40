package booking

import (
	"sort"
	"time"
)

type Cadence string

const (
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

type Horizon string

const (
	// HorizonCurrentYear expands through the last day of the current
	// calendar year.
	HorizonCurrentYear Horizon = "currentYear"
	// HorizonHalfYear expands through six months from now.
	HorizonHalfYear Horizon = "halfYear"
)

// RecurrenceRequest is the template for a batch of dated proposals: the
// Start/End difference fixes the per-occurrence duration, IncludedDates
// are one-off extras and ExcludedDates drop cadence dates.
type RecurrenceRequest struct {
	Start         time.Time
	End           time.Time
	Cadence       Cadence
	Horizon       Horizon
	IncludedDates []time.Time
	ExcludedDates []time.Time
	Resources     ResourceSet
}

// ExpandRecurrence turns the template into concrete proposals, one per
// occurrence, stepping by the cadence from the template start through the
// horizon end. Occurrences keep the template's time of day and duration.
// A template that already started is rejected before any expansion.
func ExpandRecurrence(req RecurrenceRequest, now time.Time) ([]Proposal, error) {
	span, err := NewTimeSpan(req.Start, req.End)

	if err != nil {
		return nil, err
	}

	if err := req.Resources.Validate(); err != nil {
		return nil, err
	}

	if req.Start.Before(now) {
		return nil, ErrPastTime
	}

	horizonEnd, err := horizonEnd(req.Horizon, now, req.Start.Location())

	if err != nil {
		return nil, err
	}

	starts, err := cadenceDates(req.Cadence, req.Start, horizonEnd)

	if err != nil {
		return nil, err
	}

	for _, included := range req.IncludedDates {
		starts = append(starts, atTimeOfDay(included, req.Start))
	}

	excluded := make(map[string]bool, len(req.ExcludedDates))

	for _, date := range req.ExcludedDates {
		excluded[dayKey(date)] = true
	}

	duration := span.Duration()
	seen := make(map[int64]bool, len(starts))
	proposals := make([]Proposal, 0, len(starts))

	for _, start := range starts {
		if excluded[dayKey(start)] || seen[start.UnixNano()] {
			continue
		}

		seen[start.UnixNano()] = true

		occurrence, err := NewTimeSpan(start, start.Add(duration))

		if err != nil {
			return nil, err
		}

		proposals = append(proposals, Proposal{Time: occurrence, Resources: req.Resources})
	}

	sort.Slice(proposals, func(i, j int) bool {
		return proposals[i].Time.Start().Before(proposals[j].Time.Start())
	})

	return proposals, nil
}

func horizonEnd(horizon Horizon, now time.Time, loc *time.Location) (time.Time, error) {
	switch horizon {
	case HorizonCurrentYear:
		return time.Date(now.Year(), 12, 31, 23, 59, 59, 0, loc), nil
	case HorizonHalfYear:
		return now.AddDate(0, 6, 0), nil
	default:
		return time.Time{}, ErrInvalidHorizon
	}
}

func cadenceDates(cadence Cadence, start, horizonEnd time.Time) ([]time.Time, error) {
	var dates []time.Time

	switch cadence {
	case CadenceWeekly:
		for d := start; !d.After(horizonEnd); d = d.AddDate(0, 0, 7) {
			dates = append(dates, d)
		}
	case CadenceMonthly:
		// Months shorter than the anchor's day-of-month clamp to their
		// last day, so an anchor on the 31st still lands once per month.
		for months := 0; ; months++ {
			d := addMonthsClamped(start, months)

			if d.After(horizonEnd) {
				break
			}

			dates = append(dates, d)
		}
	default:
		return nil, ErrInvalidCadence
	}

	return dates, nil
}

func addMonthsClamped(anchor time.Time, months int) time.Time {
	year, month, _ := anchor.AddDate(0, 0, -anchor.Day()+1).AddDate(0, months, 0).Date()

	day := anchor.Day()

	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}

	return time.Date(year, month, day,
		anchor.Hour(), anchor.Minute(), anchor.Second(), anchor.Nanosecond(), anchor.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func atTimeOfDay(date, template time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		template.Hour(), template.Minute(), template.Second(), template.Nanosecond(), template.Location())
}

func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
