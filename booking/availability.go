package booking

import (
	"context"
	"time"
)

// Proposal is one candidate slot to test against the persisted bookings.
// ExcludedBookingID removes that booking from the candidate set, so an
// update does not collide with its own pre-update self.
type Proposal struct {
	Time              TimeSpan
	Resources         ResourceSet
	ExcludedBookingID string
}

func (p Proposal) Validate() error {
	if err := p.Time.Validate(); err != nil {
		return err
	}

	return p.Resources.Validate()
}

type resultKey struct {
	start       int64
	end         int64
	tableTennis bool
	badminton   bool
}

func keyOf(span TimeSpan, resources ResourceSet) resultKey {
	return resultKey{
		start:       span.Start().UnixNano(),
		end:         span.End().UnixNano(),
		tableTennis: resources.TableTennis(),
		badminton:   resources.Badminton(),
	}
}

// Result maps each submitted proposal back to its availability. Lookups
// use the same TimeSpan and ResourceSet the caller submitted.
type Result struct {
	available map[resultKey]bool
}

// NewResult builds a Result from explicit per-proposal outcomes.
func NewResult(outcomes map[Proposal]bool) Result {
	result := Result{available: make(map[resultKey]bool, len(outcomes))}

	for p, ok := range outcomes {
		result.available[keyOf(p.Time, p.Resources)] = ok
	}

	return result
}

func (r Result) Available(span TimeSpan, resources ResourceSet) bool {
	return r.available[keyOf(span, resources)]
}

func (r Result) AllAvailable() bool {
	for _, ok := range r.available {
		if !ok {
			return false
		}
	}

	return true
}

// ActiveBookingSource is the slice of the store the checker needs: every
// active booking whose time range intersects [from, to).
type ActiveBookingSource interface {
	GetActiveBookingsInRange(ctx context.Context, from, to time.Time) ([]Booking, error)
}

// Checker decides which proposals collide with existing active bookings.
// However many proposals are submitted, it issues at most one store query.
type Checker struct {
	source ActiveBookingSource
	now    func() time.Time
}

func NewChecker(source ActiveBookingSource) *Checker {
	return &Checker{source: source, now: time.Now}
}

// IsAvailable validates every proposal, rejects past ones, then resolves
// all of them against a single fetch of the bookings inside the proposals'
// combined time window. Validation and past-time failures return before
// the store is touched.
func (c *Checker) IsAvailable(ctx context.Context, proposals []Proposal) (Result, error) {
	now := c.now()

	var from, to time.Time

	for i, p := range proposals {
		if err := p.Validate(); err != nil {
			return Result{}, err
		}

		if p.Time.Start().Before(now) {
			return Result{}, ErrPastTime
		}

		if i == 0 || p.Time.Start().Before(from) {
			from = p.Time.Start()
		}

		if i == 0 || p.Time.End().After(to) {
			to = p.Time.End()
		}
	}

	result := Result{available: make(map[resultKey]bool, len(proposals))}

	if len(proposals) == 0 {
		return result, nil
	}

	existing, err := c.source.GetActiveBookingsInRange(ctx, from, to)

	if err != nil {
		return Result{}, err
	}

	for _, p := range proposals {
		result.available[keyOf(p.Time, p.Resources)] = !collidesWithAny(p, existing)
	}

	return result, nil
}

func collidesWithAny(p Proposal, existing []Booking) bool {
	for _, b := range existing {
		if !b.IsActive || b.ID == p.ExcludedBookingID {
			continue
		}

		if b.Time.Overlaps(p.Time) && b.Resources.Intersects(p.Resources) {
			return true
		}
	}

	return false
}
