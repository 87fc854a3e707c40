package booking

import "time"

// Booking is the persisted aggregate. RecurringID is shared by every
// booking created together by one recurring request, empty otherwise.
type Booking struct {
	ID          string
	RecurringID string
	Name        string
	OwnerID     string
	Time        TimeSpan
	Resources   ResourceSet
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Caller identifies whoever is invoking an operation, as resolved by the
// surrounding identity layer.
type Caller struct {
	ID    string
	Admin bool
}

// CanAccess reports whether the caller may read the booking.
func CanAccess(caller Caller, b Booking) bool {
	return caller.Admin || caller.ID == b.OwnerID
}

// CanUpdate reports whether the caller may modify the booking. Owners can
// only touch active bookings that have not started yet; administrators can
// touch anything.
func CanUpdate(caller Caller, b Booking, now time.Time) bool {
	if caller.Admin {
		return true
	}

	return caller.ID == b.OwnerID && b.IsActive && !b.Time.Start().Before(now)
}
