package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking_service.go -destination=mocks/booking_store_mock.go -package=mocks
type BookingStore interface {
	GetActiveBookings(ctx context.Context) ([]Booking, error)
	GetActiveBookingsInRange(ctx context.Context, from, to time.Time) ([]Booking, error)
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	GetBookingsByIDs(ctx context.Context, ids []string) ([]Booking, error)
	GetBookingsPerOwner(ctx context.Context, ownerID string) ([]Booking, error)
	InsertBooking(ctx context.Context, booking Booking) (Booking, error)
	InsertBookings(ctx context.Context, bookings []Booking) ([]Booking, error)
	UpdateBookings(ctx context.Context, bookings []Booking) error
}

type Service struct {
	store   BookingStore
	checker *Checker
	now     func() time.Time
}

func NewService(store BookingStore) *Service {
	return &Service{store: store, checker: NewChecker(store), now: time.Now}
}

func (s *Service) GetActiveBookings(ctx context.Context) ([]Booking, error) {
	return s.store.GetActiveBookings(ctx)
}

func (s *Service) FindBookingByID(ctx context.Context, caller Caller, id string) (Booking, error) {
	booking, err := s.store.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if !CanAccess(caller, booking) {
		return Booking{}, ErrNotAuthorized
	}

	return booking, nil
}

func (s *Service) FindBookingsPerOwner(ctx context.Context, ownerID string) ([]Booking, error) {
	return s.store.GetBookingsPerOwner(ctx, ownerID)
}

func (s *Service) CheckAvailability(ctx context.Context, proposals []Proposal) (Result, error) {
	return s.checker.IsAvailable(ctx, proposals)
}

// RecurringAvailability partitions the expanded occurrences of one
// recurrence request into free and occupied times.
type RecurringAvailability struct {
	AvailableTimes   []TimeSpan
	UnavailableTimes []TimeSpan
}

func (s *Service) CheckRecurringAvailability(ctx context.Context, req RecurrenceRequest) (RecurringAvailability, error) {
	proposals, err := ExpandRecurrence(req, s.now())

	if err != nil {
		return RecurringAvailability{}, err
	}

	result, err := s.checker.IsAvailable(ctx, proposals)

	if err != nil {
		return RecurringAvailability{}, err
	}

	var availability RecurringAvailability

	for _, p := range proposals {
		if result.Available(p.Time, p.Resources) {
			availability.AvailableTimes = append(availability.AvailableTimes, p.Time)
		} else {
			availability.UnavailableTimes = append(availability.UnavailableTimes, p.Time)
		}
	}

	return availability, nil
}

func (s *Service) CreateBooking(ctx context.Context, caller Caller, name string, span TimeSpan, resources ResourceSet) (Booking, error) {
	if err := validateName(name); err != nil {
		return Booking{}, err
	}

	result, err := s.checker.IsAvailable(ctx, []Proposal{{Time: span, Resources: resources}})

	if err != nil {
		return Booking{}, err
	}

	if !result.Available(span, resources) {
		return Booking{}, ErrTimeNotAvailable
	}

	now := s.now()

	return s.store.InsertBooking(ctx, Booking{
		Name:      name,
		OwnerID:   caller.ID,
		Time:      span,
		Resources: resources,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// RecurringBookings reports the outcome of one recurring create: how many
// bookings were persisted and the shared id stamped on all of them.
type RecurringBookings struct {
	Count       int
	RecurringID string
}

// CreateRecurringBookings expands the request and persists one booking per
// occurrence. If any occurrence is occupied the whole batch is rejected;
// nothing is ever partially created.
func (s *Service) CreateRecurringBookings(ctx context.Context, caller Caller, name string, req RecurrenceRequest) (RecurringBookings, error) {
	if err := validateName(name); err != nil {
		return RecurringBookings{}, err
	}

	proposals, err := ExpandRecurrence(req, s.now())

	if err != nil {
		return RecurringBookings{}, err
	}

	result, err := s.checker.IsAvailable(ctx, proposals)

	if err != nil {
		return RecurringBookings{}, err
	}

	if !result.AllAvailable() {
		return RecurringBookings{}, ErrTimeNotAvailable
	}

	recurringID := uuid.NewString()
	now := s.now()
	bookings := make([]Booking, 0, len(proposals))

	for _, p := range proposals {
		bookings = append(bookings, Booking{
			RecurringID: recurringID,
			Name:        name,
			OwnerID:     caller.ID,
			Time:        p.Time,
			Resources:   p.Resources,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	inserted, err := s.store.InsertBookings(ctx, bookings)

	if err != nil {
		return RecurringBookings{}, err
	}

	return RecurringBookings{Count: len(inserted), RecurringID: recurringID}, nil
}

// UpdateFields carries the booking fields an update may change. Nil means
// leave the field alone.
type UpdateFields struct {
	Name      *string
	Time      *TimeSpan
	Resources *ResourceSet
	IsActive  *bool
}

func (f UpdateFields) affectsCollision() bool {
	return f.Time != nil || f.Resources != nil || f.IsActive != nil
}

// UpdateBooking applies the fields to the target booking and every
// connected booking in one guarded pass. Name, resource and active-flag
// changes apply to all of them; a time change applies literally to the
// target while every connected booking is shifted by the same start/end
// delta. All affected bookings are loaded in one fetch, re-checked for
// availability in one batch and persisted together, or not at all.
func (s *Service) UpdateBooking(ctx context.Context, caller Caller, id string, fields UpdateFields, connectedIDs []string) (Booking, error) {
	if fields.Name != nil {
		if err := validateName(*fields.Name); err != nil {
			return Booking{}, err
		}
	}

	ids := []string{id}

	for _, connected := range connectedIDs {
		if connected != id {
			ids = append(ids, connected)
		}
	}

	loaded, err := s.store.GetBookingsByIDs(ctx, ids)

	if err != nil {
		return Booking{}, err
	}

	byID := make(map[string]Booking, len(loaded))

	for _, b := range loaded {
		byID[b.ID] = b
	}

	now := s.now()
	bookings := make([]Booking, 0, len(ids))

	for _, bookingID := range ids {
		b, ok := byID[bookingID]

		if !ok {
			return Booking{}, fmt.Errorf("booking '%v': %w", bookingID, ErrBookingNotFound)
		}

		if !CanUpdate(caller, b, now) {
			return Booking{}, ErrNotAuthorized
		}

		bookings = append(bookings, b)
	}

	target := bookings[0]

	var deltaStart, deltaEnd time.Duration

	if fields.Time != nil {
		deltaStart = fields.Time.Start().Sub(target.Time.Start())
		deltaEnd = fields.Time.End().Sub(target.Time.End())
	}

	for i := range bookings {
		if fields.Name != nil {
			bookings[i].Name = *fields.Name
		}

		if fields.Resources != nil {
			bookings[i].Resources = *fields.Resources
		}

		if fields.IsActive != nil {
			bookings[i].IsActive = *fields.IsActive
		}

		if fields.Time != nil {
			if i == 0 {
				bookings[i].Time = *fields.Time
			} else {
				shifted, err := NewTimeSpan(
					bookings[i].Time.Start().Add(deltaStart),
					bookings[i].Time.End().Add(deltaEnd),
				)

				if err != nil {
					return Booking{}, err
				}

				bookings[i].Time = shifted
			}
		}

		bookings[i].UpdatedAt = now
	}

	if fields.affectsCollision() {
		var proposals []Proposal

		for _, b := range bookings {
			if !b.IsActive {
				continue
			}

			proposals = append(proposals, Proposal{
				Time:              b.Time,
				Resources:         b.Resources,
				ExcludedBookingID: b.ID,
			})
		}

		result, err := s.checker.IsAvailable(ctx, proposals)

		if err != nil {
			return Booking{}, err
		}

		if !result.AllAvailable() {
			return Booking{}, ErrTimeNotAvailable
		}
	}

	if err := s.store.UpdateBookings(ctx, bookings); err != nil {
		return Booking{}, err
	}

	return bookings[0], nil
}

// CancelBooking deactivates the booking through the guarded update path;
// bookings are never physically removed.
func (s *Service) CancelBooking(ctx context.Context, caller Caller, id string) error {
	inactive := false
	_, err := s.UpdateBooking(ctx, caller, id, UpdateFields{IsActive: &inactive}, nil)

	return err
}

func validateName(name string) error {
	if len(strings.TrimSpace(name)) == 0 {
		return ErrInvalidName
	}

	return nil
}
