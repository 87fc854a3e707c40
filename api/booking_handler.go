package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	bk "github.com/courtside/facility-booking-backend/booking"
	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=booking_handler.go -destination=mocks/booking_service_mock.go -package=mocks
type BookingService interface {
	GetActiveBookings(ctx context.Context) ([]bk.Booking, error)
	FindBookingByID(ctx context.Context, caller bk.Caller, id string) (bk.Booking, error)
	FindBookingsPerOwner(ctx context.Context, ownerID string) ([]bk.Booking, error)
	CheckAvailability(ctx context.Context, proposals []bk.Proposal) (bk.Result, error)
	CheckRecurringAvailability(ctx context.Context, req bk.RecurrenceRequest) (bk.RecurringAvailability, error)
	CreateBooking(ctx context.Context, caller bk.Caller, name string, span bk.TimeSpan, resources bk.ResourceSet) (bk.Booking, error)
	CreateRecurringBookings(ctx context.Context, caller bk.Caller, name string, req bk.RecurrenceRequest) (bk.RecurringBookings, error)
	UpdateBooking(ctx context.Context, caller bk.Caller, id string, fields bk.UpdateFields, connectedIDs []string) (bk.Booking, error)
	CancelBooking(ctx context.Context, caller bk.Caller, id string) error
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.ListActive)
	rg.GET("/booking/:id", h.GetByID)
	rg.GET("/owner/:ownerId", h.GetByOwner)
	rg.POST("", h.Create)
	rg.POST("/recurring", h.CreateRecurring)
	rg.POST("/availability", h.CheckAvailability)
	rg.POST("/availability/recurring", h.CheckRecurringAvailability)
	rg.PUT("/:id", h.Update)
	rg.PUT("/:id/cancel", h.Cancel)
}

type resourcesPayload struct {
	TableTennis bool `json:"tableTennis"`
	Badminton   bool `json:"badminton"`
}

type spanPayload struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type bookingResponse struct {
	ID          string           `json:"id"`
	RecurringID string           `json:"recurringId,omitempty"`
	Name        string           `json:"name"`
	OwnerID     string           `json:"ownerId"`
	Start       time.Time        `json:"start"`
	End         time.Time        `json:"end"`
	Resources   resourcesPayload `json:"resources"`
	IsActive    bool             `json:"isActive"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func toBookingResponse(b bk.Booking) bookingResponse {
	return bookingResponse{
		ID:          b.ID,
		RecurringID: b.RecurringID,
		Name:        b.Name,
		OwnerID:     b.OwnerID,
		Start:       b.Time.Start(),
		End:         b.Time.End(),
		Resources:   resourcesPayload{TableTennis: b.Resources.TableTennis(), Badminton: b.Resources.Badminton()},
		IsActive:    b.IsActive,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toBookingResponses(bookings []bk.Booking) []bookingResponse {
	responses := make([]bookingResponse, 0, len(bookings))

	for _, b := range bookings {
		responses = append(responses, toBookingResponse(b))
	}

	return responses
}

func toSpanPayloads(spans []bk.TimeSpan) []spanPayload {
	payloads := make([]spanPayload, 0, len(spans))

	for _, span := range spans {
		payloads = append(payloads, spanPayload{Start: span.Start(), End: span.End()})
	}

	return payloads
}

func (h *BookingHandler) ListActive(c *gin.Context) {
	if bookings, err := h.service.GetActiveBookings(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve bookings",
		})
	} else {
		c.IndentedJSON(http.StatusOK, toBookingResponses(bookings))
	}
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	caller := c.MustGet("user").(bk.Caller)
	id := c.Param("id")

	booking, err := h.service.FindBookingByID(c.Request.Context(), caller, id)

	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, toBookingResponse(booking))
}

func (h *BookingHandler) GetByOwner(c *gin.Context) {
	caller := c.MustGet("user").(bk.Caller)
	ownerID := c.Param("ownerId")

	if !caller.Admin && caller.ID != ownerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
		return
	}

	bookings, err := h.service.FindBookingsPerOwner(c.Request.Context(), ownerID)

	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, toBookingResponses(bookings))
}

type createBookingRequest struct {
	Name      string           `json:"name"`
	Start     time.Time        `json:"start"`
	End       time.Time        `json:"end"`
	Resources resourcesPayload `json:"resources"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	caller := c.MustGet("user").(bk.Caller)

	var req createBookingRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	span, err := bk.NewTimeSpan(req.Start, req.End)

	if err != nil {
		writeServiceError(c, err)
		return
	}

	resources, err := bk.NewResourceSet(req.Resources.TableTennis, req.Resources.Badminton)

	if err != nil {
		writeServiceError(c, err)
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), caller, req.Name, span, resources)

	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(created))
}

type recurrencePayload struct {
	Start         time.Time        `json:"start"`
	End           time.Time        `json:"end"`
	Cadence       string           `json:"cadence"`
	Horizon       string           `json:"horizon"`
	IncludedDates []time.Time      `json:"includedDates"`
	ExcludedDates []time.Time      `json:"excludedDates"`
	Resources     resourcesPayload `json:"resources"`
}

func (p recurrencePayload) toRequest() (bk.RecurrenceRequest, error) {
	resources, err := bk.NewResourceSet(p.Resources.TableTennis, p.Resources.Badminton)

	if err != nil {
		return bk.RecurrenceRequest{}, err
	}

	return bk.RecurrenceRequest{
		Start:         p.Start,
		End:           p.End,
		Cadence:       bk.Cadence(p.Cadence),
		Horizon:       bk.Horizon(p.Horizon),
		IncludedDates: p.IncludedDates,
		ExcludedDates: p.ExcludedDates,
		Resources:     resources,
	}, nil
}

type createRecurringRequest struct {
	Name       string            `json:"name"`
	Recurrence recurrencePayload `json:"recurrence"`
}

func (h *BookingHandler) CreateRecurring(c *gin.Context) {
	caller := c.MustGet("user").(bk.Caller)

	var req createRecurringRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	recurrence, err := req.Recurrence.toRequest()

	if err != nil {
		writeServiceError(c, err)
		return
	}

	created, err := h.service.CreateRecurringBookings(c.Request.Context(), caller, req.Name, recurrence)

	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"count":       created.Count,
		"recurringId": created.RecurringID,
	})
}

type proposalPayload struct {
	Start             time.Time        `json:"start"`
	End               time.Time        `json:"end"`
	Resources         resourcesPayload `json:"resources"`
	ExcludedBookingID string           `json:"excludedBookingId"`
}

type checkAvailabilityRequest struct {
	Proposals []proposalPayload `json:"proposals"`
}

type availabilityEntry struct {
	Start     time.Time        `json:"start"`
	End       time.Time        `json:"end"`
	Resources resourcesPayload `json:"resources"`
	Available bool             `json:"available"`
}

func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req checkAvailabilityRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	proposals := make([]bk.Proposal, 0, len(req.Proposals))

	for _, p := range req.Proposals {
		span, err := bk.NewTimeSpan(p.Start, p.End)

		if err != nil {
			writeServiceError(c, err)
			return
		}

		resources, err := bk.NewResourceSet(p.Resources.TableTennis, p.Resources.Badminton)

		if err != nil {
			writeServiceError(c, err)
			return
		}

		proposals = append(proposals, bk.Proposal{
			Time:              span,
			Resources:         resources,
			ExcludedBookingID: p.ExcludedBookingID,
		})
	}

	result, err := h.service.CheckAvailability(c.Request.Context(), proposals)

	if err != nil {
		writeServiceError(c, err)
		return
	}

	entries := make([]availabilityEntry, 0, len(proposals))

	for _, p := range proposals {
		entries = append(entries, availabilityEntry{
			Start:     p.Time.Start(),
			End:       p.Time.End(),
			Resources: resourcesPayload{TableTennis: p.Resources.TableTennis(), Badminton: p.Resources.Badminton()},
			Available: result.Available(p.Time, p.Resources),
		})
	}

	c.IndentedJSON(http.StatusOK, gin.H{"results": entries})
}

func (h *BookingHandler) CheckRecurringAvailability(c *gin.Context) {
	var req recurrencePayload

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	recurrence, err := req.toRequest()

	if err != nil {
		writeServiceError(c, err)
		return
	}

	availability, err := h.service.CheckRecurringAvailability(c.Request.Context(), recurrence)

	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"availableTimes":   toSpanPayloads(availability.AvailableTimes),
		"unavailableTimes": toSpanPayloads(availability.UnavailableTimes),
	})
}

type updateBookingRequest struct {
	Name                *string           `json:"name"`
	Start               *time.Time        `json:"start"`
	End                 *time.Time        `json:"end"`
	Resources           *resourcesPayload `json:"resources"`
	IsActive            *bool             `json:"isActive"`
	ConnectedBookingIDs []string          `json:"connectedBookingIds"`
}

func (h *BookingHandler) Update(c *gin.Context) {
	caller := c.MustGet("user").(bk.Caller)
	id := c.Param("id")

	var req updateBookingRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	if (req.Start == nil) != (req.End == nil) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "start and end must be provided together",
		})
		return
	}

	fields := bk.UpdateFields{Name: req.Name, IsActive: req.IsActive}

	if req.Start != nil {
		span, err := bk.NewTimeSpan(*req.Start, *req.End)

		if err != nil {
			writeServiceError(c, err)
			return
		}

		fields.Time = &span
	}

	if req.Resources != nil {
		resources, err := bk.NewResourceSet(req.Resources.TableTennis, req.Resources.Badminton)

		if err != nil {
			writeServiceError(c, err)
			return
		}

		fields.Resources = &resources
	}

	updated, err := h.service.UpdateBooking(c.Request.Context(), caller, id, fields, req.ConnectedBookingIDs)

	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, toBookingResponse(updated))
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	caller := c.MustGet("user").(bk.Caller)
	id := c.Param("id")

	err := h.service.CancelBooking(c.Request.Context(), caller, id)

	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking canceled"})
}

func writeServiceError(c *gin.Context, err error) {
	c.Error(err)

	switch {
	case errors.Is(err, bk.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, bk.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
	case errors.Is(err, bk.ErrTimeNotAvailable):
		c.JSON(http.StatusConflict, gin.H{"error": "time not available"})
	case errors.Is(err, bk.ErrInvalidTimeSpan),
		errors.Is(err, bk.ErrNoResourceSelected),
		errors.Is(err, bk.ErrInvalidName),
		errors.Is(err, bk.ErrPastTime),
		errors.Is(err, bk.ErrInvalidCadence),
		errors.Is(err, bk.ErrInvalidHorizon):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
