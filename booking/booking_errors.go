package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrInvalidTimeSpan = errors.New("time span must end after it starts and last between 30 minutes and 4 hours")

var ErrNoResourceSelected = errors.New("at least one resource must be selected")

var ErrInvalidName = errors.New("booking name cannot be empty")

var ErrPastTime = errors.New("time span starts in the past")

var ErrInvalidCadence = errors.New("unknown recurrence cadence")

var ErrInvalidHorizon = errors.New("unknown recurrence horizon")

var ErrTimeNotAvailable = errors.New("time not available")

var ErrNotAuthorized = errors.New("not authorized to perform this operation")
