package booking

import "time"

const (
	MinDuration = 30 * time.Minute
	MaxDuration = 4 * time.Hour
)

// TimeSpan is an immutable start/end instant pair. The zero value is
// invalid; build one through NewTimeSpan.
type TimeSpan struct {
	start time.Time
	end   time.Time
}

func NewTimeSpan(start, end time.Time) (TimeSpan, error) {
	span := TimeSpan{start: start, end: end}

	if err := span.Validate(); err != nil {
		return TimeSpan{}, err
	}

	return span, nil
}

func (t TimeSpan) Validate() error {
	if !t.end.After(t.start) {
		return ErrInvalidTimeSpan
	}

	if d := t.end.Sub(t.start); d < MinDuration || d > MaxDuration {
		return ErrInvalidTimeSpan
	}

	return nil
}

func (t TimeSpan) Start() time.Time { return t.start }

func (t TimeSpan) End() time.Time { return t.end }

func (t TimeSpan) Duration() time.Duration { return t.end.Sub(t.start) }

// Overlaps reports whether the two spans share any open interval of time.
// Spans that only touch at a boundary do not overlap.
func (t TimeSpan) Overlaps(other TimeSpan) bool {
	return t.start.Before(other.end) && other.start.Before(t.end)
}

func (t TimeSpan) Equal(other TimeSpan) bool {
	return t.start.Equal(other.start) && t.end.Equal(other.end)
}

// Shift moves both instants, keeping the duration.
func (t TimeSpan) Shift(d time.Duration) TimeSpan {
	return TimeSpan{start: t.start.Add(d), end: t.end.Add(d)}
}
