package model

import (
	"fmt"
	"time"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewInterval builds an interval from a start instant and a duration.
func NewInterval(start time.Time, duration time.Duration) (Interval, error) {
	if duration <= 0 {
		return Interval{}, fmt.Errorf("interval duration must be positive, got %s", duration)
	}
	return Interval{Start: start, End: start.Add(duration)}, nil
}

// NewIntervalBetween builds an interval from explicit start and end instants.
func NewIntervalBetween(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, fmt.Errorf("interval end %s must be after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open intervals intersect.
// Intervals that only touch at a boundary (a.End == b.Start) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Duration returns the length of the interval.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// OnDate reports whether the interval starts on the given calendar date.
func (i Interval) OnDate(year int, month time.Month, day int) bool {
	y, m, d := i.Start.Date()
	return y == year && m == month && d == day
}
