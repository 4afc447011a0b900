package domain

import "fmt"

// Interval is an inclusive range of calendar days
type Interval struct {
	Start Date
	End   Date
}

// Validate rejects intervals whose start is after their end
func (iv Interval) Validate() error {
	if iv.Start.IsZero() || iv.End.IsZero() {
		return fmt.Errorf("%w: both start and end dates are required", ErrInvalidRange)
	}
	if iv.Start.After(iv.End) {
		return fmt.Errorf("%w: start %s is after end %s", ErrInvalidRange, iv.Start, iv.End)
	}
	return nil
}

// Contains reports whether d falls inside the interval, bounds included
func (iv Interval) Contains(d Date) bool {
	return !d.Before(iv.Start) && !d.After(iv.End)
}

// Overlaps reports whether two inclusive intervals share at least one day
func (iv Interval) Overlaps(o Interval) bool {
	return !(iv.Start.After(o.End) || iv.End.Before(o.Start))
}

// HasOverlap reports whether candidate overlaps any of the existing intervals
func HasOverlap(candidate Interval, existing []Interval) bool {
	for _, e := range existing {
		if candidate.Overlaps(e) {
			return true
		}
	}
	return false
}

// CheckWeekOverlap validates candidate and returns an *OverlapError for the first week it collides with.
// The week with excludeID is skipped, which lets an update ignore its own previous interval.
func CheckWeekOverlap(candidate Interval, weeks []StrategicWeek, excludeID int64) error {
	if err := candidate.Validate(); err != nil {
		return err
	}
	for _, w := range weeks {
		if w.ID == excludeID {
			continue
		}
		if candidate.Overlaps(w.Interval()) {
			return &OverlapError{ID: w.ID, Cycle: w.Cycle, Interval: w.Interval()}
		}
	}
	return nil
}
