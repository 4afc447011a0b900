package domain

import (
	"errors"
	"fmt"
)

// error kinds surfaced to API callers, the server maps them to HTTP status codes
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrOverlapConflict = errors.New("strategic week overlap")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrRateLimited     = errors.New("too many requests")
)

// specific validation failures, all of them are ErrInvalidArgument
var (
	ErrInvalidDate  = fmt.Errorf("%w: invalid date", ErrInvalidArgument)
	ErrInvalidRange = fmt.Errorf("%w: invalid range", ErrInvalidArgument)
)

// OverlapError reports the strategic week colliding with a candidate interval
type OverlapError struct {
	ID       int64
	Cycle    int
	Interval Interval
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("interval overlaps strategic week %d (cycle %d, %s - %s)",
		e.ID, e.Cycle, e.Interval.Start, e.Interval.End)
}

// Is makes errors.Is(err, ErrOverlapConflict) match any OverlapError
func (e *OverlapError) Is(target error) bool {
	return target == ErrOverlapConflict
}
