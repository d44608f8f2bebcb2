package schedule

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedTime    = errors.New("malformed time of day")
	ErrMalformedDate    = errors.New("malformed date")
	ErrInvalidTimeRange = errors.New("start time must be before end time")
	ErrStartsInPast     = errors.New("cannot schedule events for the current hour or past times")
)

// MalformedTimeError reports a time-of-day string that is not a valid HH:MM.
type MalformedTimeError struct {
	Value string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time of day %q (expected HH:MM)", e.Value)
}

func (e *MalformedTimeError) Is(target error) bool {
	return target == ErrMalformedTime
}

// MalformedDateError reports a date string that is not a valid YYYY-MM-DD.
type MalformedDateError struct {
	Value string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date %q (expected YYYY-MM-DD)", e.Value)
}

func (e *MalformedDateError) Is(target error) bool {
	return target == ErrMalformedDate
}

// ConflictError is returned when a candidate slot overlaps an existing slot of
// the same owner. Existing is the first overlapping slot found.
type ConflictError struct {
	Existing Slot
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"Event time conflict: You already have an event scheduled from %s to %s on %s. Please choose a different time.",
		e.Existing.Start, e.Existing.End, e.Existing.Date.USString(),
	)
}
