// Package schedule holds the time arithmetic behind event scheduling: parsing
// of wall-clock times and calendar dates, and detection of overlapping slots
// for a single owner.
package schedule

import "time"

// Slot is the scheduling footprint of an event: one owner, one calendar day,
// and the half-open interval [Start, End).
type Slot struct {
	ID      string
	OwnerID string
	Date    Date
	Start   TimeOfDay
	End     TimeOfDay
}

// Request describes a candidate slot. ExcludeID, when set, names the event
// being updated so that it is not compared with itself.
type Request struct {
	OwnerID   string
	Date      Date
	Start     TimeOfDay
	End       TimeOfDay
	ExcludeID string
}

// Overlaps reports whether [s1, e1) and [s2, e2) intersect. Touching
// boundaries (e1 == s2) do not overlap.
func Overlaps(s1, e1, s2, e2 TimeOfDay) bool {
	return s1 < e2 && e1 > s2
}

// ValidateRange checks that start and end lie within one day and start < end.
func ValidateRange(start, end TimeOfDay) error {
	if !start.Valid() {
		return &MalformedTimeError{Value: start.String()}
	}
	if !end.Valid() {
		return &MalformedTimeError{Value: end.String()}
	}
	if start >= end {
		return ErrInvalidTimeRange
	}
	return nil
}

// Check decides whether req conflicts with any slot in pool. Slots owned by
// someone else, on another day, or carrying req.ExcludeID are ignored. The
// first overlapping slot is reported as a *ConflictError.
func Check(req Request, pool []Slot) error {
	if err := ValidateRange(req.Start, req.End); err != nil {
		return err
	}
	for _, existing := range pool {
		if existing.OwnerID != req.OwnerID || existing.Date != req.Date {
			continue
		}
		if req.ExcludeID != "" && existing.ID == req.ExcludeID {
			continue
		}
		if Overlaps(req.Start, req.End, existing.Start, existing.End) {
			return &ConflictError{Existing: existing}
		}
	}
	return nil
}

// CheckNotPast rejects a start that is not strictly after the current hour.
// now must already be expressed in the scheduling location.
func CheckNotPast(date Date, start TimeOfDay, now time.Time) error {
	today := DateOf(now)
	if date.Before(today) {
		return ErrStartsInPast
	}
	if date == today && start.Hour() <= now.Hour() {
		return ErrStartsInPast
	}
	return nil
}
