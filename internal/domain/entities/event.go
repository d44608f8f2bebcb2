package entities

import (
	"time"

	"eventplanner/internal/domain/schedule"
)

type EventStatus string

const (
	StatusUpcoming  EventStatus = "upcoming"
	StatusOngoing   EventStatus = "ongoing"
	StatusCompleted EventStatus = "completed"
	StatusCancelled EventStatus = "cancelled"
)

func (s EventStatus) Valid() bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Event struct {
	ID           string
	OwnerID      string
	OwnerName    string // joined from users on read
	OwnerEmail   string // joined from users on read
	Title        string
	Description  string
	Date         schedule.Date
	StartTime    schedule.TimeOfDay
	EndTime      schedule.TimeOfDay
	Location     string
	Category     string
	Status       EventStatus
	MaxAttendees *int
	Price        *float64
	ContactEmail string
	ContactPhone string
	Requirements string
	Image        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Slot returns the scheduling footprint used by conflict detection.
func (e *Event) Slot() schedule.Slot {
	return schedule.Slot{
		ID:      e.ID,
		OwnerID: e.OwnerID,
		Date:    e.Date,
		Start:   e.StartTime,
		End:     e.EndTime,
	}
}

// IsOwnedBy reports whether userID created the event.
func (e *Event) IsOwnedBy(userID string) bool {
	return userID != "" && e.OwnerID == userID
}

// EventPatch names the columns an update writes. Nil fields keep their
// stored value.
type EventPatch struct {
	Title        *string
	Description  *string
	Date         *schedule.Date
	StartTime    *schedule.TimeOfDay
	EndTime      *schedule.TimeOfDay
	Location     *string
	Category     *string
	Status       *EventStatus
	MaxAttendees *int
	Price        *float64
	ContactEmail *string
	ContactPhone *string
	Requirements *string
	Image        *string
}

// TouchesSchedule reports whether the patch moves the event in time.
func (p EventPatch) TouchesSchedule() bool {
	return p.Date != nil || p.StartTime != nil || p.EndTime != nil
}

// Apply copies the set fields of p onto e.
func (p EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.MaxAttendees != nil {
		v := *p.MaxAttendees
		e.MaxAttendees = &v
	}
	if p.Price != nil {
		v := *p.Price
		e.Price = &v
	}
	if p.ContactEmail != nil {
		e.ContactEmail = *p.ContactEmail
	}
	if p.ContactPhone != nil {
		e.ContactPhone = *p.ContactPhone
	}
	if p.Requirements != nil {
		e.Requirements = *p.Requirements
	}
	if p.Image != nil {
		e.Image = *p.Image
	}
}

// EventCriteria selects the events of one owner on one calendar day.
// ExcludeID drops the event being updated from the result.
type EventCriteria struct {
	OwnerID   string
	Date      schedule.Date
	ExcludeID string
}

type EventSort int

const (
	// SortBySchedule orders by date then start time.
	SortBySchedule EventSort = iota
	// SortByNewest orders by creation time, newest first.
	SortByNewest
)

// EventFilter drives paginated event listings.
type EventFilter struct {
	Category string
	Status   EventStatus
	Date     *schedule.Date
	Page     int
	Limit    int
	Sort     EventSort
}

func (f EventFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type EventPage struct {
	Events []Event
	Page   int
	Limit  int
	Total  int
	Pages  int
}

// DayGroup is one day of the dashboard: events of a date ordered by start.
type DayGroup struct {
	Date   schedule.Date
	Events []Event
}
