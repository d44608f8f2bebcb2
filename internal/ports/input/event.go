package input

import (
	"context"

	"eventplanner/internal/domain/entities"
)

// CreateEventInput is the raw payload of an event creation. Date and times
// stay as strings here; the service normalizes them.
type CreateEventInput struct {
	Title        string   `validate:"required,notblank"`
	Description  string   `validate:"required,notblank"`
	Date         string   `validate:"required"`
	StartTime    string   `validate:"required"`
	EndTime      string   `validate:"required"`
	Location     string   `validate:"required,notblank"`
	Category     string   `validate:"required,notblank"`
	MaxAttendees *int     `validate:"omitempty,min=1"`
	Price        *float64 `validate:"omitempty,min=0"`
	ContactEmail string   `validate:"omitempty,email"`
	ContactPhone string
	Requirements string
	Image        string
}

// UpdateEventInput carries only the fields present in the request.
type UpdateEventInput struct {
	Title        *string   `validate:"omitempty,notblank"`
	Description  *string   `validate:"omitempty,notblank"`
	Date         *string   `validate:"omitempty,min=1"`
	StartTime    *string   `validate:"omitempty,min=1"`
	EndTime      *string   `validate:"omitempty,min=1"`
	Location     *string   `validate:"omitempty,notblank"`
	Category     *string   `validate:"omitempty,notblank"`
	MaxAttendees *int      `validate:"omitempty,min=1"`
	Price        *float64  `validate:"omitempty,min=0"`
	ContactEmail *string   `validate:"omitempty,email"`
	ContactPhone *string
	Requirements *string
	Image        *string
	Status       *string `validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

// TouchesSchedule reports whether the update changes date or times.
func (in UpdateEventInput) TouchesSchedule() bool {
	return in.Date != nil || in.StartTime != nil || in.EndTime != nil
}

// ConflictCheckInput asks whether a slot would be accepted, without writing.
type ConflictCheckInput struct {
	OwnerID        string
	Date           string
	StartTime      string
	EndTime        string
	ExcludeEventID string
}

// ConflictCheckResult mirrors {ok: true} | {ok: false, conflictingEvent}.
type ConflictCheckResult struct {
	OK          bool
	Conflicting *entities.Event
}

type EventUseCase interface {
	CreateEvent(ctx context.Context, actor *entities.Principal, in CreateEventInput) (*entities.Event, error)
	GetEvent(ctx context.Context, id string) (*entities.Event, error)
	ListEvents(ctx context.Context, filter entities.EventFilter) (*entities.EventPage, error)
	ListEventsForAdmin(ctx context.Context, actor *entities.Principal, filter entities.EventFilter) (*entities.EventPage, error)
	UpdateEvent(ctx context.Context, actor *entities.Principal, id string, in UpdateEventInput) (*entities.Event, error)
	DeleteEvent(ctx context.Context, actor *entities.Principal, id string) error
	GetEventsByDay(ctx context.Context) ([]entities.DayGroup, error)
	CheckConflict(ctx context.Context, actor *entities.Principal, in ConflictCheckInput) (*ConflictCheckResult, error)
}
