package output

import (
	"context"
	"time"

	"eventplanner/internal/domain/entities"
)

// EventKind names a lifecycle transition, also used as the AMQP routing key.
type EventKind string

const (
	EventCreated EventKind = "event.created"
	EventUpdated EventKind = "event.updated"
	EventDeleted EventKind = "event.deleted"
)

// EventNotifier is told about committed lifecycle changes.
type EventNotifier interface {
	Notify(ctx context.Context, kind EventKind, event *entities.Event) error
}

// DashboardCache stores the grouped-by-day dashboard between writes.
// Get returns ok=false on a miss.
type DashboardCache interface {
	Get(ctx context.Context) (groups []entities.DayGroup, ok bool, err error)
	Set(ctx context.Context, groups []entities.DayGroup, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}
