package output

import (
	"context"

	"eventplanner/internal/domain/entities"
	"eventplanner/internal/domain/schedule"
)

type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id string) (*entities.Event, error)
	// FindByIDForUpdate reads the event and locks its row until the
	// surrounding WithOwnerDayLock transaction ends.
	FindByIDForUpdate(ctx context.Context, id string) (*entities.Event, error)
	FindByCriteria(ctx context.Context, criteria entities.EventCriteria) ([]entities.Event, error)
	List(ctx context.Context, filter entities.EventFilter) ([]entities.Event, int, error)
	ListAll(ctx context.Context) ([]entities.Event, error)
	// Update writes only the fields set in patch.
	Update(ctx context.Context, id string, patch entities.EventPatch) error
	Delete(ctx context.Context, id string) error
	// WithOwnerDayLock runs fn while holding an exclusive lock on the
	// (ownerID, date) pair so that check-then-write sequences do not race.
	WithOwnerDayLock(ctx context.Context, ownerID string, date schedule.Date, fn func(ctx context.Context) error) error
}
