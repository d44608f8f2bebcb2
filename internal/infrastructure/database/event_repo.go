package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventplanner/internal/domain"
	"eventplanner/internal/domain/entities"
	"eventplanner/internal/domain/schedule"
	"eventplanner/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

// EventRepository implements output.EventRepository with pgx.
type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	const query = `
INSERT INTO events (
	id, owner_id, title, description, event_date, start_minutes, end_minutes,
	location, category, status, max_attendees, price, contact_email,
	contact_phone, requirements, image
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING created_at, updated_at`

	err := conn(ctx, r.pool).QueryRow(ctx, query,
		event.ID, event.OwnerID, event.Title, event.Description, pgDate(event.Date),
		int(event.StartTime), int(event.EndTime), event.Location, event.Category,
		string(event.Status), event.MaxAttendees, event.Price, event.ContactEmail,
		event.ContactPhone, event.Requirements, event.Image,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	query := `SELECT ` + eventColumns + ` ` + eventFrom + ` WHERE e.id = $1`
	e, err := scanEvent(conn(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return &e, nil
}

// FindByIDForUpdate is FindByID with a row lock; it only holds the lock when
// ctx carries a transaction.
func (r *EventRepository) FindByIDForUpdate(ctx context.Context, id string) (*entities.Event, error) {
	query := `SELECT ` + eventColumns + ` ` + eventFrom + ` WHERE e.id = $1 FOR UPDATE OF e`
	e, err := scanEvent(conn(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event for update: %w", err)
	}
	return &e, nil
}

// FindByCriteria returns the owner's events on one date, ordered by start.
func (r *EventRepository) FindByCriteria(ctx context.Context, c entities.EventCriteria) ([]entities.Event, error) {
	query := `SELECT ` + eventColumns + ` ` + eventFrom + `
WHERE e.owner_id = $1 AND e.event_date = $2 AND ($3 = '' OR e.id::text <> $3)
ORDER BY e.start_minutes, e.id`

	rows, err := conn(ctx, r.pool).Query(ctx, query, c.OwnerID, pgDate(c.Date), c.ExcludeID)
	if err != nil {
		if isInvalidUUID(err) {
			return []entities.Event{}, nil
		}
		return nil, fmt.Errorf("find events by criteria: %w", err)
	}
	events, err := scanEvents(rows)
	if err != nil {
		return nil, fmt.Errorf("scan events by criteria: %w", err)
	}
	return events, nil
}

func (r *EventRepository) List(ctx context.Context, filter entities.EventFilter) ([]entities.Event, int, error) {
	var (
		where []string
		args  []any
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		where = append(where, fmt.Sprintf("e.category = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		where = append(where, fmt.Sprintf("e.status = $%d", len(args)))
	}
	if filter.Date != nil {
		args = append(args, pgDate(*filter.Date))
		where = append(where, fmt.Sprintf("e.event_date = $%d", len(args)))
	}
	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	q := conn(ctx, r.pool)
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) `+eventFrom+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	order := " ORDER BY e.event_date, e.start_minutes, e.id"
	if filter.Sort == entities.SortByNewest {
		order = " ORDER BY e.created_at DESC, e.id"
	}
	args = append(args, filter.Limit, filter.Offset())
	query := `SELECT ` + eventColumns + ` ` + eventFrom + clause + order +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	events, err := scanEvents(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("scan events: %w", err)
	}
	return events, total, nil
}

func (r *EventRepository) ListAll(ctx context.Context) ([]entities.Event, error) {
	query := `SELECT ` + eventColumns + ` ` + eventFrom + ` ORDER BY e.event_date, e.start_minutes, e.id`
	rows, err := conn(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all events: %w", err)
	}
	events, err := scanEvents(rows)
	if err != nil {
		return nil, fmt.Errorf("scan events: %w", err)
	}
	return events, nil
}

// Update builds the SET list from the fields present in patch; columns not
// named there are left untouched.
func (r *EventRepository) Update(ctx context.Context, id string, patch entities.EventPatch) error {
	var (
		sets []string
		args = []any{id}
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Date != nil {
		set("event_date", pgDate(*patch.Date))
	}
	if patch.StartTime != nil {
		set("start_minutes", int(*patch.StartTime))
	}
	if patch.EndTime != nil {
		set("end_minutes", int(*patch.EndTime))
	}
	if patch.Location != nil {
		set("location", *patch.Location)
	}
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	if patch.Status != nil {
		set("status", string(*patch.Status))
	}
	if patch.MaxAttendees != nil {
		set("max_attendees", *patch.MaxAttendees)
	}
	if patch.Price != nil {
		set("price", *patch.Price)
	}
	if patch.ContactEmail != nil {
		set("contact_email", *patch.ContactEmail)
	}
	if patch.ContactPhone != nil {
		set("contact_phone", *patch.ContactPhone)
	}
	if patch.Requirements != nil {
		set("requirements", *patch.Requirements)
	}
	if patch.Image != nil {
		set("image", *patch.Image)
	}
	sets = append(sets, "updated_at = NOW()")

	query := `UPDATE events SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`
	tag, err := conn(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// WithOwnerDayLock runs fn in a transaction holding an advisory lock on
// (ownerID, date). Writers for the same owner and day are serialized until
// the transaction ends.
func (r *EventRepository) WithOwnerDayLock(ctx context.Context, ownerID string, date schedule.Date, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, func(ctx context.Context) error {
		key := ownerID + "|" + date.String()
		if _, err := conn(ctx, r.pool).Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
			return fmt.Errorf("lock owner day: %w", err)
		}
		return fn(ctx)
	})
}
