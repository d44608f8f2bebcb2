package database

import (
	"time"

	"github.com/jackc/pgx/v5"

	"eventplanner/internal/domain/entities"
	"eventplanner/internal/domain/schedule"
)

const eventColumns = `
e.id, e.owner_id, u.name, u.email, e.title, e.description, e.event_date,
e.start_minutes, e.end_minutes, e.location, e.category, e.status,
e.max_attendees, e.price::float8, e.contact_email, e.contact_phone,
e.requirements, e.image, e.created_at, e.updated_at`

const eventFrom = `FROM events e JOIN users u ON u.id = e.owner_id`

const userColumns = `id, name, email, password_hash, role, phone, address, created_at, updated_at`

func scanEvent(row pgx.Row) (entities.Event, error) {
	var (
		e          entities.Event
		date       time.Time
		start, end int
		status     string
	)
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.OwnerName, &e.OwnerEmail, &e.Title, &e.Description, &date,
		&start, &end, &e.Location, &e.Category, &status,
		&e.MaxAttendees, &e.Price, &e.ContactEmail, &e.ContactPhone,
		&e.Requirements, &e.Image, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return entities.Event{}, err
	}
	e.Date = schedule.DateOf(date)
	e.StartTime = schedule.TimeOfDay(start)
	e.EndTime = schedule.TimeOfDay(end)
	e.Status = entities.EventStatus(status)
	return e, nil
}

func scanEvents(rows pgx.Rows) ([]entities.Event, error) {
	defer rows.Close()
	out := make([]entities.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanUser(row pgx.Row) (entities.User, error) {
	var (
		u    entities.User
		role string
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.Phone, &u.Address, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return entities.User{}, err
	}
	u.Role = entities.Role(role)
	return u, nil
}

// pgDate converts a calendar date to the value bound to DATE parameters.
func pgDate(d schedule.Date) time.Time {
	return d.In(time.UTC)
}
