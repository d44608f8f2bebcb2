package domain

import (
	"errors"

	"eventplanner/internal/domain/schedule"
)

// Domain errors.
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("only the creator or an admin can perform this action")
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrCannotDeleteSelf   = errors.New("cannot delete your own account")
	ErrSessionNotFound    = errors.New("session not found")
)

// Code returns a stable snake_case identifier for a domain error, or "" when
// err is not one. Codes double as i18n keys ("errors.<code>").
func Code(err error) string {
	if err == nil {
		return ""
	}
	var conflict *schedule.ConflictError
	switch {
	case errors.As(err, &conflict):
		return "event_time_conflict"
	case errors.Is(err, schedule.ErrMalformedTime):
		return "malformed_time"
	case errors.Is(err, schedule.ErrMalformedDate):
		return "malformed_date"
	case errors.Is(err, schedule.ErrInvalidTimeRange):
		return "invalid_time_range"
	case errors.Is(err, schedule.ErrStartsInPast):
		return "starts_in_past"
	case errors.Is(err, ErrEventNotFound):
		return "event_not_found"
	case errors.Is(err, ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrSessionNotFound):
		return "unauthorized"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrEmailTaken):
		return "email_taken"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrCannotDeleteSelf):
		return "cannot_delete_self"
	}
	return ""
}
