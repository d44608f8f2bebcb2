package discord

import (
	"errors"

	"eventplanner/internal/domain"
	"eventplanner/internal/domain/schedule"
	"eventplanner/internal/ports/output"
)

// DomainErrorMessage resolves err to a localized user-facing message.
// Errors outside the domain get the generic "errors.internal" message.
func DomainErrorMessage(t output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	code := domain.Code(err)
	if code == "" {
		return t.T(locale, "errors.internal", nil)
	}
	var data map[string]any
	var conflict *schedule.ConflictError
	if errors.As(err, &conflict) {
		data = map[string]any{
			"Start": conflict.Existing.Start.String(),
			"End":   conflict.Existing.End.String(),
			"Date":  conflict.Existing.Date.USString(),
		}
	}
	return t.T(locale, "errors."+code, data)
}
