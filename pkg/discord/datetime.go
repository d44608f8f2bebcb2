package discord

import (
	"strings"
	"time"

	"eventplanner/internal/domain/schedule"
)

// ParseAgendaDate reads the /agenda option: "today", "tomorrow" or an ISO
// date. An empty value means today.
func ParseAgendaDate(raw string, now time.Time) (schedule.Date, error) {
	today := schedule.DateOf(now)
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	}
	return schedule.ParseDate(strings.TrimSpace(raw))
}

// FormatWhen renders an event slot as "7/15/2024 10:00 - 11:30".
func FormatWhen(date schedule.Date, start, end schedule.TimeOfDay) string {
	return date.USString() + " " + start.String() + " - " + end.String()
}
