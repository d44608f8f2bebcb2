package tz

import (
	"log/slog"
	"time"
)

// Load returns the named location, falling back to UTC when it is unknown.
func Load(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("tz: unknown location, using UTC", "name", name, "error", err)
		return time.UTC
	}
	return loc
}
