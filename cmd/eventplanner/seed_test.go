package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"eventplanner/internal/application"
	"eventplanner/internal/domain/entities"
	"eventplanner/internal/domain/schedule"
	"eventplanner/internal/ports/input"
)

// memoryCreator runs the conflict validator over what it has accepted so far.
type memoryCreator struct {
	accepted []schedule.Slot
}

func (m *memoryCreator) CreateEvent(_ context.Context, actor *entities.Principal, in input.CreateEventInput) (*entities.Event, error) {
	date := schedule.MustParseDate(in.Date)
	start := schedule.MustParseTimeOfDay(in.StartTime)
	end := schedule.MustParseTimeOfDay(in.EndTime)
	req := schedule.Request{OwnerID: actor.UserID, Date: date, Start: start, End: end}
	if err := schedule.Check(req, m.accepted); err != nil {
		return nil, err
	}
	m.accepted = append(m.accepted, schedule.Slot{ID: in.Title, OwnerID: actor.UserID, Date: date, Start: start, End: end})
	return &entities.Event{}, nil
}

func TestSeed_SkipsConflicts(t *testing.T) {
	creator := &memoryCreator{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	owner := &entities.Principal{UserID: "admin-1", Role: entities.RoleAdmin}

	created, skipped, err := seed(context.Background(), creator, owner, 2030, logger)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if created != len(julySamples)-1 || skipped != 1 {
		t.Fatalf("expected %d created and 1 skipped, got %d and %d", len(julySamples)-1, created, skipped)
	}
	if creator.accepted[0].Date.String() != "2030-07-10" {
		t.Fatalf("unexpected first date %s", creator.accepted[0].Date)
	}
}

func TestNextJuly(t *testing.T) {
	if got := nextJuly(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)); got != 2026 {
		t.Fatalf("expected 2026, got %d", got)
	}
	if got := nextJuly(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)); got != 2027 {
		t.Fatalf("expected 2027, got %d", got)
	}
}

var _ eventCreator = (*application.EventService)(nil)
