package discord

import (
	"errors"
	"strings"
	"testing"
	"time"

	"eventplanner/internal/domain"
	"eventplanner/internal/domain/entities"
	"eventplanner/internal/domain/schedule"
)

type echoTranslator struct{}

func (echoTranslator) T(locale, key string, data map[string]any) string {
	if d, ok := data["Date"]; ok {
		return key + "[" + d.(string) + "]"
	}
	return key
}

func agendaEvent(id, start, end string) entities.Event {
	return entities.Event{
		ID:        id,
		Title:     "Event " + id,
		Date:      schedule.MustParseDate("2024-07-15"),
		StartTime: schedule.MustParseTimeOfDay(start),
		EndTime:   schedule.MustParseTimeOfDay(end),
		Location:  "Room " + id,
		Status:    entities.StatusUpcoming,
	}
}

func TestBuildEventEmbed(t *testing.T) {
	e := agendaEvent("1", "10:00", "11:30")
	e.OwnerName = "Ada"
	e.Image = "https://example.com/a.png"

	embed := BuildEventEmbed(echoTranslator{}, "en", "discord.event.created", &e)
	if embed.Title != "discord.event.created: Event 1" {
		t.Fatalf("unexpected title %q", embed.Title)
	}
	if embed.Fields[0].Value != "7/15/2024 10:00 - 11:30" {
		t.Fatalf("unexpected when field %q", embed.Fields[0].Value)
	}
	if len(embed.Fields) != 4 || embed.Thumbnail == nil || embed.Color != embedColor {
		t.Fatalf("unexpected embed: %+v", embed)
	}

	deleted := BuildEventEmbed(echoTranslator{}, "en", "discord.event.deleted", &e)
	if deleted.Color != cancelledColor {
		t.Fatalf("expected cancelled color for deletions")
	}
}

func TestBuildAgendaEmbed(t *testing.T) {
	date := schedule.MustParseDate("2024-07-15")

	empty := BuildAgendaEmbed(echoTranslator{}, "en", date, nil)
	if empty.Description != "discord.agenda.empty[7/15/2024]" {
		t.Fatalf("unexpected empty agenda %q", empty.Description)
	}

	embed := BuildAgendaEmbed(echoTranslator{}, "en", date, []entities.Event{
		agendaEvent("1", "09:00", "10:00"),
		agendaEvent("2", "10:00", "11:00"),
	})
	lines := strings.Split(embed.Description, "\n")
	if len(lines) != 2 || lines[0] != "**09:00 - 10:00** Event 1 (Room 1)" {
		t.Fatalf("unexpected agenda lines %q", lines)
	}

	many := make([]entities.Event, maxAgendaLines+3)
	for i := range many {
		many[i] = agendaEvent("x", "09:00", "10:00")
	}
	if !strings.HasSuffix(BuildAgendaEmbed(echoTranslator{}, "en", date, many).Description, "+3") {
		t.Fatalf("expected overflow marker")
	}
}

func TestParseAgendaDate(t *testing.T) {
	now := time.Date(2024, 7, 15, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "", want: "2024-07-15"},
		{raw: "Today", want: "2024-07-15"},
		{raw: "tomorrow", want: "2024-07-16"},
		{raw: " 2024-08-01 ", want: "2024-08-01"},
		{raw: "08/01/2024", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseAgendaDate(tt.raw, now)
		if tt.wantErr {
			if !errors.Is(err, schedule.ErrMalformedDate) {
				t.Fatalf("%q: expected ErrMalformedDate, got %v", tt.raw, err)
			}
			continue
		}
		if err != nil || got.String() != tt.want {
			t.Fatalf("%q: got %s, %v; want %s", tt.raw, got, err, tt.want)
		}
	}
}

func TestDomainErrorMessage(t *testing.T) {
	tr := echoTranslator{}
	if got := DomainErrorMessage(tr, "en", domain.ErrEventNotFound); got != "errors.event_not_found" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := DomainErrorMessage(tr, "en", errors.New("boom")); got != "errors.internal" {
		t.Fatalf("unexpected message %q", got)
	}
	conflict := &schedule.ConflictError{Existing: schedule.Slot{Date: schedule.MustParseDate("2024-07-15")}}
	if got := DomainErrorMessage(tr, "en", conflict); got != "errors.event_time_conflict[7/15/2024]" {
		t.Fatalf("unexpected message %q", got)
	}
	if DomainErrorMessage(tr, "en", nil) != "" {
		t.Fatalf("expected empty message for nil error")
	}
}
