package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"

	"eventplanner/internal/domain/entities"
	"eventplanner/internal/domain/schedule"
	"eventplanner/internal/ports/output"
)

type recordingSender struct {
	channelID string
	embeds    []*discordgo.MessageEmbed
	err       error
}

func (r *recordingSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	r.channelID = channelID
	r.embeds = append(r.embeds, embed)
	return &discordgo.Message{}, r.err
}

type keyTranslator struct{}

func (keyTranslator) T(_, key string, _ map[string]any) string { return key }

func TestChannelNotifier(t *testing.T) {
	sender := &recordingSender{}
	n := NewChannelNotifier(sender, "123", keyTranslator{}, "en")
	e := &entities.Event{
		ID:        "e1",
		Title:     "Standup",
		Date:      schedule.MustParseDate("2024-07-15"),
		StartTime: schedule.MustParseTimeOfDay("09:00"),
		EndTime:   schedule.MustParseTimeOfDay("09:15"),
	}

	if err := n.Notify(context.Background(), output.EventUpdated, e); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if sender.channelID != "123" || len(sender.embeds) != 1 {
		t.Fatalf("expected one embed in channel 123")
	}
	if sender.embeds[0].Title != "discord.event.updated: Standup" {
		t.Fatalf("unexpected title %q", sender.embeds[0].Title)
	}

	if err := n.Notify(context.Background(), output.EventKind("event.archived"), e); err == nil {
		t.Fatalf("expected error for unknown kind")
	}

	sender.err = errors.New("rate limited")
	if err := n.Notify(context.Background(), output.EventDeleted, e); err == nil {
		t.Fatalf("expected send error to be returned")
	}
}
