package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"eventplanner/internal/domain/entities"
	"eventplanner/internal/domain/schedule"
	"eventplanner/internal/ports/output"
)

const (
	embedColor     = 0x5865F2
	cancelledColor = 0xED4245
	maxAgendaLines = 25
)

// BuildEventEmbed renders one event for a channel announcement. titleKey is
// the i18n key of the embed title (e.g. "discord.event.created").
func BuildEventEmbed(t output.T, locale, titleKey string, e *entities.Event) *discordgo.MessageEmbed {
	color := embedColor
	if e.Status == entities.StatusCancelled || titleKey == "discord.event.deleted" {
		color = cancelledColor
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: t.T(locale, "discord.field.when", nil), Value: FormatWhen(e.Date, e.StartTime, e.EndTime)},
		{Name: t.T(locale, "discord.field.where", nil), Value: orDash(e.Location), Inline: true},
		{Name: t.T(locale, "discord.field.category", nil), Value: orDash(e.Category), Inline: true},
	}
	if e.OwnerName != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: t.T(locale, "discord.field.organizer", nil), Value: e.OwnerName, Inline: true,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s: %s", t.T(locale, titleKey, nil), e.Title),
		Description: truncate(e.Description, 1024),
		Color:       color,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: string(e.Status)},
	}
	if strings.HasPrefix(e.Image, "http://") || strings.HasPrefix(e.Image, "https://") {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: e.Image}
	}
	return embed
}

// BuildAgendaEmbed lists one day's events, one line each, in start order.
func BuildAgendaEmbed(t output.T, locale string, date schedule.Date, events []entities.Event) *discordgo.MessageEmbed {
	data := map[string]any{"Date": date.USString()}
	embed := &discordgo.MessageEmbed{
		Title: t.T(locale, "discord.agenda.title", data),
		Color: embedColor,
	}
	if len(events) == 0 {
		embed.Description = t.T(locale, "discord.agenda.empty", data)
		return embed
	}

	var b strings.Builder
	for i, e := range events {
		if i == maxAgendaLines {
			fmt.Fprintf(&b, "… +%d", len(events)-maxAgendaLines)
			break
		}
		fmt.Fprintf(&b, "**%s - %s** %s", e.StartTime, e.EndTime, e.Title)
		if e.Location != "" {
			fmt.Fprintf(&b, " (%s)", e.Location)
		}
		b.WriteString("\n")
	}
	embed.Description = strings.TrimRight(b.String(), "\n")
	return embed
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
