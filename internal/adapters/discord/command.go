package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"eventplanner/internal/domain/entities"
	"eventplanner/internal/domain/schedule"
	pkgdiscord "eventplanner/pkg/discord"
)

const agendaLimit = 100

var agendaCommand = &discordgo.ApplicationCommand{
	Name:        "agenda",
	Description: "List the events scheduled on a day",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "date",
			Description: "YYYY-MM-DD, today or tomorrow (default: today)",
			Required:    false,
		},
	},
}

func (h *Handler) HandleAgenda(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := string(i.Locale)

	raw := ""
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "date" {
			raw = opt.StringValue()
		}
	}

	date, err := pkgdiscord.ParseAgendaDate(raw, h.clock.Now())
	if err != nil {
		respondEphemeral(s, i.Interaction, h.translator.T(locale, "discord.agenda.bad_date", nil))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events, err := h.agenda(ctx, date)
	if err != nil {
		respondEphemeral(s, i.Interaction, pkgdiscord.DomainErrorMessage(h.translator, locale, err))
		return
	}
	respondEmbed(s, i.Interaction, pkgdiscord.BuildAgendaEmbed(h.translator, locale, date, events))
}

// agenda returns the events of one date ordered by start time.
func (h *Handler) agenda(ctx context.Context, date schedule.Date) ([]entities.Event, error) {
	page, err := h.eventUseCase.ListEvents(ctx, entities.EventFilter{
		Date:  &date,
		Page:  1,
		Limit: agendaLimit,
		Sort:  entities.SortBySchedule,
	})
	if err != nil {
		return nil, err
	}
	return page.Events, nil
}
