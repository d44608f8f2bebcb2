package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Bot is the Discord adapter: it answers slash commands and owns the session
// used by the channel notifier.
type Bot struct {
	session *discordgo.Session
	guildID string
	handler *Handler
	logger  *slog.Logger

	registered []*discordgo.ApplicationCommand
}

func NewBot(token, guildID string, handler *Handler, logger *slog.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	bot := &Bot{
		session: s,
		guildID: guildID,
		handler: handler,
		logger:  logger,
	}
	bot.setupHandlers()
	return bot, nil
}

// Session exposes the underlying session for the channel notifier.
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	switch i.ApplicationCommandData().Name {
	case agendaCommand.Name:
		b.handler.HandleAgenda(s, i)
	}
}

// Open connects the session and registers the slash commands.
func (b *Bot) Open() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}

	for _, cmd := range []*discordgo.ApplicationCommand{agendaCommand} {
		created, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.guildID, cmd)
		if err != nil {
			b.logger.Warn("discord: command registration failed", "command", cmd.Name, "error", err)
			continue
		}
		b.registered = append(b.registered, created)
	}
	b.logger.Info("discord bot online", "commands", len(b.registered))
	return nil
}

// Close removes guild-scoped commands and closes the session.
func (b *Bot) Close() error {
	if b.guildID != "" {
		for _, cmd := range b.registered {
			if err := b.session.ApplicationCommandDelete(b.session.State.User.ID, b.guildID, cmd.ID); err != nil {
				b.logger.Warn("discord: command cleanup failed", "command", cmd.Name, "error", err)
			}
		}
	}
	return b.session.Close()
}
