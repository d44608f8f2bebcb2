package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"eventplanner/internal/domain/entities"
	"eventplanner/internal/ports/output"
	pkgdiscord "eventplanner/pkg/discord"
)

// embedSender is the part of *discordgo.Session the notifier needs.
type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ output.EventNotifier = (*ChannelNotifier)(nil)

// ChannelNotifier announces event lifecycle changes in one channel.
type ChannelNotifier struct {
	sender     embedSender
	channelID  string
	translator output.T
	locale     string
}

func NewChannelNotifier(sender embedSender, channelID string, translator output.T, locale string) *ChannelNotifier {
	return &ChannelNotifier{
		sender:     sender,
		channelID:  channelID,
		translator: translator,
		locale:     locale,
	}
}

var titleKeys = map[output.EventKind]string{
	output.EventCreated: "discord.event.created",
	output.EventUpdated: "discord.event.updated",
	output.EventDeleted: "discord.event.deleted",
}

func (n *ChannelNotifier) Notify(ctx context.Context, kind output.EventKind, event *entities.Event) error {
	key, ok := titleKeys[kind]
	if !ok {
		return fmt.Errorf("discord: unknown event kind %q", kind)
	}
	embed := pkgdiscord.BuildEventEmbed(n.translator, n.locale, key, event)
	if _, err := n.sender.ChannelMessageSendEmbed(n.channelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord: send embed: %w", err)
	}
	return nil
}
