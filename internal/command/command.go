// Package command answers the bot's Discord interactions.
package command

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

type Client interface {
	// Commands lists the slash commands the bot registers.
	Commands() []*discordgo.ApplicationCommand
	// Register overwrites the application commands of the configured guild,
	// or the global ones when no guild is configured.
	Register(ctx context.Context) error
	HandleInteraction(ctx context.Context, i *discordgo.Interaction)
}
