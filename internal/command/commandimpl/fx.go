package commandimpl

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/internal/command"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
	"go.uber.org/fx"
)

// interactionTimeout matches the lifetime of an interaction token.
const interactionTimeout = 15 * time.Minute

var Module = fx.Module("command",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(command.Client)),
		),
	),
	fx.Invoke(registerHandlers),
)

func registerHandlers(lc fx.Lifecycle, session *discordgo.Session, client command.Client, log logger.Logger) {
	session.AddHandler(func(_ *discordgo.Session, e *discordgo.InteractionCreate) {
		ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
		defer cancel()
		client.HandleInteraction(ctx, e.Interaction)
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Register(ctx); err != nil {
				log.Error("Command registration failed", "error", err)
			}
			return nil
		},
	})
}
