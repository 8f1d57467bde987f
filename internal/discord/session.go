// Package discord adapts a discordgo session to the delivery and thread
// resolution interfaces.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/pkg/config"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
	"go.uber.org/fx"
)

type SessionOpts struct {
	fx.In
	LC fx.Lifecycle

	Config *config.Config
	Logger logger.Logger
}

// NewSession creates the bot session. The gateway connection is opened on
// start so that every handler is registered first.
func NewSession(opts SessionOpts) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + opts.Config.Discord.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	log := opts.Logger.WithComponent("Discord")
	session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		log.Info("Logged in", "user", r.User.Username, "guilds", len(r.Guilds))
	})

	opts.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if opts.Config.Discord.Token == "" {
				log.Warn("DISCORD_BOT_TOKEN not set, skipping login")
				return nil
			}
			if err := session.Open(); err != nil {
				return fmt.Errorf("failed to open discord gateway: %w", err)
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return session.Close()
		},
	})

	return session, nil
}

// rest is the part of *discordgo.Session the adapters call.
type rest interface {
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelWebhooks(channelID string, options ...discordgo.RequestOption) ([]*discordgo.Webhook, error)
	WebhookCreate(channelID, name, avatar string, options ...discordgo.RequestOption) (*discordgo.Webhook, error)
	RequestRaw(method, urlStr, contentType string, b []byte, bucketID string, sequence int, options ...discordgo.RequestOption) ([]byte, error)
	RequestWithBucketID(method, urlStr string, data interface{}, bucketID string, options ...discordgo.RequestOption) ([]byte, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	GuildThreadsActive(guildID string, options ...discordgo.RequestOption) (*discordgo.ThreadsList, error)
}

var _ rest = (*discordgo.Session)(nil)
