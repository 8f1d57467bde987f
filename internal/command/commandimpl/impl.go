package commandimpl

import (
	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/internal/command"
	"github.com/orgball2608/forum-tweet-bot/internal/publisher"
	"github.com/orgball2608/forum-tweet-bot/internal/ratelimit"
	"github.com/orgball2608/forum-tweet-bot/internal/replysession"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/guildconfig"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/organization"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/profile"
	"github.com/orgball2608/forum-tweet-bot/pkg/config"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
	"go.uber.org/fx"
)

// responder is the part of *discordgo.Session used to answer interactions
// and to reach channels outside of them.
type responder interface {
	InteractionRespond(i *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(i *discordgo.Interaction, edit *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreate(i *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	ForumThreadStart(channelID, name string, archiveDuration int, content string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessagePin(channelID, messageID string, options ...discordgo.RequestOption) error
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Opts struct {
	fx.In

	Session          *discordgo.Session
	Publisher        publisher.Client
	ProfileRepo      profile.Repository
	OrganizationRepo organization.Repository
	GuildConfigRepo  guildconfig.Repository
	Sessions         *replysession.Store
	Limiter          ratelimit.Limiter
	Logger           logger.Logger
	Config           *config.Config
}

type CommandImpl struct {
	API              responder
	Publisher        publisher.Client
	ProfileRepo      profile.Repository
	OrganizationRepo organization.Repository
	GuildConfigRepo  guildconfig.Repository
	Sessions         *replysession.Store
	Limiter          ratelimit.Limiter
	Logger           logger.Logger
	Config           *config.Config
}

func New(opts Opts) *CommandImpl {
	return &CommandImpl{
		API:              opts.Session,
		Publisher:        opts.Publisher,
		ProfileRepo:      opts.ProfileRepo,
		OrganizationRepo: opts.OrganizationRepo,
		GuildConfigRepo:  opts.GuildConfigRepo,
		Sessions:         opts.Sessions,
		Limiter:          opts.Limiter,
		Logger:           opts.Logger.WithComponent("Command"),
		Config:           opts.Config,
	}
}

var _ command.Client = (*CommandImpl)(nil)
