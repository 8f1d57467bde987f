package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/internal/delivery"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/guildconfig"
	"github.com/orgball2608/forum-tweet-bot/pkg/config"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
	"github.com/orgball2608/forum-tweet-bot/pkg/retry"
	"go.uber.org/fx"
)

type ProviderOpts struct {
	fx.In

	Session *discordgo.Session
	Configs guildconfig.Repository
	Config  *config.Config
	Logger  logger.Logger
}

// WebhookProvider hands out a webhook of the target forum. A webhook is taken,
// in order, from the guild config, from the forum's existing webhooks, or
// created. Every webhook found or created is saved to the guild config.
type WebhookProvider struct {
	api     rest
	configs guildconfig.Repository
	name    string
	logger  logger.Logger
}

func NewWebhookProvider(opts ProviderOpts) *WebhookProvider {
	return newWebhookProvider(opts.Session, opts.Configs, opts.Config.Discord.WebhookName, opts.Logger)
}

func newWebhookProvider(api rest, configs guildconfig.Repository, name string, log logger.Logger) *WebhookProvider {
	return &WebhookProvider{
		api:     api,
		configs: configs,
		name:    name,
		logger:  log.WithComponent("WebhookProvider"),
	}
}

var _ delivery.Provider = (*WebhookProvider)(nil)

func (p *WebhookProvider) Acquire(ctx context.Context, target delivery.Target, fresh bool) (delivery.Channel, error) {
	forum, err := p.api.Channel(target.ForumChannelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forum channel: %w", err)
	}
	if forum.Type != discordgo.ChannelTypeGuildForum {
		return nil, retry.Permanent(delivery.ErrNotForum)
	}

	hook, err := p.webhook(ctx, target, fresh)
	if err != nil {
		return nil, err
	}

	return &WebhookChannel{
		api:         p.api,
		id:          hook.ID,
		token:       hook.Token,
		appliedTags: appliedTags(forum),
	}, nil
}

func (p *WebhookProvider) webhook(ctx context.Context, target delivery.Target, fresh bool) (*discordgo.Webhook, error) {
	if !fresh {
		cfg, err := p.configs.Get(ctx, target.GuildID)
		if err != nil {
			p.logger.Warn("Failed to read guild config", "guild_id", target.GuildID, "error", err)
		} else if cfg.HasWebhook() && cfg.ForumChannelID == target.ForumChannelID {
			return &discordgo.Webhook{ID: cfg.WebhookID, Token: cfg.WebhookToken}, nil
		}

		hooks, err := p.api.ChannelWebhooks(target.ForumChannelID, discordgo.WithContext(ctx))
		if err != nil {
			p.logger.Warn("Failed to list forum webhooks", "forum", target.ForumChannelID, "error", err)
		}
		for _, h := range hooks {
			if h.Token != "" {
				p.save(ctx, target.GuildID, h)
				return h, nil
			}
		}
	}

	created, err := p.api.WebhookCreate(target.ForumChannelID, p.name, "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook: %w", err)
	}
	p.logger.Info("Created forum webhook", "forum", target.ForumChannelID, "webhook_id", created.ID)
	p.save(ctx, target.GuildID, created)
	return created, nil
}

func (p *WebhookProvider) save(ctx context.Context, guildID string, h *discordgo.Webhook) {
	if err := p.configs.SetWebhook(ctx, guildID, h.ID, h.Token); err != nil {
		p.logger.Warn("Failed to save webhook", "guild_id", guildID, "webhook_id", h.ID, "error", err)
	}
}

// appliedTags returns the first available tag when the forum requires one.
func appliedTags(forum *discordgo.Channel) []string {
	if forum.Flags&discordgo.ChannelFlagRequireTag == 0 || len(forum.AvailableTags) == 0 {
		return nil
	}
	return []string{forum.AvailableTags[0].ID}
}

// WebhookChannel sends through one forum webhook.
type WebhookChannel struct {
	api         rest
	id          string
	token       string
	appliedTags []string
}

var _ delivery.Channel = (*WebhookChannel)(nil)

func (c *WebhookChannel) ID() string {
	return c.id
}

// executeParams adds the forum tag field discordgo does not model.
type executeParams struct {
	discordgo.WebhookParams
	AppliedTags []string `json:"applied_tags,omitempty"`
}

func (c *WebhookChannel) Send(ctx context.Context, msg delivery.Message) (delivery.Response, error) {
	files := []*discordgo.File{{
		Name:        msg.FileName,
		ContentType: "image/png",
		Reader:      bytes.NewReader(msg.Image),
	}}
	params := executeParams{
		WebhookParams: discordgo.WebhookParams{
			Username:   msg.Username,
			AvatarURL:  msg.AvatarURL,
			ThreadName: msg.Title,
			Components: []discordgo.MessageComponent{},
		},
		AppliedTags: c.appliedTags,
	}

	contentType, body, err := discordgo.MultipartBodyWithJSON(params, files)
	if err != nil {
		return delivery.Response{}, err
	}

	uri := discordgo.EndpointWebhookToken(c.id, c.token) + "?wait=true"
	raw, err := c.api.RequestRaw("POST", uri, contentType, body, "", 0, discordgo.WithContext(ctx))
	if err != nil {
		return delivery.Response{}, err
	}

	var sent discordgo.Message
	if err := json.Unmarshal(raw, &sent); err != nil {
		return delivery.Response{}, fmt.Errorf("failed to decode webhook response: %w", err)
	}
	return delivery.Response{MessageID: sent.ID, ChannelID: sent.ChannelID}, nil
}

func (c *WebhookChannel) EditControls(ctx context.Context, messageID, threadID string, controls delivery.Controls) error {
	uri := discordgo.EndpointWebhookMessage(c.id, c.token, messageID)
	if threadID != "" {
		uri += "?" + url.Values{"thread_id": {threadID}}.Encode()
	}

	components := ControlsRow(controls)
	_, err := c.api.RequestWithBucketID("PATCH", uri, &discordgo.WebhookEdit{Components: &components},
		discordgo.EndpointWebhookToken("", ""), discordgo.WithContext(ctx))
	return err
}
