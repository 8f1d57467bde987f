package commandimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/internal/publisher"
	"github.com/orgball2608/forum-tweet-bot/internal/ratelimit"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/organization"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/profile"
	"github.com/orgball2608/forum-tweet-bot/internal/threads"
	"github.com/orgball2608/forum-tweet-bot/pkg/errors"
)

// maxChoices is the most autocomplete choices and select options Discord accepts.
const maxChoices = 25

func (c *CommandImpl) handleTweet(ctx context.Context, i *discordgo.Interaction, opts options) error {
	user := interactionUser(i)
	handle := strings.TrimPrefix(opts.String("account"), "@")

	p, err := c.ProfileRepo.GetByHandle(ctx, i.GuildID, user.ID, handle)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return c.reply(i, "Selected account not found. Register with /account register or pick another account.")
		}
		return err
	}

	return c.publish(ctx, i, opts, p.Identity())
}

func (c *CommandImpl) handleOrgPost(ctx context.Context, i *discordgo.Interaction, opts options) error {
	user := interactionUser(i)
	handler := strings.TrimPrefix(opts.String("account"), "@")

	org, err := c.OrganizationRepo.GetByHandler(ctx, i.GuildID, handler)
	if err != nil {
		if errors.Is(err, organization.ErrNotFound) {
			return c.reply(i, "Organization not found.")
		}
		return err
	}
	if !org.CanPost(user.ID) {
		return c.reply(i, "You are not allowed to post as this organization.")
	}

	return c.publish(ctx, i, opts, org.Identity())
}

// publish checks the shared posting preconditions, then renders and delivers
// the post as identity.
func (c *CommandImpl) publish(ctx context.Context, i *discordgo.Interaction, opts options, identity domain.Identity) error {
	user := interactionUser(i)
	data := i.ApplicationCommandData()

	content := opts.String("content")
	if content == "" {
		return c.reply(i, "Post content cannot be empty.")
	}

	var mediaURL string
	if image := attachment(data, opts, "image"); image != nil {
		if !strings.Contains(strings.ToLower(image.ContentType), "png") {
			return c.reply(i, "Image must be a PNG.")
		}
		mediaURL = image.URL
	}

	if !c.Limiter.Allow(ratelimit.Key(i.GuildID, user.ID)) {
		return c.reply(i, "You are posting too fast. Try again in a few seconds.")
	}

	cfg, err := c.GuildConfigRepo.Get(ctx, i.GuildID)
	if err != nil {
		return err
	}
	if cfg.ForumChannelID == "" {
		return c.reply(i, "Twitter forum channel not set. Use /config forum to set it.")
	}

	if err := c.deferReply(i); err != nil {
		return err
	}

	res, err := c.Publisher.Publish(ctx, publisher.PostRequest{
		GuildID:          i.GuildID,
		ForumChannelID:   cfg.ForumChannelID,
		AuthorUserID:     user.ID,
		Identity:         identity,
		Body:             content,
		MediaURL:         mediaURL,
		WebhookUsername:  user.Username,
		WebhookAvatarURL: user.AvatarURL(""),
	})
	if err != nil {
		c.Logger.Error("Failed to publish post", "guild_id", i.GuildID, "handle", identity.Handle, "error", err)
		c.editReply(i, userMessage(err))
		return nil
	}

	if res.Resolution == threads.TierNone {
		c.editReply(i, "Posted, but the thread could not be located yet.")
		return nil
	}
	c.editReply(i, fmt.Sprintf("Posted in https://discord.com/channels/%s/%s", i.GuildID, res.ThreadID))
	return nil
}

func (c *CommandImpl) handleAutocomplete(ctx context.Context, i *discordgo.Interaction) error {
	if i.GuildID == "" {
		return c.respondChoices(i, nil)
	}

	data := i.ApplicationCommandData()
	opts := optionMap(data.Options)
	subName, sub := subcommand(data)
	if subName != "" {
		opts = sub
	}
	focused := opts.focused()
	if focused == nil || focused.Name != "account" {
		return c.respondChoices(i, nil)
	}
	query, _ := focused.Value.(string)

	user := interactionUser(i)
	var (
		choices []*discordgo.ApplicationCommandOptionChoice
		err     error
	)
	switch {
	case data.Name == "tweet":
		choices, err = c.profileChoices(ctx, i.GuildID, user.ID, false)
	case data.Name == "org" && subName == "post":
		choices, err = c.orgChoices(ctx, c.OrganizationRepo.ListPostable, i.GuildID, user.ID, false)
	case data.Name == "org" && subName == "manage":
		choices, err = c.orgChoices(ctx, c.OrganizationRepo.ListManaged, i.GuildID, user.ID, false)
	case data.Name == "account" && subName == "edit":
		choices, err = c.profileChoices(ctx, i.GuildID, user.ID, true)
		if err == nil {
			var orgs []*discordgo.ApplicationCommandOptionChoice
			orgs, err = c.orgChoices(ctx, c.OrganizationRepo.ListManaged, i.GuildID, user.ID, true)
			choices = append(choices, orgs...)
		}
	}
	if err != nil {
		c.Logger.Warn("Failed to list accounts for autocomplete", "command", data.Name, "error", err)
		return c.respondChoices(i, nil)
	}

	return c.respondChoices(i, filterChoices(choices, query))
}

// profileChoices lists the profiles of userID. Tagged values carry the
// "p:<id>" form used by the account edit panel instead of the handle.
func (c *CommandImpl) profileChoices(ctx context.Context, guildID, userID string, tagged bool) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	profiles, err := c.ProfileRepo.ListByUser(ctx, guildID, userID, maxChoices)
	if err != nil {
		return nil, err
	}
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(profiles))
	for _, p := range profiles {
		ch := &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("@%s (%s)", p.Handle, p.Username),
			Value: p.Handle,
		}
		if tagged {
			ch.Name = "Profile: " + ch.Name
			ch.Value = string(domain.IdentityProfile) + ":" + p.ID
		}
		choices = append(choices, ch)
	}
	return choices, nil
}

type orgLister func(ctx context.Context, guildID, userID string, limit int) ([]*domain.Organization, error)

func (c *CommandImpl) orgChoices(ctx context.Context, list orgLister, guildID, userID string, tagged bool) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	orgs, err := list(ctx, guildID, userID, maxChoices)
	if err != nil {
		return nil, err
	}
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(orgs))
	for _, o := range orgs {
		ch := &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("@%s (%s)", o.Handler, o.Username),
			Value: o.Handler,
		}
		if tagged {
			ch.Name = "Org: " + ch.Name
			ch.Value = string(domain.IdentityOrganization) + ":" + o.ID
		}
		choices = append(choices, ch)
	}
	return choices, nil
}

// filterChoices keeps the choices whose name or value contains query, ignoring case.
func filterChoices(choices []*discordgo.ApplicationCommandOptionChoice, query string) []*discordgo.ApplicationCommandOptionChoice {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(choices))
	for _, ch := range choices {
		value, _ := ch.Value.(string)
		if query == "" ||
			strings.Contains(strings.ToLower(ch.Name), query) ||
			strings.Contains(strings.ToLower(value), query) {
			out = append(out, ch)
		}
		if len(out) == maxChoices {
			break
		}
	}
	return out
}

func (c *CommandImpl) respondChoices(i *discordgo.Interaction, choices []*discordgo.ApplicationCommandOptionChoice) error {
	if choices == nil {
		choices = []*discordgo.ApplicationCommandOptionChoice{}
	}
	return c.API.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
}
