package commandimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/organization"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/profile"
	"github.com/orgball2608/forum-tweet-bot/pkg/errors"
	"github.com/orgball2608/forum-tweet-bot/pkg/formatter"
)

func (c *CommandImpl) handleAccount(ctx context.Context, i *discordgo.Interaction, data discordgo.ApplicationCommandInteractionData) error {
	name, opts := subcommand(data)
	switch name {
	case "register":
		return c.handleRegister(ctx, i, data, opts)
	case "edit":
		return c.handleAccountEdit(ctx, i, opts)
	default:
		return c.reply(i, "Unknown subcommand.")
	}
}

func (c *CommandImpl) handleRegister(ctx context.Context, i *discordgo.Interaction, data discordgo.ApplicationCommandInteractionData, opts options) error {
	user := interactionUser(i)
	handle := opts.String("handle")
	username := opts.String("username")

	if err := validateNames(handle, username); err != nil {
		return c.reply(i, errors.GetMessage(err))
	}

	cfg, err := c.GuildConfigRepo.Get(ctx, i.GuildID)
	if err != nil {
		return err
	}
	maxAllowed := cfg.MaxAccountsPerUser
	if maxAllowed <= 0 {
		maxAllowed = domain.DefaultMaxAccountsPerUser
	}

	_, err = c.ProfileRepo.GetByHandle(ctx, i.GuildID, user.ID, handle)
	switch {
	case errors.Is(err, profile.ErrNotFound):
		count, err := c.ProfileRepo.CountByUser(ctx, i.GuildID, user.ID)
		if err != nil {
			return err
		}
		if count >= maxAllowed {
			return c.reply(i, fmt.Sprintf("You have reached the maximum of %d account(s) for this server.", maxAllowed))
		}
	case err != nil:
		return err
	}

	p := domain.Profile{
		GuildID:   i.GuildID,
		UserID:    user.ID,
		Handle:    handle,
		Username:  username,
		CreatedBy: user.ID,
	}
	if image := attachment(data, opts, "profile"); image != nil {
		p.ProfileImageURL = image.URL
	}

	saved, err := c.ProfileRepo.Upsert(ctx, p)
	if err != nil {
		return errors.Wrap(err, "Failed to save profile.")
	}
	c.Logger.Info("Profile saved", "guild_id", i.GuildID, "user_id", user.ID, "handle", saved.Handle)

	embed := &discordgo.MessageEmbed{
		Title: "Profile Saved",
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Handle", Value: "@" + saved.Handle, Inline: true},
			{Name: "Username", Value: formatter.EscapeMarkdown(saved.Username), Inline: true},
		},
	}
	if saved.ProfileImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: saved.ProfileImageURL}
	}
	return c.replyEmbed(i, embed)
}

func (c *CommandImpl) handleOrg(ctx context.Context, i *discordgo.Interaction, data discordgo.ApplicationCommandInteractionData) error {
	name, opts := subcommand(data)
	switch name {
	case "create":
		return c.handleOrgCreate(ctx, i, data, opts)
	case "post":
		return c.handleOrgPost(ctx, i, opts)
	case "manage":
		return c.handleOrgManage(ctx, i, opts)
	default:
		return c.reply(i, "Unknown subcommand.")
	}
}

func (c *CommandImpl) handleOrgCreate(ctx context.Context, i *discordgo.Interaction, data discordgo.ApplicationCommandInteractionData, opts options) error {
	if !isAdmin(i) {
		return c.reply(i, "Only administrators can create organizations.")
	}

	user := interactionUser(i)
	handler := strings.TrimPrefix(opts.String("handler"), "@")
	username := opts.String("username")
	ownerID := opts.String("owner")

	if err := validateNames(handler, username); err != nil {
		return c.reply(i, errors.GetMessage(err))
	}
	if ownerID == "" {
		return c.reply(i, "Pick the owner of the organization.")
	}

	org := domain.Organization{
		GuildID:      i.GuildID,
		Handler:      handler,
		Username:     username,
		OwnerUserID:  ownerID,
		AdminUserIDs: []string{user.ID},
	}
	if image := attachment(data, opts, "image"); image != nil {
		org.ProfileImageURL = image.URL
	}

	created, err := c.OrganizationRepo.Create(ctx, org)
	if err != nil {
		if errors.Is(err, organization.ErrHandlerTaken) {
			return c.reply(i, "An organization with that handle already exists.")
		}
		return errors.Wrap(err, "Failed to create organization.")
	}
	c.Logger.Info("Organization created", "guild_id", i.GuildID, "handler", created.Handler, "owner", created.OwnerUserID)

	embed := &discordgo.MessageEmbed{
		Title: "Organization Created",
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Handle", Value: "@" + created.Handler, Inline: true},
			{Name: "Username", Value: formatter.EscapeMarkdown(created.Username), Inline: true},
			{Name: "Owner", Value: "<@" + created.OwnerUserID + ">", Inline: true},
		},
	}
	if created.ProfileImageURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: created.ProfileImageURL}
	}
	return c.replyEmbed(i, embed)
}
