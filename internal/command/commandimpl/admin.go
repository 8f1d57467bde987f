package commandimpl

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/profile"
	"github.com/orgball2608/forum-tweet-bot/pkg/errors"
)

const (
	quickStartThreadName = "Social Media"
	// quickStartArchive is the thread auto archive duration in minutes
	quickStartArchive = 1440
	quickStartGuide   = "**Welcome to the Social Media**\n\n" +
		"**Quick start**\n" +
		"- Use `/account register` to create your profile.\n" +
		"- Use `/tweet` to create a post.\n" +
		"- Click Like/Reply buttons on posts to interact. Reply opens a modal and lets you choose an identity."
)

func (c *CommandImpl) handleConfig(ctx context.Context, i *discordgo.Interaction, data discordgo.ApplicationCommandInteractionData) error {
	if !isAdmin(i) {
		return c.reply(i, msgAdminOnly)
	}

	name, opts := subcommand(data)
	switch name {
	case "forum":
		ch := resolvedChannel(data, opts, "channel")
		if ch == nil || ch.Type != discordgo.ChannelTypeGuildForum {
			return c.reply(i, "Please select a forum channel.")
		}
		if err := c.GuildConfigRepo.SetForumChannel(ctx, i.GuildID, ch.ID); err != nil {
			return errors.Wrap(err, "Failed to save configuration.")
		}
		c.Logger.Info("Forum channel configured", "guild_id", i.GuildID, "channel_id", ch.ID)
		err := c.replyEmbed(i, &discordgo.MessageEmbed{
			Title:       "Configuration Updated",
			Color:       embedColor,
			Description: fmt.Sprintf("Saved Twitter forum channel: <#%s>", ch.ID),
		})
		c.postQuickStart(ctx, ch.ID)
		return err
	case "max-accounts":
		n := int(opts.Int("count"))
		if n < 1 || n > domain.MaxAccountsPerUserLimit {
			return c.reply(i, fmt.Sprintf("Max accounts must be between 1 and %d.", domain.MaxAccountsPerUserLimit))
		}
		if err := c.GuildConfigRepo.SetMaxAccounts(ctx, i.GuildID, n); err != nil {
			return errors.Wrap(err, "Failed to save configuration.")
		}
		return c.replyEmbed(i, &discordgo.MessageEmbed{
			Title:       "Configuration Updated",
			Color:       embedColor,
			Description: fmt.Sprintf("Max accounts per user: %d", n),
		})
	default:
		return c.reply(i, "Unknown subcommand.")
	}
}

func (c *CommandImpl) handleAdmin(ctx context.Context, i *discordgo.Interaction, data discordgo.ApplicationCommandInteractionData) error {
	if !isAdmin(i) {
		return c.reply(i, "Admins only.")
	}

	name, opts := subcommand(data)
	if name != "verify" {
		return c.reply(i, "Unknown action.")
	}

	v, err := domain.ParseVerification(opts.String("type"))
	if err != nil {
		return c.reply(i, "Provide a valid verification type.")
	}
	userID, handle := parseTarget(opts.String("target"))
	if userID == "" && handle == "" {
		return c.reply(i, "Provide a valid target (user mention or @handle).")
	}

	orgs, err := c.OrganizationRepo.SetVerification(ctx, i.GuildID, userID, handle, v)
	if err != nil {
		return errors.Wrap(err, "Verification update failed.")
	}
	profiles, err := c.ProfileRepo.SetVerification(ctx, profile.Filter{GuildID: i.GuildID, UserID: userID, Handle: handle}, v)
	if err != nil {
		return errors.Wrap(err, "Verification update failed.")
	}

	c.Logger.Info("Verification updated", "guild_id", i.GuildID, "user_id", userID, "handle", handle,
		"verification", string(v), "organizations", orgs, "profiles", profiles)
	return c.reply(i, fmt.Sprintf("Organizations updated: %d | Profiles updated: %d", orgs, profiles))
}

// postQuickStart opens a pinned guide thread in the forum. Failures only get logged.
func (c *CommandImpl) postQuickStart(ctx context.Context, forumID string) {
	thread, err := c.API.ForumThreadStart(forumID, quickStartThreadName, quickStartArchive, quickStartGuide, discordgo.WithContext(ctx))
	if err != nil {
		c.Logger.Warn("Failed to create quick start thread", "channel_id", forumID, "error", err)
		return
	}
	// the starter message of a forum thread shares the thread id
	if err := c.API.ChannelMessagePin(thread.ID, thread.ID, discordgo.WithContext(ctx)); err != nil {
		c.Logger.Warn("Failed to pin quick start message", "thread_id", thread.ID, "error", err)
	}
}
