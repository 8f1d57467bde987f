package commandimpl

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
)

const (
	contentMaxLength = 280
	replyMaxLength   = 500
)

var adminPermission int64 = discordgo.PermissionAdministrator

func intPtr(n int) *int {
	return &n
}

func floatPtr(f float64) *float64 {
	return &f
}

func accountOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         "account",
		Description:  description,
		Required:     true,
		Autocomplete: true,
	}
}

func contentOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "content",
		Description: "Post content",
		Required:    true,
		MaxLength:   contentMaxLength,
	}
}

func imageOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionAttachment,
		Name:        name,
		Description: description,
	}
}

func (c *CommandImpl) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "tweet",
			Description: "Create a tweet",
			Options: []*discordgo.ApplicationCommandOption{
				accountOption("Choose which account to post as"),
				contentOption(),
				imageOption("image", "PNG image to include"),
			},
		},
		{
			Name:        "account",
			Description: "Account related commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "register",
					Description: "Register a new account profile",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "handle",
							Description: "Your handle, without @",
							Required:    true,
							MinLength:   intPtr(handleMinLength),
							MaxLength:   handleMaxLength,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "username",
							Description: "Display name / username",
							Required:    true,
							MinLength:   intPtr(usernameMinLength),
							MaxLength:   usernameMaxLength,
						},
						imageOption("profile", "Profile image attachment"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "edit",
					Description: "Edit a profile or organization you manage",
					Options: []*discordgo.ApplicationCommandOption{
						accountOption("Account to edit"),
					},
				},
			},
		},
		{
			Name:        "org",
			Description: "Manage organizations",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create a new organization",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "handler",
							Description: "Organization handle",
							Required:    true,
							MinLength:   intPtr(handleMinLength),
							MaxLength:   handleMaxLength,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "username",
							Description: "Organization username",
							Required:    true,
							MinLength:   intPtr(usernameMinLength),
							MaxLength:   usernameMaxLength,
						},
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "owner",
							Description: "Owner of the organization",
							Required:    true,
						},
						imageOption("image", "Organization profile image"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "post",
					Description: "Post as an organization",
					Options: []*discordgo.ApplicationCommandOption{
						accountOption("Organization (by handle)"),
						contentOption(),
						imageOption("image", "PNG image to include"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "manage",
					Description: "Manage posters and affiliates of an organization",
					Options: []*discordgo.ApplicationCommandOption{
						accountOption("Organization (by handle)"),
					},
				},
			},
		},
		{
			Name:                     "config",
			Description:              "Configure server settings",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "forum",
					Description: "Set the forum channel for Twitter posts",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionChannel,
							Name:         "channel",
							Description:  "Forum channel",
							Required:     true,
							ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildForum},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "max-accounts",
					Description: "Set how many accounts each member may register",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "count",
							Description: "Accounts per member",
							Required:    true,
							MinValue:    floatPtr(1),
							MaxValue:    domain.MaxAccountsPerUserLimit,
						},
					},
				},
			},
		},
		{
			Name:                     "admin",
			Description:              "Administrative actions",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "verify",
					Description: "Set the verification badge of a member or handle",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "target",
							Description: "User mention or @handle",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "type",
							Description: "Verification type",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Gold (Organization)", Value: string(domain.VerificationGold)},
								{Name: "Blue (Known)", Value: string(domain.VerificationBlue)},
								{Name: "Grey (Government)", Value: string(domain.VerificationGrey)},
								{Name: "None", Value: "none"},
							},
						},
					},
				},
			},
		},
	}
}

func (c *CommandImpl) Register(ctx context.Context) error {
	appID := c.Config.Discord.AppID
	if appID == "" || c.Config.Discord.Token == "" {
		c.Logger.Warn("DISCORD_APP_ID or DISCORD_BOT_TOKEN not set, skipping command registration")
		return nil
	}

	cmds, err := c.API.ApplicationCommandBulkOverwrite(appID, c.Config.Discord.GuildID, c.Commands(), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	c.Logger.Info("Registered commands", "count", len(cmds), "guild_id", c.Config.Discord.GuildID)
	return nil
}
