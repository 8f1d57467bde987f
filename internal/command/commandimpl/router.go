package commandimpl

import (
	"context"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/internal/delivery"
	"github.com/orgball2608/forum-tweet-bot/internal/discord"
	"github.com/orgball2608/forum-tweet-bot/pkg/errors"
)

const (
	msgSomethingWrong = "Something went wrong."
	msgGuildOnly      = "This command can only be used in a server."
	msgAdminOnly      = "Only administrators can use this command."
	msgNotForum       = "Configured channel is not a forum channel. Please update it with /config forum."
)

// embedColor blends into Discord's dark theme.
const embedColor = 0x202023

// HandleInteraction routes one interaction to its handler. Handler errors and
// panics are answered with a short ephemeral message.
func (c *CommandImpl) HandleInteraction(ctx context.Context, i *discordgo.Interaction) {
	defer func() {
		if r := recover(); r != nil {
			c.Logger.Error("Interaction handler panicked", "panic", r, "stack", string(debug.Stack()))
			c.fail(i, msgSomethingWrong)
		}
	}()

	var err error
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		err = c.handleCommand(ctx, i)
	case discordgo.InteractionApplicationCommandAutocomplete:
		err = c.handleAutocomplete(ctx, i)
	case discordgo.InteractionMessageComponent:
		err = c.handleComponent(ctx, i)
	case discordgo.InteractionModalSubmit:
		err = c.handleModal(ctx, i)
	default:
		return
	}

	if err != nil {
		c.Logger.Error("Interaction failed", "type", i.Type.String(), "guild_id", i.GuildID, "error", err)
		c.fail(i, userMessage(err))
	}
}

func (c *CommandImpl) handleCommand(ctx context.Context, i *discordgo.Interaction) error {
	if i.GuildID == "" {
		return c.reply(i, msgGuildOnly)
	}

	data := i.ApplicationCommandData()
	switch data.Name {
	case "tweet":
		return c.handleTweet(ctx, i, optionMap(data.Options))
	case "account":
		return c.handleAccount(ctx, i, data)
	case "org":
		return c.handleOrg(ctx, i, data)
	case "config":
		return c.handleConfig(ctx, i, data)
	case "admin":
		return c.handleAdmin(ctx, i, data)
	default:
		return c.reply(i, "Unknown command.")
	}
}

func (c *CommandImpl) handleComponent(ctx context.Context, i *discordgo.Interaction) error {
	data := i.MessageComponentData()
	if postID, ok := discord.ParseLikeID(data.CustomID); ok {
		return c.handleLike(ctx, i, postID)
	}
	if postID, ok := discord.ParseReplyTargetID(data.CustomID); ok {
		return c.handleReplyTarget(ctx, i, postID, data.Values)
	}
	if target, ok := discord.ParseReplyID(data.CustomID); ok {
		return c.handleReplyButton(ctx, i, target)
	}
	if orgID, ok := parseOrgID(data.CustomID, orgAddPosterPrefix); ok {
		return c.openAddPoster(ctx, i, orgID)
	}
	if orgID, ok := parseOrgID(data.CustomID, orgAddAffiliatePrefix); ok {
		return c.openAddAffiliate(ctx, i, orgID)
	}
	if answer, ok := parseAffiliateAnswer(data.CustomID); ok {
		return c.handleAffiliateAnswer(ctx, i, answer)
	}
	if edit, ok := parseAccountEdit(data.CustomID); ok {
		return c.openAccountEdit(ctx, i, edit)
	}
	c.Logger.Debug("Ignoring unknown component", "custom_id", data.CustomID)
	return nil
}

func (c *CommandImpl) handleModal(ctx context.Context, i *discordgo.Interaction) error {
	data := i.ModalSubmitData()
	if postID, ok := discord.ParseReplyModalID(data.CustomID); ok {
		return c.handleReplyModal(ctx, i, postID, textInputValue(data.Components, replyTextInputID))
	}
	if orgID, ok := parseOrgID(data.CustomID, orgAddPosterPrefix); ok {
		return c.submitAddPoster(ctx, i, orgID, textInputValue(data.Components, posterInputID))
	}
	if orgID, ok := parseOrgID(data.CustomID, orgAddAffiliatePrefix); ok {
		return c.submitAddAffiliate(ctx, i, orgID, textInputValue(data.Components, affiliateInputID))
	}
	if edit, ok := parseAccountEdit(data.CustomID); ok {
		return c.submitAccountEdit(ctx, i, edit, data.Components)
	}
	c.Logger.Debug("Ignoring unknown modal", "custom_id", data.CustomID)
	return nil
}

// userMessage picks the text shown for a failed interaction.
func userMessage(err error) string {
	if errors.Is(err, delivery.ErrNotForum) {
		return msgNotForum
	}
	var e *errors.Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return msgSomethingWrong
}

// fail answers the interaction, or follows up when it was already acknowledged.
func (c *CommandImpl) fail(i *discordgo.Interaction, content string) {
	if err := c.reply(i, content); err == nil {
		return
	}
	_, err := c.API.FollowupMessageCreate(i, false, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		c.Logger.Warn("Failed to report interaction error", "error", err)
	}
}

func (c *CommandImpl) reply(i *discordgo.Interaction, content string) error {
	return c.API.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// replyRejected answers not found, forbidden and invalid input errors with
// their message. Other errors are returned to the caller.
func (c *CommandImpl) replyRejected(i *discordgo.Interaction, err error) error {
	if errors.IsNotFound(err) || errors.IsForbidden(err) || errors.Is(err, errors.ErrInvalidInput) {
		return c.reply(i, errors.GetMessage(err))
	}
	return err
}

func (c *CommandImpl) replyEmbed(i *discordgo.Interaction, embed *discordgo.MessageEmbed) error {
	return c.API.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

func (c *CommandImpl) deferReply(i *discordgo.Interaction) error {
	return c.API.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

// editReply replaces the content of a deferred response and drops its components.
func (c *CommandImpl) editReply(i *discordgo.Interaction, content string) {
	components := []discordgo.MessageComponent{}
	_, err := c.API.InteractionResponseEdit(i, &discordgo.WebhookEdit{
		Content:    &content,
		Components: &components,
	})
	if err != nil {
		c.Logger.Warn("Failed to edit interaction response", "error", err)
	}
}

func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return &discordgo.User{}
}

func isAdmin(i *discordgo.Interaction) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0
}
