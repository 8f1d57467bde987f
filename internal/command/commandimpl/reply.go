package commandimpl

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/internal/delivery"
	"github.com/orgball2608/forum-tweet-bot/internal/discord"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/internal/publisher"
	"github.com/orgball2608/forum-tweet-bot/internal/replysession"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/organization"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/profile"
	"github.com/orgball2608/forum-tweet-bot/pkg/errors"
)

const replyTextInputID = "text"

func (c *CommandImpl) handleLike(ctx context.Context, i *discordgo.Interaction, postID string) error {
	p, err := c.Publisher.Like(ctx, postID)
	if err != nil {
		if errors.IsNotFound(err) {
			return c.reply(i, "Post not found.")
		}
		return err
	}

	return c.API.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Components: discord.ControlsRow(delivery.Controls{
				PostID:     p.ID,
				LikesCount: p.LikesCount,
				ShowLike:   true,
			}),
		},
	})
}

// handleReplyButton starts a reply session for the target and opens the text modal.
// Buttons under a reply answer the message carrying them, buttons under the
// post answer the post.
func (c *CommandImpl) handleReplyButton(ctx context.Context, i *discordgo.Interaction, target discord.ReplyTarget) error {
	user := interactionUser(i)
	draft := replysession.Draft{
		Key:           replysession.Key{GuildID: i.GuildID, UserID: user.ID, PostID: target.PostID},
		ReplyToHandle: target.Handle,
	}
	if target.Handle != "" && i.Message != nil {
		draft.ReplyToMessageID = i.Message.ID
	}
	if target.Handle == "" {
		p, err := c.Publisher.Post(ctx, target.PostID)
		if err != nil {
			if errors.IsNotFound(err) {
				return c.reply(i, "Post not found.")
			}
			return err
		}
		draft.ReplyToHandle = p.Handle
		draft.ReplyToMessageID = p.MessageID
	}
	c.Sessions.Put(draft)

	return c.API.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: discord.ReplyModalID(target.PostID),
			Title:    "Add Reply",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  replyTextInputID,
						Label:     "Your reply",
						Style:     discordgo.TextInputParagraph,
						Required:  true,
						MaxLength: replyMaxLength,
					},
				}},
			},
		},
	})
}

// handleReplyModal adds the reply text to the session and asks which identity to reply as.
func (c *CommandImpl) handleReplyModal(ctx context.Context, i *discordgo.Interaction, postID, text string) error {
	if text == "" {
		return c.reply(i, "Reply cannot be empty.")
	}

	user := interactionUser(i)
	menuOptions, err := c.identityOptions(ctx, i.GuildID, user.ID)
	if err != nil {
		return err
	}
	if len(menuOptions) == 0 {
		return c.reply(i, "Register an account with /account register before replying.")
	}

	draft, err := c.Sessions.Take(replysession.Key{GuildID: i.GuildID, UserID: user.ID, PostID: postID})
	if err != nil {
		return c.reply(i, errors.GetMessage(err))
	}
	draft.Body = text
	c.Sessions.Restore(draft)

	return c.API.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Choose an identity to reply as:",
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						CustomID:    discord.ReplyTargetID(postID),
						Placeholder: "Reply as...",
						Options:     menuOptions,
					},
				}},
			},
		},
	})
}

// identityOptions lists the profiles of the user followed by the
// organizations they can post for.
func (c *CommandImpl) identityOptions(ctx context.Context, guildID, userID string) ([]discordgo.SelectMenuOption, error) {
	profiles, err := c.ProfileRepo.ListByUser(ctx, guildID, userID, maxChoices)
	if err != nil {
		return nil, err
	}
	orgs, err := c.OrganizationRepo.ListPostable(ctx, guildID, userID, maxChoices)
	if err != nil {
		return nil, err
	}

	opts := make([]discordgo.SelectMenuOption, 0, len(profiles)+len(orgs))
	for _, p := range profiles {
		opts = append(opts, discordgo.SelectMenuOption{
			Label: "Profile: @" + p.Handle,
			Value: string(domain.IdentityProfile) + ":" + p.ID,
		})
	}
	for _, o := range orgs {
		opts = append(opts, discordgo.SelectMenuOption{
			Label: "Org: @" + o.Handler,
			Value: string(domain.IdentityOrganization) + ":" + o.ID,
		})
	}
	if len(opts) > maxChoices {
		opts = opts[:maxChoices]
	}
	return opts, nil
}

// handleReplyTarget publishes the stored draft as the selected identity.
func (c *CommandImpl) handleReplyTarget(ctx context.Context, i *discordgo.Interaction, postID string, values []string) error {
	if len(values) == 0 {
		return c.reply(i, "Invalid selection.")
	}
	kind, id, ok := parseIdentityValue(values[0])
	if !ok {
		return c.reply(i, "Invalid selection.")
	}

	user := interactionUser(i)
	identity, err := c.resolveIdentity(ctx, i.GuildID, user.ID, kind, id)
	if err != nil {
		if errors.IsNotFound(err) || errors.IsForbidden(err) {
			return c.reply(i, errors.GetMessage(err))
		}
		return err
	}

	key := replysession.Key{GuildID: i.GuildID, UserID: user.ID, PostID: postID}
	draft, err := c.Sessions.Take(key)
	if err != nil {
		return c.reply(i, errors.GetMessage(err))
	}

	err = c.API.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		c.Sessions.Restore(draft)
		return err
	}

	_, err = c.Publisher.PublishReply(ctx, publisher.ReplyRequest{
		GuildID:          i.GuildID,
		UserID:           user.ID,
		PostID:           postID,
		Identity:         identity,
		Body:             draft.Body,
		ReplyToHandle:    draft.ReplyToHandle,
		ReplyToMessageID: draft.ReplyToMessageID,
	})
	if err != nil {
		c.Logger.Error("Failed to publish reply", "post_id", postID, "error", err)
		// the user can pick an identity again without retyping
		c.Sessions.Restore(draft)
		c.editReply(i, userMessage(err))
		return nil
	}

	c.editReply(i, "Reply posted.")
	return nil
}

func (c *CommandImpl) resolveIdentity(ctx context.Context, guildID, userID string, kind domain.IdentityKind, id string) (domain.Identity, error) {
	switch kind {
	case domain.IdentityProfile:
		p, err := c.ProfileRepo.GetByID(ctx, id)
		if errors.Is(err, profile.ErrNotFound) || (err == nil && p.GuildID != guildID) {
			return domain.Identity{}, errors.Wrap(errors.ErrNotFound, "Account not found.")
		}
		if err != nil {
			return domain.Identity{}, err
		}
		if p.UserID != userID {
			return domain.Identity{}, errors.Wrap(errors.ErrForbidden, "You do not own this profile.")
		}
		return p.Identity(), nil
	default:
		o, err := c.OrganizationRepo.GetByID(ctx, id)
		if errors.Is(err, organization.ErrNotFound) || (err == nil && o.GuildID != guildID) {
			return domain.Identity{}, errors.Wrap(errors.ErrNotFound, "Organization not found.")
		}
		if err != nil {
			return domain.Identity{}, err
		}
		if !o.CanPost(userID) {
			return domain.Identity{}, errors.Wrap(errors.ErrForbidden, "You are not allowed to post as this organization.")
		}
		return o.Identity(), nil
	}
}
