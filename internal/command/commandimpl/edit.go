package commandimpl

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/organization"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/profile"
	"github.com/orgball2608/forum-tweet-bot/pkg/errors"
	"github.com/orgball2608/forum-tweet-bot/pkg/formatter"
)

// handleAccountEdit shows the edit panel of a profile or organization.
func (c *CommandImpl) handleAccountEdit(ctx context.Context, i *discordgo.Interaction, opts options) error {
	kind, id, ok := parseIdentityValue(opts.String("account"))
	if !ok {
		return c.reply(i, "Pick an account from the list.")
	}
	identity, err := c.editableAccount(ctx, i, kind, id)
	if err != nil {
		return c.replyRejected(i, err)
	}

	image := identity.AvatarURL
	if image == "" {
		image = "None"
	}
	embed := &discordgo.MessageEmbed{
		Title: "Edit @" + identity.Handle,
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Username", Value: formatter.EscapeMarkdown(identity.DisplayName), Inline: true},
			{Name: "Profile image", Value: image, Inline: true},
		},
	}
	if identity.AvatarURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: identity.AvatarURL}
	}

	return c.API.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags:  discordgo.MessageFlagsEphemeral,
			Embeds: []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Edit Username",
						Style:    discordgo.PrimaryButton,
						CustomID: accountEditID(accountEdit{Field: editUsername, Kind: kind, ID: id}),
					},
					discordgo.Button{
						Label:    "Edit Profile Image",
						Style:    discordgo.SecondaryButton,
						CustomID: accountEditID(accountEdit{Field: editProfileImage, Kind: kind, ID: id}),
					},
				}},
			},
		},
	})
}

// editableAccount loads a profile the user owns or an organization they manage.
func (c *CommandImpl) editableAccount(ctx context.Context, i *discordgo.Interaction, kind domain.IdentityKind, id string) (domain.Identity, error) {
	user := interactionUser(i)
	if kind == domain.IdentityProfile {
		p, err := c.ProfileRepo.GetByID(ctx, id)
		if errors.Is(err, profile.ErrNotFound) || (err == nil && p.GuildID != i.GuildID) {
			return domain.Identity{}, errors.Wrap(errors.ErrNotFound, "Account not found.")
		}
		if err != nil {
			return domain.Identity{}, err
		}
		if p.UserID != user.ID {
			return domain.Identity{}, errors.Wrap(errors.ErrForbidden, "You do not own this profile.")
		}
		return p.Identity(), nil
	}

	o, err := c.OrganizationRepo.GetByID(ctx, id)
	if errors.Is(err, organization.ErrNotFound) || (err == nil && o.GuildID != i.GuildID) {
		return domain.Identity{}, errors.Wrap(errors.ErrNotFound, "Organization not found.")
	}
	if err != nil {
		return domain.Identity{}, err
	}
	if !o.CanManage(user.ID) {
		return domain.Identity{}, errors.Wrap(errors.ErrForbidden, "You are not allowed to edit this organization.")
	}
	return o.Identity(), nil
}

func (c *CommandImpl) openAccountEdit(ctx context.Context, i *discordgo.Interaction, edit accountEdit) error {
	identity, err := c.editableAccount(ctx, i, edit.Kind, edit.ID)
	if err != nil {
		return c.replyRejected(i, err)
	}

	if edit.Field == editUsername {
		return c.API.InteractionRespond(i, textModal(accountEditID(edit), "Edit Username", discordgo.TextInput{
			CustomID:  usernameInputID,
			Label:     "Username",
			Style:     discordgo.TextInputShort,
			Required:  true,
			MinLength: usernameMinLength,
			MaxLength: usernameMaxLength,
			Value:     identity.DisplayName,
		}))
	}
	return c.API.InteractionRespond(i, textModal(accountEditID(edit), "Edit Profile Image", discordgo.TextInput{
		CustomID: imageInputID,
		Label:    "Image URL (leave blank to clear)",
		Style:    discordgo.TextInputShort,
		Value:    identity.AvatarURL,
	}))
}

func (c *CommandImpl) submitAccountEdit(ctx context.Context, i *discordgo.Interaction, edit accountEdit, components []discordgo.MessageComponent) error {
	identity, err := c.editableAccount(ctx, i, edit.Kind, edit.ID)
	if err != nil {
		return c.replyRejected(i, err)
	}

	var (
		update domain.ProfileUpdate
		done   string
	)
	switch edit.Field {
	case editUsername:
		username := textInputValue(components, usernameInputID)
		if err := validateUsername(username); err != nil {
			return c.reply(i, errors.GetMessage(err))
		}
		update.Username = &username
		done = fmt.Sprintf("Username updated to %s.", formatter.EscapeMarkdown(username))
	default:
		image := textInputValue(components, imageInputID)
		if image != "" {
			if err := validateImageURL(image); err != nil {
				return c.reply(i, errors.GetMessage(err))
			}
		}
		update.ProfileImageURL = &image
		done = "Profile image updated."
		if image == "" {
			done = "Profile image cleared."
		}
	}

	if edit.Kind == domain.IdentityProfile {
		_, err = c.ProfileRepo.UpdateProfile(ctx, edit.ID, update)
	} else {
		_, err = c.OrganizationRepo.UpdateProfile(ctx, edit.ID, update)
	}
	if err != nil {
		return errors.Wrap(err, "Failed to save account.")
	}

	c.Logger.Info("Account edited", "guild_id", i.GuildID, "handle", identity.Handle, "kind", string(edit.Kind), "field", string(edit.Field))
	return c.reply(i, done)
}
