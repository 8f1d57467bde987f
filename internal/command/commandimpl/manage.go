package commandimpl

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/organization"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/profile"
	"github.com/orgball2608/forum-tweet-bot/pkg/errors"
)

// handleOrgManage shows the member lists of an organization with buttons to extend them.
func (c *CommandImpl) handleOrgManage(ctx context.Context, i *discordgo.Interaction, opts options) error {
	user := interactionUser(i)
	handler := strings.TrimPrefix(opts.String("account"), "@")

	org, err := c.OrganizationRepo.GetByHandler(ctx, i.GuildID, handler)
	if err != nil {
		if errors.Is(err, organization.ErrNotFound) {
			return c.reply(i, "Organization not found.")
		}
		return err
	}
	if !org.CanManage(user.ID) {
		return c.reply(i, "You are not allowed to manage this organization.")
	}

	return c.API.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
			Embeds: []*discordgo.MessageEmbed{{
				Title: "Manage @" + org.Handler,
				Color: embedColor,
				Fields: []*discordgo.MessageEmbedField{
					{Name: "Owner", Value: "<@" + org.OwnerUserID + ">"},
					{Name: "Admins", Value: listOrNone(org.AdminUserIDs, "<@", ">")},
					{Name: "Posters", Value: listOrNone(org.PosterUserIDs, "<@", ">")},
					{Name: "Affiliates (handles)", Value: listOrNone(org.AffiliatedHandles, "@", "")},
				},
			}},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.Button{Label: "Add Poster", Style: discordgo.PrimaryButton, CustomID: orgAddPosterID(org.ID)},
					discordgo.Button{Label: "Add Affiliate", Style: discordgo.SecondaryButton, CustomID: orgAddAffiliateID(org.ID)},
				}},
			},
		},
	})
}

func listOrNone(values []string, prefix, suffix string) string {
	if len(values) == 0 {
		return "None"
	}
	out := make([]string, len(values))
	for n, v := range values {
		out[n] = prefix + v + suffix
	}
	return strings.Join(out, ", ")
}

// ownedOrganization loads an organization of the interaction guild and
// rejects anyone but its owner with denied.
func (c *CommandImpl) ownedOrganization(ctx context.Context, i *discordgo.Interaction, orgID, denied string) (*domain.Organization, error) {
	org, err := c.OrganizationRepo.GetByID(ctx, orgID)
	if errors.Is(err, organization.ErrNotFound) || (err == nil && org.GuildID != i.GuildID) {
		return nil, errors.Wrap(errors.ErrNotFound, "Organization not found.")
	}
	if err != nil {
		return nil, err
	}
	if org.OwnerUserID != interactionUser(i).ID {
		return nil, errors.Wrap(errors.ErrForbidden, denied)
	}
	return org, nil
}

func (c *CommandImpl) openAddPoster(ctx context.Context, i *discordgo.Interaction, orgID string) error {
	if _, err := c.ownedOrganization(ctx, i, orgID, "Only the owner can perform this action."); err != nil {
		return c.replyRejected(i, err)
	}
	return c.API.InteractionRespond(i, textModal(orgAddPosterID(orgID), "Add Poster", discordgo.TextInput{
		CustomID: posterInputID,
		Label:    "User ID or @mention",
		Style:    discordgo.TextInputShort,
		Required: true,
	}))
}

func (c *CommandImpl) submitAddPoster(ctx context.Context, i *discordgo.Interaction, orgID, input string) error {
	org, err := c.ownedOrganization(ctx, i, orgID, "Only the owner can modify posters.")
	if err != nil {
		return c.replyRejected(i, err)
	}

	userID := userIDInput.FindString(input)
	if userID == "" {
		return c.reply(i, "Provide a valid user ID or mention.")
	}
	if err := c.OrganizationRepo.AddPoster(ctx, org.ID, userID); err != nil {
		return errors.Wrap(err, "Failed to update organization.")
	}
	c.Logger.Info("Poster added", "guild_id", i.GuildID, "handler", org.Handler, "user_id", userID)
	return c.reply(i, fmt.Sprintf("Added <@%s> as poster.", userID))
}

func (c *CommandImpl) openAddAffiliate(ctx context.Context, i *discordgo.Interaction, orgID string) error {
	if _, err := c.ownedOrganization(ctx, i, orgID, "Only the owner can perform this action."); err != nil {
		return c.replyRejected(i, err)
	}
	return c.API.InteractionRespond(i, textModal(orgAddAffiliateID(orgID), "Add Affiliate", discordgo.TextInput{
		CustomID:  affiliateInputID,
		Label:     "Handle (without @)",
		Style:     discordgo.TextInputShort,
		Required:  true,
		MaxLength: handleMaxLength + 1,
	}))
}

// submitAddAffiliate asks the owner of the handle for consent by direct message.
func (c *CommandImpl) submitAddAffiliate(ctx context.Context, i *discordgo.Interaction, orgID, input string) error {
	org, err := c.ownedOrganization(ctx, i, orgID, "Only the owner can add affiliates.")
	if err != nil {
		return c.replyRejected(i, err)
	}

	handle := strings.TrimPrefix(input, "@")
	if handle == "" {
		return c.reply(i, "Provide a handle.")
	}
	if slices.Contains(org.AffiliatedHandles, handle) {
		return c.reply(i, fmt.Sprintf("@%s is already affiliated.", handle))
	}

	target, err := c.ProfileRepo.FindByHandle(ctx, i.GuildID, handle)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return c.reply(i, "No user with that handle exists in this guild.")
		}
		return err
	}

	deny := affiliateAnswer{OrgID: org.ID, Handle: target.Handle}
	accept := deny
	accept.Accept = true
	dm, err := c.API.UserChannelCreate(target.UserID, discordgo.WithContext(ctx))
	if err == nil {
		_, err = c.API.ChannelMessageSendComplex(dm.ID, &discordgo.MessageSend{
			Content: fmt.Sprintf("Organization @%s wants to affiliate with your handle @%s. Accept?", org.Handler, target.Handle),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.Button{Label: "Accept", Style: discordgo.SuccessButton, CustomID: affiliateAnswerID(accept)},
					discordgo.Button{Label: "Deny", Style: discordgo.DangerButton, CustomID: affiliateAnswerID(deny)},
				}},
			},
		}, discordgo.WithContext(ctx))
	}
	if err != nil {
		c.Logger.Warn("Failed to send affiliate request", "handler", org.Handler, "user_id", target.UserID, "error", err)
		return c.reply(i, "Failed to DM the user for consent.")
	}

	c.Logger.Info("Affiliate requested", "guild_id", i.GuildID, "handler", org.Handler, "handle", target.Handle)
	return c.reply(i, "Sent an affiliate request via DM.")
}

// handleAffiliateAnswer resolves an affiliation request from the direct message buttons.
func (c *CommandImpl) handleAffiliateAnswer(ctx context.Context, i *discordgo.Interaction, answer affiliateAnswer) error {
	org, err := c.OrganizationRepo.GetByID(ctx, answer.OrgID)
	if err != nil {
		if errors.Is(err, organization.ErrNotFound) {
			return c.reply(i, "Organization not found.")
		}
		return err
	}

	user := interactionUser(i)
	p, err := c.ProfileRepo.GetByHandle(ctx, org.GuildID, user.ID, answer.Handle)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return c.reply(i, "You do not own this handle.")
		}
		return err
	}

	content := "Affiliation request denied."
	if answer.Accept {
		if err := c.ProfileRepo.SetAffiliatedIcon(ctx, p.ID, org.ProfileImageURL); err != nil {
			return errors.Wrap(err, "Failed to accept affiliation.")
		}
		if err := c.OrganizationRepo.AddAffiliate(ctx, org.ID, p.Handle); err != nil {
			return errors.Wrap(err, "Failed to accept affiliation.")
		}
		c.Logger.Info("Affiliation accepted", "guild_id", org.GuildID, "handler", org.Handler, "handle", p.Handle)
		content = fmt.Sprintf("Affiliation accepted. @%s is now affiliated with @%s.", p.Handle, org.Handler)
	}

	return c.API.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: []discordgo.MessageComponent{},
		},
	})
}

// textModal opens a modal holding a single text input.
func textModal(customID, title string, input discordgo.TextInput) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: customID,
			Title:    title,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{input}},
			},
		},
	}
}
