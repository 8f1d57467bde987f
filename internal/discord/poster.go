package discord

import (
	"bytes"
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/internal/delivery"
)

// BotPoster posts into threads as the bot user.
type BotPoster struct {
	api rest
}

func NewBotPoster(session *discordgo.Session) *BotPoster {
	return &BotPoster{api: session}
}

var _ delivery.ThreadPoster = (*BotPoster)(nil)

func (p *BotPoster) PostReply(ctx context.Context, threadID, replyToMessageID string, image []byte, fileName string) (string, error) {
	send := &discordgo.MessageSend{
		Files: []*discordgo.File{{
			Name:        fileName,
			ContentType: "image/png",
			Reader:      bytes.NewReader(image),
		}},
		AllowedMentions: &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}},
	}
	if replyToMessageID != "" {
		failIfNotExists := false
		send.Reference = &discordgo.MessageReference{
			MessageID:       replyToMessageID,
			ChannelID:       threadID,
			FailIfNotExists: &failIfNotExists,
		}
	}

	msg, err := p.api.ChannelMessageSendComplex(threadID, send, discordgo.WithContext(ctx))
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

func (p *BotPoster) AttachControls(ctx context.Context, threadID, messageID string, controls delivery.Controls) error {
	components := ControlsRow(controls)
	edit := discordgo.NewMessageEdit(threadID, messageID)
	edit.Components = &components

	_, err := p.api.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx))
	return err
}

func (p *BotPoster) SendControls(ctx context.Context, threadID string, controls delivery.Controls) (string, error) {
	msg, err := p.api.ChannelMessageSendComplex(threadID, &discordgo.MessageSend{
		Components: ControlsRow(controls),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}
