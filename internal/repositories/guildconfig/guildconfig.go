package guildconfig

import (
	"context"

	"github.com/orgball2608/forum-tweet-bot/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=guildconfig.go -destination=mocks/mock.go
type Repository interface {
	// Get returns the stored config, or a default one when the guild has none
	Get(ctx context.Context, guildID string) (*domain.GuildConfig, error)
	SetForumChannel(ctx context.Context, guildID, channelID string) error
	SetWebhook(ctx context.Context, guildID, webhookID, webhookToken string) error
	SetMaxAccounts(ctx context.Context, guildID string, n int) error
}
