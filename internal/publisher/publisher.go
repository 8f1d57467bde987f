// Package publisher turns a post or reply into a delivered forum message.
package publisher

import (
	"context"

	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/internal/threads"
)

// TitleLimit is the maximum thread title length in characters.
const TitleLimit = 100

type PostRequest struct {
	GuildID        string
	ForumChannelID string
	AuthorUserID   string
	Identity       domain.Identity
	Body           string
	MediaURL       string

	// WebhookUsername and WebhookAvatarURL are shown on the delivered message
	WebhookUsername  string
	WebhookAvatarURL string
}

type Result struct {
	Post       *domain.Post
	ThreadID   string
	Resolution threads.Tier
}

type ReplyRequest struct {
	GuildID          string
	UserID           string
	PostID           string
	Identity         domain.Identity
	Body             string
	ReplyToHandle    string
	ReplyToMessageID string
}

type ReplyResult struct {
	Post      *domain.Post
	MessageID string
	ThreadID  string
}

//go:generate go run go.uber.org/mock/mockgen -source=publisher.go -destination=mocks/mock.go
type Client interface {
	Publish(ctx context.Context, req PostRequest) (*Result, error)
	PublishReply(ctx context.Context, req ReplyRequest) (*ReplyResult, error)
	Like(ctx context.Context, postID string) (*domain.Post, error)
	// Post returns the stored post record
	Post(ctx context.Context, postID string) (*domain.Post, error)
}
