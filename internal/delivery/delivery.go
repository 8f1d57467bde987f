package delivery

import (
	"context"
	"errors"
)

// Target identifies the forum a post is published into.
type Target struct {
	GuildID        string
	ForumChannelID string
}

// Message is one rendered post sent under a display identity.
type Message struct {
	Image     []byte
	FileName  string
	Title     string
	Username  string
	AvatarURL string
}

// Response is what the platform told us synchronously. ChannelID may be empty
// or equal to the forum itself when the new thread is not known yet.
type Response struct {
	MessageID string
	ChannelID string
}

// Controls are the like/reply affordances attached under a post or reply.
type Controls struct {
	PostID     string
	LikesCount int
	ShowLike   bool
	// ReplyToHandle is set on reply controls only
	ReplyToHandle string
}

// Channel publishes rendered posts, typically through a webhook.
//
//go:generate go run go.uber.org/mock/mockgen -source=delivery.go -destination=mocks/mock.go
type Channel interface {
	ID() string
	Send(ctx context.Context, msg Message) (Response, error)
	EditControls(ctx context.Context, messageID, threadID string, controls Controls) error
}

// Provider hands out delivery channels for a forum. With fresh set it must
// discard any cached channel and create a new one.
type Provider interface {
	Acquire(ctx context.Context, target Target, fresh bool) (Channel, error)
}

// ThreadPoster posts replies inside an existing thread as the bot itself.
type ThreadPoster interface {
	PostReply(ctx context.Context, threadID, replyToMessageID string, image []byte, fileName string) (string, error)
	AttachControls(ctx context.Context, threadID, messageID string, controls Controls) error

	// SendControls posts a controls-only message, used when the original
	// message can no longer be edited
	SendControls(ctx context.Context, threadID string, controls Controls) (string, error)
}

// ErrNotForum is returned when the configured target is not a forum channel.
var ErrNotForum = errors.New("configured channel is not a forum")
