package post

import (
	"context"
	"errors"

	"github.com/orgball2608/forum-tweet-bot/internal/domain"
)

var (
	ErrNotFound = errors.New("post not found")
)

//go:generate go run go.uber.org/mock/mockgen -source=post.go -destination=mocks/mock.go
type Repository interface {
	// Create stores a pending post and returns it with its generated ID
	Create(ctx context.Context, post domain.Post) (*domain.Post, error)

	// GetByID returns the post or ErrNotFound
	GetByID(ctx context.Context, id string) (*domain.Post, error)

	// MarkDelivered records the message, thread and webhook ids of a delivered post
	MarkDelivered(ctx context.Context, id string, delivery domain.PostDelivery) error

	// IncrementLikes adds one like and returns the updated post
	IncrementLikes(ctx context.Context, id string) (*domain.Post, error)

	// IncrementReplies adds one reply and returns the updated post
	IncrementReplies(ctx context.Context, id string) (*domain.Post, error)
}
