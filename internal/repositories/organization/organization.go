package organization

import (
	"context"
	"errors"

	"github.com/orgball2608/forum-tweet-bot/internal/domain"
)

var (
	ErrNotFound     = errors.New("organization not found")
	ErrHandlerTaken = errors.New("organization handler already taken")
)

//go:generate go run go.uber.org/mock/mockgen -source=organization.go -destination=mocks/mock.go
type Repository interface {
	Create(ctx context.Context, org domain.Organization) (*domain.Organization, error)
	GetByID(ctx context.Context, id string) (*domain.Organization, error)
	GetByHandler(ctx context.Context, guildID, handler string) (*domain.Organization, error)

	// ListPostable returns organizations userID owns, administers or posts for
	ListPostable(ctx context.Context, guildID, userID string, limit int) ([]*domain.Organization, error)
	// ListManaged returns organizations userID owns or administers
	ListManaged(ctx context.Context, guildID, userID string, limit int) ([]*domain.Organization, error)

	// AddPoster and AddAffiliate append to the member lists, skipping values already present
	AddPoster(ctx context.Context, id, userID string) error
	AddAffiliate(ctx context.Context, id, handle string) error
	UpdateProfile(ctx context.Context, id string, u domain.ProfileUpdate) (*domain.Organization, error)

	// SetVerification updates organizations owned by ownerUserID, or the one
	// named handler when ownerUserID is empty
	SetVerification(ctx context.Context, guildID, ownerUserID, handler string, v domain.Verification) (int64, error)
}
