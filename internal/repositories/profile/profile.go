package profile

import (
	"context"
	"errors"

	"github.com/orgball2608/forum-tweet-bot/internal/domain"
)

var ErrNotFound = errors.New("profile not found")

//go:generate go run go.uber.org/mock/mockgen -source=profile.go -destination=mocks/mock.go
type Repository interface {
	// Upsert creates the profile or updates username and image of an existing
	// profile with the same guild, user and handle
	Upsert(ctx context.Context, p domain.Profile) (*domain.Profile, error)
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByHandle(ctx context.Context, guildID, userID, handle string) (*domain.Profile, error)

	// FindByHandle returns the oldest profile of the guild using handle, whoever owns it
	FindByHandle(ctx context.Context, guildID, handle string) (*domain.Profile, error)
	ListByUser(ctx context.Context, guildID, userID string, limit int) ([]*domain.Profile, error)
	CountByUser(ctx context.Context, guildID, userID string) (int, error)

	// SetVerification updates every profile matching the filter and returns how many changed
	SetVerification(ctx context.Context, filter Filter, v domain.Verification) (int64, error)

	SetAffiliatedIcon(ctx context.Context, id, iconURL string) error
	UpdateProfile(ctx context.Context, id string, u domain.ProfileUpdate) (*domain.Profile, error)
}

// Filter selects profiles of a guild by owner or by handle. Empty fields are ignored.
type Filter struct {
	GuildID string
	UserID  string
	Handle  string
}
