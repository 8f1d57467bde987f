package domain

import (
	"slices"
	"time"
)

type Organization struct {
	ID                string
	GuildID           string
	Handler           string
	Username          string
	ProfileImageURL   string
	OwnerUserID       string
	AdminUserIDs      []string
	PosterUserIDs     []string
	AffiliatedHandles []string
	Verification      Verification
	CreatedAt         time.Time
}

// CanPost reports whether userID may publish as the organization.
func (o *Organization) CanPost(userID string) bool {
	return o.OwnerUserID == userID ||
		slices.Contains(o.AdminUserIDs, userID) ||
		slices.Contains(o.PosterUserIDs, userID)
}

// CanManage reports whether userID may open the management panel or edit the organization.
func (o *Organization) CanManage(userID string) bool {
	return o.OwnerUserID == userID || slices.Contains(o.AdminUserIDs, userID)
}

func (o *Organization) Identity() Identity {
	return Identity{
		Kind:         IdentityOrganization,
		ID:           o.ID,
		DisplayName:  o.Username,
		Handle:       o.Handler,
		AvatarURL:    o.ProfileImageURL,
		Verification: o.Verification,
	}
}
