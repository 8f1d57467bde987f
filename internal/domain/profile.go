package domain

import "time"

type Profile struct {
	ID                string
	GuildID           string
	UserID            string
	Handle            string
	Username          string
	ProfileImageURL   string
	Verification      Verification
	AffiliatedIconURL string
	CreatedBy         string
	CreatedAt         time.Time
}

func (p *Profile) Identity() Identity {
	return Identity{
		Kind:              IdentityProfile,
		ID:                p.ID,
		DisplayName:       p.Username,
		Handle:            p.Handle,
		AvatarURL:         p.ProfileImageURL,
		Verification:      p.Verification,
		AffiliatedIconURL: p.AffiliatedIconURL,
	}
}

// ProfileUpdate changes the display fields of a profile or organization.
// Nil fields are left as they are. An empty ProfileImageURL clears the image.
type ProfileUpdate struct {
	Username        *string
	ProfileImageURL *string
}

func (u ProfileUpdate) Empty() bool {
	return u.Username == nil && u.ProfileImageURL == nil
}
