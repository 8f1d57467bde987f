package domain

import "fmt"

type Verification string

const (
	VerificationNone Verification = ""
	VerificationBlue Verification = "blue"
	VerificationGrey Verification = "grey"
	VerificationGold Verification = "gold"
)

func ParseVerification(s string) (Verification, error) {
	switch v := Verification(s); v {
	case VerificationNone, VerificationBlue, VerificationGrey, VerificationGold:
		return v, nil
	case "none":
		return VerificationNone, nil
	default:
		return VerificationNone, fmt.Errorf("unknown verification tier %q", s)
	}
}

type IdentityKind string

const (
	IdentityProfile      IdentityKind = "p"
	IdentityOrganization IdentityKind = "o"
)

// Identity is whoever a post or reply is rendered as.
type Identity struct {
	Kind              IdentityKind
	ID                string
	DisplayName       string
	Handle            string
	AvatarURL         string
	Verification      Verification
	AffiliatedIconURL string
}

// RenderRequest carries everything the compositor needs for one image.
// ReplyToHandle switches the compositor to the reply layout.
type RenderRequest struct {
	AvatarURL         string
	DisplayName       string
	Handle            string
	Body              string
	MediaURL          string
	Verification      Verification
	AffiliatedIconURL string
	ReplyToHandle     string
}

func (r RenderRequest) IsReply() bool {
	return r.ReplyToHandle != ""
}

func (i Identity) RenderRequest(body, mediaURL string) RenderRequest {
	return RenderRequest{
		AvatarURL:         i.AvatarURL,
		DisplayName:       i.DisplayName,
		Handle:            i.Handle,
		Body:              body,
		MediaURL:          mediaURL,
		Verification:      i.Verification,
		AffiliatedIconURL: i.AffiliatedIconURL,
	}
}
