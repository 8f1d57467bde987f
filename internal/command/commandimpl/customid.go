package commandimpl

import (
	"strings"

	"github.com/orgball2608/forum-tweet-bot/internal/domain"
)

// Custom ids of the organization and account panels. Buttons and the modals
// they open share the same id.
const (
	orgAddPosterPrefix    = "org:addposter:"
	orgAddAffiliatePrefix = "org:addaff:"
	orgAffAcceptPrefix    = "org:aff:accept:"
	orgAffDenyPrefix      = "org:aff:deny:"
	accountEditPrefix     = "account:edit:"
)

// Text input ids of the panel modals.
const (
	posterInputID    = "user"
	affiliateInputID = "handle"
	usernameInputID  = "username"
	imageInputID     = "image"
)

type editField string

const (
	editUsername     editField = "username"
	editProfileImage editField = "profileimg"
)

// affiliateAnswer is an accept or deny button of an affiliation request.
type affiliateAnswer struct {
	Accept bool
	OrgID  string
	Handle string
}

// accountEdit names the field of a profile or organization being edited.
type accountEdit struct {
	Field editField
	Kind  domain.IdentityKind
	ID    string
}

func orgAddPosterID(orgID string) string {
	return orgAddPosterPrefix + orgID
}

func orgAddAffiliateID(orgID string) string {
	return orgAddAffiliatePrefix + orgID
}

func affiliateAnswerID(a affiliateAnswer) string {
	prefix := orgAffDenyPrefix
	if a.Accept {
		prefix = orgAffAcceptPrefix
	}
	return prefix + a.OrgID + ":" + a.Handle
}

func accountEditID(e accountEdit) string {
	return accountEditPrefix + string(e.Field) + ":" + string(e.Kind) + ":" + e.ID
}

// parseOrgID reads the organization id of an id built from prefix.
func parseOrgID(customID, prefix string) (string, bool) {
	orgID, ok := strings.CutPrefix(customID, prefix)
	if !ok || orgID == "" || strings.Contains(orgID, ":") {
		return "", false
	}
	return orgID, true
}

func parseAffiliateAnswer(customID string) (affiliateAnswer, bool) {
	var a affiliateAnswer
	rest, ok := strings.CutPrefix(customID, orgAffAcceptPrefix)
	if ok {
		a.Accept = true
	} else if rest, ok = strings.CutPrefix(customID, orgAffDenyPrefix); !ok {
		return affiliateAnswer{}, false
	}

	orgID, handle, found := strings.Cut(rest, ":")
	if !found || orgID == "" || handle == "" || strings.Contains(handle, ":") {
		return affiliateAnswer{}, false
	}
	a.OrgID, a.Handle = orgID, handle
	return a, true
}

func parseAccountEdit(customID string) (accountEdit, bool) {
	rest, ok := strings.CutPrefix(customID, accountEditPrefix)
	if !ok {
		return accountEdit{}, false
	}
	parts := strings.Split(rest, ":")
	if len(parts) != 3 {
		return accountEdit{}, false
	}

	field := editField(parts[0])
	if field != editUsername && field != editProfileImage {
		return accountEdit{}, false
	}
	kind, id, ok := parseIdentityValue(parts[1] + ":" + parts[2])
	if !ok {
		return accountEdit{}, false
	}
	return accountEdit{Field: field, Kind: kind, ID: id}, true
}
