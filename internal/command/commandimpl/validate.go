package commandimpl

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/pkg/errors"
)

const (
	handleMinLength   = 2
	handleMaxLength   = 32
	usernameMinLength = 2
	usernameMaxLength = 64
)

var (
	namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._]*$`)
	hasLetter   = regexp.MustCompile(`[A-Za-z]`)
	userIDInput = regexp.MustCompile(`\d{15,}`)
)

// validateNames applies the account naming rules to a handle and username
// pair and returns the message to show when they are rejected.
func validateNames(handle, username string) error {
	if strings.IndexFunc(handle+username, unicode.IsSpace) >= 0 {
		return errors.Wrap(errors.ErrInvalidInput, "Handles and usernames cannot contain spaces. Use _ or . instead (e.g., Elon_Musk).")
	}
	if strings.HasPrefix(handle, "@") || strings.HasPrefix(username, "@") {
		return errors.Wrap(errors.ErrInvalidInput, "Handles and usernames cannot begin with @. Enter without the @ prefix.")
	}
	if !namePattern.MatchString(handle) || !namePattern.MatchString(username) {
		return errors.Wrap(errors.ErrInvalidInput, "Only letters, numbers, underscore (_) and dot (.) are allowed. Must start with a letter/number.")
	}
	if !hasLetter.MatchString(handle) || !hasLetter.MatchString(username) {
		return errors.Wrap(errors.ErrInvalidInput, "Handles and usernames must include at least one letter.")
	}
	if n := len(handle); n < handleMinLength || n > handleMaxLength {
		return errors.Wrap(errors.ErrInvalidInput, "Handles must be 2 to 32 characters long.")
	}
	if n := len(username); n < usernameMinLength || n > usernameMaxLength {
		return errors.Wrap(errors.ErrInvalidInput, "Usernames must be 2 to 64 characters long.")
	}
	return nil
}

// validateUsername applies the username half of the naming rules.
func validateUsername(username string) error {
	if strings.IndexFunc(username, unicode.IsSpace) >= 0 {
		return errors.Wrap(errors.ErrInvalidInput, "Usernames cannot contain spaces. Use _ or . instead (e.g., Elon_Musk).")
	}
	if strings.HasPrefix(username, "@") {
		return errors.Wrap(errors.ErrInvalidInput, "Usernames cannot begin with @. Enter without the @ prefix.")
	}
	if !namePattern.MatchString(username) {
		return errors.Wrap(errors.ErrInvalidInput, "Only letters, numbers, underscore (_) and dot (.) are allowed. Must start with a letter/number.")
	}
	if !hasLetter.MatchString(username) {
		return errors.Wrap(errors.ErrInvalidInput, "Usernames must include at least one letter.")
	}
	if n := len(username); n < usernameMinLength || n > usernameMaxLength {
		return errors.Wrap(errors.ErrInvalidInput, "Usernames must be 2 to 64 characters long.")
	}
	return nil
}

// validateImageURL accepts absolute http and https URLs.
func validateImageURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Wrap(errors.ErrInvalidInput, "Provide a valid http(s) image URL.")
	}
	return nil
}

// parseTarget reads an admin target: a user mention or id, or a handle with
// an optional @.
func parseTarget(input string) (userID, handle string) {
	if id := userIDInput.FindString(input); id != "" {
		return id, ""
	}
	return "", strings.TrimPrefix(strings.TrimSpace(input), "@")
}

// parseIdentityValue splits a "p:<id>" or "o:<id>" select value.
func parseIdentityValue(v string) (domain.IdentityKind, string, bool) {
	kind, id, found := strings.Cut(v, ":")
	if !found || id == "" {
		return "", "", false
	}
	switch k := domain.IdentityKind(kind); k {
	case domain.IdentityProfile, domain.IdentityOrganization:
		return k, id, true
	default:
		return "", "", false
	}
}
