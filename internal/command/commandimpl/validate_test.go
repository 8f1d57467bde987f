package commandimpl

import (
	"testing"

	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidateNames(t *testing.T) {
	tests := []struct {
		name     string
		handle   string
		username string
		want     string
	}{
		{"valid", "ada_l", "Ada.Lovelace", ""},
		{"digits with letter", "x1999", "2fast", ""},
		{"space", "ada l", "Ada", "cannot contain spaces"},
		{"at prefix", "@ada", "Ada", "cannot begin with @"},
		{"bad start", "_ada", "Ada", "Only letters, numbers"},
		{"bad char", "ada-l", "Ada", "Only letters, numbers"},
		{"no letter", "1234", "Ada", "at least one letter"},
		{"short", "a", "Ada", "2 to 32"},
		{"long handle", "a234567890123456789012345678901234", "Ada", "2 to 32"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateNames(tt.handle, tt.username)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, errors.ErrInvalidInput)
			assert.Contains(t, errors.GetMessage(err), tt.want)
		})
	}
}

func TestParseTarget(t *testing.T) {
	userID, handle := parseTarget("<@123456789012345678>")
	assert.Equal(t, "123456789012345678", userID)
	assert.Empty(t, handle)

	userID, handle = parseTarget(" @ada ")
	assert.Empty(t, userID)
	assert.Equal(t, "ada", handle)
}

func TestParseIdentityValue(t *testing.T) {
	kind, id, ok := parseIdentityValue("o:42")
	assert.True(t, ok)
	assert.Equal(t, domain.IdentityOrganization, kind)
	assert.Equal(t, "42", id)

	for _, bad := range []string{"p:", "x:1", "p1", ""} {
		_, _, ok := parseIdentityValue(bad)
		assert.False(t, ok, bad)
	}
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, validateUsername("Ada.Lovelace"))

	for input, want := range map[string]string{
		"Ada Lovelace": "cannot contain spaces",
		"@ada":         "cannot begin with @",
		"-ada":         "Only letters, numbers",
		"2024":         "at least one letter",
		"a":            "2 to 64",
	} {
		err := validateUsername(input)
		assert.ErrorIs(t, err, errors.ErrInvalidInput, input)
		assert.Contains(t, errors.GetMessage(err), want, input)
	}
}

func TestValidateImageURL(t *testing.T) {
	assert.NoError(t, validateImageURL("https://cdn.test/a.png"))
	assert.NoError(t, validateImageURL("http://cdn.test/a.png?size=64"))

	for _, bad := range []string{"cdn.test/a.png", "ftp://cdn.test/a.png", "https://", "not a url"} {
		assert.ErrorIs(t, validateImageURL(bad), errors.ErrInvalidInput, bad)
	}
}
