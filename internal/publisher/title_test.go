package publisher

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		handle  string
		content string
		want    string
	}{
		{
			name:    "short",
			handle:  "ada",
			content: "Hello",
			want:    "@ada: Hello",
		},
		{
			name:    "truncated",
			handle:  "ada",
			content: strings.Repeat("x", 200),
			want:    "@ada: " + strings.Repeat("x", 94),
		},
		{
			name:    "empty content",
			handle:  "ada",
			content: "",
			want:    "@ada: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Title(tt.handle, tt.content)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), TitleLimit)
		})
	}
}

func TestTitleKeepsRunesWhole(t *testing.T) {
	got := Title("ada", strings.Repeat("日本", 100))

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, TitleLimit, utf8.RuneCountInString(got))
}
