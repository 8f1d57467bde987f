package publisher

import "github.com/orgball2608/forum-tweet-bot/pkg/formatter"

// Title builds the thread title "@handle: content", cut to TitleLimit
// characters. The cut counts runes so multi-byte text is never split.
func Title(handle, content string) string {
	return formatter.TruncateRunes("@"+handle+": "+content, TitleLimit)
}
