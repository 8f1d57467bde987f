package formatter

import (
	"strconv"
	"strings"
)

// FormatNumber converts an integer to a string with commas as thousands separators.
// Example: 1234567 -> "1,234,567"
func FormatNumber(n int) string {
	s := strconv.Itoa(n)
	neg := n < 0
	if neg {
		s = s[1:]
	}

	le := len(s)
	if le <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	res := make([]byte, le+(le-1)/3)

	j := len(res) - 1
	for i := le - 1; i >= 0; i-- {
		res[j] = s[i]
		j--
		if (le-i)%3 == 0 && i > 0 {
			res[j] = ','
			j--
		}
	}

	if neg {
		return "-" + string(res)
	}
	return string(res)
}

// EscapeMarkdown escapes characters that Discord treats as markdown.
func EscapeMarkdown(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\', '_', '*', '~', '`', '|', '>', '#', '-', '[', ']', '(', ')':
			sb.WriteRune('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// TruncateRunes cuts s to at most n runes without looking at word boundaries.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
