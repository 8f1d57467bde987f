// Package layout turns post text into classified tokens and wraps them into
// lines bounded by a pixel width.
package layout

import (
	"regexp"
	"strings"
)

type Class int

const (
	Plain Class = iota
	URL
	Mention
	Hashtag
)

func (c Class) String() string {
	switch c {
	case URL:
		return "url"
	case Mention:
		return "mention"
	case Hashtag:
		return "hashtag"
	default:
		return "plain"
	}
}

// Highlighted reports whether the class is drawn in the accent color.
func (c Class) Highlighted() bool {
	return c != Plain
}

type Token struct {
	Text  string
	Class Class
}

var (
	urlPattern     = regexp.MustCompile(`(?i)^https?://\S+`)
	mentionPattern = regexp.MustCompile(`^@\w`)
	hashtagPattern = regexp.MustCompile(`^#\w`)
)

// Tokenize splits text on whitespace runs and classifies every word.
func Tokenize(text string) []Token {
	words := strings.Fields(text)
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, Token{Text: w, Class: classify(w)})
	}
	return tokens
}

func classify(word string) Class {
	switch {
	case urlPattern.MatchString(word):
		return URL
	case mentionPattern.MatchString(word):
		return Mention
	case hashtagPattern.MatchString(word):
		return Hashtag
	default:
		return Plain
	}
}
