// Package threads finds the thread created as a side effect of publishing a
// forum post.
package threads

import (
	"context"

	"github.com/orgball2608/forum-tweet-bot/internal/domain"
)

// Notifier delivers thread creation events. Subscribe returns a function that
// removes the listener; it must be safe to call more than once.
type Notifier interface {
	Subscribe(fn func(domain.Thread)) (unsubscribe func())
}

// Lister returns the threads currently open in a guild.
type Lister interface {
	ActiveThreads(ctx context.Context, guildID string) ([]domain.Thread, error)
}

// Target is the thread we are waiting for.
type Target struct {
	GuildID  string
	ParentID string
	Title    string
}

func (t Target) Matches(th domain.Thread) bool {
	return th.ParentID == t.ParentID && th.Name == t.Title
}

type Tier int

const (
	TierNone Tier = iota
	TierDirect
	TierEvent
	TierPoll
)

func (t Tier) String() string {
	switch t {
	case TierDirect:
		return "direct"
	case TierEvent:
		return "event"
	case TierPoll:
		return "poll"
	default:
		return "none"
	}
}

// Resolution is the outcome of thread resolution. TierNone with an empty
// ThreadID is a valid terminal state, not an error.
type Resolution struct {
	ThreadID string
	Tier     Tier
}

func (r Resolution) Found() bool {
	return r.ThreadID != ""
}
