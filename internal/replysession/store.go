// Package replysession keeps reply drafts from the reply button through the
// text input step to the identity selection step. Drafts live in memory only.
package replysession

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/forum-tweet-bot/pkg/config"
	"github.com/orgball2608/forum-tweet-bot/pkg/errors"
)

var ErrSessionExpired = errors.NewWithCode(errors.CodeSessionExpired, "Reply expired. Try again.")

// Key scopes a draft to one user replying to one post in one guild.
type Key struct {
	GuildID string
	UserID  string
	PostID  string
}

type Draft struct {
	Key              Key
	Body             string
	ReplyToHandle    string
	ReplyToMessageID string
	CreatedAt        time.Time
}

type Store struct {
	mu     sync.Mutex
	drafts map[Key]Draft
	clock  clockwork.Clock
	ttl    time.Duration
}

func New(cfg *config.Config) *Store {
	return NewStore(clockwork.NewRealClock(), cfg.Replies.TTL)
}

func NewStore(clock clockwork.Clock, ttl time.Duration) *Store {
	return &Store{
		drafts: make(map[Key]Draft),
		clock:  clock,
		ttl:    ttl,
	}
}

// Put stores a draft, replacing any earlier draft for the same key.
func (s *Store) Put(d Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.CreatedAt = s.clock.Now()
	s.drafts[d.Key] = d
}

// Restore puts back a draft returned by Take. CreatedAt is kept, so a draft
// never outlives its first TTL.
func (s *Store) Restore(d Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = s.clock.Now()
	}
	s.drafts[d.Key] = d
}

// Take removes and returns the draft for key. Only one caller can ever get a
// given draft; every other caller gets ErrSessionExpired.
func (s *Store) Take(key Key) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[key]
	if !ok {
		return Draft{}, ErrSessionExpired
	}
	delete(s.drafts, key)
	if s.expired(d) {
		return Draft{}, ErrSessionExpired
	}
	return d, nil
}

// Sweep drops expired drafts and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, d := range s.drafts {
		if s.expired(d) {
			delete(s.drafts, k)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}

func (s *Store) expired(d Draft) bool {
	return s.ttl > 0 && s.clock.Since(d.CreatedAt) >= s.ttl
}
