package ratelimit

import (
	"sync"
	"time"

	"github.com/orgball2608/forum-tweet-bot/pkg/config"
	"golang.org/x/time/rate"
)

// pruneThreshold is the bucket count above which refilled buckets are dropped.
const pruneThreshold = 1024

// Limiter throttles posting commands per guild member.
type Limiter interface {
	Allow(key string) bool
}

// InMemoryLimiter keeps one token bucket per key
type InMemoryLimiter struct {
	buckets map[string]*rate.Limiter
	mu      sync.Mutex
	r       rate.Limit
	b       int
}

// NewInMemoryLimiter creates a new rate limiter
// Example: NewInMemoryLimiter(1, 5*time.Second, 3) -> allows 1 post every 5 seconds, burst of 3 posts
func NewInMemoryLimiter(requests int, per time.Duration, burst int) *InMemoryLimiter {
	if requests <= 0 {
		requests = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &InMemoryLimiter{
		buckets: make(map[string]*rate.Limiter),
		r:       rate.Every(per / time.Duration(requests)),
		b:       burst,
	}
}

func New(cfg *config.Config) Limiter {
	return NewInMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Per, cfg.RateLimit.Burst)
}

// Key scopes a user's bucket to one guild.
func Key(guildID, userID string) string {
	return guildID + ":" + userID
}

func (l *InMemoryLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.buckets[key]
	if !exists {
		if len(l.buckets) >= pruneThreshold {
			l.pruneLocked(time.Now())
		}
		limiter = rate.NewLimiter(l.r, l.b)
		l.buckets[key] = limiter
	}

	return limiter.Allow()
}

// Prune drops buckets that have refilled completely, since a fresh bucket
// behaves the same. It returns the number of buckets removed.
func (l *InMemoryLimiter) Prune(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pruneLocked(now)
}

func (l *InMemoryLimiter) pruneLocked(now time.Time) int {
	removed := 0
	for key, limiter := range l.buckets {
		if limiter.TokensAt(now) >= float64(l.b) {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}

func (l *InMemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
