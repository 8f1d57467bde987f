package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowBurstThenDeny(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("u1"), "request %d within burst", i+1)
	}
	assert.False(t, l.Allow("u1"))
}

func TestUsersHaveSeparateBuckets(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 1)

	assert.True(t, l.Allow("u1"))
	assert.False(t, l.Allow("u1"))
	assert.True(t, l.Allow("u2"))
}

func TestZeroRequestsFallsBackToOne(t *testing.T) {
	l := NewInMemoryLimiter(0, time.Hour, 1)

	assert.True(t, l.Allow("u1"))
	assert.False(t, l.Allow("u1"))
}

func TestKeyScopesByGuild(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 1)

	assert.True(t, l.Allow(Key("g1", "u1")))
	assert.False(t, l.Allow(Key("g1", "u1")))
	assert.True(t, l.Allow(Key("g2", "u1")))
}

func TestPruneDropsRefilledBuckets(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Second, 1)

	assert.True(t, l.Allow("u1"))
	assert.True(t, l.Allow("u2"))
	assert.Equal(t, 2, l.Len())

	assert.Equal(t, 0, l.Prune(time.Now()))
	assert.Equal(t, 2, l.Len())

	assert.Equal(t, 2, l.Prune(time.Now().Add(time.Minute)))
	assert.Equal(t, 0, l.Len())
}
