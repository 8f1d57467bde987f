package replysession

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/forum-tweet-bot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var key = Key{GuildID: "g1", UserID: "u1", PostID: "p1"}

func TestTakeConsumesOnce(t *testing.T) {
	s := NewStore(clockwork.NewFakeClock(), time.Minute)
	s.Put(Draft{Key: key, Body: "nice", ReplyToHandle: "ada", ReplyToMessageID: "m1"})

	d, err := s.Take(key)
	require.NoError(t, err)
	assert.Equal(t, "nice", d.Body)
	assert.Equal(t, "ada", d.ReplyToHandle)

	_, err = s.Take(key)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.True(t, errors.IsSessionExpired(err))
	assert.Equal(t, 0, s.Len())
}

func TestKeysDoNotCollide(t *testing.T) {
	s := NewStore(clockwork.NewFakeClock(), time.Minute)
	other := []Key{
		{GuildID: "g1", UserID: "u2", PostID: "p1"},
		{GuildID: "g1", UserID: "u1", PostID: "p2"},
		{GuildID: "g2", UserID: "u1", PostID: "p1"},
	}
	s.Put(Draft{Key: key, Body: "mine"})
	for _, k := range other {
		s.Put(Draft{Key: k, Body: "theirs"})
	}

	d, err := s.Take(key)
	require.NoError(t, err)
	assert.Equal(t, "mine", d.Body)
	assert.Equal(t, len(other), s.Len())
}

func TestTakeUnknownKey(t *testing.T) {
	s := NewStore(clockwork.NewFakeClock(), time.Minute)
	_, err := s.Take(key)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestTakeExpiredDraft(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewStore(clock, time.Minute)
	s.Put(Draft{Key: key, Body: "late"})

	clock.Advance(time.Minute)
	_, err := s.Take(key)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, 0, s.Len())
}

func TestPutReplacesDraft(t *testing.T) {
	s := NewStore(clockwork.NewFakeClock(), time.Minute)
	s.Put(Draft{Key: key, Body: "first"})
	s.Put(Draft{Key: key, Body: "second"})

	d, err := s.Take(key)
	require.NoError(t, err)
	assert.Equal(t, "second", d.Body)
}

func TestRestoreKeepsCreatedAt(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewStore(clock, time.Minute)
	s.Put(Draft{Key: key, Body: "retry"})
	created := clock.Now()

	clock.Advance(40 * time.Second)
	d, err := s.Take(key)
	require.NoError(t, err)
	s.Restore(d)

	d, err = s.Take(key)
	require.NoError(t, err)
	assert.Equal(t, created, d.CreatedAt)
	s.Restore(d)

	clock.Advance(20 * time.Second)
	_, err = s.Take(key)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestRestoreStampsNewDraft(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewStore(clock, time.Minute)
	s.Restore(Draft{Key: key})

	d, err := s.Take(key)
	require.NoError(t, err)
	assert.Equal(t, clock.Now(), d.CreatedAt)
}

func TestSweep(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewStore(clock, time.Minute)
	s.Put(Draft{Key: key})
	clock.Advance(30 * time.Second)
	fresh := Key{GuildID: "g1", UserID: "u2", PostID: "p1"}
	s.Put(Draft{Key: fresh})
	clock.Advance(45 * time.Second)

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())
	_, err := s.Take(fresh)
	assert.NoError(t, err)
}

func TestConcurrentTakeHasSingleWinner(t *testing.T) {
	s := NewStore(clockwork.NewFakeClock(), time.Minute)
	s.Put(Draft{Key: key, Body: "race"})

	var (
		wg      sync.WaitGroup
		winners atomic.Int32
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Take(key); err == nil {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}
