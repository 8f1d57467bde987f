package discord

import (
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/internal/threads"
)

// ThreadNotifier fans thread creation events out to subscribers. It keeps a
// single gateway handler for its whole life.
type ThreadNotifier struct {
	mu        sync.Mutex
	next      uint64
	listeners map[uint64]func(domain.Thread)
}

func NewThreadNotifier(session *discordgo.Session) *ThreadNotifier {
	n := newThreadNotifier()
	session.AddHandler(n.onThreadCreate)
	return n
}

func newThreadNotifier() *ThreadNotifier {
	return &ThreadNotifier{listeners: make(map[uint64]func(domain.Thread))}
}

var _ threads.Notifier = (*ThreadNotifier)(nil)

func (n *ThreadNotifier) Subscribe(fn func(domain.Thread)) func() {
	n.mu.Lock()
	id := n.next
	n.next++
	n.listeners[id] = fn
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.listeners, id)
			n.mu.Unlock()
		})
	}
}

// Len reports the number of live subscriptions.
func (n *ThreadNotifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}

func (n *ThreadNotifier) onThreadCreate(_ *discordgo.Session, e *discordgo.ThreadCreate) {
	if e == nil || e.Channel == nil {
		return
	}
	th := toThread(e.Channel)

	n.mu.Lock()
	fns := make([]func(domain.Thread), 0, len(n.listeners))
	for _, fn := range n.listeners {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(th)
	}
}

func toThread(ch *discordgo.Channel) domain.Thread {
	th := domain.Thread{
		ID:       ch.ID,
		ParentID: ch.ParentID,
		Name:     ch.Name,
	}
	if created, err := discordgo.SnowflakeTimestamp(ch.ID); err == nil {
		th.CreatedAt = created
	}
	return th
}
