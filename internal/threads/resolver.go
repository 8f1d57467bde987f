package threads

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/forum-tweet-bot/internal/delivery"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/pkg/config"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
	"go.uber.org/fx"
)

type Config struct {
	EventTimeout  time.Duration
	RecencyWindow time.Duration
}

func DefaultConfig() Config {
	return Config{
		EventTimeout:  5 * time.Second,
		RecencyWindow: 60 * time.Second,
	}
}

type Opts struct {
	fx.In

	Notifier Notifier
	Lister   Lister
	Config   *config.Config
	Logger   logger.Logger
}

type Resolver struct {
	notifier Notifier
	lister   Lister
	clock    clockwork.Clock
	cfg      Config
	logger   logger.Logger
}

func New(opts Opts) *Resolver {
	return NewResolver(opts.Notifier, opts.Lister, clockwork.NewRealClock(), Config{
		EventTimeout:  opts.Config.Threads.EventTimeout,
		RecencyWindow: opts.Config.Threads.RecencyWindow,
	}, opts.Logger)
}

func NewResolver(n Notifier, l Lister, clock clockwork.Clock, cfg Config, log logger.Logger) *Resolver {
	return &Resolver{
		notifier: n,
		lister:   l,
		clock:    clock,
		cfg:      cfg,
		logger:   log.WithComponent("ThreadResolver"),
	}
}

// Watch is a registered listener for one target. Open it before sending the
// message so an early creation event cannot be missed.
type Watch struct {
	target  Target
	matched chan string
	stop    func()
	once    sync.Once
}

// Watch starts listening for target immediately.
func (r *Resolver) Watch(target Target) *Watch {
	w := &Watch{
		target:  target,
		matched: make(chan string, 1),
	}
	w.stop = r.notifier.Subscribe(func(th domain.Thread) {
		if !target.Matches(th) {
			return
		}
		select {
		case w.matched <- th.ID:
		default:
		}
	})
	return w
}

// Close removes the listener. Safe to call more than once.
func (w *Watch) Close() {
	w.once.Do(func() {
		if w.stop != nil {
			w.stop()
		}
	})
}

// Resolve works out the thread id using, in order, the send response, the
// creation event and the active thread list. The watch is always closed.
func (r *Resolver) Resolve(ctx context.Context, w *Watch, resp delivery.Response) Resolution {
	defer w.Close()

	if resp.ChannelID != "" && resp.ChannelID != w.target.ParentID {
		return Resolution{ThreadID: resp.ChannelID, Tier: TierDirect}
	}

	if id, ok := r.awaitEvent(ctx, w); ok {
		return Resolution{ThreadID: id, Tier: TierEvent}
	}
	w.Close()

	if id, ok := r.poll(ctx, w.target); ok {
		return Resolution{ThreadID: id, Tier: TierPoll}
	}

	r.logger.Warn("Thread could not be resolved", "parent", w.target.ParentID, "title", w.target.Title)
	return Resolution{Tier: TierNone}
}

// awaitEvent returns the first of: a matching event, the timeout, ctx done.
func (r *Resolver) awaitEvent(ctx context.Context, w *Watch) (string, bool) {
	select {
	case id := <-w.matched:
		return id, true
	default:
	}

	timeout := r.clock.After(r.cfg.EventTimeout)
	select {
	case id := <-w.matched:
		return id, true
	case <-timeout:
		r.logger.Debug("Thread creation event not seen before timeout", "timeout", r.cfg.EventTimeout)
		return "", false
	case <-ctx.Done():
		return "", false
	}
}

func (r *Resolver) poll(ctx context.Context, target Target) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}
	threads, err := r.lister.ActiveThreads(ctx, target.GuildID)
	if err != nil {
		r.logger.Warn("Failed to list active threads", "guild", target.GuildID, "error", err)
		return "", false
	}
	now := r.clock.Now()
	for _, th := range threads {
		if target.Matches(th) && now.Sub(th.CreatedAt) < r.cfg.RecencyWindow {
			return th.ID, true
		}
	}
	return "", false
}
