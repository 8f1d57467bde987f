package replysession

import (
	"context"
	"fmt"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/forum-tweet-bot/pkg/config"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
	"go.uber.org/fx"
)

type SweeperOpts struct {
	fx.In

	LC     fx.Lifecycle
	Store  *Store
	Config *config.Config
	Logger logger.Logger
}

// Sweeper periodically removes abandoned drafts.
type Sweeper struct {
	scheduler gocron.Scheduler
	store     *Store
	logger    logger.Logger
}

func NewSweeper(opts SweeperOpts) (*Sweeper, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create reply sweeper scheduler: %w", err)
	}

	s := &Sweeper{
		scheduler: scheduler,
		store:     opts.Store,
		logger:    opts.Logger.WithComponent("ReplySweeper"),
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(opts.Config.Replies.SweepInterval),
		gocron.NewTask(s.sweep),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule reply sweeper: %w", err)
	}

	opts.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			if err := scheduler.Shutdown(); err != nil {
				s.logger.Error("Failed to shut down reply sweeper", "error", err)
			}
			return nil
		},
	})

	return s, nil
}

func (s *Sweeper) sweep() {
	if removed := s.store.Sweep(); removed > 0 {
		s.logger.Info("Dropped abandoned reply drafts", "count", removed, "remaining", s.store.Len())
	}
}
