package app

import (
	"context"

	"github.com/orgball2608/forum-tweet-bot/internal/asset"
	"github.com/orgball2608/forum-tweet-bot/internal/asset/assetimpl"
	"github.com/orgball2608/forum-tweet-bot/internal/command/commandimpl"
	"github.com/orgball2608/forum-tweet-bot/internal/compositor"
	"github.com/orgball2608/forum-tweet-bot/internal/compositor/compositorimpl"
	"github.com/orgball2608/forum-tweet-bot/internal/db"
	"github.com/orgball2608/forum-tweet-bot/internal/discord"
	"github.com/orgball2608/forum-tweet-bot/internal/pgx"
	"github.com/orgball2608/forum-tweet-bot/internal/publisher/publisherimpl"
	"github.com/orgball2608/forum-tweet-bot/internal/ratelimit"
	"github.com/orgball2608/forum-tweet-bot/internal/replysession"
	repositories "github.com/orgball2608/forum-tweet-bot/internal/repositories/fx"
	"github.com/orgball2608/forum-tweet-bot/internal/telegram"
	"github.com/orgball2608/forum-tweet-bot/internal/telegram/telegramimpl"
	"github.com/orgball2608/forum-tweet-bot/internal/threads"
	"github.com/orgball2608/forum-tweet-bot/pkg/config"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	fx.Provide(
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		),
		fx.Annotate(
			assetimpl.New,
			fx.As(new(asset.Fetcher)),
		),
		fx.Annotate(
			compositorimpl.New,
			fx.As(new(compositor.Renderer)),
		),
		threads.New,
		replysession.New,
		replysession.NewSweeper,
		ratelimit.New,
	),
	repositories.Module,
	discord.Module,
	publisherimpl.Module,
	commandimpl.Module,
	fx.Invoke(migrate),
	fx.Invoke(func(*replysession.Sweeper) {}),
	fx.Invoke(NewHealthServer),
)

// migrate applies pending migrations before anything touches the pool.
func migrate(lc fx.Lifecycle, cfg *config.Config, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pg, err := db.NewConnect(cfg)
			if err != nil {
				return err
			}
			defer pg.Close()

			if err := pg.Up(ctx); err != nil {
				return err
			}

			version, err := pg.Version(ctx)
			if err != nil {
				return err
			}
			log.Info("Database schema is up to date", "version", version)
			return nil
		},
	})
}
