package logger

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/orgball2608/forum-tweet-bot/pkg/config"
	"go.uber.org/fx"
)

const sentryFlushTimeout = 2 * time.Second

var FxOption = fx.Annotate(
	func(lc fx.Lifecycle, cfg *config.Config) *Impl {
		if cfg.App.SentryUrl != "" {
			lc.Append(fx.StopHook(func(context.Context) {
				sentry.Flush(sentryFlushTimeout)
			}))
		}
		return New(
			Opts{
				Env:       cfg.App.Env,
				SentryDSN: cfg.App.SentryUrl,
			},
		)
	},
	fx.As(new(Logger)),
)
