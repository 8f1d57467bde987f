package discord

import (
	"github.com/orgball2608/forum-tweet-bot/internal/delivery"
	"github.com/orgball2608/forum-tweet-bot/internal/threads"
	"go.uber.org/fx"
)

var Module = fx.Module("discord",
	fx.Provide(
		NewSession,
		fx.Annotate(NewThreadNotifier, fx.As(new(threads.Notifier))),
		fx.Annotate(NewThreadLister, fx.As(new(threads.Lister))),
		fx.Annotate(NewWebhookProvider, fx.As(new(delivery.Provider))),
		fx.Annotate(NewBotPoster, fx.As(new(delivery.ThreadPoster))),
	),
)
