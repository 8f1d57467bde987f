package publisherimpl

import (
	"github.com/orgball2608/forum-tweet-bot/internal/publisher"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	fx.Annotate(
		New,
		fx.As(new(publisher.Client)),
	),
)
