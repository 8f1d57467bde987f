package guildconfig

import (
	"go.uber.org/fx"
)

var Module = fx.Module("guildconfig_repository",
	fx.Provide(
		fx.Annotate(
			NewPgxRepository,
			fx.As(new(Repository)),
		),
	),
)
