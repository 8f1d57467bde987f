package profile

import (
	"go.uber.org/fx"
)

var Module = fx.Module("profile_repository",
	fx.Provide(
		fx.Annotate(
			NewPgxRepository,
			fx.As(new(Repository)),
		),
	),
)
