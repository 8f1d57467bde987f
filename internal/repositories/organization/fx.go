package organization

import (
	"go.uber.org/fx"
)

var Module = fx.Module("organization_repository",
	fx.Provide(
		fx.Annotate(
			NewPgxRepository,
			fx.As(new(Repository)),
		),
	),
)
