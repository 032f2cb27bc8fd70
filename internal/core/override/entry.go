package override

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("override",
		fx.Provide(
			NewLoader,
			NewService,
		),
	)
}
