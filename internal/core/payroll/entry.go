package payroll

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("payroll",
		fx.Provide(
			NewService,
		),
	)
}
