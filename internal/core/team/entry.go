package team

import (
	"go.uber.org/fx"

	"github.com/leaguekeeper/teamdata/internal/core/payroll"
)

func Module() fx.Option {
	return fx.Module("team",
		fx.Provide(
			fx.Annotate(NewRepo, fx.As(new(DurableStore))),
			fx.Annotate(NewRedisTier, fx.As(new(FastTier), new(payroll.Source), new(RosterSource))),
			func(s *payroll.Service) PayrollCalculator { return s },
			NewService,
		),
	)
}
