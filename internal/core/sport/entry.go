package sport

import (
	"go.uber.org/fx"

	"github.com/leaguekeeper/teamdata/internal/core/team"
)

func Module() fx.Option {
	return fx.Module("sport",
		fx.Provide(
			NewFromConfig,
			func(s Sport) team.StatsProcessor { return s.Stats },
			fx.Annotate(NewRater, fx.As(new(team.OvrCalculator))),
		),
	)
}
