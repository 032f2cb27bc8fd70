package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/leaguekeeper/teamdata/internal/app/appconfig"
	"github.com/leaguekeeper/teamdata/internal/app/appcontext"
	"github.com/leaguekeeper/teamdata/internal/core/headtohead"
	"github.com/leaguekeeper/teamdata/internal/core/override"
	"github.com/leaguekeeper/teamdata/internal/core/payroll"
	"github.com/leaguekeeper/teamdata/internal/core/sport"
	"github.com/leaguekeeper/teamdata/internal/core/team"
	"github.com/leaguekeeper/teamdata/internal/infra"
	"github.com/leaguekeeper/teamdata/internal/pkg/logger"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Core
		sport.Module(),
		payroll.Module(),
		override.Module(),
		team.Module(),
		headtohead.Module(),

		// fx Extra Options
		fx.StartTimeout(10 * time.Second),
		fx.StopTimeout(conf.WorkerTimeout + 5*time.Second),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
