package worker

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/leaguekeeper/teamdata/internal/app"
	"github.com/leaguekeeper/teamdata/internal/app/appcontext"
	"github.com/leaguekeeper/teamdata/internal/workers/feedwkr"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "worker",
		Usage: "start the feed refresh worker",
		Action: func(c *cli.Context) error {
			app.New(appcontext.Declare(appcontext.EnvWorker),
				fx.Invoke(feedwkr.Start),
				fx.Invoke(DevOps),
			).Run()
			return nil
		},
	}
}
