package headtohead

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"gopkg.in/guregu/null.v3"

	"github.com/leaguekeeper/teamdata/internal/app/appconfig"
	"github.com/leaguekeeper/teamdata/internal/core/headtohead"

	cliapp "github.com/leaguekeeper/teamdata/cmd/app/cli"
)

type CommandDeps struct {
	fx.In

	Config            *appconfig.Config
	HeadToHeadService *headtohead.Service
}

func Command() *cli.Command {
	depsFn := cliapp.DepsFn[CommandDeps]()

	return &cli.Command{
		Name:  "head-to-head",
		Usage: "print a team's record against every opponent",
		Flags: append([]cli.Flag{
			&cli.IntFlag{Name: "tid", Usage: "the team", Required: true},
			&cli.IntFlag{Name: "season", Usage: "only this season; every season when unset"},
			&cli.StringFlag{Name: "type", Usage: "regularSeason, playoffs or all", Value: string(headtohead.TypeRegularSeason)},
		}, cliapp.LeagueFlags...),
		Action: func(c *cli.Context) error {
			deps, stop, err := depsFn(c.Context)
			if err != nil {
				return err
			}
			defer stop()

			filter := headtohead.Filter{
				Tid:  c.Int("tid"),
				Type: headtohead.Type(c.String("type")),
			}
			if c.IsSet("season") {
				filter.Season = null.IntFrom(int64(c.Int("season")))
			}

			view, err := deps.HeadToHeadService.View(c.Context, cliapp.League(c, deps.Config.RecencyHorizon), filter)
			if err != nil {
				return err
			}
			return cliapp.Print(c, view)
		},
	}
}
