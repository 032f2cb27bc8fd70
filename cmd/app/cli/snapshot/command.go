package snapshot

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"gopkg.in/guregu/null.v3"

	"github.com/leaguekeeper/teamdata/internal/app/appconfig"
	"github.com/leaguekeeper/teamdata/internal/core/team"

	cliapp "github.com/leaguekeeper/teamdata/cmd/app/cli"
)

type CommandDeps struct {
	fx.In

	Config      *appconfig.Config
	TeamService *team.Service
}

func Command() *cli.Command {
	depsFn := cliapp.DepsFn[CommandDeps]()

	return &cli.Command{
		Name:  "snapshot",
		Usage: "print team snapshots",
		Flags: append([]cli.Flag{
			&cli.IntFlag{Name: "tid", Usage: "only this team"},
			&cli.IntFlag{Name: "season", Usage: "only this season's season attributes and stats"},
			&cli.StringSliceFlag{Name: "attrs", Usage: "team attributes"},
			&cli.StringSliceFlag{Name: "season-attrs", Usage: "season attributes"},
			&cli.StringSliceFlag{Name: "stats", Usage: "team stats"},
			&cli.BoolFlag{Name: "playoffs", Usage: "include playoff stats"},
			&cli.BoolFlag{Name: "regular-season", Usage: "include regular season stats", Value: true},
			&cli.StringFlag{Name: "stat-type", Usage: "perGame or totals", Value: string(team.StatTypePerGame)},
		}, cliapp.LeagueFlags...),
		Action: func(c *cli.Context) error {
			deps, stop, err := depsFn(c.Context)
			if err != nil {
				return err
			}
			defer stop()

			return run(c, deps, queryFrom(c))
		},
	}
}

func queryFrom(c *cli.Context) team.Query {
	q := team.NewQuery()
	if c.IsSet("tid") {
		q.Tid = null.IntFrom(int64(c.Int("tid")))
	}
	if c.IsSet("season") {
		q.Season = null.IntFrom(int64(c.Int("season")))
	}
	q.Attrs = c.StringSlice("attrs")
	q.SeasonAttrs = c.StringSlice("season-attrs")
	q.Stats = c.StringSlice("stats")
	q.Playoffs = c.Bool("playoffs")
	q.RegularSeason = c.Bool("regular-season")
	q.StatType = team.StatType(c.String("stat-type"))
	return q
}
