package maintenance

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/leaguekeeper/teamdata/internal/core/headtohead"
	"github.com/leaguekeeper/teamdata/internal/core/override"
	"github.com/leaguekeeper/teamdata/internal/core/team"

	cliapp "github.com/leaguekeeper/teamdata/cmd/app/cli"
)

type CommandDeps struct {
	fx.In

	TeamService       *team.Service
	OverrideService   *override.Service
	HeadToHeadService *headtohead.Service
}

// Commands returns the commands that write to the storage tiers.
func Commands() []*cli.Command {
	depsFn := cliapp.DepsFn[CommandDeps]()

	return []*cli.Command{
		{
			Name:  "apply-overrides",
			Usage: "apply the real team info feed to the fast tier",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "season", Usage: "the season to resolve season payloads against", Required: true},
				&cli.BoolFlag{Name: "exact-season", Usage: "only apply a season payload keyed exactly by --season"},
			},
			Action: func(c *cli.Context) error {
				deps, stop, err := depsFn(c.Context)
				if err != nil {
					return err
				}
				defer stop()

				return applyOverrides(c, deps, c.Int("season"), c.Bool("exact-season"))
			},
		},
		{
			Name:  "load",
			Usage: "load an exported league file into the fast tier and record its head to heads",
			Flags: []cli.Flag{
				&cli.PathFlag{Name: "file", Usage: "the exported league file (JSON)", Required: true},
				&cli.BoolFlag{Name: "reset", Usage: "drop everything the fast tier holds before loading"},
			},
			Action: func(c *cli.Context) error {
				dump, err := readDump(c.Path("file"))
				if err != nil {
					return err
				}

				deps, stop, err := depsFn(c.Context)
				if err != nil {
					return err
				}
				defer stop()

				return load(c, deps, dump, c.Bool("reset"))
			},
		},
		{
			Name:  "archive-season",
			Usage: "copy a finished season from the fast tier into the durable tier",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "season", Usage: "the season to archive", Required: true},
			},
			Action: func(c *cli.Context) error {
				deps, stop, err := depsFn(c.Context)
				if err != nil {
					return err
				}
				defer stop()

				return archiveSeason(c, deps, c.Int("season"))
			},
		},
	}
}
