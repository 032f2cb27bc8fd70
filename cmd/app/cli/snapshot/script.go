package snapshot

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/leaguekeeper/teamdata/internal/core/team"

	cliapp "github.com/leaguekeeper/teamdata/cmd/app/cli"
)

func run(c *cli.Context, deps CommandDeps, q team.Query) error {
	league := cliapp.League(c, deps.Config.RecencyHorizon)

	snapshots, err := deps.TeamService.GetSnapshots(c.Context, league, q)
	if err != nil {
		return err
	}

	log.Debug().Int("teams", len(snapshots)).Int("season", league.Season).Msg("snapshot resolved")

	return cliapp.Print(c, snapshots)
}
