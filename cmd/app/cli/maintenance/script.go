package maintenance

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/leaguekeeper/teamdata/internal/core/headtohead"
	"github.com/leaguekeeper/teamdata/internal/core/override"
	"github.com/leaguekeeper/teamdata/internal/core/team"
)

// leagueDump is the layout of an exported league file.
type leagueDump struct {
	team.FastDump
	HeadToHeads []*headtohead.Matchup `json:"headToHeads"`
}

func readDump(path string) (*leagueDump, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read league file")
	}
	var dump leagueDump
	if err := json.Unmarshal(b, &dump); err != nil {
		return nil, errors.Wrap(err, "failed to parse league file")
	}
	return &dump, nil
}

func load(c *cli.Context, deps CommandDeps, dump *leagueDump, reset bool) error {
	log.Info().Bool("reset", reset).Int("records", dump.Len()).Int("headToHeads", len(dump.HeadToHeads)).Msg("running script")

	loaded, err := deps.TeamService.LoadFast(c.Context, &dump.FastDump, reset)
	if err != nil {
		return errors.Wrap(err, "failed to load fast tier")
	}

	recorded := 0
	if len(dump.HeadToHeads) > 0 {
		if recorded, err = deps.HeadToHeadService.Import(c.Context, dump.HeadToHeads); err != nil {
			return errors.Wrap(err, "failed to record head to heads")
		}
	}

	log.Info().Int("loaded", loaded).Int("headToHeads", recorded).Msg("script finished")
	return nil
}

func applyOverrides(c *cli.Context, deps CommandDeps, season int, exact bool) error {
	log.Info().Int("season", season).Bool("exactSeason", exact).Msg("running script")

	res, err := deps.OverrideService.Refresh(c.Context)
	if err != nil {
		return errors.Wrap(err, "failed to load override feed")
	}
	feed, err := deps.OverrideService.Feed(c.Context)
	if err != nil {
		return errors.Wrap(err, "failed to load override feed")
	}

	updated, err := deps.TeamService.ApplyOverrides(c.Context, feed, season, override.Options{ExactSeason: exact})
	if err != nil {
		return errors.Wrap(err, "failed to apply overrides")
	}

	log.Info().Int("feedTeams", res.Teams).Int("updated", updated).Msg("script finished")
	return nil
}

func archiveSeason(c *cli.Context, deps CommandDeps, season int) error {
	log.Info().Int("season", season).Msg("running script")

	seasons, stats, err := deps.TeamService.ArchiveSeason(c.Context, season)
	if err != nil {
		return errors.Wrap(err, "failed to archive season")
	}

	log.Info().Int("teamSeasons", seasons).Int("teamStats", stats).Msg("script finished")
	return nil
}
