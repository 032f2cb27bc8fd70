package team

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/leaguekeeper/teamdata/internal/core/override"
	"github.com/leaguekeeper/teamdata/internal/core/payroll"
	"github.com/leaguekeeper/teamdata/internal/pkg/apperr"
	"github.com/leaguekeeper/teamdata/internal/pkg/async"
)

// FastDump is a full copy of the records a fast tier serves.
type FastDump struct {
	Teams       []*Team            `json:"teams"`
	TeamSeasons []*TeamSeason      `json:"teamSeasons"`
	TeamStats   []*TeamStats       `json:"teamStats"`
	Contracts   []payroll.Contract `json:"contracts"`
	Players     []*Player          `json:"players"`
}

func (d *FastDump) Len() int {
	return len(d.Teams) + len(d.TeamSeasons) + len(d.TeamStats) + len(d.Contracts) + len(d.Players)
}

// LoadFast writes dump into the fast tier, dropping everything the tier held
// first when reset is set. Contracts and rosters replace those of the teams
// they belong to. It returns the number of records written.
func (s *Service) LoadFast(ctx context.Context, dump *FastDump, reset bool) (int, error) {
	writer, ok := s.Fast.(FastTierWriter)
	if !ok {
		return 0, apperr.ErrConfiguration.Msg("fast tier %T does not accept writes", s.Fast)
	}

	if reset {
		if err := writer.Reset(ctx); err != nil {
			return 0, err
		}
		log.Info().Str("evt.name", "team.fast.reset").Msg("dropped fast tier")
	}

	for _, t := range dump.Teams {
		if err := writer.PutTeam(ctx, t); err != nil {
			return 0, err
		}
	}
	for _, ts := range dump.TeamSeasons {
		if err := writer.PutTeamSeason(ctx, ts); err != nil {
			return 0, err
		}
	}
	for _, ts := range dump.TeamStats {
		if err := writer.PutTeamStats(ctx, ts); err != nil {
			return 0, err
		}
	}
	for tid, contracts := range lo.GroupBy(dump.Contracts, func(c payroll.Contract) int { return c.Tid }) {
		if err := writer.PutContracts(ctx, tid, contracts); err != nil {
			return 0, err
		}
	}
	for tid, players := range lo.GroupBy(dump.Players, func(p *Player) int { return p.Tid }) {
		if err := writer.PutPlayers(ctx, tid, players); err != nil {
			return 0, err
		}
	}

	log.Info().
		Str("evt.name", "team.fast.loaded").
		Int("teams", len(dump.Teams)).
		Int("records", dump.Len()).
		Msg("loaded fast tier")

	return dump.Len(), nil
}

// ApplyOverrides writes the feed onto every team and onto the team's season
// rows of season held by the fast tier. Season rows are looked up by their
// team's external id. It returns the number of records that changed.
func (s *Service) ApplyOverrides(ctx context.Context, feed override.Feed, season int, opts override.Options) (int, error) {
	writer, ok := s.Fast.(FastTierWriter)
	if !ok {
		return 0, apperr.ErrConfiguration.Msg("fast tier %T does not accept writes", s.Fast)
	}

	teams, err := s.Fast.Teams(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list teams")
	}

	updated := 0
	for _, t := range teams {
		if override.Apply(t, feed, season, opts) {
			if err := writer.PutTeam(ctx, t); err != nil {
				return updated, err
			}
			updated++
		}

		rows, err := s.Fast.TeamSeasonsBySeasonTid(ctx, season, t.Tid)
		if err != nil {
			return updated, err
		}
		for _, ts := range rows {
			if !override.Apply(ts, feed, season, override.Options{ExactSeason: opts.ExactSeason, IDOverride: t.SrID}) {
				continue
			}
			if err := writer.PutTeamSeason(ctx, ts); err != nil {
				return updated, err
			}
			updated++
		}
	}

	log.Info().
		Str("evt.name", "team.overrides.applied").
		Int("season", season).
		Int("updated", updated).
		Msg("applied real team info")

	return updated, nil
}

// ArchiveSeason copies the fast tier's season rows and stats of season into
// the durable tier. Records already archived are left untouched.
func (s *Service) ArchiveSeason(ctx context.Context, season int) (seasons int, stats int, err error) {
	archiver, ok := s.Durable.(DurableArchiver)
	if !ok {
		return 0, 0, apperr.ErrConfiguration.Msg("durable store %T does not accept archives", s.Durable)
	}

	teams, err := s.Fast.Teams(ctx)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to list teams")
	}

	seasonRows, err := async.FlatMap(ctx, teams, s.Concurrency, func(ctx context.Context, t *Team) ([]*TeamSeason, error) {
		return s.Fast.TeamSeasonsBySeasonTid(ctx, season, t.Tid)
	})
	if err != nil {
		return 0, 0, err
	}

	statsRows, err := async.FlatMap(ctx, teams, s.Concurrency, func(ctx context.Context, t *Team) ([]*TeamStats, error) {
		st, err := s.fastStats(ctx, t.Tid, true, true)
		if err != nil {
			return nil, err
		}
		return lo.Filter(st, func(ts *TeamStats, _ int) bool {
			return ts.Season == season
		}), nil
	})
	if err != nil {
		return 0, 0, err
	}

	if err := archiver.Archive(ctx, seasonRows, statsRows); err != nil {
		return 0, 0, err
	}

	log.Info().
		Str("evt.name", "team.season.archived").
		Int("season", season).
		Int("seasons", len(seasonRows)).
		Int("stats", len(statsRows)).
		Msg("archived season to durable tier")

	return len(seasonRows), len(statsRows), nil
}
