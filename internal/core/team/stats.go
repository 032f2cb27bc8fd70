package team

import (
	"context"

	"github.com/ahmetb/go-linq/v3"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gopkg.in/guregu/null.v3"

	"github.com/leaguekeeper/teamdata/internal/pkg/tiered"
)

func boolKey(b bool) int {
	if b {
		return 1
	}
	return 0
}

// filterOrderStats keeps the records selected by the inclusion flags and
// orders them by (season, playoffs, rid). Tiers return records in
// inconsistent orders, so the order is always imposed here.
func filterOrderStats(rows []*TeamStats, playoffs, regularSeason bool) ([]*TeamStats, error) {
	var ordered []*TeamStats
	linq.From(rows).
		WhereT(func(ts *TeamStats) bool {
			return (playoffs && ts.Playoffs) || (regularSeason && !ts.Playoffs)
		}).
		OrderByT(func(ts *TeamStats) int { return ts.Season }).
		ThenByT(func(ts *TeamStats) int { return boolKey(ts.Playoffs) }).
		ThenByT(func(ts *TeamStats) int { return ts.Rid }).
		ToSlice(&ordered)

	out := make([]*TeamStats, 0, len(ordered))
	for _, ts := range ordered {
		c, err := clone(ts)
		if err != nil {
			return nil, errors.Wrap(err, "failed to copy team stats")
		}
		out = append(out, c)
	}
	return out, nil
}

// fastStats reads the fast tier once per requested inclusion flag.
func (s *Service) fastStats(ctx context.Context, tid int, playoffs, regularSeason bool) ([]*TeamStats, error) {
	var regular, post []*TeamStats

	g, gctx := errgroup.WithContext(ctx)
	if regularSeason {
		g.Go(func() (err error) {
			regular, err = s.Fast.TeamStatsByPlayoffsTid(gctx, false, tid)
			return err
		})
	}
	if playoffs {
		g.Go(func() (err error) {
			post, err = s.Fast.TeamStatsByPlayoffsTid(gctx, true, tid)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return append(regular, post...), nil
}

// statsRows selects the stats records of tid: all seasons merged from both
// tiers when season is unset, the fast tier for the current season and the
// durable tier for past seasons.
func (s *Service) statsRows(ctx context.Context, league League, tid int, q *Query) ([]*TeamStats, error) {
	switch {
	case !q.Season.Valid:
		var durable, fast []*TeamStats
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			durable, err = s.Durable.TeamStatsByTid(gctx, tid)
			return err
		})
		g.Go(func() (err error) {
			fast, err = s.fastStats(gctx, tid, q.Playoffs, q.RegularSeason)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return tiered.MergeByPK(durable, fast, func(ts *TeamStats) int { return ts.Rid }), nil
	case int(q.Season.Int64) == league.Season:
		rows, err := s.fastStats(ctx, tid, q.Playoffs, q.RegularSeason)
		if err != nil {
			return nil, err
		}
		return onlySeason(rows, q.Season), nil
	default:
		return s.Durable.TeamStatsBySeasonTid(ctx, int(q.Season.Int64), tid)
	}
}

func onlySeason(rows []*TeamStats, season null.Int) []*TeamStats {
	var out []*TeamStats
	linq.From(rows).
		WhereT(func(ts *TeamStats) bool { return ts.Season == int(season.Int64) }).
		ToSlice(&out)
	return out
}

func (s *Service) processStats(ctx context.Context, league League, t *Team, q *Query) (*Shaped[Row], error) {
	if s.Stats == nil {
		return nil, errMissingStatsProcessor
	}

	rows, err := s.statsRows(ctx, league, t.Tid, q)
	if err != nil {
		return nil, err
	}

	rows, err = filterOrderStats(rows, q.Playoffs, q.RegularSeason)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		rows = []*TeamStats{{Totals: map[string]float64{}}}
	}

	statType := q.statType()
	out := make([]Row, len(rows))
	for i, ts := range rows {
		out[i] = s.Stats.ProcessStats(ts, q.Stats, q.Playoffs, statType)
	}

	if q.Season.Valid && q.Playoffs != q.RegularSeason {
		return Single(out[0]), nil
	}
	return Many(out), nil
}
