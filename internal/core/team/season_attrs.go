package team

import (
	"context"
	"math"
	"sort"

	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/leaguekeeper/teamdata/internal/pkg/standing"
	"github.com/leaguekeeper/teamdata/internal/pkg/tiered"
)

// seasonRow is a season record prepared for derivation.
type seasonRow struct {
	ts      *TeamSeason
	revenue float64
	expense float64

	// payroll is nil unless the current season was requested
	payroll *float64
	ties    bool
}

func sumAmounts(items map[string]BudgetItem) float64 {
	return lo.Sum(lo.Map(lo.Values(items), func(item BudgetItem, _ int) float64 {
		return item.Amount
	}))
}

// seasonDerivations are the season attributes computed from a record rather
// than copied from it. Money is reported in millions of dollars.
var seasonDerivations = map[string]func(r *seasonRow) any{
	"winp": func(r *seasonRow) any {
		return standing.CalcWinp(r.ts.Record())
	},
	"att": func(r *seasonRow) any {
		gpHome := int(math.Round(float64(r.ts.Gp) / 2))
		if r.ts.GpHome != nil {
			gpHome = *r.ts.GpHome
		}
		if gpHome <= 0 {
			return 0.0
		}
		return r.ts.Att / float64(gpHome)
	},
	"cash": func(r *seasonRow) any {
		return r.ts.Cash / 1000
	},
	"revenue": func(r *seasonRow) any {
		return r.revenue / 1000
	},
	"profit": func(r *seasonRow) any {
		return (r.revenue - r.expense) / 1000
	},
	"salaryPaid": func(r *seasonRow) any {
		return r.ts.Expenses["salary"].Amount / 1000
	},
	"payroll": func(r *seasonRow) any {
		if r.payroll == nil {
			return nil
		}
		return *r.payroll / 1000
	},
	"lastTen": func(r *seasonRow) any {
		return standing.FormatLastTen(r.ts.LastTen, r.ties)
	},
	"streak": func(r *seasonRow) any {
		return standing.FormatStreak(r.ts.Streak)
	},
}

func deriveSeasonRow(r *seasonRow, attrs []string) (Row, error) {
	special := make(map[string]func() any, len(attrs))
	for _, attr := range attrs {
		if derive, ok := seasonDerivations[attr]; ok {
			special[attr] = func() any { return derive(r) }
		}
	}
	return project(r.ts, attrs, special)
}

// seasonRows selects the season records of tid for season: all seasons merged
// from both tiers when season is unset, the fast tier for recent seasons and
// the durable tier otherwise.
func (s *Service) seasonRows(ctx context.Context, league League, tid int, season null.Int) ([]*TeamSeason, error) {
	var (
		rows []*TeamSeason
		err  error
	)

	switch {
	case !season.Valid:
		durable, err := s.Durable.TeamSeasonsByTid(ctx, tid)
		if err != nil {
			return nil, err
		}
		fast, err := s.Fast.TeamSeasonsByTid(ctx, tid)
		if err != nil {
			return nil, err
		}
		rows = tiered.MergeByPK(durable, fast, func(ts *TeamSeason) int { return ts.Rid })
	case league.IsRecent(int(season.Int64)):
		rows, err = s.Fast.TeamSeasonsBySeasonTid(ctx, int(season.Int64), tid)
	default:
		rows, err = s.Durable.TeamSeasonsBySeasonTid(ctx, int(season.Int64), tid)
	}
	if err != nil {
		return nil, err
	}

	if season.Valid && len(rows) == 0 {
		rows = []*TeamSeason{NewSeasonRow(tid, int(season.Int64))}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Season != rows[j].Season {
			return rows[i].Season < rows[j].Season
		}
		return rows[i].Rid < rows[j].Rid
	})
	return rows, nil
}

func (s *Service) processSeasonAttrs(ctx context.Context, league League, t *Team, q *Query) (*Shaped[Row], error) {
	rows, err := s.seasonRows(ctx, league, t.Tid, q.Season)
	if err != nil {
		return nil, err
	}

	var payroll *float64
	if lo.Contains(q.SeasonAttrs, "payroll") && q.Season.Valid && int(q.Season.Int64) == league.Season {
		if s.Payroll == nil {
			return nil, errMissingPayroll
		}
		p, err := s.Payroll.Payroll(ctx, t.Tid)
		if err != nil {
			return nil, err
		}
		payroll = &p
	}

	out := make([]Row, 0, len(rows))
	for _, ts := range rows {
		row, err := deriveSeasonRow(&seasonRow{
			ts:      ts,
			revenue: sumAmounts(ts.Revenues),
			expense: sumAmounts(ts.Expenses),
			payroll: payroll,
			ties:    league.Ties,
		}, q.SeasonAttrs)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}

	if q.Season.Valid {
		return Single(out[0]), nil
	}
	return Many(out), nil
}
