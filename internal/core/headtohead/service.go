package headtohead

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/leaguekeeper/teamdata/internal/core/team"
	"github.com/leaguekeeper/teamdata/internal/pkg/apperr"
	"github.com/leaguekeeper/teamdata/internal/pkg/standing"
	"github.com/leaguekeeper/teamdata/internal/pkg/validate"
)

// Aggregate sums every matchup of src selected by filter, per opponent.
func Aggregate(ctx context.Context, src Source, filter Filter) (*Accumulator, error) {
	if err := validate.Struct(filter); err != nil {
		return nil, err
	}

	acc := NewAccumulator()
	err := src.Iterate(ctx, filter, func(info Info) error {
		acc.Visit(info)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to aggregate head to heads of team %d", filter.Tid)
	}
	return acc, nil
}

// Row is one opponent line of a head-to-head view.
type Row struct {
	Info
	Abbrev string  `json:"abbrev"`
	Region string  `json:"region"`
	Name   string  `json:"name"`
	Winp   float64 `json:"winp"`
}

type View struct {
	Tid    int    `json:"tid"`
	Season *int   `json:"season,omitempty"`
	Type   Type   `json:"type"`
	Ties   bool   `json:"ties"`
	Otl    bool   `json:"otl"`
	Rows   []*Row `json:"teams"`
}

type Service struct {
	Source Source
	Fast   team.FastTier

	// Recorder may be nil for read-only deployments.
	Recorder Recorder
}

func NewService(src Source, rec Recorder, fast team.FastTier) *Service {
	return &Service{Source: src, Recorder: rec, Fast: fast}
}

// Import validates every matchup and records them in one batch. Nothing is
// recorded when any matchup is malformed.
func (s *Service) Import(ctx context.Context, matchups []*Matchup) (int, error) {
	if s.Recorder == nil {
		return 0, apperr.ErrConfiguration.Msg("head to head import requested but no recorder is configured")
	}

	for i, m := range matchups {
		if err := validate.Struct(m); err != nil {
			return 0, errors.Wrapf(err, "head to head %d", i)
		}
	}

	if err := s.Recorder.Record(ctx, matchups); err != nil {
		return 0, err
	}

	log.Info().
		Str("evt.name", "headtohead.imported").
		Int("matchups", len(matchups)).
		Msg("recorded head to heads")

	return len(matchups), nil
}

// View aggregates filter.Tid's history against every opponent and labels the
// rows with the opponents' current names. The tie and overtime loss columns
// are shown when the league uses them or any row has one recorded.
func (s *Service) View(ctx context.Context, league team.League, filter Filter) (*View, error) {
	acc, err := Aggregate(ctx, s.Source, filter)
	if err != nil {
		return nil, err
	}

	teams, err := s.Fast.Teams(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list teams")
	}
	byTid := lo.KeyBy(teams, func(t *team.Team) int { return t.Tid })

	rows := lo.Map(acc.Results(), func(info Info, _ int) *Row {
		row := &Row{Info: info, Winp: standing.CalcWinp(info.Record())}
		if t, ok := byTid[info.Tid]; ok {
			row.Abbrev = t.Abbrev
			row.Region = t.Region
			row.Name = t.Name
		}
		return row
	})

	view := &View{
		Tid:  filter.Tid,
		Type: filter.Type,
		Ties: league.Ties || lo.SomeBy(rows, func(r *Row) bool { return r.Tied > 0 }),
		Otl:  league.Otl || lo.SomeBy(rows, func(r *Row) bool { return r.Otl > 0 }),
		Rows: rows,
	}
	if filter.Season.Valid {
		season := int(filter.Season.Int64)
		view.Season = &season
	}
	return view, nil
}
