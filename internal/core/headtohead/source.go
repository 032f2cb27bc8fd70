package headtohead

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/leaguekeeper/teamdata/internal/pkg/observability"
)

// Source delivers the matchups selected by a filter one at a time. Delivery
// stops at the first error returned by visit.
type Source interface {
	Iterate(ctx context.Context, filter Filter, visit func(Info) error) error
}

// Recorder stores matchups, replacing those already recorded for the same
// season, team, opponent and playoffs flag.
type Recorder interface {
	Record(ctx context.Context, matchups []*Matchup) error
}

// SliceSource serves matchups held in memory.
type SliceSource []*Matchup

func (s SliceSource) Iterate(ctx context.Context, filter Filter, visit func(Info) error) error {
	for _, m := range s {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !filter.Includes(m) {
			continue
		}
		if err := visit(m.Info()); err != nil {
			return err
		}
	}
	return nil
}

// Repo streams matchups from postgres without loading them all at once.
type Repo struct {
	DB *bun.DB
}

var (
	_ Source   = (*Repo)(nil)
	_ Recorder = (*Repo)(nil)
)

func NewRepo(db *bun.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) Iterate(ctx context.Context, filter Filter, visit func(Info) error) (err error) {
	defer func() {
		observability.ObserveTierRead("durable", "headToHeads#tid", err)
	}()

	q := r.DB.NewSelect().
		Model((*Matchup)(nil)).
		Where("tid = ?", filter.Tid)
	if filter.Season.Valid {
		q = q.Where("season = ?", filter.Season.Int64)
	}
	switch filter.Type {
	case TypeRegularSeason:
		q = q.Where("playoffs = FALSE")
	case TypePlayoffs:
		q = q.Where("playoffs = TRUE")
	}

	rows, err := q.Rows(ctx)
	if err != nil {
		return errors.Wrap(err, "durable: head to heads")
	}
	defer rows.Close()

	for rows.Next() {
		var m Matchup
		if err := r.DB.ScanRow(ctx, rows, &m); err != nil {
			return errors.Wrap(err, "durable: scan head to head")
		}
		if err := visit(m.Info()); err != nil {
			return err
		}
	}
	return errors.Wrap(rows.Err(), "durable: iterate head to heads")
}

// Record appends or replaces stored matchups.
func (r *Repo) Record(ctx context.Context, matchups []*Matchup) error {
	if len(matchups) == 0 {
		return nil
	}
	_, err := r.DB.NewInsert().
		Model(&matchups).
		On("CONFLICT (season, tid, opp_tid, playoffs) DO UPDATE").
		Set("won = EXCLUDED.won, lost = EXCLUDED.lost, tied = EXCLUDED.tied, otl = EXCLUDED.otl").
		Set("pts = EXCLUDED.pts, opp_pts = EXCLUDED.opp_pts").
		Set("series_won = EXCLUDED.series_won, series_lost = EXCLUDED.series_lost").
		Set("finals_won = EXCLUDED.finals_won, finals_lost = EXCLUDED.finals_lost").
		Exec(ctx)
	return errors.Wrap(err, "durable: record head to heads")
}
