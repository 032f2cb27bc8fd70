package team

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/leaguekeeper/teamdata/internal/pkg/observability"
	"github.com/leaguekeeper/teamdata/internal/pkg/selector"
)

// Repo is the durable tier backed by postgres.
type Repo struct {
	DB *bun.DB

	seasons selector.S[TeamSeason]
	stats   selector.S[TeamStats]
}

var _ DurableStore = (*Repo)(nil)

func NewRepo(db *bun.DB) *Repo {
	return &Repo{
		DB:      db,
		seasons: selector.New[TeamSeason](db),
		stats:   selector.New[TeamStats](db),
	}
}

func (r *Repo) TeamSeasonsByTid(ctx context.Context, tid int) ([]*TeamSeason, error) {
	rows, err := r.seasons.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("tid = ?", tid).Order("season")
	})
	observability.ObserveTierRead(TierDurable, "teamSeasons#tid", err)
	return rows, errors.Wrap(err, "durable: team seasons by tid")
}

func (r *Repo) TeamSeasonsBySeasonTid(ctx context.Context, season int, tid int) ([]*TeamSeason, error) {
	rows, err := r.seasons.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("season = ?", season).Where("tid = ?", tid)
	})
	observability.ObserveTierRead(TierDurable, "teamSeasons#season|tid", err)
	return rows, errors.Wrap(err, "durable: team seasons by season and tid")
}

func (r *Repo) TeamStatsByTid(ctx context.Context, tid int) ([]*TeamStats, error) {
	rows, err := r.stats.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("tid = ?", tid)
	})
	observability.ObserveTierRead(TierDurable, "teamStats#tid", err)
	return rows, errors.Wrap(err, "durable: team stats by tid")
}

func (r *Repo) TeamStatsBySeasonTid(ctx context.Context, season int, tid int) ([]*TeamStats, error) {
	rows, err := r.stats.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("season = ?", season).Where("tid = ?", tid)
	})
	observability.ObserveTierRead(TierDurable, "teamStats#season|tid", err)
	return rows, errors.Wrap(err, "durable: team stats by season and tid")
}

// Archive appends finished season rows and stats to the history.
func (r *Repo) Archive(ctx context.Context, seasons []*TeamSeason, stats []*TeamStats) error {
	return r.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if len(seasons) > 0 {
			if _, err := tx.NewInsert().Model(&seasons).On("CONFLICT (rid) DO NOTHING").Exec(ctx); err != nil {
				return errors.Wrap(err, "durable: archive team seasons")
			}
		}
		if len(stats) > 0 {
			if _, err := tx.NewInsert().Model(&stats).On("CONFLICT (rid) DO NOTHING").Exec(ctx); err != nil {
				return errors.Wrap(err, "durable: archive team stats")
			}
		}
		return nil
	})
}
