package feedwkr

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/leaguekeeper/teamdata/internal/app/appconfig"
	"github.com/leaguekeeper/teamdata/internal/core/override"
)

const lockName = "feedwkr#refresh"

type Refresher interface {
	Refresh(ctx context.Context) (override.RefreshResult, error)
}

// Locker is the part of *redsync.Mutex the worker needs.
type Locker interface {
	LockContext(ctx context.Context) error
	UnlockContext(ctx context.Context) (bool, error)
}

type WorkerDeps struct {
	fx.In
	OverrideService *override.Service
	RedSync         *redsync.Redsync
}

type Worker struct {
	// count counts refresh rounds the worker has completed so far
	count int

	// interval describes the interval in-between refresh rounds
	interval time.Duration

	// timeout bounds a single refresh round, lock included
	timeout time.Duration

	refresher Refresher
	newLocker func() Locker
}

func New(conf *appconfig.Config, refresher Refresher, newLocker func() Locker) *Worker {
	return &Worker{
		interval:  conf.FeedRefreshInterval,
		timeout:   conf.WorkerTimeout,
		refresher: refresher,
		newLocker: newLocker,
	}
}

func Start(conf *appconfig.Config, deps WorkerDeps, lc fx.Lifecycle) {
	if !conf.WorkerEnabled {
		log.Info().
			Str("evt.name", "feedwkr.disabled").
			Msg("feed refresh worker is disabled")
		return
	}

	w := New(conf, deps.OverrideService, func() Locker {
		return deps.RedSync.NewMutex(conf.RedisKeyPrefix+":"+lockName,
			redsync.WithExpiry(conf.WorkerTimeout),
			redsync.WithTries(1),
		)
	})

	var cancel context.CancelFunc
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			cancel = w.do()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			return nil
		},
	})
}

func (w *Worker) do() context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			w.runOnce(ctx)

			select {
			case <-ctx.Done():
				log.Info().Int("count", w.count).Msg("feed refresh worker stopped")
				return
			case <-ticker.C:
			}
		}
	}()

	return cancel
}

// runOnce refreshes the override feed unless another worker holds the lock.
// It returns the result label recorded for the round.
func (w *Worker) runOnce(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	logger := log.With().Int("count", w.count).Logger()

	locker := w.newLocker()
	if err := locker.LockContext(ctx); err != nil {
		logger.Debug().
			Err(err).
			Str("evt.name", "feedwkr.lock.skipped").
			Msg("feed refresh is held by another worker")
		return observeRefresh(resultSkipped, 0)
	}
	defer func() {
		if _, err := locker.UnlockContext(context.Background()); err != nil {
			logger.Warn().Err(err).Str("evt.name", "feedwkr.lock.unlock").Msg("failed to release feed refresh lock")
		}
	}()

	logger.Info().Msg("worker refreshing override feed")
	start := time.Now()
	res, err := w.refresher.Refresh(ctx)
	w.count++

	if err != nil {
		logger.Error().
			Err(err).
			Str("evt.name", "feedwkr.refresh.failed").
			Msg("failed to refresh override feed")
		return observeRefresh(resultError, time.Since(start))
	}

	result := resultOf(res)
	logger.Info().
		Str("result", result).
		Int("teams", res.Teams).
		Dur("took", time.Since(start)).
		Msg("worker refreshed override feed")
	return observeRefresh(result, time.Since(start))
}

func (w *Worker) Count() int {
	return w.count
}
