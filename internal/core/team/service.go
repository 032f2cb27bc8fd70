package team

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/leaguekeeper/teamdata/internal/app/appconfig"
	"github.com/leaguekeeper/teamdata/internal/pkg/apperr"
	"github.com/leaguekeeper/teamdata/internal/pkg/async"
	"github.com/leaguekeeper/teamdata/internal/pkg/observability"
)

var (
	errMissingStatsProcessor = apperr.ErrConfiguration.Msg("team stats requested but no stats processor is configured")
	errMissingPayroll        = apperr.ErrConfiguration.Msg("payroll requested but no payroll calculator is configured")
	errMissingOvr            = apperr.ErrConfiguration.Msg("ovr requested but no sport rating is configured")
)

type Service struct {
	Durable DurableStore
	Fast    FastTier

	// Stats, Payroll and Ovr may be nil as long as no query needs them.
	Stats   StatsProcessor
	Payroll PayrollCalculator
	Ovr     OvrCalculator

	// Concurrency caps the number of teams processed at once.
	Concurrency int
}

func NewService(durable DurableStore, fast FastTier, stats StatsProcessor, payroll PayrollCalculator, ovr OvrCalculator, conf *appconfig.Config) *Service {
	return &Service{
		Durable:     durable,
		Fast:        fast,
		Stats:       stats,
		Payroll:     payroll,
		Ovr:         ovr,
		Concurrency: conf.SnapshotConcurrency,
	}
}

// GetSnapshots projects the teams selected by q. An unknown tid yields an
// empty result. Snapshots are returned in tid order when every team is
// requested.
func (s *Service) GetSnapshots(ctx context.Context, league League, q Query) ([]*Snapshot, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	scope := "all"
	if q.Tid.Valid {
		scope = "team"
	}
	defer observability.ObserveSince(observability.SnapshotDuration.WithLabelValues(scope), time.Now())

	teams, err := s.teams(ctx, q)
	if err != nil {
		return nil, err
	}

	snapshots, err := async.Map(ctx, teams, s.Concurrency, func(ctx context.Context, t *Team) (*Snapshot, error) {
		return s.processTeam(ctx, league, t, &q)
	})
	if err != nil {
		if apperr.IsFatal(err) {
			log.Error().Err(err).Str("evt.name", "team.snapshot.misconfigured").Msg("snapshot query cannot be served")
		}
		return nil, err
	}
	return snapshots, nil
}

func (s *Service) teams(ctx context.Context, q Query) ([]*Team, error) {
	if !q.Tid.Valid {
		teams, err := s.Fast.Teams(ctx)
		return teams, errors.Wrap(err, "failed to list teams")
	}

	t, err := s.Fast.Team(ctx, int(q.Tid.Int64))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get team")
	}
	if t == nil {
		return []*Team{}, nil
	}
	return []*Team{t}, nil
}

// processTeam computes the three attribute classes of t concurrently.
func (s *Service) processTeam(ctx context.Context, league League, t *Team, q *Query) (*Snapshot, error) {
	snapshot := &Snapshot{Tid: t.Tid}

	g, gctx := errgroup.WithContext(ctx)

	if len(q.Attrs) > 0 {
		g.Go(func() (err error) {
			snapshot.Attrs, err = s.processAttrs(gctx, t, q.Attrs)
			return err
		})
	}

	if len(q.SeasonAttrs) > 0 {
		g.Go(func() (err error) {
			snapshot.SeasonAttrs, err = s.processSeasonAttrs(gctx, league, t, q)
			return errors.Wrapf(err, "failed to resolve season attributes of team %d", t.Tid)
		})
	}

	if len(q.Stats) > 0 {
		g.Go(func() (err error) {
			snapshot.Stats, err = s.processStats(gctx, league, t, q)
			return errors.Wrapf(err, "failed to resolve stats of team %d", t.Tid)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snapshot, nil
}
