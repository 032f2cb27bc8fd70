package override

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/leaguekeeper/teamdata/internal/app/appconfig"
	"github.com/leaguekeeper/teamdata/internal/pkg/cache"
	"github.com/leaguekeeper/teamdata/internal/pkg/latest"
)

// RefreshResult describes the outcome of a feed refresh.
type RefreshResult struct {
	// Stale is set when a newer refresh was issued while this one was loading;
	// its result was discarded.
	Stale bool

	// Changed is set when the loaded feed differs from the previously cached one.
	Changed bool

	Teams int
}

type Service struct {
	Loader *Loader

	feed  *cache.Singular[*Loaded]
	guard *latest.Guard
	ttl   time.Duration
}

func NewService(loader *Loader, conf *appconfig.Config) *Service {
	return &Service{
		Loader: loader,
		feed:   cache.NewSingular[*Loaded]("override#feed"),
		guard:  latest.NewGuard(),
		ttl:    conf.OverrideFeedCacheTTL,
	}
}

// Cache: (singular) override feed, OverrideFeedCacheTTL
func (s *Service) Feed(ctx context.Context) (Feed, error) {
	var loaded *Loaded
	_, err := s.feed.MutexGetSet(&loaded, func() (*Loaded, error) {
		return s.Loader.Load(ctx)
	}, s.ttl)
	if err != nil {
		return nil, err
	}
	return loaded.Feed, nil
}

// Refresh reloads the feed. When refreshes overlap only the latest one is
// allowed to replace the cached feed.
func (s *Service) Refresh(ctx context.Context) (RefreshResult, error) {
	loaded, current, err := latest.Do(s.guard, func() (*Loaded, error) {
		return s.Loader.Load(ctx)
	})
	if err != nil {
		return RefreshResult{}, err
	}
	if !current {
		log.Debug().
			Str("evt.name", "override.feed.stale").
			Msg("discarding override feed superseded by a newer refresh")
		return RefreshResult{Stale: true}, nil
	}

	var previous *Loaded
	changed := s.feed.Get(&previous) != nil || previous.Fingerprint != loaded.Fingerprint
	s.feed.Set(loaded, s.ttl)

	return RefreshResult{Changed: changed, Teams: len(loaded.Feed)}, nil
}

// Apply resolves the cached feed and applies it to target.
func (s *Service) Apply(ctx context.Context, target Target, season int, opts Options) (bool, error) {
	feed, err := s.Feed(ctx)
	if err != nil {
		return false, err
	}
	return Apply(target, feed, season, opts), nil
}
