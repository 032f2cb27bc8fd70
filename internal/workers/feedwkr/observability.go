package feedwkr

import (
	"time"

	"github.com/leaguekeeper/teamdata/internal/core/override"
	"github.com/leaguekeeper/teamdata/internal/pkg/observability"
)

const (
	resultChanged   = "changed"
	resultUnchanged = "unchanged"
	resultStale     = "stale"
	resultError     = "error"
	resultSkipped   = "skipped"
)

func resultOf(res override.RefreshResult) string {
	switch {
	case res.Stale:
		return resultStale
	case res.Changed:
		return resultChanged
	default:
		return resultUnchanged
	}
}

func observeRefresh(result string, dur time.Duration) string {
	observability.FeedRefreshes.WithLabelValues(result).Inc()
	if result != resultSkipped {
		observability.FeedRefreshDuration.WithLabelValues(result).Set(dur.Seconds())
	}
	return result
}
