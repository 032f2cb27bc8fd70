package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "teamdata"
)

var (
	TierReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "tier", "reads_total"),
		Help: "Number of reads against a storage tier by index",
	}, []string{"tier", "index"})
	TierReadErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "tier", "read_errors_total"),
		Help: "Number of failed reads against a storage tier by index",
	}, []string{"tier", "index"})
	SnapshotDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "snapshot", "duration_seconds"),
		Help:    "Duration of team snapshot queries in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"scope"})
	FeedRefreshDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "feed", "refresh_duration_seconds"),
		Help: "Duration of the last override feed refresh in seconds",
	}, []string{"result"})
	FeedRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "feed", "refreshes_total"),
		Help: "Number of override feed refreshes by result",
	}, []string{"result"})
)

// ObserveTierRead counts a read against tier/index and records its failure, if any.
func ObserveTierRead(tier, index string, err error) {
	TierReads.WithLabelValues(tier, index).Inc()
	if err != nil {
		TierReadErrors.WithLabelValues(tier, index).Inc()
	}
}

// ObserveSince records the time elapsed since start on a histogram.
func ObserveSince(h prometheus.Observer, start time.Time) {
	h.Observe(time.Since(start).Seconds())
}
