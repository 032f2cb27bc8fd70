package feedwkr

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/leaguekeeper/teamdata/internal/app/appconfig"
	"github.com/leaguekeeper/teamdata/internal/core/override"
	"github.com/leaguekeeper/teamdata/internal/pkg/observability"
)

type fakeRefresher struct {
	res   override.RefreshResult
	err   error
	calls int
}

func (f *fakeRefresher) Refresh(ctx context.Context) (override.RefreshResult, error) {
	f.calls++
	return f.res, f.err
}

type fakeLocker struct {
	lockErr  error
	locked   bool
	unlocked bool
}

func (f *fakeLocker) LockContext(ctx context.Context) error {
	if f.lockErr != nil {
		return f.lockErr
	}
	f.locked = true
	return nil
}

func (f *fakeLocker) UnlockContext(ctx context.Context) (bool, error) {
	f.unlocked = true
	return true, nil
}

func newWorker(refresher Refresher, locker *fakeLocker) *Worker {
	conf := &appconfig.Config{}
	conf.FeedRefreshInterval = time.Minute
	conf.WorkerTimeout = time.Second
	return New(conf, refresher, func() Locker { return locker })
}

func TestRunOnce(t *testing.T) {
	tests := []struct {
		name string
		res  override.RefreshResult
		err  error
		want string
	}{
		{name: "changed", res: override.RefreshResult{Changed: true, Teams: 30}, want: resultChanged},
		{name: "unchanged", res: override.RefreshResult{Teams: 30}, want: resultUnchanged},
		{name: "stale", res: override.RefreshResult{Stale: true}, want: resultStale},
		{name: "error", err: errors.New("bucket unreachable"), want: resultError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refresher := &fakeRefresher{res: tt.res, err: tt.err}
			locker := &fakeLocker{}
			w := newWorker(refresher, locker)

			before := testutil.ToFloat64(observability.FeedRefreshes.WithLabelValues(tt.want))
			assert.Equal(t, tt.want, w.runOnce(context.Background()))
			assert.Equal(t, before+1, testutil.ToFloat64(observability.FeedRefreshes.WithLabelValues(tt.want)))

			assert.Equal(t, 1, refresher.calls)
			assert.Equal(t, 1, w.Count())
			assert.True(t, locker.locked)
			assert.True(t, locker.unlocked)
		})
	}
}

func TestRunOnceSkipsWhenLockHeld(t *testing.T) {
	refresher := &fakeRefresher{}
	locker := &fakeLocker{lockErr: errors.New("lock already taken")}
	w := newWorker(refresher, locker)

	assert.Equal(t, resultSkipped, w.runOnce(context.Background()))
	assert.Zero(t, refresher.calls)
	assert.Zero(t, w.Count())
	assert.False(t, locker.unlocked)
}
