package async

import (
	"context"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPreservesInputOrder(t *testing.T) {
	src := []int{5, 4, 3, 2, 1, 0}

	result, err := Map(context.Background(), src, 3, func(_ context.Context, v int) (int, error) {
		time.Sleep(time.Duration(rand.Intn(5)) * time.Millisecond)
		return v * 10, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{50, 40, 30, 20, 10, 0}, result)
}

func TestMapRespectsLimit(t *testing.T) {
	var inFlight, peak int32

	_, err := Map(context.Background(), make([]struct{}, 20), 2, func(_ context.Context, _ struct{}) (struct{}, error) {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return struct{}{}, nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestMapPropagatesError(t *testing.T) {
	boom := errors.New("boom")

	result, err := Map(context.Background(), []int{1, 2, 3}, 0, func(_ context.Context, v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, boom)
}

func TestMapEmpty(t *testing.T) {
	result, err := Map(context.Background(), []int{}, 4, func(_ context.Context, v int) (int, error) {
		return v, nil
	})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestFlatMap(t *testing.T) {
	result, err := FlatMap(context.Background(), []int{1, 2, 3}, 2, func(_ context.Context, v int) ([]int, error) {
		out := make([]int, v)
		for i := range out {
			out[i] = v
		}
		return out, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2, 3, 3, 3}, result)
}
