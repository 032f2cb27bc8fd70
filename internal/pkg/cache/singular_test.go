package cache

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingularMiss(t *testing.T) {
	c := NewSingular[map[string]int]("test")

	var dest map[string]int
	assert.ErrorIs(t, c.Get(&dest), ErrNotFound)

	c.Set(map[string]int{"a": 1}, time.Minute)
	require.NoError(t, c.Get(&dest))
	assert.Equal(t, 1, dest["a"])

	c.Delete()
	assert.ErrorIs(t, c.Get(&dest), ErrNotFound)
}

func TestSingularMutexGetSetComputesOnce(t *testing.T) {
	c := NewSingular[string]("once")

	var calls int32
	valueFunc := func() (string, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(10 * time.Millisecond)
		return "computed", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var dest string
			_, err := c.MutexGetSet(&dest, valueFunc, time.Minute)
			assert.NoError(t, err)
			assert.Equal(t, "computed", dest)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestSingularMutexGetSetDoesNotCacheErrors(t *testing.T) {
	c := NewSingular[string]("failing")
	boom := errors.New("boom")

	var dest string
	computed, err := c.MutexGetSet(&dest, func() (string, error) { return "", boom }, time.Minute)
	assert.True(t, computed)
	assert.ErrorIs(t, err, boom)

	computed, err = c.MutexGetSet(&dest, func() (string, error) { return "ok", nil }, time.Minute)
	assert.True(t, computed)
	assert.NoError(t, err)
	assert.Equal(t, "ok", dest)
}
