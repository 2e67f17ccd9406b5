package swipe

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueue_RunsInOrder(t *testing.T) {
	q := NewQueue(discardLogger())
	var got []int
	for i := 0; i < 3; i++ {
		q.Post(func() { got = append(got, i) })
	}
	assert.Equal(t, []int{0, 1, 2}, got)
	assert.False(t, q.Draining())
}

func TestQueue_NestedPostRunsAfterCurrentTask(t *testing.T) {
	q := NewQueue(discardLogger())
	var got []string
	q.Post(func() {
		got = append(got, "outer start")
		q.Post(func() { got = append(got, "inner") })
		assert.True(t, q.Draining())
		got = append(got, "outer end")
	})
	assert.Equal(t, []string{"outer start", "outer end", "inner"}, got)
}

func TestQueue_RecoversPanics(t *testing.T) {
	q := NewQueue(discardLogger())
	ran := false
	require.NotPanics(t, func() {
		q.Post(func() {
			q.Post(func() { ran = true })
			panic("boom")
		})
	})
	assert.True(t, ran)
	assert.False(t, q.Draining())
}

func TestQueue_ConcurrentPosts(t *testing.T) {
	q := NewQueue(discardLogger())
	var count atomic.Int64
	var running atomic.Int32
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Post(func() {
					if running.Inc() != 1 {
						t.Error("tasks overlapped")
					}
					count.Inc()
					running.Dec()
				})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(800), count.Load())
}

func TestQueue_IgnoresNil(t *testing.T) {
	q := NewQueue(nil)
	q.Post(nil)
	assert.False(t, q.Draining())
}
