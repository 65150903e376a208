package notify

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollerInitialFetch(t *testing.T) {
	p := NewPoller(func(ctx context.Context) (int, error) { return 3, nil }, time.Hour)
	p.Start(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool { return p.Count() == 3 }, time.Second, 5*time.Millisecond)
}

func TestPollerStartDoesNotBlockOnSlowFetch(t *testing.T) {
	release := make(chan struct{})
	p := NewPoller(func(ctx context.Context) (int, error) {
		<-release
		return 7, nil
	}, time.Hour)

	// Start must return immediately even though the fetch is stuck.
	p.Start(context.Background())
	assert.Equal(t, 0, p.Count())

	close(release)
	assert.Eventually(t, func() bool { return p.Count() == 7 }, time.Second, 5*time.Millisecond)
	p.Stop()
}

func TestPollerMarkAllRead(t *testing.T) {
	p := NewPoller(func(ctx context.Context) (int, error) { return 9, nil }, time.Hour)
	p.Start(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool { return p.Count() == 9 }, time.Second, 5*time.Millisecond)
	p.MarkAllRead()
	assert.Equal(t, 0, p.Count())
}

func TestPollerFailedFetchKeepsLastCount(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller(func(ctx context.Context) (int, error) {
		if calls.Add(1) == 1 {
			return 5, nil
		}
		return 0, errors.New("upstream down")
	}, time.Hour)
	p.Start(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool { return p.Count() == 5 }, time.Second, 5*time.Millisecond)
	p.Refresh(context.Background())
	assert.Equal(t, 5, p.Count())
}

func TestPollerTicks(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller(func(ctx context.Context) (int, error) {
		return int(calls.Add(1)), nil
	}, 10*time.Millisecond)
	p.Start(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool { return p.Count() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := NewPoller(func(ctx context.Context) (int, error) { return 0, nil }, time.Millisecond)
	p.Start(context.Background())

	p.Stop()
	p.Stop()
}

func TestPollerStopOnNeverStarted(t *testing.T) {
	p := NewPoller(func(ctx context.Context) (int, error) { return 0, nil }, time.Millisecond)
	p.Stop()
}

func TestRegistryReturnsSamePoller(t *testing.T) {
	r := NewRegistry(context.Background(), time.Hour)
	defer r.RemoveAll()

	fetch := func(ctx context.Context) (int, error) { return 1, nil }
	p1 := r.Get("sess-1", fetch)
	p2 := r.Get("sess-1", fetch)
	assert.Same(t, p1, p2)

	p3 := r.Get("sess-2", fetch)
	assert.NotSame(t, p1, p3)
}

func TestRegistryGetDoesNotBlockOtherSessions(t *testing.T) {
	r := NewRegistry(context.Background(), time.Hour)
	defer r.RemoveAll()

	release := make(chan struct{})
	defer close(release)
	r.Get("sess-slow", func(ctx context.Context) (int, error) {
		<-release
		return 1, nil
	})

	// A second session's lookup must not wait on the first one's fetch.
	p := r.Get("sess-2", func(ctx context.Context) (int, error) { return 2, nil })
	assert.Eventually(t, func() bool { return p.Count() == 2 }, time.Second, 5*time.Millisecond)
}

func TestRegistryRemoveStopsPoller(t *testing.T) {
	r := NewRegistry(context.Background(), time.Hour)
	p := r.Get("sess-1", func(ctx context.Context) (int, error) { return 1, nil })

	r.Remove("sess-1")
	_, ok := r.Lookup("sess-1")
	assert.False(t, ok)

	// Removing again is harmless, as is stopping the returned poller.
	r.Remove("sess-1")
	p.Stop()
}
