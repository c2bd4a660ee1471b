package driver

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tickclock/internal/clock"
	"github.com/mrz1836/tickclock/internal/metrics"
	"github.com/mrz1836/tickclock/internal/testutil"
)

// =============================================================================
// Test helpers
// =============================================================================

type fakeTicker struct {
	stopped atomic.Bool
}

func (f *fakeTicker) Stop() {
	f.stopped.Store(true)
}

// fakeSource hands out a single ticker whose channel the test feeds by hand.
type fakeSource struct {
	ch      chan time.Time
	ticker  *fakeTicker
	period  time.Duration
	created chan struct{}
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		ch:      make(chan time.Time),
		ticker:  &fakeTicker{},
		created: make(chan struct{}),
	}
}

func (s *fakeSource) NewTicker(d time.Duration) (Ticker, <-chan time.Time) {
	s.period = d
	close(s.created)
	return s.ticker, s.ch
}

func (s *fakeSource) send(n int) {
	for i := 0; i < n; i++ {
		s.ch <- time.Time{}
	}
}

func newClock(t *testing.T, tps uint16, handler clock.AlarmHandler, start ...uint8) *clock.Clock {
	t.Helper()
	c, err := clock.New(tps, handler)
	require.NoError(t, err)
	if start != nil {
		require.NoError(t, c.SetupTime(start))
	}
	return c
}

// runDriver starts d.Run in the background and returns a stop function that
// cancels it and waits for it to return.
func runDriver(t *testing.T, d *Driver, src *fakeSource) func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- d.Run(ctx)
	}()
	<-src.created

	return func() {
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("driver did not stop")
		}
	}
}

// =============================================================================
// Tests
// =============================================================================

func TestDriver_Period(t *testing.T) {
	tests := []struct {
		tps  uint16
		want time.Duration
	}{
		{1, time.Second},
		{4, 250 * time.Millisecond},
		{100, 10 * time.Millisecond},
		{1000, time.Millisecond},
	}

	for _, tt := range tests {
		d := New(newClock(t, tt.tps, nil))
		assert.Equal(t, tt.want, d.Period(), "ticks per second %d", tt.tps)
	}
}

func TestDriver_RunFeedsTicks(t *testing.T) {
	src := newFakeSource()
	var snaps []Snapshot
	d := New(newClock(t, 4, nil, 1, 2, 0, 0, 0, 0),
		WithTickSource(src),
		WithObserver(func(s Snapshot) { snaps = append(snaps, s) }),
	)

	stop := runDriver(t, d, src)
	assert.Equal(t, 250*time.Millisecond, src.period)
	src.send(9)
	stop()

	assert.True(t, src.ticker.stopped.Load(), "ticker must be stopped")
	require.Len(t, snaps, 2, "observer is called once per second")
	assert.Equal(t, [6]uint8{1, 2, 0, 0, 0, 1}, snaps[0].Time)
	assert.Equal(t, [6]uint8{1, 2, 0, 0, 0, 2}, snaps[1].Time)
	assert.True(t, snaps[1].TimeValid)

	snap := d.Snapshot()
	assert.Equal(t, [6]uint8{1, 2, 0, 0, 0, 2}, snap.Time)
}

func TestDriver_RunStopsOnCanceledContext(t *testing.T) {
	src := newFakeSource()
	d := New(newClock(t, 10, nil), WithTickSource(src))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, d.Run(ctx))
	assert.True(t, src.ticker.stopped.Load())
}

func TestDriver_TickFiresAlarm(t *testing.T) {
	fired := 0
	d := New(newClock(t, 2, func(*clock.Clock) { fired++ }, 0, 6, 5, 9, 5, 9))
	require.NoError(t, d.Do(func(c *clock.Clock) error {
		return c.SetupAlarm([]uint8{0, 7, 0, 0})
	}))

	d.Tick()
	assert.Zero(t, fired)
	d.Tick()
	assert.Equal(t, 1, fired)

	snap := d.Snapshot()
	assert.Equal(t, [6]uint8{0, 7, 0, 0, 0, 0}, snap.Time)
	assert.Equal(t, [4]uint8{0, 7, 0, 0}, snap.Alarm)
	assert.True(t, snap.AlarmEnabled)
}

func TestDriver_DoPropagatesError(t *testing.T) {
	d := New(newClock(t, 2, nil))

	err := d.Do(func(c *clock.Clock) error {
		return c.SetupTime([]uint8{2, 5})
	})

	require.Error(t, err)
	assert.False(t, d.Snapshot().TimeValid)
}

func TestDriver_DoReturnsCallbackError(t *testing.T) {
	d := New(newClock(t, 2, nil))

	err := d.Do(func(*clock.Clock) error {
		return testutil.ErrMockFailure
	})

	require.ErrorIs(t, err, testutil.ErrMockFailure)
}

func TestDriver_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	d := New(newClock(t, 3, nil, 0, 0), WithMetrics(metrics.New(reg)))

	for i := 0; i < 7; i++ {
		d.Tick()
	}

	rec := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "tickclock_ticks_total 7")
	assert.Contains(t, string(body), "tickclock_seconds_total 2")
	assert.Contains(t, string(body), "tickclock_time_valid 1")
	assert.Contains(t, string(body), "tickclock_alarm_enabled 0")
}

func TestDriver_LogsSeconds(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	d := New(newClock(t, 1, nil, 0, 9, 1, 5, 3, 0), WithLogger(logger))

	d.Tick()

	assert.Contains(t, buf.String(), `"component":"driver"`)
	assert.Contains(t, buf.String(), `"time":"09:15:31"`)
	assert.Contains(t, buf.String(), "second elapsed")
}

func TestDriver_ConcurrentAccess(t *testing.T) {
	src := newFakeSource()
	d := New(newClock(t, 5, nil, 0, 0), WithTickSource(src))
	stop := runDriver(t, d, src)

	const workers = 8
	var wg sync.WaitGroup
	wg.Add(workers + 1)

	go func() {
		defer wg.Done()
		src.send(500)
	}()
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = d.Do(func(c *clock.Clock) error {
					return c.SetupAlarm([]uint8{0, uint8(i % 10)})
				})
				_ = d.Snapshot()
			}
		}(i)
	}

	wg.Wait()
	stop()

	snap := d.Snapshot()
	assert.Equal(t, [6]uint8{0, 0, 0, 1, 4, 0}, snap.Time, "500 ticks at 5/s is 100 seconds")
	assert.True(t, snap.AlarmEnabled)
}

func TestSystemSources(t *testing.T) {
	ticker, ch := SystemTickSource.NewTicker(time.Millisecond)
	defer ticker.Stop()

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("system ticker did not fire")
	}

	before := time.Now()
	now := SystemWallClock.Now()
	assert.False(t, now.Before(before))
}
