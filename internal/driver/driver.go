// Package driver feeds real-time ticks into a clock.
//
// A clock.Clock is single-threaded. Driver owns one clock and serializes
// every access to it: the ticking goroutine started by Run, configuration
// through Do, and reads through Snapshot all take the same lock.
package driver

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrz1836/tickclock/internal/bcd"
	"github.com/mrz1836/tickclock/internal/clock"
	"github.com/mrz1836/tickclock/internal/constants"
	"github.com/mrz1836/tickclock/internal/metrics"
)

// Snapshot is a consistent copy of a clock's visible state.
type Snapshot struct {
	Time         [constants.TimeDigits]uint8
	TimeValid    bool
	Alarm        [constants.AlarmDigits]uint8
	AlarmEnabled bool
}

// Observer receives a snapshot every time the clock completes a second.
// It is called from the ticking goroutine without the lock held.
type Observer func(Snapshot)

// Driver ticks a clock at its configured frequency.
type Driver struct {
	mu    sync.Mutex
	clock *clock.Clock

	source   TickSource
	logger   zerolog.Logger
	metrics  *metrics.Metrics
	observer Observer
}

// Option is a functional option for configuring a Driver.
type Option func(*Driver)

// WithTickSource replaces the system ticker, mainly for tests.
func WithTickSource(s TickSource) Option {
	return func(d *Driver) {
		d.source = s
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// WithMetrics records ticks and seconds in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Driver) {
		d.metrics = m
	}
}

// WithObserver registers a per-second callback.
func WithObserver(o Observer) Option {
	return func(d *Driver) {
		d.observer = o
	}
}

// New creates a driver for c. The clock's alarm handler runs with the
// driver lock held and must not call back into the driver.
func New(c *clock.Clock, opts ...Option) *Driver {
	d := &Driver{
		clock:  c,
		source: SystemTickSource,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.With().Str("component", "driver").Logger()
	return d
}

// Period returns the interval between two ticks.
func (d *Driver) Period() time.Duration {
	return time.Second / time.Duration(d.clock.TicksPerSecond())
}

// Run ticks the clock until ctx is done. It returns nil on cancellation.
func (d *Driver) Run(ctx context.Context) error {
	period := d.Period()
	ticker, ticks := d.source.NewTicker(period)
	defer ticker.Stop()

	d.logger.Info().
		Uint16("ticks_per_second", d.clock.TicksPerSecond()).
		Dur("period", period).
		Msg("clock driver started")

	for {
		select {
		case <-ctx.Done():
			d.logger.Info().Msg("clock driver stopped")
			return nil
		case <-ticks:
			d.Tick()
		}
	}
}

// Tick feeds a single tick to the clock.
func (d *Driver) Tick() {
	d.mu.Lock()
	d.clock.NewTick()
	second := d.clock.TickCount() == 0
	var snap Snapshot
	if second {
		snap = d.snapshotLocked()
	}
	d.mu.Unlock()

	d.metrics.Tick()
	if !second {
		return
	}

	d.metrics.Second()
	d.metrics.SetState(snap.TimeValid, snap.AlarmEnabled)
	d.logger.Debug().
		Str("time", bcd.Format(snap.Time[:])).
		Bool("time_valid", snap.TimeValid).
		Msg("second elapsed")

	if d.observer != nil {
		d.observer(snap)
	}
}

// Do runs fn with exclusive access to the clock and returns its error.
func (d *Driver) Do(fn func(c *clock.Clock) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return fn(d.clock)
}

// Snapshot returns the current clock state.
func (d *Driver) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshotLocked()
}

func (d *Driver) snapshotLocked() Snapshot {
	var s Snapshot
	s.TimeValid = d.clock.GetTime(s.Time[:])
	s.AlarmEnabled = d.clock.GetAlarm(s.Alarm[:])
	return s
}
