package driver

import "time"

// TickSource creates periodic tickers. It exists so tests can feed ticks
// by hand instead of waiting on real time.
type TickSource interface {
	// NewTicker returns a ticker firing every d and the channel it fires on.
	// The channel is returned separately so Ticker can stay an interface.
	NewTicker(d time.Duration) (Ticker, <-chan time.Time)
}

// Ticker is an interface around time.Ticker.
type Ticker interface {
	Stop()
}

// WallClock reports the host time of day. It is only used to seed a clock
// with the current time; the clock itself never reads it.
type WallClock interface {
	Now() time.Time
}

type systemSource struct{}

func (systemSource) NewTicker(d time.Duration) (Ticker, <-chan time.Time) {
	t := time.NewTicker(d)
	return t, t.C
}

func (systemSource) Now() time.Time {
	return time.Now()
}

// SystemTickSource is a TickSource backed by time.NewTicker.
//
//nolint:gochecknoglobals // Stateless singleton
var SystemTickSource TickSource = systemSource{}

// SystemWallClock is a WallClock backed by time.Now.
//
//nolint:gochecknoglobals // Stateless singleton
var SystemWallClock WallClock = systemSource{}
