package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mrz1836/tickclock/internal/bcd"
	"github.com/mrz1836/tickclock/internal/clock"
	"github.com/mrz1836/tickclock/internal/config"
	"github.com/mrz1836/tickclock/internal/constants"
	"github.com/mrz1836/tickclock/internal/driver"
	"github.com/mrz1836/tickclock/internal/errors"
	"github.com/mrz1836/tickclock/internal/tui"
)

// clockFlags holds the clock flags shared by run and simulate.
type clockFlags struct {
	Time           string
	Alarm          string
	TicksPerSecond int
}

func addClockFlags(cmd *cobra.Command, f *clockFlags) {
	cmd.Flags().StringVarP(&f.Time, "time", "t", "", "starting time (HH:MM:SS or HH:MM)")
	cmd.Flags().StringVarP(&f.Alarm, "alarm", "a", "", "alarm time (HH:MM)")
	cmd.Flags().IntVar(&f.TicksPerSecond, "ticks-per-second", 0,
		"ticks that make one second (default from config, 100)")
}

// overrides converts the flags into config overrides. Values are checked
// here so that a bad flag is reported as invalid input rather than as a
// configuration problem.
func (f *clockFlags) overrides() (*config.Config, error) {
	o := &config.Config{}

	if f.TicksPerSecond < 0 || f.TicksPerSecond > constants.MaxTicksPerSecond {
		return nil, errors.NewExitCode2Error(errors.Wrapf(errors.ErrInvalidTicksPerSecond,
			"--ticks-per-second must be between 1 and %d, got %d", constants.MaxTicksPerSecond, f.TicksPerSecond))
	}
	o.Clock.TicksPerSecond = f.TicksPerSecond

	scratch, err := clock.New(1, nil)
	if err != nil {
		return nil, err
	}

	if f.Time != "" {
		digits, err := bcd.Parse(f.Time)
		if err == nil {
			err = scratch.SetupTime(digits)
		}
		if err != nil {
			return nil, errors.NewExitCode2Error(errors.Wrap(err, "--time"))
		}
		o.Clock.Time = digits
	}

	if f.Alarm != "" {
		digits, err := bcd.Parse(f.Alarm)
		if err == nil {
			err = scratch.SetupAlarm(digits)
		}
		if err != nil {
			return nil, errors.NewExitCode2Error(errors.Wrap(err, "--alarm"))
		}
		o.Clock.Alarm = digits
	}

	return o, nil
}

// loadConfig loads the effective configuration with the flag overrides applied.
func loadConfig(ctx context.Context, globals *GlobalFlags, overrides *config.Config) (*config.Config, error) {
	cfg, err := config.LoadWithOverrides(ctx, globals.Config, overrides)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// buildClock creates a clock from cfg. With clock.sync_host the starting
// time is read from wall.
func buildClock(cfg *config.Config, wall driver.WallClock, onAlarm clock.AlarmHandler) (*clock.Clock, error) {
	c, err := clock.New(uint16(cfg.Clock.TicksPerSecond), onAlarm) //nolint:gosec // validated by config.Validate
	if err != nil {
		return nil, err
	}

	switch {
	case cfg.Clock.SyncHost:
		now := bcd.FromTime(wall.Now())
		if err := c.SetupTime(now[:]); err != nil {
			return nil, errors.Wrap(err, "failed to sync with host time")
		}
	case len(cfg.Clock.Time) > 0:
		if err := c.SetupTime(cfg.Clock.Time); err != nil {
			return nil, errors.Wrap(err, "failed to set time")
		}
	}

	if len(cfg.Clock.Alarm) > 0 {
		if err := c.SetupAlarm(cfg.Clock.Alarm); err != nil {
			return nil, errors.Wrap(err, "failed to set alarm")
		}
	}

	return c, nil
}

func readingFromSnapshot(s driver.Snapshot) tui.Reading {
	r := tui.Reading{
		Time:         bcd.Format(s.Time[:]),
		TimeValid:    s.TimeValid,
		AlarmEnabled: s.AlarmEnabled,
	}
	if s.AlarmEnabled {
		r.Alarm = bcd.Format(s.Alarm[:])
	}
	return r
}

// readingFromClock reads c directly. Callers must own c, e.g. inside an
// alarm handler or a driver.Do callback.
func readingFromClock(c *clock.Clock) tui.Reading {
	var s driver.Snapshot
	s.TimeValid = c.GetTime(s.Time[:])
	s.AlarmEnabled = c.GetAlarm(s.Alarm[:])
	return readingFromSnapshot(s)
}
