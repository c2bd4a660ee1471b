package config

import (
	"github.com/mrz1836/tickclock/internal/clock"
	"github.com/mrz1836/tickclock/internal/constants"
	"github.com/mrz1836/tickclock/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - clock.ticks_per_second must be between 1 and 65535
//   - clock.time, if set, must be a valid time of day
//   - clock.alarm, if set, must be HH:MM between 00:00 and 23:59
//   - clock.time and clock.sync_host are mutually exclusive
//   - metrics.address must not be empty when metrics are enabled
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateClockConfig(&cfg.Clock); err != nil {
		return err
	}

	return validateMetricsConfig(&cfg.Metrics)
}

// validateClockConfig checks the clock settings against the same rules the
// clock enforces, by applying them to a scratch clock.
func validateClockConfig(cfg *ClockConfig) error {
	if cfg.TicksPerSecond < 1 || cfg.TicksPerSecond > constants.MaxTicksPerSecond {
		return errors.Wrapf(errors.ErrConfigInvalidClock,
			"clock.ticks_per_second must be between 1 and %d, got %d",
			constants.MaxTicksPerSecond, cfg.TicksPerSecond)
	}

	scratch, err := clock.New(1, nil)
	if err != nil {
		return err
	}

	if len(cfg.Time) > 0 {
		if cfg.SyncHost {
			return errors.Wrap(errors.ErrConfigInvalidClock,
				"clock.time and clock.sync_host cannot both be set")
		}
		if err := scratch.SetupTime(cfg.Time); err != nil {
			return errors.Wrapf(errors.ErrConfigInvalidClock, "clock.time %s: %v", cfg.Time, err)
		}
	}

	if len(cfg.Alarm) > 0 {
		if err := scratch.SetupAlarm(cfg.Alarm); err != nil {
			return errors.Wrapf(errors.ErrConfigInvalidClock, "clock.alarm %s: %v", cfg.Alarm, err)
		}
	}

	return nil
}

func validateMetricsConfig(cfg *MetricsConfig) error {
	if cfg.Enabled && cfg.Address == "" {
		return errors.Wrap(errors.ErrConfigInvalidMetrics,
			"metrics.address must not be empty when metrics are enabled")
	}
	return nil
}
