package config

import "github.com/mrz1836/tickclock/internal/constants"

// DefaultConfig returns a new Config with default values. These match the
// defaults registered with viper in setDefaults.
func DefaultConfig() *Config {
	return &Config{
		Clock: ClockConfig{
			TicksPerSecond: constants.DefaultTicksPerSecond,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Address: constants.DefaultMetricsAddress,
		},
		Output: OutputConfig{
			Bell: true,
		},
	}
}
