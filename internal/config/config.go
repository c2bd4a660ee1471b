// Package config provides configuration management for tickclock with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (TICKCLOCK_* prefix, dots become underscores)
//  3. Project config (.tickclock/config.yaml) or the file given with --config
//  4. Global config (~/.tickclock/config.yaml)
//  5. Built-in defaults
//
// IMPORTANT: This package may import internal/constants, internal/errors,
// internal/bcd and internal/clock, and nothing that imports it back.
package config

import "github.com/mrz1836/tickclock/internal/bcd"

// Config is the root configuration structure for tickclock.
type Config struct {
	// Clock contains the tick frequency and the initial time and alarm.
	Clock ClockConfig `yaml:"clock" json:"clock" mapstructure:"clock"`

	// Metrics contains settings for the Prometheus endpoint of 'tickclock run'.
	Metrics MetricsConfig `yaml:"metrics" json:"metrics" mapstructure:"metrics"`

	// Output contains settings for terminal output.
	Output OutputConfig `yaml:"output" json:"output" mapstructure:"output"`
}

// ClockConfig contains settings for the clock itself.
type ClockConfig struct {
	// TicksPerSecond is how many ticks make one second.
	// Default: 100
	TicksPerSecond int `yaml:"ticks_per_second" json:"ticks_per_second" mapstructure:"ticks_per_second"`

	// Time is the starting time, written "HH:MM:SS" or "HH:MM".
	// Empty means no starting time.
	Time Digits `yaml:"time,omitempty" json:"time,omitempty" mapstructure:"time"`

	// Alarm is the alarm time, written "HH:MM". Empty means no alarm.
	Alarm Digits `yaml:"alarm,omitempty" json:"alarm,omitempty" mapstructure:"alarm"`

	// SyncHost seeds the clock from the host's time of day instead of Time.
	// Default: false
	SyncHost bool `yaml:"sync_host" json:"sync_host" mapstructure:"sync_host"`
}

// MetricsConfig contains settings for the metrics endpoint.
type MetricsConfig struct {
	// Enabled starts an HTTP server exposing /metrics.
	// Default: false
	Enabled bool `yaml:"enabled" json:"enabled" mapstructure:"enabled"`

	// Address is the listen address of the metrics server.
	// Default: ":9101"
	Address string `yaml:"address" json:"address" mapstructure:"address"`
}

// OutputConfig contains settings for terminal output.
type OutputConfig struct {
	// Bell rings the terminal bell when the alarm goes off.
	// Default: true
	Bell bool `yaml:"bell" json:"bell" mapstructure:"bell"`
}

// Digits is a clock digit buffer that reads and writes as "HH:MM[:SS]" text.
type Digits []uint8

// String returns the colon-separated form.
func (d Digits) String() string {
	return bcd.Format(d)
}

// MarshalYAML implements yaml.Marshaler.
func (d Digits) MarshalYAML() (any, error) {
	return d.String(), nil
}

// MarshalText implements encoding.TextMarshaler, which encoding/json uses.
func (d Digits) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
