// Package constants provides centralized constant values used throughout tickclock.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Digit buffer sizes. Digits are stored one per element, most significant first.
const (
	// TimeDigits is the number of BCD digits in a time value (HH MM SS).
	TimeDigits = 6

	// AlarmDigits is the number of BCD digits in an alarm value (HH MM).
	AlarmDigits = 4
)

// Clock defaults.
const (
	// DefaultTicksPerSecond is the tick frequency used when none is configured.
	// 100 Hz matches a typical 10ms scheduler tick.
	DefaultTicksPerSecond = 100

	// MaxTicksPerSecond is the largest tick frequency a clock accepts.
	MaxTicksPerSecond = 65535

	// DefaultMetricsAddress is the listen address for the /metrics endpoint.
	DefaultMetricsAddress = ":9101"

	// MetricsShutdownTimeout bounds how long the metrics server may take to drain.
	MetricsShutdownTimeout = 5 * time.Second
)

// Directory names and paths used by tickclock.
const (
	// AppHome is the hidden directory name where tickclock stores its data.
	// This directory is created in the user's home directory.
	AppHome = ".tickclock"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// ConfigFileName is the name of both the global and project config files.
	ConfigFileName = "config.yaml"

	// EnvPrefix is the prefix for environment variable overrides (TICKCLOCK_*).
	EnvPrefix = "TICKCLOCK"

	// HomeEnvVar overrides the location of AppHome.
	HomeEnvVar = "TICKCLOCK_HOME"
)

// Log rotation settings for the CLI log file.
const (
	// CLILogFileName is the name of the rotating CLI log file.
	CLILogFileName = "tickclock.log"

	// LogMaxSizeMB is the size at which the log file is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files kept.
	LogMaxBackups = 3

	// LogMaxAgeDays is how long rotated files are kept.
	LogMaxAgeDays = 14

	// LogCompress controls gzip compression of rotated files.
	LogCompress = true
)
