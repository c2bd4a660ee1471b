// Package errors provides centralized error handling for tickclock.
//
// Sentinel errors defined here let callers categorize failures with
// errors.Is(). The clock core reports "time not set" and "alarm disabled" as
// boolean status; everything in this package is a rejected input or a
// configuration problem.
//
// IMPORTANT: This package MUST NOT import any other internal packages.
package errors

import "errors"

// Sentinel errors for error categorization.
var (
	// ErrInvalidTicksPerSecond indicates a clock was created with a tick
	// frequency of zero.
	ErrInvalidTicksPerSecond = errors.New("ticks per second must be at least 1")

	// ErrTooManyDigits indicates a digit sequence longer than the buffer it
	// is written to (6 for time, 4 for alarm).
	ErrTooManyDigits = errors.New("too many digits")

	// ErrDigitOutOfRange indicates a BCD digit greater than 9.
	ErrDigitOutOfRange = errors.New("digit out of range")

	// ErrTimeOutOfRange indicates digits that are individually valid but do
	// not form a time between 00:00:00 and 23:59:59.
	ErrTimeOutOfRange = errors.New("time out of range")

	// ErrAlarmOutOfRange indicates digits that do not form an alarm between
	// 00:00 and 23:59.
	ErrAlarmOutOfRange = errors.New("alarm out of range")

	// ErrInvalidTimeFormat indicates text that is not HH:MM, HH:MM:SS or a
	// run of 4 or 6 digits.
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidClock indicates an invalid clock configuration value.
	ErrConfigInvalidClock = errors.New("invalid clock configuration")

	// ErrConfigInvalidMetrics indicates an invalid metrics configuration value.
	ErrConfigInvalidMetrics = errors.New("invalid metrics configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidDuration indicates that a duration was negative or malformed.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrMissingTime indicates a command that needs a starting time got none.
	ErrMissingTime = errors.New("no starting time given")
)

// ExitCode2Error wraps an error to indicate exit code 2 (invalid input) should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
