package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to their user-facing messages.
// A slice rather than a map because wrapped errors need errors.Is traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Clock input
	// ===================
	{
		err: ErrInvalidTicksPerSecond,
		info: ErrorInfo{
			Message: "The tick frequency must be at least one tick per second.",
			Action:  "Set --ticks-per-second or clock.ticks_per_second to a value between 1 and 65535.",
		},
	},
	{
		err: ErrTooManyDigits,
		info: ErrorInfo{
			Message: "Too many digits: time takes at most 6 (HHMMSS), alarms at most 4 (HHMM).",
			Action:  "Use HH:MM:SS for times and HH:MM for alarms.",
		},
	},
	{
		err: ErrDigitOutOfRange,
		info: ErrorInfo{
			Message: "Every position must be a single decimal digit (0-9).",
		},
	},
	{
		err: ErrTimeOutOfRange,
		info: ErrorInfo{
			Message: "Time must be between 00:00:00 and 23:59:59.",
			Action:  "Check the hour (00-23), minutes (00-59) and seconds (00-59).",
		},
	},
	{
		err: ErrAlarmOutOfRange,
		info: ErrorInfo{
			Message: "Alarm must be between 00:00 and 23:59.",
			Action:  "Check the hour (00-23) and minutes (00-59).",
		},
	},
	{
		err: ErrInvalidTimeFormat,
		info: ErrorInfo{
			Message: "Could not read the time.",
			Action:  "Use HH:MM:SS, HH:MM, HHMMSS or HHMM.",
		},
	},
	{
		err: ErrMissingTime,
		info: ErrorInfo{
			Message: "No starting time was given.",
			Action:  "Pass --time HH:MM:SS, pass --sync, or set clock.time in the config file.",
		},
	},

	// ===================
	// Configuration
	// ===================
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "Configuration is missing.",
		},
	},
	{
		err: ErrConfigInvalidClock,
		info: ErrorInfo{
			Message: "Invalid clock configuration.",
			Action:  "Run 'tickclock config show' to review the effective settings.",
		},
	},
	{
		err: ErrConfigInvalidMetrics,
		info: ErrorInfo{
			Message: "Invalid metrics configuration.",
			Action:  "Set metrics.address to a listen address such as ':9101'.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Invalid output format.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrInvalidDuration,
		info: ErrorInfo{
			Message: "Invalid duration.",
			Action:  "Use a non-negative Go duration such as '90s' or '5m'.",
		},
	},
}

//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error, trying a direct
// map hit first and then errors.Is() for wrapped errors. Unknown errors
// yield their own message.
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for err.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action. The action is empty when there is nothing useful to suggest.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
