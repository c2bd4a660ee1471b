// Package bcd converts between clock digit buffers and their text form.
//
// A digit buffer holds one decimal digit per element, most significant
// first: six elements for a time (HH MM SS), four for an alarm (HH MM).
// Range checks (hour <= 23 and so on) belong to the clock; this package only
// checks shape.
package bcd

import (
	"strings"
	"time"

	"github.com/mrz1836/tickclock/internal/constants"
	"github.com/mrz1836/tickclock/internal/errors"
)

// Parse reads "HH:MM", "HH:MM:SS", "HHMM" or "HHMMSS" into a digit slice
// of length 4 or 6.
func Parse(s string) ([]uint8, error) {
	s = strings.TrimSpace(s)
	raw := s
	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, errors.Wrapf(errors.ErrInvalidTimeFormat, "%q", raw)
		}
		for _, p := range parts {
			if len(p) != 2 {
				return nil, errors.Wrapf(errors.ErrInvalidTimeFormat, "%q", raw)
			}
		}
		s = strings.Join(parts, "")
	}

	if len(s) != constants.AlarmDigits && len(s) != constants.TimeDigits {
		return nil, errors.Wrapf(errors.ErrInvalidTimeFormat, "%q", raw)
	}

	digits := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return nil, errors.Wrapf(errors.ErrInvalidTimeFormat, "%q", raw)
		}
		digits[i] = ch - '0'
	}
	return digits, nil
}

// Format renders digits in pairs separated by colons: six digits become
// "HH:MM:SS", four become "HH:MM". An odd trailing digit is printed alone.
func Format(digits []uint8) string {
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && i%2 == 0 {
			b.WriteByte(':')
		}
		b.WriteByte('0' + d%10)
	}
	return b.String()
}

// FromTime returns the time-of-day digits of t in its own location.
func FromTime(t time.Time) [constants.TimeDigits]uint8 {
	h, m, s := t.Clock()
	return [constants.TimeDigits]uint8{
		uint8(h / 10), uint8(h % 10),
		uint8(m / 10), uint8(m % 10),
		uint8(s / 10), uint8(s % 10),
	}
}
