// Package clock implements a digital wall clock that advances only on ticks.
//
// Time is kept as six BCD digits (HH MM SS) and the alarm as four (HH MM),
// one decimal digit per element, most significant first. A Clock has no
// notion of real time: it moves forward when NewTick is called, and
// TicksPerSecond calls make one second.
//
// A Clock is not safe for concurrent use. Callers that tick from one
// goroutine and configure from another must serialize access themselves
// (the driver package does this).
package clock

import (
	"github.com/mrz1836/tickclock/internal/constants"
	"github.com/mrz1836/tickclock/internal/errors"
)

// Positions in the time buffer.
const (
	hourTens = iota
	hourUnits
	minuteTens
	minuteUnits
	secondTens
	secondUnits
)

// digitLimits is the largest value each time position holds before it
// carries into the next more significant one. The hour pair is further
// bounded by the 24:00 wrap in advance.
//
//nolint:gochecknoglobals // Read-only lookup table
var digitLimits = [constants.TimeDigits]uint8{2, 9, 5, 9, 5, 9}

// AlarmHandler is called when the alarm goes off. It runs synchronously
// inside NewTick, so it must return quickly and must not tick the clock.
type AlarmHandler func(c *Clock)

// Clock holds the time, the alarm and the tick counter of one clock.
// The zero value is not usable; create clocks with New.
type Clock struct {
	time  [constants.TimeDigits]uint8
	alarm [constants.AlarmDigits]uint8

	ticksPerSecond uint16
	tickCount      uint16

	timeValid    bool
	alarmEnabled bool
	// alarmFired latches once the alarm has gone off for the current
	// matching minute and clears as soon as the minute stops matching.
	alarmFired bool

	onAlarm AlarmHandler
}

// New creates a clock that counts one second every ticksPerSecond ticks.
// onAlarm may be nil. The time starts at 00:00:00 and is reported as
// invalid until SetupTime is called; the alarm starts disabled.
func New(ticksPerSecond uint16, onAlarm AlarmHandler) (*Clock, error) {
	if ticksPerSecond == 0 {
		return nil, errors.ErrInvalidTicksPerSecond
	}
	return &Clock{
		ticksPerSecond: ticksPerSecond,
		onAlarm:        onAlarm,
	}, nil
}

// TicksPerSecond returns the tick frequency the clock was created with.
func (c *Clock) TicksPerSecond() uint16 {
	return c.ticksPerSecond
}

// TickCount returns the ticks received since the last whole second.
func (c *Clock) TickCount() uint16 {
	return c.tickCount
}

// GetTime copies the current time digits into dst and reports whether the
// time has been set. At most six digits are copied; a shorter dst receives
// only the leading (most significant) ones.
func (c *Clock) GetTime(dst []uint8) bool {
	copy(dst, c.time[:])
	return c.timeValid
}

// SetupTime sets the current time from up to six digits. Missing trailing
// positions are set to zero, so {1, 2, 3, 4} means 12:34:00. The tick
// counter is left alone and the alarm is not evaluated: an alarm only goes
// off when ticks move the clock onto the alarm minute.
//
// On error the clock is not modified.
func (c *Clock) SetupTime(digits []uint8) error {
	var t [constants.TimeDigits]uint8
	if err := loadDigits(t[:], digits); err != nil {
		return err
	}
	if !validHour(t[hourTens], t[hourUnits]) || t[minuteTens] > digitLimits[minuteTens] ||
		t[secondTens] > digitLimits[secondTens] {
		return errors.Wrapf(errors.ErrTimeOutOfRange, "%d%d:%d%d:%d%d",
			t[0], t[1], t[2], t[3], t[4], t[5])
	}

	c.time = t
	c.timeValid = true
	if !c.alarmMatches() {
		c.alarmFired = false
	}
	return nil
}

// NewTick counts one tick. Every TicksPerSecond ticks the time advances one
// second, wrapping from 23:59:59 to 00:00:00, and the alarm is checked.
func (c *Clock) NewTick() {
	c.tickCount++
	if c.tickCount < c.ticksPerSecond {
		return
	}
	c.tickCount = 0
	c.advance()
	c.checkAlarm()
}

// SetupAlarm sets the alarm from up to four digits (HH MM), zero-padding
// missing positions, and enables it. An alarm that already went off this
// minute may go off again.
//
// On error the clock is not modified.
func (c *Clock) SetupAlarm(digits []uint8) error {
	var a [constants.AlarmDigits]uint8
	if err := loadDigits(a[:], digits); err != nil {
		return err
	}
	if !validHour(a[hourTens], a[hourUnits]) || a[minuteTens] > digitLimits[minuteTens] {
		return errors.Wrapf(errors.ErrAlarmOutOfRange, "%d%d:%d%d", a[0], a[1], a[2], a[3])
	}

	c.alarm = a
	c.alarmEnabled = true
	c.alarmFired = false
	return nil
}

// GetAlarm copies the alarm digits into dst and reports whether the alarm
// is enabled. Passing a nil or empty dst only queries the enabled state.
func (c *Clock) GetAlarm(dst []uint8) bool {
	copy(dst, c.alarm[:])
	return c.alarmEnabled
}

// DisableAlarm turns the alarm off. The stored alarm digits are kept and
// still reported by GetAlarm.
func (c *Clock) DisableAlarm() {
	c.alarmEnabled = false
	c.alarmFired = false
}

// advance adds one second, carrying from the seconds units towards the hour
// tens and stopping at the first position that does not overflow.
func (c *Clock) advance() {
	for i := secondUnits; i >= hourTens; i-- {
		if c.time[i] < digitLimits[i] {
			c.time[i]++
			break
		}
		c.time[i] = 0
	}

	if c.time[hourTens] == 2 && c.time[hourUnits] == 4 {
		c.time[hourTens] = 0
		c.time[hourUnits] = 0
	}
}

func (c *Clock) checkAlarm() {
	if !c.alarmMatches() {
		c.alarmFired = false
		return
	}
	if c.alarmFired {
		return
	}

	c.alarmFired = true
	if c.onAlarm != nil {
		c.onAlarm(c)
	}
}

func (c *Clock) alarmMatches() bool {
	return c.alarmEnabled && [constants.AlarmDigits]uint8(c.time[:constants.AlarmDigits]) == c.alarm
}

// loadDigits copies src into dst after checking its length and that every
// element is a decimal digit. dst must be zeroed by the caller.
func loadDigits(dst, src []uint8) error {
	if len(src) > len(dst) {
		return errors.Wrapf(errors.ErrTooManyDigits, "got %d, want at most %d", len(src), len(dst))
	}
	for i, d := range src {
		if d > 9 {
			return errors.Wrapf(errors.ErrDigitOutOfRange, "digit %d at position %d", d, i)
		}
	}
	copy(dst, src)
	return nil
}

func validHour(tens, units uint8) bool {
	return tens*10+units <= 23
}
