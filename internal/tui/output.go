package tui

import (
	"encoding/json"
	"fmt"
	"io"
)

// Unset is shown in place of a time that was never configured.
const Unset = "--:--:--"

// Reading is one observation of a clock, already formatted for display.
type Reading struct {
	Time         string `json:"time"`
	TimeValid    bool   `json:"time_valid"`
	Alarm        string `json:"alarm,omitempty"`
	AlarmEnabled bool   `json:"alarm_enabled"`
}

// Output provides methods for structured output to a terminal.
type Output interface {
	// Success prints a success message.
	Success(msg string)
	// Error prints an error message.
	Error(err error)
	// Warning prints a warning message.
	Warning(msg string)
	// Info prints an informational message.
	Info(msg string)
	// Reading prints the current clock state.
	Reading(r Reading)
	// Alarm announces that the alarm went off.
	Alarm(r Reading)
	// JSON outputs a value as formatted JSON.
	JSON(v any) error
}

// TTYOutput provides styled output for terminal displays.
type TTYOutput struct {
	w      io.Writer
	styles *OutputStyles
}

// NewTTYOutput creates a new TTYOutput.
func NewTTYOutput(w io.Writer) *TTYOutput {
	return &TTYOutput{
		w:      w,
		styles: NewOutputStyles(),
	}
}

// Success prints a success message.
func (o *TTYOutput) Success(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Success.Render("✓ "+msg))
}

// Error prints an error message.
func (o *TTYOutput) Error(err error) {
	_, _ = fmt.Fprintln(o.w, o.styles.Error.Render("✗ "+err.Error()))
}

// Warning prints a warning message.
func (o *TTYOutput) Warning(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Warning.Render("⚠ "+msg))
}

// Info prints an informational message.
func (o *TTYOutput) Info(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Info.Render("ℹ "+msg))
}

// Reading prints the time, followed by the alarm when one is set.
func (o *TTYOutput) Reading(r Reading) {
	line := o.styles.Dim.Render(Unset)
	if r.TimeValid {
		line = o.styles.Clock.Render(r.Time)
	}
	if r.AlarmEnabled {
		line += "  " + o.styles.Dim.Render("alarm "+r.Alarm)
	}
	_, _ = fmt.Fprintln(o.w, line)
}

// Alarm prints the alarm announcement.
func (o *TTYOutput) Alarm(r Reading) {
	_, _ = fmt.Fprintln(o.w, o.styles.Alarm.Render(fmt.Sprintf("⏰ alarm %s (time %s)", r.Alarm, r.Time)))
}

// JSON outputs a value as formatted JSON.
func (o *TTYOutput) JSON(v any) error {
	return encodeIndented(o.w, v)
}

// JSONOutput writes machine-readable output. Clock events are written as
// one JSON object per line.
type JSONOutput struct {
	w io.Writer
}

// NewJSONOutput creates a new JSONOutput.
func NewJSONOutput(w io.Writer) *JSONOutput {
	return &JSONOutput{w: w}
}

// Success is a no-op for JSON output.
func (o *JSONOutput) Success(_ string) {}

// Error outputs the error as JSON.
func (o *JSONOutput) Error(err error) {
	_ = o.event(struct {
		Error string `json:"error"`
	}{err.Error()})
}

// Warning is a no-op for JSON output.
func (o *JSONOutput) Warning(_ string) {}

// Info is a no-op for JSON output.
func (o *JSONOutput) Info(_ string) {}

// Reading writes a "time" event.
func (o *JSONOutput) Reading(r Reading) {
	_ = o.event(clockEvent{Event: "time", Reading: r})
}

// Alarm writes an "alarm" event.
func (o *JSONOutput) Alarm(r Reading) {
	_ = o.event(clockEvent{Event: "alarm", Reading: r})
}

// JSON outputs a value as formatted JSON.
func (o *JSONOutput) JSON(v any) error {
	return encodeIndented(o.w, v)
}

type clockEvent struct {
	Event string `json:"event"`
	Reading
}

func (o *JSONOutput) event(v any) error {
	if err := json.NewEncoder(o.w).Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func encodeIndented(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// NewOutput creates the appropriate output based on format.
func NewOutput(w io.Writer, format string) Output {
	if format == "json" {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}
