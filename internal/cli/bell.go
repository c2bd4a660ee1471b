package cli

import (
	"fmt"
	"io"
	"os"
)

// EmitBell writes the BEL character to stdout to trigger the terminal bell.
// This works on most terminals including iTerm2, Terminal.app, tmux, etc.
func EmitBell() {
	EmitBellTo(os.Stdout)
}

// EmitBellTo writes the BEL character to the specified writer.
func EmitBellTo(w io.Writer) {
	_, _ = fmt.Fprint(w, "\a") // BEL character (ASCII 7)
}

// RingIfEnabled emits a bell to w when enabled is true and the output is
// meant for a person. JSON consumers never get a raw BEL in their stream.
func RingIfEnabled(w io.Writer, enabled bool, outputFormat string) {
	if enabled && outputFormat != OutputJSON {
		EmitBellTo(w)
	}
}
