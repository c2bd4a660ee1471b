package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitBellTo(t *testing.T) {
	var buf bytes.Buffer

	EmitBellTo(&buf)

	assert.Equal(t, "\a", buf.String(), "Should write BEL character")
}

func TestRingIfEnabled(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		format  string
		want    string
	}{
		{"enabled text", true, OutputText, "\a"},
		{"disabled text", false, OutputText, ""},
		{"enabled json", true, OutputJSON, ""},
		{"disabled json", false, OutputJSON, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			RingIfEnabled(&buf, tt.enabled, tt.format)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
