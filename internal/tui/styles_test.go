package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSemanticColors(t *testing.T) {
	for _, c := range []struct {
		name  string
		light string
		dark  string
		got   [2]string
	}{
		{"primary", "#0087AF", "#00D7FF", [2]string{ColorPrimary.Light, ColorPrimary.Dark}},
		{"success", "#008700", "#00FF87", [2]string{ColorSuccess.Light, ColorSuccess.Dark}},
		{"warning", "#AF8700", "#FFD700", [2]string{ColorWarning.Light, ColorWarning.Dark}},
		{"error", "#AF0000", "#FF5F5F", [2]string{ColorError.Light, ColorError.Dark}},
		{"muted", "#585858", "#6C6C6C", [2]string{ColorMuted.Light, ColorMuted.Dark}},
	} {
		assert.Equal(t, [2]string{c.light, c.dark}, c.got, c.name)
	}
}

func TestNewOutputStyles(t *testing.T) {
	styles := NewOutputStyles()
	assert.NotNil(t, styles)
	assert.True(t, styles.Clock.GetBold())
	assert.True(t, styles.Alarm.GetBold())
}

func TestHasColorSupport(t *testing.T) {
	t.Run("NO_COLOR set", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		assert.False(t, HasColorSupport())
	})

	t.Run("dumb terminal", func(t *testing.T) {
		t.Setenv("TERM", "dumb")
		assert.False(t, HasColorSupport())
	})
}

func TestCheckNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.NotPanics(t, CheckNoColor)
}
