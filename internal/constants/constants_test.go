package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDigitConstants(t *testing.T) {
	assert.Equal(t, 6, TimeDigits)
	assert.Equal(t, 4, AlarmDigits)
	assert.Less(t, AlarmDigits, TimeDigits, "alarm has no seconds")
}

func TestClockDefaults(t *testing.T) {
	t.Run("default frequency fits in uint16", func(t *testing.T) {
		assert.GreaterOrEqual(t, DefaultTicksPerSecond, 1)
		assert.LessOrEqual(t, DefaultTicksPerSecond, MaxTicksPerSecond)
	})

	t.Run("metrics shutdown is bounded", func(t *testing.T) {
		assert.LessOrEqual(t, MetricsShutdownTimeout, 30*time.Second)
	})
}

func TestLogRotationConstants(t *testing.T) {
	assert.Positive(t, LogMaxSizeMB)
	assert.Positive(t, LogMaxBackups)
	assert.Positive(t, LogMaxAgeDays)
	assert.Equal(t, "tickclock.log", CLILogFileName)
}
