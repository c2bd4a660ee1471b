package bcd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tickclock/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []uint8
	}{
		{"hh:mm:ss", "12:34:56", []uint8{1, 2, 3, 4, 5, 6}},
		{"hh:mm", "07:05", []uint8{0, 7, 0, 5}},
		{"six digits", "235959", []uint8{2, 3, 5, 9, 5, 9}},
		{"four digits", "0000", []uint8{0, 0, 0, 0}},
		{"surrounding space", "  08:00 ", []uint8{0, 8, 0, 0}},
		{"shape only, range is not checked", "99:99", []uint8{9, 9, 9, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{
		"",
		"1",
		"12345",
		"1234567",
		"7:05",
		"12:34:56:00",
		"12::34",
		"ab:cd",
		"12:3x",
		"12-34",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.ErrorIs(t, err, errors.ErrInvalidTimeFormat)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "12:34:56", Format([]uint8{1, 2, 3, 4, 5, 6}))
	assert.Equal(t, "07:05", Format([]uint8{0, 7, 0, 5}))
	assert.Equal(t, "1", Format([]uint8{1}))
	assert.Empty(t, Format(nil))
}

func TestParseFormat_RoundTrip(t *testing.T) {
	digits, err := Parse("23:59:01")
	require.NoError(t, err)
	assert.Equal(t, "23:59:01", Format(digits))
}

func TestFromTime(t *testing.T) {
	ts := time.Date(2024, 6, 15, 9, 41, 7, 500, time.UTC)

	got := FromTime(ts)

	assert.Equal(t, [6]uint8{0, 9, 4, 1, 0, 7}, got)
	assert.Equal(t, "09:41:07", Format(got[:]))
}
