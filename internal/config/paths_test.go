package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tickclock/internal/constants"
)

func TestGlobalConfigDir_HomeOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv(constants.HomeEnvVar, home)

	dir, err := GlobalConfigDir()
	require.NoError(t, err)
	assert.Equal(t, home, dir)

	path, err := GlobalConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.yaml"), path)
}

func TestGlobalConfigDir_UserHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(constants.HomeEnvVar, "")
	t.Setenv("HOME", home)

	dir, err := GlobalConfigDir()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".tickclock"), dir)
}

func TestProjectConfigPath(t *testing.T) {
	assert.Equal(t, filepath.Join(".tickclock", "config.yaml"), ProjectConfigPath())
}
