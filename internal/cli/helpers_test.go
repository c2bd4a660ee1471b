package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tickclock/internal/constants"
	"github.com/mrz1836/tickclock/internal/driver"
)

// isolateHome points TICKCLOCK_HOME at a temp dir and runs the test from an
// empty project dir. It returns both.
func isolateHome(t *testing.T) (home, project string) {
	t.Helper()
	home = t.TempDir()
	project = t.TempDir()
	t.Setenv(constants.HomeEnvVar, home)
	t.Chdir(project)
	return home, project
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// executeRoot runs the full command tree with args and returns everything
// written to stdout.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{Version: "test"})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	CloseLogFile()
	return buf.String(), err
}

// manualTicks is a driver.TickSource fed by the test.
type manualTicks struct {
	ch chan time.Time
}

func newManualTicks() *manualTicks {
	return &manualTicks{ch: make(chan time.Time)}
}

func (m *manualTicks) NewTicker(time.Duration) (driver.Ticker, <-chan time.Time) {
	return nopTicker{}, m.ch
}

// send blocks until the driver has received n ticks.
func (m *manualTicks) send(n int) {
	for i := 0; i < n; i++ {
		m.ch <- time.Time{}
	}
}

type nopTicker struct{}

func (nopTicker) Stop() {}

type fixedWall time.Time

func (f fixedWall) Now() time.Time {
	return time.Time(f)
}
