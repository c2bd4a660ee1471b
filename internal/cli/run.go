package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/tickclock/internal/clock"
	"github.com/mrz1836/tickclock/internal/config"
	"github.com/mrz1836/tickclock/internal/constants"
	"github.com/mrz1836/tickclock/internal/driver"
	"github.com/mrz1836/tickclock/internal/errors"
	"github.com/mrz1836/tickclock/internal/metrics"
	"github.com/mrz1836/tickclock/internal/signal"
	"github.com/mrz1836/tickclock/internal/tui"
)

// RunFlags holds flags for the run command.
type RunFlags struct {
	clockFlags

	// Sync seeds the clock from the host time of day.
	Sync bool
	// Duration stops the clock after this long. Zero runs until interrupted.
	Duration time.Duration
	// MetricsAddr enables the metrics server on this address.
	MetricsAddr string
}

// runDeps are the parts of run that tests replace.
type runDeps struct {
	ticks driver.TickSource
	wall  driver.WallClock
}

func defaultRunDeps() runDeps {
	return runDeps{
		ticks: driver.SystemTickSource,
		wall:  driver.SystemWallClock,
	}
}

func newRunCmd(globals *GlobalFlags) *cobra.Command {
	flags := &RunFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the clock in real time",
		Long: `Run a clock driven by real time. The time is printed every second and
the terminal bell rings when the alarm goes off.

Send SIGHUP to print the current status; SIGINT or SIGTERM stop the clock.

Examples:
  tickclock run --sync --alarm 07:00
  tickclock run --time 12:00:00 --duration 90s
  tickclock run --sync --metrics-addr :9101 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClock(cmd.Context(), cmd.OutOrStdout(), globals, flags, GetLogger(), defaultRunDeps())
		},
	}

	addClockFlags(cmd, &flags.clockFlags)
	cmd.Flags().BoolVar(&flags.Sync, "sync", false, "start from the host time of day")
	cmd.Flags().DurationVarP(&flags.Duration, "duration", "d", 0, "stop after this long (0 runs until interrupted)")
	cmd.Flags().StringVar(&flags.MetricsAddr, "metrics-addr", "",
		fmt.Sprintf("serve Prometheus metrics on this address (e.g. %s)", constants.DefaultMetricsAddress))
	cmd.MarkFlagsMutuallyExclusive("time", "sync")

	return cmd
}

// AddRunCommand adds the run command to the root command.
func AddRunCommand(rootCmd *cobra.Command, globals *GlobalFlags) {
	rootCmd.AddCommand(newRunCmd(globals))
}

// lockedWriter serializes writes from the ticking goroutine and the status loop.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

func (f *RunFlags) overrides() (*config.Config, error) {
	if f.Duration < 0 {
		return nil, errors.NewExitCode2Error(errors.Wrapf(errors.ErrInvalidDuration, "--duration %s", f.Duration))
	}

	o, err := f.clockFlags.overrides()
	if err != nil {
		return nil, err
	}
	o.Clock.SyncHost = f.Sync
	if f.MetricsAddr != "" {
		o.Metrics.Enabled = true
		o.Metrics.Address = f.MetricsAddr
	}
	return o, nil
}

//nolint:funlen // Wiring of driver, signals and metrics server reads best in one place
func runClock(
	ctx context.Context,
	w io.Writer,
	globals *GlobalFlags,
	flags *RunFlags,
	logger zerolog.Logger,
	deps runDeps,
) error {
	overrides, err := flags.overrides()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, globals, overrides)
	if err != nil {
		return err
	}

	sessionID := uuid.NewString()
	logger = logger.With().Str("session_id", sessionID).Logger()

	lw := &lockedWriter{w: w}
	out := tui.NewOutput(lw, globals.Output)
	if globals.Output != OutputJSON {
		tui.CheckNoColor()
	}

	registry := prometheus.NewRegistry()
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(registry)
	}

	c, err := buildClock(cfg, deps.wall, func(c *clock.Clock) {
		r := readingFromClock(c)
		m.AlarmFired()
		logger.Info().
			Str("component", "alarm").
			Str("alarm", r.Alarm).
			Str("time", r.Time).
			Msg("alarm fired")
		out.Alarm(r)
		RingIfEnabled(lw, cfg.Output.Bell, globals.Output)
	})
	if err != nil {
		return err
	}

	d := driver.New(c,
		driver.WithTickSource(deps.ticks),
		driver.WithLogger(logger),
		driver.WithMetrics(m),
		driver.WithObserver(func(s driver.Snapshot) {
			out.Reading(readingFromSnapshot(s))
		}),
	)

	start := d.Snapshot()
	m.SetState(start.TimeValid, start.AlarmEnabled)
	out.Reading(readingFromSnapshot(start))

	sig := signal.NewHandler(ctx)
	defer sig.Stop()

	runCtx := sig.Context()
	if flags.Duration > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, flags.Duration)
		defer cancel()
	}

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		return d.Run(gctx)
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-sig.StatusRequests():
				printStatus(out, d, sessionID)
				logger.Info().Str("component", "status").Msg("status requested")
			}
		}
	})

	if cfg.Metrics.Enabled {
		srv := &http.Server{
			Addr:              cfg.Metrics.Address,
			Handler:           metricsMux(registry),
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			logger.Info().Str("component", "metrics").Str("address", srv.Addr).Msg("metrics server listening")
			if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
				return errors.Wrap(err, "metrics server failed")
			}
			return nil
		})

		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.MetricsShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx) //nolint:contextcheck // parent is already canceled
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	select {
	case <-sig.Interrupted():
		out.Warning("interrupted")
	default:
	}

	final := d.Snapshot()
	if final.TimeValid {
		out.Success("clock stopped at " + readingFromSnapshot(final).Time)
	} else {
		out.Success("clock stopped")
	}
	logger.Info().Msg("clock stopped")
	return nil
}

func metricsMux(g prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(g))
	return mux
}

// printStatus reports the current clock state in response to SIGHUP.
func printStatus(out tui.Output, d *driver.Driver, sessionID string) {
	out.Info(fmt.Sprintf("session %s, %s per tick", sessionID, d.Period()))
	out.Reading(readingFromSnapshot(d.Snapshot()))
}
