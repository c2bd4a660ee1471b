package cli

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/tickclock/internal/bcd"
	"github.com/mrz1836/tickclock/internal/clock"
	"github.com/mrz1836/tickclock/internal/constants"
	"github.com/mrz1836/tickclock/internal/driver"
	"github.com/mrz1836/tickclock/internal/errors"
	"github.com/mrz1836/tickclock/internal/tui"
)

// defaultSimulateSeconds is how long simulate runs without --ticks or --seconds.
const defaultSimulateSeconds = 60

// SimulateFlags holds flags for the simulate command.
type SimulateFlags struct {
	clockFlags

	// Ticks is the exact number of ticks to feed.
	Ticks uint64
	// Seconds is converted to ticks with the configured frequency.
	Seconds uint64
}

// SimulateAlarm records one alarm that went off during a simulation.
type SimulateAlarm struct {
	// Tick is the 1-based index of the tick that set the alarm off.
	Tick uint64 `json:"tick"`
	Time string `json:"time"`
}

// SimulateResult is the outcome of a simulation.
type SimulateResult struct {
	TicksPerSecond uint16          `json:"ticks_per_second"`
	Ticks          uint64          `json:"ticks"`
	Start          tui.Reading     `json:"start"`
	Final          tui.Reading     `json:"final"`
	TickCount      uint16          `json:"tick_count"`
	Alarms         []SimulateAlarm `json:"alarms"`
}

func newSimulateCmd(globals *GlobalFlags) *cobra.Command {
	flags := &SimulateFlags{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Feed ticks to a clock without waiting",
		Long: `Feed a number of ticks to a clock as fast as possible and report the
final time and every alarm that went off along the way.

Examples:
  tickclock simulate --time 06:59:30 --alarm 07:00 --seconds 60
  tickclock simulate --time 23:59:59 --ticks 100 --ticks-per-second 100
  tickclock simulate --time 00:00 --seconds 86400 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("ticks") && !cmd.Flags().Changed("seconds") {
				flags.Seconds = defaultSimulateSeconds
			}
			return runSimulate(cmd.Context(), cmd.OutOrStdout(), globals, flags, GetLogger())
		},
	}

	addClockFlags(cmd, &flags.clockFlags)
	cmd.Flags().Uint64Var(&flags.Ticks, "ticks", 0, "number of ticks to feed")
	cmd.Flags().Uint64Var(&flags.Seconds, "seconds", 0,
		fmt.Sprintf("number of seconds to simulate (default %d)", defaultSimulateSeconds))
	cmd.MarkFlagsMutuallyExclusive("ticks", "seconds")

	return cmd
}

// AddSimulateCommand adds the simulate command to the root command.
func AddSimulateCommand(rootCmd *cobra.Command, globals *GlobalFlags) {
	rootCmd.AddCommand(newSimulateCmd(globals))
}

func runSimulate(ctx context.Context, w io.Writer, globals *GlobalFlags, flags *SimulateFlags, logger zerolog.Logger) error {
	overrides, err := flags.overrides()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, globals, overrides)
	if err != nil {
		return err
	}
	if len(cfg.Clock.Time) == 0 && !cfg.Clock.SyncHost {
		return errors.NewExitCode2Error(errors.ErrMissingTime)
	}

	result, err := simulate(ctx, func(onAlarm clock.AlarmHandler) (*clock.Clock, error) {
		return buildClock(cfg, driver.SystemWallClock, onAlarm)
	}, flags)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("component", "simulate").
		Uint64("ticks", result.Ticks).
		Int("alarms", len(result.Alarms)).
		Str("final", result.Final.Time).
		Msg("simulation finished")

	out := tui.NewOutput(w, globals.Output)
	if globals.Output == OutputJSON {
		return out.JSON(result)
	}

	tui.CheckNoColor()
	out.Info(fmt.Sprintf("%d ticks at %d ticks per second from %s",
		result.Ticks, result.TicksPerSecond, result.Start.Time))
	for _, a := range result.Alarms {
		out.Alarm(tui.Reading{Time: a.Time, TimeValid: true, Alarm: result.Final.Alarm, AlarmEnabled: true})
	}
	out.Reading(result.Final)
	if result.TickCount > 0 {
		out.Info(fmt.Sprintf("%d of %d ticks into the next second", result.TickCount, result.TicksPerSecond))
	}
	return nil
}

// simulate builds a clock with newClock and feeds it the requested ticks.
// It checks ctx once per simulated second.
func simulate(
	ctx context.Context,
	newClock func(clock.AlarmHandler) (*clock.Clock, error),
	flags *SimulateFlags,
) (*SimulateResult, error) {
	result := &SimulateResult{Alarms: []SimulateAlarm{}}

	var tick uint64
	c, err := newClock(func(c *clock.Clock) {
		var now [constants.TimeDigits]uint8
		c.GetTime(now[:])
		result.Alarms = append(result.Alarms, SimulateAlarm{Tick: tick, Time: bcd.Format(now[:])})
	})
	if err != nil {
		return nil, err
	}

	result.TicksPerSecond = c.TicksPerSecond()
	result.Start = readingFromClock(c)
	result.Ticks = flags.Ticks
	if flags.Seconds > 0 {
		if flags.Seconds > math.MaxUint64/uint64(result.TicksPerSecond) {
			return nil, errors.NewExitCode2Error(errors.Wrapf(errors.ErrInvalidDuration,
				"--seconds %d is too large at %d ticks per second", flags.Seconds, result.TicksPerSecond))
		}
		result.Ticks = flags.Seconds * uint64(result.TicksPerSecond)
	}
	ticks := result.Ticks

	for tick = 1; tick <= ticks; tick++ {
		c.NewTick()
		if c.TickCount() == 0 {
			if err := ctx.Err(); err != nil {
				return nil, errors.Wrap(err, "simulation canceled")
			}
		}
	}

	result.Final = readingFromClock(c)
	result.TickCount = c.TickCount()
	return result, nil
}
