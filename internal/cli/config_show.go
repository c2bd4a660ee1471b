package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/tickclock/internal/config"
	"github.com/mrz1836/tickclock/internal/tui"
)

// newConfigCmd creates the 'config' parent command.
func newConfigCmd(globals *GlobalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect tickclock configuration",
		Long: `Inspect tickclock configuration.

Subcommands:
  show    Display the effective configuration

Example:
  tickclock config show`,
	}

	cmd.AddCommand(newConfigShowCmd(globals))
	return cmd
}

// AddConfigCommand adds the config command to the root command.
func AddConfigCommand(rootCmd *cobra.Command, globals *GlobalFlags) {
	rootCmd.AddCommand(newConfigCmd(globals))
}

// newConfigShowCmd creates the 'config show' subcommand.
func newConfigShowCmd(globals *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective tickclock configuration after merging, in order of
precedence:
  - TICKCLOCK_* environment variables
  - the file given with --config, or .tickclock/config.yaml
  - ~/.tickclock/config.yaml (or $TICKCLOCK_HOME/config.yaml)
  - built-in defaults

Examples:
  tickclock config show                 # YAML with the files that were read
  tickclock config show --output json   # JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), globals)
		},
	}
}

// runConfigShow executes the config show command.
func runConfigShow(ctx context.Context, w io.Writer, globals *GlobalFlags) error {
	// Check cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	cfg, err := loadConfig(ctx, globals, nil)
	if err != nil {
		return err
	}

	if globals.Output == OutputJSON {
		return tui.NewJSONOutput(w).JSON(cfg)
	}

	for _, src := range configSources(globals) {
		state := "not found"
		if fileExists(src.path) {
			state = "loaded"
		}
		_, _ = fmt.Fprintf(w, "# %s: %s (%s)\n", src.name, src.path, state)
	}

	return outputYAML(w, cfg)
}

type configSource struct {
	name string
	path string
}

// configSources lists the files Load reads, lowest precedence first.
func configSources(globals *GlobalFlags) []configSource {
	var sources []configSource
	if path, err := config.GlobalConfigPath(); err == nil {
		sources = append(sources, configSource{name: "global", path: path})
	}
	if globals.Config != "" {
		return append(sources, configSource{name: "file", path: globals.Config})
	}
	return append(sources, configSource{name: "project", path: config.ProjectConfigPath()})
}

func outputYAML(w io.Writer, cfg *config.Config) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
