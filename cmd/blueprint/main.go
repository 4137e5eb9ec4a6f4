package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"blueprint/cmd/blueprint/ui"
	"blueprint/internal/config"
	"blueprint/internal/logging"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
	styles ui.Styles
}

func newRootCmd() *cobra.Command {
	a := &app{styles: ui.DefaultStyles()}

	root := &cobra.Command{
		Use:   "blueprint",
		Short: "Classify a birth chart from planetary longitudes",
		Long: `blueprint turns planetary longitudes at a birth instant and at the
derived design instant into a chart: defined centers, type, authority,
profile, definition and incarnation cross.

Longitudes come from the chart file or from the configured ephemeris
program. Design positions fall back to a linear approximation when the
program is unavailable.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logging.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "blueprint.yaml", "Config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		a.classifyCmd(),
		a.designTimeCmd(),
		a.gateCmd(),
		a.channelsCmd(),
		a.gatesCmd(),
		a.configCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", a.configPath, err)
	}

	opts := cfg.Logging.Options()
	opts.Sink = zapcore.AddSync(cmd.ErrOrStderr())
	if _, err := logging.Initialize(opts); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logging.Get(logging.CategoryCLI)
	logging.BootDebug("config loaded",
		zap.String("path", a.configPath),
		zap.Bool("ephemeris_command", cfg.HasEphemerisCommand()),
		zap.Bool("audit", cfg.Audit.Enabled))
	return nil
}

// outputFormat resolves a --format flag against the configured default.
func (a *app) outputFormat(flag string) (string, error) {
	format := flag
	if format == "" {
		format = a.cfg.Output.Format
	}
	if format != "json" && format != "text" {
		return "", fmt.Errorf("invalid format %q (valid: json, text)", format)
	}
	return format, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
