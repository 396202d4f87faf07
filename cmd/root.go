package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"airplane-seating/config"
	"airplane-seating/logging"
	"airplane-seating/prompt"
	"airplane-seating/seating"
	"airplane-seating/tui"
)

const appName = "airplane-seating"

type options struct {
	seed     int64
	logFile  string
	logLevel string
}

type app struct {
	registry *seating.Registry
	svc      *seating.Service
	logger   *slog.Logger
	seed     int64
	close    func() error
}

// Execute builds the command tree and runs it against os.Args.
func Execute(version string, commit string) error {
	return NewRootCmd(version, commit).Execute()
}

func NewRootCmd(version string, commit string) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Airplane seat booking simulator",
		Long:          `Book seats on a 13-row, 6-seat-wide cabin split into First, Business and Economy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			a, err := newApp(cmd, opts, false)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, a.close()) }()

			_, err = tea.NewProgram(tui.New(a.svc, a.registry, a.logger), tea.WithAltScreen()).Run()
			return err
		},
	}

	plainCmd := &cobra.Command{
		Use:   "plain",
		Short: "Book seats with line-by-line prompts",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			a, err := newApp(cmd, opts, true)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, a.close()) }()

			session := prompt.NewSession(a.svc, a.registry, prompt.NewConsole(a.registry), cmd.OutOrStdout(), a.logger)
			return session.Run()
		},
	}

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Print a freshly seeded seating plan and exit",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			a, err := newApp(cmd, opts, false)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, a.close()) }()

			fmt.Fprintln(cmd.OutOrStdout(), prompt.RenderPlan(a.svc.Grid(), a.registry))
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionString(version, commit))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Int64Var(&opts.seed, "seed", 0, "seed for the initial seat occupancy (0 = time based)")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(plainCmd, planCmd, versionCmd)
	return rootCmd
}

func versionString(version string, commit string) string {
	out := fmt.Sprintf("%s %s", appName, version)
	if commit != "none" && commit != "" {
		out += fmt.Sprintf(" (%s)", commit)
	}
	return out + "\n"
}

// newApp resolves config and flags and seeds a fresh grid. With logToStderr,
// logs go to the command's stderr when a level was requested and no log file
// is set.
func newApp(cmd *cobra.Command, opts *options, logToStderr bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("log-level") {
		level, err := config.ParseLevel(opts.logLevel)
		if err != nil {
			return nil, err
		}
		cfg.LogLevel = level
		cfg.LogLevelSet = true
	}

	var fallback io.Writer
	if logToStderr && cfg.LogLevelSet {
		fallback = cmd.ErrOrStderr()
	}

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel, fallback)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	seed := seating.ResolveSeed(cfg.Seed)
	grid := seating.NewGrid()
	grid.Initialize(seating.NewRandomSource(seed))
	available, occupied := grid.Counts()
	logger.Info("grid initialized", "seed", seed, "available", available, "occupied", occupied)

	return &app{
		registry: seating.DefaultRegistry(),
		svc:      seating.NewService(grid, seating.WithLogger(logger)),
		logger:   logger,
		seed:     seed,
		close:    closeLog,
	}, nil
}
