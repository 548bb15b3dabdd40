// Package cmd provides the command-line interface for sigsleep.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/connorhough/sigsleep/internal/config"
	"github.com/connorhough/sigsleep/internal/duration"
	"github.com/connorhough/sigsleep/internal/signals"
	"github.com/connorhough/sigsleep/internal/sleep"
	"github.com/connorhough/sigsleep/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ExitUsage is returned for malformed command lines.
const ExitUsage = 2

// UsageError marks errors caused by the command line rather than by sleeping.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ProgramName returns the name sigsleep was invoked as.
func ProgramName() string {
	return filepath.Base(os.Args[0])
}

type app struct {
	v       *viper.Viper
	sleeper *sleep.Sleeper
	cfgFile string
	code    int
}

func newApp(s *sleep.Sleeper) *app {
	return &app{
		v:       config.New(strconv.Itoa(int(signals.Default))),
		sleeper: s,
	}
}

// Execute runs sigsleep with args and returns the exit code. The error, if
// any, has not been printed yet.
func Execute(ctx context.Context, args []string) (int, error) {
	a := newApp(sleep.New(os.Stdout))
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	return a.execute(ctx, rootCmd)
}

func (a *app) execute(ctx context.Context, rootCmd *cobra.Command) (int, error) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprint(rootCmd.ErrOrStderr(), rootCmd.UsageString())
			return ExitUsage, err
		}
		return sleep.ExitFailure, err
	}
	return a.code, nil
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   ProgramName() + " DURATION...",
		Short: "Sleep, printing the time left whenever a signal arrives",
		Long: `Sleep for the sum of the given durations. Each DURATION is a number with an
optional suffix: s for seconds (the default), m for minutes, h for hours or
d for days. "inf" sleeps forever.

While sleeping, delivery of the watched signal prints how much time is left
without ending the sleep. Interrupting the sleep exits with status 130.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &UsageError{Err: duration.ErrMissing}
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           version.Version,
		PersistentPreRunE: a.initConfig,
		RunE:              a.run,
	}
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	rootCmd.Flags().StringP("signal", "s", strconv.Itoa(int(signals.Default)),
		fmt.Sprintf("signal number that requests a status line, %s unless configured", signals.Name(signals.Default)))
	rootCmd.Flags().BoolP("version", "v", false, "print the program name and version, then exit")
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default locations: $XDG_CONFIG_HOME/sigsleep/config.yaml or ~/.config/sigsleep/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")

	return rootCmd
}

// initConfig reads in config file and ENV variables if set, binds flags and
// installs the logger.
func (a *app) initConfig(cmd *cobra.Command, args []string) error {
	if err := config.Load(a.v, a.cfgFile); err != nil {
		return err
	}
	if err := a.v.BindPFlag(config.KeySignal, cmd.Flags().Lookup("signal")); err != nil {
		return err
	}
	if err := a.v.BindPFlag(config.KeyLogLevel, cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}

	settings := config.Resolve(a.v)
	level, err := config.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	slog.Debug("Starting", "version", version.String(), "config", a.v.ConfigFileUsed())
	return nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	total, err := duration.Sum(args)
	if err != nil {
		return &UsageError{Err: err}
	}

	settings := config.Resolve(a.v)
	sig, err := signals.Parse(settings.Signal)
	if err != nil {
		return &UsageError{Err: fmt.Errorf("invalid signal: %w", err)}
	}

	a.sleeper.Out = cmd.OutOrStdout()
	a.code, err = a.sleeper.Run(cmd.Context(), total, sig)
	return err
}
