// Package cli implements the cobra command tree for profiler.
package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pakomoretlwe/profiler/internal/config"
	"github.com/pakomoretlwe/profiler/internal/logging"
)

// ExitError wraps an error with a specific process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Execute builds the command tree, runs it, and returns the exit code.
func Execute() int {
	cmd := NewRootCommand()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)

		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}

		return 1
	}

	return 0
}

// NewRootCommand constructs the top-level cobra.Command with all
// subcommands attached.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "profiler",
		Short: "Serve an interactive professional profile dashboard",
		Long: `profiler serves a single-page professional profile: biography, skill
charts, a machine-learning model comparison, a synthetic emissions
prediction chart, and a publications table that visitors can upload and
filter by keyword.

The filter command runs the same upload parser and keyword filter from
the command line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd, cfgFile)
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}

			logger := logging.Setup(cfg)

			ctx := cmd.Context()
			ctx = config.NewContext(ctx, cfg)
			ctx = logging.NewContext(ctx, logger)
			cmd.SetContext(ctx)

			logger.Debug().
				Str("logLevel", cfg.LogLevel).
				Str("logFormat", cfg.LogFormat).
				Str("configFile", cfg.ConfigFile).
				Msg("configuration loaded")

			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: .profiler.yaml)")
	pf.String("log-level", config.LogLevelInfo, "log level: debug, info, warn, error")
	pf.String("log-format", config.LogFormatText, "log format: text, json")
	pf.BoolP("quiet", "q", false, "suppress non-essential output")

	// Flag parsing errors return exit code 2.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Err: err}
	})

	cmd.AddCommand(
		newServeCommand(),
		newFilterCommand(),
		newVersionCommand(),
	)

	return cmd
}

// registerLimitFlags adds the upload limit flags shared by serve and filter.
func registerLimitFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int64("max-upload-bytes", config.DefaultMaxUploadBytes, "largest accepted upload in bytes")
	f.Int("max-rows", config.DefaultMaxRows, "largest accepted number of data rows")
}
