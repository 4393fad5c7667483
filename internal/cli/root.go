package cli

import (
	"fmt"

	"github.com/on-the-ground/defer_ive_go/internal/demo"
	"github.com/on-the-ground/defer_ive_go/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	File    string
	Fail    bool
	Panic   bool
	Verbose bool

	logger *zap.Logger
}

// NewRootCommand creates the root command for the guarddemo CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "guarddemo",
		Short:         "Append a greeting to a file under scope guards",
		Long:          "Runs the always, on-error and on-success guard examples against a file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = logging.NewConsole(cmd.ErrOrStderr(), opts.Verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync(opts.logger)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.File, "file", "f", "output.txt", "file the greeting is appended to")
	cmd.PersistentFlags().BoolVar(&opts.Fail, "fail", false, "simulate a short write")
	cmd.PersistentFlags().BoolVar(&opts.Panic, "panic", false, "panic in the middle of the write")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log guard decisions to stderr")

	cmd.AddCommand(newScenarioCommand(opts, demo.Basic, "Close the file with an always-guard"))
	cmd.AddCommand(newScenarioCommand(opts, demo.Error, "Also report failures with an error-guard"))
	cmd.AddCommand(newScenarioCommand(opts, demo.Return, "Also report success with a success-guard"))
	cmd.AddCommand(newAllCommand(opts))

	return cmd
}

func newScenarioCommand(opts *RootOptions, s demo.Scenario, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(s),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, opts, s)
		},
	}
}

func newAllCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every scenario in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs error
			for _, s := range demo.Scenarios {
				errs = multierr.Append(errs, runScenario(cmd, opts, s))
			}
			return errs
		},
	}
}

func runScenario(cmd *cobra.Command, opts *RootOptions, s demo.Scenario) error {
	err := demo.Run(s, demo.Config{
		Path:   opts.File,
		Fail:   opts.Fail,
		Panic:  opts.Panic,
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Logger: opts.logger.With(zap.String("scenario", string(s))),
	})
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: failed: %v\n", s, err)
		return fmt.Errorf("%s: %w", s, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", s)
	return nil
}
