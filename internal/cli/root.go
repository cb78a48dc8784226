// testidcheck - Test ID coverage checker for JSX/TSX sources
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/testidcheck

// Package cli provides the Cobra-based command line interface for testidcheck.
// The root command runs a check; init writes a starter configuration and
// version prints build information.
package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	apperrors "github.com/ariel-frischer/testidcheck/internal/errors"
)

// checkOptions holds the root command flags.
type checkOptions struct {
	configPath string
	dir        string
	format     string
	fix        bool
	yes        bool
	strict     bool
	jobs       int
	noColor    bool
	noProgress bool
	debug      bool
}

// NewRootCmd builds the testidcheck command tree.
func NewRootCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "testidcheck --config <path>",
		Short: "Find interactive elements missing test IDs",
		Long: `testidcheck scans JSX/TSX sources for interactive elements that are
missing a test identification attribute such as testID.

Violations are reported as colored text or JSON lines. With autoFix
enabled (or --fix) a generated ID is inserted after you confirm.

Source: https://github.com/ariel-frischer/testidcheck`,
		Example: `  # Check the directory configured in testid.json
  testidcheck --config testid.json

  # Machine-readable output for CI, failing when violations remain
  testidcheck -c testid.json --format json --strict

  # Insert missing IDs without prompting
  testidcheck -c testid.yml --fix --yes`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return apperrors.NewArgumentErrorWithUsage(err.Error(), c.UseLine(), "See --help for the available flags")
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to config file (JSON or YAML)")
	flags.StringVar(&opts.dir, "dir", "", "Directory to check (overrides directoryToCheck)")
	flags.StringVar(&opts.format, "format", "", "Output format: text or json (overrides outputFormat)")
	flags.BoolVar(&opts.fix, "fix", false, "Insert missing attributes (overrides autoFix)")
	flags.BoolVarP(&opts.yes, "yes", "y", false, "Apply fixes without the confirmation prompt")
	flags.BoolVar(&opts.strict, "strict", false, "Exit with code 2 when violations remain")
	flags.IntVarP(&opts.jobs, "jobs", "j", 1, "Number of files analyzed in parallel")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&opts.noProgress, "no-progress", false, "Disable the progress spinner")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "Enable debug logging")

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command. Errors other than exit codes are printed
// to stderr before returning.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := NewRootCmd()
	err := cmd.ExecuteContext(ctx)
	if err != nil && !isExitError(err) {
		apperrors.FprintError(cmd.ErrOrStderr(), err)
	}
	return err
}
