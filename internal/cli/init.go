package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/testidcheck/internal/config"
	apperrors "github.com/ariel-frischer/testidcheck/internal/errors"
	"github.com/ariel-frischer/testidcheck/internal/remediate"
)

const defaultConfigName = "testid.json"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter configuration file",
		Long: `Write a starter configuration file.

The format follows the file extension: .json, .yaml or .yml.
Defaults to ` + defaultConfigName + ` in the current directory.`,
		Example: `  testidcheck init
  testidcheck init .testid.yml
  testidcheck init testid.json --force`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return apperrors.NewArgumentErrorWithUsage(
					fmt.Sprintf("expected at most one path, got %d", len(args)),
					"testidcheck init [path]",
				)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigName
			if len(args) == 1 {
				path = args[0]
			}
			return runInit(cmd, path, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

func runInit(cmd *cobra.Command, path string, force bool) error {
	content, err := config.StarterConfig(path)
	if err != nil {
		return apperrors.NewArgumentError(err.Error(), "Use a path ending in .json, .yaml or .yml")
	}

	if _, err := os.Stat(path); err == nil && !force {
		return apperrors.NewArgumentError(
			fmt.Sprintf("%s already exists", path),
			"Pass --force to overwrite it",
		)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return apperrors.WrapWithMessage(err, apperrors.Write, "checking "+path)
	}

	if err := remediate.WriteFile(path, content, 0o644); err != nil {
		return apperrors.WrapWithMessage(err, apperrors.Write, "writing "+path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Run: testidcheck --config %s\n", path)
	return nil
}
