package cli

import (
	"errors"
	"fmt"

	apperrors "github.com/ariel-frischer/testidcheck/internal/errors"
)

// Exit codes for the testidcheck CLI
// These codes support CI/CD integration
const (
	// ExitSuccess indicates the run completed, with or without violations
	ExitSuccess = 0

	// ExitConfigError indicates the configuration is missing or invalid
	ExitConfigError = 1

	// ExitViolations indicates violations remain and --strict was given
	ExitViolations = 2

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3
)

// exitError is an error that carries an exit code. It is returned after
// the command has already reported everything it needs to.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	if cliErr := apperrors.AsCLIError(err); cliErr != nil && cliErr.Category == apperrors.Argument {
		return ExitInvalidArguments
	}
	return ExitConfigError
}

func isExitError(err error) bool {
	var e *exitError
	return errors.As(err, &e)
}
