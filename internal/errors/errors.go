// Package errors provides categorized CLI errors with remediation hints.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory classifies CLI errors for display.
type ErrorCategory int

const (
	Argument ErrorCategory = iota
	Configuration
	Discovery
	Parse
	Write
	Runtime
)

// String returns the display title of the category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Discovery:
		return "Discovery Error"
	case Parse:
		return "Parse Error"
	case Write:
		return "Write Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is an error with a category, optional usage and remediation steps.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Usage       string
	Remediation []string
	Err         error
}

func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error, if any.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewArgumentError creates an Argument error.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Remediation: remediation}
}

// NewArgumentErrorWithUsage creates an Argument error that shows usage.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Usage: usage, Remediation: remediation}
}

// NewConfigError creates a Configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Configuration, Message: message, Remediation: remediation}
}

// NewDiscoveryError creates a Discovery error.
func NewDiscoveryError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Discovery, Message: message, Remediation: remediation}
}

// NewParseError creates a Parse error.
func NewParseError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Parse, Message: message, Remediation: remediation}
}

// NewWriteError creates a Write error.
func NewWriteError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Write, Message: message, Remediation: remediation}
}

// NewRuntimeError creates a Runtime error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Runtime, Message: message, Remediation: remediation}
}

// Wrap converts err into a CLIError of the given category. It returns nil
// for a nil error.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{Category: category, Message: err.Error(), Remediation: remediation, Err: err}
}

// WrapWithMessage is like Wrap but prefixes the message with msg.
func WrapWithMessage(err error, category ErrorCategory, msg string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %s", msg, err.Error()),
		Remediation: remediation,
		Err:         err,
	}
}

// IsCLIError reports whether err is or wraps a CLIError.
func IsCLIError(err error) bool {
	return AsCLIError(err) != nil
}

// AsCLIError returns the CLIError in err's chain, or nil.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}
