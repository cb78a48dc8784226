package errors

import "fmt"

// MissingConfigPath is returned when --config is not given.
func MissingConfigPath() *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  "Please provide a config file path",
		Usage:    "testidcheck --config <path>",
		Remediation: []string{
			"Pass --config testid.json (JSON or YAML)",
			"Create a starter config with: testidcheck init testid.json",
		},
	}
}

// ConfigNotFound is returned when the config file does not exist.
func ConfigNotFound(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("Error loading configuration file %s: file not found", path),
		"Check the path passed to --config",
		fmt.Sprintf("Create it with: testidcheck init %s", path),
	)
}

// ConfigInvalid is returned when the config file cannot be parsed or
// fails validation.
func ConfigInvalid(path string, err error) *CLIError {
	e := NewConfigError(
		fmt.Sprintf("Error loading configuration file %s: %v", path, err),
		"Fix the reported key or syntax error",
		"Compare with the output of: testidcheck init example.json",
	)
	e.Err = err
	return e
}

// DiscoveryFailed is returned when the file listing fails.
func DiscoveryFailed(dir string, err error) *CLIError {
	e := NewDiscoveryError(fmt.Sprintf("Error finding files in %s: %v", dir, err))
	e.Err = err
	return e
}

// ParseFailed is returned when a source file cannot be parsed.
func ParseFailed(path string, err error) *CLIError {
	e := NewParseError(fmt.Sprintf("Error parsing file %s: %v", path, err))
	e.Err = err
	return e
}

// WriteFailed is returned when fixes cannot be written to a file.
func WriteFailed(path string, err error) *CLIError {
	e := NewWriteError(
		fmt.Sprintf("Error writing fixes to %s: %v", path, err),
		"The file was left unchanged; add the attribute manually",
	)
	e.Err = err
	return e
}
