// Package errors_test tests structured CLI error message generation and remediation steps.
// Related: internal/errors/messages.go
// Tags: errors, cli-errors, messages, remediation, error-categories
package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestMissingConfigPath(t *testing.T) {
	err := MissingConfigPath()

	if err.Category != Configuration {
		t.Errorf("Expected Configuration category, got %v", err.Category)
	}
	if err.Message != "Please provide a config file path" {
		t.Errorf("Unexpected message %q", err.Message)
	}
	if err.Usage == "" {
		t.Error("Expected non-empty usage")
	}
	if len(err.Remediation) == 0 {
		t.Error("Expected remediation steps")
	}
}

func TestConfigNotFound(t *testing.T) {
	err := ConfigNotFound("/path/to/testid.json")

	if err.Category != Configuration {
		t.Errorf("Expected Configuration category, got %v", err.Category)
	}
	if !strings.Contains(err.Message, "/path/to/testid.json") {
		t.Error("Expected message to contain path")
	}
}

func TestWrappingMessages(t *testing.T) {
	base := stderrors.New("underlying")

	tests := map[string]struct {
		err      *CLIError
		category ErrorCategory
		contains string
	}{
		"config invalid": {
			err:      ConfigInvalid("c.json", base),
			category: Configuration,
			contains: "Error loading configuration file c.json",
		},
		"discovery failed": {
			err:      DiscoveryFailed("src", base),
			category: Discovery,
			contains: "Error finding files in src",
		},
		"parse failed": {
			err:      ParseFailed("src/App.tsx", base),
			category: Parse,
			contains: "Error parsing file src/App.tsx",
		},
		"write failed": {
			err:      WriteFailed("src/App.tsx", base),
			category: Write,
			contains: "Error writing fixes to src/App.tsx",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if test.err.Category != test.category {
				t.Errorf("Expected %v category, got %v", test.category, test.err.Category)
			}
			if !strings.Contains(test.err.Message, test.contains) {
				t.Errorf("Expected message to contain %q, got %q", test.contains, test.err.Message)
			}
			if !stderrors.Is(test.err, base) {
				t.Error("Expected underlying error to be preserved")
			}
		})
	}
}
