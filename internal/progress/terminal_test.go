// Package progress_test tests terminal capability detection with environment variable overrides.
// Related: internal/progress/terminal.go
// Tags: progress, terminal, capabilities, env-vars, unicode, colors
package progress_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ariel-frischer/testidcheck/internal/progress"
)

// TestDetectTerminalCapabilities tests terminal capability detection
func TestDetectTerminalCapabilities(t *testing.T) {
	tests := map[string]struct {
		env map[string]string
	}{
		"NO_COLOR disables color":       {env: map[string]string{"NO_COLOR": "1"}},
		"TESTIDCHECK_ASCII forces ASCII": {env: map[string]string{"TESTIDCHECK_ASCII": "1"}},
		"both": {env: map[string]string{"NO_COLOR": "1", "TESTIDCHECK_ASCII": "1"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			caps := progress.DetectTerminalCapabilities(os.Stderr)

			if caps.Width < 0 {
				t.Errorf("Width = %d, want >= 0", caps.Width)
			}
			if os.Getenv("NO_COLOR") != "" && caps.SupportsColor {
				t.Error("SupportsColor = true with NO_COLOR set, want false")
			}
			if os.Getenv("TESTIDCHECK_ASCII") == "1" && caps.SupportsUnicode {
				t.Error("SupportsUnicode = true with TESTIDCHECK_ASCII=1, want false")
			}
		})
	}
}

func TestDetectTerminalCapabilities_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.log"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	caps := progress.DetectTerminalCapabilities(f)
	if caps.IsTTY || caps.SupportsColor || caps.SupportsUnicode || caps.Width != 0 {
		t.Errorf("regular file detected as terminal: %+v", caps)
	}
}

// TestSelectSymbols tests symbol selection based on capabilities
func TestSelectSymbols(t *testing.T) {
	tests := map[string]struct {
		capabilities  progress.TerminalCapabilities
		wantCheckmark string
		wantFailure   string
	}{
		"Unicode support enabled": {
			capabilities:  progress.TerminalCapabilities{IsTTY: true, SupportsUnicode: true, SupportsColor: true},
			wantCheckmark: "✓",
			wantFailure:   "✗",
		},
		"ASCII fallback mode": {
			capabilities:  progress.TerminalCapabilities{IsTTY: true},
			wantCheckmark: "[OK]",
			wantFailure:   "[FAIL]",
		},
		"non-TTY mode": {
			capabilities:  progress.TerminalCapabilities{},
			wantCheckmark: "[OK]",
			wantFailure:   "[FAIL]",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			symbols := progress.SelectSymbols(tt.capabilities)

			if symbols.Checkmark != tt.wantCheckmark {
				t.Errorf("SelectSymbols() Checkmark = %q, want %q", symbols.Checkmark, tt.wantCheckmark)
			}
			if symbols.Failure != tt.wantFailure {
				t.Errorf("SelectSymbols() Failure = %q, want %q", symbols.Failure, tt.wantFailure)
			}
			if symbols.SpinnerSet < 0 {
				t.Errorf("SelectSymbols() SpinnerSet = %d, want >= 0", symbols.SpinnerSet)
			}
		})
	}
}
