// Package progress provides stage progress display for a check run.
// It defines stage status tracking and terminal display helpers including
// spinners and formatted completion lines.
package progress

import apperrors "github.com/ariel-frischer/testidcheck/internal/errors"

// StageStatus represents the execution state of a run stage
type StageStatus int

const (
	// StagePending indicates the stage has not started yet
	StagePending StageStatus = iota
	// StageInProgress indicates the stage is currently running
	StageInProgress
	// StageCompleted indicates the stage finished successfully
	StageCompleted
	// StageFailed indicates the stage failed with an error
	StageFailed
)

// String returns the string representation of StageStatus
func (s StageStatus) String() string {
	switch s {
	case StagePending:
		return "pending"
	case StageInProgress:
		return "in_progress"
	case StageCompleted:
		return "completed"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StageInfo describes one stage of a run (finding files, checking them,
// applying fixes).
type StageInfo struct {
	// Name is the human-readable stage name (e.g., "discover", "check", "fix")
	Name string
	// Number is the current stage number (1-based index)
	Number int
	// TotalStages is the total number of stages in the run
	TotalStages int
	// Status is the current execution status
	Status StageStatus
	// Done is the number of items processed so far
	Done int
	// Total is the number of items to process (0 if unknown)
	Total int
}

// Validate checks that all StageInfo fields meet validation requirements
func (s StageInfo) Validate() error {
	if s.Name == "" {
		return apperrors.NewArgumentError("stage name cannot be empty")
	}
	if s.Number <= 0 {
		return apperrors.NewArgumentError("stage number must be > 0")
	}
	if s.TotalStages <= 0 {
		return apperrors.NewArgumentError("total stages must be > 0")
	}
	if s.Number > s.TotalStages {
		return apperrors.NewArgumentError("stage number cannot exceed total stages")
	}
	if s.Done < 0 || s.Total < 0 {
		return apperrors.NewArgumentError("item counts cannot be negative")
	}
	if s.Total > 0 && s.Done > s.Total {
		return apperrors.NewArgumentError("done count cannot exceed total")
	}
	return nil
}

// TerminalCapabilities encapsulates detected terminal features
type TerminalCapabilities struct {
	// IsTTY indicates whether the progress stream is a terminal
	IsTTY bool
	// SupportsColor indicates whether terminal supports ANSI color codes
	SupportsColor bool
	// SupportsUnicode indicates whether terminal supports Unicode characters
	SupportsUnicode bool
	// Width is the terminal width in columns (0 if unknown/pipe)
	Width int
}

// ProgressSymbols defines the character set for visual indicators
type ProgressSymbols struct {
	// Checkmark is the success indicator ("✓" or "[OK]")
	Checkmark string
	// Failure is the failure indicator ("✗" or "[FAIL]")
	Failure string
	// SpinnerSet is the index into spinner.CharSets
	SpinnerSet int
}
