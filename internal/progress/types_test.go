package progress_test

import (
	"strings"
	"testing"

	"github.com/ariel-frischer/testidcheck/internal/progress"
)

func TestStageStatus_String(t *testing.T) {
	tests := []struct {
		status progress.StageStatus
		want   string
	}{
		{status: progress.StagePending, want: "pending"},
		{status: progress.StageInProgress, want: "in_progress"},
		{status: progress.StageCompleted, want: "completed"},
		{status: progress.StageFailed, want: "failed"},
		{status: progress.StageStatus(42), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("StageStatus.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestStageInfo_Validate tests all validation rules for StageInfo
func TestStageInfo_Validate(t *testing.T) {
	tests := []struct {
		name    string
		stage   progress.StageInfo
		wantErr bool
		errMsg  string
	}{
		{
			name:  "valid stage info",
			stage: progress.StageInfo{Name: "check", Number: 1, TotalStages: 3, Done: 2, Total: 5},
		},
		{
			name:    "empty name",
			stage:   progress.StageInfo{Number: 1, TotalStages: 3},
			wantErr: true,
			errMsg:  "stage name cannot be empty",
		},
		{
			name:    "zero number",
			stage:   progress.StageInfo{Name: "check", TotalStages: 3},
			wantErr: true,
			errMsg:  "stage number must be > 0",
		},
		{
			name:    "zero total stages",
			stage:   progress.StageInfo{Name: "check", Number: 1},
			wantErr: true,
			errMsg:  "total stages must be > 0",
		},
		{
			name:    "number exceeds total",
			stage:   progress.StageInfo{Name: "check", Number: 4, TotalStages: 3},
			wantErr: true,
			errMsg:  "cannot exceed total stages",
		},
		{
			name:    "negative counts",
			stage:   progress.StageInfo{Name: "check", Number: 1, TotalStages: 1, Done: -1},
			wantErr: true,
			errMsg:  "cannot be negative",
		},
		{
			name:    "done exceeds total",
			stage:   progress.StageInfo{Name: "check", Number: 1, TotalStages: 1, Done: 6, Total: 5},
			wantErr: true,
			errMsg:  "done count cannot exceed total",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.stage.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Validate() error = %q, want to contain %q", err.Error(), tt.errMsg)
			}
		})
	}
}
