package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// ProgressDisplay renders stage progress to a writer, usually stderr so that
// report output on stdout stays machine readable.
type ProgressDisplay struct {
	out          io.Writer
	capabilities TerminalCapabilities
	symbols      ProgressSymbols

	mu           sync.Mutex
	currentStage *StageInfo
	spinner      *spinner.Spinner
}

// NewProgressDisplay creates a new progress display writing to out
func NewProgressDisplay(out io.Writer, caps TerminalCapabilities) *ProgressDisplay {
	return &ProgressDisplay{
		out:          out,
		capabilities: caps,
		symbols:      SelectSymbols(caps),
	}
}

// StartStage begins displaying progress for a stage
func (p *ProgressDisplay) StartStage(stage StageInfo) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
	stage.Status = StageInProgress
	p.currentStage = &stage

	msg := buildStageMessage(stage, "Running")

	if p.capabilities.IsTTY {
		p.spinner = spinner.New(
			spinner.CharSets[p.symbols.SpinnerSet],
			100*time.Millisecond,
			spinner.WithWriter(p.out),
		)
		p.spinner.Suffix = " " + msg
		p.spinner.Start()
	} else {
		fmt.Fprintln(p.out, msg)
	}

	return nil
}

// Advance records that one more item of the current stage finished. It is
// safe to call from multiple goroutines. Without a TTY nothing is printed.
func (p *ProgressDisplay) Advance() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.currentStage == nil {
		return
	}
	p.currentStage.Done++
	if p.spinner != nil {
		msg := buildStageMessage(*p.currentStage, "Running")
		p.spinner.Lock()
		p.spinner.Suffix = " " + msg
		p.spinner.Unlock()
	}
}

// CompleteStage stops the spinner and displays completion status
func (p *ProgressDisplay) CompleteStage(stage StageInfo, detail string) error {
	stage.Status = StageCompleted
	p.finish(stage, detail)
	return nil
}

// FailStage stops the spinner and displays failure status
func (p *ProgressDisplay) FailStage(stage StageInfo, err error) error {
	stage.Status = StageFailed
	p.finish(stage, fmt.Sprint(err))
	return nil
}

func (p *ProgressDisplay) finish(stage StageInfo, detail string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
	fmt.Fprintln(p.out, buildOutcomeLine(stage, p.symbols, p.capabilities.SupportsColor, detail))
	p.currentStage = nil
}

// StopSpinner stops the spinner without showing completion/failure.
// Used before interactive output such as the fix confirmation prompt.
func (p *ProgressDisplay) StopSpinner() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *ProgressDisplay) stopLocked() {
	if p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
	}
}
