// Package report accumulates the violations and pending fixes of one run
// and produces its final summary.
package report

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ariel-frischer/testidcheck/internal/markup"
)

// ErrFinalized is returned when the accumulator is used after Finalize.
var ErrFinalized = errors.New("report already finalized")

// Violation is an in-scope element missing required attributes.
type Violation struct {
	ElementName       string
	FilePath          string
	LineNumber        int
	MissingAttributes []string
}

// Message returns the short description used in machine-readable output.
func (v Violation) Message() string {
	return fmt.Sprintf("No %s attribute", strings.Join(v.MissingAttributes, ", "))
}

// State is the lifecycle state of an Accumulator.
type State int

const (
	Empty State = iota
	Accumulating
	Finalized
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Accumulating:
		return "accumulating"
	case Finalized:
		return "finalized"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Summary is a snapshot of the accumulated run state.
type Summary struct {
	// Total is the number of violations recorded.
	Total int
	// Remaining is Total minus the violations in files whose fixes were
	// written. It equals Total until Finalize is called with fixed files.
	Remaining  int
	Violations []Violation
	// Pending holds changed documents in registration order.
	Pending []*markup.Document
	// FixedFiles lists the files passed to Finalize.
	FixedFiles []string
}

// PendingFixes returns the number of insertions across pending documents.
func (s Summary) PendingFixes() int {
	n := 0
	for _, doc := range s.Pending {
		n += len(doc.Insertions())
	}
	return n
}

// Accumulator collects violations and pending patches. It is safe for
// concurrent use.
type Accumulator struct {
	mu         sync.Mutex
	state      State
	violations []Violation
	pending    map[string]*markup.Document
	order      []string
	final      Summary
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{pending: make(map[string]*markup.Document)}
}

// State returns the current lifecycle state.
func (a *Accumulator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Record appends v to the violation log.
func (a *Accumulator) Record(v Violation) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == Finalized {
		return ErrFinalized
	}
	a.violations = append(a.violations, v)
	a.state = Accumulating
	return nil
}

// AddPatch registers doc as a pending patch. Only the first registration
// of a path is kept; later modifications are expected on the same document.
func (a *Accumulator) AddPatch(doc *markup.Document) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == Finalized {
		return ErrFinalized
	}
	if _, ok := a.pending[doc.Path]; ok {
		return nil
	}
	a.pending[doc.Path] = doc
	a.order = append(a.order, doc.Path)
	a.state = Accumulating
	return nil
}

// Count returns the number of violations recorded so far.
func (a *Accumulator) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.violations)
}

// Summary returns a snapshot of the current state. After Finalize it
// returns the final summary.
func (a *Accumulator) Summary() Summary {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == Finalized {
		return a.final
	}
	return a.snapshot()
}

// Finalize closes the accumulator and returns the final summary. fixed
// lists files whose fixes were written; their violations are excluded from
// Remaining but stay in the violation log. Finalize succeeds only once.
func (a *Accumulator) Finalize(fixed []string) (Summary, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == Finalized {
		return a.final, ErrFinalized
	}

	s := a.snapshot()
	if len(fixed) > 0 {
		isFixed := make(map[string]bool, len(fixed))
		for _, p := range fixed {
			isFixed[p] = true
		}
		for _, v := range s.Violations {
			if isFixed[v.FilePath] {
				s.Remaining--
			}
		}
		s.FixedFiles = append([]string(nil), fixed...)
	}

	a.final = s
	a.state = Finalized
	return s, nil
}

func (a *Accumulator) snapshot() Summary {
	violations := make([]Violation, len(a.violations))
	copy(violations, a.violations)

	pending := make([]*markup.Document, 0, len(a.order))
	for _, p := range a.order {
		pending = append(pending, a.pending[p])
	}

	return Summary{
		Total:      len(violations),
		Remaining:  len(violations),
		Violations: violations,
		Pending:    pending,
	}
}
