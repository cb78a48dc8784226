// Package scan drives the per-file analysis of a check run: parse, classify,
// check, optionally patch, and record into a report.Accumulator.
package scan

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/ariel-frischer/testidcheck/internal/errors"
	"github.com/ariel-frischer/testidcheck/internal/jsx"
	"github.com/ariel-frischer/testidcheck/internal/markup"
	"github.com/ariel-frischer/testidcheck/internal/report"
	"github.com/ariel-frischer/testidcheck/internal/rule"
)

// Parser turns a source file into a document.
type Parser interface {
	ParseFile(ctx context.Context, path string) (*markup.Document, error)
}

// FileResult is the outcome of analyzing one file.
type FileResult struct {
	Path       string
	Violations []report.Violation
	// Doc is the parsed document, nil when parsing failed.
	Doc      *markup.Document
	Err      error
	Duration time.Duration
}

// Scanner analyzes files against a rule.
type Scanner struct {
	rule     *rule.Rule
	planner  *rule.Planner
	parser   Parser
	jobs     int
	progress func()
	debug    func(format string, args ...any)
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithJobs sets the maximum number of files analyzed concurrently.
func WithJobs(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.jobs = n
		}
	}
}

// WithAutoFix enables remediation through p.
func WithAutoFix(p *rule.Planner) Option {
	return func(s *Scanner) {
		s.planner = p
	}
}

// WithParser replaces the default tree-sitter parser.
func WithParser(p Parser) Option {
	return func(s *Scanner) {
		s.parser = p
	}
}

// WithProgress sets a callback invoked after each file finishes. It may be
// called from several goroutines.
func WithProgress(fn func()) Option {
	return func(s *Scanner) {
		s.progress = fn
	}
}

// WithDebug sets the debug logger.
func WithDebug(logf func(format string, args ...any)) Option {
	return func(s *Scanner) {
		s.debug = logf
	}
}

// New creates a Scanner for r.
func New(r *rule.Rule, opts ...Option) *Scanner {
	s := &Scanner{
		rule:   r,
		parser: jsx.Parser{},
		jobs:   1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scanner) debugLog(format string, args ...any) {
	if s.debug != nil {
		s.debug(format, args...)
	}
}

// Analyze checks every element of doc and returns its violations in source
// order. With auto-fix enabled, missing attributes are synthesized on doc.
func (s *Scanner) Analyze(doc *markup.Document) []report.Violation {
	var out []report.Violation
	for _, el := range doc.Elements {
		if !s.rule.InScope(el.Name) {
			continue
		}
		missing := s.rule.Missing(el)
		if len(missing) == 0 {
			continue
		}
		out = append(out, report.Violation{
			ElementName:       el.Name,
			FilePath:          doc.Path,
			LineNumber:        el.Line,
			MissingAttributes: missing,
		})
		if s.planner != nil {
			s.planner.FixAll(doc, el)
		}
	}
	return out
}

// ScanFile parses and analyzes a single file.
func (s *Scanner) ScanFile(ctx context.Context, path string) *FileResult {
	start := time.Now()
	res := &FileResult{Path: path}

	doc, err := s.parser.ParseFile(ctx, path)
	if err != nil {
		res.Err = apperrors.ParseFailed(path, err)
		res.Duration = time.Since(start)
		return res
	}

	res.Doc = doc
	res.Violations = s.Analyze(doc)
	res.Duration = time.Since(start)
	return res
}

// Scan analyzes files with up to the configured number of workers and
// records the results into acc in the order of files. Files that fail to
// parse are returned with Err set and contribute nothing to acc. When ctx
// is canceled no new files are started; results finished so far are still
// recorded and the context error is returned.
func (s *Scanner) Scan(ctx context.Context, files []string, acc *report.Accumulator) ([]*FileResult, error) {
	s.debugLog("Scanning %d files with %d workers", len(files), s.jobs)

	results := make([]*FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.jobs)

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := s.ScanFile(gctx, path)
			s.debugLog("Parsed %s in %s", path, res.Duration)
			results[i] = res
			if s.progress != nil {
				s.progress()
			}
			return nil
		})
	}
	waitErr := g.Wait()

	done := make([]*FileResult, 0, len(results))
	for _, res := range results {
		if res == nil {
			continue
		}
		done = append(done, res)
		if res.Err != nil {
			continue
		}
		for _, v := range res.Violations {
			if err := acc.Record(v); err != nil {
				return done, err
			}
		}
		if res.Doc.Changed() {
			if err := acc.AddPatch(res.Doc); err != nil {
				return done, err
			}
		}
	}

	if waitErr != nil {
		return done, waitErr
	}
	return done, ctx.Err()
}
