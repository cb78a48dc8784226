package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/testidcheck/internal/config"
	"github.com/ariel-frischer/testidcheck/internal/discover"
	apperrors "github.com/ariel-frischer/testidcheck/internal/errors"
	"github.com/ariel-frischer/testidcheck/internal/output"
	"github.com/ariel-frischer/testidcheck/internal/progress"
	"github.com/ariel-frischer/testidcheck/internal/remediate"
	"github.com/ariel-frischer/testidcheck/internal/report"
	"github.com/ariel-frischer/testidcheck/internal/rule"
	"github.com/ariel-frischer/testidcheck/internal/scan"
)

func runCheck(cmd *cobra.Command, opts *checkOptions) error {
	if opts.jobs < 1 {
		return apperrors.NewArgumentError(
			fmt.Sprintf("--jobs must be at least 1, got %d", opts.jobs),
		)
	}
	if opts.format != "" && opts.format != output.FormatText && opts.format != output.FormatJSON {
		return apperrors.NewArgumentErrorWithUsage(
			fmt.Sprintf("unknown output format %q", opts.format),
			"testidcheck --config <path> --format text|json",
		)
	}

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	reporter := output.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Options{
		Format:     cfg.OutputFormat,
		Attributes: cfg.TestIDAttributes,
		Colors:     cfg.Colors,
		NoColor:    opts.noColor || os.Getenv("NO_COLOR") != "",
		Debug:      opts.debug,
	})
	reporter.Debugf("Debug mode enabled")
	reporter.Debugf("Config: %+v", *cfg)

	stages := 2
	if cfg.AutoFix {
		stages = 3
	}
	tracker := newStageTracker(cmd, opts, stages)
	defer tracker.stop()

	// Discover
	tracker.start(1, "discover", 0)
	files, err := discover.Files(discover.Options{
		Dir:        cfg.DirectoryToCheck,
		Extensions: cfg.Extensions,
		Exclude:    cfg.ExcludePattern,
	})
	if err != nil {
		tracker.fail(err)
		reporter.Error(apperrors.DiscoveryFailed(cfg.DirectoryToCheck, err))
		files = nil
	} else {
		tracker.complete(fmt.Sprintf("%d files", len(files)))
	}
	reporter.Debugf("Discovered %d files in %s", len(files), cfg.DirectoryToCheck)

	// Check
	r := cfg.Rule()
	scanOpts := []scan.Option{
		scan.WithJobs(opts.jobs),
		scan.WithProgress(tracker.advance),
		scan.WithDebug(reporter.Debugf),
	}
	if cfg.AutoFix {
		scanOpts = append(scanOpts, scan.WithAutoFix(rule.NewPlanner(r, rule.NewRandomIDs(cfg.IDPrefix))))
	}

	acc := report.NewAccumulator()
	tracker.start(2, "check", len(files))
	results, scanErr := scan.New(r, scanOpts...).Scan(cmd.Context(), files, acc)
	tracker.complete(fmt.Sprintf("%d violations", acc.Count()))

	for _, res := range results {
		reporter.Error(res.Err)
	}
	if scanErr != nil {
		return apperrors.WrapWithMessage(scanErr, apperrors.Runtime, "check interrupted")
	}

	snapshot := acc.Summary()
	if err := reporter.Violations(snapshot.Violations); err != nil {
		return apperrors.Wrap(err, apperrors.Runtime)
	}

	// Fix
	var fixed []string
	if cfg.AutoFix && len(snapshot.Pending) > 0 {
		fixed = applyFixes(cmd, cfg, reporter, tracker, snapshot)
	}

	summary, err := acc.Finalize(fixed)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Runtime)
	}
	if err := reporter.Summary(summary); err != nil {
		return apperrors.Wrap(err, apperrors.Runtime)
	}

	if opts.strict && summary.Remaining > 0 {
		return NewExitError(ExitViolations)
	}
	return nil
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *checkOptions) (*config.Configuration, error) {
	cfg, err := config.Load(opts.configPath)
	switch {
	case errors.Is(err, config.ErrMissingPath):
		return nil, apperrors.MissingConfigPath()
	case errors.Is(err, config.ErrNotFound):
		return nil, apperrors.ConfigNotFound(opts.configPath)
	case err != nil:
		return nil, apperrors.ConfigInvalid(opts.configPath, err)
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.DirectoryToCheck = opts.dir
	}
	if flags.Changed("format") {
		cfg.OutputFormat = opts.format
	}
	if opts.fix {
		cfg.AutoFix = true
	}
	if opts.yes {
		cfg.SkipConfirmations = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, apperrors.ConfigInvalid(opts.configPath, err)
	}
	return cfg, nil
}

// applyFixes asks for confirmation and writes the pending documents. It
// returns the files that were written.
func applyFixes(cmd *cobra.Command, cfg *config.Configuration, reporter *output.Reporter, tracker *stageTracker, s report.Summary) []string {
	prompt := reporter.PromptWriter()
	if !cfg.SkipConfirmations {
		tracker.stop()
		if !confirmFixes(cmd.InOrStdin(), prompt, s.PendingFixes(), len(s.Pending)) {
			fmt.Fprintln(prompt, "No changes were made.")
			return nil
		}
	}

	tracker.start(3, "fix", 0)
	res := remediate.Apply(s.Pending)
	if len(res.Failed) > 0 {
		tracker.fail(fmt.Errorf("%d of %d files not written", len(res.Failed), len(res.Failed)+len(res.Fixed)))
	} else {
		tracker.complete(fmt.Sprintf("%d files updated", len(res.Fixed)))
	}
	for _, f := range res.Failed {
		reporter.Error(f.Err)
	}
	reporter.Debugf("Fixed files: %v", res.Fixed)
	return res.Fixed
}

// stageTracker drives the progress display. It is a no-op when progress is
// disabled or stderr is not a terminal.
type stageTracker struct {
	display *progress.ProgressDisplay
	total   int
	current *progress.StageInfo
}

func newStageTracker(cmd *cobra.Command, opts *checkOptions, total int) *stageTracker {
	t := &stageTracker{total: total}
	if opts.noProgress {
		return t
	}
	f, ok := cmd.ErrOrStderr().(*os.File)
	if !ok {
		return t
	}
	caps := progress.DetectTerminalCapabilities(f)
	if !caps.IsTTY {
		return t
	}
	if opts.noColor {
		caps.SupportsColor = false
	}
	t.display = progress.NewProgressDisplay(f, caps)
	return t
}

func (t *stageTracker) start(number int, name string, items int) {
	if t.display == nil {
		return
	}
	stage := progress.StageInfo{Name: name, Number: number, TotalStages: t.total, Total: items}
	if err := t.display.StartStage(stage); err != nil {
		return
	}
	t.current = &stage
}

func (t *stageTracker) advance() {
	if t.display != nil {
		t.display.Advance()
	}
}

func (t *stageTracker) complete(detail string) {
	if t.display == nil || t.current == nil {
		return
	}
	_ = t.display.CompleteStage(*t.current, detail)
	t.current = nil
}

func (t *stageTracker) fail(err error) {
	if t.display == nil || t.current == nil {
		return
	}
	_ = t.display.FailStage(*t.current, err)
	t.current = nil
}

func (t *stageTracker) stop() {
	if t.display != nil {
		t.display.StopSpinner()
	}
}
