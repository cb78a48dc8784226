// Package output renders violations and run summaries as colored text or
// JSON lines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	apperrors "github.com/ariel-frischer/testidcheck/internal/errors"
	"github.com/ariel-frischer/testidcheck/internal/report"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Color roles used by the text reporter.
const (
	RoleComponentName = "componentName"
	RoleLineNumber    = "lineNumber"
	RoleFileLocation  = "fileLocation"
	RoleAttributeName = "attributeName"
	RoleTotalMissing  = "totalMissing"
)

// Options configures a Reporter.
type Options struct {
	Format string
	// Attributes are the required attribute names, used in the summary.
	Attributes []string
	// Colors maps a role to a color name. Missing roles are uncolored.
	Colors  map[string]string
	NoColor bool
	Debug   bool
}

// Reporter writes run results. Report output goes to out; diagnostics,
// debug lines and, in JSON mode, prompts go to errOut.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	opts   Options

	base    *color.Color
	success *color.Color
	palette map[string]*color.Color
}

// NewReporter creates a Reporter. An empty format means text.
func NewReporter(out, errOut io.Writer, opts Options) *Reporter {
	if opts.Format == "" {
		opts.Format = FormatText
	}

	r := &Reporter{
		out:     out,
		errOut:  errOut,
		opts:    opts,
		base:    color.New(color.FgYellow, color.Bold),
		success: color.New(color.FgGreen, color.Bold),
		palette: make(map[string]*color.Color),
	}
	for role, name := range opts.Colors {
		attr, ok := ColorAttribute(name)
		if !ok {
			continue
		}
		r.palette[role] = color.New(attr, color.Bold)
	}

	if opts.NoColor {
		r.base.DisableColor()
		r.success.DisableColor()
		for _, c := range r.palette {
			c.DisableColor()
		}
	}
	return r
}

// JSON reports whether the reporter emits JSON lines.
func (r *Reporter) JSON() bool {
	return r.opts.Format == FormatJSON
}

// PromptWriter returns where interactive prompts should be written so that
// they never mix with machine-readable output.
func (r *Reporter) PromptWriter() io.Writer {
	if r.JSON() {
		return r.errOut
	}
	return r.out
}

type jsonViolation struct {
	ElementName string `json:"elementName"`
	FilePath    string `json:"filePath"`
	LineNumber  int    `json:"lineNumber"`
	JSONMessage string `json:"JSONMessage"`
}

type jsonSummary struct {
	TotalMissing int `json:"totalMissing"`
	Remaining    int `json:"remaining"`
	FilesFixed   int `json:"filesFixed"`
}

// Violation writes one violation.
func (r *Reporter) Violation(v report.Violation) error {
	if r.JSON() {
		return json.NewEncoder(r.out).Encode(jsonViolation{
			ElementName: v.ElementName,
			FilePath:    v.FilePath,
			LineNumber:  v.LineNumber,
			JSONMessage: v.Message(),
		})
	}

	var b strings.Builder
	b.WriteString(r.base.Sprint("Warning: "))
	b.WriteString(r.paint(RoleComponentName, v.ElementName))
	b.WriteString(r.base.Sprint(" in "))
	b.WriteString(r.paint(RoleFileLocation, v.FilePath))
	b.WriteString(r.base.Sprint(" at line "))
	b.WriteString(r.paint(RoleLineNumber, fmt.Sprint(v.LineNumber)))
	b.WriteString(r.base.Sprint(" does not have "))
	b.WriteString(r.paint(RoleAttributeName, strings.Join(v.MissingAttributes, ", ")))
	b.WriteString(r.base.Sprint(" attributes."))
	b.WriteString("\n")

	_, err := io.WriteString(r.out, b.String())
	return err
}

// Violations writes each violation in order.
func (r *Reporter) Violations(vs []report.Violation) error {
	for _, v := range vs {
		if err := r.Violation(v); err != nil {
			return err
		}
	}
	return nil
}

// Summary writes the final line of a run.
func (r *Reporter) Summary(s report.Summary) error {
	if r.JSON() {
		return json.NewEncoder(r.out).Encode(jsonSummary{
			TotalMissing: s.Total,
			Remaining:    s.Remaining,
			FilesFixed:   len(s.FixedFiles),
		})
	}

	attrs := strings.Join(r.opts.Attributes, ", ")
	if s.Remaining == 0 {
		_, err := fmt.Fprintln(r.out, r.success.Sprintf("✨ All components have %s attributes added! ✨", attrs))
		return err
	}
	line := r.paint(RoleTotalMissing, fmt.Sprintf("Total elements missing %s: %d", attrs, s.Remaining))
	_, err := fmt.Fprintf(r.out, "\n%s\n", line)
	return err
}

// Error writes err to the diagnostics stream.
func (r *Reporter) Error(err error) {
	if err == nil {
		return
	}
	if r.opts.NoColor {
		fmt.Fprint(r.errOut, apperrors.FormatErrorPlain(err))
		return
	}
	apperrors.FprintError(r.errOut, err)
}

// Debugf writes a [DEBUG] line when debug output is enabled.
func (r *Reporter) Debugf(format string, args ...any) {
	if r.opts.Debug {
		fmt.Fprintf(r.errOut, "[DEBUG] "+format+"\n", args...)
	}
}

func (r *Reporter) paint(role, s string) string {
	if c, ok := r.palette[role]; ok {
		return c.Sprint(s)
	}
	return r.base.Sprint(s)
}

var colorNames = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
	"gray":    color.FgHiBlack,
	"grey":    color.FgHiBlack,
}

// ColorAttribute maps a configured color name to a terminal attribute.
func ColorAttribute(name string) (color.Attribute, bool) {
	attr, ok := colorNames[strings.ToLower(name)]
	return attr, ok
}
