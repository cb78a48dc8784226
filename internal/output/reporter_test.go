// Package output_test tests text and JSON-lines rendering of violations and summaries.
// Related: internal/output/reporter.go
// Tags: output, reporter, json, colors, summary
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/testidcheck/internal/report"
)

var sample = report.Violation{
	ElementName:       "Button",
	FilePath:          "src/App.tsx",
	LineNumber:        12,
	MissingAttributes: []string{"testID", "accessibilityLabel"},
}

func newTestReporter(format string) (*Reporter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	r := NewReporter(&out, &errOut, Options{
		Format:     format,
		Attributes: []string{"testID"},
		Colors:     map[string]string{RoleComponentName: "red", RoleTotalMissing: "magenta"},
		NoColor:    true,
	})
	return r, &out, &errOut
}

func TestReporter_TextViolation(t *testing.T) {
	t.Parallel()

	r, out, _ := newTestReporter("")
	require.NoError(t, r.Violation(sample))

	assert.Equal(t,
		"Warning: Button in src/App.tsx at line 12 does not have testID, accessibilityLabel attributes.\n",
		out.String())
	assert.False(t, r.JSON())
	assert.Same(t, out, r.PromptWriter())
}

func TestReporter_JSONViolations(t *testing.T) {
	t.Parallel()

	r, out, errOut := newTestReporter(FormatJSON)
	second := sample
	second.LineNumber = 30
	second.MissingAttributes = []string{"testID"}
	require.NoError(t, r.Violations([]report.Violation{sample, second}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	assert.Equal(t, map[string]any{
		"elementName": "Button",
		"filePath":    "src/App.tsx",
		"lineNumber":  float64(12),
		"JSONMessage": "No testID, accessibilityLabel attribute",
	}, got)
	assert.Contains(t, lines[1], `"JSONMessage":"No testID attribute"`)
	assert.Same(t, errOut, r.PromptWriter())
}

func TestReporter_Summary(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		format  string
		summary report.Summary
		want    string
	}{
		"text clean": {
			summary: report.Summary{},
			want:    "✨ All components have testID attributes added! ✨\n",
		},
		"text all fixed": {
			summary: report.Summary{Total: 2, Remaining: 0, FixedFiles: []string{"a.tsx"}},
			want:    "✨ All components have testID attributes added! ✨\n",
		},
		"text remaining": {
			summary: report.Summary{Total: 3, Remaining: 3},
			want:    "\nTotal elements missing testID: 3\n",
		},
		"json": {
			format:  FormatJSON,
			summary: report.Summary{Total: 3, Remaining: 1, FixedFiles: []string{"a.tsx", "b.tsx"}},
			want:    `{"totalMissing":3,"remaining":1,"filesFixed":2}` + "\n",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r, out, _ := newTestReporter(tc.format)
			require.NoError(t, r.Summary(tc.summary))
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestReporter_ErrorAndDebug(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	r := NewReporter(&out, &errOut, Options{NoColor: true})
	r.Debugf("hidden %d", 1)
	r.Error(nil)
	assert.Empty(t, errOut.String())

	r.Error(errors.New("Error parsing file a.tsx: syntax error at 3:1"))
	assert.Contains(t, errOut.String(), "Error parsing file a.tsx")
	assert.NotContains(t, errOut.String(), "\x1b[")

	r = NewReporter(&out, &errOut, Options{NoColor: true, Debug: true})
	r.Debugf("files=%d", 4)
	assert.Contains(t, errOut.String(), "[DEBUG] files=4\n")
	assert.Empty(t, out.String())
}

// Not parallel: toggles the global color switch.
func TestReporter_Colors(t *testing.T) {
	orig := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = orig })

	var out bytes.Buffer
	r := NewReporter(&out, &out, Options{Colors: map[string]string{RoleComponentName: "cyan"}})
	require.NoError(t, r.Violation(sample))

	assert.Contains(t, out.String(), "\x1b[36;1mButton")
	assert.Contains(t, out.String(), "\x1b[33;1mWarning: ")
}

func TestColorAttribute(t *testing.T) {
	t.Parallel()

	attr, ok := ColorAttribute("Gray")
	assert.True(t, ok)
	assert.Equal(t, color.FgHiBlack, attr)

	attr, ok = ColorAttribute("grey")
	assert.True(t, ok)
	assert.Equal(t, color.FgHiBlack, attr)

	_, ok = ColorAttribute("chartreuse")
	assert.False(t, ok)
}
