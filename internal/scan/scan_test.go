// Package scan_test tests per-file analysis, auto-fix planning and ordered parallel scanning.
// Related: internal/scan/scan.go
// Tags: scan, errgroup, parallel, autofix, violations
package scan

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ariel-frischer/testidcheck/internal/errors"
	"github.com/ariel-frischer/testidcheck/internal/markup"
	"github.com/ariel-frischer/testidcheck/internal/report"
	"github.com/ariel-frischer/testidcheck/internal/rule"
)

func buttonRule() *rule.Rule {
	return rule.New(rule.Options{
		RequiredAttributes:  []string{"testID"},
		InteractiveElements: []string{"Button"},
		ExemptElements:      []string{"Text"},
		DynamicFunction:     "getTestID",
	})
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScan_Scenarios(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		source string
		want   int
	}{
		"missing testID": {
			source: "const App = () => <Button onPress={go} />;\n",
			want:   1,
		},
		"static testID": {
			source: "const App = () => <Button testID=\"x\" onPress={go} />;\n",
			want:   0,
		},
		"dynamic testID": {
			source: "const App = () => <Button {...getTestID('save')} onPress={go} />;\n",
			want:   0,
		},
		"out of scope": {
			source: "const App = () => <View><Text>hi</Text></View>;\n",
			want:   0,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := writeSource(t, t.TempDir(), "App.jsx", tc.source)

			acc := report.NewAccumulator()
			results, err := New(buttonRule()).Scan(context.Background(), []string{path}, acc)
			require.NoError(t, err)
			require.Len(t, results, 1)
			require.NoError(t, results[0].Err)

			assert.Equal(t, tc.want, acc.Count())
			if tc.want > 0 {
				v := acc.Summary().Violations[0]
				assert.Equal(t, "Button", v.ElementName)
				assert.Equal(t, path, v.FilePath)
				assert.Equal(t, 1, v.LineNumber)
				assert.Equal(t, []string{"testID"}, v.MissingAttributes)
			}
		})
	}
}

func TestScan_AutoFixRegistersPatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := "export const A = () => (\n  <>\n    <Button title=\"a\" />\n    <Button testID=\"b\" />\n    <Button>c</Button>\n  </>\n);\n"
	path := writeSource(t, dir, "A.tsx", src)

	acc := report.NewAccumulator()
	planner := rule.NewPlanner(buttonRule(), &rule.SequenceIDs{Prefix: "id-"})
	_, err := New(buttonRule(), WithAutoFix(planner)).Scan(context.Background(), []string{path}, acc)
	require.NoError(t, err)

	s := acc.Summary()
	assert.Equal(t, 2, s.Total)
	require.Len(t, s.Pending, 1)
	assert.Equal(t, 2, s.PendingFixes())

	out, err := s.Pending[0].Render()
	require.NoError(t, err)
	assert.Contains(t, string(out), `<Button title="a" testID="id-1" />`)
	assert.Contains(t, string(out), `<Button testID="id-2">c</Button>`)

	// Scanning does not touch the file on disk.
	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, src, string(onDisk))
}

func TestScan_ParseErrorSkipsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := writeSource(t, dir, "bad.jsx", "const x = <Button testID=\"a\" ;\n")
	good := writeSource(t, dir, "good.jsx", "const y = <Button />;\n")

	acc := report.NewAccumulator()
	results, err := New(buttonRule()).Scan(context.Background(), []string{bad, good}, acc)
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Error(t, results[0].Err)
	assert.Contains(t, results[0].Err.Error(), "Error parsing file "+bad)
	cliErr := apperrors.AsCLIError(results[0].Err)
	require.NotNil(t, cliErr)
	assert.Equal(t, apperrors.Parse, cliErr.Category)

	assert.NoError(t, results[1].Err)
	assert.Equal(t, 1, acc.Count())
}

// fakeParser returns one Button without attributes per file.
type fakeParser struct {
	calls atomic.Int32
	fail  string
}

func (p *fakeParser) ParseFile(_ context.Context, path string) (*markup.Document, error) {
	p.calls.Add(1)
	if path == p.fail {
		return nil, errors.New("boom")
	}
	src := []byte("<Button />")
	return markup.NewDocument(path, src, markup.NewElement("Button", 1, 1, 7)), nil
}

func TestScan_ParallelKeepsOrder(t *testing.T) {
	t.Parallel()

	var files []string
	for i := range 25 {
		files = append(files, fmt.Sprintf("f%02d.tsx", i))
	}

	parser := &fakeParser{fail: "f07.tsx"}
	var progressed atomic.Int32
	acc := report.NewAccumulator()
	s := New(buttonRule(),
		WithParser(parser),
		WithJobs(6),
		WithProgress(func() { progressed.Add(1) }),
	)

	results, err := s.Scan(context.Background(), files, acc)
	require.NoError(t, err)
	require.Len(t, results, 25)

	assert.EqualValues(t, 25, parser.calls.Load())
	assert.EqualValues(t, 25, progressed.Load())
	assert.Equal(t, 24, acc.Count())

	var got []string
	for _, v := range acc.Summary().Violations {
		got = append(got, v.FilePath)
	}
	want := append(append([]string(nil), files[:7]...), files[8:]...)
	assert.Equal(t, want, got)
	assert.Error(t, results[7].Err)
}

func TestScan_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	parser := &fakeParser{}
	acc := report.NewAccumulator()
	_, err := New(buttonRule(), WithParser(parser)).Scan(ctx, []string{"a.tsx", "b.tsx"}, acc)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, parser.calls.Load())
	assert.Zero(t, acc.Count())
}

func TestScan_DebugLog(t *testing.T) {
	t.Parallel()

	var lines []string
	s := New(buttonRule(),
		WithParser(&fakeParser{}),
		WithDebug(func(format string, args ...any) { lines = append(lines, fmt.Sprintf(format, args...)) }),
	)
	_, err := s.Scan(context.Background(), []string{"a.tsx"}, report.NewAccumulator())
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, "Scanning 1 files with 1 workers", lines[0])
	assert.Contains(t, lines[1], "Parsed a.tsx in ")
}

func TestScan_FinalizedAccumulator(t *testing.T) {
	t.Parallel()

	acc := report.NewAccumulator()
	_, err := acc.Finalize(nil)
	require.NoError(t, err)

	_, err = New(buttonRule(), WithParser(&fakeParser{})).Scan(context.Background(), []string{"a.tsx"}, acc)
	assert.ErrorIs(t, err, report.ErrFinalized)
}
