// Package discover lists the source files to check under a directory.
package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Options configures file discovery.
type Options struct {
	// Dir is the root directory to search.
	Dir string
	// Extensions is a comma-separated extension list, e.g. "js,jsx,tsx,ts".
	Extensions string
	// Exclude is an optional doublestar pattern; matching paths are skipped.
	Exclude string
}

// Pattern returns the glob pattern, relative to the search root, for a
// comma-separated extension list, e.g. "**/*.{js,jsx}".
func Pattern(extensions string) string {
	exts := SplitExtensions(extensions)

	switch len(exts) {
	case 0:
		return "**/*"
	case 1:
		return "**/*." + exts[0]
	default:
		return "**/*.{" + strings.Join(exts, ",") + "}"
	}
}

// SplitExtensions splits a comma-separated extension list, trimming spaces
// and leading dots and dropping empty entries.
func SplitExtensions(s string) []string {
	var out []string
	for _, ext := range strings.Split(s, ",") {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" {
			out = append(out, ext)
		}
	}
	return out
}

// Files returns the sorted list of regular files matching opts. The
// exclude pattern is tested against both the matched path and the path
// relative to Dir. Dir is never read as a pattern, so names such as
// "app/[id]" are searched literally. A missing Dir yields no files.
func Files(opts Options) ([]string, error) {
	if opts.Exclude != "" && !doublestar.ValidatePattern(filepath.ToSlash(opts.Exclude)) {
		return nil, fmt.Errorf("invalid exclude pattern %q", opts.Exclude)
	}

	if _, err := os.Stat(opts.Dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	pattern := Pattern(opts.Extensions)
	matches, err := doublestar.Glob(os.DirFS(opts.Dir), pattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, fmt.Errorf("globbing %s in %s: %w", pattern, opts.Dir, err)
	}

	files := make([]string, 0, len(matches))
	for _, rel := range matches {
		path := filepath.Join(opts.Dir, filepath.FromSlash(rel))
		if Excluded(opts.Exclude, path) || Excluded(opts.Exclude, rel) {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

// Excluded reports whether path matches the exclude pattern.
func Excluded(pattern, path string) bool {
	if pattern == "" {
		return false
	}
	ok, err := doublestar.Match(filepath.ToSlash(pattern), filepath.ToSlash(path))
	return err == nil && ok
}
