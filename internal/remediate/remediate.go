// Package remediate writes patched documents back to disk.
package remediate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	apperrors "github.com/ariel-frischer/testidcheck/internal/errors"
	"github.com/ariel-frischer/testidcheck/internal/markup"
)

// Failure is a document whose fixes could not be written.
type Failure struct {
	Path string
	Err  error
}

// Result lists the outcome of Apply.
type Result struct {
	// Fixed holds the paths written, in input order.
	Fixed  []string
	Failed []Failure
}

// Apply renders each changed document and replaces its file. A failing
// document leaves its file untouched and does not stop the others. Each
// path is written at most once.
func Apply(docs []*markup.Document) Result {
	var res Result
	seen := make(map[string]bool, len(docs))

	for _, doc := range docs {
		if doc == nil || !doc.Changed() || seen[doc.Path] {
			continue
		}
		seen[doc.Path] = true

		if err := applyOne(doc); err != nil {
			res.Failed = append(res.Failed, Failure{
				Path: doc.Path,
				Err:  apperrors.WriteFailed(doc.Path, err),
			})
			continue
		}
		res.Fixed = append(res.Fixed, doc.Path)
	}
	return res
}

func applyOne(doc *markup.Document) error {
	out, err := doc.Render()
	if err != nil {
		return err
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(doc.Path); err == nil {
		mode = info.Mode().Perm()
	}
	return WriteFile(doc.Path, out, mode)
}

// WriteFile replaces path with content through a temp file in the same
// directory and a rename, so readers never see a partial file.
func WriteFile(path string, content []byte, mode fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()
	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing to temp file: %w", err)
	}
	if err := tmpFile.Chmod(mode); err != nil {
		tmpFile.Close()
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	tmpPath = ""
	return nil
}
