// Package projectfs reads a project tree into prompt-ready text. Dotfiles,
// node_modules, and binary files are skipped, and the result is capped at a
// character budget so a large project cannot blow out a prompt.
package projectfs

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// maxFileBytes caps how much of a single file is considered; anything larger
// is almost certainly generated output, not source.
const maxFileBytes = 1 << 20

// sniffLen is how many leading bytes are inspected for binary content.
const sniffLen = 8000

// Source is the rendered project tree.
type Source struct {
	Text      string
	FileCount int
	Truncated bool
}

// Read walks the project tree and renders every text file under a combined
// character budget. Files are visited in sorted path order so output is
// deterministic. maxChars <= 0 means unlimited.
func Read(root string, maxChars int) (*Source, error) {
	paths, err := ListFiles(root)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	src := &Source{}
	for _, rel := range paths {
		data, err := os.ReadFile(filepath.Join(root, rel))
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", rel, err)
		}
		if isBinary(data) {
			continue
		}
		section := fmt.Sprintf("=== %s ===\n%s\n", rel, data)
		if maxChars > 0 && b.Len()+len(section) > maxChars {
			src.Truncated = true
			break
		}
		b.WriteString(section)
		src.FileCount++
	}
	src.Text = b.String()
	return src, nil
}

// ListFiles returns the relative paths of all candidate files, sorted.
// Dotfiles and dot-directories (including .git) and node_modules are skipped;
// binary detection happens at read time.
func ListFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if strings.HasPrefix(name, ".") || name == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Size() > maxFileBytes {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk project tree: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

// isBinary reports whether the leading bytes look like binary content.
func isBinary(data []byte) bool {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}
