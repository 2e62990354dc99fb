package gitstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrSandboxViolation marks a project path that escapes the sandbox root.
// Raised eagerly, never retried.
var ErrSandboxViolation = errors.New("path escapes project sandbox")

// Sandbox confines every filesystem and git operation to a fixed root
// directory.
type Sandbox struct {
	root string // absolute, symlink-resolved
}

// NewSandbox creates a sandbox rooted at dir (created if missing).
func NewSandbox(dir string) (*Sandbox, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve sandbox root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create sandbox root: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve sandbox root symlinks: %w", err)
	}
	return &Sandbox{root: resolved}, nil
}

// Root returns the absolute sandbox root.
func (s *Sandbox) Root() string {
	return s.root
}

// Validate normalizes a project path and rejects any escape attempt:
// raw ".." segments, absolute paths outside the root, and symlinks whose
// resolved target leaves the root. Returns the normalized absolute path.
func (s *Sandbox) Validate(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrSandboxViolation)
	}
	// Reject traversal in the raw input before any resolution.
	for _, seg := range strings.Split(filepath.ToSlash(path), "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q contains a parent traversal", ErrSandboxViolation, path)
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	abs = filepath.Clean(abs)
	if !s.contains(abs) {
		return "", fmt.Errorf("%w: %q resolves outside %q", ErrSandboxViolation, path, s.root)
	}

	// If the path exists, symlinks must not lead out of the root either.
	if _, statErr := os.Lstat(abs); statErr == nil {
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return "", fmt.Errorf("failed to resolve symlinks for %q: %w", path, err)
		}
		if !s.contains(resolved) {
			return "", fmt.Errorf("%w: %q links outside %q", ErrSandboxViolation, path, s.root)
		}
		return resolved, nil
	}
	return abs, nil
}

func (s *Sandbox) contains(abs string) bool {
	if abs == s.root {
		return true
	}
	return strings.HasPrefix(abs, s.root+string(filepath.Separator))
}
