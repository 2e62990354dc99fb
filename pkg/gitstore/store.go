// Package gitstore keeps a linear, auditable file-change history per project
// using the host git binary. All paths are confined to a sandbox root, all
// commit messages are sanitized, and destructive operations (delete, prune)
// rewrite history with commit-tree so every retained version keeps its full
// snapshot.
package gitstore

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/skein-dev/skein/pkg/settings"
)

// Display caps for listVersions. Retention itself is governed by
// pipeline.maxVersionsRetained.
const (
	MaxAutoVersionsDisplay = 30
	MaxUserVersionsDisplay = 10
)

// baselineGitignore is written into every new project repo.
const baselineGitignore = `node_modules/
dist/
.env
.DS_Store
`

// Store is the git-backed project version store. Operations on the same
// project path are serialized; distinct projects may proceed in parallel.
type Store struct {
	sandbox  *Sandbox
	settings *settings.Store
	git      *runner

	mu    sync.Mutex
	repos map[string]*repoState
}

// repoState carries the per-path lock and any active preview.
type repoState struct {
	mu      sync.Mutex
	preview *previewState
}

// previewState exists only while a preview is active. HEAD never moves during
// preview, so a lost entry (crash) is recoverable from HEAD.
type previewState struct {
	originalHead string
	previewSha   string
}

// New creates a version store sandboxed under root.
func New(root string, store *settings.Store) (*Store, error) {
	sb, err := NewSandbox(root)
	if err != nil {
		return nil, err
	}
	return &Store{
		sandbox:  sb,
		settings: store,
		git:      &runner{},
		repos:    make(map[string]*repoState),
	}, nil
}

// ValidatePath normalizes a project path against the sandbox.
func (s *Store) ValidatePath(path string) (string, error) {
	return s.sandbox.Validate(path)
}

// Root is the sandbox root all project paths must live under.
func (s *Store) Root() string {
	return s.sandbox.Root()
}

// repoFor returns the per-path state, creating it on first use. Key is the
// validated (normalized) path.
func (s *Store) repoFor(path string) *repoState {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.repos[path]
	if !ok {
		r = &repoState{}
		s.repos[path] = r
	}
	return r
}

// EnsureRepo initializes the project repository if needed: git init, local
// commit identity from settings, a baseline .gitignore, and an empty initial
// commit. Idempotent.
func (s *Store) EnsureRepo(ctx context.Context, path string) error {
	dir, err := s.ValidatePath(path)
	if err != nil {
		return err
	}
	r := s.repoFor(dir)
	r.mu.Lock()
	defer r.mu.Unlock()
	return s.ensureRepoLocked(ctx, dir)
}

func (s *Store) ensureRepoLocked(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		return nil
	}

	if _, err := s.git.run(ctx, dir, nil, "init"); err != nil {
		return err
	}

	name, email := s.settings.GitIdentity(ctx)
	if _, err := s.git.run(ctx, dir, nil, "config", "user.name", name); err != nil {
		return err
	}
	if _, err := s.git.run(ctx, dir, nil, "config", "user.email", email); err != nil {
		return err
	}

	ignorePath := filepath.Join(dir, ".gitignore")
	if _, err := os.Stat(ignorePath); os.IsNotExist(err) {
		if err := os.WriteFile(ignorePath, []byte(baselineGitignore), 0o640); err != nil {
			return fmt.Errorf("failed to write baseline .gitignore: %w", err)
		}
	}

	// Only the baseline .gitignore goes into the initial commit. Files
	// already in the directory stay unstaged so the first auto-commit
	// records them as a real version.
	if _, err := s.git.run(ctx, dir, nil, "add", "--", ".gitignore"); err != nil {
		return err
	}
	if _, err := s.git.run(ctx, dir, nil, "commit", "--allow-empty", "-m", "auto: Initial project state"); err != nil {
		return err
	}
	slog.Info("Initialized project repository", "path", dir)
	return nil
}

// AutoCommit snapshots the working tree with an "auto:" commit. Any active
// preview is exited first (without cleaning) so agent writes never land on a
// detached tree. Commits only when the tree is dirty; afterwards prunes
// history beyond the retention cap. Returns the new HEAD SHA, or "" when
// there was nothing to commit.
func (s *Store) AutoCommit(ctx context.Context, path, message string) (string, error) {
	return s.commit(ctx, path, "auto: "+sanitizeMessage(message))
}

// UserCommit snapshots the working tree with a "user:" commit. Behaves like
// AutoCommit otherwise.
func (s *Store) UserCommit(ctx context.Context, path, label string) (string, error) {
	return s.commit(ctx, path, "user: "+sanitizeMessage(label))
}

func (s *Store) commit(ctx context.Context, path, fullMessage string) (string, error) {
	dir, err := s.ValidatePath(path)
	if err != nil {
		return "", err
	}
	r := s.repoFor(dir)
	r.mu.Lock()
	defer r.mu.Unlock()
	return s.commitLocked(ctx, dir, r, fullMessage)
}

func (s *Store) commitLocked(ctx context.Context, dir string, r *repoState, fullMessage string) (string, error) {
	if err := s.ensureRepoLocked(ctx, dir); err != nil {
		return "", err
	}
	if r.preview != nil {
		// Internal auto-exit: restore HEAD's tree, never clean.
		if err := s.exitPreviewLocked(ctx, dir, r, false); err != nil {
			return "", err
		}
	}

	if _, err := s.git.run(ctx, dir, nil, "add", "-A"); err != nil {
		return "", err
	}
	status, err := s.git.run(ctx, dir, nil, "status", "--porcelain")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(status) == "" {
		return "", nil
	}

	if _, err := s.git.run(ctx, dir, nil, "commit", "-m", fullMessage); err != nil {
		return "", err
	}
	sha, err := s.git.run(ctx, dir, nil, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}

	if err := s.pruneExcessLocked(ctx, dir, r); err != nil {
		// Pruning is best-effort; the commit itself succeeded.
		slog.Warn("Failed to prune project history", "path", dir, "error", err)
	}
	return sha, nil
}

// sanitizeMessage strips control characters (0x00-0x1f except newline) from
// user-provided commit text.
func sanitizeMessage(msg string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\n' {
			return -1
		}
		return r
	}, msg)
}
