package gitstore

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/skein-dev/skein/pkg/settings"
)

// DeleteVersion removes a single commit from the project history by
// reconstructing it with commit-tree: every retained commit is re-emitted
// (oldest first) with its original tree, message, and author date, chained to
// the previously emitted commit. Each retained version therefore keeps its
// exact snapshot. The only commit and HEAD cannot be deleted.
func (s *Store) DeleteVersion(ctx context.Context, path, sha string) error {
	dir, err := s.ValidatePath(path)
	if err != nil {
		return err
	}
	if !shaPattern.MatchString(sha) {
		return fmt.Errorf("%w: invalid commit sha %q", ErrBadVersion, sha)
	}
	r := s.repoFor(dir)
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := s.ensureRepoLocked(ctx, dir); err != nil {
		return err
	}
	full, err := s.git.run(ctx, dir, nil, "rev-parse", sha+"^{commit}")
	if err != nil {
		return fmt.Errorf("%w: unknown version %q: %v", ErrBadVersion, sha, err)
	}
	return s.deleteVersionLocked(ctx, dir, r, full)
}

func (s *Store) deleteVersionLocked(ctx context.Context, dir string, r *repoState, full string) error {
	out, err := s.git.run(ctx, dir, nil, "rev-list", "--reverse", "HEAD")
	if err != nil {
		return err
	}
	commits := strings.Fields(out)
	if len(commits) <= 1 {
		return fmt.Errorf("%w: cannot delete the only version", ErrBadVersion)
	}
	head := commits[len(commits)-1]
	if full == head {
		return fmt.Errorf("%w: cannot delete the current version", ErrBadVersion)
	}
	found := false
	for _, c := range commits {
		if c == full {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: version %q is not in the current history", ErrBadVersion, full)
	}

	// The rewrite invalidates every sha, including a preview restore point.
	if r.preview != nil {
		if err := s.exitPreviewLocked(ctx, dir, r, false); err != nil {
			return err
		}
	}

	prev := ""
	for _, c := range commits {
		if c == full {
			continue
		}
		next, err := s.reemitCommit(ctx, dir, c, prev)
		if err != nil {
			return err
		}
		prev = next
	}

	if _, err := s.git.run(ctx, dir, nil, "reset", "--hard", prev); err != nil {
		return err
	}
	if _, err := s.git.run(ctx, dir, nil, "reflog", "expire", "--expire=now", "--all"); err != nil {
		return err
	}
	if _, err := s.git.run(ctx, dir, nil, "gc", "--prune=now"); err != nil {
		return err
	}
	return nil
}

// reemitCommit creates a commit carrying c's tree, message, identity, and
// dates, parented on prev (or rootless when prev is empty). Returns the new
// sha.
func (s *Store) reemitCommit(ctx context.Context, dir, c, prev string) (string, error) {
	tree, err := s.git.run(ctx, dir, nil, "rev-parse", c+"^{tree}")
	if err != nil {
		return "", err
	}
	msg, err := s.git.run(ctx, dir, nil, "log", "-1", "--pretty=%B", c)
	if err != nil {
		return "", err
	}
	meta, err := s.git.run(ctx, dir, nil, "log", "-1", "--pretty=%an%x09%ae%x09%at%x09%ct", c)
	if err != nil {
		return "", err
	}
	parts := strings.SplitN(meta, "\t", 4)
	if len(parts) != 4 {
		return "", fmt.Errorf("unexpected commit metadata for %q", c)
	}
	env := []string{
		"GIT_AUTHOR_NAME=" + parts[0],
		"GIT_AUTHOR_EMAIL=" + parts[1],
		"GIT_AUTHOR_DATE=@" + parts[2] + " +0000",
		"GIT_COMMITTER_DATE=@" + parts[3] + " +0000",
	}

	args := []string{"commit-tree", tree}
	if prev != "" {
		args = append(args, "-p", prev)
	}
	args = append(args, "-m", msg)
	return s.git.run(ctx, dir, env, args...)
}

// PruneExcess deletes oldest versions until the history fits the retention
// cap. Auto-commits go first; user commits are only pruned when no non-HEAD
// auto-commit remains. Shas change after every rewrite, so the victim is
// re-selected each iteration.
func (s *Store) PruneExcess(ctx context.Context, path string) error {
	dir, err := s.ValidatePath(path)
	if err != nil {
		return err
	}
	r := s.repoFor(dir)
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := s.ensureRepoLocked(ctx, dir); err != nil {
		return err
	}
	return s.pruneExcessLocked(ctx, dir, r)
}

func (s *Store) pruneExcessLocked(ctx context.Context, dir string, r *repoState) error {
	max := s.settings.Int(ctx, "pipeline.maxVersionsRetained", settings.DefaultMaxVersionsRetained)
	if max <= 0 {
		return nil
	}
	for {
		out, err := s.git.run(ctx, dir, nil, "rev-list", "--count", "HEAD")
		if err != nil {
			return err
		}
		count, err := strconv.Atoi(strings.TrimSpace(out))
		if err != nil {
			return fmt.Errorf("unexpected rev-list count %q: %w", out, err)
		}
		if count <= max {
			return nil
		}
		victim, err := s.oldestPrunableLocked(ctx, dir)
		if err != nil {
			return err
		}
		if victim == "" {
			return nil
		}
		if err := s.deleteVersionLocked(ctx, dir, r, victim); err != nil {
			return err
		}
	}
}

// oldestPrunableLocked picks the oldest non-HEAD auto-commit, falling back to
// the absolute oldest non-HEAD commit.
func (s *Store) oldestPrunableLocked(ctx context.Context, dir string) (string, error) {
	head, err := s.git.run(ctx, dir, nil, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	out, err := s.git.run(ctx, dir, nil, "log", "--reverse", "--pretty=format:%H%x09%s")
	if err != nil {
		return "", err
	}
	oldest := ""
	for _, line := range strings.Split(out, "\n") {
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 || parts[0] == head {
			continue
		}
		if oldest == "" {
			oldest = parts[0]
		}
		if !strings.HasPrefix(parts[1], "user:") {
			return parts[0], nil
		}
	}
	return oldest, nil
}
