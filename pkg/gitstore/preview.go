package gitstore

import (
	"context"
	"fmt"
)

// EnterPreview checks out the target commit's tree into the working directory
// without moving HEAD. The current HEAD is remembered as the restore point;
// re-entering with a different sha retargets the preview but keeps the
// original restore point.
func (s *Store) EnterPreview(ctx context.Context, path, sha string) error {
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

	if r.preview == nil {
		head, err := s.git.run(ctx, dir, nil, "rev-parse", "HEAD")
		if err != nil {
			return err
		}
		r.preview = &previewState{originalHead: head}
	}
	if _, err := s.git.run(ctx, dir, nil, "checkout", full, "--", "."); err != nil {
		return err
	}
	r.preview.previewSha = full
	return nil
}

// ExitPreview restores the working directory to the tree of the HEAD recorded
// at preview entry. clean additionally runs `git clean -fd`; it is passed only
// on explicit user exit, never by internal auto-exit. No-op when no preview is
// active.
func (s *Store) ExitPreview(ctx context.Context, path string, clean bool) error {
	dir, err := s.ValidatePath(path)
	if err != nil {
		return err
	}
	r := s.repoFor(dir)
	r.mu.Lock()
	defer r.mu.Unlock()
	return s.exitPreviewLocked(ctx, dir, r, clean)
}

func (s *Store) exitPreviewLocked(ctx context.Context, dir string, r *repoState, clean bool) error {
	if r.preview == nil {
		return nil
	}
	if _, err := s.git.run(ctx, dir, nil, "checkout", r.preview.originalHead, "--", "."); err != nil {
		return err
	}
	if clean {
		if _, err := s.git.run(ctx, dir, nil, "clean", "-fd"); err != nil {
			return err
		}
	}
	r.preview = nil
	return nil
}

// IsInPreview reports whether a preview is active for the path. An invalid
// path simply reports false.
func (s *Store) IsInPreview(path string) bool {
	dir, err := s.ValidatePath(path)
	if err != nil {
		return false
	}
	s.mu.Lock()
	r, ok := s.repos[dir]
	s.mu.Unlock()
	if !ok {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.preview != nil
}
