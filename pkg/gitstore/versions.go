package gitstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrBadVersion marks a rollback, diff, preview, or delete aimed at a
// version that does not exist or is not a valid target.
var ErrBadVersion = errors.New("bad version target")

// emptyTreeSha is git's well-known empty tree object, used to diff the root
// commit.
const emptyTreeSha = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

var shaPattern = regexp.MustCompile(`^[0-9a-f]{7,40}$`)

// Version is one entry of a project's history.
type Version struct {
	SHA           string `json:"sha"`
	Email         string `json:"email"`
	Message       string `json:"message"`
	Timestamp     int64  `json:"timestamp"` // commit time, ms since epoch
	IsUserVersion bool   `json:"isUserVersion"`
	IsInitial     bool   `json:"isInitial"`
}

// FileDiff is the per-file change summary of a version.
type FileDiff struct {
	Path      string `json:"path"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

// DiffResult is the parsed diff of one commit against its parent.
type DiffResult struct {
	Files []FileDiff `json:"files"`
	Raw   string     `json:"raw"`
}

// ListVersions returns the project history newest first, capped at
// MaxAutoVersionsDisplay auto commits plus MaxUserVersionsDisplay user
// commits.
func (s *Store) ListVersions(ctx context.Context, path string) ([]Version, error) {
	dir, err := s.ValidatePath(path)
	if err != nil {
		return nil, err
	}
	r := s.repoFor(dir)
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := s.ensureRepoLocked(ctx, dir); err != nil {
		return nil, err
	}
	return s.listVersionsLocked(ctx, dir)
}

func (s *Store) listVersionsLocked(ctx context.Context, dir string) ([]Version, error) {
	out, err := s.git.run(ctx, dir, nil, "log", "--pretty=format:%H%x09%ae%x09%ct%x09%s")
	if err != nil {
		return nil, err
	}
	rootSha, err := s.rootCommitLocked(ctx, dir)
	if err != nil {
		return nil, err
	}

	var versions []Version
	autoSeen, userSeen := 0, 0
	for _, line := range strings.Split(out, "\n") {
		parts := strings.SplitN(line, "\t", 4)
		if len(parts) != 4 {
			continue
		}
		secs, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			continue
		}
		v := Version{
			SHA:           parts[0],
			Email:         parts[1],
			Timestamp:     secs * 1000,
			Message:       parts[3],
			IsUserVersion: strings.HasPrefix(parts[3], "user:"),
			IsInitial:     parts[0] == rootSha,
		}
		if v.IsUserVersion {
			if userSeen >= MaxUserVersionsDisplay {
				continue
			}
			userSeen++
		} else {
			if autoSeen >= MaxAutoVersionsDisplay {
				continue
			}
			autoSeen++
		}
		versions = append(versions, v)
	}
	return versions, nil
}

// RollbackToVersion restores the working tree to the given commit and records
// the restore as a new auto-commit, preserving forward history. The initial
// root commit cannot be a rollback target.
func (s *Store) RollbackToVersion(ctx context.Context, path, sha string) (string, error) {
	dir, err := s.ValidatePath(path)
	if err != nil {
		return "", err
	}
	if !shaPattern.MatchString(sha) {
		return "", fmt.Errorf("%w: invalid commit sha %q", ErrBadVersion, sha)
	}

	r := s.repoFor(dir)
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := s.ensureRepoLocked(ctx, dir); err != nil {
		return "", err
	}
	objType, err := s.git.run(ctx, dir, nil, "cat-file", "-t", sha)
	if err != nil {
		return "", fmt.Errorf("%w: unknown version %q: %v", ErrBadVersion, sha, err)
	}
	if objType != "commit" {
		return "", fmt.Errorf("%w: object %q is a %s, not a commit", ErrBadVersion, sha, objType)
	}
	full, err := s.git.run(ctx, dir, nil, "rev-parse", sha)
	if err != nil {
		return "", err
	}
	rootSha, err := s.rootCommitLocked(ctx, dir)
	if err != nil {
		return "", err
	}
	if full == rootSha {
		return "", fmt.Errorf("%w: cannot roll back to the initial commit", ErrBadVersion)
	}
	if r.preview != nil {
		if err := s.exitPreviewLocked(ctx, dir, r, false); err != nil {
			return "", err
		}
	}
	if _, err := s.git.run(ctx, dir, nil, "checkout", full, "--", "."); err != nil {
		return "", err
	}
	return s.commitLocked(ctx, dir, r, "auto: Reverted to "+shortSha(full))
}

// GetDiff returns the change of one commit relative to its parent; the root
// commit is diffed against the empty tree.
func (s *Store) GetDiff(ctx context.Context, path, sha string) (*DiffResult, error) {
	dir, err := s.ValidatePath(path)
	if err != nil {
		return nil, err
	}
	if !shaPattern.MatchString(sha) {
		return nil, fmt.Errorf("%w: invalid commit sha %q", ErrBadVersion, sha)
	}
	r := s.repoFor(dir)
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := s.ensureRepoLocked(ctx, dir); err != nil {
		return nil, err
	}
	raw, err := s.git.run(ctx, dir, nil, "diff", sha+"~1", sha)
	if err != nil {
		// No parent: root commit.
		raw, err = s.git.run(ctx, dir, nil, "diff", emptyTreeSha, sha)
		if err != nil {
			return nil, err
		}
	}
	return parseDiff(raw), nil
}

// parseDiff counts added/removed lines per file in a unified diff, skipping
// the +++/--- file headers.
func parseDiff(raw string) *DiffResult {
	result := &DiffResult{Raw: raw}
	var current *FileDiff
	for _, line := range strings.Split(raw, "\n") {
		switch {
		case strings.HasPrefix(line, "diff --git "):
			// "diff --git a/<path> b/<path>"
			fields := strings.Fields(line)
			name := ""
			if len(fields) >= 4 {
				name = strings.TrimPrefix(fields[3], "b/")
			}
			result.Files = append(result.Files, FileDiff{Path: name})
			current = &result.Files[len(result.Files)-1]
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			if current != nil {
				current.Additions++
			}
		case strings.HasPrefix(line, "-"):
			if current != nil {
				current.Deletions++
			}
		}
	}
	return result
}

// rootCommitLocked returns the full sha of the initial commit.
func (s *Store) rootCommitLocked(ctx context.Context, dir string) (string, error) {
	out, err := s.git.run(ctx, dir, nil, "rev-list", "--max-parents=0", "HEAD")
	if err != nil {
		return "", err
	}
	lines := strings.Split(out, "\n")
	return strings.TrimSpace(lines[len(lines)-1]), nil
}

func shortSha(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
