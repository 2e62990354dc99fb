package gitstore

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skein-dev/skein/pkg/database"
	"github.com/skein-dev/skein/pkg/settings"
)

func newTestStore(t *testing.T) (*Store, *settings.Store) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	cfg := settings.New(database.OpenTest(t))
	s, err := New(t.TempDir(), cfg)
	require.NoError(t, err)
	return s, cfg
}

func projectDir(t *testing.T, s *Store) string {
	t.Helper()
	return filepath.Join(s.sandbox.Root(), "proj")
}

func writeProjectFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o640))
}

func readProjectFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestSandboxValidate(t *testing.T) {
	root := t.TempDir()
	sb, err := NewSandbox(root)
	require.NoError(t, err)

	t.Run("inside root", func(t *testing.T) {
		got, err := sb.Validate(filepath.Join(sb.Root(), "proj"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(sb.Root(), "proj"), got)
	})

	t.Run("rejects parent traversal", func(t *testing.T) {
		_, err := sb.Validate(filepath.Join(sb.Root(), "..", "escape"))
		assert.ErrorIs(t, err, ErrSandboxViolation)
	})

	t.Run("rejects path outside root", func(t *testing.T) {
		_, err := sb.Validate(t.TempDir())
		assert.ErrorIs(t, err, ErrSandboxViolation)
	})

	t.Run("rejects empty path", func(t *testing.T) {
		_, err := sb.Validate("")
		assert.ErrorIs(t, err, ErrSandboxViolation)
	})

	t.Run("rejects symlink escape", func(t *testing.T) {
		outside := t.TempDir()
		link := filepath.Join(sb.Root(), "sneaky")
		require.NoError(t, os.Symlink(outside, link))
		_, err := sb.Validate(link)
		assert.ErrorIs(t, err, ErrSandboxViolation)
	})
}

func TestSanitizeMessage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Add landing page", "Add landing page"},
		{"strips control chars", "bad\x00\x07message", "badmessage"},
		{"keeps newlines", "line one\nline two", "line one\nline two"},
		{"strips carriage return", "a\r\nb", "a\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeMessage(tt.input))
		})
	}
}

func TestEnsureRepoIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	dir := projectDir(t, s)

	require.NoError(t, s.EnsureRepo(ctx, dir))
	require.NoError(t, s.EnsureRepo(ctx, dir))

	versions, err := s.ListVersions(ctx, dir)
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.True(t, versions[0].IsInitial)
	assert.Equal(t, "auto: Initial project state", versions[0].Message)
}

func TestEnsureRepoExcludesExistingFiles(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	dir := projectDir(t, s)

	writeProjectFile(t, dir, "app.js", "console.log(1)")
	require.NoError(t, s.EnsureRepo(ctx, dir))

	// Only the baseline .gitignore lands in the initial commit.
	tracked, err := s.git.run(ctx, dir, nil, "ls-tree", "--name-only", "HEAD")
	require.NoError(t, err)
	assert.Equal(t, ".gitignore", tracked)

	// The pre-existing file becomes the first real version.
	sha, err := s.AutoCommit(ctx, dir, "seed")
	require.NoError(t, err)
	assert.NotEmpty(t, sha)
}

func TestAutoCommit(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	dir := projectDir(t, s)

	writeProjectFile(t, dir, "index.html", "<h1>hello</h1>")
	sha, err := s.AutoCommit(ctx, dir, "Build landing page")
	require.NoError(t, err)
	require.NotEmpty(t, sha)

	// Clean tree commits nothing.
	again, err := s.AutoCommit(ctx, dir, "no changes")
	require.NoError(t, err)
	assert.Empty(t, again)

	versions, err := s.ListVersions(ctx, dir)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, sha, versions[0].SHA)
	assert.Equal(t, "auto: Build landing page", versions[0].Message)
	assert.False(t, versions[0].IsUserVersion)
	assert.True(t, versions[1].IsInitial)
}

func TestUserCommit(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	dir := projectDir(t, s)

	writeProjectFile(t, dir, "app.js", "console.log(1)")
	sha, err := s.UserCommit(ctx, dir, "Checkpoint before redesign")
	require.NoError(t, err)
	require.NotEmpty(t, sha)

	versions, err := s.ListVersions(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, "user: Checkpoint before redesign", versions[0].Message)
	assert.True(t, versions[0].IsUserVersion)
}

func TestRollbackToVersion(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	dir := projectDir(t, s)

	writeProjectFile(t, dir, "file.txt", "v1")
	_, err := s.AutoCommit(ctx, dir, "v1")
	require.NoError(t, err)

	writeProjectFile(t, dir, "file.txt", "v2")
	shaA, err := s.AutoCommit(ctx, dir, "v2")
	require.NoError(t, err)

	writeProjectFile(t, dir, "file.txt", "v3")
	_, err = s.AutoCommit(ctx, dir, "v3")
	require.NoError(t, err)

	newHead, err := s.RollbackToVersion(ctx, dir, shaA)
	require.NoError(t, err)
	require.NotEmpty(t, newHead)

	assert.Equal(t, "v2", readProjectFile(t, dir, "file.txt"))
	versions, err := s.ListVersions(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, "auto: Reverted to "+shaA[:7], versions[0].Message)
}

func TestRollbackRejectsBadTargets(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	dir := projectDir(t, s)

	writeProjectFile(t, dir, "file.txt", "v1")
	_, err := s.AutoCommit(ctx, dir, "v1")
	require.NoError(t, err)

	versions, err := s.ListVersions(ctx, dir)
	require.NoError(t, err)
	initial := versions[len(versions)-1]
	require.True(t, initial.IsInitial)

	_, err = s.RollbackToVersion(ctx, dir, initial.SHA)
	assert.ErrorIs(t, err, ErrBadVersion)
	assert.ErrorContains(t, err, "initial commit")

	_, err = s.RollbackToVersion(ctx, dir, "not-a-sha")
	assert.ErrorIs(t, err, ErrBadVersion)
	assert.ErrorContains(t, err, "invalid commit sha")

	_, err = s.RollbackToVersion(ctx, dir, "deadbeef")
	assert.ErrorIs(t, err, ErrBadVersion)
	assert.ErrorContains(t, err, "unknown version")
}

func TestGetDiff(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	dir := projectDir(t, s)

	writeProjectFile(t, dir, "page.txt", "one\ntwo\n")
	sha, err := s.AutoCommit(ctx, dir, "add page")
	require.NoError(t, err)

	diff, err := s.GetDiff(ctx, dir, sha)
	require.NoError(t, err)
	require.Len(t, diff.Files, 1)
	assert.Equal(t, "page.txt", diff.Files[0].Path)
	assert.Equal(t, 2, diff.Files[0].Additions)
	assert.Equal(t, 0, diff.Files[0].Deletions)

	// Root commit has no parent; the empty-tree fallback applies.
	versions, err := s.ListVersions(ctx, dir)
	require.NoError(t, err)
	root := versions[len(versions)-1]
	diff, err = s.GetDiff(ctx, dir, root.SHA)
	require.NoError(t, err)
	assert.NotEmpty(t, diff.Files)
}

func TestPreview(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	dir := projectDir(t, s)

	writeProjectFile(t, dir, "file.txt", "one")
	sha1, err := s.AutoCommit(ctx, dir, "one")
	require.NoError(t, err)
	writeProjectFile(t, dir, "file.txt", "two")
	sha2, err := s.AutoCommit(ctx, dir, "two")
	require.NoError(t, err)

	require.NoError(t, s.EnterPreview(ctx, dir, sha1))
	assert.True(t, s.IsInPreview(dir))
	assert.Equal(t, "one", readProjectFile(t, dir, "file.txt"))

	// HEAD never moves during preview.
	head, err := s.git.run(ctx, dir, nil, "rev-parse", "HEAD")
	require.NoError(t, err)
	assert.Equal(t, sha2, head)

	require.NoError(t, s.ExitPreview(ctx, dir, false))
	assert.False(t, s.IsInPreview(dir))
	assert.Equal(t, "two", readProjectFile(t, dir, "file.txt"))
}

func TestAutoCommitExitsPreview(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	dir := projectDir(t, s)

	writeProjectFile(t, dir, "file.txt", "one")
	sha1, err := s.AutoCommit(ctx, dir, "one")
	require.NoError(t, err)
	writeProjectFile(t, dir, "file.txt", "two")
	_, err = s.AutoCommit(ctx, dir, "two")
	require.NoError(t, err)

	require.NoError(t, s.EnterPreview(ctx, dir, sha1))
	writeProjectFile(t, dir, "extra.txt", "new work")
	_, err = s.AutoCommit(ctx, dir, "agent output")
	require.NoError(t, err)
	assert.False(t, s.IsInPreview(dir))
}

func TestDeleteVersion(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	dir := projectDir(t, s)

	writeProjectFile(t, dir, "file.txt", "v2")
	shaC2, err := s.AutoCommit(ctx, dir, "v2")
	require.NoError(t, err)
	writeProjectFile(t, dir, "file.txt", "v3")
	shaC3, err := s.AutoCommit(ctx, dir, "v3")
	require.NoError(t, err)

	require.NoError(t, s.DeleteVersion(ctx, dir, shaC2))

	versions, err := s.ListVersions(ctx, dir)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	for _, v := range versions {
		assert.NotEqual(t, shaC2, v.SHA)
	}
	// HEAD tree is preserved through the rewrite.
	assert.Equal(t, "v3", readProjectFile(t, dir, "file.txt"))
	assert.Equal(t, "auto: v3", versions[0].Message)

	// The rewritten HEAD is a new sha but carries the original tree.
	assert.NotEqual(t, shaC3, versions[0].SHA)
}

func TestDeleteVersionRefusals(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	dir := projectDir(t, s)

	require.NoError(t, s.EnsureRepo(ctx, dir))
	versions, err := s.ListVersions(ctx, dir)
	require.NoError(t, err)
	require.Len(t, versions, 1)

	err = s.DeleteVersion(ctx, dir, versions[0].SHA)
	assert.ErrorContains(t, err, "only version")

	writeProjectFile(t, dir, "file.txt", "v2")
	head, err := s.AutoCommit(ctx, dir, "v2")
	require.NoError(t, err)
	err = s.DeleteVersion(ctx, dir, head)
	assert.ErrorContains(t, err, "current version")
}

func TestPruneExcess(t *testing.T) {
	s, cfg := newTestStore(t)
	ctx := context.Background()
	dir := projectDir(t, s)

	require.NoError(t, cfg.Set(ctx, "pipeline.maxVersionsRetained", "3"))

	for _, v := range []string{"v1", "v2", "v3", "v4", "v5"} {
		writeProjectFile(t, dir, "file.txt", v)
		_, err := s.AutoCommit(ctx, dir, v)
		require.NoError(t, err)
	}

	versions, err := s.ListVersions(ctx, dir)
	require.NoError(t, err)
	assert.Len(t, versions, 3)
	// HEAD content survives pruning.
	assert.Equal(t, "v5", readProjectFile(t, dir, "file.txt"))
	assert.Equal(t, "auto: v5", versions[0].Message)
}

func TestPruneKeepsUserCommits(t *testing.T) {
	s, cfg := newTestStore(t)
	ctx := context.Background()
	dir := projectDir(t, s)

	require.NoError(t, cfg.Set(ctx, "pipeline.maxVersionsRetained", "3"))

	writeProjectFile(t, dir, "file.txt", "keep me")
	_, err := s.UserCommit(ctx, dir, "milestone")
	require.NoError(t, err)

	for _, v := range []string{"v2", "v3", "v4", "v5"} {
		writeProjectFile(t, dir, "file.txt", v)
		_, err := s.AutoCommit(ctx, dir, v)
		require.NoError(t, err)
	}

	versions, err := s.ListVersions(ctx, dir)
	require.NoError(t, err)
	require.Len(t, versions, 3)

	var sawUser bool
	for _, v := range versions {
		if v.IsUserVersion {
			sawUser = true
		}
	}
	assert.True(t, sawUser, "user commit should outlive auto-commit pruning")
}
