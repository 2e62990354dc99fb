package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skein-dev/skein/pkg/database"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return New(database.OpenTest(t))
}

func TestGetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "pipeline.maxRetries", "5"))
	v, ok, err := s.Get(ctx, "pipeline.maxRetries")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "5", v)

	// Set is an upsert.
	require.NoError(t, s.Set(ctx, "pipeline.maxRetries", "7"))
	v, _, err = s.Get(ctx, "pipeline.maxRetries")
	require.NoError(t, err)
	assert.Equal(t, "7", v)

	require.NoError(t, s.Delete(ctx, "pipeline.maxRetries"))
	_, ok, err = s.Get(ctx, "pipeline.maxRetries")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	require.NoError(t, s.Delete(ctx, "pipeline.maxRetries"))
}

func TestListByPrefix(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Set(ctx, "pipeline.maxRetries", "5"))
	require.NoError(t, s.Set(ctx, "pipeline.warningThreshold", "90"))
	require.NoError(t, s.Set(ctx, "maxCostPerDay", "10"))

	got, err := s.List(ctx, "pipeline.")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"pipeline.maxRetries":       "5",
		"pipeline.warningThreshold": "90",
	}, got)
}

func TestTypedAccessorsFallBack(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	assert.Equal(t, 3, s.Int(ctx, "absent", 3))
	assert.Equal(t, 1.5, s.Float(ctx, "absent", 1.5))
	assert.True(t, s.Bool(ctx, "absent", true))
	assert.Equal(t, "x", s.String(ctx, "absent", "x"))

	// Unparsable values fall back too.
	require.NoError(t, s.Set(ctx, "bad", "not-a-number"))
	assert.Equal(t, 3, s.Int(ctx, "bad", 3))
	assert.Equal(t, 1.5, s.Float(ctx, "bad", 1.5))
	assert.False(t, s.Bool(ctx, "bad", false))
}

func TestPipelineConfigReadThrough(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	cfg := s.Pipeline(ctx)
	assert.Equal(t, DefaultMaxRetries, cfg.MaxRetries)
	assert.Equal(t, DefaultMaxVersionsRetained, cfg.MaxVersionsRetained)
	assert.False(t, cfg.AllowShellTools)

	require.NoError(t, s.Set(ctx, "pipeline.maxRetries", "1"))
	require.NoError(t, s.Set(ctx, "pipeline.allowShellTools", "true"))

	// Edits take effect on the next read, no restart needed.
	cfg = s.Pipeline(ctx)
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.True(t, cfg.AllowShellTools)
}

func TestGitIdentityDefaults(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	name, email := s.GitIdentity(ctx)
	assert.Equal(t, "Skein", name)
	assert.Equal(t, "skein@localhost", email)

	require.NoError(t, s.Set(ctx, KeyGitUserName, "Dev"))
	require.NoError(t, s.Set(ctx, KeyGitUserEmail, "dev@example.com"))
	name, email = s.GitIdentity(ctx)
	assert.Equal(t, "Dev", name)
	assert.Equal(t, "dev@example.com", email)
}

func TestAgentOverrides(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	ov := s.Agent(ctx, "research")
	assert.Empty(t, ov.Model)

	require.NoError(t, s.Set(ctx, "agent.research.model", "claude-haiku-4-5"))
	require.NoError(t, s.Set(ctx, "agent.research.tools", "write_file, http_fetch"))
	ov = s.Agent(ctx, "research")
	assert.Equal(t, "claude-haiku-4-5", ov.Model)
	assert.Equal(t, "write_file, http_fetch", ov.Tools)
}
