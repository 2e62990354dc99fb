package cleanup

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skein-dev/skein/ent"
	"github.com/skein-dev/skein/pkg/database"
	"github.com/skein-dev/skein/pkg/gitstore"
	"github.com/skein-dev/skein/pkg/services"
	"github.com/skein-dev/skein/pkg/settings"
)

type fixture struct {
	client    *ent.Client
	cfg       *settings.Store
	versions  *gitstore.Store
	projects  *services.ProjectService
	snapshots *services.SnapshotService
	svc       *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client := database.OpenTest(t)
	cfg := settings.New(client)
	versions, err := gitstore.New(t.TempDir(), cfg)
	require.NoError(t, err)
	projects := services.NewProjectService(client, versions)
	snapshots := services.NewSnapshotService(client)
	svc := NewService(DefaultConfig(), projects, snapshots, versions)
	return &fixture{
		client:    client,
		cfg:       cfg,
		versions:  versions,
		projects:  projects,
		snapshots: snapshots,
		svc:       svc,
	}
}

func TestExpireDetachedSnapshots(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	p, err := f.projects.Create(ctx, "demo", filepath.Join(f.versions.Root(), "demo"))
	require.NoError(t, err)
	chat, err := f.client.Chat.Create().
		SetID(uuid.New().String()).
		SetProjectID(p.ID).
		SetTitle("chat").
		Save(ctx)
	require.NoError(t, err)

	old := time.Now().AddDate(0, 0, -60).UnixMilli()

	// Detached and past retention: removed.
	_, err = f.client.Snapshot.Create().
		SetID(uuid.New().String()).
		SetProjectID(p.ID).
		SetLabel("stale").
		SetManifest([]string{"a.html"}).
		SetCreatedAt(old).
		Save(ctx)
	require.NoError(t, err)

	// Attached and equally old: kept.
	_, err = f.client.Snapshot.Create().
		SetID(uuid.New().String()).
		SetProjectID(p.ID).
		SetChatID(chat.ID).
		SetLabel("attached").
		SetManifest([]string{"b.html"}).
		SetCreatedAt(old).
		Save(ctx)
	require.NoError(t, err)

	// Detached but recent: kept.
	_, err = f.snapshots.Record(ctx, p.ID, "", "recent", []string{"c.html"}, "")
	require.NoError(t, err)

	f.svc.RunOnce(ctx)

	remaining, err := f.client.Snapshot.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	for _, snap := range remaining {
		assert.NotEqual(t, "stale", snap.Label)
	}
}

func TestPruneVersionHistories(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	ctx := context.Background()
	f := newFixture(t)

	dir := filepath.Join(f.versions.Root(), "demo")
	_, err := f.projects.Create(ctx, "demo", dir)
	require.NoError(t, err)

	require.NoError(t, f.cfg.Set(ctx, "pipeline.maxVersionsRetained", "3"))
	for i := 0; i < 6; i++ {
		name := filepath.Join(dir, "file.txt")
		require.NoError(t, os.WriteFile(name, []byte{byte('a' + i)}, 0o640))
		_, err := f.versions.AutoCommit(ctx, dir, "step")
		require.NoError(t, err)
	}

	f.svc.RunOnce(ctx)

	versions, err := f.versions.ListVersions(ctx, dir)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(versions), 3)
}

func TestStartStop(t *testing.T) {
	f := newFixture(t)
	f.svc.Start(context.Background())
	f.svc.Stop()
}
