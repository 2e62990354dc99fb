package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skein-dev/skein/ent"
	"github.com/skein-dev/skein/ent/message"
	"github.com/skein-dev/skein/pkg/billing"
	"github.com/skein-dev/skein/pkg/database"
	"github.com/skein-dev/skein/pkg/gitstore"
	"github.com/skein-dev/skein/pkg/pricing"
	"github.com/skein-dev/skein/pkg/settings"
)

type env struct {
	client   *ent.Client
	versions *gitstore.Store
	projects *ProjectService
	chats    *ChatService
	runs     *RunService
	usage    *UsageService
	snaps    *SnapshotService
	ledger   *billing.Ledger
}

func newEnv(t *testing.T) *env {
	t.Helper()
	client := database.OpenTest(t)
	cfg := settings.New(client)
	versions, err := gitstore.New(t.TempDir(), cfg)
	require.NoError(t, err)
	return &env{
		client:   client,
		versions: versions,
		projects: NewProjectService(client, versions),
		chats:    NewChatService(client),
		runs:     NewRunService(client),
		usage:    NewUsageService(client),
		snaps:    NewSnapshotService(client),
		ledger:   billing.NewLedger(client, pricing.NewEngine(cfg)),
	}
}

func TestProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	p, err := e.projects.Create(ctx, "demo", filepath.Join(e.versions.Root(), "demo"))
	require.NoError(t, err)
	assert.Equal(t, "demo", p.Name)

	got, err := e.projects.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	renamed, err := e.projects.Rename(ctx, p.ID, "demo-2")
	require.NoError(t, err)
	assert.Equal(t, "demo-2", renamed.Name)

	all, err := e.projects.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, e.projects.Delete(ctx, p.ID))
	_, err = e.projects.Get(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectValidation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	_, err := e.projects.Create(ctx, "", "x")
	assert.True(t, IsValidationError(err))

	_, err = e.projects.Create(ctx, "demo", "/etc/escape")
	assert.ErrorIs(t, err, gitstore.ErrSandboxViolation)

	_, err = e.projects.Create(ctx, "demo", filepath.Join(e.versions.Root(), "..", "out"))
	assert.ErrorIs(t, err, gitstore.ErrSandboxViolation)
}

func TestChatDeleteCascadesButLedgerSurvives(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	p, err := e.projects.Create(ctx, "demo", filepath.Join(e.versions.Root(), "demo"))
	require.NoError(t, err)
	c, err := e.chats.Create(ctx, p.ID, "chat one")
	require.NoError(t, err)

	_, err = e.chats.AppendMessage(ctx, c.ID, message.RoleUser, "build it", "")
	require.NoError(t, err)
	exec, err := e.client.AgentExecution.Create().
		SetID(uuid.New().String()).
		SetChatID(c.ID).
		SetAgentName("research").
		SetInput("in").
		Save(ctx)
	require.NoError(t, err)
	_, err = e.client.PipelineRun.Create().
		SetID(uuid.New().String()).
		SetChatID(c.ID).
		SetIntent("build").
		SetScope("full").
		SetUserMessage("build it").
		SetPlannedAgents([]string{"research"}).
		Save(ctx)
	require.NoError(t, err)
	require.NoError(t, e.ledger.Track(ctx, billing.TrackParams{
		ChatID:      c.ID,
		ExecutionID: exec.ID,
		ProjectID:   p.ID,
		ProjectName: p.Name,
		ChatTitle:   c.Title,
		Provider:    "anthropic",
		Model:       "claude-sonnet-4-5",
		Usage:       billing.Usage{InputTokens: 100, OutputTokens: 50},
	}))
	snap, err := e.snaps.Record(ctx, p.ID, c.ID, "step", []string{"index.html"}, "")
	require.NoError(t, err)

	require.NoError(t, e.chats.Delete(ctx, c.ID))

	for name, count := range map[string]func() (int, error){
		"messages":   func() (int, error) { return e.client.Message.Query().Count(ctx) },
		"executions": func() (int, error) { return e.client.AgentExecution.Query().Count(ctx) },
		"runs":       func() (int, error) { return e.client.PipelineRun.Query().Count(ctx) },
		"usage":      func() (int, error) { return e.client.TokenUsage.Query().Count(ctx) },
	} {
		n, err := count()
		require.NoError(t, err)
		assert.Zero(t, n, "%s should cascade with the chat", name)
	}

	// The permanent ledger and the detached snapshot remain.
	ledgerRows, err := e.client.BillingLedger.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, ledgerRows)

	kept, err := e.client.Snapshot.Get(ctx, snap.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.ChatID)
}

func TestChatMessagesOrdered(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	p, err := e.projects.Create(ctx, "demo", filepath.Join(e.versions.Root(), "demo"))
	require.NoError(t, err)
	c, err := e.chats.Create(ctx, p.ID, "chat")
	require.NoError(t, err)

	_, err = e.chats.AppendMessage(ctx, c.ID, message.RoleUser, "first", "")
	require.NoError(t, err)
	_, err = e.chats.AppendMessage(ctx, c.ID, message.RoleAssistant, "second", "research")
	require.NoError(t, err)

	msgs, err := e.chats.Messages(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "second", msgs[1].Content)
	require.NotNil(t, msgs[1].AgentName)
	assert.Equal(t, "research", *msgs[1].AgentName)
}

func TestRunServiceMarkInterrupted(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	p, err := e.projects.Create(ctx, "demo", filepath.Join(e.versions.Root(), "demo"))
	require.NoError(t, err)
	c, err := e.chats.Create(ctx, p.ID, "chat")
	require.NoError(t, err)
	run, err := e.client.PipelineRun.Create().
		SetID(uuid.New().String()).
		SetChatID(c.ID).
		SetIntent("build").
		SetScope("full").
		SetUserMessage("x").
		SetPlannedAgents([]string{"research"}).
		Save(ctx)
	require.NoError(t, err)

	n, err := e.runs.MarkInterrupted(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := e.runs.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "interrupted", string(got.Status))
}

func TestUsageSummaries(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	p, err := e.projects.Create(ctx, "demo", filepath.Join(e.versions.Root(), "demo"))
	require.NoError(t, err)
	c, err := e.chats.Create(ctx, p.ID, "chat")
	require.NoError(t, err)

	require.NoError(t, e.ledger.Track(ctx, billing.TrackParams{
		ChatID: c.ID, ProjectID: p.ID, ProjectName: p.Name, ChatTitle: c.Title,
		Provider: "anthropic", Model: "claude-sonnet-4-5",
		Usage: billing.Usage{InputTokens: 1000, OutputTokens: 500},
	}))
	// A provisional row must not count.
	_, err = e.ledger.TrackProvisional(ctx, billing.TrackParams{
		ChatID: c.ID, ProjectID: p.ID, ProjectName: p.Name, ChatTitle: c.Title,
		Provider: "anthropic", Model: "claude-sonnet-4-5",
	}, 4000)
	require.NoError(t, err)

	sum, err := e.usage.ProjectSummary(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Calls)
	assert.Equal(t, 1500, sum.TotalTokens)
	assert.InDelta(t, (1000*3.0+500*15.0)/1e6, sum.TotalCost, 1e-9)

	daily, err := e.usage.DailySummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, daily.Calls)

	total, err := e.usage.TotalSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total.Calls)
}
