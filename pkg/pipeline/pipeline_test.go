package pipeline

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skein-dev/skein/ent"
	"github.com/skein-dev/skein/ent/agentexecution"
	"github.com/skein-dev/skein/ent/billingledger"
	"github.com/skein-dev/skein/ent/pipelinerun"
	"github.com/skein-dev/skein/ent/tokenusage"
	"github.com/skein-dev/skein/pkg/agent"
	"github.com/skein-dev/skein/pkg/billing"
	"github.com/skein-dev/skein/pkg/database"
	"github.com/skein-dev/skein/pkg/gitstore"
	"github.com/skein-dev/skein/pkg/pricing"
	"github.com/skein-dev/skein/pkg/services"
	"github.com/skein-dev/skein/pkg/settings"
	"github.com/skein-dev/skein/pkg/tools"
)

// mockCaller scripts model responses per agent (matched on the call's model
// call count order is not needed; agents are matched via system prompt).
type mockCaller struct {
	mu      sync.Mutex
	calls   []agent.CallParams
	handler func(ctx context.Context, p agent.CallParams, nth int) (*agent.Result, error)
}

func (m *mockCaller) Call(ctx context.Context, p agent.CallParams) (*agent.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.calls = append(m.calls, p)
	nth := len(m.calls)
	m.mu.Unlock()
	return m.handler(ctx, p, nth)
}

func (m *mockCaller) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

type fixture struct {
	client   *ent.Client
	cfg      *settings.Store
	ledger   *billing.Ledger
	orch     *Orchestrator
	bus      *Bus
	caller   *mockCaller
	versions *gitstore.Store
	chatID   string
	projDir  string
}

func newFixture(t *testing.T, classifierReply string) *fixture {
	t.Helper()
	ctx := context.Background()

	client := database.OpenTest(t)
	cfg := settings.New(client)
	engine := pricing.NewEngine(cfg)
	ledger := billing.NewLedger(client, engine)
	limiter := billing.NewLimiter(client, cfg)
	registry := agent.NewRegistry(cfg)

	versions, err := gitstore.New(t.TempDir(), cfg)
	require.NoError(t, err)
	projDir := filepath.Join(versions.Root(), "proj")
	require.NoError(t, os.MkdirAll(projDir, 0o750))

	project, err := client.Project.Create().
		SetID(uuid.New().String()).
		SetName("demo").
		SetPath(projDir).
		Save(ctx)
	require.NoError(t, err)
	chat, err := client.Chat.Create().
		SetID(uuid.New().String()).
		SetProjectID(project.ID).
		SetTitle("landing page").
		Save(ctx)
	require.NoError(t, err)

	bus := NewBus()
	caller := &mockCaller{
		handler: func(_ context.Context, p agent.CallParams, _ int) (*agent.Result, error) {
			if p.MaxOutputTokens == classifierMaxOutputTokens {
				return &agent.Result{OutputText: classifierReply, Usage: agent.Usage{InputTokens: 40, OutputTokens: 2}}, nil
			}
			return &agent.Result{OutputText: "done", Usage: agent.Usage{InputTokens: 100, OutputTokens: 50}}, nil
		},
	}
	orch := New(client, cfg, ledger, limiter, registry, caller, versions, services.NewSnapshotService(client), tools.NewRunner(cfg), bus)

	return &fixture{
		client:   client,
		cfg:      cfg,
		ledger:   ledger,
		orch:     orch,
		bus:      bus,
		caller:   caller,
		versions: versions,
		chatID:   chat.ID,
		projDir:  projDir,
	}
}

func TestHappyPathBuildFull(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "build full")

	// The dev agent writes one file through a tool call.
	base := f.caller.handler
	f.caller.handler = func(ctx context.Context, p agent.CallParams, nth int) (*agent.Result, error) {
		if len(p.Tools) > 0 {
			return &agent.Result{
				OutputText: "wrote the page",
				Usage:      agent.Usage{InputTokens: 200, OutputTokens: 80},
				ToolCalls: []agent.ToolCall{
					{Name: "write_file", Args: map[string]any{"path": "index.html", "content": "<h1>hi</h1>"}},
				},
			}, nil
		}
		return base(ctx, p, nth)
	}

	run, err := f.orch.Run(ctx, RunParams{
		ChatID:      f.chatID,
		UserMessage: "Build a landing page",
		Keys:        map[string]string{"anthropic": "sk-test"},
	})
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusCompleted, run.Status)
	assert.Equal(t, pipelinerun.IntentBuild, run.Intent)
	assert.Equal(t, []string{"research", "architect", "frontend-dev", "code-review"}, run.PlannedAgents)

	execs, err := f.client.AgentExecution.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, execs, 4)
	for _, e := range execs {
		assert.Equal(t, agentexecution.StatusCompleted, e.Status)
	}

	// Classifier + 4 steps, all finalized, paired across both tables.
	usageRows, err := f.client.TokenUsage.Query().Where(tokenusage.Estimated(false)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, usageRows)
	provisional, err := f.client.TokenUsage.Query().Where(tokenusage.Estimated(true)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, provisional)
	ledgerRows, err := f.client.BillingLedger.Query().Where(billingledger.Estimated(false)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, ledgerRows)

	// The tool call landed on disk.
	data, err := os.ReadFile(filepath.Join(f.projDir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<h1>hi</h1>", string(data))

	// The write was recorded as a file-manifest snapshot.
	snaps, err := f.client.Snapshot.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, []string{"index.html"}, snaps[0].Manifest)
	require.NotNil(t, snaps[0].ChatID)
	assert.Equal(t, f.chatID, *snaps[0].ChatID)
	if _, err := exec.LookPath("git"); err == nil {
		assert.NotEmpty(t, snaps[0].CommitSha, "snapshot should carry the auto-commit sha")
	}

	// Messages: the user's plus the final assistant reply.
	msgs, err := f.client.Message.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, msgs)
}

func TestBudgetBlockStopsDispatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "build full")
	require.NoError(t, f.cfg.Set(ctx, settings.KeyMaxCostPerProject, "0.001"))

	// Step outputs are expensive enough to trip the project limit immediately.
	f.caller.handler = func(_ context.Context, p agent.CallParams, _ int) (*agent.Result, error) {
		if p.MaxOutputTokens == classifierMaxOutputTokens {
			return &agent.Result{OutputText: "build full", Usage: agent.Usage{InputTokens: 10, OutputTokens: 2}}, nil
		}
		return &agent.Result{OutputText: "big", Usage: agent.Usage{InputTokens: 500000, OutputTokens: 1000}}, nil
	}

	run, err := f.orch.Run(ctx, RunParams{
		ChatID:      f.chatID,
		UserMessage: "Build a landing page",
		Keys:        map[string]string{"anthropic": "sk-test"},
	})
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusFailed, run.Status)
	require.NotNil(t, run.FailureReason)
	assert.Equal(t, ReasonBudgetExceeded, *run.FailureReason)

	// Step 1 completed and finalized; step 2 was never dispatched.
	execs, err := f.client.AgentExecution.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, execs, 1)
	assert.Equal(t, agentexecution.StatusCompleted, execs[0].Status)

	provisional, err := f.client.TokenUsage.Query().Where(tokenusage.Estimated(true)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, provisional, "no provisional row may be left behind")
}

func TestTransientErrorRetries(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "question full")

	failures := 0
	f.caller.handler = func(_ context.Context, p agent.CallParams, _ int) (*agent.Result, error) {
		if p.MaxOutputTokens == classifierMaxOutputTokens {
			return &agent.Result{OutputText: "question full", Usage: agent.Usage{InputTokens: 10, OutputTokens: 2}}, nil
		}
		if failures == 0 {
			failures++
			return nil, &agent.CallError{Message: "rate limited", Code: "429", Retryable: true}
		}
		return &agent.Result{OutputText: "the project is a landing page", Usage: agent.Usage{InputTokens: 50, OutputTokens: 20}}, nil
	}

	run, err := f.orch.Run(ctx, RunParams{
		ChatID:      f.chatID,
		UserMessage: "What does this project do?",
		Keys:        map[string]string{"anthropic": "sk-test"},
	})
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusCompleted, run.Status)

	execs, err := f.client.AgentExecution.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, execs, 1)
	assert.Equal(t, agentexecution.StatusCompleted, execs[0].Status)
	assert.Equal(t, 1, execs[0].RetryCount)

	// The failed attempt's provisional pair was voided.
	provisional, err := f.client.TokenUsage.Query().Where(tokenusage.Estimated(true)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, provisional)
}

func TestFatalErrorFailsRun(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "question full")

	f.caller.handler = func(_ context.Context, p agent.CallParams, _ int) (*agent.Result, error) {
		if p.MaxOutputTokens == classifierMaxOutputTokens {
			return &agent.Result{OutputText: "question full", Usage: agent.Usage{InputTokens: 10, OutputTokens: 2}}, nil
		}
		return nil, &agent.CallError{Message: "invalid api key", Code: "401", Retryable: false}
	}

	run, err := f.orch.Run(ctx, RunParams{
		ChatID:      f.chatID,
		UserMessage: "What does this project do?",
		Keys:        map[string]string{"anthropic": "sk-bad"},
	})
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusFailed, run.Status)

	execs, err := f.client.AgentExecution.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, execs, 1)
	assert.Equal(t, agentexecution.StatusFailed, execs[0].Status)
	require.NotNil(t, execs[0].Error)
	assert.Contains(t, *execs[0].Error, "invalid api key")
}

func TestAbortLeavesProvisionalForSweep(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "question full")

	started := make(chan struct{})
	f.caller.handler = func(ctx context.Context, p agent.CallParams, _ int) (*agent.Result, error) {
		if p.MaxOutputTokens == classifierMaxOutputTokens {
			return &agent.Result{OutputText: "question full", Usage: agent.Usage{InputTokens: 10, OutputTokens: 2}}, nil
		}
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	}

	events, cancelSub := f.bus.Subscribe(f.chatID)
	defer cancelSub()

	type outcome struct {
		run *ent.PipelineRun
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		run, err := f.orch.Run(ctx, RunParams{
			ChatID:      f.chatID,
			UserMessage: "What does this project do?",
			Keys:        map[string]string{"anthropic": "sk-test"},
		})
		done <- outcome{run, err}
	}()

	<-started
	assert.True(t, f.orch.AbortPipeline(f.chatID))

	var run *ent.PipelineRun
	select {
	case o := <-done:
		require.NoError(t, o.err)
		run = o.run
	case <-time.After(5 * time.Second):
		t.Fatal("run did not terminate after abort")
	}
	assert.Equal(t, pipelinerun.StatusFailed, run.Status)
	require.NotNil(t, run.FailureReason)
	assert.Equal(t, ReasonAborted, *run.FailureReason)

	execs, err := f.client.AgentExecution.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, execs, 1)
	assert.Equal(t, agentexecution.StatusStopped, execs[0].Status)

	// The in-flight provisional pair stays for the startup sweep.
	provisional, err := f.client.TokenUsage.Query().Where(tokenusage.Estimated(true)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, provisional)
	n, err := f.ledger.SweepOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Streaming observers saw the stable "Stopped" summary.
	sawStopped := false
	for len(events) > 0 {
		if ev := <-events; ev.Type == EventRunFailed && ev.Summary == "Stopped" {
			sawStopped = true
		}
	}
	assert.True(t, sawStopped, "expected a failed event with summary Stopped")
}

func TestAbortWithoutRun(t *testing.T) {
	f := newFixture(t, "build full")
	assert.False(t, f.orch.AbortPipeline(f.chatID))
	assert.False(t, f.orch.AbortPipeline("no-such-chat"))
}

func TestCustomFlowUnknownAgentFailsValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "build full")

	run, err := f.orch.Run(ctx, RunParams{
		ChatID:      f.chatID,
		UserMessage: "Build it",
		Keys:        map[string]string{"anthropic": "sk-test"},
		Flow:        []Node{{AgentName: "mystery", InputTemplate: "{{userMessage}}"}},
	})
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusFailed, run.Status)
	require.NotNil(t, run.FailureReason)
	assert.Equal(t, ReasonValidation, *run.FailureReason)
}

func TestCustomToolResultsFlowDownstream(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "question full")
	require.NoError(t, f.cfg.Set(ctx, "tool.shout", `{"kind":"script","source":"return string.upper(params.word)"}`))

	f.caller.handler = func(_ context.Context, p agent.CallParams, nth int) (*agent.Result, error) {
		switch {
		case p.MaxOutputTokens == classifierMaxOutputTokens:
			return &agent.Result{OutputText: "question full", Usage: agent.Usage{InputTokens: 10, OutputTokens: 2}}, nil
		case nth == 2:
			return &agent.Result{
				OutputText: "looked it up",
				Usage:      agent.Usage{InputTokens: 50, OutputTokens: 10},
				ToolCalls:  []agent.ToolCall{{Name: "shout", Args: map[string]any{"word": "hi"}}},
			}, nil
		default:
			return &agent.Result{OutputText: "summarized", Usage: agent.Usage{InputTokens: 50, OutputTokens: 10}}, nil
		}
	}

	run, err := f.orch.Run(ctx, RunParams{
		ChatID:      f.chatID,
		UserMessage: "Summarize the findings",
		Keys:        map[string]string{"anthropic": "sk-test"},
		Flow: []Node{
			{AgentName: agent.Research, InputTemplate: "{{userMessage}}"},
			{AgentName: agent.Architect, InputTemplate: "Tool output:\n{{transform:tool-results:research}}"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusCompleted, run.Status)

	// The executed tool's output reached the downstream agent's prompt.
	arch, err := f.client.AgentExecution.Query().
		Where(agentexecution.AgentNameEQ("architect")).
		Only(ctx)
	require.NoError(t, err)
	assert.Contains(t, arch.Input, "shout: HI")
}

func TestAutoCommitCapPerRun(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	ctx := context.Background()
	f := newFixture(t, "build full")
	require.NoError(t, f.cfg.Set(ctx, "pipeline.maxAgentVersionsPerRun", "1"))

	devCalls := 0
	f.caller.handler = func(_ context.Context, p agent.CallParams, _ int) (*agent.Result, error) {
		if p.MaxOutputTokens == classifierMaxOutputTokens {
			return &agent.Result{OutputText: "build full", Usage: agent.Usage{InputTokens: 10, OutputTokens: 2}}, nil
		}
		devCalls++
		name := fmt.Sprintf("page%d.html", devCalls)
		return &agent.Result{
			OutputText: "wrote " + name,
			Usage:      agent.Usage{InputTokens: 100, OutputTokens: 40},
			ToolCalls:  []agent.ToolCall{{Name: "write_file", Args: map[string]any{"path": name, "content": "<p>x</p>"}}},
		}, nil
	}

	run, err := f.orch.Run(ctx, RunParams{
		ChatID:      f.chatID,
		UserMessage: "Build two pages",
		Keys:        map[string]string{"anthropic": "sk-test"},
		Flow: []Node{
			{AgentName: agent.FrontendDev, InputTemplate: "{{userMessage}}"},
			{AgentName: agent.FrontendDev, InputTemplate: "{{userMessage}}"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusCompleted, run.Status)

	// One auto-commit plus the initial commit; the second dev step hit the
	// per-run cap and stayed uncommitted.
	versions, err := f.versions.ListVersions(ctx, f.projDir)
	require.NoError(t, err)
	require.Len(t, versions, 2)

	// Both writes were snapshotted; only the first carries a commit sha.
	snaps, err := f.client.Snapshot.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	withSha := 0
	for _, s := range snaps {
		if s.CommitSha != "" {
			withSha++
		}
	}
	assert.Equal(t, 1, withSha)
}

func TestRemediationCycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "fix full")

	qaCalls := 0
	f.caller.handler = func(_ context.Context, p agent.CallParams, _ int) (*agent.Result, error) {
		switch {
		case p.MaxOutputTokens == classifierMaxOutputTokens:
			return &agent.Result{OutputText: "fix full", Usage: agent.Usage{InputTokens: 10, OutputTokens: 2}}, nil
		case p.MaxOutputTokens == settings.DefaultBuildFixMaxOutput:
			// build-fix agent
			return &agent.Result{OutputText: "patched", Usage: agent.Usage{InputTokens: 100, OutputTokens: 40}}, nil
		default:
			qaCalls++
			if qaCalls == 1 {
				return &agent.Result{OutputText: `{"pass": false, "failures": ["TypeError in app.js"]}`, Usage: agent.Usage{InputTokens: 80, OutputTokens: 20}}, nil
			}
			return &agent.Result{OutputText: `{"pass": true}`, Usage: agent.Usage{InputTokens: 80, OutputTokens: 10}}, nil
		}
	}

	run, err := f.orch.Run(ctx, RunParams{
		ChatID:      f.chatID,
		UserMessage: "Fix the build",
		Keys:        map[string]string{"anthropic": "sk-test"},
	})
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusCompleted, run.Status)
	// Planned list never grows, even though remediation added executions.
	assert.Equal(t, []string{"build-fix", "qa"}, run.PlannedAgents)

	// build-fix, qa(fail), build-fix(cycle), qa(pass): four execution rows.
	execs, err := f.client.AgentExecution.Query().All(ctx)
	require.NoError(t, err)
	assert.Len(t, execs, 4)
}

func TestRemediationExhaustion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "fix full")
	require.NoError(t, f.cfg.Set(ctx, "pipeline.maxRemediationCycles", "1"))

	f.caller.handler = func(_ context.Context, p agent.CallParams, _ int) (*agent.Result, error) {
		switch {
		case p.MaxOutputTokens == classifierMaxOutputTokens:
			return &agent.Result{OutputText: "fix full", Usage: agent.Usage{InputTokens: 10, OutputTokens: 2}}, nil
		case p.MaxOutputTokens == settings.DefaultBuildFixMaxOutput:
			return &agent.Result{OutputText: "tried", Usage: agent.Usage{InputTokens: 100, OutputTokens: 40}}, nil
		default:
			return &agent.Result{OutputText: `{"pass": false}`, Usage: agent.Usage{InputTokens: 80, OutputTokens: 20}}, nil
		}
	}

	run, err := f.orch.Run(ctx, RunParams{
		ChatID:      f.chatID,
		UserMessage: "Fix the build",
		Keys:        map[string]string{"anthropic": "sk-test"},
	})
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusFailed, run.Status)
	require.NotNil(t, run.FailureReason)
	assert.Equal(t, ReasonRemediationExhausted, *run.FailureReason)
}

func TestParsePassVerdict(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		pass    bool
		checked bool
	}{
		{"plain pass", `{"pass": true}`, true, true},
		{"plain fail", `{"pass": false}`, false, true},
		{"fenced", "```json\n{\"pass\": false}\n```", false, true},
		{"no verdict", "all good!", false, false},
		{"json without pass", `{"ok": true}`, false, false},
		{"non-bool pass", `{"pass": "yes"}`, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pass, checked := parsePassVerdict(tt.out)
			assert.Equal(t, tt.pass, pass)
			assert.Equal(t, tt.checked, checked)
		})
	}
}

func TestBuildPlan(t *testing.T) {
	tests := []struct {
		intent Intent
		scope  Scope
		want   []string
	}{
		{IntentBuild, ScopeFull, []string{"research", "architect", "frontend-dev", "code-review"}},
		{IntentBuild, ScopeBackend, []string{"research", "architect", "backend-dev", "code-review"}},
		{IntentBuild, ScopeStyling, []string{"architect", "styling", "code-review"}},
		{IntentFix, ScopeFull, []string{"build-fix", "qa"}},
		{IntentFix, ScopeStyling, []string{"styling", "code-review"}},
		{IntentQuestion, ScopeFull, []string{"research"}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s-%s", tt.intent, tt.scope), func(t *testing.T) {
			assert.Equal(t, tt.want, BuildPlan(tt.intent, tt.scope).AgentNames())
		})
	}
}

func TestParseIntentScope(t *testing.T) {
	assert.Equal(t, IntentFix, ParseIntent(" Fix "))
	assert.Equal(t, IntentBuild, ParseIntent("nonsense"))
	assert.Equal(t, ScopeStyling, ParseScope("styling"))
	assert.Equal(t, ScopeFull, ParseScope(""))
}

func TestBusDropsSlowSubscribers(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe("chat-1")
	defer cancel()

	for i := 0; i < 100; i++ {
		bus.Publish(Event{Type: EventAgentStarted, ChatID: "chat-1"})
	}
	// The buffer holds 64; extra events were dropped, not blocked on.
	assert.Len(t, ch, 64)
}
