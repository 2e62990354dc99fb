// Package pipeline orchestrates agent runs: classify the request, plan an
// ordered agent list, dispatch each agent through the model-call capability
// with write-ahead billing, retries and remediation, then persist outputs and
// auto-commit the project.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skein-dev/skein/ent"
	"github.com/skein-dev/skein/ent/pipelinerun"
	"github.com/skein-dev/skein/pkg/agent"
	"github.com/skein-dev/skein/pkg/billing"
	"github.com/skein-dev/skein/pkg/gitstore"
	"github.com/skein-dev/skein/pkg/projectfs"
	"github.com/skein-dev/skein/pkg/services"
	"github.com/skein-dev/skein/pkg/settings"
	"github.com/skein-dev/skein/pkg/template"
	"github.com/skein-dev/skein/pkg/tools"
)

// classifierMaxOutputTokens caps the classifier reply; it only ever answers
// with two words.
const classifierMaxOutputTokens = 20

// retryBackoffBase is doubled per retry attempt.
const retryBackoffBase = 500 * time.Millisecond

// Failure reasons recorded on a failed run.
const (
	ReasonBudgetExceeded       = "budget_exceeded"
	ReasonValidation           = "validation"
	ReasonAborted              = "aborted"
	ReasonUpstream             = "transient_upstream"
	ReasonRemediationExhausted = "remediation_exhausted"
)

// RunParams starts one pipeline run.
type RunParams struct {
	ChatID      string
	UserMessage string
	Keys        map[string]string // provider → API key
	Flow        []Node            // optional user-selected flow; skips planning
}

// Orchestrator composes the ledger, limiter, agent registry, model caller,
// and version store into the dispatch loop.
type Orchestrator struct {
	client    *ent.Client
	settings  *settings.Store
	ledger    *billing.Ledger
	limiter   *billing.Limiter
	registry  *agent.Registry
	caller    agent.ModelCaller
	versions  *gitstore.Store
	snapshots *services.SnapshotService
	tools     *tools.Runner
	bus       *Bus

	mu    sync.Mutex
	chats map[string]*chatState
}

// chatState serializes runs per chat and carries the abort handle.
type chatState struct {
	runMu  sync.Mutex
	mu     sync.Mutex
	cancel context.CancelFunc
}

// New creates an orchestrator.
func New(client *ent.Client, store *settings.Store, ledger *billing.Ledger, limiter *billing.Limiter, registry *agent.Registry, caller agent.ModelCaller, versions *gitstore.Store, snapshots *services.SnapshotService, runner *tools.Runner, bus *Bus) *Orchestrator {
	return &Orchestrator{
		client:    client,
		settings:  store,
		ledger:    ledger,
		limiter:   limiter,
		registry:  registry,
		caller:    caller,
		versions:  versions,
		snapshots: snapshots,
		tools:     runner,
		bus:       bus,
		chats:     make(map[string]*chatState),
	}
}

func (o *Orchestrator) chatStateFor(chatID string) *chatState {
	o.mu.Lock()
	defer o.mu.Unlock()
	st, ok := o.chats[chatID]
	if !ok {
		st = &chatState{}
		o.chats[chatID] = st
	}
	return st
}

// AbortPipeline cancels the chat's in-flight run, if any. Returns whether a
// run was aborted.
func (o *Orchestrator) AbortPipeline(chatID string) bool {
	o.mu.Lock()
	st, ok := o.chats[chatID]
	o.mu.Unlock()
	if !ok {
		return false
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.cancel == nil {
		return false
	}
	st.cancel()
	return true
}

// runContext is the per-run working state.
type runContext struct {
	run         *ent.PipelineRun
	chat        *ent.Chat
	project     *ent.Project
	cfg         settings.PipelineConfig
	keys        map[string]string
	mc          *template.MergeContext
	callCount   int
	autoCommits int
	lastAgent   string
	lastOut     string
}

// Run executes one pipeline run for a chat. Runs for the same chat are
// serialized; Run blocks until the prior run reaches a terminal state.
func (o *Orchestrator) Run(ctx context.Context, p RunParams) (*ent.PipelineRun, error) {
	st := o.chatStateFor(p.ChatID)
	st.runMu.Lock()
	defer st.runMu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	st.mu.Lock()
	st.cancel = cancel
	st.mu.Unlock()
	defer func() {
		st.mu.Lock()
		st.cancel = nil
		st.mu.Unlock()
	}()

	chat, err := o.client.Chat.Get(ctx, p.ChatID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat: %w", err)
	}
	project, err := o.client.Project.Get(ctx, chat.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	cfg := o.settings.Pipeline(ctx)
	rc := &runContext{
		chat:    chat,
		project: project,
		cfg:     cfg,
		keys:    p.Keys,
	}
	rc.mc = &template.MergeContext{
		UserMessage: p.UserMessage,
		Outputs:     make(map[string]string),
		ToolCalls:   make(map[string][]template.ToolCall),
		ProjectSource: func() (string, error) {
			src, err := projectfs.Read(project.Path, cfg.MaxProjectSourceChars)
			if err != nil {
				return "", err
			}
			return src.Text, nil
		},
	}

	if err := o.client.Message.Create().
		SetID(uuid.New().String()).
		SetChatID(chat.ID).
		SetRole("user").
		SetContent(p.UserMessage).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record user message: %w", err)
	}

	plan := o.plan(ctx, rc, p)

	run, err := o.client.PipelineRun.Create().
		SetID(uuid.New().String()).
		SetChatID(chat.ID).
		SetIntent(pipelinerun.Intent(plan.Intent)).
		SetScope(pipelinerun.Scope(plan.Scope)).
		SetUserMessage(p.UserMessage).
		SetPlannedAgents(plan.AgentNames()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline run: %w", err)
	}
	rc.run = run
	o.bus.Publish(Event{Type: EventRunStarted, ChatID: chat.ID, RunID: run.ID, Status: "running"})

	return o.execute(ctx, rc, plan)
}

// plan classifies the message and builds the agent list, unless the caller
// supplied an explicit flow.
func (o *Orchestrator) plan(ctx context.Context, rc *runContext, p RunParams) *Plan {
	if len(p.Flow) > 0 {
		intent, scope := o.classify(ctx, rc, p.UserMessage)
		return &Plan{Intent: intent, Scope: scope, Nodes: p.Flow}
	}
	intent, scope := o.classify(ctx, rc, p.UserMessage)
	return BuildPlan(intent, scope)
}

// classify asks the classifier agent for "<intent> <scope>". Classification
// failures fall back to build/full rather than failing the run.
func (o *Orchestrator) classify(ctx context.Context, rc *runContext, userMessage string) (Intent, Scope) {
	def, err := o.registry.Get(ctx, agent.Classifier)
	if err != nil {
		return IntentBuild, ScopeFull
	}
	key := rc.keys[def.Provider]
	res, err := o.caller.Call(ctx, agent.CallParams{
		Provider:        def.Provider,
		Model:           def.Model,
		APIKey:          key,
		SystemPrompt:    def.SystemPrompt,
		UserPrompt:      userMessage,
		MaxOutputTokens: classifierMaxOutputTokens,
	})
	if err != nil {
		slog.Warn("Classifier call failed, defaulting to build/full", "chat_id", rc.chat.ID, "error", err)
		return IntentBuild, ScopeFull
	}

	usage := res.Usage.Deduplicated()
	trackErr := o.ledger.Track(ctx, billing.TrackParams{
		ChatID:      rc.chat.ID,
		ProjectID:   rc.project.ID,
		ProjectName: rc.project.Name,
		ChatTitle:   rc.chat.Title,
		Provider:    def.Provider,
		Model:       def.Model,
		APIKeyHash:  agent.HashAPIKey(key),
		Usage: billing.Usage{
			InputTokens:  usage.InputTokens,
			OutputTokens: usage.OutputTokens,
			CacheCreate:  usage.CacheCreate,
			CacheRead:    usage.CacheRead,
		},
	})
	if trackErr != nil {
		slog.Warn("Failed to track classifier usage", "chat_id", rc.chat.ID, "error", trackErr)
	}

	fields := strings.Fields(res.OutputText)
	intent, scope := IntentBuild, ScopeFull
	if len(fields) > 0 {
		intent = ParseIntent(fields[0])
	}
	if len(fields) > 1 {
		scope = ParseScope(fields[1])
	}
	return intent, scope
}

// execute walks the planned nodes sequentially.
func (o *Orchestrator) execute(ctx context.Context, rc *runContext, plan *Plan) (*ent.PipelineRun, error) {
	for _, node := range plan.Nodes {
		if ctx.Err() != nil {
			return o.finishAborted(ctx, rc)
		}
		if reason, blocked := o.admit(ctx, rc); blocked {
			return o.finishFailed(ctx, rc, ReasonBudgetExceeded, reason)
		}

		out, err := o.dispatchStep(ctx, rc, node)
		if err != nil {
			if ctx.Err() != nil {
				return o.finishAborted(ctx, rc)
			}
			return o.finishFailed(ctx, rc, failureReason(err), err.Error())
		}

		if pass, checked := parsePassVerdict(out); checked && !pass {
			ok, err := o.remediate(ctx, rc, node, out)
			if err != nil {
				if ctx.Err() != nil {
					return o.finishAborted(ctx, rc)
				}
				return o.finishFailed(ctx, rc, failureReason(err), err.Error())
			}
			if !ok {
				return o.finishFailed(ctx, rc, ReasonRemediationExhausted,
					fmt.Sprintf("failures persist after %d remediation cycles", rc.cfg.MaxRemediationCycles))
			}
		}
	}
	return o.finishCompleted(ctx, rc)
}

// remediate dispatches fix cycles until the checking agent reports pass or
// the cycle budget runs out. Every cycle creates fresh execution rows.
func (o *Orchestrator) remediate(ctx context.Context, rc *runContext, checkNode Node, failures string) (bool, error) {
	for cycle := 1; cycle <= rc.cfg.MaxRemediationCycles; cycle++ {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		rc.mc.Outputs["failures"] = failures

		fixNode := Node{AgentName: agent.BuildFix, InputTemplate: buildFixTemplate}
		if _, err := o.dispatchStep(ctx, rc, fixNode); err != nil {
			return false, err
		}
		out, err := o.dispatchStep(ctx, rc, checkNode)
		if err != nil {
			return false, err
		}
		if pass, checked := parsePassVerdict(out); !checked || pass {
			return true, nil
		}
		failures = out
	}
	return false, nil
}

// admit runs the three budget checks. Warnings are logged but admit.
func (o *Orchestrator) admit(ctx context.Context, rc *runContext) (string, bool) {
	checks := []struct {
		name string
		fn   func() (billing.Decision, error)
	}{
		{"per-chat token limit", func() (billing.Decision, error) { return o.limiter.CheckPerChat(ctx, rc.chat.ID) }},
		{"daily cost limit", func() (billing.Decision, error) { return o.limiter.CheckDaily(ctx) }},
		{"project cost limit", func() (billing.Decision, error) { return o.limiter.CheckProject(ctx, rc.project.ID) }},
	}
	for _, c := range checks {
		d, err := c.fn()
		if err != nil {
			slog.Warn("Budget check failed, admitting", "check", c.name, "error", err)
			continue
		}
		if !d.Allowed {
			return fmt.Sprintf("%s reached: %.4f of %.4f", c.name, d.Current, d.Limit), true
		}
		if d.Warning {
			slog.Warn("Approaching budget limit", "check", c.name, "current", d.Current, "limit", d.Limit)
		}
	}
	return "", false
}

func (o *Orchestrator) finishCompleted(ctx context.Context, rc *runContext) (*ent.PipelineRun, error) {
	bg := context.WithoutCancel(ctx)
	if rc.lastOut != "" {
		err := o.client.Message.Create().
			SetID(uuid.New().String()).
			SetChatID(rc.chat.ID).
			SetRole("assistant").
			SetContent(rc.lastOut).
			SetAgentName(rc.lastAgent).
			Exec(bg)
		if err != nil {
			slog.Warn("Failed to record assistant message", "chat_id", rc.chat.ID, "error", err)
		}
	}
	run, err := o.client.PipelineRun.UpdateOneID(rc.run.ID).
		SetStatus(pipelinerun.StatusCompleted).
		SetCompletedAt(time.Now().UnixMilli()).
		Save(bg)
	if err != nil {
		return nil, fmt.Errorf("failed to finish run: %w", err)
	}
	o.bus.Publish(Event{Type: EventRunCompleted, ChatID: rc.chat.ID, RunID: run.ID, Status: "completed"})
	return run, nil
}

func (o *Orchestrator) finishFailed(ctx context.Context, rc *runContext, reason, detail string) (*ent.PipelineRun, error) {
	bg := context.WithoutCancel(ctx)
	run, err := o.client.PipelineRun.UpdateOneID(rc.run.ID).
		SetStatus(pipelinerun.StatusFailed).
		SetFailureReason(reason).
		SetCompletedAt(time.Now().UnixMilli()).
		Save(bg)
	if err != nil {
		return nil, fmt.Errorf("failed to record run failure: %w", err)
	}
	slog.Error("Pipeline run failed", "run_id", run.ID, "chat_id", rc.chat.ID, "reason", reason, "detail", detail)
	o.bus.Publish(Event{Type: EventRunFailed, ChatID: rc.chat.ID, RunID: run.ID, Status: "failed", Summary: detail})
	return run, nil
}

// finishAborted marks the run failed with the stable "Stopped" summary the
// streaming surface shows for user aborts.
func (o *Orchestrator) finishAborted(ctx context.Context, rc *runContext) (*ent.PipelineRun, error) {
	bg := context.WithoutCancel(ctx)
	run, err := o.client.PipelineRun.UpdateOneID(rc.run.ID).
		SetStatus(pipelinerun.StatusFailed).
		SetFailureReason(ReasonAborted).
		SetCompletedAt(time.Now().UnixMilli()).
		Save(bg)
	if err != nil {
		return nil, fmt.Errorf("failed to record run abort: %w", err)
	}
	o.bus.Publish(Event{Type: EventRunFailed, ChatID: rc.chat.ID, RunID: run.ID, Status: "failed", Summary: "Stopped"})
	return run, nil
}

// parsePassVerdict looks for a structured {"pass": bool} verdict in an
// agent's output. checked is false when no verdict is present.
func parsePassVerdict(out string) (pass, checked bool) {
	raw := strings.TrimSpace(out)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```")
		if i := strings.Index(raw, "\n"); i >= 0 {
			raw = raw[i+1:]
		}
		if i := strings.LastIndex(raw, "```"); i >= 0 {
			raw = raw[:i]
		}
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return false, false
	}
	v, ok := doc["pass"].(bool)
	if !ok {
		return false, false
	}
	return v, true
}

// failureReason maps an error to the run's recorded failure kind.
func failureReason(err error) string {
	if agent.IsTransient(err) {
		return ReasonUpstream
	}
	if strings.Contains(err.Error(), "unknown merge transform") ||
		strings.Contains(err.Error(), "unknown agent") {
		return ReasonValidation
	}
	if strings.Contains(err.Error(), "call budget") {
		return ReasonBudgetExceeded
	}
	return ReasonUpstream
}
