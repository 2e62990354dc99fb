package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skein-dev/skein/ent/agentexecution"
	"github.com/skein-dev/skein/pkg/agent"
	"github.com/skein-dev/skein/pkg/billing"
	"github.com/skein-dev/skein/pkg/settings"
	"github.com/skein-dev/skein/pkg/template"
)

// errAborted marks a step ended by cancellation.
var errAborted = errors.New("pipeline aborted")

// dispatchStep runs one agent node: render the prompt, write the provisional
// billing pair, call the model, finalize or void, and persist the execution
// row. Transient failures retry up to the configured count with backoff; the
// execution row tracks the retry count, and remediation callers create fresh
// rows per cycle.
func (o *Orchestrator) dispatchStep(ctx context.Context, rc *runContext, node Node) (string, error) {
	def, err := o.registry.Get(ctx, node.AgentName)
	if err != nil {
		return "", err
	}

	mc := rc.mc
	if len(node.UpstreamSources) > 0 {
		mc, err = rc.mc.Filtered(node.UpstreamSources)
		if err != nil {
			return "", err
		}
	}
	prompt, err := template.Render(node.InputTemplate, mc)
	if err != nil {
		return "", err
	}

	exec, err := o.client.AgentExecution.Create().
		SetID(uuid.New().String()).
		SetChatID(rc.chat.ID).
		SetRunID(rc.run.ID).
		SetAgentName(def.Name).
		SetStatus(agentexecution.StatusRunning).
		SetInput(prompt).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create execution row: %w", err)
	}
	o.bus.Publish(Event{Type: EventAgentStarted, ChatID: rc.chat.ID, RunID: rc.run.ID, Agent: def.Name, Status: "running"})

	maxOutput, maxToolSteps := stepLimits(def.Name, rc.cfg)
	apiKey := rc.keys[def.Provider]
	params := agent.CallParams{
		ExecutionID:     exec.ID,
		Provider:        def.Provider,
		Model:           def.Model,
		APIKey:          apiKey,
		SystemPrompt:    def.SystemPrompt,
		UserPrompt:      prompt,
		Tools:           toolSpecs(def.Tools),
		MaxOutputTokens: maxOutput,
		MaxToolSteps:    maxToolSteps,
	}
	track := billing.TrackParams{
		ChatID:      rc.chat.ID,
		ExecutionID: exec.ID,
		ProjectID:   rc.project.ID,
		ProjectName: rc.project.Name,
		ChatTitle:   rc.chat.Title,
		Provider:    def.Provider,
		Model:       def.Model,
		APIKeyHash:  agent.HashAPIKey(apiKey),
	}
	estimatedInput := (len(def.SystemPrompt) + len(prompt)) / 4

	var lastErr error
	for attempt := 0; attempt <= rc.cfg.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			o.markExecution(ctx, exec.ID, agentexecution.StatusStopped, "", "Stopped")
			return "", errAborted
		}
		if limit := o.settings.Int(ctx, settings.KeyMaxAgentCallsPerRun, 0); limit > 0 && rc.callCount >= limit {
			err := fmt.Errorf("agent call budget reached: %d calls", rc.callCount)
			o.markExecution(ctx, exec.ID, agentexecution.StatusFailed, "", err.Error())
			return "", err
		}

		ids, err := o.ledger.TrackProvisional(ctx, track, estimatedInput)
		if err != nil {
			o.markExecution(ctx, exec.ID, agentexecution.StatusFailed, "", err.Error())
			return "", fmt.Errorf("failed to write provisional billing pair: %w", err)
		}
		rc.callCount++

		res, callErr := o.caller.Call(ctx, params)
		if callErr != nil {
			if ctx.Err() != nil {
				// Aborted mid-call: the provisional pair stays for the
				// startup sweep.
				o.markExecution(ctx, exec.ID, agentexecution.StatusStopped, "", "Stopped")
				return "", errAborted
			}
			if err := o.ledger.Void(context.WithoutCancel(ctx), ids); err != nil {
				slog.Warn("Failed to void provisional pair", "execution_id", exec.ID, "error", err)
			}
			lastErr = callErr
			if agent.IsTransient(callErr) && attempt < rc.cfg.MaxRetries {
				o.retryExecution(ctx, rc, exec.ID, def.Name, attempt+1)
				backoff(ctx, attempt)
				continue
			}
			o.markExecution(ctx, exec.ID, agentexecution.StatusFailed, "", callErr.Error())
			o.bus.Publish(Event{Type: EventAgentFailed, ChatID: rc.chat.ID, RunID: rc.run.ID, Agent: def.Name, Status: "failed", Summary: callErr.Error()})
			return "", callErr
		}

		usage := res.Usage.Deduplicated()
		err = o.ledger.Finalize(context.WithoutCancel(ctx), ids, def.Provider, def.Model, billing.Usage{
			InputTokens:  usage.InputTokens,
			OutputTokens: usage.OutputTokens,
			CacheCreate:  usage.CacheCreate,
			CacheRead:    usage.CacheRead,
		})
		if err != nil {
			if verr := o.ledger.Void(context.WithoutCancel(ctx), ids); verr != nil {
				slog.Warn("Failed to void pair after finalize failure", "execution_id", exec.ID, "error", verr)
			}
			o.markExecution(ctx, exec.ID, agentexecution.StatusFailed, "", err.Error())
			return "", fmt.Errorf("failed to finalize billing pair: %w", err)
		}

		o.completeStep(ctx, rc, def, exec.ID, res)
		return res.OutputText, nil
	}
	return "", lastErr
}

// completeStep persists the successful execution and runs the dev-agent
// hooks: apply file writes, auto-commit, and record the snapshot.
func (o *Orchestrator) completeStep(ctx context.Context, rc *runContext, def agent.Definition, execID string, res *agent.Result) {
	rc.mc.Outputs[def.Name] = res.OutputText
	rc.mc.ToolCalls[def.Name] = toTemplateCalls(res.ToolCalls)
	rc.lastAgent = def.Name
	rc.lastOut = res.OutputText

	o.runCustomTools(ctx, rc, def.Name, res.ToolCalls)

	if def.IsDev {
		rc.mc.LastDevAgent = def.Name
		written := o.applyFileWrites(rc, res.ToolCalls)
		summary := def.Name + ": " + firstLine(rc.mc.UserMessage, 60)

		var sha string
		if rc.autoCommits >= rc.cfg.MaxAgentVersionsPerRun {
			slog.Info("Run version cap reached, skipping auto-commit", "run_id", rc.run.ID, "cap", rc.cfg.MaxAgentVersionsPerRun)
		} else {
			var err error
			sha, err = o.versions.AutoCommit(context.WithoutCancel(ctx), rc.project.Path, summary)
			if err != nil {
				// Best-effort; a failed commit never fails the pipeline.
				slog.Warn("Auto-commit failed", "project_id", rc.project.ID, "error", err)
			}
			if sha != "" {
				rc.autoCommits++
			}
		}
		if len(written) > 0 {
			if _, err := o.snapshots.Record(context.WithoutCancel(ctx), rc.project.ID, rc.chat.ID, summary, written, sha); err != nil {
				slog.Warn("Failed to record snapshot", "project_id", rc.project.ID, "error", err)
			}
		}
	}

	o.markExecution(ctx, execID, agentexecution.StatusCompleted, res.OutputText, "")
	o.bus.Publish(Event{Type: EventAgentCompleted, ChatID: rc.chat.ID, RunID: rc.run.ID, Agent: def.Name, Status: "completed"})
}

// runCustomTools executes custom tools the model invoked. Results land on the
// recorded calls so downstream templates can reference them through the
// tool-results transform. Names without a tool.<name> definition are builtins
// the gateway already handled; failures are logged and skipped, never fatal.
func (o *Orchestrator) runCustomTools(ctx context.Context, rc *runContext, agentName string, calls []agent.ToolCall) {
	recorded := rc.mc.ToolCalls[agentName]
	var projectDir string
	if dir, err := o.versions.ValidatePath(rc.project.Path); err == nil {
		projectDir = dir
	}
	for i, call := range calls {
		def, ok, err := o.tools.Lookup(ctx, call.Name)
		if err != nil {
			slog.Warn("Skipping custom tool with invalid definition", "tool", call.Name, "error", err)
			continue
		}
		if !ok {
			continue
		}
		params := make(map[string]string, len(call.Args))
		for k, v := range call.Args {
			params[k] = fmt.Sprint(v)
		}
		out, err := o.tools.Invoke(ctx, def, params, projectDir)
		if err != nil {
			slog.Warn("Custom tool failed", "tool", call.Name, "agent", agentName, "error", err)
			continue
		}
		if i < len(recorded) {
			recorded[i].Result = out
		}
	}
}

// applyFileWrites materializes write_file tool calls under the project
// directory and returns the relative paths written. Paths are confined to the
// project; escapes are skipped and logged, never fatal.
func (o *Orchestrator) applyFileWrites(rc *runContext, calls []agent.ToolCall) []string {
	var written []string
	for _, call := range calls {
		if call.Name != "write_file" {
			continue
		}
		rel, _ := call.Args["path"].(string)
		content, _ := call.Args["content"].(string)
		if rel == "" {
			continue
		}
		if err := writeProjectFile(rc.project.Path, rel, content); err != nil {
			slog.Error("Rejected file write", "project_id", rc.project.ID, "path", rel, "error", err)
			continue
		}
		written = append(written, rel)
	}
	return written
}

func writeProjectFile(projectDir, rel, content string) error {
	if strings.Contains(rel, "..") {
		return fmt.Errorf("path %q contains a parent traversal", rel)
	}
	abs := filepath.Join(projectDir, filepath.FromSlash(rel))
	if !strings.HasPrefix(abs, filepath.Clean(projectDir)+string(filepath.Separator)) {
		return fmt.Errorf("path %q escapes the project directory", rel)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o750); err != nil {
		return err
	}
	return os.WriteFile(abs, []byte(content), 0o640)
}

func (o *Orchestrator) markExecution(ctx context.Context, execID string, status agentexecution.Status, output, errMsg string) {
	upd := o.client.AgentExecution.UpdateOneID(execID).
		SetStatus(status).
		SetCompletedAt(time.Now().UnixMilli())
	if output != "" {
		upd.SetOutput(output)
	}
	if errMsg != "" {
		upd.SetError(errMsg)
	}
	if err := upd.Exec(context.WithoutCancel(ctx)); err != nil {
		slog.Warn("Failed to update execution row", "execution_id", execID, "error", err)
	}
}

func (o *Orchestrator) retryExecution(ctx context.Context, rc *runContext, execID, agentName string, retryCount int) {
	err := o.client.AgentExecution.UpdateOneID(execID).
		SetStatus(agentexecution.StatusRetrying).
		SetRetryCount(retryCount).
		Exec(context.WithoutCancel(ctx))
	if err != nil {
		slog.Warn("Failed to mark execution retrying", "execution_id", execID, "error", err)
	}
	o.bus.Publish(Event{Type: EventAgentRetrying, ChatID: rc.chat.ID, RunID: rc.run.ID, Agent: agentName, Status: "retrying"})
}

// backoff sleeps retryBackoffBase << attempt, interruptible by ctx.
func backoff(ctx context.Context, attempt int) {
	t := time.NewTimer(retryBackoffBase << attempt)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// stepLimits returns the output-token and tool-step budgets for an agent.
// The build-fix agent runs with its own larger budgets.
func stepLimits(name string, cfg settings.PipelineConfig) (maxOutput, maxToolSteps int) {
	if name == agent.BuildFix {
		return cfg.BuildFixMaxOutput, cfg.BuildFixMaxToolSteps
	}
	return cfg.DefaultMaxOutputTokens, cfg.DefaultMaxToolSteps
}

func toolSpecs(names []string) []agent.ToolSpec {
	specs := make([]agent.ToolSpec, 0, len(names))
	for _, n := range names {
		specs = append(specs, agent.ToolSpec{Name: n})
	}
	return specs
}

func toTemplateCalls(calls []agent.ToolCall) []template.ToolCall {
	out := make([]template.ToolCall, len(calls))
	for i, c := range calls {
		out[i] = template.ToolCall{Name: c.Name, Args: c.Args}
	}
	return out
}

func firstLine(s string, max int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > max {
		s = s[:max]
	}
	return s
}
