// Package agent defines the agent catalog and the model-call capability the
// orchestrator dispatches through. Provider SDKs live behind a gRPC gateway;
// the core only ever sees a Result with text, usage, and tool calls.
package agent

import "context"

// Usage is the token breakdown reported by the model gateway.
type Usage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
	CacheCreate  int `json:"cacheCreationInputTokens"`
	CacheRead    int `json:"cacheReadInputTokens"`
}

// Deduplicated returns the usage with cache tokens subtracted from the input
// count. Some providers report inputTokens inclusive of cache tokens; billing
// always wants the non-cached count, so the subtraction applies whenever the
// reported input can contain the cache counts.
func (u Usage) Deduplicated() Usage {
	cached := u.CacheCreate + u.CacheRead
	if cached > 0 && u.InputTokens >= cached {
		u.InputTokens -= cached
	}
	return u
}

// Total is the all-in token count.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens + u.CacheCreate + u.CacheRead
}

// ToolCall is one tool invocation requested by the model.
type ToolCall struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// CallParams is one model invocation.
type CallParams struct {
	ExecutionID     string
	Provider        string
	Model           string
	APIKey          string
	SystemPrompt    string
	UserPrompt      string
	Tools           []ToolSpec
	MaxOutputTokens int
	MaxToolSteps    int
}

// ToolSpec describes a tool exposed to the model.
type ToolSpec struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Schema      string `json:"schema"` // JSON schema for the arguments
}

// Result is the folded outcome of one model call.
type Result struct {
	OutputText string
	Usage      Usage
	ToolCalls  []ToolCall
}

// ModelCaller is the external model capability. Implementations must observe
// ctx cancellation: an aborted pipeline cancels every in-flight call.
type ModelCaller interface {
	Call(ctx context.Context, p CallParams) (*Result, error)
}
