package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/skein-dev/skein/pkg/settings"
)

// Built-in agent names.
const (
	Classifier  = "classifier"
	Research    = "research"
	Architect   = "architect"
	FrontendDev = "frontend-dev"
	BackendDev  = "backend-dev"
	Styling     = "styling"
	CodeReview  = "code-review"
	QA          = "qa"
	Security    = "security"
	BuildFix    = "build-fix"
)

// Definition is one agent: its model binding, system prompt, tool exposure,
// and whether it writes project files (dev agents trigger auto-commits and
// remediation).
type Definition struct {
	Name         string
	Provider     string
	Model        string
	SystemPrompt string
	Tools        []string
	IsDev        bool
}

// builtins is the compiled-in agent catalog. Provider, model, prompt, and
// tools are individually overridable through agent.<name>.* settings.
var builtins = map[string]Definition{
	Classifier: {
		Name:     Classifier,
		Provider: "anthropic",
		Model:    "claude-haiku-4-5",
		SystemPrompt: "Classify the user's request. Respond with exactly two words: " +
			"an intent from {build, fix, question} and a scope from " +
			"{frontend, backend, styling, full}, separated by a space.",
	},
	Research: {
		Name:     Research,
		Provider: "anthropic",
		Model:    "claude-sonnet-4-5",
		SystemPrompt: "You research the user's request: summarize the goal, target " +
			"audience, and constraints. Output concise notes for the architect.",
	},
	Architect: {
		Name:     Architect,
		Provider: "anthropic",
		Model:    "claude-sonnet-4-5",
		SystemPrompt: "You are the project architect. Produce a JSON plan with a " +
			"page/module breakdown and a design_system object (brand, colors, " +
			"typography, spacing, radius).",
	},
	FrontendDev: {
		Name:     FrontendDev,
		Provider: "anthropic",
		Model:    "claude-sonnet-4-5",
		SystemPrompt: "You implement the frontend. Write complete files with the " +
			"write_file tool; never emit partial snippets.",
		Tools: []string{"write_file", "read_file"},
		IsDev: true,
	},
	BackendDev: {
		Name:     BackendDev,
		Provider: "anthropic",
		Model:    "claude-sonnet-4-5",
		SystemPrompt: "You implement the backend. Write complete files with the " +
			"write_file tool; never emit partial snippets.",
		Tools: []string{"write_file", "read_file"},
		IsDev: true,
	},
	Styling: {
		Name:     Styling,
		Provider: "anthropic",
		Model:    "claude-sonnet-4-5",
		SystemPrompt: "You refine styling only: apply the design system to existing " +
			"markup with the write_file tool. Do not restructure pages.",
		Tools: []string{"write_file", "read_file"},
		IsDev: true,
	},
	CodeReview: {
		Name:     CodeReview,
		Provider: "anthropic",
		Model:    "claude-sonnet-4-5",
		SystemPrompt: "Review the produced files for correctness and consistency " +
			"with the plan. Report issues as a concise list.",
	},
	QA: {
		Name:     QA,
		Provider: "anthropic",
		Model:    "claude-sonnet-4-5",
		SystemPrompt: "You verify the build and tests. Reply with a JSON object " +
			`{"pass": true|false, "failures": [...]}.`,
	},
	Security: {
		Name:     Security,
		Provider: "anthropic",
		Model:    "claude-sonnet-4-5",
		SystemPrompt: "Audit the produced code for injection, secret leakage, and " +
			"unsafe file handling. Report findings as a concise list.",
	},
	BuildFix: {
		Name:     BuildFix,
		Provider: "anthropic",
		Model:    "claude-sonnet-4-5",
		SystemPrompt: "You fix build and test failures. The failure log follows; " +
			"rewrite only the affected files with the write_file tool.",
		Tools: []string{"write_file", "read_file"},
		IsDev: true,
	},
}

// Registry resolves agent definitions with settings overrides applied.
type Registry struct {
	settings *settings.Store
}

// NewRegistry creates a registry over the settings store.
func NewRegistry(store *settings.Store) *Registry {
	return &Registry{settings: store}
}

// Get resolves an agent by name. Unknown names are a validation error.
func (r *Registry) Get(ctx context.Context, name string) (Definition, error) {
	def, ok := builtins[name]
	if !ok {
		return Definition{}, fmt.Errorf("unknown agent %q", name)
	}
	o := r.settings.Agent(ctx, name)
	if o.Provider != "" {
		def.Provider = o.Provider
	}
	if o.Model != "" {
		def.Model = o.Model
	}
	if o.Prompt != "" {
		def.SystemPrompt = o.Prompt
	}
	if o.Tools != "" {
		def.Tools = splitTools(o.Tools)
	}
	return def, nil
}

// Names lists all built-in agents, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsDevAgent reports whether the named agent writes project files.
func IsDevAgent(name string) bool {
	return builtins[name].IsDev
}

func splitTools(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
