// Package tools executes the custom tool variants agents may call: HTTP
// requests, restricted Lua scripts, and (when explicitly enabled) shell
// commands confined to the project directory. Tool parameters are injected by
// {{name}} interpolation before execution.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/skein-dev/skein/pkg/settings"
)

// keyPrefix namespaces custom tool definitions in settings: tool.<name> holds
// the JSON-encoded Definition.
const keyPrefix = "tool."

// Tool kinds.
const (
	KindHTTP   = "http"
	KindScript = "script"
	KindShell  = "shell"
)

// Definition describes a custom tool. Kind selects which fields apply.
type Definition struct {
	Name string `json:"name"`
	Kind string `json:"kind"`

	// http
	URL     string            `json:"url,omitempty"`
	Method  string            `json:"method,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    string            `json:"body,omitempty"`

	// script
	Source string `json:"source,omitempty"`

	// shell
	Command string `json:"command,omitempty"`
}

// Runner executes tool definitions. Shell tools additionally require the
// pipeline.allowShellTools setting and a validated project directory.
type Runner struct {
	settings *settings.Store
}

// NewRunner creates a tool runner.
func NewRunner(store *settings.Store) *Runner {
	return &Runner{settings: store}
}

// Lookup loads the named custom tool definition from settings. ok is false
// when no definition exists under tool.<name>; names without one belong to
// builtin tools and are not ours to run.
func (r *Runner) Lookup(ctx context.Context, name string) (Definition, bool, error) {
	raw, ok, err := r.settings.Get(ctx, keyPrefix+name)
	if err != nil || !ok {
		return Definition{}, false, err
	}
	var def Definition
	if err := json.Unmarshal([]byte(raw), &def); err != nil {
		return Definition{}, false, fmt.Errorf("invalid definition for tool %q: %w", name, err)
	}
	def.Name = name
	return def, true, nil
}

// Invoke executes a tool with the given parameters. projectDir is the
// already-validated project directory; only shell tools use it.
func (r *Runner) Invoke(ctx context.Context, def Definition, params map[string]string, projectDir string) (string, error) {
	switch def.Kind {
	case KindHTTP:
		return r.invokeHTTP(ctx, def, params)
	case KindScript:
		return r.invokeScript(ctx, def, params)
	case KindShell:
		return r.invokeShell(ctx, def, params, projectDir)
	}
	return "", fmt.Errorf("unknown tool kind %q", def.Kind)
}

var paramPattern = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_-]*)\}\}`)

// interpolate substitutes {{name}} placeholders from params. Placeholders
// without a matching parameter are left literal.
func interpolate(s string, params map[string]string) string {
	return paramPattern.ReplaceAllStringFunc(s, func(tok string) string {
		name := paramPattern.FindStringSubmatch(tok)[1]
		if v, ok := params[name]; ok {
			return v
		}
		return tok
	})
}
