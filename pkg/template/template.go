// Package template resolves merge fields in agent input templates. A template
// is plain text with {{userMessage}}, {{output:KEY}}, {{context:KEY}}, and
// {{transform:NAME[:KEY]}} placeholders; anything unrecognized is left
// literal.
package template

import (
	"fmt"
	"strings"
)

// Fragment is one piece of a parsed template: either literal text or a merge
// reference.
type Fragment struct {
	Literal string
	Ref     *Ref
}

// Ref is a parsed merge field.
type Ref struct {
	Kind string // "userMessage", "output", "context" or "transform"
	Name string // transform name, or the source key for output/context
	Key  string // optional source key for transforms
	Raw  string // original token including braces
}

// ToolCall is a recorded tool invocation from an agent's model response.
// Result carries the output of an executed custom tool; builtin calls the
// gateway handles leave it empty.
type ToolCall struct {
	Name   string
	Args   map[string]any
	Result string
}

// MergeContext carries everything a template can reference: the user message,
// prior agent outputs keyed by agent name, their tool calls, and a lazy
// project-source reader.
type MergeContext struct {
	UserMessage   string
	Outputs       map[string]string
	ToolCalls     map[string][]ToolCall
	LastDevAgent  string
	ProjectSource func() (string, error)
}

// Parse tokenizes a template into fragments. Parsing never fails; malformed
// or unknown tokens become literals and are reported at render time only when
// they name an unknown transform.
func Parse(s string) []Fragment {
	var frags []Fragment
	for len(s) > 0 {
		open := strings.Index(s, "{{")
		if open < 0 {
			frags = append(frags, Fragment{Literal: s})
			break
		}
		closing := strings.Index(s[open:], "}}")
		if closing < 0 {
			frags = append(frags, Fragment{Literal: s})
			break
		}
		if open > 0 {
			frags = append(frags, Fragment{Literal: s[:open]})
		}
		token := s[open : open+closing+2]
		frags = append(frags, parseToken(token))
		s = s[open+closing+2:]
	}
	return frags
}

func parseToken(token string) Fragment {
	inner := strings.TrimSuffix(strings.TrimPrefix(token, "{{"), "}}")
	parts := strings.SplitN(inner, ":", 3)
	switch parts[0] {
	case "userMessage":
		if len(parts) == 1 {
			return Fragment{Ref: &Ref{Kind: "userMessage", Raw: token}}
		}
	case "output", "context":
		if len(parts) == 2 && parts[1] != "" {
			return Fragment{Ref: &Ref{Kind: parts[0], Name: parts[1], Raw: token}}
		}
	case "transform":
		if len(parts) >= 2 && parts[1] != "" {
			ref := &Ref{Kind: "transform", Name: parts[1], Raw: token}
			if len(parts) == 3 {
				ref.Key = parts[2]
			}
			return Fragment{Ref: ref}
		}
	}
	return Fragment{Literal: token}
}

// Render resolves a template against the merge context. Missing output keys
// resolve to empty strings; an unknown transform name is a validation error.
func Render(s string, mc *MergeContext) (string, error) {
	var b strings.Builder
	for _, f := range Parse(s) {
		if f.Ref == nil {
			b.WriteString(f.Literal)
			continue
		}
		v, err := mc.resolve(f.Ref)
		if err != nil {
			return "", err
		}
		b.WriteString(v)
	}
	return b.String(), nil
}

func (mc *MergeContext) resolve(ref *Ref) (string, error) {
	switch ref.Kind {
	case "userMessage":
		return mc.UserMessage, nil
	case "output", "context":
		return mc.Outputs[ref.Name], nil
	case "transform":
		return mc.transform(ref.Name, ref.Key)
	}
	return ref.Raw, nil
}

// UpstreamSource selects and optionally renames/transforms one prior output
// for a pipeline node. When a node declares sources, the filtered view
// replaces the default all-ancestors view.
type UpstreamSource struct {
	SourceKey string `json:"sourceKey"`
	Alias     string `json:"alias,omitempty"`
	Transform string `json:"transform,omitempty"` // raw, design-system, file-manifest, project-source, tool-results
}

// Filtered builds a merge context whose Outputs contain only the declared
// sources, each under its alias and passed through its transform.
func (mc *MergeContext) Filtered(sources []UpstreamSource) (*MergeContext, error) {
	out := &MergeContext{
		UserMessage:   mc.UserMessage,
		Outputs:       make(map[string]string, len(sources)),
		ToolCalls:     mc.ToolCalls,
		LastDevAgent:  mc.LastDevAgent,
		ProjectSource: mc.ProjectSource,
	}
	for _, src := range sources {
		key := src.Alias
		if key == "" {
			key = src.SourceKey
		}
		switch src.Transform {
		case "", "raw":
			out.Outputs[key] = mc.Outputs[src.SourceKey]
		default:
			v, err := mc.transform(src.Transform, src.SourceKey)
			if err != nil {
				return nil, err
			}
			out.Outputs[key] = v
		}
	}
	return out, nil
}

func (mc *MergeContext) transform(name, key string) (string, error) {
	switch name {
	case "raw":
		return mc.Outputs[key], nil
	case "design-system":
		return mc.designSystem(key), nil
	case "file-manifest":
		return mc.fileManifest(key), nil
	case "tool-results":
		return mc.toolResults(key), nil
	case "project-source":
		if mc.ProjectSource == nil {
			return "", nil
		}
		src, err := mc.ProjectSource()
		if err != nil {
			return "", fmt.Errorf("failed to read project source: %w", err)
		}
		return src, nil
	}
	return "", fmt.Errorf("unknown merge transform %q", name)
}
