package template

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// defaultDesignSource is the agent whose output carries the design system.
const defaultDesignSource = "architect"

// designSections are rendered in this fixed order.
var designSections = []string{"brand", "colors", "typography", "spacing", "radius"}

// designSystem renders the design_system block of an agent's JSON output as a
// fixed human-readable summary. Missing or unparsable output renders empty.
func (mc *MergeContext) designSystem(key string) string {
	if key == "" {
		key = defaultDesignSource
	}
	raw := stripCodeFence(mc.Outputs[key])
	if raw == "" {
		return ""
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return ""
	}
	ds, ok := doc["design_system"].(map[string]any)
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("Design System\n")
	for _, section := range designSections {
		v, ok := ds[section]
		if !ok && section == "brand" {
			v, ok = ds["brand_kernel"]
		}
		if !ok {
			continue
		}
		b.WriteString(renderSection(section, v))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderSection(name string, v any) string {
	title := strings.ToUpper(name[:1]) + name[1:]
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s=%v", k, val[k]))
		}
		return fmt.Sprintf("%s: %s\n", title, strings.Join(pairs, ", "))
	default:
		return fmt.Sprintf("%s: %v\n", title, val)
	}
}

// writeFilePathPattern extracts path arguments from serialized write_file tool
// calls when structured tool calls are unavailable.
var writeFilePathPattern = regexp.MustCompile(`"(?:file_)?path"\s*:\s*"([^"]+)"`)

// fileManifest lists the files a dev agent wrote, sorted and deduplicated.
// Defaults to the most recent dev agent when no source key is given.
func (mc *MergeContext) fileManifest(key string) string {
	if key == "" {
		key = mc.LastDevAgent
	}

	seen := make(map[string]bool)
	for _, call := range mc.ToolCalls[key] {
		if call.Name != "write_file" {
			continue
		}
		if p, ok := call.Args["path"].(string); ok && p != "" {
			seen[p] = true
		}
	}
	if len(seen) == 0 {
		// Fall back to scanning the raw output for serialized calls.
		out := mc.Outputs[key]
		if strings.Contains(out, "write_file") {
			for _, m := range writeFilePathPattern.FindAllStringSubmatch(out, -1) {
				seen[m[1]] = true
			}
		}
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return strings.Join(paths, "\n")
}

// toolResults renders the outputs of an agent's executed custom tools, one
// "name: output" line per call. Calls without a result (builtins, failures)
// are omitted.
func (mc *MergeContext) toolResults(key string) string {
	var b strings.Builder
	for _, call := range mc.ToolCalls[key] {
		if call.Result == "" {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", call.Name, call.Result)
	}
	return strings.TrimRight(b.String(), "\n")
}

// stripCodeFence unwraps a ```json ... ``` (or plain ```) fenced block.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
