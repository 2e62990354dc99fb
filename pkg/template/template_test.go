package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolResults(t *testing.T) {
	mc := &MergeContext{ToolCalls: map[string][]ToolCall{
		"research": {
			{Name: "shout", Result: "HI"},
			{Name: "write_file"},
			{Name: "lookup", Result: "42"},
		},
	}}

	got, err := Render("{{transform:tool-results:research}}", mc)
	require.NoError(t, err)
	assert.Equal(t, "shout: HI\nlookup: 42", got)

	// No results recorded renders empty, not an error.
	got, err = Render("{{transform:tool-results:architect}}", mc)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRenderBasicFields(t *testing.T) {
	mc := &MergeContext{
		UserMessage: "Build a landing page",
		Outputs: map[string]string{
			"research":  "market notes",
			"architect": "layout plan",
		},
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"user message", "Task: {{userMessage}}", "Task: Build a landing page"},
		{"output ref", "Prior: {{output:research}}", "Prior: market notes"},
		{"context ref", "Plan: {{context:architect}}", "Plan: layout plan"},
		{"missing key is empty", "X{{output:nope}}Y", "XY"},
		{"unknown token left literal", "Keep {{weird}} here", "Keep {{weird}} here"},
		{"unclosed token left literal", "Keep {{output:research", "Keep {{output:research"},
		{"empty key left literal", "Keep {{output:}}", "Keep {{output:}}"},
		{"adjacent tokens", "{{output:research}}{{output:architect}}", "market noteslayout plan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.template, mc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderUnknownTransform(t *testing.T) {
	_, err := Render("{{transform:bogus}}", &MergeContext{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown merge transform "bogus"`)
}

func TestDesignSystemTransform(t *testing.T) {
	architectOutput := "```json\n" + `{
		"design_system": {
			"brand": "calm fintech",
			"colors": {"primary": "#0a2540", "accent": "#00d4ff"},
			"typography": {"heading": "Inter", "body": "Inter"},
			"spacing": "8px grid",
			"radius": "6px"
		}
	}` + "\n```"

	mc := &MergeContext{Outputs: map[string]string{"architect": architectOutput}}
	got, err := Render("{{transform:design-system}}", mc)
	require.NoError(t, err)
	assert.Contains(t, got, "Design System")
	assert.Contains(t, got, "Brand: calm fintech")
	assert.Contains(t, got, "Colors: accent=#00d4ff, primary=#0a2540")
	assert.Contains(t, got, "Spacing: 8px grid")
	assert.Contains(t, got, "Radius: 6px")
}

func TestDesignSystemToleratesGarbage(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"empty", ""},
		{"not json", "I could not produce a plan"},
		{"json without design_system", `{"plan": "none"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc := &MergeContext{Outputs: map[string]string{"architect": tt.output}}
			got, err := Render("{{transform:design-system}}", mc)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestFileManifestFromToolCalls(t *testing.T) {
	mc := &MergeContext{
		LastDevAgent: "frontend-dev",
		ToolCalls: map[string][]ToolCall{
			"frontend-dev": {
				{Name: "write_file", Args: map[string]any{"path": "src/app.js"}},
				{Name: "write_file", Args: map[string]any{"path": "index.html"}},
				{Name: "write_file", Args: map[string]any{"path": "src/app.js"}},
				{Name: "read_file", Args: map[string]any{"path": "ignored.txt"}},
			},
		},
	}

	got, err := Render("{{transform:file-manifest}}", mc)
	require.NoError(t, err)
	assert.Equal(t, "index.html\nsrc/app.js", got)

	// Explicit source key.
	got, err = Render("{{transform:file-manifest:frontend-dev}}", mc)
	require.NoError(t, err)
	assert.Equal(t, "index.html\nsrc/app.js", got)
}

func TestFileManifestFallsBackToOutputScan(t *testing.T) {
	mc := &MergeContext{
		LastDevAgent: "backend-dev",
		Outputs: map[string]string{
			"backend-dev": `calling write_file {"path": "server.js"} then write_file {"path": "db.js"}`,
		},
	}
	got, err := Render("{{transform:file-manifest}}", mc)
	require.NoError(t, err)
	assert.Equal(t, "db.js\nserver.js", got)
}

func TestProjectSourceTransform(t *testing.T) {
	mc := &MergeContext{
		ProjectSource: func() (string, error) {
			return "=== index.html ===\n<html></html>\n", nil
		},
	}
	got, err := Render("{{transform:project-source}}", mc)
	require.NoError(t, err)
	assert.Contains(t, got, "index.html")

	// Nil reader renders empty rather than failing.
	got, err = Render("{{transform:project-source}}", &MergeContext{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilteredSources(t *testing.T) {
	mc := &MergeContext{
		UserMessage: "msg",
		Outputs: map[string]string{
			"research":  "notes",
			"architect": "plan",
		},
	}

	filtered, err := mc.Filtered([]UpstreamSource{
		{SourceKey: "research", Alias: "background"},
		{SourceKey: "architect"},
	})
	require.NoError(t, err)

	got, err := Render("{{output:background}}|{{output:architect}}|{{output:research}}", filtered)
	require.NoError(t, err)
	assert.Equal(t, "notes|plan|", got)
}

func TestFilteredSourceTransform(t *testing.T) {
	mc := &MergeContext{
		ToolCalls: map[string][]ToolCall{
			"frontend-dev": {{Name: "write_file", Args: map[string]any{"path": "a.js"}}},
		},
	}
	filtered, err := mc.Filtered([]UpstreamSource{
		{SourceKey: "frontend-dev", Alias: "files", Transform: "file-manifest"},
	})
	require.NoError(t, err)
	assert.Equal(t, "a.js", filtered.Outputs["files"])

	_, err = mc.Filtered([]UpstreamSource{{SourceKey: "x", Transform: "nope"}})
	assert.Error(t, err)
}
