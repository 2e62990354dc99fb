package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skein-dev/skein/pkg/database"
	"github.com/skein-dev/skein/pkg/settings"
)

func newTestRunner(t *testing.T) (*Runner, *settings.Store) {
	t.Helper()
	cfg := settings.New(database.OpenTest(t))
	return NewRunner(cfg), cfg
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		params map[string]string
		want   string
	}{
		{"simple", "hello {{who}}", map[string]string{"who": "world"}, "hello world"},
		{"multiple", "{{a}}-{{b}}", map[string]string{"a": "1", "b": "2"}, "1-2"},
		{"missing left literal", "x {{missing}} y", nil, "x {{missing}} y"},
		{"repeated", "{{a}}{{a}}", map[string]string{"a": "z"}, "zz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, interpolate(tt.input, tt.params))
		})
	}
}

func TestLookup(t *testing.T) {
	ctx := context.Background()
	r, cfg := newTestRunner(t)

	_, ok, err := r.Lookup(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cfg.Set(ctx, "tool.lookup", `{"kind":"http","url":"https://example.com/{{id}}"}`))
	def, ok, err := r.Lookup(ctx, "lookup")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "lookup", def.Name)
	assert.Equal(t, KindHTTP, def.Kind)

	require.NoError(t, cfg.Set(ctx, "tool.broken", "{not json"))
	_, _, err = r.Lookup(ctx, "broken")
	assert.ErrorContains(t, err, "invalid definition")
}

func TestInvokeUnknownKind(t *testing.T) {
	r, _ := newTestRunner(t)
	_, err := r.Invoke(context.Background(), Definition{Name: "x", Kind: "ftp"}, nil, "")
	assert.ErrorContains(t, err, "unknown tool kind")
}

func TestInvokeHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/lookup", req.URL.Path)
		assert.Equal(t, "42", req.URL.Query().Get("id"))
		assert.Equal(t, "token-abc", req.Header.Get("Authorization"))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	r, _ := newTestRunner(t)
	def := Definition{
		Name:    "lookup",
		Kind:    KindHTTP,
		URL:     srv.URL + "/lookup?id={{id}}",
		Headers: map[string]string{"Authorization": "token-{{token}}"},
	}
	out, err := r.Invoke(context.Background(), def, map[string]string{"id": "42", "token": "abc"}, "")
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)
}

func TestInvokeHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	r, _ := newTestRunner(t)
	_, err := r.Invoke(context.Background(), Definition{Name: "x", Kind: KindHTTP, URL: srv.URL}, nil, "")
	assert.ErrorContains(t, err, "HTTP 403")
}

func TestInvokeScript(t *testing.T) {
	r, _ := newTestRunner(t)

	t.Run("returns value", func(t *testing.T) {
		def := Definition{
			Name:   "greet",
			Kind:   KindScript,
			Source: `return "hello " .. params.name`,
		}
		out, err := r.Invoke(context.Background(), def, map[string]string{"name": "ada"}, "")
		require.NoError(t, err)
		assert.Equal(t, "hello ada", out)
	})

	t.Run("result global", func(t *testing.T) {
		def := Definition{
			Name:   "sum",
			Kind:   KindScript,
			Source: `result = tostring(1 + 2)`,
		}
		out, err := r.Invoke(context.Background(), def, nil, "")
		require.NoError(t, err)
		assert.Equal(t, "3", out)
	})

	t.Run("no io access", func(t *testing.T) {
		def := Definition{
			Name:   "sneaky",
			Kind:   KindScript,
			Source: `return io.open("/etc/passwd")`,
		}
		_, err := r.Invoke(context.Background(), def, nil, "")
		assert.Error(t, err)
	})

	t.Run("syntax error", func(t *testing.T) {
		def := Definition{Name: "broken", Kind: KindScript, Source: `return (`}
		_, err := r.Invoke(context.Background(), def, nil, "")
		assert.Error(t, err)
	})
}

func TestInvokeShell(t *testing.T) {
	ctx := context.Background()
	r, cfg := newTestRunner(t)
	def := Definition{Name: "list", Kind: KindShell, Command: "echo {{word}}"}

	t.Run("disabled by default", func(t *testing.T) {
		_, err := r.Invoke(ctx, def, map[string]string{"word": "hi"}, t.TempDir())
		assert.ErrorIs(t, err, ErrShellDisabled)
	})

	t.Run("enabled", func(t *testing.T) {
		require.NoError(t, cfg.Set(ctx, "pipeline.allowShellTools", "true"))
		out, err := r.Invoke(ctx, def, map[string]string{"word": "hi"}, t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "hi", out)
	})

	t.Run("requires project dir", func(t *testing.T) {
		require.NoError(t, cfg.Set(ctx, "pipeline.allowShellTools", "true"))
		_, err := r.Invoke(ctx, def, nil, "")
		assert.ErrorContains(t, err, "project directory")
	})
}
