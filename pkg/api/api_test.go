package api

import (
	"bytes"
	"context"
	stdsql "database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/skein-dev/skein/ent"
	"github.com/skein-dev/skein/ent/pipelinerun"
	"github.com/skein-dev/skein/pkg/agent"
	"github.com/skein-dev/skein/pkg/billing"
	"github.com/skein-dev/skein/pkg/database"
	"github.com/skein-dev/skein/pkg/gitstore"
	"github.com/skein-dev/skein/pkg/pipeline"
	"github.com/skein-dev/skein/pkg/pricing"
	"github.com/skein-dev/skein/pkg/services"
	"github.com/skein-dev/skein/pkg/settings"
	"github.com/skein-dev/skein/pkg/tools"
)

type stubCaller struct{}

func (stubCaller) Call(ctx context.Context, p agent.CallParams) (*agent.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.MaxOutputTokens == 20 {
		return &agent.Result{OutputText: "question full", Usage: agent.Usage{InputTokens: 40, OutputTokens: 2}}, nil
	}
	return &agent.Result{OutputText: "here is the answer", Usage: agent.Usage{InputTokens: 100, OutputTokens: 50}}, nil
}

type apiFixture struct {
	router *gin.Engine
	client *ent.Client
	root   string
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := database.OpenTest(t)
	db, err := stdsql.Open("sqlite", "file:"+t.Name()+"_health?mode=memory")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := settings.New(client)
	engine := pricing.NewEngine(cfg)
	ledger := billing.NewLedger(client, engine)
	limiter := billing.NewLimiter(client, cfg)
	registry := agent.NewRegistry(cfg)
	versions, err := gitstore.New(t.TempDir(), cfg)
	require.NoError(t, err)
	snapshots := services.NewSnapshotService(client)
	bus := pipeline.NewBus()
	orch := pipeline.New(client, cfg, ledger, limiter, registry, stubCaller{}, versions, snapshots, tools.NewRunner(cfg), bus)

	srv := NewServer(Deps{
		DB:           db,
		Projects:     services.NewProjectService(client, versions),
		Chats:        services.NewChatService(client),
		Runs:         services.NewRunService(client),
		Usage:        services.NewUsageService(client),
		Snapshots:    snapshots,
		Settings:     cfg,
		Pricing:      engine,
		Versions:     versions,
		Orchestrator: orch,
		Bus:          bus,
	})
	return &apiFixture{router: srv.Router(), client: client, root: versions.Root()}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func (f *apiFixture) createProject(t *testing.T, name string) map[string]any {
	t.Helper()
	w := f.do(t, http.MethodPost, "/api/v1/projects", gin.H{
		"name": name,
		"path": filepath.Join(f.root, name),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[map[string]any](t, w)
}

func (f *apiFixture) createChat(t *testing.T, projectID string) map[string]any {
	t.Helper()
	w := f.do(t, http.MethodPost, "/api/v1/projects/"+projectID+"/chats", gin.H{"title": "chat"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[map[string]any](t, w)
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)
	w := f.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestProjectEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	p := f.createProject(t, "demo")
	id := p["id"].(string)

	w := f.do(t, http.MethodGet, "/api/v1/projects", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodPatch, "/api/v1/projects/"+id, gin.H{"name": "demo-2"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "demo-2")

	w = f.do(t, http.MethodGet, "/api/v1/projects/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// A path outside the sandbox is rejected.
	w = f.do(t, http.MethodPost, "/api/v1/projects", gin.H{"name": "evil", "path": "/etc/evil"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodDelete, "/api/v1/projects/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestChatAndMessageEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	p := f.createProject(t, "demo")
	c := f.createChat(t, p["id"].(string))
	chatID := c["id"].(string)

	w := f.do(t, http.MethodPatch, "/api/v1/chats/"+chatID, gin.H{"title": "renamed"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/chats/"+chatID+"/messages", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/chats/missing/messages", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendMessageRunsPipeline(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	f := newAPIFixture(t)
	ctx := context.Background()

	p := f.createProject(t, "demo")
	c := f.createChat(t, p["id"].(string))
	chatID := c["id"].(string)

	w := f.do(t, http.MethodPost, "/api/v1/chats/"+chatID+"/messages", gin.H{
		"message": "what does this project do?",
		"keys":    gin.H{"anthropic": "sk-test"},
	})
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

	require.Eventually(t, func() bool {
		runs, err := f.client.PipelineRun.Query().
			Where(pipelinerun.ChatIDEQ(chatID)).
			All(ctx)
		if err != nil || len(runs) != 1 {
			return false
		}
		return runs[0].Status == pipelinerun.StatusCompleted
	}, 10*time.Second, 20*time.Millisecond)

	w = f.do(t, http.MethodGet, "/api/v1/chats/"+chatID+"/runs", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	runs := decode[[]map[string]any](t, w)
	require.Len(t, runs, 1)
	assert.Equal(t, "question", runs[0]["intent"])

	// Both the user message and the assistant reply are recorded.
	w = f.do(t, http.MethodGet, "/api/v1/chats/"+chatID+"/messages", nil)
	msgs := decode[[]map[string]any](t, w)
	assert.Len(t, msgs, 2)
}

func TestAbortWithoutRun(t *testing.T) {
	f := newAPIFixture(t)
	p := f.createProject(t, "demo")
	c := f.createChat(t, p["id"].(string))

	w := f.do(t, http.MethodPost, "/api/v1/chats/"+c["id"].(string)+"/abort", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"aborted":false`)
}

func TestVersionEndpoints(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	f := newAPIFixture(t)

	p := f.createProject(t, "demo")
	id := p["id"].(string)
	dir := p["path"].(string)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>v1</h1>"), 0o640))
	w := f.do(t, http.MethodPost, "/api/v1/projects/"+id+"/commits", gin.H{"message": "first draft"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = f.do(t, http.MethodGet, "/api/v1/projects/"+id+"/versions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	versions := decode[[]map[string]any](t, w)
	require.NotEmpty(t, versions)
	sha := versions[0]["sha"].(string)

	w = f.do(t, http.MethodGet, "/api/v1/projects/"+id+"/versions/"+sha+"/diff", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "index.html")

	w = f.do(t, http.MethodGet, "/api/v1/projects/"+id+"/versions/zzzz/diff", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/projects/"+id+"/preview", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"inPreview":false`)
}

func TestSettingsEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPut, "/api/v1/settings/pipeline.maxRetries", gin.H{"value": "5"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/settings/pipeline.maxRetries", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"value":"5"`)

	w = f.do(t, http.MethodGet, "/api/v1/settings?prefix=pipeline.", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pipeline.maxRetries")

	w = f.do(t, http.MethodDelete, "/api/v1/settings/pipeline.maxRetries", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/settings/pipeline.maxRetries", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPricingEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/pricing/models/claude-sonnet-4-5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"input":3`)

	w = f.do(t, http.MethodGet, "/api/v1/pricing/models/unknown-model", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodPut, "/api/v1/pricing/models/unknown-model", gin.H{"input": 1.5, "output": 6.0})
	assert.Equal(t, http.StatusOK, w.Code)
	w = f.do(t, http.MethodGet, "/api/v1/pricing/models/unknown-model", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"input":1.5`)

	w = f.do(t, http.MethodPut, "/api/v1/pricing/multipliers/anthropic", gin.H{"create": 2.0, "read": 0.2})
	assert.Equal(t, http.StatusOK, w.Code)
	w = f.do(t, http.MethodGet, "/api/v1/pricing/multipliers/anthropic", nil)
	assert.Contains(t, w.Body.String(), `"create":2`)

	w = f.do(t, http.MethodDelete, "/api/v1/pricing/multipliers/anthropic", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = f.do(t, http.MethodGet, "/api/v1/pricing/multipliers/anthropic", nil)
	assert.Contains(t, w.Body.String(), `"create":1.25`)
}

func TestUsageEndpoints(t *testing.T) {
	f := newAPIFixture(t)
	p := f.createProject(t, "demo")

	w := f.do(t, http.MethodGet, "/api/v1/usage", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"calls":0`)

	w = f.do(t, http.MethodGet, "/api/v1/projects/"+p["id"].(string)+"/usage", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/usage/daily", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
