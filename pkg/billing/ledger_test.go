package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skein-dev/skein/ent"
	"github.com/skein-dev/skein/ent/billingledger"
	"github.com/skein-dev/skein/pkg/database"
	"github.com/skein-dev/skein/pkg/pricing"
	"github.com/skein-dev/skein/pkg/settings"
)

func newLedger(t *testing.T) (*Ledger, *Limiter, *ent.Client, *settings.Store) {
	t.Helper()
	ctx := context.Background()
	client := database.OpenTest(t)
	cfg := settings.New(client)
	engine := pricing.NewEngine(cfg)

	// token_usage rows reference their chat; seed the rows trackParams names.
	_, err := client.Project.Create().
		SetID("proj-1").
		SetName("demo").
		SetPath(t.TempDir()).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Chat.Create().
		SetID("chat-1").
		SetProjectID("proj-1").
		SetTitle("landing page").
		Save(ctx)
	require.NoError(t, err)

	return NewLedger(client, engine), NewLimiter(client, cfg), client, cfg
}

func trackParams() TrackParams {
	return TrackParams{
		ChatID:      "chat-1",
		ExecutionID: "exec-1",
		ProjectID:   "proj-1",
		ProjectName: "demo",
		ChatTitle:   "landing page",
		Provider:    "anthropic",
		Model:       "claude-sonnet-4-5",
		APIKeyHash:  "abc123",
	}
}

func TestTrackWritesPair(t *testing.T) {
	ctx := context.Background()
	ledger, _, client, _ := newLedger(t)

	p := trackParams()
	p.Usage = Usage{InputTokens: 1000, OutputTokens: 500, CacheCreate: 200, CacheRead: 300}
	require.NoError(t, ledger.Track(ctx, p))

	usageRows, err := client.TokenUsage.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, usageRows, 1)
	assert.Equal(t, 2000, usageRows[0].TotalTokens)
	assert.False(t, usageRows[0].Estimated)

	ledgerRows, err := client.BillingLedger.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, ledgerRows, 1)
	assert.Equal(t, "demo", ledgerRows[0].ProjectName)
	assert.Equal(t, "abc123", ledgerRows[0].APIKeyHash)
	assert.Equal(t, usageRows[0].CostEstimate, ledgerRows[0].CostEstimate)

	// input 1000·3 + output 500·15 + create 200·3·1.25 + read 300·3·0.1
	assert.InDelta(t, (3000+7500+750+90)/1e6, ledgerRows[0].CostEstimate, 1e-12)
}

func TestProvisionalFinalizeMatchesDirectTrack(t *testing.T) {
	ctx := context.Background()
	ledger, _, client, _ := newLedger(t)

	actual := Usage{InputTokens: 800, OutputTokens: 350, CacheCreate: 100, CacheRead: 50}

	ids, err := ledger.TrackProvisional(ctx, trackParams(), 4000)
	require.NoError(t, err)

	// The write-ahead row carries the estimate and the flag.
	prov, err := client.BillingLedger.Get(ctx, ids.LedgerID)
	require.NoError(t, err)
	assert.True(t, prov.Estimated)
	assert.Equal(t, 4000, prov.InputTokens)
	assert.Equal(t, 1200, prov.OutputTokens) // 0.3 of the estimated input

	require.NoError(t, ledger.Finalize(ctx, ids, "anthropic", "claude-sonnet-4-5", actual))

	direct := trackParams()
	direct.Usage = actual
	require.NoError(t, ledger.Track(ctx, direct))

	finalized, err := client.BillingLedger.Get(ctx, ids.LedgerID)
	require.NoError(t, err)
	tracked, err := client.BillingLedger.Query().
		Where(billingledger.IDNEQ(ids.LedgerID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, tracked.InputTokens, finalized.InputTokens)
	assert.Equal(t, tracked.OutputTokens, finalized.OutputTokens)
	assert.Equal(t, tracked.CacheCreationInputTokens, finalized.CacheCreationInputTokens)
	assert.Equal(t, tracked.CacheReadInputTokens, finalized.CacheReadInputTokens)
	assert.Equal(t, tracked.TotalTokens, finalized.TotalTokens)
	assert.Equal(t, tracked.CostEstimate, finalized.CostEstimate)
	assert.Equal(t, tracked.Estimated, finalized.Estimated)
}

func TestVoidLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	ledger, _, client, _ := newLedger(t)

	ids, err := ledger.TrackProvisional(ctx, trackParams(), 1000)
	require.NoError(t, err)
	require.NoError(t, ledger.Void(ctx, ids))

	usageCount, err := client.TokenUsage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, usageCount)
	ledgerCount, err := client.BillingLedger.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, ledgerCount)

	// Voiding twice is harmless.
	require.NoError(t, ledger.Void(ctx, ids))
}

func TestTrackBillingOnly(t *testing.T) {
	ctx := context.Background()
	ledger, _, client, _ := newLedger(t)

	p := trackParams()
	p.ExecutionID = ""
	p.Usage = Usage{InputTokens: 10, OutputTokens: 1}
	require.NoError(t, ledger.TrackBillingOnly(ctx, p))

	usageCount, err := client.TokenUsage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, usageCount)
	ledgerCount, err := client.BillingLedger.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, ledgerCount)
}

func TestSweepOrphansNeverDeletes(t *testing.T) {
	ctx := context.Background()
	ledger, _, client, _ := newLedger(t)

	_, err := ledger.TrackProvisional(ctx, trackParams(), 2000)
	require.NoError(t, err)

	n, err := ledger.SweepOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Rows survive with the flag cleared; the estimate is the best record.
	usageRows, err := client.TokenUsage.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, usageRows, 1)
	assert.False(t, usageRows[0].Estimated)
	assert.Equal(t, 2000, usageRows[0].InputTokens)

	remaining, err := client.BillingLedger.Query().
		Where(billingledger.Estimated(true)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, remaining)

	// Idempotent.
	n, err = ledger.SweepOrphans(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUnknownModelTracksAtZeroCost(t *testing.T) {
	ctx := context.Background()
	ledger, _, client, _ := newLedger(t)

	p := trackParams()
	p.Model = "mystery-model"
	p.Usage = Usage{InputTokens: 1000, OutputTokens: 1000}
	require.NoError(t, ledger.Track(ctx, p))

	row, err := client.BillingLedger.Query().Only(ctx)
	require.NoError(t, err)
	assert.Zero(t, row.CostEstimate)
	assert.Equal(t, 2000, row.TotalTokens)
}

func TestLimiterPerChat(t *testing.T) {
	ctx := context.Background()
	ledger, limiter, _, cfg := newLedger(t)

	// Limit 0 means unlimited.
	d, err := limiter.CheckPerChat(ctx, "chat-1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.False(t, d.Warning)

	require.NoError(t, cfg.Set(ctx, settings.KeyMaxTokensPerChat, "1000"))

	p := trackParams()
	p.Usage = Usage{InputTokens: 500, OutputTokens: 350}
	require.NoError(t, ledger.Track(ctx, p))

	// 850 of 1000: inside the warning band, still admitted.
	d, err = limiter.CheckPerChat(ctx, "chat-1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.True(t, d.Warning)
	assert.Equal(t, 850.0, d.Current)

	// A provisional row counts toward the token limit.
	_, err = ledger.TrackProvisional(ctx, trackParams(), 400)
	require.NoError(t, err)
	d, err = limiter.CheckPerChat(ctx, "chat-1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
}

func TestLimiterProjectCountsFinalizedOnly(t *testing.T) {
	ctx := context.Background()
	ledger, limiter, _, cfg := newLedger(t)

	require.NoError(t, cfg.Set(ctx, settings.KeyMaxCostPerProject, "0.01"))

	// Provisional cost alone does not block.
	ids, err := ledger.TrackProvisional(ctx, trackParams(), 10000)
	require.NoError(t, err)
	d, err := limiter.CheckProject(ctx, "proj-1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Zero(t, d.Current)

	// Finalized spend over the limit blocks.
	actual := Usage{InputTokens: 10000, OutputTokens: 5000}
	require.NoError(t, ledger.Finalize(ctx, ids, "anthropic", "claude-sonnet-4-5", actual))
	d, err = limiter.CheckProject(ctx, "proj-1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)

	daily, err := limiter.CheckDaily(ctx)
	require.NoError(t, err)
	assert.True(t, daily.Allowed) // no daily limit configured
}
