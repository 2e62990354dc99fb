package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skein-dev/skein/pkg/database"
	"github.com/skein-dev/skein/pkg/settings"
)

func newEngine(t *testing.T) (*Engine, *settings.Store) {
	t.Helper()
	cfg := settings.New(database.OpenTest(t))
	return NewEngine(cfg), cfg
}

func TestModelPricingCatalogAndOverride(t *testing.T) {
	ctx := context.Background()
	e, _ := newEngine(t)

	p := e.ModelPricing(ctx, "claude-sonnet-4-5")
	require.NotNil(t, p)
	assert.Equal(t, 3.0, p.Input)
	assert.Equal(t, 15.0, p.Output)

	assert.Nil(t, e.ModelPricing(ctx, "mystery-model"))

	// An override makes an unknown model billable.
	require.NoError(t, e.UpsertModelPricing(ctx, "mystery-model", ModelPricing{Input: 5, Output: 25}))
	p = e.ModelPricing(ctx, "mystery-model")
	require.NotNil(t, p)
	assert.Equal(t, 5.0, p.Input)

	// Removing it restores the unknown state.
	require.NoError(t, e.DeleteModelPricing(ctx, "mystery-model"))
	assert.Nil(t, e.ModelPricing(ctx, "mystery-model"))
}

func TestOverridePartialFields(t *testing.T) {
	ctx := context.Background()
	e, cfg := newEngine(t)

	// Only the input rate overridden; output keeps the catalog value.
	require.NoError(t, cfg.Set(ctx, "pricing.claude-sonnet-4-5.input", "4"))
	p := e.ModelPricing(ctx, "claude-sonnet-4-5")
	require.NotNil(t, p)
	assert.Equal(t, 4.0, p.Input)
	assert.Equal(t, 15.0, p.Output)
}

func TestMultipliers(t *testing.T) {
	ctx := context.Background()
	e, _ := newEngine(t)

	m := e.Multipliers(ctx, "anthropic")
	assert.Equal(t, CacheMultipliers{Create: 1.25, Read: 0.10}, m)
	assert.Equal(t, CacheMultipliers{Create: 0, Read: 0.5}, e.Multipliers(ctx, "openai"))
	assert.Equal(t, CacheMultipliers{Create: 0, Read: 0.25}, e.Multipliers(ctx, "google"))

	// Unknown providers get the conservative defaults.
	assert.Equal(t, CacheMultipliers{Create: 1.0, Read: 0.5}, e.Multipliers(ctx, "acme"))

	require.NoError(t, e.UpsertMultipliers(ctx, "anthropic", CacheMultipliers{Create: 2, Read: 0.2}))
	assert.Equal(t, CacheMultipliers{Create: 2, Read: 0.2}, e.Multipliers(ctx, "anthropic"))

	require.NoError(t, e.DeleteMultipliers(ctx, "anthropic"))
	assert.Equal(t, CacheMultipliers{Create: 1.25, Read: 0.10}, e.Multipliers(ctx, "anthropic"))
}

func TestCostOfDedupExample(t *testing.T) {
	ctx := context.Background()
	e, _ := newEngine(t)

	require.NoError(t, e.UpsertModelPricing(ctx, "test-model", ModelPricing{Input: 5, Output: 25}))

	// Raw SDK usage 5000 input with 1000 cache-create and 2000 cache-read:
	// the caller deduplicates input to 2000 before pricing.
	cost := e.CostOf(ctx, "anthropic", "test-model", 2000, 500, 1000, 2000)
	assert.InDelta(t, 0.02975, cost, 1e-12)
}

func TestCostOfUnknownModelIsZero(t *testing.T) {
	ctx := context.Background()
	e, _ := newEngine(t)
	assert.Zero(t, e.CostOf(ctx, "anthropic", "mystery-model", 100000, 100000, 0, 0))
}

func TestParsePricingKey(t *testing.T) {
	tests := []struct {
		key     string
		want    PricingKey
		wantErr bool
	}{
		{key: "pricing.claude-sonnet-4-5.input", want: PricingKey{Model: "claude-sonnet-4-5", Field: "input"}},
		// Model ids may contain dots; the field is everything after the last one.
		{key: "pricing.gpt-5.2.input", want: PricingKey{Model: "gpt-5.2", Field: "input"}},
		{key: "pricing.gemini-2.5-flash.output", want: PricingKey{Model: "gemini-2.5-flash", Field: "output"}},
		{key: "pricing.model.rate", wantErr: true},
		{key: "pricing.input", wantErr: true},
		{key: "cache.anthropic.read", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got, err := ParsePricingKey(tc.key)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
