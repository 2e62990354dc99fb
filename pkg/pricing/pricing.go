// Package pricing computes model spend in USD from token usage breakdowns.
// Rates come from a static catalog with DB-backed overrides; cache tokens are
// billed at per-provider multiples of the input rate.
package pricing

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/skein-dev/skein/pkg/settings"
)

// ModelPricing is the USD rate per 1M tokens for a model.
type ModelPricing struct {
	Input  float64 `json:"input"`
	Output float64 `json:"output"`
}

// CacheMultipliers scale the input rate for cache-creation and cache-read
// tokens.
type CacheMultipliers struct {
	Create float64 `json:"create"`
	Read   float64 `json:"read"`
}

// defaultPricing is the static catalog, USD per 1M tokens. Unknown models
// without an override cost 0 — usage is still recorded, it just cannot be
// billed.
var defaultPricing = map[string]ModelPricing{
	"claude-opus-4-1":      {Input: 15, Output: 75},
	"claude-sonnet-4-5":    {Input: 3, Output: 15},
	"claude-sonnet-4-0":    {Input: 3, Output: 15},
	"claude-haiku-4-5":     {Input: 1, Output: 5},
	"claude-3-5-haiku":     {Input: 0.8, Output: 4},
	"gpt-5":                {Input: 1.25, Output: 10},
	"gpt-5-mini":           {Input: 0.25, Output: 2},
	"gemini-2.5-flash":     {Input: 0.3, Output: 2.5},
}

// providerCacheMultipliers are the per-provider defaults.
var providerCacheMultipliers = map[string]CacheMultipliers{
	"anthropic": {Create: 1.25, Read: 0.10},
	"openai":    {Create: 0, Read: 0.5},
	"google":    {Create: 0, Read: 0.25},
}

// unknownProviderMultipliers apply when the provider is not in the table.
var unknownProviderMultipliers = CacheMultipliers{Create: 1.0, Read: 0.5}

// Engine resolves rates and computes costs. Override lookups read through the
// settings store: pricing.<model>.<input|output> and
// cache.<provider>.<create|read>.
type Engine struct {
	settings *settings.Store
}

// NewEngine creates a pricing engine backed by the settings store.
func NewEngine(store *settings.Store) *Engine {
	return &Engine{settings: store}
}

// ModelPricing returns the effective rate for a model, or nil when the model
// is unknown and has no override. Priority: DB override > catalog default.
func (e *Engine) ModelPricing(ctx context.Context, model string) *ModelPricing {
	base, known := defaultPricing[model]

	in := e.overrideFloat(ctx, "pricing."+model+".input")
	out := e.overrideFloat(ctx, "pricing."+model+".output")
	if in == nil && out == nil {
		if !known {
			return nil
		}
		p := base
		return &p
	}

	p := base // zero value when unknown
	if in != nil {
		p.Input = *in
	}
	if out != nil {
		p.Output = *out
	}
	return &p
}

// Multipliers returns the effective cache multipliers for a provider.
func (e *Engine) Multipliers(ctx context.Context, provider string) CacheMultipliers {
	m, ok := providerCacheMultipliers[provider]
	if !ok {
		m = unknownProviderMultipliers
	}
	if c := e.overrideFloat(ctx, "cache."+provider+".create"); c != nil {
		m.Create = *c
	}
	if r := e.overrideFloat(ctx, "cache."+provider+".read"); r != nil {
		m.Read = *r
	}
	return m
}

// CostOf computes the USD cost of a call. inputTokens must be the non-cached
// input count; the caller subtracts cache tokens from any raw SDK total first.
func (e *Engine) CostOf(ctx context.Context, provider, model string, inputTokens, outputTokens, cacheCreate, cacheRead int) float64 {
	p := e.ModelPricing(ctx, model)
	if p == nil {
		return 0
	}
	m := e.Multipliers(ctx, provider)
	cost := float64(inputTokens)*p.Input +
		float64(outputTokens)*p.Output +
		float64(cacheCreate)*p.Input*m.Create +
		float64(cacheRead)*p.Input*m.Read
	return cost / 1_000_000
}

// UpsertModelPricing writes a per-model override.
func (e *Engine) UpsertModelPricing(ctx context.Context, model string, p ModelPricing) error {
	if err := e.settings.Set(ctx, "pricing."+model+".input", formatRate(p.Input)); err != nil {
		return err
	}
	return e.settings.Set(ctx, "pricing."+model+".output", formatRate(p.Output))
}

// DeleteModelPricing removes a per-model override, restoring the catalog rate.
func (e *Engine) DeleteModelPricing(ctx context.Context, model string) error {
	if err := e.settings.Delete(ctx, "pricing."+model+".input"); err != nil {
		return err
	}
	return e.settings.Delete(ctx, "pricing."+model+".output")
}

// UpsertMultipliers writes a per-provider cache multiplier override.
func (e *Engine) UpsertMultipliers(ctx context.Context, provider string, m CacheMultipliers) error {
	if err := e.settings.Set(ctx, "cache."+provider+".create", formatRate(m.Create)); err != nil {
		return err
	}
	return e.settings.Set(ctx, "cache."+provider+".read", formatRate(m.Read))
}

// DeleteMultipliers removes a provider override, restoring defaults.
func (e *Engine) DeleteMultipliers(ctx context.Context, provider string) error {
	if err := e.settings.Delete(ctx, "cache."+provider+".create"); err != nil {
		return err
	}
	return e.settings.Delete(ctx, "cache."+provider+".read")
}

// PricingKey is a parsed pricing.<model>.<field> settings key.
type PricingKey struct {
	Model string
	Field string // "input" or "output"
}

// ParsePricingKey splits a pricing settings key. Model ids may contain dots
// (e.g. "gpt-5.2"), so the field is everything after the LAST dot.
func ParsePricingKey(key string) (PricingKey, error) {
	rest, ok := strings.CutPrefix(key, "pricing.")
	if !ok {
		return PricingKey{}, fmt.Errorf("not a pricing key: %q", key)
	}
	i := strings.LastIndex(rest, ".")
	if i <= 0 || i == len(rest)-1 {
		return PricingKey{}, fmt.Errorf("malformed pricing key: %q", key)
	}
	model, field := rest[:i], rest[i+1:]
	if field != "input" && field != "output" {
		return PricingKey{}, fmt.Errorf("unknown pricing field %q in key %q", field, key)
	}
	return PricingKey{Model: model, Field: field}, nil
}

// overrideFloat reads a numeric override, returning nil when absent or
// unparsable.
func (e *Engine) overrideFloat(ctx context.Context, key string) *float64 {
	raw, ok, err := e.settings.Get(ctx, key)
	if err != nil || !ok {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
