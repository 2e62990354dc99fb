package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/skein-dev/skein/ent"
	"github.com/skein-dev/skein/ent/billingledger"
	"github.com/skein-dev/skein/ent/tokenusage"
	"github.com/skein-dev/skein/pkg/settings"
)

// Decision is the admission verdict for one limit check. A limit of 0 means
// unlimited and always admits. Warning fires at the configured threshold
// (default 80%) while still admitting.
type Decision struct {
	Allowed bool    `json:"allowed"`
	Warning bool    `json:"warning"`
	Limit   float64 `json:"limit"`
	Current float64 `json:"current"`
}

// Limiter answers admission questions against the ledger and the configured
// limits. The per-chat limit is a TOKEN limit (kept that way for backward
// compatibility with the maxTokensPerChat setting name); daily and project
// limits are cost limits and count only finalized rows.
type Limiter struct {
	client   *ent.Client
	settings *settings.Store
}

// NewLimiter creates a limiter.
func NewLimiter(client *ent.Client, store *settings.Store) *Limiter {
	return &Limiter{client: client, settings: store}
}

// CheckPerChat compares the chat's total token spend (provisional rows
// included) against maxTokensPerChat.
func (l *Limiter) CheckPerChat(ctx context.Context, chatID string) (Decision, error) {
	limit := l.settings.Float(ctx, settings.KeyMaxTokensPerChat, 0)

	totals, err := l.client.TokenUsage.Query().
		Where(tokenusage.ChatIDEQ(chatID)).
		Select(tokenusage.FieldTotalTokens).
		Ints(ctx)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to sum chat tokens: %w", err)
	}
	var current float64
	for _, t := range totals {
		current += float64(t)
	}
	return l.decide(ctx, limit, current), nil
}

// CheckDaily compares today's finalized cost across all projects against
// maxCostPerDay.
func (l *Limiter) CheckDaily(ctx context.Context) (Decision, error) {
	limit := l.settings.Float(ctx, settings.KeyMaxCostPerDay, 0)

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	costs, err := l.client.BillingLedger.Query().
		Where(
			billingledger.CreatedAtGTE(midnight.UnixMilli()),
			billingledger.Estimated(false),
		).
		Select(billingledger.FieldCostEstimate).
		Float64s(ctx)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to sum daily cost: %w", err)
	}
	var current float64
	for _, c := range costs {
		current += c
	}
	return l.decide(ctx, limit, current), nil
}

// CheckProject compares the project's all-time finalized cost against
// maxCostPerProject.
func (l *Limiter) CheckProject(ctx context.Context, projectID string) (Decision, error) {
	limit := l.settings.Float(ctx, settings.KeyMaxCostPerProject, 0)

	costs, err := l.client.BillingLedger.Query().
		Where(
			billingledger.ProjectIDEQ(projectID),
			billingledger.Estimated(false),
		).
		Select(billingledger.FieldCostEstimate).
		Float64s(ctx)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to sum project cost: %w", err)
	}
	var current float64
	for _, c := range costs {
		current += c
	}
	return l.decide(ctx, limit, current), nil
}

func (l *Limiter) decide(ctx context.Context, limit, current float64) Decision {
	d := Decision{Allowed: true, Limit: limit, Current: current}
	if limit <= 0 {
		return d
	}
	threshold := float64(l.settings.Int(ctx, "pipeline.warningThreshold", settings.DefaultWarningThreshold))
	if current >= limit {
		d.Allowed = false
		d.Warning = true
		return d
	}
	if current/limit*100 >= threshold {
		d.Warning = true
	}
	return d
}
