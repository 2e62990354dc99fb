// Package billing implements write-ahead token accounting. Every model call
// is recorded in two tables: operational token_usage (deleted with its chat)
// and the permanent billing_ledger (no foreign keys, survives every cascade).
// The pair is always written, updated, and deleted in a single transaction.
package billing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/skein-dev/skein/ent"
	"github.com/skein-dev/skein/ent/billingledger"
	"github.com/skein-dev/skein/ent/tokenusage"
	"github.com/skein-dev/skein/pkg/pricing"
)

// provisionalOutputRatio estimates output tokens from the prompt size for
// write-ahead records.
const provisionalOutputRatio = 0.3

// Usage is the observed token breakdown of a model call. InputTokens is the
// non-cached input count; callers subtract cache tokens from any raw SDK
// total before passing it here.
type Usage struct {
	InputTokens  int
	OutputTokens int
	CacheCreate  int
	CacheRead    int
}

// Total is the all-in token count recorded on every row.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens + u.CacheCreate + u.CacheRead
}

// TrackParams identifies the call being recorded and its ownership context.
// Project/chat context is denormalized into the ledger row so it survives
// deletion of the owning entities.
type TrackParams struct {
	ChatID      string
	ExecutionID string
	ProjectID   string
	ProjectName string
	ChatTitle   string
	Provider    string
	Model       string
	APIKeyHash  string
	Usage       Usage
}

// ProvisionalIDs are the row ids returned by TrackProvisional, needed to
// finalize or void the pair.
type ProvisionalIDs struct {
	UsageID  string
	LedgerID string
}

// Ledger writes the dual-table spend record.
type Ledger struct {
	client  *ent.Client
	pricing *pricing.Engine
}

// NewLedger creates a ledger over the given client and pricing engine.
func NewLedger(client *ent.Client, engine *pricing.Engine) *Ledger {
	return &Ledger{client: client, pricing: engine}
}

// Track records a completed call with observed usage. Both rows are final
// (estimated = false).
func (l *Ledger) Track(ctx context.Context, p TrackParams) error {
	cost := l.cost(ctx, p.Provider, p.Model, p.Usage)
	_, err := l.insertPair(ctx, p, p.Usage, cost, false)
	return err
}

// TrackProvisional writes the pair before the model call with estimated
// counts and estimated = true. Output is approximated from the prompt size.
// The returned ids are passed to Finalize or Void afterwards.
func (l *Ledger) TrackProvisional(ctx context.Context, p TrackParams, estimatedInputTokens int) (ProvisionalIDs, error) {
	est := Usage{
		InputTokens:  estimatedInputTokens,
		OutputTokens: int(provisionalOutputRatio * float64(estimatedInputTokens)),
	}
	cost := l.cost(ctx, p.Provider, p.Model, est)
	return l.insertPair(ctx, p, est, cost, true)
}

// Finalize replaces the provisional counts with observed usage and clears the
// estimated flag on both rows, atomically.
func (l *Ledger) Finalize(ctx context.Context, ids ProvisionalIDs, provider, model string, actual Usage) error {
	cost := l.cost(ctx, provider, model, actual)

	tx, err := l.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start finalize transaction: %w", err)
	}

	err = tx.TokenUsage.UpdateOneID(ids.UsageID).
		SetInputTokens(actual.InputTokens).
		SetOutputTokens(actual.OutputTokens).
		SetCacheCreationInputTokens(actual.CacheCreate).
		SetCacheReadInputTokens(actual.CacheRead).
		SetTotalTokens(actual.Total()).
		SetCostEstimate(cost).
		SetEstimated(false).
		Exec(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("failed to finalize token usage row: %w", err))
	}

	err = tx.BillingLedger.UpdateOneID(ids.LedgerID).
		SetInputTokens(actual.InputTokens).
		SetOutputTokens(actual.OutputTokens).
		SetCacheCreationInputTokens(actual.CacheCreate).
		SetCacheReadInputTokens(actual.CacheRead).
		SetTotalTokens(actual.Total()).
		SetCostEstimate(cost).
		SetEstimated(false).
		Exec(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("failed to finalize ledger row: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit finalize: %w", err)
	}
	return nil
}

// Void removes a provisional pair that never consumed tokens.
func (l *Ledger) Void(ctx context.Context, ids ProvisionalIDs) error {
	tx, err := l.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start void transaction: %w", err)
	}
	if err := tx.TokenUsage.DeleteOneID(ids.UsageID).Exec(ctx); err != nil && !ent.IsNotFound(err) {
		return rollback(tx, fmt.Errorf("failed to void token usage row: %w", err))
	}
	if err := tx.BillingLedger.DeleteOneID(ids.LedgerID).Exec(ctx); err != nil && !ent.IsNotFound(err) {
		return rollback(tx, fmt.Errorf("failed to void ledger row: %w", err))
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit void: %w", err)
	}
	return nil
}

// TrackBillingOnly records a system call (e.g. API-key validation) with no
// owning execution. Only the permanent ledger is written.
func (l *Ledger) TrackBillingOnly(ctx context.Context, p TrackParams) error {
	cost := l.cost(ctx, p.Provider, p.Model, p.Usage)
	err := l.client.BillingLedger.Create().
		SetID(uuid.New().String()).
		SetChatID(p.ChatID).
		SetExecutionID(p.ExecutionID).
		SetProjectID(p.ProjectID).
		SetProjectName(p.ProjectName).
		SetChatTitle(p.ChatTitle).
		SetProvider(p.Provider).
		SetModel(p.Model).
		SetInputTokens(p.Usage.InputTokens).
		SetOutputTokens(p.Usage.OutputTokens).
		SetCacheCreationInputTokens(p.Usage.CacheCreate).
		SetCacheReadInputTokens(p.Usage.CacheRead).
		SetTotalTokens(p.Usage.Total()).
		SetAPIKeyHash(p.APIKeyHash).
		SetCostEstimate(cost).
		SetEstimated(false).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record billing-only call: %w", err)
	}
	return nil
}

// SweepOrphans clears the estimated flag on every provisional row left behind
// by a crash. The estimate is the best-available record, so rows are never
// deleted. Returns the number of ledger rows reconciled.
func (l *Ledger) SweepOrphans(ctx context.Context) (int, error) {
	tx, err := l.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start sweep transaction: %w", err)
	}

	if _, err := tx.TokenUsage.Update().
		Where(tokenusage.Estimated(true)).
		SetEstimated(false).
		Save(ctx); err != nil {
		return 0, rollback(tx, fmt.Errorf("failed to sweep token usage rows: %w", err))
	}

	n, err := tx.BillingLedger.Update().
		Where(billingledger.Estimated(true)).
		SetEstimated(false).
		Save(ctx)
	if err != nil {
		return 0, rollback(tx, fmt.Errorf("failed to sweep ledger rows: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit sweep: %w", err)
	}
	if n > 0 {
		slog.Info("Reconciled provisional billing rows from previous run", "count", n)
	}
	return n, nil
}

// insertPair writes the token_usage and billing_ledger rows in one transaction.
func (l *Ledger) insertPair(ctx context.Context, p TrackParams, u Usage, cost float64, estimated bool) (ProvisionalIDs, error) {
	ids := ProvisionalIDs{
		UsageID:  uuid.New().String(),
		LedgerID: uuid.New().String(),
	}

	tx, err := l.client.Tx(ctx)
	if err != nil {
		return ProvisionalIDs{}, fmt.Errorf("failed to start track transaction: %w", err)
	}

	usage := tx.TokenUsage.Create().
		SetID(ids.UsageID).
		SetChatID(p.ChatID).
		SetProvider(p.Provider).
		SetModel(p.Model).
		SetInputTokens(u.InputTokens).
		SetOutputTokens(u.OutputTokens).
		SetCacheCreationInputTokens(u.CacheCreate).
		SetCacheReadInputTokens(u.CacheRead).
		SetTotalTokens(u.Total()).
		SetAPIKeyHash(p.APIKeyHash).
		SetCostEstimate(cost).
		SetEstimated(estimated)
	if p.ExecutionID != "" {
		usage.SetExecutionID(p.ExecutionID)
	}
	if err := usage.Exec(ctx); err != nil {
		return ProvisionalIDs{}, rollback(tx, fmt.Errorf("failed to insert token usage row: %w", err))
	}

	err = tx.BillingLedger.Create().
		SetID(ids.LedgerID).
		SetChatID(p.ChatID).
		SetExecutionID(p.ExecutionID).
		SetProjectID(p.ProjectID).
		SetProjectName(p.ProjectName).
		SetChatTitle(p.ChatTitle).
		SetProvider(p.Provider).
		SetModel(p.Model).
		SetInputTokens(u.InputTokens).
		SetOutputTokens(u.OutputTokens).
		SetCacheCreationInputTokens(u.CacheCreate).
		SetCacheReadInputTokens(u.CacheRead).
		SetTotalTokens(u.Total()).
		SetAPIKeyHash(p.APIKeyHash).
		SetCostEstimate(cost).
		SetEstimated(estimated).
		Exec(ctx)
	if err != nil {
		return ProvisionalIDs{}, rollback(tx, fmt.Errorf("failed to insert ledger row: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return ProvisionalIDs{}, fmt.Errorf("failed to commit track: %w", err)
	}
	return ids, nil
}

func (l *Ledger) cost(ctx context.Context, provider, model string, u Usage) float64 {
	return l.pricing.CostOf(ctx, provider, model, u.InputTokens, u.OutputTokens, u.CacheCreate, u.CacheRead)
}

// rollback rolls back tx and wraps any rollback failure into err.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
	}
	return err
}
