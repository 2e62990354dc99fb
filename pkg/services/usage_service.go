package services

import (
	"context"
	"fmt"
	"time"

	"github.com/skein-dev/skein/ent"
	"github.com/skein-dev/skein/ent/billingledger"
)

// UsageSummary aggregates finalized spend.
type UsageSummary struct {
	TotalTokens int     `json:"totalTokens"`
	TotalCost   float64 `json:"totalCost"`
	Calls       int     `json:"calls"`
}

// UsageService reports spend from the permanent ledger. Provisional rows are
// excluded everywhere; they are estimates, not spend.
type UsageService struct {
	client *ent.Client
}

// NewUsageService creates a new UsageService.
func NewUsageService(client *ent.Client) *UsageService {
	return &UsageService{client: client}
}

// ProjectSummary returns the project's all-time finalized spend.
func (s *UsageService) ProjectSummary(ctx context.Context, projectID string) (*UsageSummary, error) {
	return s.summarize(ctx, []predicateFn{
		func(q *ent.BillingLedgerQuery) { q.Where(billingledger.ProjectIDEQ(projectID)) },
	})
}

// DailySummary returns today's finalized spend across all projects.
func (s *UsageService) DailySummary(ctx context.Context) (*UsageSummary, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.summarize(ctx, []predicateFn{
		func(q *ent.BillingLedgerQuery) { q.Where(billingledger.CreatedAtGTE(midnight.UnixMilli())) },
	})
}

// TotalSummary returns the all-time finalized spend.
func (s *UsageService) TotalSummary(ctx context.Context) (*UsageSummary, error) {
	return s.summarize(ctx, nil)
}

type predicateFn func(*ent.BillingLedgerQuery)

func (s *UsageService) summarize(ctx context.Context, preds []predicateFn) (*UsageSummary, error) {
	q := s.client.BillingLedger.Query().Where(billingledger.Estimated(false))
	for _, p := range preds {
		p(q)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}
	sum := &UsageSummary{Calls: len(rows)}
	for _, row := range rows {
		sum.TotalTokens += row.TotalTokens
		sum.TotalCost += row.CostEstimate
	}
	return sum, nil
}
