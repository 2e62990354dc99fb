package services

import (
	"context"
	"fmt"

	"github.com/skein-dev/skein/ent"
	"github.com/skein-dev/skein/ent/agentexecution"
	"github.com/skein-dev/skein/ent/pipelinerun"
)

// RunService exposes read access to pipeline runs and their executions.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// Get returns a run by id.
func (s *RunService) Get(ctx context.Context, id string) (*ent.PipelineRun, error) {
	r, err := s.client.PipelineRun.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: run %q", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	return r, nil
}

// ListByChat returns the chat's runs, newest first.
func (s *RunService) ListByChat(ctx context.Context, chatID string) ([]*ent.PipelineRun, error) {
	rows, err := s.client.PipelineRun.Query().
		Where(pipelinerun.ChatIDEQ(chatID)).
		Order(ent.Desc(pipelinerun.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return rows, nil
}

// Executions returns a run's agent executions in dispatch order.
func (s *RunService) Executions(ctx context.Context, runID string) ([]*ent.AgentExecution, error) {
	rows, err := s.client.AgentExecution.Query().
		Where(agentexecution.RunID(runID)).
		Order(ent.Asc(agentexecution.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}
	return rows, nil
}

// MarkInterrupted flips any still-running runs to interrupted. Called at
// startup: a run that survived a restart can never complete.
func (s *RunService) MarkInterrupted(ctx context.Context) (int, error) {
	n, err := s.client.PipelineRun.Update().
		Where(pipelinerun.StatusEQ(pipelinerun.StatusRunning)).
		SetStatus(pipelinerun.StatusInterrupted).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark interrupted runs: %w", err)
	}
	return n, nil
}
