// Package cleanup provides data retention services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/skein-dev/skein/pkg/gitstore"
	"github.com/skein-dev/skein/pkg/services"
)

// Config controls the retention loop.
type Config struct {
	// Interval between retention passes.
	Interval time.Duration
	// SnapshotRetentionDays is how long detached snapshots (their chat was
	// deleted) are kept before removal.
	SnapshotRetentionDays int
}

// DefaultConfig returns the stock retention policy.
func DefaultConfig() Config {
	return Config{
		Interval:              6 * time.Hour,
		SnapshotRetentionDays: 30,
	}
}

// Service periodically enforces retention policies:
//   - Prunes each project's version history down to the configured cap
//   - Removes detached snapshots past their retention window
//
// All operations are idempotent.
type Service struct {
	config    Config
	projects  *services.ProjectService
	snapshots *services.SnapshotService
	versions  *gitstore.Store

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg Config, projects *services.ProjectService, snapshots *services.SnapshotService, versions *gitstore.Store) *Service {
	return &Service{
		config:    cfg,
		projects:  projects,
		snapshots: snapshots,
		versions:  versions,
	}
}

// Start launches the background retention loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"snapshot_retention_days", s.config.SnapshotRetentionDays,
		"interval", s.config.Interval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs one retention pass.
func (s *Service) RunOnce(ctx context.Context) {
	s.pruneVersionHistories(ctx)
	s.expireDetachedSnapshots(ctx)
}

func (s *Service) pruneVersionHistories(ctx context.Context) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		slog.Error("Retention: listing projects failed", "error", err)
		return
	}
	for _, p := range projects {
		if err := s.versions.PruneExcess(ctx, p.Path); err != nil {
			slog.Error("Retention: version prune failed",
				"project_id", p.ID, "error", err)
		}
	}
}

func (s *Service) expireDetachedSnapshots(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.SnapshotRetentionDays).UnixMilli()
	count, err := s.snapshots.DeleteDetachedBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: snapshot cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed detached snapshots", "count", count)
	}
}
