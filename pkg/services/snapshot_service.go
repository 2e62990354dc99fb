package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/skein-dev/skein/ent"
	"github.com/skein-dev/skein/ent/snapshot"
)

// SnapshotService records file-manifest snapshots alongside auto-commits.
// They are the fallback version record when git is unavailable, and they
// outlive their chat (deletion detaches rather than removes them).
type SnapshotService struct {
	client *ent.Client
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(client *ent.Client) *SnapshotService {
	return &SnapshotService{client: client}
}

// Record persists a snapshot. commitSHA is empty when git was unavailable.
func (s *SnapshotService) Record(ctx context.Context, projectID, chatID, label string, manifest []string, commitSHA string) (*ent.Snapshot, error) {
	if projectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	sorted := append([]string(nil), manifest...)
	sort.Strings(sorted)

	create := s.client.Snapshot.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetLabel(label).
		SetManifest(sorted)
	if chatID != "" {
		create.SetChatID(chatID)
	}
	if commitSHA != "" {
		create.SetCommitSha(commitSHA)
	}
	snap, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: project %q", ErrNotFound, projectID)
		}
		return nil, fmt.Errorf("failed to record snapshot: %w", err)
	}
	return snap, nil
}

// DeleteDetachedBefore removes detached snapshots (chat deleted) created
// before the cutoff. Attached snapshots are kept regardless of age.
func (s *SnapshotService) DeleteDetachedBefore(ctx context.Context, cutoff int64) (int, error) {
	n, err := s.client.Snapshot.Delete().
		Where(snapshot.ChatIDIsNil(), snapshot.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete detached snapshots: %w", err)
	}
	return n, nil
}

// ListByProject returns the project's snapshots, newest first.
func (s *SnapshotService) ListByProject(ctx context.Context, projectID string) ([]*ent.Snapshot, error) {
	rows, err := s.client.Snapshot.Query().
		Where(snapshot.ProjectIDEQ(projectID)).
		Order(ent.Desc(snapshot.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return rows, nil
}
