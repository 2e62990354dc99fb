// Package services implements the CRUD surface over the persistent store:
// projects, chats, messages, pipeline runs, snapshots, and usage reporting.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/skein-dev/skein/ent"
	"github.com/skein-dev/skein/ent/project"
	"github.com/skein-dev/skein/pkg/gitstore"
)

// ProjectService manages project lifecycle. Paths are validated against the
// sandbox before anything is persisted.
type ProjectService struct {
	client   *ent.Client
	versions *gitstore.Store
}

// NewProjectService creates a new ProjectService.
func NewProjectService(client *ent.Client, versions *gitstore.Store) *ProjectService {
	return &ProjectService{client: client, versions: versions}
}

// Create validates the path, persists the project, and initializes its repo.
func (s *ProjectService) Create(ctx context.Context, name, path string) (*ent.Project, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	if path == "" {
		return nil, NewValidationError("path", "required")
	}
	validated, err := s.versions.ValidatePath(path)
	if err != nil {
		return nil, err
	}

	p, err := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetPath(validated).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: project path %q", ErrAlreadyExists, validated)
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if err := s.versions.EnsureRepo(ctx, validated); err != nil {
		// Repo init is retried on first commit; creation itself stands.
		return p, nil
	}
	return p, nil
}

// Get returns a project by id.
func (s *ProjectService) Get(ctx context.Context, id string) (*ent.Project, error) {
	p, err := s.client.Project.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: project %q", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	return p, nil
}

// List returns all projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]*ent.Project, error) {
	rows, err := s.client.Project.Query().
		Order(ent.Desc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return rows, nil
}

// Rename updates the project name.
func (s *ProjectService) Rename(ctx context.Context, id, name string) (*ent.Project, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	p, err := s.client.Project.UpdateOneID(id).SetName(name).Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: project %q", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to rename project: %w", err)
	}
	return p, nil
}

// Delete removes a project. Chats and their descendants go with it; billing
// ledger rows always survive.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	err := s.client.Project.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: project %q", ErrNotFound, id)
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
