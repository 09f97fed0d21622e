package store

import (
	"context"
	"fmt"
	"time"

	"github.com/andy/freelink/internal/domain"
	"github.com/andy/freelink/internal/storage"
)

// MemProjectStore is the in-memory ProjectStore implementation.
type MemProjectStore struct {
	memStore
	local    *storage.LocalStore
	projects []*domain.Project
}

// NewMemProjectStore creates a project store backed by the
// freelink-projects key when local is non-nil.
func NewMemProjectStore(local *storage.LocalStore, delay time.Duration) (*MemProjectStore, error) {
	s := &MemProjectStore{
		memStore: memStore{delay: delay},
		local:    local,
		projects: make([]*domain.Project, 0),
	}
	if local != nil {
		if _, err := local.GetJSON(storage.KeyProjects, &s.projects); err != nil {
			return nil, fmt.Errorf("failed to load projects: %w", err)
		}
	}
	return s, nil
}

// Seed replaces the collection with fixtures, keeping their ids.
func (s *MemProjectStore) Seed(projects []*domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = make([]*domain.Project, 0, len(projects))
	for _, p := range projects {
		s.projects = append(s.projects, p.Clone())
	}
	return s.saveLocked()
}

// List returns a snapshot copy of all projects.
func (s *MemProjectStore) List(ctx context.Context) ([]*domain.Project, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p.Clone())
	}
	return out, nil
}

// GetByID returns the project with the given id.
func (s *MemProjectStore) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
}

// Create stores a new project with a fresh id and creation timestamp.
func (s *MemProjectStore) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project: %w", err)
	}
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := project.Clone()
	stored.ID = newID()
	stored.CreatedAt = time.Now().UTC()
	s.projects = append(s.projects, stored)
	if err := s.saveLocked(); err != nil {
		return nil, err
	}
	return stored.Clone(), nil
}

// Update shallow-merges the patch into the stored project.
func (s *MemProjectStore) Update(ctx context.Context, id string, patch ProjectPatch) (*domain.Project, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ID != id {
			continue
		}
		updated := p.Clone()
		patch.apply(updated)
		updated.ID = id
		if err := updated.Validate(); err != nil {
			return nil, fmt.Errorf("invalid project: %w", err)
		}
		*p = *updated
		if err := s.saveLocked(); err != nil {
			return nil, err
		}
		return updated.Clone(), nil
	}
	return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
}

// Delete removes the project with the given id.
func (s *MemProjectStore) Delete(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.projects {
		if p.ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return s.saveLocked()
		}
	}
	return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
}

func (s *MemProjectStore) saveLocked() error {
	if s.local == nil {
		return nil
	}
	return s.local.SetJSON(storage.KeyProjects, s.projects)
}
