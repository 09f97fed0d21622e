package store

import (
	"context"
	"fmt"
	"time"

	"github.com/andy/freelink/internal/domain"
	"github.com/andy/freelink/internal/storage"
)

// MemClientStore is the in-memory ClientStore implementation.
type MemClientStore struct {
	memStore
	local   *storage.LocalStore
	clients []*domain.Client
}

// NewMemClientStore creates a client store. If local is non-nil the
// collection is loaded from the freelink-clients key and written back
// after every mutation.
func NewMemClientStore(local *storage.LocalStore, delay time.Duration) (*MemClientStore, error) {
	s := &MemClientStore{
		memStore: memStore{delay: delay},
		local:    local,
		clients:  make([]*domain.Client, 0),
	}
	if local != nil {
		if _, err := local.GetJSON(storage.KeyClients, &s.clients); err != nil {
			return nil, fmt.Errorf("failed to load clients: %w", err)
		}
	}
	return s, nil
}

// Seed replaces the collection with fixtures, keeping their ids, and
// persists the result.
func (s *MemClientStore) Seed(clients []*domain.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = make([]*domain.Client, 0, len(clients))
	for _, c := range clients {
		s.clients = append(s.clients, c.Clone())
	}
	return s.saveLocked()
}

// List returns a snapshot copy of all clients.
func (s *MemClientStore) List(ctx context.Context) ([]*domain.Client, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c.Clone())
	}
	return out, nil
}

// GetByID returns the client with the given id.
func (s *MemClientStore) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c.Clone(), nil
		}
	}
	return nil, fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
}

// Create stores a new client with a fresh id and creation timestamp.
func (s *MemClientStore) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if err := client.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client: %w", err)
	}
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := client.Clone()
	stored.ID = newID()
	stored.CreatedAt = time.Now().UTC()
	s.clients = append(s.clients, stored)
	if err := s.saveLocked(); err != nil {
		return nil, err
	}
	return stored.Clone(), nil
}

// Update shallow-merges the patch into the stored client. The id is
// preserved.
func (s *MemClientStore) Update(ctx context.Context, id string, patch ClientPatch) (*domain.Client, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		if c.ID != id {
			continue
		}
		updated := c.Clone()
		patch.apply(updated)
		updated.ID = id
		if err := updated.Validate(); err != nil {
			return nil, fmt.Errorf("invalid client: %w", err)
		}
		*c = *updated
		if err := s.saveLocked(); err != nil {
			return nil, err
		}
		return updated.Clone(), nil
	}
	return nil, fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
}

// Delete removes the client with the given id.
func (s *MemClientStore) Delete(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.clients {
		if c.ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			return s.saveLocked()
		}
	}
	return fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
}

func (s *MemClientStore) saveLocked() error {
	if s.local == nil {
		return nil
	}
	return s.local.SetJSON(storage.KeyClients, s.clients)
}
