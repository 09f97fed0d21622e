package store

import (
	"context"
	"fmt"
	"time"

	"github.com/andy/freelink/internal/domain"
	"github.com/andy/freelink/internal/storage"
)

// MemInvoiceStore is the in-memory InvoiceStore implementation.
type MemInvoiceStore struct {
	memStore
	local    *storage.LocalStore
	invoices []*domain.Invoice
}

// NewMemInvoiceStore creates an invoice store backed by the
// freelink-invoices key when local is non-nil.
func NewMemInvoiceStore(local *storage.LocalStore, delay time.Duration) (*MemInvoiceStore, error) {
	s := &MemInvoiceStore{
		memStore: memStore{delay: delay},
		local:    local,
		invoices: make([]*domain.Invoice, 0),
	}
	if local != nil {
		if _, err := local.GetJSON(storage.KeyInvoices, &s.invoices); err != nil {
			return nil, fmt.Errorf("failed to load invoices: %w", err)
		}
	}
	return s, nil
}

// Seed replaces the collection with fixtures, keeping their ids.
func (s *MemInvoiceStore) Seed(invoices []*domain.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = make([]*domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		s.invoices = append(s.invoices, inv.Clone())
	}
	return s.saveLocked()
}

// List returns a snapshot copy of all invoices.
func (s *MemInvoiceStore) List(ctx context.Context) ([]*domain.Invoice, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		out = append(out, inv.Clone())
	}
	return out, nil
}

// GetByID returns the invoice with the given id.
func (s *MemInvoiceStore) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv.Clone(), nil
		}
	}
	return nil, fmt.Errorf("invoice %s: %w", id, domain.ErrNotFound)
}

// Create stores a new invoice with a fresh id and creation timestamp.
// Callers are expected to have recalculated totals already.
func (s *MemInvoiceStore) Create(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	if err := invoice.Validate(); err != nil {
		return nil, fmt.Errorf("invalid invoice: %w", err)
	}
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := invoice.Clone()
	stored.ID = newID()
	stored.CreatedAt = time.Now().UTC()
	s.invoices = append(s.invoices, stored)
	if err := s.saveLocked(); err != nil {
		return nil, err
	}
	return stored.Clone(), nil
}

// Update shallow-merges the patch into the stored invoice.
func (s *MemInvoiceStore) Update(ctx context.Context, id string, patch InvoicePatch) (*domain.Invoice, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.invoices {
		if inv.ID != id {
			continue
		}
		updated := inv.Clone()
		patch.apply(updated)
		updated.ID = id
		if err := updated.Validate(); err != nil {
			return nil, fmt.Errorf("invalid invoice: %w", err)
		}
		*inv = *updated
		if err := s.saveLocked(); err != nil {
			return nil, err
		}
		return updated.Clone(), nil
	}
	return nil, fmt.Errorf("invoice %s: %w", id, domain.ErrNotFound)
}

// Delete removes the invoice with the given id.
func (s *MemInvoiceStore) Delete(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, inv := range s.invoices {
		if inv.ID == id {
			s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
			return s.saveLocked()
		}
	}
	return fmt.Errorf("invoice %s: %w", id, domain.ErrNotFound)
}

func (s *MemInvoiceStore) saveLocked() error {
	if s.local == nil {
		return nil
	}
	return s.local.SetJSON(storage.KeyInvoices, s.invoices)
}
