// Package store implements the app's data layer: per-entity stores backed
// by in-memory collections, optionally persisted through the localstore.
// Every operation simulates a remote call: it completes after a
// configurable delay and respects context cancellation, so a caller that
// goes away never applies a stale result.
package store

import (
	"context"

	"github.com/andy/freelink/internal/domain"
)

// ClientStore manages client records.
type ClientStore interface {
	List(ctx context.Context) ([]*domain.Client, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, id string, patch ClientPatch) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}

// ProjectStore manages project records.
type ProjectStore interface {
	List(ctx context.Context) ([]*domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id string, patch ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// InvoiceStore manages invoice records.
type InvoiceStore interface {
	List(ctx context.Context) ([]*domain.Invoice, error)
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	Create(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	Update(ctx context.Context, id string, patch InvoicePatch) (*domain.Invoice, error)
	Delete(ctx context.Context, id string) error
}
