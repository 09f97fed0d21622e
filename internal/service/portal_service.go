package service

import (
	"context"

	"github.com/andy/freelink/internal/domain"
	"github.com/andy/freelink/internal/query"
	"github.com/andy/freelink/internal/store"
)

// PortalService serves the authenticated client portal: every query is
// scoped to a single client id.
type PortalService interface {
	// Overview assembles the portal dashboard for a client.
	Overview(ctx context.Context, clientID string) (*PortalOverview, error)

	// Invoices lists the client's invoices, newest first.
	Invoices(ctx context.Context, clientID string) ([]*domain.Invoice, error)

	// Projects lists the client's projects, newest first.
	Projects(ctx context.Context, clientID string) ([]*domain.Project, error)
}

// PortalOverview is the portal dashboard payload.
type PortalOverview struct {
	Client       *domain.Client
	Projects     []*domain.Project
	Invoices     []*domain.Invoice
	Outstanding  float64
	OverdueCount int
}

type portalService struct {
	clients  store.ClientStore
	projects store.ProjectStore
	invoices store.InvoiceStore
}

// NewPortalService creates a new portal service.
func NewPortalService(clients store.ClientStore, projects store.ProjectStore, invoices store.InvoiceStore) PortalService {
	return &portalService{
		clients:  clients,
		projects: projects,
		invoices: invoices,
	}
}

func (s *portalService) Overview(ctx context.Context, clientID string) (*PortalOverview, error) {
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	projects, err := s.Projects(ctx, clientID)
	if err != nil {
		return nil, err
	}

	invoices, err := s.Invoices(ctx, clientID)
	if err != nil {
		return nil, err
	}

	overview := &PortalOverview{
		Client:   client,
		Projects: projects,
		Invoices: invoices,
	}
	outstanding := 0.0
	for _, inv := range invoices {
		if !inv.IsOpen() {
			continue
		}
		outstanding += inv.Total - inv.PaidAmount()
		if inv.Status == domain.InvoiceStatusOverdue {
			overview.OverdueCount++
		}
	}
	overview.Outstanding = domain.Round2(outstanding)
	return overview, nil
}

func (s *portalService) Invoices(ctx context.Context, clientID string) ([]*domain.Invoice, error) {
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := query.FilterInvoices(invoices, query.Filter{ClientID: clientID})
	return query.SortInvoices(filtered, query.Sort{Field: query.FieldIssueDate, Direction: query.Desc}), nil
}

func (s *portalService) Projects(ctx context.Context, clientID string) ([]*domain.Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := query.FilterProjects(projects, query.Filter{ClientID: clientID})
	return query.SortProjects(filtered, query.Sort{Field: query.FieldStartDate, Direction: query.Desc}), nil
}
