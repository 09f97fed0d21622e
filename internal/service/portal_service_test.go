package service

import (
	"context"
	"errors"
	"testing"

	"github.com/andy/freelink/internal/domain"
	"github.com/andy/freelink/internal/store"
)

func newTestPortalService(t *testing.T) PortalService {
	t.Helper()

	clients, err := store.NewMemClientStore(nil, 0)
	if err != nil {
		t.Fatalf("client store: %v", err)
	}
	projects, err := store.NewMemProjectStore(nil, 0)
	if err != nil {
		t.Fatalf("project store: %v", err)
	}
	invoices, err := store.NewMemInvoiceStore(nil, 0)
	if err != nil {
		t.Fatalf("invoice store: %v", err)
	}

	fixtures := store.DemoFixtures()
	if err := clients.Seed(fixtures.Clients); err != nil {
		t.Fatalf("seed clients: %v", err)
	}
	if err := projects.Seed(fixtures.Projects); err != nil {
		t.Fatalf("seed projects: %v", err)
	}
	if err := invoices.Seed(fixtures.Invoices); err != nil {
		t.Fatalf("seed invoices: %v", err)
	}

	return NewPortalService(clients, projects, invoices)
}

func TestPortalOverviewScopesToClient(t *testing.T) {
	ctx := context.Background()
	svc := newTestPortalService(t)

	ov, err := svc.Overview(ctx, "1")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if ov.Client.Name != "Jane Cooper" {
		t.Errorf("client = %s", ov.Client.Name)
	}
	// Client 1 owns one project and two invoices in the demo data
	if len(ov.Projects) != 1 || ov.Projects[0].ID != "1" {
		t.Errorf("projects = %v", ov.Projects)
	}
	if len(ov.Invoices) != 2 {
		t.Fatalf("got %d invoices, want 2", len(ov.Invoices))
	}
	// Newest first
	if ov.Invoices[0].ID != "INV-2023-004" || ov.Invoices[1].ID != "INV-2023-001" {
		t.Errorf("invoice order: %s, %s", ov.Invoices[0].ID, ov.Invoices[1].ID)
	}
	for _, inv := range ov.Invoices {
		if inv.ClientID != "1" {
			t.Errorf("invoice %s leaked from client %s", inv.ID, inv.ClientID)
		}
	}
}

func TestPortalOverviewOutstanding(t *testing.T) {
	ctx := context.Background()
	svc := newTestPortalService(t)

	// Client 1: INV-2023-001 is paid (excluded), INV-2023-004 is an open
	// draft for 787.50 with no payments.
	ov, err := svc.Overview(ctx, "1")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if ov.Outstanding != 787.5 {
		t.Errorf("outstanding = %v, want 787.5", ov.Outstanding)
	}
	if ov.OverdueCount != 0 {
		t.Errorf("overdueCount = %d, want 0", ov.OverdueCount)
	}

	// Client 3 has a single overdue invoice for 1200.
	ov, err = svc.Overview(ctx, "3")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if ov.Outstanding != 1200 {
		t.Errorf("outstanding = %v, want 1200", ov.Outstanding)
	}
	if ov.OverdueCount != 1 {
		t.Errorf("overdueCount = %d, want 1", ov.OverdueCount)
	}
}

func TestPortalOverviewUnknownClient(t *testing.T) {
	ctx := context.Background()
	svc := newTestPortalService(t)

	if _, err := svc.Overview(ctx, "999"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("overview for unknown client: %v, want ErrNotFound", err)
	}
}

func TestPortalListsForClientWithNoData(t *testing.T) {
	ctx := context.Background()
	svc := newTestPortalService(t)

	// Client 4 is a lead with no projects or invoices yet
	invoices, err := svc.Invoices(ctx, "4")
	if err != nil {
		t.Fatalf("invoices: %v", err)
	}
	if len(invoices) != 0 {
		t.Errorf("got %d invoices, want 0", len(invoices))
	}

	projects, err := svc.Projects(ctx, "4")
	if err != nil {
		t.Fatalf("projects: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("got %d projects, want 0", len(projects))
	}
}
