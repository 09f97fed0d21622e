package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/andy/freelink/internal/domain"
	"github.com/andy/freelink/internal/pdf"
	"github.com/andy/freelink/internal/query"
	"github.com/andy/freelink/internal/store"
)

// newTestInvoiceService builds the service over zero-delay in-memory
// stores seeded with the demo dataset.
func newTestInvoiceService(t *testing.T) (*invoiceService, *store.MemInvoiceStore) {
	t.Helper()

	clients, err := store.NewMemClientStore(nil, 0)
	if err != nil {
		t.Fatalf("client store: %v", err)
	}
	invoices, err := store.NewMemInvoiceStore(nil, 0)
	if err != nil {
		t.Fatalf("invoice store: %v", err)
	}

	fixtures := store.DemoFixtures()
	if err := clients.Seed(fixtures.Clients); err != nil {
		t.Fatalf("seed clients: %v", err)
	}
	if err := invoices.Seed(fixtures.Invoices); err != nil {
		t.Fatalf("seed invoices: %v", err)
	}

	business := pdf.Business{Name: "Test Studio", Email: "studio@example.com"}
	svc := NewInvoiceService(invoices, clients, business).(*invoiceService)
	return svc, invoices
}

func TestCreateInvoiceComputesTotals(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestInvoiceService(t)

	inv := domain.NewInvoice("1", domain.NewDate(2026, time.March, 1), domain.NewDate(2026, time.March, 15))
	inv.Items = []domain.LineItem{
		{Description: "Design", Quantity: 2, Rate: 100},
		{Description: "Development", Quantity: 1, Rate: 50},
	}
	inv.Tax = 25
	// Caller-supplied totals are ignored and re-derived
	inv.Subtotal = 9999
	inv.Total = 9999

	created, err := svc.CreateInvoice(ctx, inv)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.Subtotal != 250 || created.Total != 275 {
		t.Errorf("totals = %v/%v, want 250/275", created.Subtotal, created.Total)
	}
	if created.Items[0].Amount != 200 {
		t.Errorf("line amount = %v, want 200", created.Items[0].Amount)
	}
	if created.Status != domain.InvoiceStatusDraft {
		t.Errorf("status = %s, want draft", created.Status)
	}
	// Client "1" has a company, which wins over the contact name
	if created.ClientName != "Acme Inc" {
		t.Errorf("clientName = %q, want Acme Inc", created.ClientName)
	}
}

func TestCreateInvoiceUnknownClient(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestInvoiceService(t)

	inv := domain.NewInvoice("999", domain.NewDate(2026, time.March, 1), domain.NewDate(2026, time.March, 15))
	inv.Items = []domain.LineItem{{Description: "Design", Quantity: 1, Rate: 100}}

	if _, err := svc.CreateInvoice(ctx, inv); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("create for unknown client: %v, want ErrNotFound", err)
	}
}

func TestUpdateInvoiceRecalculates(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestInvoiceService(t)

	inv, err := svc.GetInvoice(ctx, "INV-2023-002")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	inv.Items = []domain.LineItem{{Description: "UI/UX Design", Quantity: 10, Rate: 120}}
	inv.Tax = 100
	updated, err := svc.UpdateInvoice(ctx, "INV-2023-002", inv)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Subtotal != 1200 || updated.Total != 1300 {
		t.Errorf("totals = %v/%v, want 1200/1300", updated.Subtotal, updated.Total)
	}
	if updated.ID != "INV-2023-002" {
		t.Errorf("id changed to %s", updated.ID)
	}
}

func TestListInvoicesFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestInvoiceService(t)

	got, err := svc.ListInvoices(ctx, query.Filter{ClientID: "1"},
		query.Sort{Field: query.FieldIssueDate, Direction: query.Desc})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d invoices, want 2", len(got))
	}
	if got[0].ID != "INV-2023-004" || got[1].ID != "INV-2023-001" {
		t.Errorf("order: %s, %s; want INV-2023-004, INV-2023-001", got[0].ID, got[1].ID)
	}
}

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestInvoiceService(t)

	// Partial payment leaves the invoice pending
	inv, err := svc.RecordPayment(ctx, "INV-2023-002", domain.Payment{Amount: 1000, Reference: "P1"})
	if err != nil {
		t.Fatalf("partial payment: %v", err)
	}
	if inv.Status != domain.InvoiceStatusPending {
		t.Errorf("status after partial payment = %s, want pending", inv.Status)
	}
	if inv.PaidAmount() != 1000 {
		t.Errorf("paid = %v, want 1000", inv.PaidAmount())
	}
	// Defaults applied
	if inv.Payments[0].Method != domain.PaymentMethodManual {
		t.Errorf("method = %s, want manual", inv.Payments[0].Method)
	}
	if inv.Payments[0].Date.IsZero() {
		t.Error("payment date not defaulted")
	}

	// Covering the total flips the status to paid
	inv, err = svc.RecordPayment(ctx, "INV-2023-002", domain.Payment{Amount: 3000, Method: domain.PaymentMethodBankTransfer})
	if err != nil {
		t.Fatalf("final payment: %v", err)
	}
	if inv.Status != domain.InvoiceStatusPaid {
		t.Errorf("status after full payment = %s, want paid", inv.Status)
	}
	if len(inv.Payments) != 2 {
		t.Errorf("payment count = %d, want 2", len(inv.Payments))
	}
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestInvoiceService(t)

	if _, err := svc.RecordPayment(ctx, "INV-2023-002", domain.Payment{Amount: 0}); !errors.Is(err, ErrInvalidPayment) {
		t.Errorf("zero amount: %v, want ErrInvalidPayment", err)
	}
	if _, err := svc.RecordPayment(ctx, "INV-2023-002", domain.Payment{Amount: -5}); !errors.Is(err, ErrInvalidPayment) {
		t.Errorf("negative amount: %v, want ErrInvalidPayment", err)
	}
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestInvoiceService(t)

	inv, err := svc.SetStatus(ctx, "INV-2023-004", domain.InvoiceStatusPending)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if inv.Status != domain.InvoiceStatusPending {
		t.Errorf("status = %s, want pending", inv.Status)
	}

	if _, err := svc.SetStatus(ctx, "INV-2023-004", "archived"); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("unknown status: %v, want ErrUnknownStatus", err)
	}
}

func TestCheckOverdue(t *testing.T) {
	ctx := context.Background()
	svc, invoices := newTestInvoiceService(t)

	// Fixture INV-2023-002 is pending with due date 2023-09-19; the
	// already-overdue and paid fixtures must not be touched.
	svc.now = func() time.Time {
		return time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC)
	}

	n, err := svc.CheckOverdue(ctx)
	if err != nil {
		t.Fatalf("check overdue: %v", err)
	}
	if n != 1 {
		t.Errorf("marked %d invoices, want 1", n)
	}

	inv, err := invoices.GetByID(ctx, "INV-2023-002")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if inv.Status != domain.InvoiceStatusOverdue {
		t.Errorf("status = %s, want overdue", inv.Status)
	}

	// Second sweep finds nothing new
	n, err = svc.CheckOverdue(ctx)
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if n != 0 {
		t.Errorf("second sweep marked %d invoices, want 0", n)
	}
}

func TestExportPDF(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestInvoiceService(t)

	var buf bytes.Buffer
	if err := svc.ExportPDF(ctx, "INV-2023-001", &buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not look like a PDF (starts with %q)", buf.Bytes()[:min(8, buf.Len())])
	}

	if err := svc.ExportPDF(ctx, "nope", &buf); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("export unknown invoice: %v, want ErrNotFound", err)
	}
}
