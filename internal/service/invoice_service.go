package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/andy/freelink/internal/domain"
	"github.com/andy/freelink/internal/pdf"
	"github.com/andy/freelink/internal/query"
	"github.com/andy/freelink/internal/store"
)

var (
	ErrInvalidPayment = errors.New("payment amount must be greater than zero")
	ErrUnknownStatus  = errors.New("unknown invoice status")
)

// InvoiceService manages the invoice lifecycle. Totals are always
// re-derived from the item list before anything is persisted.
type InvoiceService interface {
	// CreateInvoice validates, recalculates totals, denormalizes the
	// client name, and stores a new invoice.
	CreateInvoice(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)

	// UpdateInvoice replaces the editable fields of an existing invoice,
	// recalculating totals from the submitted item list.
	UpdateInvoice(ctx context.Context, id string, invoice *domain.Invoice) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice.
	DeleteInvoice(ctx context.Context, id string) error

	// GetInvoice retrieves an invoice by id.
	GetInvoice(ctx context.Context, id string) (*domain.Invoice, error)

	// ListInvoices lists invoices after applying the filter and sort.
	ListInvoices(ctx context.Context, f query.Filter, s query.Sort) ([]*domain.Invoice, error)

	// RecordPayment appends a payment; the invoice flips to paid once
	// payments cover the total.
	RecordPayment(ctx context.Context, id string, payment domain.Payment) (*domain.Invoice, error)

	// SetStatus updates the invoice status.
	SetStatus(ctx context.Context, id string, status domain.InvoiceStatus) (*domain.Invoice, error)

	// CheckOverdue marks pending invoices past their due date as overdue
	// and returns how many were updated.
	CheckOverdue(ctx context.Context) (int, error)

	// ExportPDF renders an invoice as a PDF document.
	ExportPDF(ctx context.Context, id string, w io.Writer) error
}

type invoiceService struct {
	invoices store.InvoiceStore
	clients  store.ClientStore
	business pdf.Business
	now      func() time.Time
}

// NewInvoiceService creates a new invoice service. The business details
// appear on exported PDFs.
func NewInvoiceService(invoices store.InvoiceStore, clients store.ClientStore, business pdf.Business) InvoiceService {
	return &invoiceService{
		invoices: invoices,
		clients:  clients,
		business: business,
		now:      time.Now,
	}
}

// clientDisplayName resolves the name shown on the invoice: the client's
// company when set, otherwise the contact name.
func (s *invoiceService) clientDisplayName(ctx context.Context, clientID string) (string, error) {
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return "", err
	}
	if client.Company != "" {
		return client.Company, nil
	}
	return client.Name, nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	inv := invoice.Clone()
	if inv.Status == "" {
		inv.Status = domain.InvoiceStatusDraft
	}

	name, err := s.clientDisplayName(ctx, inv.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve client: %w", err)
	}
	inv.ClientName = name

	inv.Recalculate()
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	return s.invoices.Create(ctx, inv)
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, id string, invoice *domain.Invoice) (*domain.Invoice, error) {
	inv := invoice.Clone()

	name, err := s.clientDisplayName(ctx, inv.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve client: %w", err)
	}
	inv.ClientName = name

	inv.Recalculate()
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	patch := store.InvoicePatch{
		ClientID:   &inv.ClientID,
		ClientName: &inv.ClientName,
		IssueDate:  &inv.IssueDate,
		DueDate:    &inv.DueDate,
		Status:     &inv.Status,
		Items:      &inv.Items,
		Subtotal:   &inv.Subtotal,
		Tax:        &inv.Tax,
		Total:      &inv.Total,
		Notes:      &inv.Notes,
	}
	return s.invoices.Update(ctx, id, patch)
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id string) error {
	return s.invoices.Delete(ctx, id)
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *invoiceService) ListInvoices(ctx context.Context, f query.Filter, srt query.Sort) ([]*domain.Invoice, error) {
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.SortInvoices(query.FilterInvoices(invoices, f), srt), nil
}

func (s *invoiceService) RecordPayment(ctx context.Context, id string, payment domain.Payment) (*domain.Invoice, error) {
	if payment.Amount <= 0 {
		return nil, ErrInvalidPayment
	}
	if payment.Method == "" {
		payment.Method = domain.PaymentMethodManual
	}
	if payment.Date.IsZero() {
		now := s.now()
		payment.Date = domain.NewDate(now.Year(), now.Month(), now.Day())
	}

	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payments := append(append([]domain.Payment(nil), invoice.Payments...), payment)
	patch := store.InvoicePatch{Payments: &payments}

	invoice.Payments = payments
	if invoice.PaidAmount() >= invoice.Total {
		paid := domain.InvoiceStatusPaid
		patch.Status = &paid
	}

	return s.invoices.Update(ctx, id, patch)
}

func (s *invoiceService) SetStatus(ctx context.Context, id string, status domain.InvoiceStatus) (*domain.Invoice, error) {
	if !domain.ValidInvoiceStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	return s.invoices.Update(ctx, id, store.InvoicePatch{Status: &status})
}

func (s *invoiceService) CheckOverdue(ctx context.Context) (int, error) {
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return 0, err
	}

	now := s.now()
	updated := 0
	for _, invoice := range invoices {
		if !invoice.IsPastDue(now) {
			continue
		}
		overdue := domain.InvoiceStatusOverdue
		if _, err := s.invoices.Update(ctx, invoice.ID, store.InvoicePatch{Status: &overdue}); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

func (s *invoiceService) ExportPDF(ctx context.Context, id string, w io.Writer) error {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// The client may have been deleted since the invoice was issued;
	// render with the denormalized name in that case.
	var client *domain.Client
	if invoice.ClientID != "" {
		if c, err := s.clients.GetByID(ctx, invoice.ClientID); err == nil {
			client = c
		}
	}

	return pdf.Render(w, invoice, client, s.business)
}
