package domain

import (
	"strings"
	"time"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// ValidInvoiceStatus reports whether s is a known invoice status.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusPending, InvoiceStatusPaid,
		InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodManual       PaymentMethod = "manual"
)

// LineItem is one billable row of an invoice. Amount is always derived
// from quantity and rate, never stored independently.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Validate returns an error if the line item is invalid
func (li LineItem) Validate() error {
	if strings.TrimSpace(li.Description) == "" {
		return NewValidationError("description", "item description is required")
	}
	if !isFinite(li.Quantity) || li.Quantity <= 0 {
		return NewValidationError("quantity", "quantity must be greater than zero")
	}
	if !isFinite(li.Rate) || li.Rate < 0 {
		return NewValidationError("rate", "rate cannot be negative")
	}
	return nil
}

type Payment struct {
	Date      Date          `json:"date"`
	Amount    float64       `json:"amount"`
	Method    PaymentMethod `json:"method"`
	Reference string        `json:"reference,omitempty"`
}

type Invoice struct {
	ID         string        `json:"id"`
	ClientID   string        `json:"clientId"`
	ClientName string        `json:"clientName,omitempty"`
	IssueDate  Date          `json:"issueDate"`
	DueDate    Date          `json:"dueDate"`
	Status     InvoiceStatus `json:"status"`
	Items      []LineItem    `json:"items"`
	Subtotal   float64       `json:"subtotal"`
	Tax        float64       `json:"tax"`
	Total      float64       `json:"total"`
	Payments   []Payment     `json:"payments"`
	Notes      string        `json:"notes,omitempty"`
	CreatedAt  time.Time     `json:"createdAt,omitzero"`
}

// NewInvoice creates a new draft invoice
func NewInvoice(clientID string, issueDate, dueDate Date) *Invoice {
	return &Invoice{
		ClientID:  clientID,
		IssueDate: issueDate,
		DueDate:   dueDate,
		Status:    InvoiceStatusDraft,
		Items:     make([]LineItem, 0),
		Payments:  make([]Payment, 0),
	}
}

// Recalculate re-derives every line amount, the subtotal, and the total
// from the item list. Totals are never patched incrementally; the item
// list is the single source of truth.
func (i *Invoice) Recalculate() {
	subtotal := 0.0
	for idx := range i.Items {
		i.Items[idx].Amount = LineAmount(i.Items[idx].Quantity, i.Items[idx].Rate)
		subtotal += i.Items[idx].Amount
	}
	i.Subtotal = Round2(subtotal)
	i.Total = Round2(i.Subtotal + i.Tax)
}

// PaidAmount returns the sum of recorded payments at currency precision.
func (i *Invoice) PaidAmount() float64 {
	sum := 0.0
	for _, p := range i.Payments {
		sum += p.Amount
	}
	return Round2(sum)
}

// IsOpen reports whether the invoice still counts toward the
// outstanding balance.
func (i *Invoice) IsOpen() bool {
	return i.Status != InvoiceStatusPaid && i.Status != InvoiceStatusCancelled
}

// IsPastDue reports whether a pending invoice has passed its due date.
func (i *Invoice) IsPastDue(now time.Time) bool {
	if i.Status != InvoiceStatusPending {
		return false
	}
	return !i.DueDate.IsZero() && now.After(i.DueDate.Time.AddDate(0, 0, 1))
}

// Validate returns an error if the invoice is invalid
func (i *Invoice) Validate() error {
	if i.ClientID == "" {
		return NewValidationError("clientId", "client is required")
	}
	if i.IssueDate.IsZero() {
		return NewValidationError("issueDate", "issue date is required")
	}
	if i.DueDate.IsZero() {
		return NewValidationError("dueDate", "due date is required")
	}
	if i.DueDate.Before(i.IssueDate.Time) {
		return NewValidationError("dueDate", "due date cannot be before issue date")
	}
	if !ValidInvoiceStatus(i.Status) {
		return NewValidationError("status", "unknown invoice status")
	}
	if len(i.Items) == 0 {
		return NewValidationError("items", "at least one item is required")
	}
	for _, item := range i.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	if !isFinite(i.Tax) || i.Tax < 0 {
		return NewValidationError("tax", "tax cannot be negative")
	}
	return nil
}

// Clone returns a deep copy of the invoice.
func (i *Invoice) Clone() *Invoice {
	cp := *i
	if i.Items != nil {
		cp.Items = append([]LineItem(nil), i.Items...)
	}
	if i.Payments != nil {
		cp.Payments = append([]Payment(nil), i.Payments...)
	}
	return &cp
}
