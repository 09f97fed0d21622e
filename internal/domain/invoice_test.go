package domain

import (
	"errors"
	"testing"
	"time"
)

func testInvoice() *Invoice {
	inv := NewInvoice("1", NewDate(2026, time.March, 1), NewDate(2026, time.March, 15))
	inv.Items = []LineItem{
		{Description: "Design", Quantity: 2, Rate: 100},
		{Description: "Development", Quantity: 1, Rate: 50},
	}
	inv.Tax = 25
	return inv
}

func TestInvoiceRecalculate(t *testing.T) {
	inv := testInvoice()
	inv.Recalculate()

	if inv.Items[0].Amount != 200 {
		t.Errorf("first item amount = %v, want 200", inv.Items[0].Amount)
	}
	if inv.Items[1].Amount != 50 {
		t.Errorf("second item amount = %v, want 50", inv.Items[1].Amount)
	}
	if inv.Subtotal != 250 {
		t.Errorf("subtotal = %v, want 250", inv.Subtotal)
	}
	if inv.Total != 275 {
		t.Errorf("total = %v, want 275", inv.Total)
	}
}

func TestInvoiceRecalculateOverwritesStaleAmounts(t *testing.T) {
	inv := testInvoice()
	inv.Items[0].Amount = 9999
	inv.Subtotal = 9999
	inv.Total = 9999
	inv.Recalculate()

	if inv.Items[0].Amount != 200 || inv.Subtotal != 250 || inv.Total != 275 {
		t.Errorf("stale amounts survived: item=%v subtotal=%v total=%v",
			inv.Items[0].Amount, inv.Subtotal, inv.Total)
	}
}

func TestInvoiceValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if err := testInvoice().Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing client", func(t *testing.T) {
		inv := testInvoice()
		inv.ClientID = ""
		if err := inv.Validate(); !IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		inv := testInvoice()
		inv.Items = nil
		if err := inv.Validate(); !IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("due before issue", func(t *testing.T) {
		inv := testInvoice()
		inv.DueDate = NewDate(2026, time.February, 1)
		if err := inv.Validate(); !IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("zero quantity item", func(t *testing.T) {
		inv := testInvoice()
		inv.Items[0].Quantity = 0
		if err := inv.Validate(); !IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("negative rate item", func(t *testing.T) {
		inv := testInvoice()
		inv.Items[0].Rate = -10
		if err := inv.Validate(); !IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("negative tax", func(t *testing.T) {
		inv := testInvoice()
		inv.Tax = -1
		if err := inv.Validate(); !IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		inv := testInvoice()
		inv.Status = "archived"
		var verr *ValidationError
		if err := inv.Validate(); !errors.As(err, &verr) || verr.Field != "status" {
			t.Errorf("expected status validation error, got %v", err)
		}
	})
}

func TestInvoicePaidAmount(t *testing.T) {
	inv := testInvoice()
	if got := inv.PaidAmount(); got != 0 {
		t.Errorf("PaidAmount() with no payments = %v, want 0", got)
	}

	inv.Payments = []Payment{
		{Amount: 100.005, Method: PaymentMethodCreditCard},
		{Amount: 50, Method: PaymentMethodManual},
	}
	if got := inv.PaidAmount(); got != 150.01 {
		t.Errorf("PaidAmount() = %v, want 150.01", got)
	}
}

func TestInvoiceIsPastDue(t *testing.T) {
	inv := testInvoice()
	inv.Status = InvoiceStatusPending
	inv.DueDate = NewDate(2026, time.March, 15)

	// Due date itself and the following day are still on time
	if inv.IsPastDue(time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)) {
		t.Error("invoice should not be past due on the due date")
	}
	if !inv.IsPastDue(time.Date(2026, time.March, 17, 0, 0, 0, 0, time.UTC)) {
		t.Error("invoice should be past due two days after the due date")
	}

	inv.Status = InvoiceStatusDraft
	if inv.IsPastDue(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("draft invoices are never past due")
	}
}

func TestInvoiceCloneIsDeep(t *testing.T) {
	inv := testInvoice()
	inv.Payments = []Payment{{Amount: 10, Method: PaymentMethodManual}}

	cp := inv.Clone()
	cp.Items[0].Quantity = 99
	cp.Payments[0].Amount = 99

	if inv.Items[0].Quantity == 99 {
		t.Error("Clone shares the items slice")
	}
	if inv.Payments[0].Amount == 99 {
		t.Error("Clone shares the payments slice")
	}
}
