// Package pdf renders invoices as PDF documents.
package pdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/andy/freelink/internal/domain"
)

// Business is the issuer block printed at the top of every invoice.
type Business struct {
	Name    string
	Email   string
	Address string
	Phone   string
}

// Render writes the invoice as an A4 PDF. client may be nil when the
// client record no longer exists; the invoice's denormalized client name
// is used in that case.
func Render(w io.Writer, invoice *domain.Invoice, client *domain.Client, business Business) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetMargins(15, 15, 15)
	p.AddPage()

	// Header
	p.SetFont("Helvetica", "B", 22)
	p.Cell(120, 10, "INVOICE")
	p.SetFont("Helvetica", "", 10)
	p.CellFormat(60, 10, invoice.ID, "", 1, "R", false, 0, "")
	p.Ln(2)

	// Issuer
	if business.Name != "" {
		p.SetFont("Helvetica", "B", 11)
		p.CellFormat(0, 6, business.Name, "", 1, "L", false, 0, "")
		p.SetFont("Helvetica", "", 9)
		for _, line := range []string{business.Address, business.Email, business.Phone} {
			if line != "" {
				p.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
			}
		}
		p.Ln(4)
	}

	// Bill-to and dates
	p.SetFont("Helvetica", "B", 10)
	p.CellFormat(95, 6, "Bill To", "", 0, "L", false, 0, "")
	p.CellFormat(40, 6, "Issue Date", "", 0, "L", false, 0, "")
	p.CellFormat(40, 6, "Due Date", "", 1, "L", false, 0, "")
	p.SetFont("Helvetica", "", 10)
	p.CellFormat(95, 6, billToName(invoice, client), "", 0, "L", false, 0, "")
	p.CellFormat(40, 6, invoice.IssueDate.String(), "", 0, "L", false, 0, "")
	p.CellFormat(40, 6, invoice.DueDate.String(), "", 1, "L", false, 0, "")
	if client != nil && client.Email != "" {
		p.CellFormat(95, 5, client.Email, "", 1, "L", false, 0, "")
	}
	p.Ln(6)

	// Status
	p.SetFont("Helvetica", "I", 9)
	p.CellFormat(0, 5, "Status: "+strings.ToUpper(string(invoice.Status)), "", 1, "L", false, 0, "")
	p.Ln(3)

	// Line item table
	p.SetFont("Helvetica", "B", 10)
	p.SetFillColor(235, 235, 235)
	p.CellFormat(95, 8, "Description", "1", 0, "L", true, 0, "")
	p.CellFormat(25, 8, "Qty", "1", 0, "R", true, 0, "")
	p.CellFormat(30, 8, "Rate", "1", 0, "R", true, 0, "")
	p.CellFormat(30, 8, "Amount", "1", 1, "R", true, 0, "")

	p.SetFont("Helvetica", "", 10)
	for _, item := range invoice.Items {
		p.CellFormat(95, 8, item.Description, "1", 0, "L", false, 0, "")
		p.CellFormat(25, 8, trimZeros(item.Quantity), "1", 0, "R", false, 0, "")
		p.CellFormat(30, 8, money(item.Rate), "1", 0, "R", false, 0, "")
		p.CellFormat(30, 8, money(item.Amount), "1", 1, "R", false, 0, "")
	}
	p.Ln(2)

	// Totals
	totals := []struct {
		label string
		value float64
		bold  bool
	}{
		{"Subtotal", invoice.Subtotal, false},
		{"Tax", invoice.Tax, false},
		{"Total", invoice.Total, true},
	}
	for _, t := range totals {
		style := ""
		if t.bold {
			style = "B"
		}
		p.SetFont("Helvetica", style, 10)
		p.CellFormat(120, 6, "", "", 0, "L", false, 0, "")
		p.CellFormat(30, 6, t.label, "", 0, "R", false, 0, "")
		p.CellFormat(30, 6, money(t.value), "", 1, "R", false, 0, "")
	}

	if paid := invoice.PaidAmount(); paid > 0 {
		p.SetFont("Helvetica", "", 10)
		p.CellFormat(120, 6, "", "", 0, "L", false, 0, "")
		p.CellFormat(30, 6, "Paid", "", 0, "R", false, 0, "")
		p.CellFormat(30, 6, money(paid), "", 1, "R", false, 0, "")
	}

	// Notes
	if invoice.Notes != "" {
		p.Ln(8)
		p.SetFont("Helvetica", "B", 10)
		p.CellFormat(0, 6, "Notes", "", 1, "L", false, 0, "")
		p.SetFont("Helvetica", "", 9)
		p.MultiCell(0, 5, invoice.Notes, "", "L", false)
	}

	return p.Output(w)
}

func billToName(invoice *domain.Invoice, client *domain.Client) string {
	if client != nil {
		if client.Company != "" {
			return client.Company
		}
		return client.Name
	}
	return invoice.ClientName
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// trimZeros formats a quantity without trailing decimal zeros.
func trimZeros(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
