package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/andy/freelink/internal/app"
	"github.com/andy/freelink/internal/domain"
	"github.com/andy/freelink/internal/query"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// invoiceMode represents the current screen mode
type invoiceMode int

const (
	invoiceModeList invoiceMode = iota
	invoiceModeDetail
	invoiceModePay
)

// payment form field indices
const (
	payFieldAmount = iota
	payFieldMethod
	payFieldReference
	payFieldCount
)

var invoiceStatusCycle = []string{query.StatusAll,
	string(domain.InvoiceStatusDraft), string(domain.InvoiceStatusPending),
	string(domain.InvoiceStatusPaid), string(domain.InvoiceStatusOverdue),
	string(domain.InvoiceStatusCancelled)}

var invoiceSortCycle = []string{query.FieldIssueDate, query.FieldDueDate,
	query.FieldAmount, query.FieldClientName, query.FieldStatus}

// InvoicesModel displays the invoice list with a detail view, a payment
// form, and PDF export.
type InvoicesModel struct {
	app      *app.App
	invoices []*domain.Invoice
	cursor   int
	detail   *domain.Invoice

	search      textinput.Model
	statusIdx   int
	sort        query.Sort
	sortFieldIx int

	loading   bool
	err       error
	statusMsg string

	// Payment form state
	mode       invoiceMode
	fields     []textinput.Model
	fieldFocus int
}

type invoicesDataMsg struct {
	invoices []*domain.Invoice
	err      error
}

type paymentSavedMsg struct {
	invoice *domain.Invoice
	err     error
}

type invoiceExportedMsg struct {
	path string
	err  error
}

// NewInvoicesModel creates a new invoices screen model
func NewInvoicesModel(a *app.App) tea.Model {
	search := textinput.New()
	search.Placeholder = "Search invoices..."
	search.CharLimit = 60
	search.Width = 40

	return &InvoicesModel{
		app:     a,
		search:  search,
		sort:    query.Sort{Field: query.FieldIssueDate, Direction: query.Desc},
		loading: true,
	}
}

// IsCapturingInput returns true when the payment form or search box is active
func (m *InvoicesModel) IsCapturingInput() bool {
	return m.mode == invoiceModePay || m.search.Focused()
}

func (m *InvoicesModel) Init() tea.Cmd {
	return m.loadInvoices()
}

func (m *InvoicesModel) loadInvoices() tea.Cmd {
	filter := query.Filter{
		Search: m.search.Value(),
		Status: invoiceStatusCycle[m.statusIdx],
	}
	sort := m.sort
	return func() tea.Msg {
		invoices, err := m.app.InvoiceService.ListInvoices(context.Background(), filter, sort)
		if err != nil {
			return invoicesDataMsg{err: err}
		}
		return invoicesDataMsg{invoices: invoices}
	}
}

func (m *InvoicesModel) initPayForm() {
	m.fields = make([]textinput.Model, payFieldCount)

	m.fields[payFieldAmount] = textinput.New()
	m.fields[payFieldAmount].Placeholder = "0.00"
	m.fields[payFieldAmount].CharLimit = 12
	m.fields[payFieldAmount].Width = 15
	if m.detail != nil {
		outstanding := domain.Round2(m.detail.Total - m.detail.PaidAmount())
		m.fields[payFieldAmount].SetValue(fmt.Sprintf("%.2f", outstanding))
	}

	m.fields[payFieldMethod] = textinput.New()
	m.fields[payFieldMethod].Placeholder = "credit_card, bank_transfer, or manual"
	m.fields[payFieldMethod].CharLimit = 20
	m.fields[payFieldMethod].Width = 30

	m.fields[payFieldReference] = textinput.New()
	m.fields[payFieldReference].Placeholder = "Reference (optional)"
	m.fields[payFieldReference].CharLimit = 40
	m.fields[payFieldReference].Width = 30

	m.fieldFocus = payFieldAmount
	m.fields[payFieldAmount].Focus()
}

func (m *InvoicesModel) savePayment() tea.Cmd {
	amountStr := m.fields[payFieldAmount].Value()
	method := m.fields[payFieldMethod].Value()
	reference := m.fields[payFieldReference].Value()
	id := m.detail.ID

	return func() tea.Msg {
		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			return paymentSavedMsg{err: fmt.Errorf("invalid amount: %s", amountStr)}
		}

		payment := domain.Payment{
			Amount:    amount,
			Method:    domain.PaymentMethod(method),
			Reference: reference,
		}

		invoice, err := m.app.InvoiceService.RecordPayment(context.Background(), id, payment)
		if err != nil {
			return paymentSavedMsg{err: err}
		}
		return paymentSavedMsg{invoice: invoice}
	}
}

func (m *InvoicesModel) exportPDF() tea.Cmd {
	id := m.detail.ID
	outputDir := m.app.Config.Invoice.OutputDir

	return func() tea.Msg {
		path := filepath.Join(outputDir, id+".pdf")

		f, err := os.Create(path)
		if err != nil {
			return invoiceExportedMsg{err: err}
		}
		defer f.Close()

		if err := m.app.InvoiceService.ExportPDF(context.Background(), id, f); err != nil {
			os.Remove(path)
			return invoiceExportedMsg{err: err}
		}
		return invoiceExportedMsg{path: path}
	}
}

func (m *InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == invoiceModePay {
		return m.updatePayForm(msg)
	}

	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadInvoices()

	case invoicesDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.invoices = msg.invoices
			if m.cursor >= len(m.invoices) {
				m.cursor = max(0, len(m.invoices)-1)
			}
			// Keep the detail view in sync after a reload
			if m.detail != nil {
				for _, inv := range m.invoices {
					if inv.ID == m.detail.ID {
						m.detail = inv
						break
					}
				}
			}
		}
		return m, nil

	case paymentSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.detail = msg.invoice
		m.mode = invoiceModeDetail
		m.statusMsg = fmt.Sprintf("Payment recorded on %s", msg.invoice.ID)
		m.loading = true
		return m, m.loadInvoices()

	case invoiceExportedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Exported to %s", msg.path)
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			switch msg.String() {
			case "esc":
				m.search.Blur()
				m.search.SetValue("")
				m.loading = true
				return m, m.loadInvoices()
			case "enter":
				m.search.Blur()
				m.loading = true
				return m, m.loadInvoices()
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}

		if m.loading {
			return m, nil
		}

		m.statusMsg = ""
		m.err = nil

		if m.mode == invoiceModeDetail {
			switch {
			case key.Matches(msg, DefaultKeyMap.Back):
				m.mode = invoiceModeList
				m.detail = nil
			case msg.String() == "y":
				if m.detail.IsOpen() {
					m.mode = invoiceModePay
					m.initPayForm()
					return m, m.fields[payFieldAmount].Focus()
				}
				m.statusMsg = "Invoice is not open for payment"
			case msg.String() == "x":
				return m, m.exportPDF()
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(m.invoices)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.Select):
			if len(m.invoices) > 0 && m.cursor < len(m.invoices) {
				m.detail = m.invoices[m.cursor]
				m.mode = invoiceModeDetail
			}
		case key.Matches(msg, DefaultKeyMap.Search):
			return m, m.search.Focus()
		case key.Matches(msg, DefaultKeyMap.Filter):
			m.statusIdx = (m.statusIdx + 1) % len(invoiceStatusCycle)
			m.cursor = 0
			m.loading = true
			return m, m.loadInvoices()
		case key.Matches(msg, DefaultKeyMap.Sort):
			m.sortFieldIx = (m.sortFieldIx + 1) % len(invoiceSortCycle)
			m.sort = query.Sort{Field: invoiceSortCycle[m.sortFieldIx], Direction: query.Asc}
			m.loading = true
			return m, m.loadInvoices()
		case key.Matches(msg, DefaultKeyMap.Reverse):
			m.sort = m.sort.Toggle(m.sort.Field)
			m.loading = true
			return m, m.loadInvoices()
		}
	}

	return m, nil
}

func (m *InvoicesModel) updatePayForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case paymentSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.detail = msg.invoice
		m.mode = invoiceModeDetail
		m.statusMsg = fmt.Sprintf("Payment recorded on %s", msg.invoice.ID)
		m.loading = true
		return m, m.loadInvoices()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.mode = invoiceModeDetail
			m.err = nil
			return m, nil

		case "tab", "down":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % payFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "shift+tab", "up":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus - 1 + payFieldCount) % payFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "enter":
			if m.fieldFocus == payFieldCount-1 {
				return m, m.savePayment()
			}
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()

		case "ctrl+s":
			return m, m.savePayment()
		}
	}

	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *InvoicesModel) View() string {
	switch m.mode {
	case invoiceModePay:
		return m.viewPayForm()
	case invoiceModeDetail:
		return m.viewDetail()
	}
	return m.viewList()
}

func (m *InvoicesModel) viewPayForm() string {
	s := titleStyle.Render(fmt.Sprintf("Record Payment - %s", m.detail.ID)) + "\n\n"

	labels := []string{"Amount:", "Method:", "Reference:"}
	for i, label := range labels {
		indicator := "  "
		if i == m.fieldFocus {
			indicator = "> "
		}
		labelStyle := subtitleStyle
		if i == m.fieldFocus {
			labelStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
		}
		s += fmt.Sprintf("%s%s\n  %s\n\n", indicator, labelStyle.Render(label), m.fields[i].View())
	}

	if m.err != nil {
		s += lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	s += helpStyle.Render("  tab/shift+tab: navigate fields  ctrl+s: save  enter: next/save  esc: cancel")

	return s
}

func (m *InvoicesModel) viewDetail() string {
	inv := m.detail

	s := titleStyle.Render(fmt.Sprintf("Invoice %s", inv.ID)) + "  " +
		statusStyle(string(inv.Status)).Render(string(inv.Status)) + "\n\n"
	s += fmt.Sprintf("  Client:  %s\n", inv.ClientName)
	s += fmt.Sprintf("  Issued:  %s    Due: %s\n\n", inv.IssueDate, inv.DueDate)

	s += subtitleStyle.Render(fmt.Sprintf("  %-36s %8s %10s %12s", "Description", "Qty", "Rate", "Amount")) + "\n"
	for _, item := range inv.Items {
		s += fmt.Sprintf("  %-36s %8.2f %10.2f %12.2f\n",
			truncateStr(item.Description, 36), item.Quantity, item.Rate, item.Amount)
	}
	s += "\n"
	s += fmt.Sprintf("  %54s %s\n", "Subtotal:", formatMoney(inv.Subtotal))
	s += fmt.Sprintf("  %54s %s\n", "Tax:", formatMoney(inv.Tax))
	s += fmt.Sprintf("  %54s %s\n", "Total:", formatMoney(inv.Total))

	if len(inv.Payments) > 0 {
		s += "\n" + titleStyle.Render("  Payments") + "\n"
		for _, p := range inv.Payments {
			s += fmt.Sprintf("    %s  %s  %s  %s\n", p.Date, formatMoney(p.Amount), p.Method, p.Reference)
		}
		s += fmt.Sprintf("    Outstanding: %s\n", formatMoney(domain.Round2(inv.Total-inv.PaidAmount())))
	}
	if inv.Notes != "" {
		s += "\n" + subtitleStyle.Render("  Notes: "+inv.Notes) + "\n"
	}

	if m.statusMsg != "" {
		s += "\n" + lipgloss.NewStyle().Foreground(successColor).Render("  "+m.statusMsg) + "\n"
	}
	if m.err != nil {
		s += "\n" + lipgloss.NewStyle().Foreground(errorColor).Render(fmt.Sprintf("  Error: %v", m.err)) + "\n"
	}

	s += "\n" + helpStyle.Render("  y: record payment  x: export PDF  esc: back")

	return s
}

func (m *InvoicesModel) viewList() string {
	var s string

	header := "Invoices"
	if status := invoiceStatusCycle[m.statusIdx]; status != query.StatusAll {
		header += subtitleStyle.Render(fmt.Sprintf("  (status: %s)", status))
	}
	s += titleStyle.Render(header) + "\n"
	s += subtitleStyle.Render(fmt.Sprintf("  sorted by %s (%s)", m.sort.Field, m.sort.Direction)) + "\n\n"

	s += "  " + m.search.View() + "\n\n"

	if m.loading {
		return s + "Loading invoices..."
	}
	if m.err != nil {
		return s + lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	if len(m.invoices) == 0 {
		s += subtitleStyle.Render("  No invoices found.") + "\n"
		return s
	}

	s += subtitleStyle.Render(fmt.Sprintf("  %-16s %-22s %-12s %-12s %-9s %12s",
		"ID", "Client", "Issued", "Due", "Status", "Total")) + "\n"
	s += subtitleStyle.Render("  "+strings.Repeat("─", 88)) + "\n"

	for i, inv := range m.invoices {
		indicator := "  "
		rowStyle := lipgloss.NewStyle()
		if i == m.cursor {
			indicator = "> "
			rowStyle = rowStyle.Bold(true).Foreground(primaryColor)
		}
		row := fmt.Sprintf("%s%-14s %-22s %-12s %-12s",
			indicator,
			truncateStr(inv.ID, 14),
			truncateStr(inv.ClientName, 22),
			inv.IssueDate.String(),
			inv.DueDate.String(),
		)
		s += rowStyle.Render(row) + " " +
			statusStyle(string(inv.Status)).Render(fmt.Sprintf("%-9s", inv.Status)) +
			fmt.Sprintf("%13s", formatMoney(inv.Total)) + "\n"
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  enter: detail  /: search  f: filter  s: sort  r: reverse")

	return s
}
