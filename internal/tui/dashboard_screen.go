package tui

import (
	"context"
	"fmt"

	"github.com/andy/freelink/internal/app"
	"github.com/andy/freelink/internal/domain"
	"github.com/andy/freelink/internal/query"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DashboardModel represents the dashboard home screen
type DashboardModel struct {
	app *app.App

	// Data
	totalClients    int
	activeClients   int
	activeProjects  int
	openInvoices    int
	overdueInvoices int
	outstanding     float64
	paidThisYear    float64
	recentInvoices  []*domain.Invoice

	loading bool
	err     error
}

type dashboardDataMsg struct {
	totalClients    int
	activeClients   int
	activeProjects  int
	openInvoices    int
	overdueInvoices int
	outstanding     float64
	paidThisYear    float64
	recentInvoices  []*domain.Invoice
	err             error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(a *app.App) tea.Model {
	return &DashboardModel{
		app:     a,
		loading: true,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *DashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var msg dashboardDataMsg

		clients, err := m.app.ClientStore.List(ctx)
		if err != nil {
			msg.err = fmt.Errorf("clients: %w", err)
			return msg
		}
		msg.totalClients = len(clients)
		for _, c := range clients {
			if c.Status == domain.ClientStatusActive {
				msg.activeClients++
			}
		}

		projects, err := m.app.ProjectStore.List(ctx)
		if err != nil {
			msg.err = fmt.Errorf("projects: %w", err)
			return msg
		}
		for _, p := range projects {
			if p.Status == domain.ProjectStatusActive {
				msg.activeProjects++
			}
		}

		invoices, err := m.app.InvoiceService.ListInvoices(ctx, query.Filter{},
			query.Sort{Field: query.FieldIssueDate, Direction: query.Desc})
		if err != nil {
			msg.err = fmt.Errorf("invoices: %w", err)
			return msg
		}

		year := domain.Today().Year()
		for _, inv := range invoices {
			if inv.IsOpen() {
				msg.openInvoices++
				msg.outstanding += inv.Total - inv.PaidAmount()
			}
			if inv.Status == domain.InvoiceStatusOverdue {
				msg.overdueInvoices++
			}
			if inv.Status == domain.InvoiceStatusPaid && inv.IssueDate.Year() == year {
				msg.paidThisYear += inv.Total
			}
		}
		msg.outstanding = domain.Round2(msg.outstanding)
		msg.paidThisYear = domain.Round2(msg.paidThisYear)

		if len(invoices) > 5 {
			invoices = invoices[:5]
		}
		msg.recentInvoices = invoices

		return msg
	}
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadData()

	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.totalClients = msg.totalClients
			m.activeClients = msg.activeClients
			m.activeProjects = msg.activeProjects
			m.openInvoices = msg.openInvoices
			m.overdueInvoices = msg.overdueInvoices
			m.outstanding = msg.outstanding
			m.paidThisYear = msg.paidThisYear
			m.recentInvoices = msg.recentInvoices
		}
		return m, nil
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	if m.loading {
		return "Loading dashboard..."
	}
	if m.err != nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	clientsBox := boxStyle.Render(fmt.Sprintf("%s\n%d total / %d active",
		titleStyle.Render("Clients"), m.totalClients, m.activeClients))
	projectsBox := boxStyle.Render(fmt.Sprintf("%s\n%d active",
		titleStyle.Render("Projects"), m.activeProjects))
	invoicesBox := boxStyle.Render(fmt.Sprintf("%s\n%d open / %d overdue",
		titleStyle.Render("Invoices"), m.openInvoices, m.overdueInvoices))
	moneyBox := boxStyle.Render(fmt.Sprintf("%s\n%s outstanding\n%s paid this year",
		titleStyle.Render("Revenue"), formatMoney(m.outstanding), formatMoney(m.paidThisYear)))

	stats := lipgloss.JoinHorizontal(lipgloss.Top, clientsBox, " ", projectsBox, " ", invoicesBox, " ", moneyBox)

	s := stats + "\n\n" + titleStyle.Render("Recent Invoices") + "\n\n"
	if len(m.recentInvoices) == 0 {
		s += subtitleStyle.Render("  No invoices yet.") + "\n"
	}
	for _, inv := range m.recentInvoices {
		s += fmt.Sprintf("  %-16s %-24s %-12s %s %12s\n",
			truncateStr(inv.ID, 16),
			truncateStr(inv.ClientName, 24),
			inv.IssueDate.String(),
			statusStyle(string(inv.Status)).Render(fmt.Sprintf("%-9s", inv.Status)),
			formatMoney(inv.Total),
		)
	}

	return s
}
