package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/andy/freelink/internal/app"
	"github.com/andy/freelink/internal/auth"
	"github.com/andy/freelink/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// portalMode represents the current screen mode
type portalMode int

const (
	portalModeChecking portalMode = iota
	portalModeLogin
	portalModeOverview
)

// login form field indices
const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldCount
)

// PortalModel renders the client-facing portal: a login form and a
// read-only overview of the signed-in client's projects and invoices.
type PortalModel struct {
	app *app.App

	mode     portalMode
	session  *auth.Session
	overview *service.PortalOverview

	fields     []textinput.Model
	fieldFocus int

	loading   bool
	err       error
	statusMsg string
}

type portalSessionMsg struct {
	session *auth.Session
	err     error
}

type portalDataMsg struct {
	overview *service.PortalOverview
	err      error
}

type portalLoggedOutMsg struct {
	err error
}

// NewPortalModel creates a new portal screen model
func NewPortalModel(a *app.App) tea.Model {
	m := &PortalModel{
		app:  a,
		mode: portalModeChecking,
	}
	m.initForm()
	return m
}

// IsCapturingInput returns true while the login form is active
func (m *PortalModel) IsCapturingInput() bool {
	return m.mode == portalModeLogin
}

func (m *PortalModel) Init() tea.Cmd {
	return m.checkSession()
}

func (m *PortalModel) initForm() {
	m.fields = make([]textinput.Model, loginFieldCount)

	m.fields[loginFieldEmail] = textinput.New()
	m.fields[loginFieldEmail].Placeholder = "client@example.com"
	m.fields[loginFieldEmail].CharLimit = 100
	m.fields[loginFieldEmail].Width = 40

	m.fields[loginFieldPassword] = textinput.New()
	m.fields[loginFieldPassword].Placeholder = "password"
	m.fields[loginFieldPassword].CharLimit = 100
	m.fields[loginFieldPassword].Width = 40
	m.fields[loginFieldPassword].EchoMode = textinput.EchoPassword

	m.fieldFocus = loginFieldEmail
	m.fields[loginFieldEmail].Focus()
}

func (m *PortalModel) checkSession() tea.Cmd {
	return func() tea.Msg {
		session, err := m.app.AuthService.Current(context.Background())
		return portalSessionMsg{session: session, err: err}
	}
}

func (m *PortalModel) login() tea.Cmd {
	email := m.fields[loginFieldEmail].Value()
	password := m.fields[loginFieldPassword].Value()

	return func() tea.Msg {
		session, err := m.app.AuthService.Login(context.Background(), email, password)
		return portalSessionMsg{session: session, err: err}
	}
}

func (m *PortalModel) logout() tea.Cmd {
	return func() tea.Msg {
		return portalLoggedOutMsg{err: m.app.AuthService.Logout(context.Background())}
	}
}

func (m *PortalModel) loadOverview() tea.Cmd {
	clientID := m.session.ClientID
	return func() tea.Msg {
		overview, err := m.app.PortalService.Overview(context.Background(), clientID)
		return portalDataMsg{overview: overview, err: err}
	}
}

func (m *PortalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		if m.mode == portalModeOverview {
			m.loading = true
			return m, m.loadOverview()
		}
		return m, nil

	case portalSessionMsg:
		if msg.err != nil {
			m.mode = portalModeLogin
			if !errors.Is(msg.err, auth.ErrNotAuthenticated) {
				m.err = msg.err
			}
			return m, nil
		}
		m.session = msg.session
		m.mode = portalModeOverview
		m.err = nil
		m.loading = true
		return m, m.loadOverview()

	case portalDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.overview = msg.overview
		}
		return m, nil

	case portalLoggedOutMsg:
		m.session = nil
		m.overview = nil
		m.mode = portalModeLogin
		m.err = msg.err
		m.statusMsg = "Logged out"
		m.initForm()
		return m, m.fields[loginFieldEmail].Focus()

	case tea.KeyMsg:
		if m.mode == portalModeLogin {
			return m.updateForm(msg)
		}
		if m.mode == portalModeOverview && msg.String() == "x" {
			return m, m.logout()
		}
	}

	return m, nil
}

func (m *PortalModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.fields[m.fieldFocus].Blur()
		m.fieldFocus = (m.fieldFocus + 1) % loginFieldCount
		return m, m.fields[m.fieldFocus].Focus()

	case "shift+tab", "up":
		m.fields[m.fieldFocus].Blur()
		m.fieldFocus = (m.fieldFocus - 1 + loginFieldCount) % loginFieldCount
		return m, m.fields[m.fieldFocus].Focus()

	case "enter":
		if m.fieldFocus == loginFieldCount-1 {
			m.statusMsg = ""
			return m, m.login()
		}
		m.fields[m.fieldFocus].Blur()
		m.fieldFocus++
		return m, m.fields[m.fieldFocus].Focus()
	}

	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *PortalModel) View() string {
	switch m.mode {
	case portalModeChecking:
		return "Checking session..."
	case portalModeLogin:
		return m.viewLogin()
	}
	return m.viewOverview()
}

func (m *PortalModel) viewLogin() string {
	s := titleStyle.Render("Client Portal Login") + "\n"
	s += subtitleStyle.Render("  Demo accounts use password \"password\".") + "\n\n"

	labels := []string{"Email:", "Password:"}
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

	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).Render("  "+m.statusMsg) + "\n\n"
	}
	if m.err != nil {
		s += lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	s += helpStyle.Render("  tab: next field  enter: log in")

	return s
}

func (m *PortalModel) viewOverview() string {
	if m.loading || m.overview == nil {
		return "Loading portal..."
	}
	if m.err != nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	ov := m.overview

	s := titleStyle.Render(fmt.Sprintf("Welcome, %s", ov.Client.Name)) + "\n"
	if ov.Client.Company != "" {
		s += subtitleStyle.Render("  "+ov.Client.Company) + "\n"
	}
	s += "\n"

	summary := fmt.Sprintf("  Outstanding: %s", formatMoney(ov.Outstanding))
	if ov.OverdueCount > 0 {
		summary += lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("   %d overdue invoice(s)", ov.OverdueCount))
	}
	s += summary + "\n\n"

	s += titleStyle.Render("  Projects") + "\n"
	if len(ov.Projects) == 0 {
		s += subtitleStyle.Render("    No projects yet.") + "\n"
	}
	for _, p := range ov.Projects {
		s += fmt.Sprintf("    %-28s %s  %s %3d%%\n",
			truncateStr(p.Name, 28),
			statusStyle(string(p.Status)).Render(fmt.Sprintf("%-9s", p.Status)),
			progressBar(p.Progress, 16), p.Progress)
	}

	s += "\n" + titleStyle.Render("  Invoices") + "\n"
	if len(ov.Invoices) == 0 {
		s += subtitleStyle.Render("    No invoices yet.") + "\n"
	}
	for _, inv := range ov.Invoices {
		s += fmt.Sprintf("    %-16s %-12s %s %12s\n",
			truncateStr(inv.ID, 16),
			inv.IssueDate.String(),
			statusStyle(string(inv.Status)).Render(fmt.Sprintf("%-9s", inv.Status)),
			formatMoney(inv.Total))
	}

	s += "\n" + helpStyle.Render("  x: log out")

	return s
}
