package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/andy/freelink/internal/app"
	"github.com/andy/freelink/internal/domain"
	"github.com/andy/freelink/internal/query"
	"github.com/andy/freelink/internal/store"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// clientMode represents the current screen mode
type clientMode int

const (
	clientModeList clientMode = iota
	clientModeNew
	clientModeEdit
)

// form field indices
const (
	clientFieldName = iota
	clientFieldCompany
	clientFieldEmail
	clientFieldPhone
	clientFieldTags
	clientFieldNotes
	clientFieldCount
)

var clientStatusCycle = []string{query.StatusAll,
	string(domain.ClientStatusActive), string(domain.ClientStatusInactive), string(domain.ClientStatusLead)}

var clientSortCycle = []string{query.FieldName, query.FieldCompany, query.FieldStatus,
	query.FieldCreatedAt, query.FieldLastInteraction}

// ClientsModel displays a filterable, sortable client list with create/edit forms
type ClientsModel struct {
	app     *app.App
	clients []*domain.Client
	cursor  int

	search      textinput.Model
	statusIdx   int
	sort        query.Sort
	sortFieldIx int

	loading   bool
	err       error
	statusMsg string

	// Form state
	mode       clientMode
	fields     []textinput.Model
	fieldFocus int
	editingID  string // empty for new client
}

type clientsDataMsg struct {
	clients []*domain.Client
	err     error
}

type clientSavedMsg struct {
	name string
	err  error
}

// NewClientsModel creates a new clients screen model
func NewClientsModel(a *app.App) tea.Model {
	search := textinput.New()
	search.Placeholder = "Search clients..."
	search.CharLimit = 60
	search.Width = 40

	return &ClientsModel{
		app:     a,
		search:  search,
		sort:    query.Sort{Field: query.FieldName, Direction: query.Asc},
		loading: true,
	}
}

// IsCapturingInput returns true when a form or the search box is active
func (m *ClientsModel) IsCapturingInput() bool {
	return m.mode != clientModeList || m.search.Focused()
}

func (m *ClientsModel) Init() tea.Cmd {
	return m.loadClients()
}

func (m *ClientsModel) filter() query.Filter {
	return query.Filter{
		Search: m.search.Value(),
		Status: clientStatusCycle[m.statusIdx],
	}
}

func (m *ClientsModel) loadClients() tea.Cmd {
	filter := m.filter()
	sort := m.sort
	return func() tea.Msg {
		clients, err := m.app.ClientStore.List(context.Background())
		if err != nil {
			return clientsDataMsg{err: err}
		}
		clients = query.FilterClients(clients, filter)
		clients = query.SortClients(clients, sort)
		return clientsDataMsg{clients: clients}
	}
}

func (m *ClientsModel) initForm(editing *domain.Client) {
	m.fields = make([]textinput.Model, clientFieldCount)

	m.fields[clientFieldName] = textinput.New()
	m.fields[clientFieldName].Placeholder = "Client name"
	m.fields[clientFieldName].CharLimit = 100
	m.fields[clientFieldName].Width = 40

	m.fields[clientFieldCompany] = textinput.New()
	m.fields[clientFieldCompany].Placeholder = "Company"
	m.fields[clientFieldCompany].CharLimit = 100
	m.fields[clientFieldCompany].Width = 40

	m.fields[clientFieldEmail] = textinput.New()
	m.fields[clientFieldEmail].Placeholder = "email@example.com"
	m.fields[clientFieldEmail].CharLimit = 100
	m.fields[clientFieldEmail].Width = 40

	m.fields[clientFieldPhone] = textinput.New()
	m.fields[clientFieldPhone].Placeholder = "(555) 123-4567"
	m.fields[clientFieldPhone].CharLimit = 30
	m.fields[clientFieldPhone].Width = 25

	m.fields[clientFieldTags] = textinput.New()
	m.fields[clientFieldTags].Placeholder = "design, web (comma separated)"
	m.fields[clientFieldTags].CharLimit = 120
	m.fields[clientFieldTags].Width = 40

	m.fields[clientFieldNotes] = textinput.New()
	m.fields[clientFieldNotes].Placeholder = "Optional notes"
	m.fields[clientFieldNotes].CharLimit = 200
	m.fields[clientFieldNotes].Width = 50

	if editing != nil {
		m.fields[clientFieldName].SetValue(editing.Name)
		m.fields[clientFieldCompany].SetValue(editing.Company)
		m.fields[clientFieldEmail].SetValue(editing.Email)
		m.fields[clientFieldPhone].SetValue(editing.Phone)
		m.fields[clientFieldTags].SetValue(strings.Join(editing.Tags, ", "))
		m.fields[clientFieldNotes].SetValue(editing.Notes)
		m.editingID = editing.ID
	} else {
		m.editingID = ""
	}

	m.fieldFocus = clientFieldName
	m.fields[clientFieldName].Focus()
}

func parseTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func (m *ClientsModel) saveClient() tea.Cmd {
	name := m.fields[clientFieldName].Value()
	company := m.fields[clientFieldCompany].Value()
	email := m.fields[clientFieldEmail].Value()
	phone := m.fields[clientFieldPhone].Value()
	tags := parseTags(m.fields[clientFieldTags].Value())
	notes := m.fields[clientFieldNotes].Value()
	editingID := m.editingID

	return func() tea.Msg {
		ctx := context.Background()

		if editingID != "" {
			patch := store.ClientPatch{
				Name:    &name,
				Company: &company,
				Email:   &email,
				Phone:   &phone,
				Tags:    &tags,
				Notes:   &notes,
			}
			if _, err := m.app.ClientStore.Update(ctx, editingID, patch); err != nil {
				return clientSavedMsg{err: err}
			}
			return clientSavedMsg{name: name}
		}

		client := domain.NewClient(name, email)
		client.Company = company
		client.Phone = phone
		client.Tags = tags
		client.Notes = notes

		if _, err := m.app.ClientStore.Create(ctx, client); err != nil {
			return clientSavedMsg{err: err}
		}
		return clientSavedMsg{name: name}
	}
}

func (m *ClientsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode != clientModeList {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadClients()

	case clientsDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.clients = msg.clients
			if m.cursor >= len(m.clients) {
				m.cursor = max(0, len(m.clients)-1)
			}
		}
		return m, nil

	case clientSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Saved: %s", msg.name)
		m.loading = true
		return m, m.loadClients()

	case tea.KeyMsg:
		// Search box captures keys while focused
		if m.search.Focused() {
			switch msg.String() {
			case "esc":
				m.search.Blur()
				m.search.SetValue("")
				m.loading = true
				return m, m.loadClients()
			case "enter":
				m.search.Blur()
				m.loading = true
				return m, m.loadClients()
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

		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(m.clients)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.Search):
			return m, m.search.Focus()
		case key.Matches(msg, DefaultKeyMap.Filter):
			m.statusIdx = (m.statusIdx + 1) % len(clientStatusCycle)
			m.cursor = 0
			m.loading = true
			return m, m.loadClients()
		case key.Matches(msg, DefaultKeyMap.Sort):
			m.sortFieldIx = (m.sortFieldIx + 1) % len(clientSortCycle)
			m.sort = query.Sort{Field: clientSortCycle[m.sortFieldIx], Direction: query.Asc}
			m.loading = true
			return m, m.loadClients()
		case key.Matches(msg, DefaultKeyMap.Reverse):
			m.sort = m.sort.Toggle(m.sort.Field)
			m.loading = true
			return m, m.loadClients()
		case key.Matches(msg, DefaultKeyMap.New):
			m.mode = clientModeNew
			m.initForm(nil)
			return m, m.fields[clientFieldName].Focus()
		case key.Matches(msg, DefaultKeyMap.Select):
			if len(m.clients) > 0 && m.cursor < len(m.clients) {
				m.mode = clientModeEdit
				m.initForm(m.clients[m.cursor])
				return m, m.fields[clientFieldName].Focus()
			}
		}
	}

	return m, nil
}

func (m *ClientsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clientSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.mode = clientModeList
		m.statusMsg = fmt.Sprintf("Saved: %s", msg.name)
		m.loading = true
		return m, m.loadClients()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.mode = clientModeList
			m.err = nil
			return m, nil

		case "tab", "down":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % clientFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "shift+tab", "up":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus - 1 + clientFieldCount) % clientFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "enter":
			if m.fieldFocus == clientFieldCount-1 {
				return m, m.saveClient()
			}
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()

		case "ctrl+s":
			return m, m.saveClient()
		}
	}

	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *ClientsModel) View() string {
	if m.mode != clientModeList {
		return m.viewForm()
	}
	return m.viewList()
}

func (m *ClientsModel) viewForm() string {
	var s string

	if m.mode == clientModeNew {
		s += titleStyle.Render("New Client") + "\n\n"
	} else {
		s += titleStyle.Render("Edit Client") + "\n\n"
	}

	labels := []string{"Name:", "Company:", "Email:", "Phone:", "Tags:", "Notes:"}
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

func (m *ClientsModel) viewList() string {
	var s string

	header := "Clients"
	if status := clientStatusCycle[m.statusIdx]; status != query.StatusAll {
		header += subtitleStyle.Render(fmt.Sprintf("  (status: %s)", status))
	}
	s += titleStyle.Render(header) + "\n"
	s += subtitleStyle.Render(fmt.Sprintf("  sorted by %s (%s)", m.sort.Field, m.sort.Direction)) + "\n\n"

	s += "  " + m.search.View() + "\n\n"

	if m.loading {
		return s + "Loading clients..."
	}
	if m.err != nil {
		return s + lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	if len(m.clients) == 0 {
		s += subtitleStyle.Render("  No clients found. Press 'n' to add one.") + "\n"
		return s
	}

	for i, client := range m.clients {
		s += m.renderClient(i, client) + "\n"
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  n: new  enter: edit  /: search  f: filter  s: sort  r: reverse")

	return s
}

func (m *ClientsModel) renderClient(index int, client *domain.Client) string {
	selected := index == m.cursor

	indicator := "  "
	if selected {
		indicator = "> "
	}

	name := client.Name
	if client.Company != "" {
		name += subtitleStyle.Render(" · " + client.Company)
	}

	line1 := fmt.Sprintf("%s%s  %s", indicator, name,
		statusStyle(string(client.Status)).Render(string(client.Status)))

	contact := client.Email
	if client.Phone != "" {
		contact += "  " + client.Phone
	}
	line2 := fmt.Sprintf("    %s", contact)
	if len(client.Tags) > 0 {
		line2 += subtitleStyle.Render("  [" + strings.Join(client.Tags, ", ") + "]")
	}

	nameStyle := lipgloss.NewStyle()
	if selected {
		nameStyle = nameStyle.Bold(true).Foreground(primaryColor)
	}

	return nameStyle.Render(line1) + "\n" + subtitleStyle.Render(line2)
}
