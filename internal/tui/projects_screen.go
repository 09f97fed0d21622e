package tui

import (
	"context"
	"fmt"

	"github.com/andy/freelink/internal/app"
	"github.com/andy/freelink/internal/domain"
	"github.com/andy/freelink/internal/query"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var projectStatusCycle = []string{query.StatusAll,
	string(domain.ProjectStatusActive), string(domain.ProjectStatusCompleted), string(domain.ProjectStatusOnHold)}

var projectSortCycle = []string{query.FieldName, query.FieldStartDate, query.FieldEndDate, query.FieldProgress}

// ProjectsModel displays a filterable, sortable project list with an
// expandable milestone view for the selected project.
type ProjectsModel struct {
	app      *app.App
	projects []*domain.Project
	cursor   int
	expanded bool

	search      textinput.Model
	statusIdx   int
	sort        query.Sort
	sortFieldIx int

	loading bool
	err     error
}

type projectsDataMsg struct {
	projects []*domain.Project
	err      error
}

// NewProjectsModel creates a new projects screen model
func NewProjectsModel(a *app.App) tea.Model {
	search := textinput.New()
	search.Placeholder = "Search projects..."
	search.CharLimit = 60
	search.Width = 40

	return &ProjectsModel{
		app:     a,
		search:  search,
		sort:    query.Sort{Field: query.FieldName, Direction: query.Asc},
		loading: true,
	}
}

// IsCapturingInput returns true while the search box is focused
func (m *ProjectsModel) IsCapturingInput() bool {
	return m.search.Focused()
}

func (m *ProjectsModel) Init() tea.Cmd {
	return m.loadProjects()
}

func (m *ProjectsModel) loadProjects() tea.Cmd {
	filter := query.Filter{
		Search: m.search.Value(),
		Status: projectStatusCycle[m.statusIdx],
	}
	sort := m.sort
	return func() tea.Msg {
		projects, err := m.app.ProjectStore.List(context.Background())
		if err != nil {
			return projectsDataMsg{err: err}
		}
		projects = query.FilterProjects(projects, filter)
		projects = query.SortProjects(projects, sort)
		return projectsDataMsg{projects: projects}
	}
}

func (m *ProjectsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadProjects()

	case projectsDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.projects = msg.projects
			if m.cursor >= len(m.projects) {
				m.cursor = max(0, len(m.projects)-1)
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			switch msg.String() {
			case "esc":
				m.search.Blur()
				m.search.SetValue("")
				m.loading = true
				return m, m.loadProjects()
			case "enter":
				m.search.Blur()
				m.loading = true
				return m, m.loadProjects()
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}

		if m.loading {
			return m, nil
		}

		m.err = nil

		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
				m.expanded = false
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(m.projects)-1 {
				m.cursor++
				m.expanded = false
			}
		case key.Matches(msg, DefaultKeyMap.Select):
			m.expanded = !m.expanded
		case key.Matches(msg, DefaultKeyMap.Search):
			return m, m.search.Focus()
		case key.Matches(msg, DefaultKeyMap.Filter):
			m.statusIdx = (m.statusIdx + 1) % len(projectStatusCycle)
			m.cursor = 0
			m.expanded = false
			m.loading = true
			return m, m.loadProjects()
		case key.Matches(msg, DefaultKeyMap.Sort):
			m.sortFieldIx = (m.sortFieldIx + 1) % len(projectSortCycle)
			m.sort = query.Sort{Field: projectSortCycle[m.sortFieldIx], Direction: query.Asc}
			m.loading = true
			return m, m.loadProjects()
		case key.Matches(msg, DefaultKeyMap.Reverse):
			m.sort = m.sort.Toggle(m.sort.Field)
			m.loading = true
			return m, m.loadProjects()
		}
	}

	return m, nil
}

func (m *ProjectsModel) View() string {
	var s string

	header := "Projects"
	if status := projectStatusCycle[m.statusIdx]; status != query.StatusAll {
		header += subtitleStyle.Render(fmt.Sprintf("  (status: %s)", status))
	}
	s += titleStyle.Render(header) + "\n"
	s += subtitleStyle.Render(fmt.Sprintf("  sorted by %s (%s)", m.sort.Field, m.sort.Direction)) + "\n\n"

	s += "  " + m.search.View() + "\n\n"

	if m.loading {
		return s + "Loading projects..."
	}
	if m.err != nil {
		return s + lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	if len(m.projects) == 0 {
		s += subtitleStyle.Render("  No projects found.") + "\n"
		return s
	}

	for i, project := range m.projects {
		s += m.renderProject(i, project) + "\n"
		if i == m.cursor && m.expanded {
			s += m.renderMilestones(project)
		}
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  enter: milestones  /: search  f: filter  s: sort  r: reverse")

	return s
}

func (m *ProjectsModel) renderProject(index int, project *domain.Project) string {
	selected := index == m.cursor

	indicator := "  "
	if selected {
		indicator = "> "
	}

	line1 := fmt.Sprintf("%s%s  %s", indicator, project.Name,
		statusStyle(string(project.Status)).Render(string(project.Status)))

	dates := project.StartDate.String()
	if !project.EndDate.IsZero() {
		dates += " → " + project.EndDate.String()
	}
	line2 := fmt.Sprintf("    %s %3d%%  %s  milestones: %d/%d",
		progressBar(project.Progress, 20), project.Progress, dates,
		project.CompletedMilestones(), len(project.Milestones))

	nameStyle := lipgloss.NewStyle()
	if selected {
		nameStyle = nameStyle.Bold(true).Foreground(primaryColor)
	}

	return nameStyle.Render(line1) + "\n" + subtitleStyle.Render(line2)
}

func (m *ProjectsModel) renderMilestones(project *domain.Project) string {
	if len(project.Milestones) == 0 {
		return subtitleStyle.Render("      no milestones") + "\n"
	}

	var s string
	for _, ms := range project.Milestones {
		mark := "[ ]"
		style := subtitleStyle
		if ms.Completed {
			mark = "[x]"
			style = lipgloss.NewStyle().Foreground(successColor)
		}
		line := fmt.Sprintf("      %s %s", mark, ms.Name)
		if !ms.Date.IsZero() {
			line += subtitleStyle.Render("  " + ms.Date.String())
		}
		s += style.Render(line) + "\n"
	}
	return s
}
