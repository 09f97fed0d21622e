package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Back key.Binding

	// Navigation
	Dashboard key.Binding
	Clients   key.Binding
	Projects  key.Binding
	Invoices  key.Binding
	Portal    key.Binding
	DarkMode  key.Binding

	// Actions
	Select  key.Binding
	New     key.Binding
	Search  key.Binding
	Filter  key.Binding
	Sort    key.Binding
	Reverse key.Binding

	// Movement
	Up   key.Binding
	Down key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	Dashboard: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dashboard")),
	Clients:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clients")),
	Projects:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "projects")),
	Invoices:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "invoices")),
	Portal:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "portal")),
	DarkMode:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "dark mode")),
	Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter status")),
	Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort field")),
	Reverse:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reverse sort")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
}
