package tui

import "github.com/charmbracelet/lipgloss"

// palette holds the colors for one theme. Two palettes exist so the
// dark-mode toggle can restyle the whole UI at once.
type palette struct {
	primary lipgloss.Color
	accent  lipgloss.Color
	muted   lipgloss.Color
	success lipgloss.Color
	warning lipgloss.Color
	danger  lipgloss.Color
	border  lipgloss.Color
	help    lipgloss.Color
	footer  lipgloss.Color
}

var lightPalette = palette{
	primary: lipgloss.Color("25"),  // Deep blue
	accent:  lipgloss.Color("162"), // Magenta
	muted:   lipgloss.Color("244"), // Gray
	success: lipgloss.Color("28"),  // Green
	warning: lipgloss.Color("130"), // Orange
	danger:  lipgloss.Color("124"), // Red
	border:  lipgloss.Color("61"),  // Purple
	help:    lipgloss.Color("31"),  // Teal
	footer:  lipgloss.Color("94"),  // Brown-gold
}

var darkPalette = palette{
	primary: lipgloss.Color("39"),  // Blue
	accent:  lipgloss.Color("205"), // Pink
	muted:   lipgloss.Color("241"), // Gray
	success: lipgloss.Color("76"),  // Green
	warning: lipgloss.Color("214"), // Orange
	danger:  lipgloss.Color("196"), // Red
	border:  lipgloss.Color("63"),  // Soft purple
	help:    lipgloss.Color("117"), // Bright cyan
	footer:  lipgloss.Color("226"), // Bright yellow
}

var (
	// Colors (set by applyTheme)
	primaryColor lipgloss.Color
	accentColor  lipgloss.Color
	mutedColor   lipgloss.Color
	successColor lipgloss.Color
	warningColor lipgloss.Color
	errorColor   lipgloss.Color
	borderColor  lipgloss.Color

	// Base styles
	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
	helpStyle     lipgloss.Style
	selectedStyle lipgloss.Style

	// Box styles
	boxStyle lipgloss.Style

	// Layout
	appBorderStyle lipgloss.Style

	// Header/Footer
	headerStyle lipgloss.Style
	footerStyle lipgloss.Style
)

// applyTheme rebuilds the package styles from the chosen palette.
func applyTheme(dark bool) {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	primaryColor = p.primary
	accentColor = p.accent
	mutedColor = p.muted
	successColor = p.success
	warningColor = p.warning
	errorColor = p.danger
	borderColor = p.border

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	subtitleStyle = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle = lipgloss.NewStyle().Foreground(p.help)
	selectedStyle = lipgloss.NewStyle().Bold(true).Background(primaryColor).Foreground(lipgloss.Color("0"))

	boxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor).Padding(1)

	appBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(p.footer).Bold(true)
}

func init() {
	applyTheme(true)
}
