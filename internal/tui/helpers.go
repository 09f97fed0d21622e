package tui

import (
	"fmt"

	"github.com/andy/freelink/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// formatMoney formats money as "$X,XXX.XX" with comma separators
func formatMoney(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)

	// Split at decimal point
	dotPos := len(s) - 3
	intPart := s[:dotPos]
	decPart := s[dotPos:]

	// Add commas to integer part
	result := make([]byte, 0, len(intPart)+len(intPart)/3)
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}

	prefix := "$"
	if negative {
		prefix = "-$"
	}
	return prefix + string(result) + decPart
}

// truncateStr truncates a string to the specified length with ellipsis
func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// statusStyle picks a color for a status badge across the three
// collection types (client, project, invoice statuses overlap).
func statusStyle(status string) lipgloss.Style {
	switch status {
	case string(domain.ClientStatusActive), string(domain.InvoiceStatusPaid):
		return lipgloss.NewStyle().Foreground(successColor)
	case string(domain.InvoiceStatusPending), string(domain.ProjectStatusOnHold), string(domain.ClientStatusLead):
		return lipgloss.NewStyle().Foreground(warningColor)
	case string(domain.InvoiceStatusOverdue):
		return lipgloss.NewStyle().Foreground(errorColor)
	case string(domain.ProjectStatusCompleted):
		return lipgloss.NewStyle().Foreground(accentColor)
	default:
		return lipgloss.NewStyle().Foreground(mutedColor)
	}
}

// progressBar renders a fixed-width bar for a 0-100 percentage.
func progressBar(percent int, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}
