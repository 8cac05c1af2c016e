package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the dashboard, tinted with the
// user's theme color.
type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Income    lipgloss.Style
	Expense   lipgloss.Style
	Balance   lipgloss.Style
	Chart     lipgloss.Style
	Bar       lipgloss.Style
	Dim       lipgloss.Style
	Error     lipgloss.Style
	StatName  lipgloss.Style
	StatValue lipgloss.Style
}

// NewStyles builds the style set for a theme color.
func NewStyles(themeColor string) Styles {
	accent := lipgloss.Color(themeColor)
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1),
		Header:    lipgloss.NewStyle().Bold(true),
		Income:    lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
		Expense:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5722")),
		Balance:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Chart:     lipgloss.NewStyle().Foreground(accent),
		Bar:       lipgloss.NewStyle().Foreground(accent),
		Dim:       lipgloss.NewStyle().Faint(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#E91E63")).Bold(true),
		StatName:  lipgloss.NewStyle().Width(22),
		StatValue: lipgloss.NewStyle().Bold(true),
	}
}
