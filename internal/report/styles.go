package report

import "github.com/charmbracelet/lipgloss"

// Styles only decorate text; the numbers they wrap are already formatted.
type Styles struct {
	Header lipgloss.Style
	Rule   lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Winner lipgloss.Style
}

// Plain renders everything unchanged.
func Plain() Styles {
	s := lipgloss.NewStyle()
	return Styles{Header: s, Rule: s, Label: s, Value: s, Winner: s}
}

func Colored() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Rule:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Winner: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	}
}
