package tui

import "github.com/charmbracelet/lipgloss"

// Theme groups the styles used by the report browser.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style

	Warn lipgloss.Style
	Code lipgloss.Style

	ok   lipgloss.Style
	fail lipgloss.Style
	skip lipgloss.Style
}

func DefaultTheme() Theme {
	accent := lipgloss.AdaptiveColor{Light: "#5A4FCF", Dark: "#9D8CFF"}
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true).MarginTop(1),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent),
		Warn: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Code: lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		ok:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		fail: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		skip: lipgloss.NewStyle().Faint(true),
	}
}

// Badge colors an emitted/failed/not emitted label.
func (t Theme) Badge(label string) string {
	switch label {
	case "emitted":
		return t.ok.Render(label)
	case "failed":
		return t.fail.Render(label)
	default:
		return t.skip.Render(label)
	}
}
