package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used for text output.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	StatusSuccess lipgloss.Style
	StatusFailed  lipgloss.Style
	StatusSkipped lipgloss.Style
}

// NewStyles builds styles bound to a lipgloss renderer, so color support is
// detected for the writer actually used.
func NewStyles(re *lipgloss.Renderer) *Styles {
	green := lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#4ade80"}
	red := lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"}
	yellow := lipgloss.AdaptiveColor{Light: "#a16207", Dark: "#facc15"}
	gray := lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}

	return &Styles{
		Header1: re.NewStyle().Bold(true).Underline(true),
		Header2: re.NewStyle().Bold(true),
		Bold:    re.NewStyle().Bold(true),
		Muted:   re.NewStyle().Foreground(gray),
		Success: re.NewStyle().Foreground(green),
		Warning: re.NewStyle().Foreground(yellow),
		Error:   re.NewStyle().Foreground(red),

		StatusSuccess: re.NewStyle().Foreground(green).SetString("✓"),
		StatusFailed:  re.NewStyle().Foreground(red).SetString("✗"),
		StatusSkipped: re.NewStyle().Foreground(gray).SetString("-"),
	}
}
