// Package style holds the lipgloss and pterm styles of terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles bound to one lipgloss renderer, so color detection follows the
// writer they print to
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Muted   lipgloss.Style
	Path    lipgloss.Style
	Key     lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// New creates the styles for a renderer
func New(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:   r.NewStyle().Foreground(HeadingColor).Bold(true).MarginBottom(1),
		Heading: r.NewStyle().Foreground(HeadingColor).Bold(true),
		Muted:   r.NewStyle().Foreground(MutedColor),
		Path:    r.NewStyle().Foreground(SecondaryColor).Italic(true),
		Key:     r.NewStyle().Foreground(PrimaryColor),
		Success: r.NewStyle().Foreground(SuccessColor).Bold(true),
		Error:   r.NewStyle().Foreground(ErrorColor).Bold(true),
		Warning: r.NewStyle().Foreground(WarningColor).Bold(true),
	}
}

// Indent pads s by two spaces per level
func (s Styles) Indent(text string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(text)
}
