// Package modal renders centered dialogs over the screen.
package modal

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/hnreader/internal/presentation/tui/metrics"
)

// Kind identifies the dialog.
type Kind int

const (
	Goto Kind = iota
	Quit
	Help
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Body    string
	Width   int
	Height  int
}

// Render draws the dialog centered in Width x Height.
func Render(p Props) string {
	border := lipgloss.Color("63")
	if p.Kind == Quit {
		border = lipgloss.Color("205")
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		MaxWidth(metrics.ModalWidth + 6).
		Render(p.Body)

	if p.Width <= 0 || p.Height <= 0 {
		return box
	}
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, box)
}
