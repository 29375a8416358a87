// Package layout stacks the main area above the footer.
package layout

import "github.com/charmbracelet/lipgloss"

// Props defines the rendered regions.
type Props struct {
	Main   string
	Footer string
}

// Render joins the regions vertically.
func Render(p Props) string {
	if p.Footer == "" {
		return p.Main
	}
	return lipgloss.JoinVertical(lipgloss.Left, p.Main, p.Footer)
}
