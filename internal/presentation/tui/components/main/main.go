// Package mainview provides the main content area component.
package mainview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/hnreader/internal/presentation/tui/metrics"
)

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	Header string
	Body   string
}

// Render renders the header above the body.
func Render(p Props) string {
	mainStyle := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		PaddingLeft(metrics.MainPaddingLeft)

	content := p.Body
	if p.Header != "" {
		content = p.Header + "\n\n" + p.Body
	}
	return mainStyle.Render(content)
}
