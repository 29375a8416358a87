// Package header provides the top bar component.
package header

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/hnreader/internal/presentation/tui/textutil"
)

// Props defines the properties for the header component.
type Props struct {
	Location string
	Loading  bool
	Spinner  string
	Width    int
}

// Render renders the current location, with the spinner while a view loads.
func Render(p Props) string {
	location := p.Location
	if location == "" {
		location = "#/"
	}
	text := "hnreader  " + location
	if p.Loading {
		text += "  " + p.Spinner + " loading..."
	}
	if p.Width > 0 {
		text = textutil.Truncate(text, p.Width)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(text)
}
