package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/tesso57/hnreader/internal/application/settings"
	"github.com/tesso57/hnreader/internal/presentation/markup"
)

// Styles are the colours the screens paint with.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Read     lipgloss.Style
	Meta     lipgloss.Style
	Link     lipgloss.Style
	Disabled lipgloss.Style
}

// NewStyles builds Styles from the theme configuration.
func NewStyles(theme settings.ThemeConfig) Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent)),
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Title)),
		Read:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Read)).Faint(true),
		Meta:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Meta)),
		Link:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)),
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Disabled)),
	}
}

// Options configures the concrete views.
type Options struct {
	PageSize      int
	CommentIndent int
	Async         bool
	Styles        Styles
	// Content renders story text. Nil falls back to plain Markdown.
	Content *markup.Renderer
	Logger  zerolog.Logger
}

func (o Options) pageSize() int {
	if o.PageSize <= 0 {
		return 10
	}
	return o.PageSize
}
