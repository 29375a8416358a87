// Package markup turns Hacker News HTML fragments into terminal text.
package markup

import (
	"regexp"
	"strings"
	"sync"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/charmbracelet/glamour"
)

var htmlTagPattern = regexp.MustCompile(`<\s*(p|div|span|a|br|img|h[1-6]|ul|ol|li|table|tr|td|th|strong|em|b|i|code|pre|blockquote)[^>]*>`)

const (
	minWrap = 20
	maxWrap = 120
)

// IsHTML reports whether content looks like HTML.
func IsHTML(content string) bool {
	if strings.Contains(content, "<!DOCTYPE") || strings.Contains(content, "<html") {
		return true
	}
	return htmlTagPattern.MatchString(content)
}

// ToMarkdown converts HTML to Markdown. Plain text and failed conversions
// come back unchanged.
func ToMarkdown(content string) string {
	if content == "" || !IsHTML(content) {
		return content
	}
	md, err := htmltomarkdown.ConvertString(content)
	if err != nil {
		return content
	}
	return strings.TrimSpace(md)
}

// Renderer renders Markdown with glamour, rebuilding its term renderer only
// when the wrap width changes.
type Renderer struct {
	mu    sync.Mutex
	style string
	width int
	term  *glamour.TermRenderer
}

// NewRenderer creates a Renderer for a glamour standard style name.
func NewRenderer(style string) *Renderer {
	if strings.TrimSpace(style) == "" {
		style = "dark"
	}
	return new(Renderer{style: style})
}

// Render converts content to Markdown and renders it wrapped at width.
// On renderer failure the Markdown is returned as is.
func (r *Renderer) Render(content string, width int) string {
	md := ToMarkdown(content)
	if strings.TrimSpace(md) == "" {
		return ""
	}
	term, err := r.renderer(wrapWidth(width))
	if err != nil {
		return md
	}
	out, err := term.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func (r *Renderer) renderer(width int) (*glamour.TermRenderer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.term != nil && r.width == width {
		return r.term, nil
	}
	term, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.term = term
	r.width = width
	return term, nil
}

func wrapWidth(width int) int {
	switch {
	case width < minWrap:
		return minWrap
	case width > maxWrap:
		return maxWrap
	default:
		return width
	}
}
