package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/tesso57/hnreader/internal/domain/news"
	"github.com/tesso57/hnreader/internal/presentation/dom"
	"github.com/tesso57/hnreader/internal/presentation/markup"
	"github.com/tesso57/hnreader/internal/presentation/tui/textutil"
)

// DetailRoute is the path prefix of a story's detail screen.
const DetailRoute = "/show/"

const detailTemplate = `{{__back__}} #/page/{{__current_page__}}

{{__title__}}
{{__meta__}}

{{__content__}}

{{__comment_count__}}

{{__comments__}}`

var errEmptyItem = errors.New("empty item")

// DetailLoader fetches one story with its comments.
type DetailLoader interface {
	FetchDetail(id string) (*news.DetailItem, error)
}

// VisitRecorder stores that a story was opened.
type VisitRecorder interface {
	RecordVisit(item news.DetailItem) error
}

// DetailView renders a story and its comment thread.
type DetailView struct {
	*Base
	store   *news.Store
	loader  DetailLoader
	visits  VisitRecorder
	opts    Options
	log     zerolog.Logger
	current *news.DetailItem
}

// NewDetailView binds a DetailView to containerID. visits may be nil.
func NewDetailView(doc *dom.Document, containerID string, store *news.Store, loader DetailLoader, visits VisitRecorder, opts Options) (*DetailView, error) {
	base, err := NewBase(doc, containerID, detailTemplate)
	if err != nil {
		return nil, err
	}
	return &DetailView{
		Base:   base,
		store:  store,
		loader: loader,
		visits: visits,
		opts:   opts,
		log:    opts.Logger.With().Str("view", "detail").Logger(),
	}, nil
}

// Current returns the last committed story, or nil.
func (v *DetailView) Current() *news.DetailItem {
	return v.current
}

// Render fetches the story named by path and renders it.
func (v *DetailView) Render(path string) tea.Cmd {
	id := routeParam(path, DetailRoute)
	if !v.Begin() {
		v.log.Debug().Str("id", id).Msg("detail fetch pending")
		return nil
	}
	v.log.Debug().Str("id", id).Msg("fetching item")

	fetch := func() (*news.DetailItem, error) { return v.loader.FetchDetail(id) }
	done := func(item *news.DetailItem, err error) error { return v.completeDetail(id, item, err) }
	return load(v.opts.Async, fetch, done)
}

func (v *DetailView) completeDetail(id string, item *news.DetailItem, err error) error {
	if err == nil && (item == nil || item.ID == 0) {
		err = errEmptyItem
	}
	if err != nil {
		v.Abort()
		v.log.Error().Err(err).Str("id", id).Msg("item fetch failed")
		return fmt.Errorf("load item %s: %w", id, err)
	}

	v.store.MarkRead(item.ID)
	if v.visits != nil {
		if err := v.visits.RecordVisit(*item); err != nil {
			v.log.Warn().Err(err).Int("id", item.ID).Msg("record visit failed")
		}
	}

	v.renderItem(item)
	v.current = item
	return nil
}

func (v *DetailView) renderItem(item *news.DetailItem) {
	st := v.opts.Styles
	width := v.Container().Width()

	meta := []string{}
	for _, part := range []string{item.User, item.TimeAgo, item.URL} {
		if part != "" {
			meta = append(meta, part)
		}
	}

	news.WalkComments(item.Comments, func(c news.CommentNode, level int) {
		v.AppendFragment(v.comment(c, level, width))
	})

	v.SetPlaceholder("back", st.Link.Render("[esc] Back"))
	v.SetPlaceholder("current_page", strconv.Itoa(v.store.CurrentPage()))
	v.SetPlaceholder("title", st.Header.Render(textutil.SingleLine(item.Title)))
	v.SetPlaceholder("meta", st.Meta.Render(strings.Join(meta, "  ")))
	v.SetPlaceholder("content", v.content(item.Content, width))
	v.SetPlaceholder("comment_count", st.Meta.Render(textutil.Count(news.CountComments(item.Comments), "comment")))
	v.SetPlaceholder("comments", v.FlushFragments())
	v.Commit()
}

func (v *DetailView) content(html string, width int) string {
	if strings.TrimSpace(html) == "" {
		return v.opts.Styles.Meta.Render("(no text)")
	}
	if v.opts.Content != nil {
		return v.opts.Content.Render(html, width)
	}
	return lipgloss.NewStyle().Width(width).Render(markup.ToMarkdown(html))
}

func (v *DetailView) comment(c news.CommentNode, level, width int) string {
	st := v.opts.Styles
	indent := level * v.opts.CommentIndent
	bodyWidth := max(width-indent, 20)

	header := st.Meta.Render("▲ " + c.User + " " + c.TimeAgo)
	body := lipgloss.NewStyle().Width(bodyWidth).Render(markup.ToMarkdown(c.Content))
	block := lipgloss.JoinVertical(lipgloss.Left, header, body)

	return lipgloss.NewStyle().PaddingLeft(indent).Render(block) + "\n\n"
}
