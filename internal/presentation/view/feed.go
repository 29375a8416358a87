package view

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/tesso57/hnreader/internal/domain/news"
	"github.com/tesso57/hnreader/internal/presentation/dom"
	"github.com/tesso57/hnreader/internal/presentation/tui/textutil"
)

// FeedRoute is the path prefix of the paginated feed.
const FeedRoute = "/page/"

const feedTemplate = `{{__header__}}    {{__prev_page__}}  {{__next_page__}}

{{__news_feed__}}`

// FeedLoader fetches the front-page feed.
type FeedLoader interface {
	FetchFeed() ([]news.FeedEntry, error)
}

// FeedView renders one page of the feed.
type FeedView struct {
	*Base
	store  *news.Store
	loader FeedLoader
	opts   Options
	log    zerolog.Logger
}

// NewFeedView binds a FeedView to containerID.
func NewFeedView(doc *dom.Document, containerID string, store *news.Store, loader FeedLoader, opts Options) (*FeedView, error) {
	base, err := NewBase(doc, containerID, feedTemplate)
	if err != nil {
		return nil, err
	}
	return &FeedView{
		Base:   base,
		store:  store,
		loader: loader,
		opts:   opts,
		log:    opts.Logger.With().Str("view", "feed").Logger(),
	}, nil
}

// PageSize returns the number of entries per page.
func (v *FeedView) PageSize() int {
	return v.opts.pageSize()
}

// Render selects the page named by path and renders it, fetching the feed
// first if the store has none.
func (v *FeedView) Render(path string) tea.Cmd {
	v.store.SetCurrentPage(PageFromPath(path))

	// The outstanding fetch renders the page current at completion.
	if !v.Begin() {
		v.log.Debug().Str("path", path).Msg("feed fetch pending")
		return nil
	}
	if v.store.HasFeed() {
		v.renderPage()
		return nil
	}
	v.log.Debug().Msg("fetching feed")
	return load(v.opts.Async, v.loader.FetchFeed, v.completeFeed)
}

func (v *FeedView) completeFeed(entries []news.FeedEntry, err error) error {
	if err != nil {
		v.Abort()
		v.log.Error().Err(err).Msg("feed fetch failed")
		return fmt.Errorf("load feed: %w", err)
	}
	v.store.SetFeed(entries)
	v.log.Info().Int("entries", len(entries)).Msg("feed loaded")
	v.renderPage()
	return nil
}

func (v *FeedView) renderPage() {
	size := v.PageSize()
	page := v.store.CurrentPage()
	pageCount := v.store.PageCount(size)
	width := v.Container().Width()
	st := v.opts.Styles

	start, end := v.store.Window(size)
	for i := start; i < end; i++ {
		v.AppendFragment(v.entry(i-start, v.store.EntryAt(i), width))
	}
	feed := v.FlushFragments()
	if feed == "" {
		feed = st.Meta.Render("No stories on this page.")
	}

	v.SetPlaceholder("header", st.Header.Render("Hacker News")+st.Meta.Render(fmt.Sprintf("  page %d/%d", page, pageCount)))
	v.SetPlaceholder("prev_page", pageLink(st, "Previous", v.store.PreviousPage(), page > 1))
	v.SetPlaceholder("next_page", pageLink(st, "Next", v.store.NextPage(), page < pageCount))
	v.SetPlaceholder("news_feed", feed)
	v.Commit()
}

func (v *FeedView) entry(index int, e news.FeedEntry, width int) string {
	st := v.opts.Styles

	key, ok := textutil.EntryKey(index)
	if !ok {
		key = " "
	}
	titleStyle := st.Title
	if e.Read {
		titleStyle = st.Read
	}
	title := textutil.Truncate(textutil.SingleLine(e.Title), width-4)
	meta := fmt.Sprintf("%s  %s  %s  %s",
		e.User,
		textutil.Count(e.Points, "point"),
		e.TimeAgo,
		textutil.Count(e.CommentsCount, "comment"),
	)

	return fmt.Sprintf("%s %s\n   %s\n\n",
		st.Link.Render("["+key+"]"),
		titleStyle.Render(title),
		st.Meta.Render(textutil.Truncate(meta, width-3)),
	)
}

func pageLink(st Styles, label string, target int, enabled bool) string {
	text := label + " #" + FeedRoute + strconv.Itoa(target)
	if !enabled {
		return st.Disabled.Render(label)
	}
	return st.Link.Render(text)
}

// PageFromPath extracts the page number of a feed path. Missing, malformed
// and non-positive numbers yield 1.
func PageFromPath(path string) int {
	n, err := strconv.Atoi(routeParam(path, FeedRoute))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// FeedPath returns the navigation path of page.
func FeedPath(page int) string {
	return "#" + FeedRoute + strconv.Itoa(page)
}
