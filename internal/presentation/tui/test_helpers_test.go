package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/tesso57/hnreader/internal/application/settings"
	"github.com/tesso57/hnreader/internal/domain/news"
	"github.com/tesso57/hnreader/internal/presentation/dom"
	"github.com/tesso57/hnreader/internal/presentation/router"
	"github.com/tesso57/hnreader/internal/presentation/view"
)

type stubFeedLoader struct {
	entries []news.FeedEntry
	err     error
	calls   int
}

func (s *stubFeedLoader) FetchFeed() ([]news.FeedEntry, error) {
	s.calls++
	return s.entries, s.err
}

type stubDetailLoader struct {
	items map[string]*news.DetailItem
	calls []string
}

func (s *stubDetailLoader) FetchDetail(id string) (*news.DetailItem, error) {
	s.calls = append(s.calls, id)
	item, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("item %s not found", id)
	}
	return item, nil
}

type stubVisits struct {
	recorded []int
}

func (s *stubVisits) RecordVisit(item news.DetailItem) error {
	s.recorded = append(s.recorded, item.ID)
	return nil
}

type testEnv struct {
	model  *Model
	store  *news.Store
	root   *dom.Element
	feed   *stubFeedLoader
	detail *stubDetailLoader
	visits *stubVisits
	opened []string
}

func testSettings(async bool) settings.Settings {
	mode := settings.FetchSync
	if async {
		mode = settings.FetchAsync
	}
	return settings.Settings{
		API:    settings.APIConfig{FetchMode: mode},
		Reader: settings.ReaderConfig{PageSize: 10, CommentIndent: 4},
		KeyMap: settings.KeyMapConfig{
			Up: "k,up", Down: "j,down", UpPage: "ctrl+u,pgup", DownPage: "ctrl+d,pgdown",
			PrevPage: "p,left", NextPage: "n,right", Open: "o", Back: "esc,h",
			Goto: ":", Refresh: "r", Quit: "q,ctrl+c",
		},
		Theme: settings.ThemeConfig{Title: "252", Read: "240", Meta: "244", Accent: "208", Disabled: "237"},
	}
}

func makeFeed(n int) []news.FeedEntry {
	entries := make([]news.FeedEntry, n)
	for i := range entries {
		entries[i] = news.FeedEntry{NewsItem: news.NewsItem{
			ID:    500 + i,
			Title: fmt.Sprintf("Story %02d", i),
			User:  "pg",
		}}
	}
	return entries
}

func newTestEnv(t *testing.T, async bool, location string) *testEnv {
	t.Helper()
	cfg := testSettings(async)

	doc := dom.NewDocument("root")
	root, _ := doc.ElementByID("root")
	store := news.NewStore()
	env := &testEnv{
		store:  store,
		root:   root,
		feed:   &stubFeedLoader{entries: makeFeed(25)},
		detail: &stubDetailLoader{items: map[string]*news.DetailItem{}},
		visits: &stubVisits{},
	}

	opts := view.Options{
		PageSize:      cfg.Reader.PageSize,
		CommentIndent: cfg.Reader.CommentIndent,
		Async:         cfg.API.Async(),
		Styles:        view.NewStyles(cfg.Theme),
		Logger:        zerolog.Nop(),
	}
	feedView, err := view.NewFeedView(doc, "root", store, env.feed, opts)
	if err != nil {
		t.Fatal(err)
	}
	detailView, err := view.NewDetailView(doc, "root", store, env.detail, env.visits, opts)
	if err != nil {
		t.Fatal(err)
	}

	r := router.New(zerolog.Nop())
	r.SetDefaultRoute(feedView)
	r.AddRoute(view.DetailRoute, detailView)
	r.AddRoute(view.FeedRoute, feedView)

	env.model = NewModel(Options{
		Settings: cfg,
		Router:   r,
		Store:    store,
		Root:     root,
		Views:    []view.View{feedView, detailView},
		Detail:   detailView,
		Location: location,
		Logger:   zerolog.Nop(),
	})
	env.model.openBrowser = func(url string) error {
		env.opened = append(env.opened, url)
		return nil
	}
	return env
}

// press sends a key and returns the model's command.
func (e *testEnv) press(keys string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range keys {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		_, cmd = e.model.Update(msg)
	}
	return cmd
}

func (e *testEnv) send(msg tea.Msg) tea.Cmd {
	_, cmd := e.model.Update(msg)
	return cmd
}

// collect runs cmd and the commands of any batch it yields.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
