package update

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/hnreader/internal/domain/news"
	"github.com/tesso57/hnreader/internal/presentation/dom"
	"github.com/tesso57/hnreader/internal/presentation/tui/state"
	"github.com/tesso57/hnreader/internal/presentation/view"
)

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Dispatch(path string) tea.Cmd {
	args := m.Called(path)
	cmd, _ := args.Get(0).(tea.Cmd)
	return cmd
}

type stubItemSource struct {
	item *news.DetailItem
}

func (s stubItemSource) Current() *news.DetailItem { return s.item }

type stubView struct {
	phase view.Phase
}

func (v *stubView) Render(string) tea.Cmd { return nil }
func (v *stubView) Phase() view.Phase     { return v.phase }

func newTestDeps(t *testing.T, entries int) (Deps, *mockDispatcher) {
	t.Helper()
	store := news.NewStore()
	feed := make([]news.FeedEntry, entries)
	for i := range feed {
		feed[i] = news.FeedEntry{NewsItem: news.NewsItem{ID: 1000 + i}}
	}
	store.SetFeed(feed)

	root, _ := dom.NewDocument("root").ElementByID("root")
	router := &mockDispatcher{}
	return Deps{
		Router:   router,
		Store:    store,
		Root:     root,
		PageSize: 5,
	}, router
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHandleKeyMsg_Paging(t *testing.T) {
	s := newLayoutTestState()
	deps, router := newTestDeps(t, 12)

	router.On("Dispatch", "#/page/2").Return(nil).Run(func(mock.Arguments) { deps.Store.SetCurrentPage(2) }).Once()
	_, handled := HandleKeyMsg(s, keyRunes("n"), deps)
	require.True(t, handled)
	assert.Equal(t, "#/page/2", s.Location)

	router.On("Dispatch", "#/page/3").Return(nil).Run(func(mock.Arguments) { deps.Store.SetCurrentPage(3) }).Once()
	HandleKeyMsg(s, keyRunes("n"), deps)

	// Last page: next is disabled.
	HandleKeyMsg(s, keyRunes("n"), deps)
	assert.Equal(t, "#/page/3", s.Location)

	router.On("Dispatch", "#/page/2").Return(nil).Run(func(mock.Arguments) { deps.Store.SetCurrentPage(2) }).Once()
	HandleKeyMsg(s, keyRunes("p"), deps)
	assert.Equal(t, "#/page/2", s.Location)

	router.AssertExpectations(t)
	router.AssertNumberOfCalls(t, "Dispatch", 3)
}

func TestHandleKeyMsg_PrevDisabledOnFirstPage(t *testing.T) {
	s := newLayoutTestState()
	deps, router := newTestDeps(t, 12)

	_, handled := HandleKeyMsg(s, keyRunes("p"), deps)
	assert.True(t, handled)
	router.AssertNotCalled(t, "Dispatch", mock.Anything)
}

func TestHandleKeyMsg_OpenEntry(t *testing.T) {
	s := newLayoutTestState()
	deps, router := newTestDeps(t, 12)
	deps.Store.SetCurrentPage(3)
	s.Location = "#/page/3"

	router.On("Dispatch", "#/show/1011").Return(nil).Once()
	HandleKeyMsg(s, keyRunes("2"), deps)
	assert.Equal(t, "#/show/1011", s.Location)

	// Page 3 has two entries; the third key is out of range.
	s.Location = "#/page/3"
	HandleKeyMsg(s, keyRunes("3"), deps)
	assert.Equal(t, "#/page/3", s.Location)

	router.AssertExpectations(t)
}

func TestHandleKeyMsg_DetailBackAndOpen(t *testing.T) {
	s := newLayoutTestState()
	deps, router := newTestDeps(t, 12)
	deps.Store.SetCurrentPage(2)
	s.Location = "#/show/1006"

	var opened string
	deps.Detail = stubItemSource{item: &news.DetailItem{NewsItem: news.NewsItem{ID: 1006, URL: "https://example.com/x"}}}
	deps.OpenBrowser = func(url string) error {
		opened = url
		return nil
	}

	HandleKeyMsg(s, keyRunes("o"), deps)
	assert.Equal(t, "https://example.com/x", opened)
	assert.Equal(t, "Opened https://example.com/x", s.StatusMessage)

	router.On("Dispatch", "#/page/2").Return(nil).Once()
	HandleKeyMsg(s, tea.KeyMsg{Type: tea.KeyEsc}, deps)
	assert.Equal(t, "#/page/2", s.Location)
	assert.Empty(t, s.StatusMessage)
	router.AssertExpectations(t)
}

func TestHandleKeyMsg_OpenError(t *testing.T) {
	s := newLayoutTestState()
	deps, _ := newTestDeps(t, 1)
	s.Location = "#/show/5"
	deps.Detail = stubItemSource{item: &news.DetailItem{NewsItem: news.NewsItem{ID: 5}}}
	deps.OpenBrowser = func(string) error { return errors.New("no browser") }

	HandleKeyMsg(s, keyRunes("o"), deps)
	require.Error(t, s.Err)
	assert.Contains(t, s.Err.Error(), "https://news.ycombinator.com/item?id=5")
}

func TestHandleKeyMsg_Refresh(t *testing.T) {
	s := newLayoutTestState()
	deps, router := newTestDeps(t, 3)
	s.Location = "#/page/1"

	router.On("Dispatch", "#/page/1").Return(nil).Once()
	HandleKeyMsg(s, keyRunes("r"), deps)

	assert.False(t, deps.Store.HasFeed())
	router.AssertExpectations(t)
}

func TestHandleKeyMsg_GotoPrompt(t *testing.T) {
	s := newLayoutTestState()
	s.TextInput = textinput.New()
	s.TextInput.Focus()
	deps, router := newTestDeps(t, 3)
	s.Location = "#/page/1"

	cmd, handled := HandleKeyMsg(s, keyRunes(":"), deps)
	require.True(t, handled)
	assert.NotNil(t, cmd)
	assert.Equal(t, state.GotoView, s.Session)
	assert.Equal(t, "#/page/1", s.TextInput.Value())

	s.TextInput.SetValue("")
	for _, r := range "#/show/42" {
		HandleKeyMsg(s, keyRunes(string(r)), deps)
	}
	assert.Equal(t, "#/show/42", s.TextInput.Value())

	router.On("Dispatch", "#/show/42").Return(nil).Once()
	HandleKeyMsg(s, tea.KeyMsg{Type: tea.KeyEnter}, deps)
	assert.Equal(t, state.Browsing, s.Session)
	assert.Equal(t, "#/show/42", s.Location)
	assert.Empty(t, s.TextInput.Value())
	router.AssertExpectations(t)

	HandleKeyMsg(s, keyRunes(":"), deps)
	HandleKeyMsg(s, tea.KeyMsg{Type: tea.KeyEsc}, deps)
	assert.Equal(t, state.Browsing, s.Session)
	assert.Equal(t, "#/show/42", s.Location)
}

func TestHandleKeyMsg_QuitDialog(t *testing.T) {
	s := newLayoutTestState()
	deps, _ := newTestDeps(t, 1)

	cmd, _ := HandleKeyMsg(s, keyRunes("q"), deps)
	assert.Nil(t, cmd)
	assert.Equal(t, state.QuitView, s.Session)

	HandleKeyMsg(s, keyRunes("n"), deps)
	assert.Equal(t, state.Browsing, s.Session)

	HandleKeyMsg(s, keyRunes("q"), deps)
	cmd, _ = HandleKeyMsg(s, keyRunes("y"), deps)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestHandleKeyMsg_Help(t *testing.T) {
	s := newLayoutTestState()
	deps, router := newTestDeps(t, 1)
	s.Location = "#/show/1"

	HandleKeyMsg(s, keyRunes("?"), deps)
	assert.True(t, s.Help.ShowAll)

	// Back closes help instead of navigating.
	HandleKeyMsg(s, tea.KeyMsg{Type: tea.KeyEsc}, deps)
	assert.False(t, s.Help.ShowAll)
	router.AssertNotCalled(t, "Dispatch", mock.Anything)
}

func TestHandleKeyMsg_UnmatchedLocationIgnoresScreenKeys(t *testing.T) {
	s := newLayoutTestState()
	deps, router := newTestDeps(t, 12)
	s.Location = "#/unknown"

	_, handled := HandleKeyMsg(s, keyRunes("n"), deps)
	assert.False(t, handled)
	router.AssertNotCalled(t, "Dispatch", mock.Anything)
}

func TestSyncViewport(t *testing.T) {
	s := newLayoutTestState()
	s.Viewport.Width = 20
	s.Viewport.Height = 5
	root, _ := dom.NewDocument("root").ElementByID("root")

	SyncViewport(s, root)
	assert.Equal(t, 0, s.RootVersion)

	root.SetContent("hello")
	SyncViewport(s, root)
	assert.Equal(t, 1, s.RootVersion)
	assert.Contains(t, s.Viewport.View(), "hello")

	SyncViewport(s, nil)
	assert.Equal(t, 1, s.RootVersion)
}

func TestHandleFetchDoneAndErr(t *testing.T) {
	s := newLayoutTestState()
	deps, _ := newTestDeps(t, 1)

	HandleErrMsg(s, view.ErrMsg{Err: errors.New("offline")})
	assert.EqualError(t, s.Err, "offline")

	HandleFetchDone(s, view.FetchDoneMsg{}, deps)
	assert.NoError(t, s.Err)
}

func TestDeps_Loading(t *testing.T) {
	idle := &stubView{}
	busy := &stubView{phase: view.PhaseBuilding}

	assert.False(t, Deps{Views: []view.View{idle}}.Loading())
	assert.True(t, Deps{Views: []view.View{idle, busy}}.Loading())
}

func TestLocationHelpers(t *testing.T) {
	assert.True(t, OnFeed(""))
	assert.True(t, OnFeed("#"))
	assert.True(t, OnFeed("#/page/4"))
	assert.False(t, OnFeed("#/show/4"))
	assert.True(t, OnDetail("#/show/4"))
	assert.Equal(t, "#/show/9", DetailPath(9))
	assert.Equal(t, "https://news.ycombinator.com/item?id=3", StoryLink(news.NewsItem{ID: 3, URL: "item?id=3"}))
}
