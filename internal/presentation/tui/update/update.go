// Package update holds UI update logic for the TUI.
package update

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/hnreader/internal/domain/news"
	"github.com/tesso57/hnreader/internal/presentation/dom"
	"github.com/tesso57/hnreader/internal/presentation/tui/intent"
	"github.com/tesso57/hnreader/internal/presentation/tui/state"
	"github.com/tesso57/hnreader/internal/presentation/view"
)

const itemLinkFormat = "https://news.ycombinator.com/item?id=%d"

// Dispatcher routes a navigation path to a view.
type Dispatcher interface {
	Dispatch(path string) tea.Cmd
}

// ItemSource exposes the story shown on the detail screen.
type ItemSource interface {
	Current() *news.DetailItem
}

// Deps groups external dependencies for updates.
type Deps struct {
	Router      Dispatcher
	Store       *news.Store
	Root        *dom.Element
	Views       []view.View
	Detail      ItemSource
	PageSize    int
	OpenBrowser func(string) error
}

// Loading reports whether any view is building.
func (d Deps) Loading() bool {
	for _, v := range d.Views {
		if v.Phase() == view.PhaseBuilding {
			return true
		}
	}
	return false
}

func (d Deps) pageSize() int {
	if d.PageSize <= 0 {
		return 10
	}
	return d.PageSize
}

// Navigate records path as the current location and dispatches it.
func Navigate(s *state.ModelState, deps Deps, path string) tea.Cmd {
	s.Location = strings.TrimSpace(path)
	s.Err = nil
	s.StatusMessage = ""
	cmd := deps.Router.Dispatch(s.Location)
	SyncViewport(s, deps.Root)
	return cmd
}

// SyncViewport shows newly committed root content, scrolled to the top.
func SyncViewport(s *state.ModelState, root *dom.Element) {
	if root == nil || root.Version() == s.RootVersion {
		return
	}
	s.RootVersion = root.Version()
	s.Viewport.SetContent(root.Content())
	s.Viewport.GotoTop()
}

// HandleFetchDone applies a finished background fetch.
func HandleFetchDone(s *state.ModelState, msg view.FetchDoneMsg, deps Deps) {
	s.Err = msg.Apply()
	SyncViewport(s, deps.Root)
}

// HandleErrMsg records a failed render.
func HandleErrMsg(s *state.ModelState, msg view.ErrMsg) {
	s.Err = msg.Err
}

// HandleKeyMsg handles one key press. The bool reports whether the key was consumed.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch s.Session {
	case state.GotoView:
		return handleGotoView(s, msg, deps)
	case state.QuitView:
		return handleQuitView(s, msg)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	if s.Help.ShowAll && (parsed.Type == intent.Back || parsed.Type == intent.ToggleHelp) {
		s.Help.ShowAll = false
		return nil, true
	}

	switch parsed.Type {
	case intent.Quit:
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = true
		return nil, true
	case intent.Goto:
		s.Session = state.GotoView
		s.TextInput.SetValue(s.Location)
		s.TextInput.CursorEnd()
		return textinput.Blink, true
	case intent.Refresh:
		deps.Store.Invalidate()
		return Navigate(s, deps, s.Location), true
	}

	switch {
	case OnDetail(s.Location):
		return handleDetailIntent(s, parsed, deps)
	case OnFeed(s.Location):
		return handleFeedIntent(s, parsed, deps)
	default:
		return nil, false
	}
}

// OnFeed reports whether location shows the feed.
func OnFeed(location string) bool {
	location = strings.TrimSpace(location)
	return location == "" || location == "#" || strings.Contains(location, view.FeedRoute)
}

// OnDetail reports whether location shows a story.
func OnDetail(location string) bool {
	return strings.Contains(location, view.DetailRoute)
}

func handleFeedIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	store := deps.Store
	size := deps.pageSize()

	switch in.Type {
	case intent.NextPage:
		if store.HasFeed() && store.CurrentPage() < store.PageCount(size) {
			return Navigate(s, deps, view.FeedPath(store.NextPage())), true
		}
		return nil, true
	case intent.PrevPage:
		if store.CurrentPage() > 1 {
			return Navigate(s, deps, view.FeedPath(store.PreviousPage())), true
		}
		return nil, true
	case intent.OpenEntry:
		start, end := store.Window(size)
		if i := start + in.Index; in.Index < size && i < end {
			return Navigate(s, deps, DetailPath(store.EntryAt(i).ID)), true
		}
		return nil, true
	}
	return nil, false
}

func handleDetailIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Back:
		return Navigate(s, deps, view.FeedPath(deps.Store.CurrentPage())), true
	case intent.Open:
		openCurrent(s, deps)
		return nil, true
	}
	return nil, false
}

func openCurrent(s *state.ModelState, deps Deps) {
	if deps.Detail == nil || deps.OpenBrowser == nil {
		return
	}
	item := deps.Detail.Current()
	if item == nil {
		return
	}
	link := StoryLink(item.NewsItem)
	if err := deps.OpenBrowser(link); err != nil {
		s.Err = fmt.Errorf("open %s: %w", link, err)
		return
	}
	s.StatusMessage = "Opened " + link
}

// StoryLink returns the story's external URL, or its discussion page when
// the URL is missing or site-relative.
func StoryLink(item news.NewsItem) string {
	if strings.HasPrefix(item.URL, "http://") || strings.HasPrefix(item.URL, "https://") {
		return item.URL
	}
	return fmt.Sprintf(itemLinkFormat, item.ID)
}

// DetailPath returns the navigation path of story id.
func DetailPath(id int) string {
	return "#" + view.DetailRoute + strconv.Itoa(id)
}

func handleGotoView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch msg.String() {
	case "enter":
		path := s.TextInput.Value()
		s.TextInput.Reset()
		s.Session = state.Browsing
		return Navigate(s, deps, path), true
	case "esc":
		s.TextInput.Reset()
		s.Session = state.Browsing
		return nil, true
	}

	var cmd tea.Cmd
	s.TextInput, cmd = s.TextInput.Update(msg)
	return cmd, true
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y", "ctrl+c":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}
