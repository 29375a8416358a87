package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/hnreader/internal/presentation/tui/metrics"
	"github.com/tesso57/hnreader/internal/presentation/tui/state"
)

// statusLines is reserved below the viewport for errors and status messages.
const statusLines = 1

// UpdateSizes fits the viewport to the terminal and returns the content width.
func UpdateSizes(s *state.ModelState) int {
	if s.Width <= 0 || s.Height <= 0 {
		return 0
	}

	s.Viewport.Width = clampMin(s.Width-metrics.MainPaddingLeft, 1)
	s.Viewport.Height = clampMin(s.Height-metrics.HeaderLines-footerHeight(s), metrics.MinViewportHeight)
	return clampMin(s.Viewport.Width-s.Viewport.Style.GetHorizontalFrameSize(), 1)
}

// HandleWindowSize resizes the layout. When the content width changes on a
// loaded feed page, the page is rendered again at the new width.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg, deps Deps) tea.Cmd {
	s.Width = msg.Width
	s.Height = msg.Height

	width := UpdateSizes(s)
	if deps.Root == nil || width == 0 || width == deps.Root.Width() {
		return nil
	}
	deps.Root.SetWidth(width)
	if OnFeed(s.Location) && deps.Store.HasFeed() && !deps.Loading() {
		cmd := deps.Router.Dispatch(s.Location)
		SyncViewport(s, deps.Root)
		return cmd
	}
	return nil
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(s.Help.ShortHelpView(s.Keys.ShortHelp())) + statusLines
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
