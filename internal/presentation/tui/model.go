package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/tesso57/hnreader/internal/application/settings"
	"github.com/tesso57/hnreader/internal/domain/news"
	"github.com/tesso57/hnreader/internal/presentation/dom"
	"github.com/tesso57/hnreader/internal/presentation/tui/metrics"
	"github.com/tesso57/hnreader/internal/presentation/tui/state"
	"github.com/tesso57/hnreader/internal/presentation/tui/update"
	"github.com/tesso57/hnreader/internal/presentation/view"
)

// Options wires the model to the router and the document it displays.
type Options struct {
	Settings settings.Settings
	Router   update.Dispatcher
	Store    *news.Store
	Root     *dom.Element
	// Views are polled for the loading indicator.
	Views  []view.View
	Detail update.ItemSource
	// Location is dispatched on start.
	Location string
	Logger   zerolog.Logger
}

// Model represents the main application state.
type Model struct {
	opts        Options
	state       *state.ModelState
	openBrowser func(string) error
	log         zerolog.Logger
}

// NewModel creates a new application model.
func NewModel(opts Options) *Model {
	return &Model{
		opts:        opts,
		state:       newModelState(opts.Settings),
		openBrowser: openBrowser,
		log:         opts.Logger.With().Str("component", "tui").Logger(),
	}
}

// Init dispatches the start location.
func (m *Model) Init() tea.Cmd {
	m.log.Info().Str("location", m.opts.Location).Msg("start")
	return tea.Batch(m.state.Spinner.Tick, update.Navigate(m.state, m.deps(), m.opts.Location))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd
	deps := m.deps()
	wasLoading := deps.Loading()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, deps)
		if handled {
			return m, m.withSpinner(wasLoading, cmd)
		}
	case tea.WindowSizeMsg:
		cmds = append(cmds, update.HandleWindowSize(m.state, msg, deps))
	case view.FetchDoneMsg:
		update.HandleFetchDone(m.state, msg, deps)
		m.logErr()
	case view.ErrMsg:
		update.HandleErrMsg(m.state, msg)
		m.logErr()
	case spinner.TickMsg:
		if wasLoading {
			m.state.Spinner, cmd = m.state.Spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	if m.state.Session == state.Browsing {
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return m.render()
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Router:      m.opts.Router,
		Store:       m.opts.Store,
		Root:        m.opts.Root,
		Views:       m.opts.Views,
		Detail:      m.opts.Detail,
		PageSize:    m.opts.Settings.Reader.PageSize,
		OpenBrowser: m.openBrowser,
	}
}

// withSpinner restarts the spinner when cmd began a fetch.
func (m *Model) withSpinner(wasLoading bool, cmd tea.Cmd) tea.Cmd {
	if !wasLoading && m.deps().Loading() {
		return tea.Batch(cmd, m.state.Spinner.Tick)
	}
	return cmd
}

func (m *Model) logErr() {
	if m.state.Err != nil {
		m.log.Warn().Err(m.state.Err).Str("location", m.state.Location).Msg("render failed")
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	keys := state.NewKeyMap(cfg.KeyMap)
	return &state.ModelState{
		Session:   state.Browsing,
		Viewport:  newViewport(keys),
		TextInput: newTextInput(),
		Help:      help.New(),
		Spinner:   newSpinner(cfg.Theme.Accent),
		Keys:      keys,
	}
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "#/page/1 or #/show/<id>"
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = metrics.GotoCharLimit
	ti.Width = metrics.ModalWidth - 4
	return ti
}

func newSpinner(color string) spinner.Model {
	if color == "" {
		color = "205"
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return s
}

func newViewport(keys state.KeyMap) viewport.Model {
	vp := viewport.New(dom.DefaultWidth, 0)
	vp.KeyMap = viewport.KeyMap{
		Up:       keys.Up,
		Down:     keys.Down,
		PageUp:   keys.UpPage,
		PageDown: keys.DownPage,
	}
	return vp
}
