// Package tui hosts the screens in a Bubble Tea program: it paints the root
// element through a scrolling viewport and turns key presses into navigation.
package tui

import (
	"github.com/tesso57/hnreader/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/hnreader/internal/presentation/tui/components/main"
	"github.com/tesso57/hnreader/internal/presentation/tui/components/modal"
	"github.com/tesso57/hnreader/internal/presentation/tui/metrics"
	"github.com/tesso57/hnreader/internal/presentation/tui/state"
	screen "github.com/tesso57/hnreader/internal/presentation/tui/view"
)

func (m *Model) render() string {
	return screen.Render(m.buildProps())
}

func (m *Model) buildProps() screen.Props {
	return screen.Props{
		Header: m.buildHeaderProps(),
		Main:   m.buildMainProps(),
		Modal:  m.buildModalProps(),
		Footer: m.buildFooterProps(),
	}
}

func (m *Model) buildHeaderProps() header.Props {
	return header.Props{
		Location: m.state.Location,
		Loading:  m.deps().Loading(),
		Spinner:  m.state.Spinner.View(),
		Width:    m.state.Width - metrics.MainPaddingLeft,
	}
}

func (m *Model) buildMainProps() mainview.Props {
	return mainview.Props{
		Width:  m.state.Width,
		Height: m.state.Viewport.Height + metrics.HeaderLines,
		Body:   m.state.Viewport.View(),
	}
}

func (m *Model) buildModalProps() modal.Props {
	props := modal.Props{Visible: true, Width: m.state.Width, Height: m.state.Height}
	switch {
	case m.state.Session == state.GotoView:
		props.Kind = modal.Goto
		props.Body = "Go to location:\n\n" + m.state.TextInput.View() + "\n\n(enter to go, esc to cancel)"
	case m.state.Session == state.QuitView:
		props.Kind = modal.Quit
		props.Body = "Are you sure you want to quit?\n\n(y/n)"
	case m.state.Help.ShowAll:
		props.Kind = modal.Help
		props.Body = m.state.Help.View(&m.state.Keys)
	default:
		return modal.Props{Visible: false}
	}
	return props
}

func (m *Model) buildFooterProps() string {
	helpText := m.state.Help.ShortHelpView(m.state.Keys.ShortHelp())
	return state.FooterText(m.deps().Loading(), m.state.Err, m.state.StatusMessage, helpText)
}
