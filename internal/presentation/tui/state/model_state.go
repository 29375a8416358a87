package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session   Session
	Previous  Session
	Viewport  viewport.Model
	TextInput textinput.Model
	Help      help.Model
	Spinner   spinner.Model
	Keys      KeyMap
	Width     int
	Height    int

	// Location is the last dispatched navigation path.
	Location string
	// RootVersion is the root element version shown in the viewport.
	RootVersion   int
	Err           error
	StatusMessage string
}
