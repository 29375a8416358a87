// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/hnreader/internal/presentation/tui/state"
	"github.com/tesso57/hnreader/internal/presentation/tui/textutil"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	PrevPage
	NextPage
	OpenEntry
	Open
	Back
	Goto
	Refresh
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
	// Index is the position on the current page for OpenEntry.
	Index int
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Entry):
		idx, ok := textutil.EntryIndex(msg.String())
		if !ok {
			return Intent{Type: None}
		}
		return Intent{Type: OpenEntry, Index: idx}
	case key.Matches(msg, keys.PrevPage):
		return Intent{Type: PrevPage}
	case key.Matches(msg, keys.NextPage):
		return Intent{Type: NextPage}
	case key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	case key.Matches(msg, keys.Goto):
		return Intent{Type: Goto}
	case key.Matches(msg, keys.Refresh):
		return Intent{Type: Refresh}
	default:
		return Intent{Type: None}
	}
}
