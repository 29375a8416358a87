// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/hnreader/internal/application/settings"
)

// Session represents the current input mode.
type Session int

const (
	Browsing Session = iota
	GotoView
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	UpPage   key.Binding
	DownPage key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Entry    key.Binding
	Open     key.Binding
	Back     key.Binding
	Goto     key.Binding
	Refresh  key.Binding
	Quit     key.Binding
	Help     key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.Entry, k.PrevPage, k.NextPage, k.Back, k.Open}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.UpPage, k.DownPage},
		{k.PrevPage, k.NextPage, k.Entry},
		{k.Open, k.Back, k.Goto, k.Refresh},
		{k.Help, k.Quit},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up:       binding(cfg.Up, "up"),
		Down:     binding(cfg.Down, "down"),
		UpPage:   binding(cfg.UpPage, "pgup"),
		DownPage: binding(cfg.DownPage, "pgdn"),
		PrevPage: binding(cfg.PrevPage, "prev page"),
		NextPage: binding(cfg.NextPage, "next page"),
		Entry: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
			key.WithHelp("1-0", "read story"),
		),
		Open:    binding(cfg.Open, "open in browser"),
		Back:    binding(cfg.Back, "back"),
		Goto:    binding(cfg.Goto, "go to"),
		Refresh: binding(cfg.Refresh, "refresh"),
		Quit:    binding(cfg.Quit, "quit"),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func binding(keys, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(splitKeys(keys)...),
		key.WithHelp(keys, desc),
	)
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
