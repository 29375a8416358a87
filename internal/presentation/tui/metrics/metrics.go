// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	// HeaderLines is the header row plus its blank separator.
	HeaderLines = 2
	// MainPaddingLeft is the left padding of the main area.
	MainPaddingLeft = 1
	// MinViewportHeight keeps the viewport usable on tiny terminals.
	MinViewportHeight = 1

	ModalWidth    = 60
	GotoCharLimit = 256
)
