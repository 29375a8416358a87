// Package view implements the screens rendered into the document's root
// element and the render lifecycle they share.
package view

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrContainerNotFound is returned when a view is bound to a missing element.
var ErrContainerNotFound = errors.New("view: container not found")

// View renders a navigation path into its container.
type View interface {
	// Render starts a render cycle for path. The returned command, if any,
	// delivers an ErrMsg or a FetchDoneMsg to the event loop.
	Render(path string) tea.Cmd
	Phase() Phase
}

// Phase is the state of a view's render cycle.
type Phase int

const (
	// PhaseIdle is the state before the first cycle and after an aborted one.
	PhaseIdle Phase = iota
	// PhaseBuilding means a cycle has begun and has not committed yet.
	PhaseBuilding
	// PhaseCommitted means the last cycle wrote its container.
	PhaseCommitted
)

// String returns the lower-case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseBuilding:
		return "building"
	case PhaseCommitted:
		return "committed"
	default:
		return "idle"
	}
}

// FetchDoneMsg carries a finished background fetch. Apply must run on the
// event loop; it commits the view or returns the fetch error.
type FetchDoneMsg struct {
	apply func() error
}

// Apply completes the render cycle that issued the fetch.
func (m FetchDoneMsg) Apply() error {
	if m.apply == nil {
		return nil
	}
	return m.apply()
}

// ErrMsg reports a failed synchronous render.
type ErrMsg struct{ Err error }

// Error returns the wrapped error's message.
func (e ErrMsg) Error() string { return e.Err.Error() }

// load runs fetch and hands the result to done. In async mode fetch runs in a
// tea.Cmd and done runs later, when the host applies the FetchDoneMsg.
func load[T any](async bool, fetch func() (T, error), done func(T, error) error) tea.Cmd {
	if !async {
		if err := done(fetch()); err != nil {
			return func() tea.Msg { return ErrMsg{Err: err} }
		}
		return nil
	}
	return func() tea.Msg {
		v, err := fetch()
		return FetchDoneMsg{apply: func() error { return done(v, err) }}
	}
}

// routeParam returns the text after route in path, or "" if route is absent.
func routeParam(path, route string) string {
	idx := strings.Index(path, route)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(path[idx+len(route):])
}
