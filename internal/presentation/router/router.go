// Package router dispatches navigation paths to views.
package router

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/tesso57/hnreader/internal/presentation/view"
)

// Route pairs a path pattern with the view that renders it.
type Route struct {
	Pattern string
	View    view.View
}

// Router matches paths against routes in registration order.
type Router struct {
	routes      []Route
	defaultView view.View
	log         zerolog.Logger
}

// New creates an empty router.
func New(logger zerolog.Logger) *Router {
	return new(Router{log: logger.With().Str("component", "router").Logger()})
}

// SetDefaultRoute sets the view rendered for an empty path.
func (r *Router) SetDefaultRoute(v view.View) {
	r.defaultView = v
}

// AddRoute registers v for paths containing pattern. Earlier routes win.
func (r *Router) AddRoute(pattern string, v view.View) {
	r.routes = append(r.routes, Route{Pattern: pattern, View: v})
}

// Routes returns a copy of the route table.
func (r *Router) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Dispatch renders the view for path and returns its command. An empty path
// (or a bare "#") renders the default view. A path no route matches is
// ignored and yields nil.
func (r *Router) Dispatch(path string) tea.Cmd {
	path = strings.TrimSpace(path)
	if path == "" || path == "#" {
		if r.defaultView == nil {
			r.log.Debug().Msg("empty path without default route")
			return nil
		}
		r.log.Debug().Msg("dispatch default route")
		return r.defaultView.Render("")
	}

	for _, route := range r.routes {
		if strings.Contains(path, route.Pattern) {
			r.log.Debug().Str("path", path).Str("pattern", route.Pattern).Msg("dispatch")
			return route.View.Render(path)
		}
	}

	r.log.Debug().Str("path", path).Msg("no route matched")
	return nil
}
