package view

import (
	"fmt"

	"github.com/tesso57/hnreader/internal/presentation/dom"
	"github.com/tesso57/hnreader/internal/presentation/template"
)

// Base holds the template, container and fragment buffer of a view.
// Concrete views embed it and drive Begin, SetPlaceholder, Commit or Abort.
type Base struct {
	tmpl      *template.Template
	container *dom.Element
	fragments template.Fragments
	phase     Phase
}

// NewBase binds a template to the element containerID of doc.
func NewBase(doc *dom.Document, containerID, source string) (*Base, error) {
	el, ok := doc.ElementByID(containerID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrContainerNotFound, containerID)
	}
	return new(Base{tmpl: template.New(source), container: el}), nil
}

// Phase returns the current render phase.
func (b *Base) Phase() Phase {
	return b.phase
}

// Container returns the bound element.
func (b *Base) Container() *dom.Element {
	return b.container
}

// Begin starts a render cycle. It reports false while a cycle is already building.
func (b *Base) Begin() bool {
	if b.phase == PhaseBuilding {
		return false
	}
	b.tmpl.Reset()
	b.fragments.Flush()
	b.phase = PhaseBuilding
	return true
}

// SetPlaceholder replaces the first {{__key__}} in the working template.
func (b *Base) SetPlaceholder(key, value string) {
	b.tmpl.Set(key, value)
}

// AppendFragment buffers repeated markup.
func (b *Base) AppendFragment(fragment string) {
	b.fragments.Append(fragment)
}

// FlushFragments returns the buffered markup and clears the buffer.
func (b *Base) FlushFragments() string {
	return b.fragments.Flush()
}

// Commit writes the working template to the container and resets it.
func (b *Base) Commit() {
	b.container.SetContent(b.tmpl.String())
	b.tmpl.Reset()
	b.phase = PhaseCommitted
}

// Abort drops the cycle. The container keeps its previous content.
func (b *Base) Abort() {
	b.tmpl.Reset()
	b.fragments.Flush()
	b.phase = PhaseIdle
}
