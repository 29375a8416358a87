// Package dom models the named content elements the screens render into.
package dom

// DefaultWidth is the element width assumed before the terminal reports one.
const DefaultWidth = 80

// Element is a named render target.
type Element struct {
	id      string
	content string
	version int
	width   int
}

// ID returns the element name.
func (e *Element) ID() string {
	return e.id
}

// Content returns the last committed content.
func (e *Element) Content() string {
	return e.content
}

// SetContent replaces the content and bumps the version.
func (e *Element) SetContent(content string) {
	e.content = content
	e.version++
}

// Version increases on every SetContent, so hosts can detect commits.
func (e *Element) Version() int {
	return e.version
}

// Width returns the layout width in columns.
func (e *Element) Width() int {
	if e.width <= 0 {
		return DefaultWidth
	}
	return e.width
}

// SetWidth records the layout width in columns.
func (e *Element) SetWidth(width int) {
	e.width = width
}

// Document owns the elements by id.
type Document struct {
	elements map[string]*Element
}

// NewDocument creates a document containing one empty element per id.
func NewDocument(ids ...string) *Document {
	doc := &Document{elements: make(map[string]*Element, len(ids))}
	for _, id := range ids {
		doc.elements[id] = &Element{id: id}
	}
	return doc
}

// ElementByID looks up an element.
func (d *Document) ElementByID(id string) (*Element, bool) {
	if d == nil {
		return nil, false
	}
	el, ok := d.elements[id]
	return el, ok
}
