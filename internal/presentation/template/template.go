// Package template substitutes {{__key__}} placeholders in screen templates.
package template

import "strings"

// Token returns the placeholder token for key.
func Token(key string) string {
	return "{{__" + key + "__}}"
}

// Template is an immutable source text plus a working copy that placeholders
// are substituted into.
type Template struct {
	source  string
	working string
}

// New constructs a Template whose working copy equals source.
func New(source string) *Template {
	return new(Template{source: source, working: source})
}

// Set replaces the first occurrence of key's token with value.
// Unknown keys are ignored.
func (t *Template) Set(key, value string) {
	t.working = strings.Replace(t.working, Token(key), value, 1)
}

// String returns the working copy.
func (t *Template) String() string {
	return t.working
}

// Source returns the original text.
func (t *Template) Source() string {
	return t.source
}

// Reset restores the working copy to the source.
func (t *Template) Reset() {
	t.working = t.source
}

// Fragments accumulates repeated markup in insertion order.
type Fragments struct {
	parts []string
}

// Append adds a fragment.
func (f *Fragments) Append(fragment string) {
	f.parts = append(f.parts, fragment)
}

// Len returns the number of buffered fragments.
func (f *Fragments) Len() int {
	return len(f.parts)
}

// Flush returns the concatenated fragments and empties the buffer.
func (f *Fragments) Flush() string {
	out := strings.Join(f.parts, "")
	f.parts = f.parts[:0]
	return out
}
