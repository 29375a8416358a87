// Package textutil provides small formatting helpers for terminal text.
package textutil

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SingleLine collapses whitespace into single spaces.
func SingleLine(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}

// Truncate trims a string to the given width with an ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, "...")
}

// Count formats n with unit, pluralised with a trailing s.
func Count(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}

// EntryKey returns the digit key that opens the index-th entry of a page:
// 1 through 9, then 0 for the tenth. Later entries have no key.
func EntryKey(index int) (string, bool) {
	switch {
	case index < 0 || index > 9:
		return "", false
	case index == 9:
		return "0", true
	default:
		return strconv.Itoa(index + 1), true
	}
}

// EntryIndex is the inverse of EntryKey.
func EntryIndex(key string) (int, bool) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return 0, false
	}
	if key == "0" {
		return 9, true
	}
	return int(key[0] - '1'), true
}
