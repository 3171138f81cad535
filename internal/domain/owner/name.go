package owner

import (
	"strings"
	"unicode/utf8"
)

// Normalize lowercases and trims a name so case variants of the same person
// collapse to one key.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Mask shortens every token after the first to the initial of the last token,
// e.g. "john smith" -> "john s.". Names with fewer than two tokens are
// returned unchanged, as is every name when enabled is false.
func Mask(name string, enabled bool) string {
	if !enabled {
		return name
	}

	tokens := strings.Fields(name)
	if len(tokens) < 2 {
		return name
	}

	last := tokens[len(tokens)-1]
	initial, _ := utf8.DecodeRuneInString(last)
	return tokens[0] + " " + string(initial) + "."
}

// Display normalizes then masks; used only when rendering.
func Display(name string, safe bool) string {
	return Mask(Normalize(name), safe)
}
