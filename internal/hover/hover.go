// Package hover resolves the word or edge glyph under a cursor offset to
// its documentation.
package hover

import (
	"golang.org/x/text/unicode/norm"

	"quiver/internal/token"
)

// Hover returns Markdown documentation for the keyword or edge glyph
// covering offset. The second return is false when nothing under the
// cursor is documented (identifiers, text, whitespace).
func Hover(text string, offset int) (string, bool) {
	if offset < 0 || offset > len(text) {
		return "", false
	}

	if word, ok := runAt(text, offset, isWordByte); ok {
		// Нормализуем, чтобы сработал поиск по составным символам.
		if doc, found := token.Doc(norm.NFC.String(word)); found {
			return doc, true
		}
	}
	// x и o бывают хвостом глифа ("--x"), поэтому проверяем глиф и после
	// неудачного поиска слова.
	if glyph, ok := runAt(text, offset, isGlyphByte); ok {
		if doc, found := token.Doc(glyph); found {
			return doc, true
		}
	}
	return "", false
}

// runAt expands offset to the maximal run of bytes matching pred. The
// cursor counts as inside a run when the run touches it on either side.
func runAt(text string, offset int, pred func(byte) bool) (string, bool) {
	start := offset
	for start > 0 && pred(text[start-1]) {
		start--
	}
	end := offset
	for end < len(text) && pred(text[end]) {
		end++
	}
	if start == end {
		return "", false
	}
	return text[start:end], true
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

func isGlyphByte(b byte) bool {
	switch b {
	case '-', '=', '.', '~', '>', '<', 'x', 'o':
		return true
	}
	return false
}
