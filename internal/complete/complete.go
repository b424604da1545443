// Package complete computes completion candidates for diagram source.
// Ranking and filtering are left to the host: editors match and sort by
// the replacement range themselves, so the provider always returns the
// full candidate set.
package complete

import (
	"sort"

	"quiver/internal/token"
)

// Span is the half-open byte range the host should replace with the
// accepted candidate's insert text.
type Span struct {
	Start int
	End   int
}

// Candidate is one completion item.
type Candidate struct {
	Label      string
	Detail     string
	InsertText string
	IsSnippet  bool // InsertText содержит ${n:...} табстопы
}

// Complete returns the replacement range for the word under offset and
// every known candidate: all keywords plus the diagram skeleton
// snippets. An offset outside [0, len(text)] is clamped.
func Complete(text string, offset int) (Span, []Candidate) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	start := offset
	for start > 0 && isWordByte(text[start-1]) {
		start--
	}
	end := offset
	for end < len(text) && isWordByte(text[end]) {
		end++
	}

	return Span{Start: start, End: end}, candidates()
}

func candidates() []Candidate {
	words := token.Keywords()
	sort.Strings(words)

	out := make([]Candidate, 0, len(words)+8)
	for _, w := range words {
		doc, _ := token.Doc(w)
		out = append(out, Candidate{
			Label:      w,
			Detail:     doc,
			InsertText: w,
		})
	}
	for _, s := range token.Snippets() {
		out = append(out, Candidate{
			Label:      s.Label,
			Detail:     s.Detail,
			InsertText: s.Body,
			IsSnippet:  true,
		})
	}
	return out
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
