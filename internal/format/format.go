// Package format reindents diagram source. It never reorders, merges or
// splits lines: every line keeps its trimmed content and only the leading
// whitespace is rewritten. Formatting is idempotent.
package format

import (
	"strings"

	"quiver/internal/lexer"
	"quiver/internal/token"
)

// Options control the rewritten indentation.
type Options struct {
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	return o
}

// Format rewrites the indentation of src and returns the result. Input
// without a trailing newline keeps none; blank lines are preserved empty.
func Format(src string, opt Options) string {
	if src == "" {
		return src
	}
	hadFinalNewline := strings.HasSuffix(src, "\n")
	lines := strings.Split(strings.TrimSuffix(src, "\n"), "\n")

	w := NewWriter(opt, len(src))
	st := lexer.StateRoot
	for i, line := range lines {
		prev := st
		var spans []lexer.Span
		spans, st = lexer.Classify(line, st)

		if i > 0 {
			w.Newline()
		}
		// Продолжение многострочной строки не переотступаем.
		if prev == lexer.StateString {
			w.buf = append(w.buf, line...)
			w.atLineStart = false
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		word := firstWord(line, spans)
		if token.Closes(word) || strings.HasPrefix(trimmed, "}") {
			w.IndentPop()
		}
		w.WriteString(trimmed)
		if opensBlock(word, trimmed) {
			w.IndentPush()
		}
	}
	if hadFinalNewline {
		w.Newline()
	}
	return string(w.Bytes())
}

// opensBlock reports whether the next line should be one level deeper:
// the line starts with an opening keyword or ends with a brace block.
func opensBlock(word, trimmed string) bool {
	if token.Opens(word) {
		return true
	}
	return strings.HasSuffix(trimmed, "{")
}

// firstWord возвращает первое слово строки, либо "".
func firstWord(line string, spans []lexer.Span) string {
	for _, sp := range spans {
		switch sp.Kind {
		case token.Whitespace:
			continue
		case token.Keyword, token.Ident:
			return line[sp.Start:sp.End]
		default:
			return ""
		}
	}
	return ""
}
