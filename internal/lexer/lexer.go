// Package lexer classifies diagram source lexically. Classify is the
// line-oriented two-state machine used for highlighting; Tokenize folds it
// over a whole file for the CLI and tests. Neither ever fails on malformed
// input.
package lexer

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"quiver/internal/source"
	"quiver/internal/token"
)

// Tokenize разбирает файл в поток токенов, протаскивая состояние лексера
// через границы строк. Пробельные спаны опускаются, комментарии остаются.
// Завершается токеном EOF.
func Tokenize(file *source.File) []token.Token {
	tokens := make([]token.Token, 0, 64)
	st := StateRoot

	content := string(file.Content)
	lineStart := 0
	for lineStart <= len(content) {
		lineEnd := strings.IndexByte(content[lineStart:], '\n')
		var line string
		if lineEnd < 0 {
			line = content[lineStart:]
		} else {
			line = content[lineStart : lineStart+lineEnd]
		}

		var spans []Span
		spans, st = Classify(line, st)
		base := u32(lineStart)
		for _, sp := range spans {
			if sp.Kind == token.Whitespace {
				continue
			}
			tokens = append(tokens, token.Token{
				Kind: sp.Kind,
				Span: source.Span{File: file.ID, Start: base + sp.Start, End: base + sp.End},
				Text: line[sp.Start:sp.End],
			})
		}

		if lineEnd < 0 {
			break
		}
		lineStart += lineEnd + 1
	}

	end, err := safecast.Conv[uint32](len(content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	tokens = append(tokens, token.Token{
		Kind: token.EOF,
		Span: source.Span{File: file.ID, Start: end, End: end},
	})
	return tokens
}
