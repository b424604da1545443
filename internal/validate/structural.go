package validate

import (
	"context"
	"fmt"
	"strings"

	"quiver/internal/diag"
	"quiver/internal/lexer"
	"quiver/internal/token"
)

// Structural is the built-in validator: a lexical-heuristic check that a
// buffer declares a known diagram kind, keeps subgraph-like blocks
// balanced, and terminates its strings. It is the default collaborator;
// hosts may inject a heavier semantic validator instead.
type Structural struct{}

// NewStructural returns the built-in structural validator.
func NewStructural() *Structural { return &Structural{} }

type lineInfo struct {
	number  int // 1-based
	text    string
	word    string // первое слово строки, "" если строка не со слова
	wordCol int    // 1-based колонка первого слова
}

// Validate implements Validator. The context is accepted for interface
// symmetry; the structural pass is synchronous and fast.
func (s *Structural) Validate(_ context.Context, text string) error {
	lines := strings.Split(text, "\n")

	st := lexer.StateRoot
	stringOpened := 0 // строка, где открылась незакрытая кавычка

	var significant []lineInfo
	for i, line := range lines {
		prev := st
		var spans []lexer.Span
		spans, st = lexer.Classify(line, st)
		if prev == lexer.StateRoot && st == lexer.StateString {
			stringOpened = i + 1
		}
		info, ok := significantLine(i+1, line, spans, prev)
		if ok {
			significant = append(significant, info)
		}
	}

	if st == lexer.StateString {
		return &Error{
			Code:    diag.ValUnterminatedString,
			Message: "unterminated string",
			Loc:     lineLoc(stringOpened, lines[stringOpened-1]),
		}
	}

	if len(significant) == 0 {
		// Пустой или комментарии: не ошибка, валидировать нечего.
		return nil
	}

	head := significant[0]
	if head.word == "" || !token.IsHeader(head.word) {
		return &Error{
			Code:    diag.ValNoHeader,
			Message: fmt.Sprintf("expected a diagram type declaration, got %q", firstWordOrText(head)),
			Loc:     lineLoc(head.number, head.text),
		}
	}

	depth := 0
	for _, info := range significant[1:] {
		switch {
		case info.word == "":
		case token.Closes(info.word) && token.Opens(info.word):
			// else/and: остаёмся на том же уровне
		case token.Closes(info.word):
			depth--
			if depth < 0 {
				return &Error{
					Code:    diag.ValUnbalancedEnd,
					Message: fmt.Sprintf("%q closes a block that was never opened", info.word),
					Loc:     wordLoc(info),
				}
			}
		case token.Opens(info.word) && !token.IsHeader(info.word):
			depth++
		}
	}
	if depth > 0 {
		last := significant[len(significant)-1]
		return &Error{
			Code:    diag.ValUnbalancedEnd,
			Message: fmt.Sprintf("%d block(s) not closed with %q", depth, "end"),
			Loc:     lineLoc(last.number, last.text),
		}
	}
	return nil
}

// significantLine выбирает строки, участвующие в структурной проверке:
// не пустые, не целиком комментарий, не продолжение строки в кавычках.
func significantLine(number int, text string, spans []lexer.Span, prev lexer.State) (lineInfo, bool) {
	if prev == lexer.StateString {
		return lineInfo{}, false
	}
	info := lineInfo{number: number, text: text}
	for _, sp := range spans {
		if sp.Kind.IsTrivia() {
			continue
		}
		// Первый непробельный и некомментарный спан делает строку значимой.
		if sp.Kind == token.Keyword || sp.Kind == token.Ident {
			info.word = text[sp.Start:sp.End]
			info.wordCol = int(sp.Start) + 1
		}
		return info, true
	}
	return lineInfo{}, false
}

func firstWordOrText(info lineInfo) string {
	if info.word != "" {
		return info.word
	}
	return strings.TrimSpace(info.text)
}

func lineLoc(number int, text string) *Loc {
	trimmed := strings.TrimLeft(text, " \t")
	first := len(text) - len(trimmed) + 1
	return &Loc{
		FirstLine: number,
		LastLine:  number,
		FirstCol:  first,
		LastCol:   len(text) + 1,
	}
}

func wordLoc(info lineInfo) *Loc {
	return &Loc{
		FirstLine: info.number,
		LastLine:  info.number,
		FirstCol:  info.wordCol,
		LastCol:   info.wordCol + len(info.word),
	}
}
