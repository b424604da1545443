package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"quiver/internal/token"
)

// State is the lexer state carried between lines.
type State uint8

const (
	// StateRoot is the default state.
	StateRoot State = iota
	// StateString is active inside a double-quoted string.
	StateString
)

func (s State) String() string {
	switch s {
	case StateRoot:
		return "root"
	case StateString:
		return "string"
	}
	return "unknown"
}

// Span is one classified segment of a line. Offsets are byte positions
// within the line; spans are contiguous and cover the line exactly.
type Span struct {
	Kind  token.Kind
	Start uint32
	End   uint32
}

// Classify разбивает одну строку на подсвечиваемые спаны.
// Тотальная и чистая: никогда не падает, конкатенация спанов
// восстанавливает строку байт в байт.
func Classify(line string, st State) ([]Span, State) {
	if line == "" {
		return nil, st
	}
	spans := make([]Span, 0, 8)
	i := 0
	for i < len(line) {
		start := i
		var kind token.Kind
		switch {
		case st == StateString:
			i, st = scanStringTail(line, i)
			kind = token.StringLit

		case line[i] == '%' && i+1 < len(line) && line[i+1] == '%':
			// Комментарий до конца строки.
			i = len(line)
			kind = token.Comment

		case line[i] == '"':
			i, st = scanStringTail(line, i+1)
			kind = token.StringLit

		case isSpaceByte(line[i]):
			for i < len(line) && isSpaceByte(line[i]) {
				i++
			}
			kind = token.Whitespace

		case isWordStartByte(line[i]):
			for i < len(line) && isWordByte(line[i]) {
				i++
			}
			kind, _ = token.LookupKeyword(line[start:i])

		case isArrowStartByte(line[i]):
			for i < len(line) && isArrowByte(line[i]) {
				i++
			}
			kind = token.Arrow

		default:
			if k, ok := delimKind(line[i]); ok {
				i++
				kind = k
			} else {
				for i < len(line) && !isKnownStartByte(line, i) {
					i++
				}
				kind = token.Text
			}
		}
		spans = appendSpan(spans, kind, start, i)
	}
	return spans, st
}

// scanStringTail ест содержимое строки после открывающей кавычки.
// Возвращает позицию после закрывающей кавычки (или конец строки) и
// новое состояние.
func scanStringTail(line string, i int) (int, State) {
	for i < len(line) {
		b := line[i]
		if b == '\\' {
			i += 2
			if i > len(line) {
				i = len(line)
			}
			continue
		}
		i++
		if b == '"' {
			return i, StateRoot
		}
	}
	// Кавычка не закрыта — состояние переносится на следующую строку.
	return i, StateString
}

func appendSpan(spans []Span, kind token.Kind, start, end int) []Span {
	if end <= start {
		return spans
	}
	// Смежные спаны одного вида склеиваем (text, строки из нескольких кусков).
	if n := len(spans); n > 0 && spans[n-1].Kind == kind && spans[n-1].End == u32(start) {
		spans[n-1].End = u32(end)
		return spans
	}
	return append(spans, Span{Kind: kind, Start: u32(start), End: u32(end)})
}

func u32(v int) uint32 {
	out, err := safecast.Conv[uint32](v)
	if err != nil {
		panic(fmt.Errorf("span offset overflow: %w", err))
	}
	return out
}
