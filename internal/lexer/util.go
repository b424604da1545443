package lexer

import "quiver/internal/token"

// ===== Классификаторы байтов =====

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t'
}

// ASCII-идентификаторы; юникод в именах узлов попадает в Text,
// чего для подсветки достаточно.
func isWordStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isWordByte(b byte) bool {
	return isWordStartByte(b) || (b >= '0' && b <= '9')
}

// Стрелки начинаются с -, = или . и продолжаются глифами рёбер.
func isArrowStartByte(b byte) bool {
	return b == '-' || b == '=' || b == '.' || b == '~'
}

func isArrowByte(b byte) bool {
	switch b {
	case '-', '=', '.', '~', '>', '<', 'x', 'o':
		return true
	default:
		return false
	}
}

func delimKind(b byte) (token.Kind, bool) {
	switch b {
	case '[':
		return token.LBracket, true
	case ']':
		return token.RBracket, true
	case '(':
		return token.LParen, true
	case ')':
		return token.RParen, true
	case '{':
		return token.LBrace, true
	case '}':
		return token.RBrace, true
	case '<':
		return token.Lt, true
	case '>':
		return token.Gt, true
	case ':':
		return token.Colon, true
	case ';':
		return token.Semicolon, true
	case '&':
		return token.Amp, true
	case '|':
		return token.Pipe, true
	default:
		return token.Invalid, false
	}
}

func isKnownStartByte(line string, i int) bool {
	b := line[i]
	if isSpaceByte(b) || isWordStartByte(b) || isArrowStartByte(b) || b == '"' {
		return true
	}
	if b == '%' {
		return i+1 < len(line) && line[i+1] == '%'
	}
	_, ok := delimKind(b)
	return ok
}
