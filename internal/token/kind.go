package token

// Kind represents the category of a diagram source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Comment represents a %%-to-end-of-line comment.
	Comment
	// StringLit represents a double-quoted string (possibly unterminated).
	StringLit
	// Keyword represents an identifier found in the keyword table.
	Keyword
	// Ident represents an identifier not found in the keyword table.
	Ident

	// Arrow represents an edge glyph run such as -->, -.-> or ==>.
	Arrow
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// Lt represents '<'.
	Lt // <
	// Gt represents '>'.
	Gt // >
	// Colon represents ':'.
	Colon // :
	// Semicolon represents ';'.
	Semicolon // ;
	// Amp represents '&'.
	Amp // &
	// Pipe represents '|'.
	Pipe // |

	// Whitespace represents a run of spaces or tabs.
	Whitespace
	// Text represents any other glyph run; never an error.
	Text
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Comment:    "Comment",
	StringLit:  "String",
	Keyword:    "Keyword",
	Ident:      "Ident",
	Arrow:      "Arrow",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
	LParen:     "LParen",
	RParen:     "RParen",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	Lt:         "Lt",
	Gt:         "Gt",
	Colon:      "Colon",
	Semicolon:  "Semicolon",
	Amp:        "Amp",
	Pipe:       "Pipe",
	Whitespace: "Whitespace",
	Text:       "Text",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// IsTrivia reports whether the token carries no structural meaning.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}
