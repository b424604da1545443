package lexer

import (
	"testing"

	"quiver/internal/source"
	"quiver/internal/token"
)

func tokenizeString(t *testing.T, content string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mmd", []byte(content))
	return Tokenize(fs.Get(id))
}

func TestTokenize_EndsWithEOF(t *testing.T) {
	tokens := tokenizeString(t, "graph TD\n    A-->B\n")
	if len(tokens) == 0 {
		t.Fatal("no tokens")
	}
	last := tokens[len(tokens)-1]
	if last.Kind != token.EOF {
		t.Fatalf("last token = %v, want EOF", last.Kind)
	}
	if last.Span.Start != last.Span.End {
		t.Errorf("EOF span = %v, want empty", last.Span)
	}
}

func TestTokenize_SkipsWhitespaceKeepsComments(t *testing.T) {
	tokens := tokenizeString(t, "graph TD %% header\n")
	for _, tok := range tokens {
		if tok.Kind == token.Whitespace {
			t.Errorf("whitespace token leaked: %v", tok)
		}
	}
	found := false
	for _, tok := range tokens {
		if tok.Kind == token.Comment {
			found = true
			if tok.Text != "%% header" {
				t.Errorf("comment text = %q", tok.Text)
			}
		}
	}
	if !found {
		t.Error("comment token missing")
	}
}

func TestTokenize_AbsoluteSpans(t *testing.T) {
	content := "graph TD\nA-->B\n"
	tokens := tokenizeString(t, content)
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			continue
		}
		if got := content[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Errorf("span %v resolves to %q, token text %q", tok.Span, got, tok.Text)
		}
	}
}

func TestTokenize_StringAcrossLines(t *testing.T) {
	tokens := tokenizeString(t, "A[\"multi\nline\"]\n")
	strings := 0
	for _, tok := range tokens {
		if tok.Kind == token.StringLit {
			strings++
		}
	}
	// Открытие на первой строке, продолжение на второй.
	if strings != 2 {
		t.Errorf("string tokens = %d, want 2", strings)
	}
}
