package hover

import (
	"strings"
	"testing"
)

func TestHover_Keyword(t *testing.T) {
	text := "graph TD\n    subgraph cluster\n    end\n"
	offset := strings.Index(text, "subgraph") + 3
	doc, ok := Hover(text, offset)
	if !ok {
		t.Fatal("no hover for subgraph")
	}
	if !strings.Contains(doc, "subgraph") {
		t.Errorf("doc = %q", doc)
	}
}

func TestHover_IdentHasNoDoc(t *testing.T) {
	text := "graph TD\n    myNode --> other\n"
	offset := strings.Index(text, "myNode") + 2
	if doc, ok := Hover(text, offset); ok {
		t.Errorf("unexpected hover %q for identifier", doc)
	}
}

func TestHover_EdgeGlyph(t *testing.T) {
	text := "A --> B"
	offset := strings.Index(text, "-->") + 1
	doc, ok := Hover(text, offset)
	if !ok {
		t.Fatal("no hover for -->")
	}
	if !strings.Contains(doc, "-->") {
		t.Errorf("doc = %q", doc)
	}
}

func TestHover_GlyphTouchingIdent(t *testing.T) {
	// 'x' принадлежит глифу, хотя это и буква.
	text := "A--xB"
	offset := strings.Index(text, "x")
	doc, ok := Hover(text, offset)
	if !ok {
		t.Fatal("no hover for --x")
	}
	if !strings.Contains(doc, "--x") {
		t.Errorf("doc = %q", doc)
	}
}

func TestHover_WordBoundaries(t *testing.T) {
	text := "end"
	// Курсор сразу за словом всё ещё попадает в него.
	if _, ok := Hover(text, len(text)); !ok {
		t.Error("no hover at word end")
	}
	if _, ok := Hover(text, 0); !ok {
		t.Error("no hover at word start")
	}
}

func TestHover_OutOfRange(t *testing.T) {
	if _, ok := Hover("graph", -1); ok {
		t.Error("hover for negative offset")
	}
	if _, ok := Hover("graph", 99); ok {
		t.Error("hover past end of text")
	}
}

func TestHover_TextRun(t *testing.T) {
	text := `"label" 50`
	if doc, ok := Hover(text, 3); ok {
		t.Errorf("unexpected hover %q inside string label", doc)
	}
}
