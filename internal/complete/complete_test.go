package complete

import (
	"strings"
	"testing"
)

func findCandidate(items []Candidate, label string) (Candidate, bool) {
	for _, c := range items {
		if c.Label == label {
			return c, true
		}
	}
	return Candidate{}, false
}

func TestComplete_PartialWord(t *testing.T) {
	text := "gra"
	span, items := Complete(text, 3)
	if span.Start != 0 || span.End != 3 {
		t.Errorf("span = %+v, want 0..3", span)
	}
	c, ok := findCandidate(items, "graph")
	if !ok {
		t.Fatal("graph candidate missing")
	}
	if c.InsertText != "graph" {
		t.Errorf("InsertText = %q", c.InsertText)
	}
	if c.IsSnippet {
		t.Error("keyword candidate marked as snippet")
	}
}

func TestComplete_CursorInsideWord(t *testing.T) {
	text := "graph TD"
	// Курсор между 'r' и 'a': слово целиком попадает в диапазон замены.
	span, _ := Complete(text, 2)
	if span.Start != 0 || span.End != 5 {
		t.Errorf("span = %+v, want 0..5", span)
	}
}

func TestComplete_OnWhitespace(t *testing.T) {
	text := "graph TD\n    "
	span, items := Complete(text, len(text))
	if span.Start != span.End {
		t.Errorf("span = %+v, want empty at cursor", span)
	}
	if len(items) == 0 {
		t.Fatal("no candidates on whitespace")
	}
	// Набор не фильтруется по контексту.
	if _, ok := findCandidate(items, "sequenceDiagram"); !ok {
		t.Error("sequenceDiagram missing from unfiltered set")
	}
}

func TestComplete_SnippetCandidates(t *testing.T) {
	_, items := Complete("", 0)
	c, ok := findCandidate(items, "flowchart")
	if !ok {
		t.Fatal("flowchart entries missing")
	}
	_ = c

	snippet, ok := findCandidate(items, "sequence")
	if !ok {
		t.Fatal("sequence snippet missing")
	}
	if !snippet.IsSnippet {
		t.Error("snippet not marked IsSnippet")
	}
	if !strings.Contains(snippet.InsertText, "${1:") {
		t.Errorf("snippet body lost tab stops: %q", snippet.InsertText)
	}
	if !strings.Contains(snippet.InsertText, "sequenceDiagram") {
		t.Errorf("snippet body = %q", snippet.InsertText)
	}
}

func TestComplete_OffsetClamped(t *testing.T) {
	span, items := Complete("end", 99)
	if span.Start != 0 || span.End != 3 {
		t.Errorf("span = %+v, want whole word", span)
	}
	if len(items) == 0 {
		t.Error("no candidates")
	}

	span, _ = Complete("end", -5)
	if span.Start != 0 || span.End != 3 {
		t.Errorf("span for negative offset = %+v", span)
	}
}
