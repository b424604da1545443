package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"quiver/internal/diag"
	"quiver/internal/source"
	"quiver/internal/token"
)

func TestMarkersJSON(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.Marker{
		Severity:  diag.SevError,
		Code:      diag.ValNoHeader,
		Message:   "no header",
		StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 6,
	})
	bag.Add(diag.FallbackMarker(diag.ValSyntax, "second"))

	var buf bytes.Buffer
	if err := MarkersJSON(&buf, "flow.mmd", bag, JSONOpts{Max: 1}); err != nil {
		t.Fatal(err)
	}

	var out []MarkerOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("out = %+v, want Max applied", out)
	}
	m := out[0]
	if m.Path != "flow.mmd" || m.Severity != "ERROR" || m.Code != "VAL0002" {
		t.Errorf("marker = %+v", m)
	}
	if m.StartLine != 1 || m.EndCol != 6 {
		t.Errorf("coordinates = %+v", m)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<test>", []byte("graph TD\n"))
	tokens := []token.Token{
		{Kind: token.Keyword, Text: "graph", Span: source.Span{File: id, Start: 0, End: 5}},
		{Kind: token.EOF, Span: source.Span{File: id, Start: 9, End: 9}},
		{Kind: token.Invalid}, // после EOF вывод обрывается
	}

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, `"graph" at 1:1-1:6`) {
		t.Errorf("output missing keyword position:\n%s", out)
	}
	if strings.Contains(out, "Invalid") {
		t.Errorf("output continued past EOF:\n%s", out)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	tokens := []token.Token{
		{Kind: token.Keyword, Text: "graph", Span: source.Span{Start: 0, End: 5}},
		{Kind: token.EOF, Span: source.Span{Start: 9, End: 9}},
	}

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}

	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("out = %+v", out)
	}
	if out[0].Kind != "Keyword" || out[0].Text != "graph" {
		t.Errorf("first = %+v", out[0])
	}
	if out[1].Kind != "EOF" {
		t.Errorf("last = %+v", out[1])
	}
}
