package lsp

import "testing"

func TestApplyChanges_FullReplace(t *testing.T) {
	got := applyChanges("old", []textDocumentContentChangeEvent{{Text: "new"}})
	if got != "new" {
		t.Errorf("got %q", got)
	}
}

func TestApplyChanges_Incremental(t *testing.T) {
	text := "graph TD\nA-->B\n"
	got := applyChanges(text, []textDocumentContentChangeEvent{
		{
			Range: &lspRange{
				Start: position{Line: 1, Character: 0},
				End:   position{Line: 1, Character: 1},
			},
			Text: "C",
		},
	})
	want := "graph TD\nC-->B\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApplyChanges_SequentialEdits(t *testing.T) {
	text := ""
	got := applyChanges(text, []textDocumentContentChangeEvent{
		{Text: "graph TD"},
		{
			Range: &lspRange{
				Start: position{Line: 0, Character: 8},
				End:   position{Line: 0, Character: 8},
			},
			Text: "\nA-->B",
		},
	})
	want := "graph TD\nA-->B"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOffsetForPosition_UTF16(t *testing.T) {
	// 𝕏 вне BMP: две UTF-16 единицы, четыре байта UTF-8.
	text := "a𝕏b\nc"
	tests := []struct {
		pos  position
		want int
	}{
		{position{Line: 0, Character: 0}, 0},
		{position{Line: 0, Character: 1}, 1},
		{position{Line: 0, Character: 3}, 5},
		{position{Line: 0, Character: 4}, 6},
		{position{Line: 1, Character: 0}, 7},
		{position{Line: 1, Character: 1}, 8},
		{position{Line: 9, Character: 0}, len(text)},
	}
	for _, tt := range tests {
		if got := offsetForPosition(text, tt.pos); got != tt.want {
			t.Errorf("offsetForPosition(%+v) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestPositionForOffset_RoundTrip(t *testing.T) {
	text := "graph TD\na𝕏b --> c\n"
	for offset := 0; offset <= len(text); offset++ {
		pos := positionForOffset(text, offset)
		back := offsetForPosition(text, pos)
		// Смещение внутри многобайтовой руны откатывается к её началу.
		if back > offset {
			t.Errorf("offset %d -> %+v -> %d", offset, pos, back)
		}
	}
	pos := positionForOffset(text, 9)
	if pos.Line != 1 || pos.Character != 0 {
		t.Errorf("positionForOffset(9) = %+v", pos)
	}
}
