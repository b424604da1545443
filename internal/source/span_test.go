package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 5, End: 10}
	b := Span{File: 0, Start: 2, End: 7}

	got := a.Cover(b)
	if got.Start != 2 || got.End != 10 {
		t.Errorf("Cover = %v", got)
	}

	other := Span{File: 1, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("cross-file Cover = %v, want unchanged", got)
	}
}

func TestSpanEmptyLen(t *testing.T) {
	s := Span{Start: 3, End: 3}
	if !s.Empty() || s.Len() != 0 {
		t.Errorf("empty span: Empty=%v Len=%d", s.Empty(), s.Len())
	}
	s.End = 8
	if s.Empty() || s.Len() != 5 {
		t.Errorf("span: Empty=%v Len=%d", s.Empty(), s.Len())
	}
}
