package format

import "testing"

func TestFormat_Basic(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "flowchart body indents under header",
			in:   "graph TD\nA-->B\n",
			want: "graph TD\n    A-->B\n",
		},
		{
			name: "subgraph nests",
			in:   "graph TD\nsubgraph one\nA-->B\nend\nC-->D\n",
			want: "graph TD\n    subgraph one\n        A-->B\n    end\n    C-->D\n",
		},
		{
			name: "else stays on block level",
			in:   "sequenceDiagram\nalt ok\nA->>B: yes\nelse\nA->>B: no\nend\n",
			want: "sequenceDiagram\n    alt ok\n        A->>B: yes\n    else\n        A->>B: no\n    end\n",
		},
		{
			name: "stray end floors at column zero",
			in:   "graph TD\nA-->B\nend\nend\nC-->D\n",
			want: "graph TD\n    A-->B\nend\nend\nC-->D\n",
		},
		{
			name: "blank lines preserved empty",
			in:   "graph TD\n\nA-->B\n",
			want: "graph TD\n\n    A-->B\n",
		},
		{
			name: "class braces",
			in:   "classDiagram\nclass Animal {\n+move()\n}\n",
			want: "classDiagram\n    class Animal {\n        +move()\n    }\n",
		},
		{
			name: "comments follow current level",
			in:   "graph TD\n%% note\nA-->B\n",
			want: "graph TD\n    %% note\n    A-->B\n",
		},
		{
			name: "no trailing newline stays absent",
			in:   "graph TD\nA-->B",
			want: "graph TD\n    A-->B",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.in, Options{})
			if got != tt.want {
				t.Errorf("Format(%q) =\n%q\nwant\n%q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormat_Idempotent(t *testing.T) {
	inputs := []string{
		"graph TD\nsubgraph a\nA-->B\nend\n",
		"sequenceDiagram\nloop every minute\nA->>B: ping\nend\n",
		"gantt\ntitle plan\nsection phase\ntask : a1, 2024-01-01, 7d\n",
	}
	for _, in := range inputs {
		once := Format(in, Options{})
		twice := Format(once, Options{})
		if once != twice {
			t.Errorf("not idempotent:\nonce  %q\ntwice %q", once, twice)
		}
	}
}

func TestFormat_IndentWidth(t *testing.T) {
	got := Format("graph TD\nA-->B\n", Options{IndentWidth: 2})
	want := "graph TD\n  A-->B\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormat_Tabs(t *testing.T) {
	got := Format("graph TD\nA-->B\n", Options{UseTabs: true})
	want := "graph TD\n\tA-->B\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormat_MultilineStringUntouched(t *testing.T) {
	in := "graph TD\nA[\"first\nsecond line\"]\n"
	got := Format(in, Options{})
	want := "graph TD\n    A[\"first\nsecond line\"]\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormat_TrimsTrailingSpace(t *testing.T) {
	got := Format("graph TD   \nA-->B\t\n", Options{})
	want := "graph TD\n    A-->B\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
