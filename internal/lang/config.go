// Package lang holds the static language metadata a host editing surface
// needs to embed the diagram language: comment syntax, bracket pairs,
// auto-closing pairs, and a process-wide idempotent registry.
package lang

// Pair is an auto-closing or bracket pair.
type Pair struct {
	Open  string
	Close string
}

// Config is the immutable language descriptor. Registered at most once
// per process per ID.
type Config struct {
	ID          string
	Extensions  []string
	LineComment string
	Brackets    []Pair
	AutoClosing []Pair
}

// Default returns the descriptor for Mermaid-style diagram source.
func Default() Config {
	return Config{
		ID:          "mermaid",
		Extensions:  []string{".mmd", ".mermaid"},
		LineComment: "%%",
		Brackets: []Pair{
			{Open: "[", Close: "]"},
			{Open: "(", Close: ")"},
			{Open: "{", Close: "}"},
		},
		AutoClosing: []Pair{
			{Open: "[", Close: "]"},
			{Open: "(", Close: ")"},
			{Open: "{", Close: "}"},
			{Open: `"`, Close: `"`},
		},
	}
}
