package diagfmt

import (
	"encoding/json"
	"io"

	"quiver/internal/diag"
)

type MarkerOutput struct {
	Path      string `json:"path,omitempty"`
	Severity  string `json:"severity"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	StartLine int    `json:"startLine"`
	StartCol  int    `json:"startCol"`
	EndLine   int    `json:"endLine"`
	EndCol    int    `json:"endCol"`
}

// MarkersJSON выводит маркеры одного файла в JSON.
func MarkersJSON(w io.Writer, path string, bag *diag.Bag, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}
	output := make([]MarkerOutput, 0, len(items))
	for _, m := range items {
		output = append(output, MarkerOutput{
			Path:      path,
			Severity:  m.Severity.String(),
			Code:      string(m.Code),
			Message:   m.Message,
			StartLine: m.StartLine,
			StartCol:  m.StartCol,
			EndLine:   m.EndLine,
			EndCol:    m.EndCol,
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
