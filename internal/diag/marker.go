package diag

import "fmt"

// Marker is a position-anchored diagnostic annotation rendered by the
// host editing surface. Coordinates are 1-based and inclusive, in the
// host's coordinate space.
type Marker struct {
	Severity  Severity
	Code      Code
	Message   string
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// FallbackMarker anchors a message at the document start. Used when a
// validator reports no location; the (1,1) anchor is part of the
// behavioral contract.
func FallbackMarker(code Code, msg string) Marker {
	return Marker{
		Severity:  SevError,
		Code:      code,
		Message:   msg,
		StartLine: 1,
		StartCol:  1,
		EndLine:   1,
		EndCol:    1,
	}
}

func (m Marker) String() string {
	return fmt.Sprintf("%d:%d-%d:%d %s %s: %s",
		m.StartLine, m.StartCol, m.EndLine, m.EndCol, m.Severity, m.Code, m.Message)
}
