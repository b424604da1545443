// Package validate defines the semantic-validator contract consumed by
// the live diagnostics pipeline, the built-in structural validator, and a
// disk cache of validation outcomes.
package validate

import (
	"context"

	"quiver/internal/diag"
)

// Loc is a 1-based, inclusive error location inside diagram source.
type Loc struct {
	FirstLine int
	LastLine  int
	FirstCol  int
	LastCol   int
}

// Error is a validation failure. Loc is optional: validators that cannot
// locate the problem leave it nil and the consumer anchors at (1,1).
type Error struct {
	Code    diag.Code
	Message string
	Loc     *Loc
}

func (e *Error) Error() string { return e.Message }

// Validator checks whole diagram source. A nil return means the source is
// valid; failures are *Error values, never panics.
type Validator interface {
	Validate(ctx context.Context, text string) error
}

// Func adapts a function to the Validator interface.
type Func func(ctx context.Context, text string) error

func (f Func) Validate(ctx context.Context, text string) error { return f(ctx, text) }

// Marker converts a validation failure into exactly one marker. A nil
// location falls back to the document-start anchor.
func Marker(err *Error) diag.Marker {
	code := err.Code
	if code == "" {
		code = diag.ValSyntax
	}
	if err.Loc == nil {
		return diag.FallbackMarker(code, err.Message)
	}
	return diag.Marker{
		Severity:  diag.SevError,
		Code:      code,
		Message:   err.Message,
		StartLine: err.Loc.FirstLine,
		StartCol:  err.Loc.FirstCol,
		EndLine:   err.Loc.LastLine,
		EndCol:    err.Loc.LastCol,
	}
}
