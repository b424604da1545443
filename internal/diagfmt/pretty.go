package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"quiver/internal/diag"
	"quiver/internal/source"
)

// Pretty форматирует маркеры в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого маркера печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку с контекстом и подчёркивание ^~~~ по колонкам.
// Цвет включается опцией.
func Pretty(w io.Writer, file *source.File, bag *diag.Bag, opts PrettyOpts) {
	path := displayPath(file, opts.PathMode)
	for _, m := range bag.Items() {
		writeHeader(w, path, m, opts)
		writeContext(w, file, m, opts)
	}
}

func writeHeader(w io.Writer, path string, m diag.Marker, opts PrettyOpts) {
	sev := m.Severity.String()
	if opts.Color {
		sev = severityColor(m.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, m.StartLine, m.StartCol, sev, m.Code, m.Message)
}

func writeContext(w io.Writer, file *source.File, m diag.Marker, opts PrettyOpts) {
	if file == nil || m.StartLine < 1 {
		return
	}
	line := file.GetLine(uint32(m.StartLine))
	line = strings.TrimRight(line, "\r\n")
	if opts.Width > 0 {
		line = runewidth.Truncate(line, int(opts.Width), "…")
	}
	fmt.Fprintf(w, "    %s\n", line)

	// Подчёркивание строим по видимой ширине префикса, табы и широкие
	// руны иначе сдвигают каретку.
	start := m.StartCol - 1
	if start < 0 || start > len(line) {
		return
	}
	end := m.EndCol - 1
	if m.EndLine != m.StartLine || end > len(line) {
		end = len(line)
	}
	if end <= start {
		end = start + 1
	}
	pad := runewidth.StringWidth(line[:start])
	span := 1
	if start < len(line) {
		span = runewidth.StringWidth(line[start:min(end, len(line))])
	}
	if span < 1 {
		span = 1
	}
	underline := "^" + strings.Repeat("~", span-1)
	if opts.Color {
		underline = severityColor(m.Severity).Sprint(underline)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), underline)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func displayPath(file *source.File, mode PathMode) string {
	if file == nil {
		return "<buffer>"
	}
	path := file.Path
	switch mode {
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	case PathModeRelative, PathModeAuto:
		if wd, err := filepath.Abs("."); err == nil {
			if rel, err := filepath.Rel(wd, path); err == nil && !strings.HasPrefix(rel, "..") {
				return rel
			}
		}
	}
	return path
}
