package driver

import (
	"bytes"
	"context"
	"errors"
	"os"

	"quiver/internal/format"
)

// FormatOptions configures diagram formatting.
type FormatOptions struct {
	Check   bool
	Stdout  bool
	Options format.Options
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Err       error
	Formatted []byte
}

// FormatPaths formats provided files or directories (recursively
// collecting diagram files). When opts.Check is true, files are not
// modified; Changed indicates whether formatting would update the file.
// When opts.Stdout is true, formatted content is returned in the results
// without touching files on disk.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := collectDiagramFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no diagram files found")
	}

	results := make([]FormatResult, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := FormatResult{Path: path}
		data, err := os.ReadFile(path)
		if err != nil {
			result.Err = err
			results = append(results, result)
			continue
		}
		formatted := []byte(format.Format(string(data), opts.Options))
		changed := !bytes.Equal(data, formatted)

		if opts.Check {
			result.Changed = changed
			results = append(results, result)
			continue
		}

		if opts.Stdout {
			result.Formatted = formatted
			result.Changed = changed
			results = append(results, result)
			continue
		}

		if changed {
			mode := os.FileMode(0o644)
			if info, statErr := os.Stat(path); statErr == nil {
				mode = info.Mode()
			}
			if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
				result.Err = err
			} else {
				result.Changed = true
			}
		}
		results = append(results, result)
	}

	return results, nil
}
