// Package driver wires the tool pipelines behind the CLI: tokenize,
// format and batch check.
package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"quiver/internal/lang"
)

// Батч-конвейер — такой же хост языка, как LSP-сервер или редактор.
func init() {
	lang.Register(lang.Default())
}

func isDiagramFile(path string) bool {
	_, ok := lang.ForPath(path)
	return ok
}

// collectDiagramFiles resolves files and directories (recursively) into a
// sorted, deduplicated list of diagram files.
func collectDiagramFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if isDiagramFile(path) {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		// Явно названный файл берём независимо от расширения.
		addFile(p)
	}

	sort.Strings(files)
	return files, nil
}
