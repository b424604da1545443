package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"quiver/internal/diag"
	"quiver/internal/validate"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckPaths_MixedResults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.mmd", "graph TD\n    A-->B\n")
	writeFile(t, dir, "bad.mmd", "A-->B\n")
	writeFile(t, dir, "ignored.txt", "not a diagram")

	results, err := CheckPaths(context.Background(), []string{dir}, CheckOptions{Jobs: 4})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2 (txt ignored)", len(results))
	}

	// Результаты в отсортированном порядке путей.
	if filepath.Base(results[0].Path) != "bad.mmd" {
		t.Errorf("first result = %s", results[0].Path)
	}
	if !results[0].Bag.HasErrors() {
		t.Error("bad.mmd passed validation")
	}
	if got := results[0].Bag.Items()[0].Code; got != diag.ValNoHeader {
		t.Errorf("code = %s", got)
	}
	if results[1].Bag.HasErrors() {
		t.Errorf("good.mmd failed: %+v", results[1].Bag.Items())
	}
}

func TestCheckPaths_MissingPath(t *testing.T) {
	_, err := CheckPaths(context.Background(), []string{"/no/such/path"}, CheckOptions{})
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestCheckPaths_NoDiagramFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "readme.txt", "hello")
	_, err := CheckPaths(context.Background(), []string{dir}, CheckOptions{})
	if err == nil {
		t.Fatal("expected error when nothing to check")
	}
}

func TestCheckPaths_WithCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.mmd", "graph TD\n    A-->B\n")
	cache, err := validate.OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}

	for range 2 {
		results, err := CheckPaths(context.Background(), []string{dir}, CheckOptions{Cache: cache})
		if err != nil {
			t.Fatal(err)
		}
		if results[0].Bag.HasErrors() {
			t.Errorf("unexpected errors: %+v", results[0].Bag.Items())
		}
	}
}

func TestCheckPaths_ExplicitFileAnyExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "diagram.txt", "graph TD\n    A-->B\n")
	results, err := CheckPaths(context.Background(), []string{path}, CheckOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d", len(results))
	}
	if results[0].Bag.HasErrors() {
		t.Errorf("explicit file failed: %+v", results[0].Bag.Items())
	}
}
