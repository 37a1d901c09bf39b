package app

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func mustWrite(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("const x = 1;\n"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
}

func TestCollectJSFiles_Recursive(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "a.js"))
	mustWrite(t, filepath.Join(dir, "sub", "b.ts"))
	mustWrite(t, filepath.Join(dir, "sub", "c.txt"))

	helper := NewFileHelper()
	files, err := helper.CollectJSFiles([]string{dir}, true, nil, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sort.Strings(files)
	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "a.js" || filepath.Base(files[1]) != "b.ts" {
		t.Errorf("Unexpected files: %v", files)
	}
}

func TestCollectJSFiles_NonRecursive(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "a.js"))
	mustWrite(t, filepath.Join(dir, "sub", "b.js"))

	helper := NewFileHelper()
	files, err := helper.CollectJSFiles([]string{dir}, false, nil, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("Expected 1 file, got %v", files)
	}
}

func TestCollectJSFiles_ExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "a.js"))
	mustWrite(t, filepath.Join(dir, "node_modules", "dep", "index.js"))
	mustWrite(t, filepath.Join(dir, "app.min.js"))

	helper := NewFileHelper()
	files, err := helper.CollectJSFiles([]string{dir}, true, nil, []string{"node_modules", "*.min.js"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "a.js" {
		t.Errorf("Expected only a.js, got %v", files)
	}
}

func TestResolveFilePaths_PassesThroughFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.js")
	mustWrite(t, a)

	helper := NewFileHelper()
	files, err := ResolveFilePaths(helper, []string{a}, true, nil, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(files) != 1 || files[0] != a {
		t.Errorf("Expected direct file path pass-through, got %v", files)
	}
}

func TestCollectJSFiles_MissingPath(t *testing.T) {
	helper := NewFileHelper()
	if _, err := helper.CollectJSFiles([]string{"/no/such/path"}, true, nil, nil); err == nil {
		t.Error("Expected error for missing path")
	}
}
