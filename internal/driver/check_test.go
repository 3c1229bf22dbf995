package driver

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"typelint/internal/diag"
	"typelint/internal/source"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestCheckFile_FlagsUnusedReturn(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.tl", []byte(
		"function doSomething(): number { return 1; }\ndoSomething();\n"))

	result, err := CheckFile(fs, fileID, CheckOpts{})
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if result.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", result.Bag.Items())
	}
	items := result.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.LintUnusedReturn {
		t.Errorf("expected one LNT4001, got %v", items)
	}
}

func TestCheckFile_UnknownRule(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.tl", []byte("let x = 1;\n"))
	if _, err := CheckFile(fs, fileID, CheckOpts{Rules: []string{"bogus"}}); err == nil {
		t.Errorf("expected an error for an unknown rule")
	}
}

func TestCheckDir_WalksAndOrders(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"b.tl":        "function f(): number { return 1; }\nf();\n",
		"a.tl":        "let x = 1;\n",
		"sub/c.tl":    "let y = 2;\n",
		"ignored.txt": "not analyzed",
	})

	var seen []string
	_, results, err := CheckDir(context.Background(), dir, CheckOpts{
		Jobs:   2,
		OnFile: func(path string) { seen = append(seen, path) },
	})
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	// Results follow path order regardless of scheduling.
	wantOrder := []string{
		filepath.Join(dir, "a.tl"),
		filepath.Join(dir, "b.tl"),
		filepath.Join(dir, "sub", "c.tl"),
	}
	for i, want := range wantOrder {
		if results[i].Path != want {
			t.Errorf("result %d: got %q, want %q", i, results[i].Path, want)
		}
	}

	if results[1].Bag.Len() != 1 {
		t.Errorf("b.tl must carry one diagnostic, got %d", results[1].Bag.Len())
	}

	sort.Strings(seen)
	if len(seen) != 3 {
		t.Errorf("OnFile must fire per analyzed file, got %v", seen)
	}
}

func TestCheckDir_EmptyDir(t *testing.T) {
	_, results, err := CheckDir(context.Background(), t.TempDir(), CheckOpts{})
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestCheckDir_UsesCache(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.tl": "function f(): number { return 1; }\nf();\n",
	})
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	opts := CheckOpts{Cache: cache}

	_, first, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("first CheckDir: %v", err)
	}
	_, second, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("second CheckDir: %v", err)
	}

	if first[0].Bag.Len() != second[0].Bag.Len() {
		t.Fatalf("cached diagnostics differ: %d vs %d", first[0].Bag.Len(), second[0].Bag.Len())
	}
	// A cache hit skips the pipeline, so the second run has no AST.
	if second[0].Builder != nil {
		t.Errorf("expected the second run to be served from cache")
	}
	if second[0].Bag.Items()[0].Code != diag.LintUnusedReturn {
		t.Errorf("cached diagnostic code lost")
	}
}

func TestListFiles_SortedAndFiltered(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"z.tl":      "",
		"a.tl":      "",
		"deep/x.tl": "",
		"skip.go":   "",
	})
	files, err := ListFiles(dir)
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %v", files)
	}
	if !sort.StringsAreSorted(files) {
		t.Errorf("files must be sorted: %v", files)
	}
}
