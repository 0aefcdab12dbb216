package fs

import (
	"errors"
	iofs "io/fs"
	"testing"
)

func TestBillyFileSystem_CopyFile(t *testing.T) {
	fsys := NewMemoryFileSystem()

	if err := fsys.WriteFile("src/sidebar.css", []byte(".sidebar{}"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := fsys.CopyFile("src/sidebar.css", "_site/sidebar.css"); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	data, err := fsys.ReadFile("_site/sidebar.css")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != ".sidebar{}" {
		t.Errorf("copied content = %q", data)
	}

	if err := fsys.WriteFile("src/sidebar.css", []byte(".sidebar{width:1px}"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := fsys.CopyFile("src/sidebar.css", "_site/sidebar.css"); err != nil {
		t.Fatalf("CopyFile() over existing error = %v", err)
	}
	data, _ = fsys.ReadFile("_site/sidebar.css")
	if string(data) != ".sidebar{width:1px}" {
		t.Errorf("overwritten content = %q", data)
	}

	entries, err := fsys.ReadDir("_site")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "sidebar.css" {
		t.Errorf("_site should only contain sidebar.css, got %v", entries)
	}
}

func TestBillyFileSystem_MissingFile(t *testing.T) {
	fsys := NewMemoryFileSystem()

	if fsys.FileExists("nope.md") {
		t.Error("FileExists() = true for missing file")
	}
	if _, err := fsys.Stat("nope.md"); !errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("Stat() error = %v, want not-exist", err)
	}
	if err := fsys.CopyFile("nope.md", "out.md"); err == nil {
		t.Error("CopyFile() expected error for missing source")
	}
}
