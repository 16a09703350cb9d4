package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveErrorPage(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	storage, err := New(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	body := []byte("<html><body>The server is busy, please try again later.</body></html>")
	path, err := storage.SaveErrorPage("CR2025-123456", body)
	if err != nil {
		t.Fatalf("SaveErrorPage() failed: %v", err)
	}

	want := filepath.Join(tmpDir, "error_page_CR2025-123456.html")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading dump: %v", err)
	}
	if string(data) != string(body) {
		t.Error("dump should contain the full raw body")
	}
}

func TestSaveErrorPageOverwrites(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	storage, err := New(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	if _, err := storage.SaveErrorPage("CR2025-1", []byte("first")); err != nil {
		t.Fatal(err)
	}
	path, err := storage.SaveErrorPage("CR2025-1", []byte("second"))
	if err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "second" {
		t.Errorf("later run should overwrite the dump, got %q", data)
	}
}

func TestNewCreatesDataDir(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	nested := filepath.Join(tmpDir, "a", "b")
	if _, err := New(nested); err != nil {
		t.Fatalf("New() should create missing directories: %v", err)
	}
	if _, err := os.Stat(nested); err != nil {
		t.Errorf("data dir was not created: %v", err)
	}
}
