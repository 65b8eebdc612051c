package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppend_CreatesFile(t *testing.T) {
	store := New(t.TempDir(), "note.txt")

	if store.Exists() {
		t.Fatal("note file should not exist before first append")
	}
	if err := store.Append("hello"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if !store.Exists() {
		t.Error("note file should exist after append")
	}

	data, err := store.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("Expected stored bytes %q, got %q", "hello", string(data))
	}
}

func TestAppend_NoSeparatorAdded(t *testing.T) {
	store := New(t.TempDir(), "note.txt")

	if err := store.Append("abc"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := store.Append("def"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	data, _ := store.Read()
	if string(data) != "abcdef" {
		t.Errorf("Expected concatenated bytes %q, got %q", "abcdef", string(data))
	}
}

func TestAppend_EmptyStringCreatesFile(t *testing.T) {
	store := New(t.TempDir(), "note.txt")

	if err := store.Append(""); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if !store.Exists() {
		t.Error("note file should exist after empty append")
	}
	if store.Size() != 0 {
		t.Errorf("Expected size 0, got %d", store.Size())
	}
}

func TestAppend_CreatesMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "deep", "root")
	store := New(root, "note.txt")

	if err := store.Append("x"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	data, _ := store.Read()
	if string(data) != "x" {
		t.Errorf("Expected %q, got %q", "x", string(data))
	}
}

func TestClear_TruncatesFile(t *testing.T) {
	store := New(t.TempDir(), "note.txt")

	if err := store.Append("some text"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	if !store.Exists() {
		t.Error("note file should still exist after clear")
	}
	if store.Size() != 0 {
		t.Errorf("Expected size 0 after clear, got %d", store.Size())
	}
}

func TestClear_CreatesMissingFile(t *testing.T) {
	store := New(t.TempDir(), "note.txt")

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if !store.Exists() {
		t.Error("note file should exist after clear of missing file")
	}
}

func TestContent_MissingFile(t *testing.T) {
	store := New(t.TempDir(), "note.txt")

	if got := store.Content(); got != "" {
		t.Errorf("Expected empty content for missing file, got %q", got)
	}
}

func TestContent_EmptyFile(t *testing.T) {
	store := New(t.TempDir(), "note.txt")

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if got := store.Content(); got != "" {
		t.Errorf("Expected empty content for empty file, got %q", got)
	}
}

func TestContent_TrailingNewlineNormalized(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   string
	}{
		{
			name:   "no trailing newline",
			stored: "abc",
			want:   "abc\n",
		},
		{
			name:   "trailing newline kept",
			stored: "abc\n",
			want:   "abc\n",
		},
		{
			name:   "multi line without trailing newline",
			stored: "a\nb",
			want:   "a\nb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := New(t.TempDir(), "note.txt")
			if err := store.Append(tt.stored); err != nil {
				t.Fatalf("Append failed: %v", err)
			}
			if got := store.Content(); got != tt.want {
				t.Errorf("Content() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAvailable(t *testing.T) {
	root := t.TempDir()
	store := New(root, "note.txt")

	if err := store.Available(); err != nil {
		t.Errorf("Expected available storage, got %v", err)
	}
}

func TestAvailable_MissingRoot(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "missing"), "note.txt")

	if err := store.Available(); err == nil {
		t.Error("Expected error for missing storage root")
	}
}

func TestAvailable_RootIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	rootPath := filepath.Join(tmpDir, "rootfile")
	if err := os.WriteFile(rootPath, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	store := New(rootPath, "note.txt")
	err := store.Available()
	if err == nil {
		t.Fatal("Expected error when storage root is a file")
	}
	if !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("Expected 'not a directory' error, got %v", err)
	}
}

func TestAvailable_LeavesNoProbeFiles(t *testing.T) {
	root := t.TempDir()
	store := New(root, "note.txt")

	if err := store.Available(); err != nil {
		t.Fatalf("Available failed: %v", err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("Failed to read root: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no leftover files in root, found %d", len(entries))
	}
}

func TestPath(t *testing.T) {
	store := New("/data/notes", "jot.txt")

	want := filepath.Join("/data/notes", "jot.txt")
	if store.Path() != want {
		t.Errorf("Path() = %q, want %q", store.Path(), want)
	}
	if store.Root() != "/data/notes" {
		t.Errorf("Root() = %q, want %q", store.Root(), "/data/notes")
	}
}

func TestSize(t *testing.T) {
	store := New(t.TempDir(), "note.txt")

	if store.Size() != 0 {
		t.Errorf("Expected size 0 for missing file, got %d", store.Size())
	}
	if err := store.Append("1234"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if store.Size() != 4 {
		t.Errorf("Expected size 4, got %d", store.Size())
	}
}

func TestRead_MissingFile(t *testing.T) {
	store := New(t.TempDir(), "note.txt")

	if _, err := store.Read(); err == nil {
		t.Error("Expected error reading missing file")
	}
}
