package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gl7857/jot/internal/constants"
)

func TestInputHistoryService_SaveAndLoad(t *testing.T) {
	// Create temp directory
	tmpDir := t.TempDir()

	svc := NewInputHistoryService(tmpDir)

	// Save some entries
	if err := svc.SaveInput("first note"); err != nil {
		t.Fatalf("SaveInput failed: %v", err)
	}
	if err := svc.SaveInput("second note"); err != nil {
		t.Fatalf("SaveInput failed: %v", err)
	}

	// Load and verify
	entries, err := svc.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	// Most recent should be first
	if entries[0].Content != "second note" {
		t.Errorf("Expected 'second note' first, got '%s'", entries[0].Content)
	}
	if entries[1].Content != "first note" {
		t.Errorf("Expected 'first note' second, got '%s'", entries[1].Content)
	}
}

func TestInputHistoryService_DuplicateHandling(t *testing.T) {
	tmpDir := t.TempDir()
	svc := NewInputHistoryService(tmpDir)

	// Save same content twice
	if err := svc.SaveInput("duplicate note"); err != nil {
		t.Fatalf("SaveInput failed: %v", err)
	}
	if err := svc.SaveInput("other note"); err != nil {
		t.Fatalf("SaveInput failed: %v", err)
	}
	if err := svc.SaveInput("duplicate note"); err != nil {
		t.Fatalf("SaveInput failed: %v", err)
	}

	entries, err := svc.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory failed: %v", err)
	}

	// Should have 2 entries (duplicate removed and moved to top)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	if entries[0].Content != "duplicate note" {
		t.Errorf("Expected 'duplicate note' first, got '%s'", entries[0].Content)
	}
	if entries[1].Content != "other note" {
		t.Errorf("Expected 'other note' second, got '%s'", entries[1].Content)
	}
}

func TestInputHistoryService_MaxEntries(t *testing.T) {
	tmpDir := t.TempDir()
	svc := NewInputHistoryService(tmpDir)

	// Save more than max entries
	for i := 0; i < constants.MaxInputHistoryEntries+10; i++ {
		if err := svc.SaveInput("note " + string(rune('A'+i%26)) + string(rune('0'+i%10))); err != nil {
			t.Fatalf("SaveInput failed: %v", err)
		}
	}

	entries, err := svc.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory failed: %v", err)
	}

	if len(entries) > constants.MaxInputHistoryEntries {
		t.Errorf("Expected at most %d entries, got %d", constants.MaxInputHistoryEntries, len(entries))
	}
}

func TestInputHistoryService_EmptyContent(t *testing.T) {
	tmpDir := t.TempDir()
	svc := NewInputHistoryService(tmpDir)

	// Empty content should be ignored
	if err := svc.SaveInput(""); err != nil {
		t.Fatalf("SaveInput failed: %v", err)
	}

	entries, err := svc.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory failed: %v", err)
	}

	if len(entries) != 0 {
		t.Errorf("Expected 0 entries, got %d", len(entries))
	}
}

func TestInputHistoryService_GetAllContents(t *testing.T) {
	tmpDir := t.TempDir()
	svc := NewInputHistoryService(tmpDir)

	if err := svc.SaveInput("note one"); err != nil {
		t.Fatalf("SaveInput failed: %v", err)
	}
	if err := svc.SaveInput("note two"); err != nil {
		t.Fatalf("SaveInput failed: %v", err)
	}

	contents, err := svc.GetAllContents()
	if err != nil {
		t.Fatalf("GetAllContents failed: %v", err)
	}

	if len(contents) != 2 {
		t.Fatalf("Expected 2 contents, got %d", len(contents))
	}

	if contents[0] != "note two" {
		t.Errorf("Expected 'note two' first, got '%s'", contents[0])
	}
}

func TestInputHistoryService_NonExistentFile(t *testing.T) {
	tmpDir := t.TempDir()
	svc := NewInputHistoryService(tmpDir)

	// Should return empty without error
	entries, err := svc.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory failed: %v", err)
	}

	if len(entries) != 0 {
		t.Errorf("Expected 0 entries, got %d", len(entries))
	}
}

func TestInputHistoryService_CorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	svc := NewInputHistoryService(tmpDir)

	// Write corrupted data
	historyPath := filepath.Join(tmpDir, constants.InputHistoryFileName)
	if err := os.WriteFile(historyPath, []byte("not valid json"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	// Corrupt history degrades to an empty list and the file is backed up
	entries, err := svc.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected 0 entries for corrupt file, got %d", len(entries))
	}

	dirEntries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	foundBackup := false
	for _, e := range dirEntries {
		if strings.HasPrefix(e.Name(), constants.InputHistoryFileName+".corrupt-") {
			foundBackup = true
		}
	}
	if !foundBackup {
		t.Error("Expected corrupt history file to be backed up")
	}

	// Saving after corruption starts a fresh history
	if err := svc.SaveInput("fresh note"); err != nil {
		t.Fatalf("SaveInput failed: %v", err)
	}
	entries, err = svc.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Content != "fresh note" {
		t.Errorf("Expected fresh history with 1 entry, got %v", entries)
	}
}
