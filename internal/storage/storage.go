// Package storage implements the shared note file that jot appends to.
//
// The store manages exactly one plain-text file. Append and Clear are the
// only mutations; content is passed through as raw bytes with no structure
// applied.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store provides access to the note file under a storage root.
type Store struct {
	root string
	name string
}

// New creates a Store for the note file name inside root.
func New(root, name string) *Store {
	return &Store{
		root: root,
		name: name,
	}
}

// Root returns the storage root directory.
func (s *Store) Root() string {
	return s.root
}

// Path returns the full path of the note file.
func (s *Store) Path() string {
	return filepath.Join(s.root, s.name)
}

// Available returns nil when the storage root exists, is a directory, and
// accepts writes. The write probe mirrors a mounted-and-writable check.
func (s *Store) Available() error {
	info, err := os.Stat(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage root %s does not exist", s.root)
		}
		return fmt.Errorf("failed to stat storage root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage root %s is not a directory", s.root)
	}

	probe, err := os.CreateTemp(s.root, ".jot-probe-*")
	if err != nil {
		return fmt.Errorf("storage root %s is not writable: %w", s.root, err)
	}
	probePath := probe.Name()
	_ = probe.Close()
	_ = os.Remove(probePath)
	return nil
}

// Append writes text to the end of the note file exactly as given. No
// separator is added; appending the empty string still creates the file.
func (s *Store) Append(text string) error {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return fmt.Errorf("failed to create storage root: %w", err)
	}

	file, err := os.OpenFile(s.Path(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open note file: %w", err)
	}

	if _, err := file.WriteString(text); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to append to note file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close note file: %w", err)
	}
	return nil
}

// Clear truncates the note file to zero length, creating it if missing.
// The file itself is never deleted.
func (s *Store) Clear() error {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return fmt.Errorf("failed to create storage root: %w", err)
	}

	file, err := os.OpenFile(s.Path(), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to truncate note file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close note file: %w", err)
	}
	return nil
}

// Content returns the note text for display. A missing or unreadable file
// yields the empty string. Non-empty content always ends with one newline,
// matching a line-by-line read.
func (s *Store) Content() string {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return ""
	}
	if len(data) == 0 {
		return ""
	}

	content := string(data)
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content
}

// Read returns the raw stored bytes of the note file.
func (s *Store) Read() ([]byte, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to read note file: %w", err)
	}
	return data, nil
}

// Size returns the stored byte count, or 0 when the file is missing.
func (s *Store) Size() int64 {
	info, err := os.Stat(s.Path())
	if err != nil {
		return 0
	}
	return info.Size()
}

// Exists reports whether the note file has been created.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}

// Stat returns file info for the note file, for change detection.
func (s *Store) Stat() (os.FileInfo, error) {
	return os.Stat(s.Path())
}
