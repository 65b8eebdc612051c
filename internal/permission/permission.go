// Package permission persists the user's storage-access decision.
//
// The decision lives in a small marker file: absent means never asked,
// otherwise the file holds "granted" or "denied". Anything unreadable is
// treated as never asked so the user gets prompted again.
package permission

import (
	"os"
	"strings"

	"github.com/gl7857/jot/internal/constants"
	"github.com/gl7857/jot/internal/fileutil"
)

// State is the stored storage-access decision.
type State string

const (
	StateUnset   State = "unset"
	StateGranted State = "granted"
	StateDenied  State = "denied"
)

// Store reads and writes the grant marker file.
type Store struct {
	path string
}

// New creates a Store backed by the marker file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the marker file location.
func (s *Store) Path() string {
	return s.path
}

// State returns the persisted decision.
func (s *Store) State() State {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return StateUnset
	}

	switch strings.TrimSpace(string(data)) {
	case constants.GrantGranted:
		return StateGranted
	case constants.GrantDenied:
		return StateDenied
	}
	return StateUnset
}

// Granted reports whether storage access has been granted.
func (s *Store) Granted() bool {
	return s.State() == StateGranted
}

// Grant persists a granted decision.
func (s *Store) Grant() error {
	return fileutil.WriteFileAtomic(s.path, []byte(constants.GrantGranted+"\n"), 0644)
}

// Deny persists a denied decision.
func (s *Store) Deny() error {
	return fileutil.WriteFileAtomic(s.path, []byte(constants.GrantDenied+"\n"), 0644)
}

// Reset removes the marker so the user is asked again.
func (s *Store) Reset() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
