package service

import (
	"context"
	"errors"

	"github.com/gl7857/jot/internal/constants"
	"github.com/gl7857/jot/internal/journal"
	"github.com/gl7857/jot/internal/logging"
	"github.com/gl7857/jot/internal/permission"
	"github.com/gl7857/jot/internal/storage"
)

// ErrStorageBlocked is returned when a mutation is attempted without a
// granted permission or with unavailable storage.
var ErrStorageBlocked = errors.New("storage or permission problem")

// NotesService coordinates note file mutations: the permission gate, the
// file write, and the journal and input history records around it.
type NotesService struct {
	store   *storage.Store
	grants  *permission.Store
	journal *journal.Journal
	inputs  *InputHistoryService
}

// NewNotesService creates a notes service. journal and inputs may be nil,
// in which case the corresponding records are skipped.
func NewNotesService(store *storage.Store, grants *permission.Store, jnl *journal.Journal, inputs *InputHistoryService) *NotesService {
	return &NotesService{
		store:   store,
		grants:  grants,
		journal: jnl,
		inputs:  inputs,
	}
}

// Gate returns ErrStorageBlocked unless access is granted and the storage
// root is usable.
func (s *NotesService) Gate() error {
	if !s.grants.Granted() {
		logging.Debug("mutation blocked: storage access not granted")
		return ErrStorageBlocked
	}
	if err := s.store.Available(); err != nil {
		logging.Debug("mutation blocked: %v", err)
		return ErrStorageBlocked
	}
	return nil
}

// Save appends text to the note file. The text is written exactly as
// given; an empty text still creates the file.
func (s *NotesService) Save(ctx context.Context, text string) error {
	if err := s.Gate(); err != nil {
		return err
	}

	if err := s.store.Append(text); err != nil {
		logging.Error("append failed: %v", err)
		return err
	}
	logging.Info("appended %d bytes to %s", len(text), s.store.Path())

	s.record(ctx, constants.OpAppend, int64(len(text)))

	if s.inputs != nil {
		if err := s.inputs.SaveInput(text); err != nil {
			logging.Warn("failed to record input history: %v", err)
		}
	}
	return nil
}

// Clear truncates the note file.
func (s *NotesService) Clear(ctx context.Context) error {
	if err := s.Gate(); err != nil {
		return err
	}

	if err := s.store.Clear(); err != nil {
		logging.Error("clear failed: %v", err)
		return err
	}
	logging.Info("cleared %s", s.store.Path())

	s.record(ctx, constants.OpClear, 0)
	return nil
}

// Content returns the current note text for display.
func (s *NotesService) Content() string {
	return s.store.Content()
}

// record journals one mutation. Journal failures are logged, not returned;
// the note file write already succeeded.
func (s *NotesService) record(ctx context.Context, op string, bytes int64) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Record(ctx, op, bytes, s.store.Size()); err != nil {
		logging.Warn("failed to journal %s: %v", op, err)
	}
}
