package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/anushishehara/leaveport/internal/logging"
)

// Store persists at most one Session record. A record exists in the store
// iff the user is considered authenticated.
type Store interface {
	// Save serializes s and overwrites any prior record. No merge semantics.
	Save(ctx context.Context, s *Session) error

	// Load returns the stored session, or (nil, nil) when none is held.
	// A record that cannot be read or decoded is treated as absent
	// (fail-open to logged-out), never as an error.
	Load(ctx context.Context) (*Session, error)

	// Clear removes the stored record. Idempotent.
	Clear(ctx context.Context) error
}

// FileStore keeps the session as a single JSON file under a fixed path.
type FileStore struct {
	path string
	log  logging.Logger
}

func NewFileStore(path string, log logging.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

func (f *FileStore) Save(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(f.path, data, 0o600)
}

// Load fails open: a missing file means logged out, and so does a file that
// cannot be read or does not decode into a usable session. Corruption is
// logged once and otherwise indistinguishable from absence, so a damaged
// store never blocks startup.
func (f *FileStore) Load(ctx context.Context) (*Session, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		f.log.Warn(ctx, "session file unreadable, treating as logged out", "path", f.path, "error", err)
		return nil, nil
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		f.log.Warn(ctx, "session file corrupt, treating as logged out", "path", f.path, "error", err)
		return nil, nil
	}
	// A decodable value without a token is not a session either; an older
	// or foreign writer may have left it behind.
	if s.Token == "" {
		f.log.Warn(ctx, "session file has no token, treating as logged out", "path", f.path)
		return nil, nil
	}
	return &s, nil
}

func (f *FileStore) Clear(ctx context.Context) error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
