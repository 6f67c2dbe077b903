// Package file persists the session as a small JSON key-value file on
// disk, the default backend for a single-user installation.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tienda/inventory-system/internal/core/ports"
)

// SessionRepository stores the "token" and "user" keys in one file.
// Writes go through a temp file and rename, so readers never observe a
// partially written session.
type SessionRepository struct {
	path string
}

// NewSessionRepository creates a repository writing to path. Parent
// directories are created on first save.
func NewSessionRepository(path string) *SessionRepository {
	return &SessionRepository{path: path}
}

type sessionFile struct {
	Token string `json:"token,omitempty"`
	User  string `json:"user,omitempty"`
}

func (r *SessionRepository) Load(_ context.Context) (ports.SessionRecord, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return ports.SessionRecord{}, nil
	}
	if err != nil {
		return ports.SessionRecord{}, fmt.Errorf("read session file: %w", err)
	}

	var f sessionFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return ports.SessionRecord{}, fmt.Errorf("decode session file: %w", err)
	}
	return ports.SessionRecord{Token: f.Token, User: []byte(f.User)}, nil
}

func (r *SessionRepository) Save(_ context.Context, rec ports.SessionRecord) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	raw, err := json.Marshal(sessionFile{Token: rec.Token, User: string(rec.User)})
	if err != nil {
		return err
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

func (r *SessionRepository) Clear(_ context.Context) error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// Ping verifies the session directory is writable.
func (r *SessionRepository) Ping(_ context.Context) error {
	dir := filepath.Dir(r.path)
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil // created lazily on first save
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("session path parent %s is not a directory", dir)
	}
	return nil
}
