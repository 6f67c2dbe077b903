// Package session holds the current authenticated identity and credential
// token for the whole process, backed by a durable key-value repository so
// that a session survives restarts.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tienda/inventory-system/internal/core/domain"
	"github.com/tienda/inventory-system/internal/core/ports"
)

// Store is the process-wide session holder. A session is either fully
// present (token and identity both set) or fully absent; no operation can
// leave it half-populated.
type Store struct {
	mu       sync.RWMutex
	token    string
	identity *domain.Identity
	loaded   bool

	repo ports.SessionRepository
	log  zerolog.Logger
}

// NewStore creates a Store over the given persistence repository.
func NewStore(repo ports.SessionRepository, log zerolog.Logger) *Store {
	return &Store{repo: repo, log: log}
}

// Load reads the persisted session into memory at process start. Corrupt
// or partial persisted data is treated as an absent session: persistence
// is advisory caching, never a correctness hazard.
//
// Load runs concurrently with the serving path, so a Save or Clear that
// settles while the repository read is in flight wins: the restored state
// is only installed if nothing else settled the session first.
func (s *Store) Load(ctx context.Context) error {
	if s.Loaded() {
		return nil
	}

	rec, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("session load failed, starting logged out")
		s.commitInitial("", nil)
		return nil
	}

	if rec.Empty() || rec.Token == "" || len(rec.User) == 0 {
		s.commitInitial("", nil)
		return nil
	}

	var id domain.Identity
	if err := json.Unmarshal(rec.User, &id); err != nil {
		s.log.Warn().Err(err).Msg("persisted identity unreadable, discarding session")
		if s.commitInitial("", nil) {
			_ = s.repo.Clear(ctx)
		}
		return nil
	}

	s.commitInitial(rec.Token, &id)
	return nil
}

// Save writes the token and identity to durable storage and to memory.
// Readers observe both fields change together.
func (s *Store) Save(ctx context.Context, token string, id domain.Identity) error {
	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	if err := s.repo.Save(ctx, ports.SessionRecord{Token: token, User: raw}); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.identity = &id
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Clear removes the session from durable storage and from memory. Like
// Save it settles the session, so an in-flight startup Load cannot
// resurrect the cleared state.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = ""
	s.identity = nil
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Read returns the in-memory token and identity without touching storage.
// The identity is copied so callers cannot mutate the stored value.
func (s *Store) Read() (string, *domain.Identity) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return "", nil
	}
	id := *s.identity
	return s.token, &id
}

// Loaded reports whether the session has settled, either through the
// startup Load or through an earlier Save or Clear.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// commitInitial installs the restored session unless a Save or Clear
// settled the session first. It reports whether the commit took effect.
func (s *Store) commitInitial(token string, id *domain.Identity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return false
	}
	s.token = token
	s.identity = id
	s.loaded = true
	return true
}
