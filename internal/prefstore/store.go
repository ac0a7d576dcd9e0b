// Package prefstore holds the user's theme preference in memory and mirrors
// every change to a durable key/value slot.
//
// A Store never returns errors from Get or Set. Missing storage, failing
// storage and unreadable stored values all degrade to in-memory behavior so
// that rendering never stops on a theme problem.
package prefstore

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/matthewsawatzky/themepref/internal/theme"
)

// DefaultKey is the storage key used for the theme preference.
const DefaultKey = "theme"

// Storage is the durable slot behind a Store. Load reports ok=false when
// nothing was ever saved under key.
type Storage interface {
	Load(key string) (value string, ok bool, err error)
	Save(key, value string) error
}

type Option func(*Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type Store struct {
	mu      sync.RWMutex
	storage Storage
	key     string
	current theme.Preference
	logger  *slog.Logger
}

// New hydrates a Store from storage under key. When nothing valid is stored,
// the store starts at def (system if def is itself invalid) and storage is
// left untouched until the first Set. A nil storage gives an in-memory store.
func New(storage Storage, key string, def theme.Preference, opts ...Option) *Store {
	if key == "" {
		key = DefaultKey
	}
	if !def.Valid() {
		def = theme.PreferenceSystem
	}
	s := &Store{
		storage: storage,
		key:     key,
		current: def,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current = s.hydrate(def)
	return s
}

func (s *Store) hydrate(def theme.Preference) theme.Preference {
	if s.storage == nil {
		s.logger.Debug("no durable storage; preference kept in memory", "key", s.key)
		return def
	}
	raw, ok, err := s.storage.Load(s.key)
	if err != nil {
		s.logger.Warn("load preference failed; using default", "key", s.key, "default", def, "error", err)
		return def
	}
	if !ok {
		return def
	}
	p := theme.Preference(strings.TrimSpace(raw))
	if !p.Valid() {
		s.logger.Warn("ignoring unrecognized stored preference", "key", s.key, "value", raw, "default", def)
		return def
	}
	s.logger.Debug("loaded preference", "key", s.key, "value", p)
	return p
}

// Get returns the current preference.
func (s *Store) Get() theme.Preference {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set replaces the preference and writes it through to storage. Invalid
// values are ignored. A storage failure is logged; the in-memory value still
// changes.
func (s *Store) Set(p theme.Preference) {
	_ = s.Update(p)
}

// Update behaves like Set but also returns the failure to the caller:
// ErrInvalidPreference for an invalid p (value unchanged), or the storage
// error (in-memory value already replaced).
func (s *Store) Update(p theme.Preference) error {
	if !p.Valid() {
		s.logger.Warn("ignoring invalid preference", "key", s.key, "value", string(p))
		return fmt.Errorf("%w %q", theme.ErrInvalidPreference, string(p))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = p
	if s.storage == nil {
		return nil
	}
	if err := s.storage.Save(s.key, string(p)); err != nil {
		s.logger.Warn("persist preference failed; kept in memory only", "key", s.key, "value", p, "error", err)
		return fmt.Errorf("persist preference: %w", err)
	}
	return nil
}

func (s *Store) Key() string {
	return s.key
}

// Persistent reports whether the store has durable storage behind it.
func (s *Store) Persistent() bool {
	return s.storage != nil
}
