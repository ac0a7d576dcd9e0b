// Package storage selects the durable key/value slot that backs a preference store.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matthewsawatzky/themepref/internal/db"
)

const (
	BackendSQLite  = "sqlite"
	BackendKeyring = "keyring"
	BackendMemory  = "memory"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Backend is a string key/value slot. Load reports ok=false for keys that were never saved.
type Backend interface {
	Load(key string) (string, bool, error)
	Save(key, value string) error
	Close() error
}

// Backends lists the accepted backend names.
func Backends() []string {
	return []string{BackendSQLite, BackendKeyring, BackendMemory}
}

// Open returns the named backend. dataDir is only used by sqlite.
func Open(name, dataDir string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendSQLite:
		s, err := db.Open(dataDir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendKeyring:
		return NewKeyring(KeyringService), nil
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, name)
	}
}
