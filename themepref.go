// Package themepref persists a light/dark/system theme preference and
// resolves it to the mode to render with.
//
//	store := themepref.NewStore(backend, themepref.DefaultKey, themepref.System)
//	store.Set(themepref.Dark)
//	mode := themepref.Resolve(store.Get(), themepref.HostEnvironment(false))
//
// Neither the store nor the resolver returns errors: missing storage, broken
// stored values and hosts without a color-scheme signal all fall back to
// defaults (system for the preference, light for the resolved mode).
package themepref

import (
	"github.com/matthewsawatzky/themepref/internal/hostenv"
	"github.com/matthewsawatzky/themepref/internal/prefstore"
	"github.com/matthewsawatzky/themepref/internal/storage"
	"github.com/matthewsawatzky/themepref/internal/theme"
)

type (
	Preference  = theme.Preference
	Resolved    = theme.Resolved
	Environment = theme.Environment
	Storage     = prefstore.Storage
	Store       = prefstore.Store
	StoreOption = prefstore.Option
	Backend     = storage.Backend
)

const (
	Light  = theme.PreferenceLight
	Dark   = theme.PreferenceDark
	System = theme.PreferenceSystem

	ResolvedLight = theme.ResolvedLight
	ResolvedDark  = theme.ResolvedDark

	DefaultKey = prefstore.DefaultKey
)

var (
	ErrInvalidPreference = theme.ErrInvalidPreference

	WithLogger = prefstore.WithLogger
)

// NewStore returns a preference store hydrated from storage; a nil storage keeps
// the preference in memory only.
func NewStore(s Storage, key string, def Preference, opts ...StoreOption) *Store {
	return prefstore.New(s, key, def, opts...)
}

func Resolve(p Preference, env Environment) Resolved {
	return theme.Resolve(p, env)
}

func ParsePreference(s string) (Preference, error) {
	return theme.ParsePreference(s)
}

// OpenStorage opens a named backend (sqlite, keyring or memory). The caller closes it.
func OpenStorage(backend, dataDir string) (Backend, error) {
	return storage.Open(backend, dataDir)
}

// HostEnvironment reports the real host's color-scheme signal. Pass
// nonInteractive=true for pre-render or service contexts.
func HostEnvironment(nonInteractive bool) Environment {
	return hostenv.New(hostenv.Options{NonInteractive: nonInteractive})
}

// StaticEnvironment is a fixed environment, mainly for tests.
func StaticEnvironment(interactive, dark bool) Environment {
	return hostenv.Static{IsInteractive: interactive, Dark: dark}
}
