package storage

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/matthewsawatzky/themepref/internal/db"
)

func TestOpenBackends(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		check   func(Backend) bool
	}{
		{name: "default is sqlite", backend: "", check: func(b Backend) bool { _, ok := b.(*db.Store); return ok }},
		{name: "sqlite", backend: "SQLite", check: func(b Backend) bool { _, ok := b.(*db.Store); return ok }},
		{name: "keyring", backend: "keyring", check: func(b Backend) bool { _, ok := b.(*Keyring); return ok }},
		{name: "memory", backend: " memory ", check: func(b Backend) bool { _, ok := b.(*Memory); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Open(tt.backend, t.TempDir())
			if err != nil {
				t.Fatalf("Open(%q) unexpected error: %v", tt.backend, err)
			}
			defer b.Close()
			if !tt.check(b) {
				t.Fatalf("Open(%q) returned %T", tt.backend, b)
			}
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("localstorage", t.TempDir())
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	if _, ok, _ := m.Load("theme"); ok {
		t.Fatalf("fresh memory backend reported a value")
	}
	if err := m.Save("theme", "dark"); err != nil {
		t.Fatalf("save: %v", err)
	}
	v, ok, err := m.Load("theme")
	if err != nil || !ok || v != "dark" {
		t.Fatalf("Load(theme) = %q, %v, %v", v, ok, err)
	}
}

func TestKeyringRoundTrip(t *testing.T) {
	keyring.MockInit()
	k := NewKeyring("")

	if _, ok, err := k.Load("theme"); err != nil || ok {
		t.Fatalf("Load on empty keyring = ok %v, err %v", ok, err)
	}
	if err := k.Save("theme", "light"); err != nil {
		t.Fatalf("save: %v", err)
	}
	v, ok, err := k.Load("theme")
	if err != nil || !ok || v != "light" {
		t.Fatalf("Load(theme) = %q, %v, %v", v, ok, err)
	}
	if err := k.Delete("theme"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := k.Delete("theme"); err != nil {
		t.Fatalf("second delete should be a no-op: %v", err)
	}
	if _, ok, _ := k.Load("theme"); ok {
		t.Fatalf("value survived delete")
	}
}

func TestKeyringRejectsEmptyKey(t *testing.T) {
	keyring.MockInit()
	if err := NewKeyring("svc").Save("", "dark"); err == nil {
		t.Fatalf("expected error for empty key")
	}
}
