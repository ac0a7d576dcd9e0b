package db

import (
	"math"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadMissingKey(t *testing.T) {
	s := openTestStore(t, t.TempDir())
	v, ok, err := s.Load("theme")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok || v != "" {
		t.Fatalf("Load(theme) = %q, %v; want empty, false", v, ok)
	}
}

func TestSaveSurvivesReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	first, err := Open(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := first.Save("theme", "dark"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second := openTestStore(t, dir)
	v, ok, err := second.Load("theme")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok || v != "dark" {
		t.Fatalf("Load(theme) = %q, %v; want dark, true", v, ok)
	}
}

func TestSaveRecordsChanges(t *testing.T) {
	s := openTestStore(t, t.TempDir())
	for _, v := range []string{"dark", "dark", "light"} {
		if err := s.Save("theme", v); err != nil {
			t.Fatalf("save %s: %v", v, err)
		}
	}
	if err := s.Save("other", "x"); err != nil {
		t.Fatalf("save other: %v", err)
	}

	changes, err := s.ListChanges("theme", 10)
	if err != nil {
		t.Fatalf("list changes: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("len(changes) = %d, want 2 (repeat write is not a change)", len(changes))
	}
	latest := changes[0]
	if latest.NewValue != "light" || latest.OldValue == nil || *latest.OldValue != "dark" {
		t.Fatalf("latest change = %+v", latest)
	}
	first := changes[1]
	if first.NewValue != "dark" || first.OldValue != nil {
		t.Fatalf("first change = %+v", first)
	}
}

func TestSetSettingOverwrites(t *testing.T) {
	s := openTestStore(t, t.TempDir())
	if err := s.SetSetting("theme", "light"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.SetSetting("theme", "system"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, err := s.GetSetting("theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "system" {
		t.Fatalf("GetSetting(theme) = %q, want system", v)
	}
}

func TestListChangesCapsLimit(t *testing.T) {
	s := openTestStore(t, t.TempDir())
	if err := s.Save("theme", "dark"); err != nil {
		t.Fatalf("save: %v", err)
	}
	for _, limit := range []int{math.MaxInt, MaxChangeLimit + 1, 0, -5} {
		changes, err := s.ListChanges("theme", limit)
		if err != nil {
			t.Fatalf("list changes (limit %d): %v", limit, err)
		}
		if len(changes) != 1 {
			t.Fatalf("list changes (limit %d) = %d rows, want 1", limit, len(changes))
		}
	}
}

func TestListChangesStopsAtMax(t *testing.T) {
	s := openTestStore(t, t.TempDir())
	values := []string{"dark", "light"}
	for i := 0; i < MaxChangeLimit+2; i++ {
		if err := s.Save("theme", values[i%2]); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	changes, err := s.ListChanges("theme", math.MaxInt)
	if err != nil {
		t.Fatalf("list changes: %v", err)
	}
	if len(changes) != MaxChangeLimit {
		t.Fatalf("len(changes) = %d, want %d", len(changes), MaxChangeLimit)
	}
}
