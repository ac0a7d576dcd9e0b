package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Preference is the user-facing theme choice.
type Preference string

const (
	PreferenceLight  Preference = "light"
	PreferenceDark   Preference = "dark"
	PreferenceSystem Preference = "system"
)

// Resolved is the concrete display mode used for rendering. It is never "system".
type Resolved string

const (
	ResolvedLight Resolved = "light"
	ResolvedDark  Resolved = "dark"
)

var ErrInvalidPreference = errors.New("invalid theme preference")

var preferences = [...]Preference{PreferenceLight, PreferenceDark, PreferenceSystem}

// Preferences lists every valid preference in display order.
func Preferences() []Preference {
	out := make([]Preference, len(preferences))
	copy(out, preferences[:])
	return out
}

func (p Preference) Valid() bool {
	switch p {
	case PreferenceLight, PreferenceDark, PreferenceSystem:
		return true
	default:
		return false
	}
}

func (p Preference) String() string {
	return string(p)
}

func (r Resolved) String() string {
	return string(r)
}

// ParsePreference accepts light, dark or system in any case, ignoring surrounding space.
func ParsePreference(s string) (Preference, error) {
	p := Preference(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w %q (want light, dark or system)", ErrInvalidPreference, s)
	}
	return p, nil
}
