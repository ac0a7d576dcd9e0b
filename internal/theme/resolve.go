package theme

// Environment reports the host's color-scheme capability.
//
// PrefersDark is only consulted when Interactive returns true; environments
// without a host to ask (pre-render, pipes, services) should return false from
// Interactive rather than guessing.
type Environment interface {
	Interactive() bool
	PrefersDark() bool
}

// Resolve maps a preference to the mode to render with.
//
// Light and dark pass through unchanged. System asks env on every call and
// falls back to light when env is nil or not interactive. Unrecognized
// preferences are treated as system.
func Resolve(p Preference, env Environment) Resolved {
	switch p {
	case PreferenceLight:
		return ResolvedLight
	case PreferenceDark:
		return ResolvedDark
	}
	if env == nil || !env.Interactive() {
		return ResolvedLight
	}
	if env.PrefersDark() {
		return ResolvedDark
	}
	return ResolvedLight
}
