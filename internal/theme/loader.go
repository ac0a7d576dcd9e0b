package theme

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
)

// OverrideFile is the on-disk layout for palette overrides:
//
//	[light]
//	accent = "#0f766e"
//
//	[dark]
//	accent = "#2dd4bf"
type OverrideFile struct {
	Light Overrides `toml:"light"`
	Dark  Overrides `toml:"dark"`
}

// For returns the overrides that apply to r.
func (f OverrideFile) For(r Resolved) Overrides {
	if r == ResolvedDark {
		return f.Dark
	}
	return f.Light
}

// LoadOverrides reads a TOML override file. An empty path or a missing file
// yields empty overrides. Unrecognized keys are logged, not rejected.
func LoadOverrides(path string, logger *slog.Logger) (OverrideFile, error) {
	var f OverrideFile
	if path == "" {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return f, fmt.Errorf("read palette file %q: %w", path, err)
	}
	meta, err := toml.Decode(string(data), &f)
	if err != nil {
		return OverrideFile{}, fmt.Errorf("parse palette file %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 && logger != nil {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		logger.Warn("palette file has unrecognized keys", "path", path, "keys", keys)
	}
	return f, nil
}
