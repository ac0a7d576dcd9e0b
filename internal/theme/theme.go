package theme

import (
	"fmt"
	"sort"
)

// Theme is the palette rendered for a resolved mode.
type Theme struct {
	Name         string            `json:"name"`
	Label        string            `json:"label"`
	Description  string            `json:"description"`
	CSSVariables map[string]string `json:"css_variables"`
}

// Overrides replaces individual palette entries. Empty fields keep the builtin value.
type Overrides struct {
	Background   string `json:"background" toml:"background"`
	Text         string `json:"text" toml:"text"`
	Accent       string `json:"accent" toml:"accent"`
	Radius       string `json:"radius" toml:"radius"`
	Font         string `json:"font" toml:"font"`
	Surface      string `json:"surface" toml:"surface"`
	SurfaceMuted string `json:"surface_muted" toml:"surface_muted"`
	Border       string `json:"border" toml:"border"`
}

func builtins() map[Resolved]Theme {
	return map[Resolved]Theme{
		ResolvedLight: {
			Name:        "light",
			Label:       "Light",
			Description: "Clean neutral palette with bright surfaces",
			CSSVariables: map[string]string{
				"--bg":            "#f8fafc",
				"--bg-elevated":   "#ffffff",
				"--text":          "#0f172a",
				"--muted":         "#475569",
				"--accent":        "#0f766e",
				"--accent-strong": "#115e59",
				"--border":        "#cbd5e1",
				"--radius":        "14px",
				"--font":          "'Atkinson Hyperlegible', 'Segoe UI', sans-serif",
			},
		},
		ResolvedDark: {
			Name:        "dark",
			Label:       "Dark",
			Description: "High contrast slate palette for low-light environments",
			CSSVariables: map[string]string{
				"--bg":            "#020617",
				"--bg-elevated":   "#111827",
				"--text":          "#e2e8f0",
				"--muted":         "#94a3b8",
				"--accent":        "#14b8a6",
				"--accent-strong": "#2dd4bf",
				"--border":        "#334155",
				"--radius":        "14px",
				"--font":          "'Atkinson Hyperlegible', 'Segoe UI', sans-serif",
			},
		},
	}
}

// List returns the builtin palettes, light first.
func List() []Theme {
	all := builtins()
	items := make([]Theme, 0, len(all))
	for _, t := range all {
		items = append(items, t)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name > items[j].Name })
	return items
}

// Palette returns a fresh copy of the builtin palette for r with o applied.
func Palette(r Resolved, o Overrides) (Theme, error) {
	t, ok := builtins()[r]
	if !ok {
		return Theme{}, fmt.Errorf("unknown resolved theme %q", r)
	}
	apply := func(key, value string) {
		if value != "" {
			t.CSSVariables[key] = value
		}
	}
	apply("--bg", o.Background)
	apply("--text", o.Text)
	apply("--accent", o.Accent)
	apply("--radius", o.Radius)
	apply("--font", o.Font)
	apply("--bg-elevated", o.Surface)
	apply("--border", o.Border)
	apply("--muted", o.SurfaceMuted)
	return t, nil
}

// VariableNames returns the palette's custom property names in sorted order.
func (t Theme) VariableNames() []string {
	names := make([]string, 0, len(t.CSSVariables))
	for k := range t.CSSVariables {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
