package hostenv

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

const commandTimeout = 750 * time.Millisecond

var commandOutput = func(name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, name, args...).Output()
	return string(out), err
}

// parseAppleInterfaceStyle reads `defaults read -g AppleInterfaceStyle`. The
// key only exists while dark mode is on.
func parseAppleInterfaceStyle(out string, err error) (bool, bool) {
	if err != nil {
		return false, true
	}
	return strings.EqualFold(strings.TrimSpace(out), "dark"), true
}

// parseGSettingsColorScheme reads `gsettings get org.gnome.desktop.interface color-scheme`.
func parseGSettingsColorScheme(out string) (bool, bool) {
	switch strings.Trim(strings.TrimSpace(out), "'\"") {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	default:
		return false, false
	}
}

// parseGTKTheme reads `gsettings get org.gnome.desktop.interface gtk-theme`;
// only a -dark theme name is treated as an answer.
func parseGTKTheme(out string) (bool, bool) {
	name := strings.ToLower(strings.Trim(strings.TrimSpace(out), "'\""))
	if name == "" {
		return false, false
	}
	if strings.HasSuffix(name, "-dark") || strings.Contains(name, "-dark-") {
		return true, true
	}
	return false, false
}

// parsePortalColorScheme maps the org.freedesktop.appearance color-scheme
// value: 1 prefers dark, 2 prefers light, 0 has no preference.
func parsePortalColorScheme(v any) (bool, bool) {
	var n uint32
	switch x := v.(type) {
	case uint32:
		n = x
	case int32:
		n = uint32(x)
	case int:
		n = uint32(x)
	default:
		return false, false
	}
	switch n {
	case 1:
		return true, true
	case 2:
		return false, true
	default:
		return false, false
	}
}

// parseRegistryLightTheme maps AppsUseLightTheme: 0 is dark.
func parseRegistryLightTheme(v uint64, err error) (bool, bool) {
	if err != nil {
		return false, false
	}
	return v == 0, true
}
