//go:build linux || freebsd || openbsd || netbsd || dragonfly

package hostenv

import "github.com/rymdport/portal/settings"

const appearanceNamespace = "org.freedesktop.appearance"

func platformDetectors() []Detector {
	return []Detector{
		NewDetector("xdg-portal", detectPortal),
		NewDetector("gsettings", detectGSettings),
	}
}

func detectPortal() (bool, bool) {
	v, err := settings.ReadOne(appearanceNamespace, "color-scheme")
	if err != nil {
		return false, false
	}
	return parsePortalColorScheme(v)
}

func detectGSettings() (bool, bool) {
	out, err := commandOutput("gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
	if err == nil {
		if dark, ok := parseGSettingsColorScheme(out); ok {
			return dark, ok
		}
	}
	out, err = commandOutput("gsettings", "get", "org.gnome.desktop.interface", "gtk-theme")
	if err != nil {
		return false, false
	}
	return parseGTKTheme(out)
}
