//go:build windows

package hostenv

import "golang.org/x/sys/windows/registry"

const personalizeKey = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`

func platformDetectors() []Detector {
	return []Detector{NewDetector("windows-registry", detectRegistry)}
}

func detectRegistry() (bool, bool) {
	k, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil {
		return false, false
	}
	defer k.Close()
	v, _, err := k.GetIntegerValue("AppsUseLightTheme")
	return parseRegistryLightTheme(v, err)
}
