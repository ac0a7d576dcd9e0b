//go:build darwin

package hostenv

func platformDetectors() []Detector {
	return []Detector{
		NewDetector("macos-appearance", func() (bool, bool) {
			return parseAppleInterfaceStyle(commandOutput("defaults", "read", "-g", "AppleInterfaceStyle"))
		}),
	}
}
