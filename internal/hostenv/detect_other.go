//go:build !darwin && !windows && !linux && !freebsd && !openbsd && !netbsd && !dragonfly

package hostenv

func platformDetectors() []Detector {
	return nil
}
