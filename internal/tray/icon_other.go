//go:build !windows

package tray

// Icon returns the tray icon in the format systray expects on this platform.
func Icon() ([]byte, error) {
	return IconPNG()
}
