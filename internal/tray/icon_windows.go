//go:build windows

package tray

// Icon returns the tray icon in the format systray expects on this platform.
func Icon() ([]byte, error) {
	data, err := IconPNG()
	if err != nil {
		return nil, err
	}
	return WrapICO(data, iconSize), nil
}
