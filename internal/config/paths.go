package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appDirName   = "powerline"
	settingsFile = "config.yaml"
	themeFile    = "theme"

	// EnvSettingsPath overrides settings file discovery.
	EnvSettingsPath = "POWERLINE_CONFIG"
)

// DiscoverSettings returns the settings file to load, if any: the
// POWERLINE_CONFIG path, else powerline/config.yaml in the XDG config dirs.
func DiscoverSettings() (string, bool) {
	if path := os.Getenv(EnvSettingsPath); path != "" {
		return path, true
	}
	return searchConfig(settingsFile)
}

// DiscoverTheme returns powerline/theme from the XDG config dirs, if present.
func DiscoverTheme() (string, bool) {
	return searchConfig(themeFile)
}

func searchConfig(name string) (string, bool) {
	path, err := xdg.SearchConfigFile(filepath.Join(appDirName, name))
	if err != nil {
		return "", false
	}
	return path, true
}
