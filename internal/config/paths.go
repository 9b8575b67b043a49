package config

import "path/filepath"

const (
	appName = "tabfit"
	// ProjectFile is looked up in the working directory
	ProjectFile = ".tabfit.yaml"
	// GlobalFile is looked up in the user config directory
	GlobalFile = "config.yaml"
)

// ConfigDir returns the per-user configuration directory
func ConfigDir() string {
	return ConfigDirWithPlatform(DefaultPlatform)
}

// ConfigDirWithPlatform allows injecting a custom platform provider for testing
func ConfigDirWithPlatform(platform PlatformProvider) string {
	switch platform.GetOS() {
	case "windows":
		// %APPDATA%\tabfit\
		appData := platform.GetEnv("APPDATA")
		if appData == "" {
			return ""
		}
		return filepath.Join(appData, appName)
	case "darwin":
		// ~/Library/Application Support/tabfit/
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", appName)
	default:
		// $XDG_CONFIG_HOME/tabfit/ or ~/.config/tabfit/
		if xdg := platform.GetEnv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName)
		}
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".config", appName)
	}
}

// GlobalConfigPath returns the path of the per-user config file, or "" when
// there is no config directory
func GlobalConfigPath(platform PlatformProvider) string {
	dir := ConfigDirWithPlatform(platform)
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, GlobalFile)
}
