package config

import (
	"os"
	"runtime"
)

// PlatformProvider abstracts the OS lookups used to locate config files
type PlatformProvider interface {
	// GetOS returns the operating system name ("windows", "darwin", "linux")
	GetOS() string

	// GetEnv returns the value of an environment variable
	GetEnv(key string) string

	// UserHomeDir returns the current user's home directory
	UserHomeDir() (string, error)

	// Getwd returns the working directory
	Getwd() (string, error)
}

// OSPlatform implements PlatformProvider with real OS calls
type OSPlatform struct{}

func (OSPlatform) GetOS() string {
	return runtime.GOOS
}

func (OSPlatform) GetEnv(key string) string {
	return os.Getenv(key)
}

func (OSPlatform) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (OSPlatform) Getwd() (string, error) {
	return os.Getwd()
}

// DefaultPlatform is the platform provider used by Load (can be overridden for tests)
var DefaultPlatform PlatformProvider = OSPlatform{}
