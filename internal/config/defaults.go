package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/ekisa-team/singalong/internal/envvar"
	"github.com/ekisa-team/singalong/internal/xfs"
)

const appName = "singalong"

// DefaultConfigPath returns the default path for the singalong config directory.
func DefaultConfigPath() string {
	home := xfs.HomeDir()
	if home == "" {
		return filepath.Join(".", appName, "config")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", appName)
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", appName)
	default: // Linux, BSD, etc.
		if xdg := os.Getenv(envvar.XDGConfigHome); xdg != "" {
			return filepath.Join(xdg, appName)
		}
		return filepath.Join(home, ".config", appName)
	}
}

// DefaultConfigFile returns the config file to load.
// SINGALONG_CONFIG takes precedence and may start with "~".
func DefaultConfigFile() string {
	if p := os.Getenv(envvar.SingalongConfig); p != "" {
		return xfs.PathMangle(p)
	}
	return filepath.Join(DefaultConfigPath(), "config.yaml")
}

// DefaultDataPaths returns the data directories searched when the config
// file does not list any, user directory first.
func DefaultDataPaths() []string {
	var paths []string
	if xdg := os.Getenv(envvar.XDGDataHome); xdg != "" {
		paths = append(paths, filepath.Join(xdg, appName))
	} else if home := xfs.HomeDir(); home != "" {
		paths = append(paths, filepath.Join(home, ".local", "share", appName))
	}

	return append(paths,
		filepath.Join("/usr/local/share", appName),
		filepath.Join("/usr/share", appName),
	)
}
