package userdata

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/femtoclaw/talon/internal/branding"
)

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// GetDataRoot returns the default registry directory.
// It checks the TALON_HOME environment variable first,
// then falls back to <platform data dir>/femtoclaw/talons.
func GetDataRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	base, err := PlatformDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, branding.DataSubdir()), nil
}

// PlatformDataDir returns the per-user application data directory:
// $XDG_DATA_HOME or ~/.local/share on Unix, ~/Library/Application Support
// on macOS, and %AppData% on Windows.
func PlatformDataDir() (string, error) {
	switch runtime.GOOS {
	case "windows", "darwin":
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolving data directory: %w", err)
		}
		return dir, nil
	}

	// XDG requires absolute paths; relative values are ignored.
	if v := os.Getenv("XDG_DATA_HOME"); v != "" && filepath.IsAbs(v) {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share"), nil
}

// EnsureDir creates dir (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, DirPermNormal); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}
