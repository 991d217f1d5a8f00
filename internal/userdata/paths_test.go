package userdata

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestGetDataRoot_EnvOverride(t *testing.T) {
	t.Setenv("TALON_HOME", "/tmp/test-talons")
	root, err := GetDataRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != "/tmp/test-talons" {
		t.Errorf("expected /tmp/test-talons, got %s", root)
	}
}

func TestGetDataRoot_XDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_DATA_HOME only applies on Unix")
	}
	xdg := t.TempDir()
	t.Setenv("TALON_HOME", "")
	t.Setenv("XDG_DATA_HOME", xdg)

	root, err := GetDataRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := filepath.Join(xdg, "femtoclaw", "talons")
	if root != expected {
		t.Errorf("expected %s, got %s", expected, root)
	}
}

func TestPlatformDataDir_IgnoresRelativeXDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_DATA_HOME only applies on Unix")
	}
	t.Setenv("XDG_DATA_HOME", "relative/share")

	dir, err := PlatformDataDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if dir != filepath.Join(home, ".local", "share") {
		t.Errorf("expected ~/.local/share, got %s", dir)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s", dir)
	}
	// Idempotent.
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("second EnsureDir: %v", err)
	}
}
