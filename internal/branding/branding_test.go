package branding

import (
	"path/filepath"
	"testing"
)

func TestEmbeddedValues(t *testing.T) {
	if CLIName() != "talon" {
		t.Errorf("CLIName() = %q, want %q", CLIName(), "talon")
	}
	if ManifestFile() != "TALON.md" {
		t.Errorf("ManifestFile() = %q, want %q", ManifestFile(), "TALON.md")
	}
	if IndexFile() != "index.json" {
		t.Errorf("IndexFile() = %q, want %q", IndexFile(), "index.json")
	}
	if want := filepath.Join("femtoclaw", "talons"); DataSubdir() != want {
		t.Errorf("DataSubdir() = %q, want %q", DataSubdir(), want)
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("home"); got != "TALON_HOME" {
		t.Errorf("EnvVar(home) = %q, want TALON_HOME", got)
	}
}
