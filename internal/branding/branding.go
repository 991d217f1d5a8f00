// Package branding provides compile-time identity values for the CLI and
// the registry's on-disk layout.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"path/filepath"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	DataSubdir   string `yaml:"data_subdir"`
	ManifestFile string `yaml:"manifest_file"`
	IndexFile    string `yaml:"index_file"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "talon",
			DisplayName:  "Talon",
			Description:  "Local registry for FemtoClaw talons",
			HomeDir:      ".talon",
			EnvPrefix:    "TALON",
			DataSubdir:   "femtoclaw/talons",
			ManifestFile: "TALON.md",
			IndexFile:    "index.json",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "talon").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Talon").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".talon").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "TALON").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// DataSubdir returns the registry location relative to the platform data
// directory, using the host separator (e.g., "femtoclaw/talons").
func DataSubdir() string { load(); return filepath.FromSlash(defaults.DataSubdir) }

// ManifestFile returns the manifest file name every talon directory carries.
func ManifestFile() string { load(); return defaults.ManifestFile }

// IndexFile returns the file name of the persisted index inside a registry directory.
func IndexFile() string { load(); return defaults.IndexFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "TALON_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
