package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/femtoclaw/talon/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys, as written in config.yaml. Each can also be supplied as
// TALON_<KEY> in the environment.
const (
	KeyDir      = "dir"
	KeyLogLevel = "log_level"
)

const (
	// DefaultDir is the registry directory used when nothing else is configured.
	DefaultDir      = "./talons"
	defaultLogLevel = "warn"
	configName      = "config.yaml"
)

// Dir is the directory holding config.yaml: $TALON_CONFIG_DIR, else ~/.talon.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("CONFIG_DIR")); v != "" {
		return v
	}
	base, err := os.UserHomeDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, branding.HomeDir())
}

// FilePath is the location of config.yaml.
func FilePath() string {
	return filepath.Join(Dir(), configName)
}

// Load points viper at config.yaml and the TALON_ environment. A missing
// config file is not an error; an unreadable or malformed one is.
func Load() error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	viper.SetDefault(KeyDir, DefaultDir)
	viper.SetDefault(KeyLogLevel, defaultLogLevel)

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil, errors.Is(err, fs.ErrNotExist), errors.As(err, &notFound):
		return nil
	default:
		return fmt.Errorf("reading %s: %w", FilePath(), err)
	}
}

// BindFlag gives flag precedence over the environment and config file for key.
func BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("binding %q: flag not defined", key)
	}
	if err := viper.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("binding %q: %w", key, err)
	}
	return nil
}

// Get returns the effective value of key, or "" when unset.
func Get(key string) string { return viper.GetString(key) }

// RegistryDir is the effective registry directory.
func RegistryDir() string {
	if dir := Get(KeyDir); dir != "" {
		return dir
	}
	return DefaultDir
}

// LogLevel is the effective log level name.
func LogLevel() string { return Get(KeyLogLevel) }

// Set stores key=value and rewrites config.yaml with every known setting.
func Set(key, value string) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	viper.Set(key, value)
	if err := viper.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing %s: %w", FilePath(), err)
	}
	return nil
}
