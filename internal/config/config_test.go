package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TALON_CONFIG_DIR", dir)
	t.Setenv("TALON_DIR", "")
	t.Setenv("TALON_LOG_LEVEL", "")
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func TestFilePath_EnvOverride(t *testing.T) {
	dir := isolate(t)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), FilePath())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	require.NoError(t, Load())
	assert.Equal(t, DefaultDir, RegistryDir())
	assert.Equal(t, "warn", LogLevel())
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	isolate(t)
	t.Setenv("TALON_DIR", "/srv/talons")
	require.NoError(t, Load())
	assert.Equal(t, "/srv/talons", RegistryDir())
}

func TestSetThenGet(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, Load())

	require.NoError(t, Set(KeyLogLevel, "debug"))
	assert.Equal(t, "debug", Get(KeyLogLevel))

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "log_level: debug")

	// A fresh viper instance reads the persisted value back.
	viper.Reset()
	require.NoError(t, Load())
	assert.Equal(t, "debug", LogLevel())
}

func TestBindFlag_FlagWins(t *testing.T) {
	isolate(t)
	t.Setenv("TALON_DIR", "/from/env")
	require.NoError(t, Load())

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("dir", DefaultDir, "")
	require.NoError(t, BindFlag(KeyDir, fs.Lookup("dir")))
	require.NoError(t, fs.Parse([]string{"--dir", "/from/flag"}))

	assert.Equal(t, "/from/flag", RegistryDir())
}

func TestBindFlag_Missing(t *testing.T) {
	assert.Error(t, BindFlag(KeyDir, nil))
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("dir: [unclosed\n"), 0o644))
	assert.Error(t, Load())
}

func TestSet_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(isolate(t), "nested")
	t.Setenv("TALON_CONFIG_DIR", dir)
	require.NoError(t, Load())

	require.NoError(t, Set(KeyDir, "/srv/talons"))
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))
}
