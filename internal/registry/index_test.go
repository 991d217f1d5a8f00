package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDir_FreshDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "talons")

	r, err := FromDir(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.True(t, filepath.IsAbs(r.Dir()))
	assert.Equal(t, DefaultIndexVersion, r.IndexVersion())
	assert.Empty(t, r.List())

	// Construction alone does not write an index.
	_, err = os.Stat(IndexPath(dir))
	assert.True(t, os.IsNotExist(err))
}

func TestFromDir_RelativePathIsResolved(t *testing.T) {
	tmp := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	r, err := FromDir("talons")
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(tmp)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(r.Dir())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(want, "talons"), got)
}

func TestFromDir_CorruptIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(IndexPath(dir), []byte("{not json"), 0o644))

	_, err := FromDir(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIndexCorrupt)
	assert.Contains(t, err.Error(), IndexPath(dir))
}

func TestFromDir_IndexMissingVersionDefaults(t *testing.T) {
	dir := t.TempDir()
	raw := `{"talons": {"a": {"name": "a", "version": "1.0.0", "description": "A", "path": "/x/a", "tags": []}}}`
	require.NoError(t, os.WriteFile(IndexPath(dir), []byte(raw), 0o644))

	r, err := FromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, DefaultIndexVersion, r.IndexVersion())
	e, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, "/x/a", e.Path)
}

func TestFromDir_IndexNullTalons(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(IndexPath(dir), []byte(`{"talons": null, "version": "1.0"}`), 0o644))

	r, err := FromDir(dir)
	require.NoError(t, err)
	assert.Empty(t, r.List())

	// A mutation must not panic on the defaulted map.
	writeTalon(t, filepath.Join(dir, "x"), "x", "1.0.0", "X")
	found, err := r.Discover()
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestSaveIndex_Format(t *testing.T) {
	r := newTestRegistry(t)
	src := writeTalon(t, filepath.Join(t.TempDir(), "web"), "web", "2.1.0", "Web tools", "http", "fetch")

	_, err := r.Add(src)
	require.NoError(t, err)

	data, err := os.ReadFile(IndexPath(r.Dir()))
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "talons")
	assert.JSONEq(t, `"1.0"`, string(doc["version"]))

	var talons map[string]map[string]any
	require.NoError(t, json.Unmarshal(doc["talons"], &talons))
	require.Contains(t, talons, "web")
	web := talons["web"]
	assert.Equal(t, "web", web["name"])
	assert.Equal(t, "2.1.0", web["version"])
	assert.Equal(t, "Web tools", web["description"])
	assert.Equal(t, filepath.Join(r.Dir(), "web"), web["path"])
	assert.Equal(t, []any{"http", "fetch"}, web["tags"])
	assert.NotContains(t, web, "author")
}

func TestIndex_SurvivesReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "talons")
	r, err := FromDir(dir)
	require.NoError(t, err)

	src := writeTalon(t, filepath.Join(t.TempDir(), "notes"), "notes", "0.3.0", "Note taking", "text")
	_, err = r.Add(src)
	require.NoError(t, err)

	reopened, err := FromDir(dir)
	require.NoError(t, err)

	want, _ := r.Get("notes")
	got, ok := reopened.Get("notes")
	require.True(t, ok)
	assert.Equal(t, want, got)
}
