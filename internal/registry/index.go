package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/femtoclaw/talon/internal/branding"
	"github.com/femtoclaw/talon/internal/userdata"
)

// IndexPath returns the location of index.json inside a registry directory.
func IndexPath(dir string) string {
	return filepath.Join(dir, branding.IndexFile())
}

// loadIndex reads index.json from dir. A missing file yields an empty index;
// a file that does not decode is reported as ErrIndexCorrupt.
func loadIndex(dir string) (*Index, error) {
	path := IndexPath(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newIndex(), nil
		}
		return nil, ioErr("reading", path, err)
	}

	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIndexCorrupt, path, err)
	}
	if idx.Talons == nil {
		idx.Talons = make(map[string]Entry)
	}
	if idx.Version == "" {
		idx.Version = DefaultIndexVersion
	}
	return &idx, nil
}

// saveIndex rewrites index.json in dir in full.
func saveIndex(dir string, idx *Index) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}

	path := IndexPath(dir)
	if err := os.WriteFile(path, data, userdata.FilePermNormal); err != nil {
		return ioErr("writing", path, err)
	}
	return nil
}
