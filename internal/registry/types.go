package registry

import "github.com/femtoclaw/talon/internal/manifest"

// DefaultIndexVersion is the format version written to a fresh index.
const DefaultIndexVersion = "1.0"

// Index is the persisted collection of installed talons keyed by name.
type Index struct {
	Talons  map[string]Entry `json:"talons"`
	Version string           `json:"version"`
}

// Entry is the denormalized index summary of one installed talon. It is
// copied from the manifest at discover/add time so listing and searching
// never re-read manifests.
type Entry struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Author      string   `json:"author,omitempty"`
	License     string   `json:"license,omitempty"`
	Path        string   `json:"path"` // absolute path of the talon directory
	Tags        []string `json:"tags"`
}

// Info pairs a freshly parsed manifest with the directory it came from.
type Info struct {
	Manifest  *manifest.Manifest `json:"manifest"`
	Path      string             `json:"path"`
	Installed bool               `json:"installed"`
}

func newIndex() *Index {
	return &Index{
		Talons:  make(map[string]Entry),
		Version: DefaultIndexVersion,
	}
}

func entryFromManifest(m *manifest.Manifest, path string) Entry {
	tags := make([]string, len(m.Tags))
	copy(tags, m.Tags)
	return Entry{
		Name:        m.Name,
		Version:     m.Version,
		Description: m.Description,
		Author:      m.Author,
		License:     m.License,
		Path:        path,
		Tags:        tags,
	}
}
