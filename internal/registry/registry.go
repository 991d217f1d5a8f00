package registry

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/femtoclaw/talon/internal/userdata"
	"go.uber.org/zap"
)

// Registry binds to a directory of installed talons and keeps its index
// consistent with what is on disk. The index is loaded once at construction
// and written back after every mutating call.
type Registry struct {
	dir    string
	index  *Index
	logger *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for discovery and install diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New binds a Registry to the default data root (see userdata.GetDataRoot).
func New(opts ...Option) (*Registry, error) {
	root, err := userdata.GetDataRoot()
	if err != nil {
		return nil, fmt.Errorf("resolving data root: %w", err)
	}
	return FromDir(root, opts...)
}

// FromDir binds a Registry to dir, creating it if absent, and loads its index.
func FromDir(dir string, opts ...Option) (*Registry, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, ioErr("resolving", dir, err)
	}
	if err := userdata.EnsureDir(abs); err != nil {
		return nil, ioErr("creating", abs, err)
	}

	idx, err := loadIndex(abs)
	if err != nil {
		return nil, err
	}

	r := &Registry{
		dir:    abs,
		index:  idx,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.Named("registry")
	return r, nil
}

// Dir returns the absolute registry directory.
func (r *Registry) Dir() string { return r.dir }

// IndexVersion returns the format version of the loaded index.
func (r *Registry) IndexVersion() string { return r.index.Version }

// List returns every indexed talon in no particular order.
func (r *Registry) List() []Entry {
	entries := make([]Entry, 0, len(r.index.Talons))
	for _, e := range r.index.Talons {
		entries = append(entries, e)
	}
	return entries
}

// Get looks up a talon by exact name.
func (r *Registry) Get(name string) (Entry, bool) {
	e, ok := r.index.Talons[name]
	return e, ok
}

// Search returns talons whose name, description, or any tag contains query,
// ignoring case. No match yields an empty slice.
func (r *Registry) Search(query string) []Entry {
	q := strings.ToLower(query)
	results := []Entry{}
	for _, e := range r.index.Talons {
		if matchesQuery(e, q) {
			results = append(results, e)
		}
	}
	return results
}

// matchesQuery reports whether the lowercased query is a substring of the
// entry's name, description, or one of its tags.
func matchesQuery(e Entry, q string) bool {
	if strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Description), q) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// SortByName orders entries by name for stable display.
func SortByName(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
}

func (r *Registry) save() error {
	return saveIndex(r.dir, r.index)
}
