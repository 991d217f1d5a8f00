package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/femtoclaw/talon/internal/branding"
	"github.com/femtoclaw/talon/internal/manifest"
	"github.com/femtoclaw/talon/internal/registry"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a talon name has no index entry.
var ErrNotFound = errors.New("talon not found")

// Catalog is the subset of *registry.Registry the loader depends on.
type Catalog interface {
	Get(name string) (registry.Entry, bool)
	Discover() ([]registry.Info, error)
}

var _ Catalog = (*registry.Registry)(nil)

// Capability is one invokable command exposed by a talon.
type Capability struct {
	Name        string          `json:"name"` // "<talon>.<command>"
	Description string          `json:"description"`
	Args        []CapabilityArg `json:"args"`
}

// CapabilityArg describes a single argument of a Capability.
type CapabilityArg struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

// Loader resolves talon names through a Catalog.
type Loader struct {
	catalog Catalog
	logger  *zap.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for skip diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a Loader reading from catalog.
func New(catalog Catalog, opts ...Option) *Loader {
	l := &Loader{
		catalog: catalog,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.Named("loader")
	return l
}

// DiscoverAndLoad rescans the catalog and returns every talon that parsed.
func (l *Loader) DiscoverAndLoad() ([]registry.Info, error) {
	return l.catalog.Discover()
}

// Load reads and parses the manifest of an installed talon. Only the entry's
// path is taken from the index; everything else comes from disk.
func (l *Loader) Load(name string) (registry.Info, error) {
	entry, ok := l.catalog.Get(name)
	if !ok {
		return registry.Info{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	m, err := manifest.ParseFile(filepath.Join(entry.Path, branding.ManifestFile()))
	if err != nil {
		return registry.Info{}, fmt.Errorf("loading talon %s: %w", name, err)
	}

	return registry.Info{
		Manifest:  m,
		Path:      entry.Path,
		Installed: true,
	}, nil
}

// Capabilities flattens the commands of a talon into capabilities, in
// declaration order.
func (l *Loader) Capabilities(name string) ([]Capability, error) {
	info, err := l.Load(name)
	if err != nil {
		return nil, err
	}

	m := info.Manifest
	caps := make([]Capability, 0, len(m.Commands))
	for _, cmd := range m.Commands {
		args := make([]CapabilityArg, 0, len(cmd.Args))
		for _, a := range cmd.Args {
			args = append(args, CapabilityArg{
				Name:        a.Name,
				Type:        a.Type,
				Required:    a.Required,
				Description: a.Description,
			})
		}
		caps = append(caps, Capability{
			Name:        m.Name + "." + cmd.Name,
			Description: cmd.Description,
			Args:        args,
		})
	}
	return caps, nil
}

// RenderSummary describes the named talons in order. Names that fail to load
// are left out of the output.
func (l *Loader) RenderSummary(names []string) string {
	var b strings.Builder
	b.WriteString("Available Talons:\n\n")

	for _, name := range names {
		info, err := l.Load(name)
		if err != nil {
			l.logger.Debug("omitting talon from summary", zap.String("name", name), zap.Error(err))
			continue
		}

		m := info.Manifest
		fmt.Fprintf(&b, "## %s (v%s)\n", m.Name, m.Version)
		fmt.Fprintf(&b, "%s\n\n", m.Description)

		if len(m.Commands) > 0 {
			b.WriteString("Commands:\n")
			for _, cmd := range m.Commands {
				fmt.Fprintf(&b, "- %s: %s\n", cmd.Name, cmd.Description)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RequiredEnvironment returns the required variables declared by a talon
// that have no default and are not set according to lookup.
func (l *Loader) RequiredEnvironment(name string, lookup func(string) (string, bool)) ([]manifest.EnvVar, error) {
	info, err := l.Load(name)
	if err != nil {
		return nil, err
	}

	missing := []manifest.EnvVar{}
	for _, env := range info.Manifest.Environment {
		if !env.Required || env.Default != "" {
			continue
		}
		if v, ok := lookup(env.Name); ok && v != "" {
			continue
		}
		missing = append(missing, env)
	}
	return missing, nil
}
