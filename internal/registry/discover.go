package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/femtoclaw/talon/internal/branding"
	"github.com/femtoclaw/talon/internal/manifest"
	"go.uber.org/zap"
)

// Discover scans the registry directory for <dir>/<talon>/TALON.md, parses
// each manifest, and upserts an index entry per talon keyed by manifest name.
// A talon whose manifest fails to parse is skipped and logged; it never fails
// the whole scan. The index is persisted before returning.
func (r *Registry) Discover() ([]Info, error) {
	pattern := "*/" + branding.ManifestFile()
	matches, err := doublestar.Glob(os.DirFS(r.dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", r.dir, err)
	}

	discovered := []Info{}
	skipped := 0
	for _, rel := range matches {
		talonDir := filepath.Join(r.dir, filepath.Dir(filepath.FromSlash(rel)))
		m, err := manifest.ParseFile(filepath.Join(talonDir, branding.ManifestFile()))
		if err != nil {
			skipped++
			r.logger.Warn("skipping talon", zap.String("path", talonDir), zap.Error(err))
			continue
		}

		r.index.Talons[m.Name] = entryFromManifest(m, talonDir)
		discovered = append(discovered, Info{
			Manifest:  m,
			Path:      talonDir,
			Installed: true,
		})
	}

	r.logger.Info("discovery finished",
		zap.String("dir", r.dir),
		zap.Int("found", len(discovered)),
		zap.Int("skipped", skipped))

	if err := r.save(); err != nil {
		return nil, err
	}
	return discovered, nil
}
