package registry

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/femtoclaw/talon/internal/branding"
	"github.com/femtoclaw/talon/internal/manifest"
	"github.com/femtoclaw/talon/internal/platform"
	"go.uber.org/zap"
)

// Add installs the talon rooted at source into the registry under
// <dir>/<manifest name>, replacing any previous installation of that name,
// and returns the talon name.
//
// The previous directory is deleted before copying. If the copy then fails
// the talon is left uninstalled; there is no rollback.
func (r *Registry) Add(source string) (string, error) {
	src, err := filepath.Abs(source)
	if err != nil {
		return "", ioErr("resolving", source, err)
	}

	manifestPath := filepath.Join(src, branding.ManifestFile())
	info, err := os.Stat(manifestPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w in %s", ErrManifestNotFound, src)
		}
		return "", ioErr("reading", manifestPath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w in %s", ErrManifestNotFound, src)
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return "", ioErr("reading", manifestPath, err)
	}
	m, err := manifest.Parse(string(data))
	if err != nil {
		return "", fmt.Errorf("parsing manifest %s: %w", manifestPath, err)
	}
	if err := checkName(m.Name); err != nil {
		return "", err
	}

	dest := filepath.Join(r.dir, m.Name)
	if prev, ok := r.index.Talons[m.Name]; ok {
		r.logReplace(prev, m)
	}

	switch {
	case dest == src:
		// Already in place; only the index needs refreshing.
	case isWithin(dest, src):
		return "", fmt.Errorf("cannot install %s into its own subdirectory %s", src, dest)
	case isWithin(src, dest):
		return "", fmt.Errorf("cannot install %s over its parent directory %s", src, dest)
	default:
		if err := os.RemoveAll(dest); err != nil {
			return "", ioErr("removing", dest, err)
		}
		if err := copyDir(src, dest); err != nil {
			return "", err
		}
	}

	r.index.Talons[m.Name] = entryFromManifest(m, dest)
	if err := r.save(); err != nil {
		return "", err
	}

	r.logger.Info("installed talon", zap.String("name", m.Name), zap.String("version", m.Version), zap.String("path", dest))
	return m.Name, nil
}

// Remove deletes an installed talon's directory and its index entry.
// Removing an unknown name is a no-op.
func (r *Registry) Remove(name string) error {
	entry, ok := r.index.Talons[name]
	if !ok {
		return nil
	}

	if err := os.RemoveAll(entry.Path); err != nil {
		return ioErr("removing", entry.Path, err)
	}

	delete(r.index.Talons, name)
	if err := r.save(); err != nil {
		return err
	}

	r.logger.Info("removed talon", zap.String("name", name), zap.String("path", entry.Path))
	return nil
}

func (r *Registry) logReplace(prev Entry, next *manifest.Manifest) {
	fields := []zap.Field{
		zap.String("name", next.Name),
		zap.String("from", prev.Version),
		zap.String("to", next.Version),
	}
	if cmp, ok := manifest.CompareVersions(prev.Version, next.Version); ok {
		switch {
		case cmp < 0:
			fields = append(fields, zap.String("change", "upgrade"))
		case cmp > 0:
			fields = append(fields, zap.String("change", "downgrade"))
		default:
			fields = append(fields, zap.String("change", "reinstall"))
		}
	}
	r.logger.Info("replacing installed talon", fields...)
}

// checkName rejects names that would not land exactly one level below the
// registry directory, or that would collide with the index file.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." || name == branding.IndexFile() ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrUnsafeName, name)
	}
	return nil
}

// isWithin reports whether path is strictly inside dir.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == "." {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// copyDir recursively copies the contents of src into dst, creating dst.
// Symlinks and other special files are skipped.
func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return ioErr("reading", src, err)
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return ioErr("creating", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return ioErr("reading", src, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case entry.IsDir():
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyFile copies a single file from src to dst, preserving permissions.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return ioErr("reading", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return ioErr("reading", src, err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return ioErr("copying", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return ioErr("copying", dst, err)
	}
	if err := out.Close(); err != nil {
		return ioErr("copying", dst, err)
	}

	if err := platform.CopyMode(dst, info.Mode()); err != nil {
		return ioErr("copying", dst, err)
	}
	return nil
}
