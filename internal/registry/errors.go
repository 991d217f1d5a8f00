package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrManifestNotFound is returned by Add when the source directory has
	// no TALON.md at its root.
	ErrManifestNotFound = errors.New("manifest not found")

	// ErrIndexCorrupt is returned when index.json exists but cannot be decoded.
	ErrIndexCorrupt = errors.New("index corrupt")

	// ErrUnsafeName is returned by Add when a manifest name cannot be used as
	// a single directory name inside the registry.
	ErrUnsafeName = errors.New("unsafe talon name")
)

// IOError records a failed filesystem operation and the path involved.
type IOError struct {
	Op   string // e.g. "reading", "copying", "removing"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func ioErr(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
