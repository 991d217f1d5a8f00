package platform

import (
	"os"
	"runtime"
)

// CopyMode applies the permission bits of mode to path so a copied file keeps
// its source's executable bits regardless of the process umask. On Windows
// this is a no-op because Windows does not support Unix-style permission bits.
func CopyMode(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode.Perm())
}
