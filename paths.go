package fsutil

import (
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jmgilman/go/fsutil/core"
)

// EnsureParentDirectory creates every missing directory above path, resolving
// relative paths against the working directory. It does nothing for a path
// that has no parent, such as a filesystem root. An empty path fails with
// CodeInvalidInput.
func EnsureParentDirectory(path string) error {
	fsys, name, err := localFS(path)
	if err != nil {
		return err
	}
	return EnsureParentDirectoryFS(fsys, name)
}

// EnsureParentDirectoryFS is EnsureParentDirectory on fsys.
func EnsureParentDirectoryFS(fsys core.FS, name string) error {
	parent := path.Dir(path.Clean(name))
	if parent == "." || parent == "/" {
		return nil
	}
	return fsys.MkdirAll(parent, normalDirMode)
}

// SamePath reports whether a and b name the same location once both are made
// absolute and cleaned. The comparison ignores case on Windows and macOS.
// Symbolic links are not resolved.
func SamePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	if caseInsensitive() {
		return strings.EqualFold(absA, absB), nil
	}
	return absA == absB, nil
}

func caseInsensitive() bool {
	return runtime.GOOS == "windows" || runtime.GOOS == "darwin"
}
