package fsutil

import (
	"io/fs"

	"github.com/jmgilman/go/fsutil/core"
	"github.com/jmgilman/go/fsutil/errors"
)

const ownerWrite fs.FileMode = 0o200

// ClearReadOnly makes the file at path writable by its owner. Directories
// and missing paths are left alone; other permission bits are preserved. An
// empty path fails with CodeInvalidInput.
func ClearReadOnly(path string) error {
	fsys, name, err := localFS(path)
	if err != nil {
		return err
	}
	return ClearReadOnlyFS(fsys, name)
}

// ClearReadOnlyFS is ClearReadOnly on fsys. It fails with core.ErrUnsupported
// if the file is read-only and fsys cannot change permissions.
func ClearReadOnlyFS(fsys core.FS, name string) error {
	info, err := fsys.Stat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.IsDir() || info.Mode().Perm()&ownerWrite != 0 {
		return nil
	}

	mfs, ok := fsys.(core.MetadataFS)
	if !ok {
		return &fs.PathError{Op: "chmod", Path: name, Err: core.ErrUnsupported}
	}
	keep := fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky
	return mfs.Chmod(name, info.Mode()&keep|ownerWrite)
}
