package fsutil

import (
	"path/filepath"

	"github.com/jmgilman/go/fsutil/billy"
	"github.com/jmgilman/go/fsutil/errors"
)

// checkPath rejects the empty path, which would otherwise resolve to the
// working directory or the filesystem root.
func checkPath(p string) error {
	if p == "" {
		return errors.New(errors.CodeInvalidInput, "path must not be empty")
	}
	return nil
}

// localFS resolves p against the working directory and returns a local
// filesystem rooted at its volume together with the slash-separated name of
// p inside it.
func localFS(p string) (*billy.LocalFS, string, error) {
	if err := checkPath(p); err != nil {
		return nil, "", err
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return nil, "", err
	}
	root := filepath.VolumeName(abs) + string(filepath.Separator)
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return nil, "", err
	}
	return billy.NewLocal(billy.WithRoot(root)), filepath.ToSlash(rel), nil
}
