package fsutil

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/jmgilman/go/fsutil/core"
	"github.com/jmgilman/go/fsutil/errors"
)

// Copier copies directory trees without ever overwriting an existing file.
type Copier struct {
	fsys   core.FS
	logger *slog.Logger
}

// NewCopier returns a Copier reading from fsys. Only WithLogger applies.
func NewCopier(fsys core.FS, opts ...Option) *Copier {
	o := newOptions(opts)
	return &Copier{fsys: fsys, logger: o.logger}
}

// Copy copies the directory src to dst on the same filesystem. See
// CopyBetween.
func (c *Copier) Copy(src, dst string) error {
	return c.CopyBetween(src, c.fsys, dst)
}

// CopyBetween copies the directory src into dst on dstFS, creating dst and
// any missing subdirectories. File permissions are preserved. A symbolic
// link to a file is copied as a regular file with the target's content; a
// symbolic link to a directory is skipped.
//
// The copy fails with CodeNotFound if src is missing or not a directory, and
// with CodeAlreadyExists on the first file that already exists below dst.
// An empty src or dst, or copying a directory into itself, fails with
// CodeInvalidInput. Files copied before a failure are left in place.
func (c *Copier) CopyBetween(src string, dstFS core.FS, dst string) error {
	if err := checkPath(src); err != nil {
		return err
	}
	if err := checkPath(dst); err != nil {
		return err
	}
	src, dst = path.Clean(src), path.Clean(dst)
	info, err := c.fsys.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.WrapWithContext(err, errors.CodeNotFound, "source directory not found", map[string]any{
				"source": src,
			})
		}
		return err
	}
	if !info.IsDir() {
		return errors.WrapWithContext(fs.ErrNotExist, errors.CodeNotFound, "source is not a directory", map[string]any{
			"source": src,
		})
	}
	if dstFS == c.fsys && within(dst, src) {
		return errors.WithContextMap(
			errors.New(errors.CodeInvalidInput, "destination is inside the source directory"),
			map[string]any{"source": src, "destination": dst},
		)
	}
	return c.copyDir(src, dstFS, dst)
}

// within reports whether name is dir or lies below it.
func within(name, dir string) bool {
	return dir == "." || name == dir || strings.HasPrefix(name, dir+"/")
}

func (c *Copier) copyDir(src string, dstFS core.FS, dst string) error {
	if err := dstFS.MkdirAll(dst, normalDirMode); err != nil {
		return err
	}
	entries, err := c.fsys.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		from := path.Join(src, entry.Name())
		to := path.Join(dst, entry.Name())

		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := c.fsys.Stat(from)
			if err != nil {
				return err
			}
			if target.IsDir() {
				c.logger.Debug("skipping directory link", "path", from)
				continue
			}
			isDir = false
		}

		if isDir {
			err = c.copyDir(from, dstFS, to)
		} else {
			err = c.copyFile(from, dstFS, to)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Copier) copyFile(src string, dstFS core.FS, dst string) (err error) {
	in, err := c.fsys.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := dstFS.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return errors.WrapWithContext(err, errors.CodeAlreadyExists, "destination file already exists", map[string]any{
				"source":      src,
				"destination": dst,
			})
		}
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	c.logger.Debug("copied file", "source", src, "destination", dst)
	return nil
}

// CopyDirectory copies the local directory src into dst. It never
// overwrites: an existing file below dst fails the copy with
// CodeAlreadyExists. See Copier.CopyBetween.
func CopyDirectory(src, dst string) error {
	srcFS, srcName, err := localFS(src)
	if err != nil {
		return err
	}
	dstFS, dstName, err := localFS(dst)
	if err != nil {
		return err
	}
	if dstFS.Root() == srcFS.Root() {
		return NewCopier(srcFS).Copy(srcName, dstName)
	}
	return NewCopier(srcFS).CopyBetween(srcName, dstFS, dstName)
}
