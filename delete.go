package fsutil

import (
	"context"
	"io/fs"
	"log/slog"
	"path"
	"time"

	"github.com/jmgilman/go/fsutil/core"
	"github.com/jmgilman/go/fsutil/errors"
)

const (
	normalFileMode fs.FileMode = 0o644
	normalDirMode  fs.FileMode = 0o755
)

// Deleter removes trees from a filesystem, retrying each step while it fails
// with a sharing violation.
//
// A Deleter holds no mutable state and is safe for concurrent use. Two
// deleters racing on the same tree both succeed as long as every entry ends
// up gone.
type Deleter struct {
	fsys    core.FS
	policy  RetryPolicy
	onRetry func(path string, attempt int, err error)
	logger  *slog.Logger
}

// NewDeleter returns a Deleter for fsys. It fails with CodeInvalidInput when
// the configured retry policy is invalid.
func NewDeleter(fsys core.FS, opts ...Option) (*Deleter, error) {
	o := newOptions(opts)
	if err := o.policy.Validate(); err != nil {
		return nil, err
	}
	return &Deleter{
		fsys:    fsys,
		policy:  o.policy,
		onRetry: o.onRetry,
		logger:  o.logger,
	}, nil
}

// Delete removes name and, if it is a directory, everything below it.
// A missing entry is not an error; an empty name fails with
// CodeInvalidInput. Between retries the calling goroutine sleeps.
//
// Symbolic links are removed without following them, so the contents of a
// linked directory survive. Permissions are reset before removal so that
// read-only entries do not block it.
func (d *Deleter) Delete(name string) error {
	return d.delete(context.Background(), name, Sleep)
}

// DeleteContext is Delete with waits that end early when ctx is done. In that
// case ctx.Err() is returned and the tree may be partially removed.
func (d *Deleter) DeleteContext(ctx context.Context, name string) error {
	return d.delete(ctx, name, ContextWait)
}

func (d *Deleter) delete(ctx context.Context, name string, wait WaitFunc) error {
	if err := checkPath(name); err != nil {
		return err
	}
	name = path.Clean(name)
	err := d.deleteEntry(ctx, name, wait)
	if err != nil {
		d.logger.Debug("delete failed", "path", name, "error", err)
		return err
	}
	return nil
}

func (d *Deleter) deleteEntry(ctx context.Context, name string, wait WaitFunc) error {
	info, err := d.lstat(name)
	if err != nil {
		if isNotExist(err) {
			return nil
		}
		return err
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		return d.removeEntry(ctx, name, wait)
	}

	if info.IsDir() {
		// A directory's own permissions govern listing and unlinking its
		// children, so they are reset first.
		if err := d.retry(ctx, wait, name, func() error { return d.chmod(name, normalDirMode) }); err != nil {
			if isNotExist(err) {
				return nil
			}
			return err
		}
		if err := d.deleteChildren(ctx, name, wait); err != nil {
			return err
		}
		return d.removeEntry(ctx, name, wait)
	}

	if err := d.retry(ctx, wait, name, func() error { return d.chmod(name, normalFileMode) }); err != nil {
		if isNotExist(err) {
			return nil
		}
		return err
	}
	return d.removeEntry(ctx, name, wait)
}

func (d *Deleter) deleteChildren(ctx context.Context, dir string, wait WaitFunc) error {
	entries, err := d.fsys.ReadDir(dir)
	// A child vanishing mid-listing can surface as not-found for the
	// directory itself, so only a missing directory ends the delete.
	for attempt := 1; isNotExist(err) && attempt < d.policy.MaxAttempts; attempt++ {
		if _, serr := d.lstat(dir); isNotExist(serr) {
			return nil
		}
		if werr := wait(ctx, d.policy.Delay); werr != nil {
			return werr
		}
		entries, err = d.fsys.ReadDir(dir)
	}
	if err != nil {
		if isNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		child := path.Join(dir, entry.Name())
		if entry.Type()&fs.ModeSymlink != 0 {
			err = d.removeEntry(ctx, child, wait)
		} else {
			err = d.deleteEntry(ctx, child, wait)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// removeEntry removes a single file, link, or empty directory.
func (d *Deleter) removeEntry(ctx context.Context, name string, wait WaitFunc) error {
	err := d.retry(ctx, wait, name, func() error { return d.fsys.Remove(name) })
	if err != nil && !isNotExist(err) {
		return err
	}
	d.logger.Debug("removed entry", "path", name)
	return nil
}

func (d *Deleter) retry(ctx context.Context, wait WaitFunc, name string, op func() error) error {
	return d.policy.do(ctx, wait, op, func(attempt int, err error, delay time.Duration) {
		d.logger.Debug("entry in use, retrying",
			"path", name,
			"attempt", attempt,
			"delay", delay,
			"error", err,
		)
		if d.onRetry != nil {
			d.onRetry(name, attempt, err)
		}
	})
}

func (d *Deleter) lstat(name string) (fs.FileInfo, error) {
	if mfs, ok := d.fsys.(core.MetadataFS); ok {
		return mfs.Lstat(name)
	}
	return d.fsys.Stat(name)
}

// chmod resets the permissions of name. Filesystems without permission
// support have nothing that could block removal.
func (d *Deleter) chmod(name string, mode fs.FileMode) error {
	mfs, ok := d.fsys.(core.MetadataFS)
	if !ok {
		return nil
	}
	err := mfs.Chmod(name, mode)
	if errors.Is(err, core.ErrUnsupported) {
		return nil
	}
	return err
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// Delete removes path from the local disk, including everything below it,
// using the default retry policy. A missing path is not an error.
func Delete(path string) error {
	d, name, err := localDeleter(path)
	if err != nil {
		return err
	}
	return d.Delete(name)
}

// DeleteContext is Delete with retry waits that honor ctx.
func DeleteContext(ctx context.Context, path string) error {
	d, name, err := localDeleter(path)
	if err != nil {
		return err
	}
	return d.DeleteContext(ctx, name)
}

func localDeleter(path string) (*Deleter, string, error) {
	fsys, name, err := localFS(path)
	if err != nil {
		return nil, "", err
	}
	d, err := NewDeleter(fsys)
	if err != nil {
		return nil, "", err
	}
	return d, name, nil
}
