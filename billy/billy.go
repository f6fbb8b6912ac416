package billy

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/go/fsutil/core"
)

// LocalFS exposes the host filesystem below a root directory.
type LocalFS struct {
	base
	root string
}

// MemoryFS is an in-memory filesystem.
type MemoryFS struct {
	base
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	root string
}

// WithRoot sets the directory a LocalFS is rooted at. Names passed to the
// filesystem are resolved below it. The default root is "/".
func WithRoot(dir string) Option {
	return func(c *config) {
		c.root = dir
	}
}

// NewLocal creates a go-billy backed local filesystem.
func NewLocal(opts ...Option) *LocalFS {
	cfg := config{root: "/"}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &LocalFS{
		base: base{bfs: osfs.New(cfg.root)},
		root: cfg.root,
	}
}

// NewMemory creates an empty go-billy backed in-memory filesystem.
// Options are accepted for symmetry with NewLocal and ignored.
func NewMemory(_ ...Option) *MemoryFS {
	return &MemoryFS{
		base: base{bfs: memfs.New()},
	}
}

// Root returns the directory the filesystem is rooted at.
func (lfs *LocalFS) Root() string {
	return lfs.root
}

// Chmod changes the mode of the named file through the host OS, which
// go-billy's osfs does not expose.
func (lfs *LocalFS) Chmod(name string, mode fs.FileMode) error {
	return os.Chmod(filepath.Join(lfs.root, filepath.FromSlash(normalize(name))), mode)
}

// Type returns FSTypeLocal.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// Chmod always fails: memfs keeps the mode given at creation.
func (mfs *MemoryFS) Chmod(name string, _ fs.FileMode) error {
	return &fs.PathError{Op: "chmod", Path: name, Err: core.ErrUnsupported}
}

// Type returns FSTypeMemory.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// base implements everything LocalFS and MemoryFS share on top of a
// billy.Filesystem.
type base struct {
	bfs billy.Filesystem
}

// Unwrap returns the underlying billy.Filesystem.
func (b *base) Unwrap() billy.Filesystem {
	return b.bfs
}

// normalize converts paths to use forward slashes consistently.
// Security checks are left to billy.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// dirEntry adapts fs.FileInfo to fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Open opens the named file for reading.
func (b *base) Open(name string) (fs.File, error) {
	name = normalize(name)
	f, err := b.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: b.bfs, name: name}, nil
}

// Stat returns metadata for the named file, following links.
func (b *base) Stat(name string) (fs.FileInfo, error) {
	return b.bfs.Stat(normalize(name))
}

// Lstat returns metadata for the named entry without following a final link.
func (b *base) Lstat(name string) (fs.FileInfo, error) {
	return b.bfs.Lstat(normalize(name))
}

// ReadDir lists a directory. billy returns fs.FileInfo values gathered with
// lstat semantics, so links keep fs.ModeSymlink.
func (b *base) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := b.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (b *base) ReadFile(name string) ([]byte, error) {
	f, err := b.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file or directory exists.
func (b *base) Exists(name string) (bool, error) {
	_, err := b.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Create creates or truncates the named file for writing.
func (b *base) Create(name string) (core.File, error) {
	name = normalize(name)
	f, err := b.bfs.Create(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: b.bfs, name: name}, nil
}

// OpenFile opens a file with the specified flags and permissions.
func (b *base) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = normalize(name)
	f, err := b.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: b.bfs, name: name}, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (b *base) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f, err := b.bfs.OpenFile(normalize(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Mkdir creates a single directory. Unlike MkdirAll it fails if the
// directory exists or its parent does not.
func (b *base) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if _, err := b.bfs.Stat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	parent := filepath.Dir(name)
	if parent != "." && parent != "/" {
		if _, err := b.bfs.Stat(parent); err != nil {
			return err
		}
	}
	// The parent exists, so MkdirAll creates exactly one directory.
	return b.bfs.MkdirAll(name, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (b *base) MkdirAll(path string, perm fs.FileMode) error {
	return b.bfs.MkdirAll(normalize(path), perm)
}

// Remove removes a file, an empty directory or a link.
func (b *base) Remove(name string) error {
	return b.bfs.Remove(normalize(name))
}

// Rename renames (moves) oldpath to newpath.
func (b *base) Rename(oldpath, newpath string) error {
	return b.bfs.Rename(normalize(oldpath), normalize(newpath))
}

// Symlink creates newname as a link to oldname. The target is stored as given.
func (b *base) Symlink(oldname, newname string) error {
	return b.bfs.Symlink(oldname, normalize(newname))
}

// Readlink returns the target of the named link.
func (b *base) Readlink(name string) (string, error) {
	return b.bfs.Readlink(normalize(name))
}

// Compile-time interface checks.
var (
	_ core.FS         = (*LocalFS)(nil)
	_ core.MetadataFS = (*LocalFS)(nil)
	_ core.SymlinkFS  = (*LocalFS)(nil)
	_ core.FS         = (*MemoryFS)(nil)
	_ core.MetadataFS = (*MemoryFS)(nil)
	_ core.SymlinkFS  = (*MemoryFS)(nil)
)
