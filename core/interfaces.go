package core

import (
	"io"
	"io/fs"
)

// FSType describes what backs a filesystem.
type FSType int

const (
	// FSTypeUnknown indicates the backing store is unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates the host operating system's filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the set of operations every provider supports.
type FS interface {
	fs.FS
	ReadFS
	WriteFS
	ManageFS

	// Type reports what backs the filesystem.
	Type() FSType
}

// ReadFS defines read-only operations.
type ReadFS interface {
	// Open opens the named file for reading.
	Open(name string) (fs.File, error)

	// Stat returns metadata for the named file, following symbolic links.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the entries of the named directory sorted by name.
	// Entries describe the children themselves: a symbolic link is reported
	// with fs.ModeSymlink in Type(), not as its target.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named entry exists.
	// A false result with a non-nil error means existence could not be
	// determined.
	Exists(name string) (bool, error)
}

// WriteFS defines operations that create files and directories.
type WriteFS interface {
	// Create creates or truncates the named file.
	Create(name string) (File, error)

	// OpenFile opens a file with the given os.O_* flags and permissions.
	// Providers must honor O_CREATE|O_EXCL by failing with an error that
	// satisfies errors.Is(err, ErrExist) when the file is present.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to the named file, creating or truncating it.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Mkdir creates a single directory. The parent must exist.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory and any missing parents.
	// It does nothing if the directory already exists.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines operations that remove or move entries.
type ManageFS interface {
	// Remove removes a file, an empty directory or a symbolic link.
	// A symbolic link is removed itself; its target is untouched.
	Remove(name string) error

	// Rename moves oldpath to newpath.
	Rename(oldpath, newpath string) error
}

// File is an open file handle that can also be written.
type File interface {
	fs.File
	io.Writer

	// Name returns the name passed to Open or Create.
	Name() string
}

// MetadataFS exposes entry metadata that is not part of io/fs.
type MetadataFS interface {
	// Lstat returns metadata without following a final symbolic link.
	Lstat(name string) (fs.FileInfo, error)

	// Chmod changes the permission bits of the named entry, following
	// symbolic links. Providers without a mode model return ErrUnsupported.
	Chmod(name string, mode fs.FileMode) error
}

// SymlinkFS exposes symbolic link creation and inspection.
type SymlinkFS interface {
	// Symlink creates newname as a link to oldname.
	Symlink(oldname, newname string) error

	// Readlink returns the target of the named link.
	Readlink(name string) (string, error)
}
