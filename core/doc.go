// Package core defines the filesystem capabilities the fsutil helpers walk.
//
// The helpers never touch the os package directly. They operate on an FS,
// which lets the same recursive delete and copy routines run against the
// local disk in production and an in-memory filesystem in tests.
//
// # Interfaces
//
// FS is composed of three required sub-interfaces:
//
//   - ReadFS: Open, Stat, ReadDir, ReadFile, Exists
//   - WriteFS: Create, OpenFile, WriteFile, Mkdir, MkdirAll
//   - ManageFS: Remove, Rename
//
// Optional capabilities are discovered with a type assertion:
//
//   - MetadataFS: Lstat, Chmod
//   - SymlinkFS: Symlink, Readlink
//
//	if mfs, ok := fsys.(core.MetadataFS); ok {
//	    info, err = mfs.Lstat(name)
//	}
//
// Paths are slash-separated and interpreted relative to the provider's root,
// following io/fs conventions.
//
// Implementations live in github.com/jmgilman/go/fsutil/billy.
package core
