// Package billy provides go-billy backed implementations of core.FS.
//
// LocalFS wraps billy's osfs and operates on the host filesystem; MemoryFS
// wraps memfs and keeps everything in memory, which makes it a drop-in
// substitute for the local disk in tests.
//
//	// Local filesystem rooted at "/"
//	fsys := billy.NewLocal()
//
//	// Local filesystem rooted at a project directory
//	fsys := billy.NewLocal(billy.WithRoot("/srv/data"))
//
//	// Empty in-memory filesystem
//	mem := billy.NewMemory()
//	err := mem.WriteFile("a/b.txt", []byte("data"), 0o644)
//
// Both types implement core.MetadataFS and core.SymlinkFS. memfs has no mode
// model, so MemoryFS.Chmod returns core.ErrUnsupported.
//
// # Thread Safety
//
// LocalFS is safe for concurrent use. MemoryFS inherits memfs semantics and
// must not be mutated concurrently. File handles are not safe for concurrent
// use.
package billy
