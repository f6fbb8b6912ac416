// Package fsutil provides best-effort filesystem helpers for a live disk.
//
// The centerpiece is a recursive delete that tolerates other processes
// briefly holding files open. Each mutating step is retried while it fails
// with a sharing violation, and entries that vanish concurrently count as
// deleted:
//
//	if err := fsutil.Delete("build/output"); err != nil {
//	    return err
//	}
//
// DeleteContext behaves identically but waits between attempts with a timer
// that honors ctx.
//
// The remaining helpers are small and stateless:
//
//   - IsSharingViolation and Classify recognize "file in use" errors
//   - EnsureParentDirectory creates the directories a file path needs
//   - ClearReadOnly makes a read-only file writable
//   - ToValidFileName turns arbitrary text into a safe file name
//   - CopyDirectory copies a tree without overwriting existing files
//   - SamePath compares two paths after resolving them
//
// Every path-based helper has a counterpart that runs against a core.FS, so
// the same code can be exercised on billy.NewMemory() in tests:
//
//	mem := billy.NewMemory()
//	d, err := fsutil.NewDeleter(mem, fsutil.WithMaxAttempts(3))
//	...
//	err = d.Delete("tmp")
//
// Errors from the filesystem are returned unmodified so callers can inspect
// them with errors.Is and errors.As. Errors the package creates itself are
// PlatformErrors from the errors subpackage.
package fsutil
