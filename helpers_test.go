package fsutil

import (
	"io/fs"
	"sync"

	"github.com/jmgilman/go/fsutil/billy"
	"github.com/jmgilman/go/fsutil/errors"
)

// faultFS is an in-memory filesystem whose Remove and Chmod fail on demand.
// Chmod succeeds without effect unless a fault is registered.
type faultFS struct {
	*billy.MemoryFS

	mu     sync.Mutex
	faults map[string]*fault
	calls  map[string]int
}

type fault struct {
	err       error
	remaining int  // negative fails forever
	vanish    bool // remove the entry for real before failing
}

func newFaultFS() *faultFS {
	return &faultFS{
		MemoryFS: billy.NewMemory(),
		faults:   make(map[string]*fault),
		calls:    make(map[string]int),
	}
}

// failRemove makes the next n removals of name return err. A negative n
// fails every removal.
func (f *faultFS) failRemove(name string, n int, err error) {
	f.setFault("remove", name, &fault{err: err, remaining: n})
}

// failChmod makes the next n mode changes of name return err.
func (f *faultFS) failChmod(name string, n int, err error) {
	f.setFault("chmod", name, &fault{err: err, remaining: n})
}

// vanishOnRemove makes the next removal of name delete it and then report
// fs.ErrNotExist, as if another process removed it first.
func (f *faultFS) vanishOnRemove(name string) {
	f.setFault("remove", name, &fault{
		err:       &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist},
		remaining: 1,
		vanish:    true,
	})
}

func (f *faultFS) removeCalls(name string) int {
	return f.callCount("remove", name)
}

func (f *faultFS) chmodCalls(name string) int {
	return f.callCount("chmod", name)
}

func (f *faultFS) Remove(name string) error {
	if flt := f.take("remove", name); flt != nil {
		if flt.vanish {
			_ = f.MemoryFS.Remove(name)
		}
		return flt.err
	}
	return f.MemoryFS.Remove(name)
}

func (f *faultFS) Chmod(name string, _ fs.FileMode) error {
	if flt := f.take("chmod", name); flt != nil {
		return flt.err
	}
	return nil
}

func (f *faultFS) setFault(op, name string, flt *fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults[op+" "+name] = flt
}

func (f *faultFS) callCount(op, name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op+" "+name]
}

// take records a call and returns the fault to apply, if any.
func (f *faultFS) take(op, name string) *fault {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := op + " " + name
	f.calls[key]++
	flt, ok := f.faults[key]
	if !ok || flt.remaining == 0 {
		return nil
	}
	if flt.remaining > 0 {
		flt.remaining--
	}
	return flt
}

func violation(name string) error {
	return &fs.PathError{
		Op:   "remove",
		Path: name,
		Err:  errors.New(errors.CodeSharingViolation, "file is in use"),
	}
}
