//go:build unix

package fsutil

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// EBUSY is returned for entries held by another process or mount;
// ETXTBSY for executables that are currently running.
var sharingViolationCodes = []syscall.Errno{unix.EBUSY, unix.ETXTBSY}
