//go:build !unix && !windows

package fsutil

import "syscall"

var sharingViolationCodes []syscall.Errno
