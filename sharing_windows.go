//go:build windows

package fsutil

import (
	"syscall"

	"golang.org/x/sys/windows"
)

var sharingViolationCodes = []syscall.Errno{windows.ERROR_SHARING_VIOLATION}
