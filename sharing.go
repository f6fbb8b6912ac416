package fsutil

import (
	"slices"
	"syscall"

	"github.com/jmgilman/go/fsutil/errors"
)

// IsSharingViolation reports whether err means the entry is in use by another
// process. It matches the platform's error code anywhere in the chain
// (ERROR_SHARING_VIOLATION on Windows, EBUSY or ETXTBSY on Unix) and any
// PlatformError with CodeSharingViolation.
//
// A nil error is not a violation, so IsSharingViolation(nil) returns false
// rather than reporting an invalid argument.
func IsSharingViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.GetCode(err) == errors.CodeSharingViolation {
		return true
	}
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return false
	}
	return slices.Contains(sharingViolationCodes, errno)
}

// Result is the classified outcome of a single attempt.
type Result struct {
	// Err is the error returned by the attempt, nil on success.
	Err error
	// Class is ClassificationRetryable for sharing violations and
	// ClassificationPermanent otherwise. It is empty on success.
	Class errors.ErrorClassification
}

// OK reports whether the attempt succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Retryable reports whether another attempt may succeed.
func (r Result) Retryable() bool {
	return r.Err != nil && r.Class.IsRetryable()
}

// Classify turns the error returned by an attempt into a Result.
func Classify(err error) Result {
	switch {
	case err == nil:
		return Result{}
	case IsSharingViolation(err):
		return Result{Err: err, Class: errors.ClassificationRetryable}
	default:
		return Result{Err: err, Class: errors.ClassificationPermanent}
	}
}
