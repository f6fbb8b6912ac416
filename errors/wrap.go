package errors

import (
	"fmt"
	"maps"
)

// Wrap wraps err with a code and message. The cause stays reachable through
// errors.Is and errors.As.
//
// When err already is a PlatformError its classification is kept, so a
// retryable cause stays retryable. Returns nil if err is nil.
//
// Example:
//
//	if _, err := fsys.Stat(src); err != nil {
//	    return errors.Wrap(err, errors.CodeNotFound, "source directory not found")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf is Wrap with a formatted message. Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...any) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps err and attaches a copy of ctx in one step.
// Returns nil if err is nil.
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]any) PlatformError {
	if err == nil {
		return nil
	}

	classification := DefaultClassification(code)
	var pe PlatformError
	if As(err, &pe) {
		classification = pe.Classification()
	}

	var ctxCopy map[string]any
	if ctx != nil {
		ctxCopy = maps.Clone(ctx)
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		context:        ctxCopy,
		cause:          err,
	}
}
