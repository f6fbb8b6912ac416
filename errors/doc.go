// Package errors provides structured errors for filesystem helpers.
//
// Errors created by this package carry a code, a retry classification and
// optional context metadata, while staying compatible with the standard
// library (errors.Is, errors.As, errors.Unwrap). Wrapping an io/fs sentinel
// keeps it visible to callers:
//
//	err := errors.Wrapf(fs.ErrExist, errors.CodeAlreadyExists, "file %s already exists", dst)
//	stderrors.Is(err, fs.ErrExist) // true
//
// # Codes and Classification
//
// Every ErrorCode maps to a default ErrorClassification. Only transient
// conditions are retryable:
//
//   - CodeSharingViolation: the entry is held open by another process
//   - CodeTimeout, CodeUnavailable
//
// Everything else, including CodeNotFound and CodeForbidden, is permanent.
// Unknown codes default to permanent so that nothing is retried by accident.
//
// # Context
//
// Context fields describe the operation that failed:
//
//	err = errors.WithContextMap(err, map[string]any{
//	    "source":      src,
//	    "destination": dst,
//	})
//
// Errors are immutable; every helper returns a new value.
package errors
