package errors

// ErrorCode identifies a category of failure.
// Codes are strings so they read well in logs and serialize naturally.
type ErrorCode string

const (
	// CodeNotFound indicates a file or directory does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates the target of a create or copy already exists.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeForbidden indicates the platform refused the operation.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// CodeInvalidInput indicates an argument or option is invalid.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeSharingViolation indicates the entry is in use by another process.
	CodeSharingViolation ErrorCode = "SHARING_VIOLATION"

	// CodeTimeout indicates an operation exceeded its time limit.
	CodeTimeout ErrorCode = "TIMEOUT"

	// CodeUnavailable indicates the resource is temporarily unavailable.
	CodeUnavailable ErrorCode = "UNAVAILABLE"

	// CodeNotImplemented indicates the provider does not support the operation.
	CodeNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// CodeInternal indicates a bug or broken invariant.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown is used for errors that carry no code.
	CodeUnknown ErrorCode = "UNKNOWN"
)
