package errors

// PlatformError is an error with a code, a retry classification and
// contextual metadata.
//
// It participates in the standard error chain, so errors.Is and errors.As
// see through it to the wrapped cause.
type PlatformError interface {
	error

	// Code identifies the kind of failure.
	Code() ErrorCode

	// Classification reports whether retrying may succeed.
	Classification() ErrorClassification

	// Message is the human-readable message without the cause.
	Message() string

	// Context returns a copy of the attached metadata, or nil.
	Context() map[string]any

	// Unwrap returns the wrapped cause, or nil.
	Unwrap() error
}
