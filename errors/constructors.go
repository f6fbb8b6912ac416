package errors

import "fmt"

// New creates a PlatformError with the default classification for code.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidInput, "retry delay must not be negative")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:           code,
		classification: DefaultClassification(code),
		message:        message,
	}
}

// Newf creates a PlatformError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}
