package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// It is the standard library errors.Is, re-exported so callers need one import.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// It is the standard library errors.As.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// GetCode returns the code of the outermost PlatformError in err's chain,
// or CodeUnknown.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeAlreadyExists {
//	    // destination was populated by an earlier run
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}
	var pe PlatformError
	if stderrors.As(err, &pe) {
		return pe.Code()
	}
	return CodeUnknown
}

// GetClassification returns the classification of the outermost
// PlatformError in err's chain. Plain errors and nil are permanent, which
// prevents retrying something nobody classified.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}
	var pe PlatformError
	if stderrors.As(err, &pe) {
		return pe.Classification()
	}
	return ClassificationPermanent
}

// IsRetryable reports whether err is classified as retryable.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
