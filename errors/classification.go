package errors

// ErrorClassification tells callers whether an operation is worth retrying.
type ErrorClassification string

const (
	// ClassificationRetryable marks transient failures, such as a file that
	// another process briefly holds open.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent marks failures that will not go away on retry.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeSharingViolation: ClassificationRetryable,
	CodeTimeout:          ClassificationRetryable,
	CodeUnavailable:      ClassificationRetryable,

	CodeNotFound:       ClassificationPermanent,
	CodeAlreadyExists:  ClassificationPermanent,
	CodeForbidden:      ClassificationPermanent,
	CodeInvalidInput:   ClassificationPermanent,
	CodeNotImplemented: ClassificationPermanent,
	CodeInternal:       ClassificationPermanent,
	CodeUnknown:        ClassificationPermanent,
}

// DefaultClassification returns the classification used for code when none
// is given explicitly. Unknown codes are permanent.
func DefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
