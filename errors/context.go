package errors

// WithContext returns a copy of err with one more context field.
// Plain errors are converted to CodeUnknown first. Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "path", name)
func WithContext(err error, key string, value any) PlatformError {
	if err == nil {
		return nil
	}
	return WithContextMap(err, map[string]any{key: value})
}

// WithContextMap returns a copy of err with fields merged into its context.
// New fields override existing fields with the same key.
// Returns nil if err is nil.
func WithContextMap(err error, fields map[string]any) PlatformError {
	if err == nil {
		return nil
	}

	pe := asPlatform(err)
	merged := pe.Context()
	if merged == nil {
		merged = make(map[string]any, len(fields))
	}
	for k, v := range fields {
		merged[k] = v
	}

	return &platformError{
		code:           pe.Code(),
		classification: pe.Classification(),
		message:        pe.Message(),
		context:        merged,
		cause:          pe.Unwrap(),
	}
}

// WithClassification returns a copy of err with its classification replaced.
// Returns nil if err is nil.
//
// Example:
//
//	// a lock that outlived the retry budget is no longer worth retrying
//	err = errors.WithClassification(err, errors.ClassificationPermanent)
func WithClassification(err error, classification ErrorClassification) PlatformError {
	if err == nil {
		return nil
	}

	pe := asPlatform(err)
	return &platformError{
		code:           pe.Code(),
		classification: classification,
		message:        pe.Message(),
		context:        pe.Context(),
		cause:          pe.Unwrap(),
	}
}
