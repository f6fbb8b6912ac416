package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNotFound, "source directory not found")

	require.NotNil(t, err)
	assert.Equal(t, CodeNotFound, err.Code())
	assert.Equal(t, ClassificationPermanent, err.Classification())
	assert.Equal(t, "source directory not found", err.Message())
	assert.Equal(t, "[NOT_FOUND] source directory not found", err.Error())
	assert.Nil(t, err.Context())
	assert.Nil(t, err.Unwrap())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidInput, "max attempts must be at least 1, got %d", 0)

	require.NotNil(t, err)
	assert.Equal(t, CodeInvalidInput, err.Code())
	assert.Equal(t, "max attempts must be at least 1, got 0", err.Message())
}

func TestNew_RetryableCode(t *testing.T) {
	err := New(CodeSharingViolation, "file in use")
	assert.True(t, err.Classification().IsRetryable())
	assert.True(t, IsRetryable(err))
}
