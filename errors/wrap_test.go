package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, CodeNotFound, "missing"))
		assert.Nil(t, Wrapf(nil, CodeNotFound, "missing %s", "x"))
		assert.Nil(t, WrapWithContext(nil, CodeNotFound, "missing", map[string]any{"a": 1}))
	})

	t.Run("preserves io/fs sentinel", func(t *testing.T) {
		err := Wrapf(fs.ErrExist, CodeAlreadyExists, "file %s already exists", "b.txt")

		require.NotNil(t, err)
		assert.True(t, stderrors.Is(err, fs.ErrExist))
		assert.Equal(t, CodeAlreadyExists, err.Code())
		assert.Equal(t, "[ALREADY_EXISTS] file b.txt already exists: file already exists", err.Error())
	})

	t.Run("preserves platform classification", func(t *testing.T) {
		inner := New(CodeSharingViolation, "locked")
		err := Wrap(inner, CodeForbidden, "cannot delete")

		assert.Equal(t, CodeForbidden, err.Code())
		assert.Equal(t, ClassificationRetryable, err.Classification())
	})

	t.Run("uses default classification for plain errors", func(t *testing.T) {
		err := Wrap(stderrors.New("boom"), CodeTimeout, "slow disk")
		assert.Equal(t, ClassificationRetryable, err.Classification())
	})
}

func TestWrapWithContext_CopiesContext(t *testing.T) {
	ctx := map[string]any{"source": "a"}
	err := WrapWithContext(fs.ErrNotExist, CodeNotFound, "missing", ctx)

	ctx["source"] = "mutated"
	assert.Equal(t, "a", err.Context()["source"])

	got := err.Context()
	got["source"] = "mutated again"
	assert.Equal(t, "a", err.Context()["source"])
}
