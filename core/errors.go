package core

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs; providers must return errors that satisfy
	// errors.Is(err, ErrNotExist) for both missing files and missing
	// directories.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when the platform denies access.
	ErrPermission = fs.ErrPermission

	// ErrUnsupported is returned by optional operations a provider cannot
	// perform, for example Chmod on an in-memory filesystem.
	ErrUnsupported = errors.New("operation not supported")
)
