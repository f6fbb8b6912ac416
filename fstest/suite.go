// Package fstest provides conformance tests for core.FS providers.
//
// The checks cover the contracts the fsutil helpers depend on: not-found
// errors that satisfy errors.Is(err, fs.ErrNotExist), exclusive creation that
// fails with fs.ErrExist, directory listings that report links as links, and
// link removal that leaves the target alone.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) core.FS {
//	        return myprovider.New(t.TempDir())
//	    })
//	}
package fstest

import (
	"slices"
	"testing"

	"github.com/jmgilman/go/fsutil/core"
)

// Config adjusts the suite to a provider.
type Config struct {
	// SupportsChmod indicates Chmod changes modes. When false, Chmod must
	// fail with core.ErrUnsupported.
	SupportsChmod bool

	// SkipTests lists test groups to skip, e.g. "SymlinkFS".
	SkipTests []string
}

// NewFSFunc returns a fresh, empty filesystem for one test group.
type NewFSFunc func(t *testing.T) core.FS

// TestSuite runs every applicable group with a default Config.
func TestSuite(t *testing.T, newFS NewFSFunc) {
	TestSuiteWithConfig(t, newFS, Config{SupportsChmod: true})
}

// TestSuiteWithConfig runs every applicable group.
func TestSuiteWithConfig(t *testing.T, newFS NewFSFunc, config Config) {
	groups := []struct {
		name string
		run  func(t *testing.T, filesystem core.FS, config Config)
	}{
		{"ReadFS", TestReadFS},
		{"WriteFS", TestWriteFS},
		{"ManageFS", TestManageFS},
		{"MetadataFS", TestMetadataFS},
		{"SymlinkFS", TestSymlinkFS},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if slices.Contains(config.SkipTests, g.name) {
				t.Skip("Skipped by provider configuration")
			}
			g.run(t, newFS(t), config)
		})
	}
}
