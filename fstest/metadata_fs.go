package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fsutil/core"
)

// TestMetadataFS checks Lstat and Chmod. Skips providers without MetadataFS.
func TestMetadataFS(t *testing.T, filesystem core.FS, config Config) {
	mfs, ok := filesystem.(core.MetadataFS)
	if !ok {
		t.Skip("MetadataFS not supported")
	}

	if err := filesystem.WriteFile("meta.txt", []byte("m"), 0o644); err != nil {
		t.Fatalf("WriteFile(meta.txt): setup failed: %v", err)
	}

	t.Run("Lstat", func(t *testing.T) {
		info, err := mfs.Lstat("meta.txt")
		if err != nil {
			t.Fatalf("Lstat(meta.txt): got error %v, want nil", err)
		}
		if !info.Mode().IsRegular() {
			t.Errorf("Lstat(meta.txt).Mode() = %v, want a regular file", info.Mode())
		}
		if _, err := mfs.Lstat("absent"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Lstat(absent): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("Chmod", func(t *testing.T) {
		err := mfs.Chmod("meta.txt", 0o444)
		if !config.SupportsChmod {
			if !errors.Is(err, core.ErrUnsupported) {
				t.Errorf("Chmod(meta.txt): got error %v, want core.ErrUnsupported", err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Chmod(meta.txt, 0444): got error %v, want nil", err)
		}
		info, err := filesystem.Stat("meta.txt")
		if err != nil {
			t.Fatalf("Stat(meta.txt): got error %v, want nil", err)
		}
		if info.Mode().Perm()&0o200 != 0 {
			t.Errorf("Stat(meta.txt).Mode() = %v, want owner write bit cleared", info.Mode())
		}
		if err := mfs.Chmod("meta.txt", 0o644); err != nil {
			t.Errorf("Chmod(meta.txt, 0644): got error %v, want nil", err)
		}
	})
}
