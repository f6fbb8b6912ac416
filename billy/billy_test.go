package billy

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/fsutil/core"
	"github.com/jmgilman/go/fsutil/fstest"
)

// TestLocalFS_Conformance runs the provider conformance suite against a
// LocalFS rooted in a temporary directory.
func TestLocalFS_Conformance(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) core.FS {
		return NewLocal(WithRoot(t.TempDir()))
	})
}

// TestMemoryFS_Conformance runs the provider conformance suite against a
// fresh MemoryFS.
func TestMemoryFS_Conformance(t *testing.T) {
	fstest.TestSuiteWithConfig(t, func(t *testing.T) core.FS {
		return NewMemory()
	}, fstest.Config{SupportsChmod: false})
}

// TestLocalFS_Constructor verifies NewLocal defaults to the filesystem root.
func TestLocalFS_Constructor(t *testing.T) {
	lfs := NewLocal()
	if lfs == nil {
		t.Fatal("NewLocal() returned nil")
	}
	if lfs.Unwrap() == nil {
		t.Error("NewLocal().Unwrap() = nil")
	}
	if lfs.Root() != "/" {
		t.Errorf("NewLocal().Root() = %q, want %q", lfs.Root(), "/")
	}
}

// TestLocalFS_WithRoot verifies names resolve below the configured root.
func TestLocalFS_WithRoot(t *testing.T) {
	root := t.TempDir()
	lfs := NewLocal(WithRoot(root))

	if err := lfs.WriteFile("nested/file.txt", []byte("data"), 0o644); err != nil {
		t.Fatalf("WriteFile(nested/file.txt) error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "nested", "file.txt"))
	if err != nil {
		t.Fatalf("os.ReadFile() error = %v", err)
	}
	if string(data) != "data" {
		t.Errorf("os.ReadFile() = %q, want %q", data, "data")
	}
}

// TestLocalFS_Chmod verifies Chmod reaches the host filesystem.
func TestLocalFS_Chmod(t *testing.T) {
	root := t.TempDir()
	lfs := NewLocal(WithRoot(root))

	if err := lfs.WriteFile("ro.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(ro.txt) error = %v", err)
	}
	if err := lfs.Chmod("ro.txt", 0o400); err != nil {
		t.Fatalf("Chmod(ro.txt) error = %v", err)
	}

	info, err := os.Stat(filepath.Join(root, "ro.txt"))
	if err != nil {
		t.Fatalf("os.Stat() error = %v", err)
	}
	if info.Mode().Perm()&0o200 != 0 {
		t.Errorf("mode = %v, want owner write bit cleared", info.Mode())
	}
}

// TestMemoryFS_ChmodUnsupported verifies MemoryFS reports ErrUnsupported
// wrapped in a PathError.
func TestMemoryFS_ChmodUnsupported(t *testing.T) {
	mfs := NewMemory()
	err := mfs.Chmod("any", 0o644)

	if !errors.Is(err, core.ErrUnsupported) {
		t.Errorf("Chmod() error = %v, want core.ErrUnsupported", err)
	}
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) || pathErr.Path != "any" {
		t.Errorf("Chmod() error = %#v, want *fs.PathError for %q", err, "any")
	}
}

// TestFSTypes verifies Type() for both providers.
func TestFSTypes(t *testing.T) {
	if got := NewLocal().Type(); got != core.FSTypeLocal {
		t.Errorf("LocalFS.Type() = %s, want %s", got, core.FSTypeLocal)
	}
	if got := NewMemory().Type(); got != core.FSTypeMemory {
		t.Errorf("MemoryFS.Type() = %s, want %s", got, core.FSTypeMemory)
	}
}

// TestMemoryFS_LstatLink verifies Lstat does not follow links while Stat does.
func TestMemoryFS_LstatLink(t *testing.T) {
	mfs := NewMemory()
	if err := mfs.MkdirAll("real", 0o755); err != nil {
		t.Fatalf("MkdirAll(real) error = %v", err)
	}
	if err := mfs.Symlink("real", "alias"); err != nil {
		t.Fatalf("Symlink(real, alias) error = %v", err)
	}

	linfo, err := mfs.Lstat("alias")
	if err != nil {
		t.Fatalf("Lstat(alias) error = %v", err)
	}
	if linfo.Mode()&fs.ModeSymlink == 0 {
		t.Errorf("Lstat(alias).Mode() = %v, want fs.ModeSymlink", linfo.Mode())
	}

	info, err := mfs.Stat("alias")
	if err != nil {
		t.Fatalf("Stat(alias) error = %v", err)
	}
	if !info.IsDir() {
		t.Errorf("Stat(alias).IsDir() = false, want true")
	}
}

// TestNormalize verifies path normalization.
func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a/b/../c", "a/c"},
		{"./a//b/", "a/b"},
		{"", "."},
	}
	for _, tt := range tests {
		if got := normalize(filepath.FromSlash(tt.in)); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
