package fstest

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/fsutil/core"
)

// TestSymlinkFS checks link creation, listing and removal.
// Skips providers without SymlinkFS.
func TestSymlinkFS(t *testing.T, filesystem core.FS, _ Config) {
	sfs, ok := filesystem.(core.SymlinkFS)
	if !ok {
		t.Skip("SymlinkFS not supported")
	}

	if err := filesystem.WriteFile("target/inner.txt", []byte("keep"), 0o644); err != nil {
		t.Fatalf("WriteFile(target/inner.txt): setup failed: %v", err)
	}
	if err := filesystem.MkdirAll("holder", 0o755); err != nil {
		t.Fatalf("MkdirAll(holder): setup failed: %v", err)
	}
	if err := sfs.Symlink("../target", "holder/link"); err != nil {
		t.Fatalf("Symlink(../target, holder/link): got error %v, want nil", err)
	}

	t.Run("Readlink", func(t *testing.T) {
		got, err := sfs.Readlink("holder/link")
		if err != nil {
			t.Fatalf("Readlink(holder/link): got error %v, want nil", err)
		}
		if filepath.ToSlash(got) != "../target" {
			t.Errorf("Readlink(holder/link) = %q, want %q", got, "../target")
		}
	})

	t.Run("ReadDirReportsLink", func(t *testing.T) {
		entries, err := filesystem.ReadDir("holder")
		if err != nil {
			t.Fatalf("ReadDir(holder): got error %v, want nil", err)
		}
		if len(entries) != 1 {
			t.Fatalf("ReadDir(holder) returned %d entries, want 1", len(entries))
		}
		if entries[0].Type()&fs.ModeSymlink == 0 {
			t.Errorf("ReadDir(holder)[0].Type() = %v, want fs.ModeSymlink set", entries[0].Type())
		}
		if entries[0].IsDir() {
			t.Error("ReadDir(holder)[0].IsDir() = true, want false for a link")
		}
	})

	t.Run("RemoveLinkKeepsTarget", func(t *testing.T) {
		if err := filesystem.Remove("holder/link"); err != nil {
			t.Fatalf("Remove(holder/link): got error %v, want nil", err)
		}
		data, err := filesystem.ReadFile("target/inner.txt")
		if err != nil || string(data) != "keep" {
			t.Errorf("ReadFile(target/inner.txt) = (%q, %v), want (%q, nil)", data, err, "keep")
		}
	})
}
