package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fsutil/core"
)

// TestManageFS checks Remove and Rename.
func TestManageFS(t *testing.T, filesystem core.FS, _ Config) {
	t.Run("RemoveFile", func(t *testing.T) {
		if err := filesystem.WriteFile("gone.txt", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(gone.txt): setup failed: %v", err)
		}
		if err := filesystem.Remove("gone.txt"); err != nil {
			t.Fatalf("Remove(gone.txt): got error %v, want nil", err)
		}
		if _, err := filesystem.Stat("gone.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(gone.txt) after Remove: got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("RemoveNotExist", func(t *testing.T) {
		if err := filesystem.Remove("never.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(never.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("RemoveNonEmptyDirectory", func(t *testing.T) {
		if err := filesystem.WriteFile("full/file.txt", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(full/file.txt): setup failed: %v", err)
		}
		if err := filesystem.Remove("full"); err == nil {
			t.Error("Remove(full): got nil error, want an error for a non-empty directory")
		}
	})

	t.Run("RemoveEmptyDirectory", func(t *testing.T) {
		if err := filesystem.MkdirAll("empty", 0o755); err != nil {
			t.Fatalf("MkdirAll(empty): setup failed: %v", err)
		}
		if err := filesystem.Remove("empty"); err != nil {
			t.Errorf("Remove(empty): got error %v, want nil", err)
		}
	})

	t.Run("Rename", func(t *testing.T) {
		if err := filesystem.WriteFile("old.txt", []byte("data"), 0o644); err != nil {
			t.Fatalf("WriteFile(old.txt): setup failed: %v", err)
		}
		if err := filesystem.Rename("old.txt", "new.txt"); err != nil {
			t.Fatalf("Rename(old.txt, new.txt): got error %v, want nil", err)
		}
		if ok, _ := filesystem.Exists("old.txt"); ok {
			t.Error("Exists(old.txt) after Rename = true, want false")
		}
		if data, _ := filesystem.ReadFile("new.txt"); string(data) != "data" {
			t.Errorf("ReadFile(new.txt) = %q, want %q", data, "data")
		}
	})
}
