package fstest

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/jmgilman/go/fsutil/core"
)

// TestWriteFS checks file and directory creation.
func TestWriteFS(t *testing.T, filesystem core.FS, _ Config) {
	t.Run("MkdirAllIdempotent", func(t *testing.T) {
		if err := filesystem.MkdirAll("x/y/z", 0o755); err != nil {
			t.Fatalf("MkdirAll(x/y/z): got error %v, want nil", err)
		}
		if err := filesystem.MkdirAll("x/y/z", 0o755); err != nil {
			t.Errorf("MkdirAll(x/y/z) again: got error %v, want nil", err)
		}
		info, err := filesystem.Stat("x/y")
		if err != nil || !info.IsDir() {
			t.Errorf("Stat(x/y): got (%v, %v), want a directory", info, err)
		}
	})

	t.Run("MkdirExisting", func(t *testing.T) {
		if err := filesystem.Mkdir("once", 0o755); err != nil {
			t.Fatalf("Mkdir(once): got error %v, want nil", err)
		}
		if err := filesystem.Mkdir("once", 0o755); !errors.Is(err, fs.ErrExist) {
			t.Errorf("Mkdir(once) again: got error %v, want fs.ErrExist", err)
		}
	})

	t.Run("ExclusiveCreate", func(t *testing.T) {
		if err := filesystem.WriteFile("excl.txt", []byte("first"), 0o644); err != nil {
			t.Fatalf("WriteFile(excl.txt): setup failed: %v", err)
		}
		f, err := filesystem.OpenFile("excl.txt", os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			_ = f.Close()
			t.Fatal("OpenFile(excl.txt, O_EXCL): got nil error, want fs.ErrExist")
		}
		if !errors.Is(err, fs.ErrExist) {
			t.Errorf("OpenFile(excl.txt, O_EXCL): got error %v, want fs.ErrExist", err)
		}
		data, _ := filesystem.ReadFile("excl.txt")
		if string(data) != "first" {
			t.Errorf("ReadFile(excl.txt) = %q, want %q", data, "first")
		}
	})

	t.Run("CreateAndWrite", func(t *testing.T) {
		f, err := filesystem.Create("created.txt")
		if err != nil {
			t.Fatalf("Create(created.txt): got error %v, want nil", err)
		}
		if _, err := f.Write([]byte("hello")); err != nil {
			t.Fatalf("Write: got error %v, want nil", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close: got error %v, want nil", err)
		}
		data, err := filesystem.ReadFile("created.txt")
		if err != nil || string(data) != "hello" {
			t.Errorf("ReadFile(created.txt) = (%q, %v), want (%q, nil)", data, err, "hello")
		}
	})
}
