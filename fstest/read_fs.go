package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fsutil/core"
)

// TestReadFS checks Stat, ReadDir, ReadFile and Exists.
func TestReadFS(t *testing.T, filesystem core.FS, _ Config) {
	if err := filesystem.MkdirAll("dir/sub", 0o755); err != nil {
		t.Fatalf("MkdirAll(dir/sub): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("dir/b.txt", []byte("bee"), 0o644); err != nil {
		t.Fatalf("WriteFile(dir/b.txt): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("dir/a.txt", []byte("ay"), 0o644); err != nil {
		t.Fatalf("WriteFile(dir/a.txt): setup failed: %v", err)
	}

	t.Run("ReadDirSorted", func(t *testing.T) {
		entries, err := filesystem.ReadDir("dir")
		if err != nil {
			t.Fatalf("ReadDir(dir): got error %v, want nil", err)
		}
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		want := []string{"a.txt", "b.txt", "sub"}
		if len(names) != len(want) {
			t.Fatalf("ReadDir(dir) = %v, want %v", names, want)
		}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("ReadDir(dir)[%d] = %q, want %q", i, names[i], want[i])
			}
		}
		if !entries[2].IsDir() {
			t.Error("ReadDir(dir): sub IsDir() = false, want true")
		}
	})

	t.Run("ReadFile", func(t *testing.T) {
		data, err := filesystem.ReadFile("dir/b.txt")
		if err != nil {
			t.Fatalf("ReadFile(dir/b.txt): got error %v, want nil", err)
		}
		if string(data) != "bee" {
			t.Errorf("ReadFile(dir/b.txt) = %q, want %q", data, "bee")
		}
	})

	t.Run("StatNotExist", func(t *testing.T) {
		_, err := filesystem.Stat("dir/missing.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(dir/missing.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("ReadDirNotExist", func(t *testing.T) {
		_, err := filesystem.ReadDir("nowhere")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadDir(nowhere): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		for name, want := range map[string]bool{"dir": true, "dir/a.txt": true, "dir/nope": false} {
			got, err := filesystem.Exists(name)
			if err != nil {
				t.Errorf("Exists(%s): got error %v, want nil", name, err)
			}
			if got != want {
				t.Errorf("Exists(%s) = %v, want %v", name, got, want)
			}
		}
	})
}
