package billy

import (
	"io"
	"testing"
)

// TestFile_ReadWriteSeek verifies the File wrapper delegates to billy.
func TestFile_ReadWriteSeek(t *testing.T) {
	mfs := NewMemory()

	f, err := mfs.Create("dir/file.txt")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if f.Name() != "dir/file.txt" {
		t.Errorf("Name() = %q, want %q", f.Name(), "dir/file.txt")
	}
	if _, err := f.Write([]byte("hello world")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	rf, err := mfs.Open("dir/file.txt")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = rf.Close() }()

	seeker, ok := rf.(io.Seeker)
	if !ok {
		t.Fatal("opened file does not implement io.Seeker")
	}
	if _, err := seeker.Seek(6, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	rest, err := io.ReadAll(rf)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(rest) != "world" {
		t.Errorf("ReadAll() after Seek = %q, want %q", rest, "world")
	}

	info, err := rf.Stat()
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() != int64(len("hello world")) {
		t.Errorf("Stat().Size() = %d, want %d", info.Size(), len("hello world"))
	}
}
