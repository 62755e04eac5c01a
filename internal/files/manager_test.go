package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestManagerPaths(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if got, want := mgr.StatePath(), filepath.Join(tmp, "state.json"); got != want {
		t.Fatalf("StatePath() = %q, want %q", got, want)
	}
	if got, want := mgr.ConfigPath(), filepath.Join(tmp, "config.env"); got != want {
		t.Fatalf("ConfigPath() = %q, want %q", got, want)
	}
	if got, want := mgr.LogPath(), filepath.Join(tmp, "worktimer.log"); got != want {
		t.Fatalf("LogPath() = %q, want %q", got, want)
	}
}

func TestEnsureBaseDirCreatesDirectory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "data")

	mgr, err := NewManager(base)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := mgr.EnsureBaseDir(); err != nil {
		t.Fatalf("EnsureBaseDir: %v", err)
	}

	info, err := os.Stat(base)
	if err != nil {
		t.Fatalf("expected directory %q to exist: %v", base, err)
	}
	if !info.IsDir() {
		t.Fatalf("%q is not a directory", base)
	}
}

func TestWriteFileAtomicReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "state.json")

	if err := WriteFileAtomic(path, []byte("first")); err != nil {
		t.Fatalf("WriteFileAtomic first: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("second")); err != nil {
		t.Fatalf("WriteFileAtomic second: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(contents) != "second" {
		t.Fatalf("contents = %q, want %q", contents, "second")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the target file, found %d entries", len(entries))
	}
}
