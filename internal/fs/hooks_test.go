package fs_test

import (
	"errors"
	"os"
	"testing"

	"github.com/keshon/codesnap/internal/fs"
)

func TestHookOverrides(t *testing.T) {
	osfs := fs.NewOSFS()

	// stat hook
	fs.SetStat(func(path string) (os.FileInfo, error) {
		return nil, errors.New("stat-error")
	})
	defer fs.SetStat(os.Stat)

	if _, err := osfs.Stat("z"); err == nil || err.Error() != "stat-error" {
		t.Fatalf("unexpected error: %v", err)
	}
	if osfs.Exists("z") {
		t.Fatal("Exists should route through the stat hook")
	}

	// readFile hook
	fs.SetReadFile(func(path string) ([]byte, error) {
		return []byte("ok"), nil
	})
	defer fs.SetReadFile(os.ReadFile)

	out, err := osfs.ReadFile("y")
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "ok" {
		t.Fatalf("expected ok, got %s", out)
	}

	// writeFile hook
	called := false
	fs.SetWriteFile(func(path string, data []byte, perm os.FileMode) error {
		called = true
		if path != "a" || string(data) != "b" || perm != 0o644 {
			t.Fatalf("unexpected args")
		}
		return nil
	})
	defer fs.SetWriteFile(os.WriteFile)

	if err := osfs.WriteFile("a", []byte("b"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("WriteFile hook not called")
	}

	// mkdirAll hook
	called = false
	fs.SetMkdirAll(func(path string, perm os.FileMode) error {
		called = true
		return nil
	})
	defer fs.SetMkdirAll(os.MkdirAll)

	if err := osfs.MkdirAll("dir", 0o755); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("MkdirAll hook not called")
	}
}
