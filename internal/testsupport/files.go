package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteSizedFile creates path with exactly size bytes. The content is
// unspecified; use it for files that are classified by size and never parsed.
func WriteSizedFile(t testing.TB, path string, size int64) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if size <= 0 {
		return
	}
	if err := f.Truncate(size); err != nil {
		t.Fatalf("size %s to %d bytes: %v", path, size, err)
	}
}
