package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTessFile writes a .tess source file into a temp directory and
// returns its path.
func WriteTessFile(t testing.TB, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write tess file: %v", err)
	}
	return path
}
